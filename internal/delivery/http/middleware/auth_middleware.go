package middleware

import (
	"net/http"
	"strings"

	"evalert/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUID is the echo context key holding the authenticated Firebase
// UID.
const ContextKeyUID = "uid"

// AuthMiddleware provides middleware for Firebase ID token authentication and
// admin authorization.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	policy   service.AdminPolicy
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, policy service.AdminPolicy) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, policy: policy}
}

// Authenticate validates the bearer Firebase ID token and stores the caller's
// UID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing Authorization header"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		uid, err := m.verifier.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextKeyUID, uid)

		return next(c)
	}
}

// RequireAdmin rejects callers the admin policy does not recognize. It must
// be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get(ContextKeyUID).(string)
		if !ok || uid == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing Authorization header"})
		}

		isAdmin, err := m.policy.IsAdmin(c.Request().Context(), uid)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check admin status"})
		}
		if !isAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Admin access required"})
		}

		return next(c)
	}
}
