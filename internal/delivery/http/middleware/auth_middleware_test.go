package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockservice "evalert/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/notify-all", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockservice.NewMockTokenVerifier(t), mockservice.NewMockAdminPolicy(t))
	c, rec := newAuthTestContext("")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Missing Authorization header"}`, rec.Body.String())
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockservice.NewMockTokenVerifier(t), mockservice.NewMockAdminPolicy(t))
	c, rec := newAuthTestContext("Basic abc123")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	verifier := mockservice.NewMockTokenVerifier(t)
	verifier.EXPECT().
		VerifyIDToken(mock.Anything, "expired").
		Return("", errors.New("token expired"))

	m := NewAuthMiddleware(verifier, mockservice.NewMockAdminPolicy(t))
	c, rec := newAuthTestContext("Bearer expired")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_ValidTokenSetsUID(t *testing.T) {
	verifier := mockservice.NewMockTokenVerifier(t)
	verifier.EXPECT().
		VerifyIDToken(mock.Anything, "good").
		Return("uid-1", nil)

	m := NewAuthMiddleware(verifier, mockservice.NewMockAdminPolicy(t))
	c, rec := newAuthTestContext("Bearer good")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", c.Get(ContextKeyUID))
}

func TestAuthMiddleware_RequireAdmin_Forbidden(t *testing.T) {
	policy := mockservice.NewMockAdminPolicy(t)
	policy.EXPECT().
		IsAdmin(mock.Anything, "uid-1").
		Return(false, nil)

	m := NewAuthMiddleware(mockservice.NewMockTokenVerifier(t), policy)
	c, rec := newAuthTestContext("Bearer good")
	c.Set(ContextKeyUID, "uid-1")

	require.NoError(t, m.RequireAdmin(okHandler)(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireAdmin_Allowed(t *testing.T) {
	policy := mockservice.NewMockAdminPolicy(t)
	policy.EXPECT().
		IsAdmin(mock.Anything, "uid-admin").
		Return(true, nil)

	m := NewAuthMiddleware(mockservice.NewMockTokenVerifier(t), policy)
	c, rec := newAuthTestContext("Bearer good")
	c.Set(ContextKeyUID, "uid-admin")

	require.NoError(t, m.RequireAdmin(okHandler)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
