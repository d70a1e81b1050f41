package handler

import (
	"log/slog"
	"net/http"

	"evalert/internal/domain/service"
	"evalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for push destination endpoints.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler.
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterTokenRequest represents the request body for registering a token.
type RegisterTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// PingRequest represents the request body for a single-destination test send.
type PingRequest struct {
	Token string `json:"token"`
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// ValidateTokenRequest represents the request body for a dry-run token probe.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// RegisterToken stores the caller's FCM token under their user document.
func (h *DeviceHandler) RegisterToken(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing Authorization header"})
	}

	var req RegisterTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid token input"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing token"})
	}

	if err := h.deviceUC.RegisterToken(c.Request().Context(), uid, req.Token, c.Request().UserAgent()); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Ping sends a test notification to a single token. No admin check; the
// endpoint is rate limited instead.
func (h *DeviceHandler) Ping(c echo.Context) error {
	var req PingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ping input"})
	}
	if req.Token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing token"})
	}

	messageID, err := h.deviceUC.Ping(c.Request().Context(), req.Token, req.Title, req.Body, req.URL)
	if err != nil {
		var sendErr *service.SendError
		if errors.As(err, &sendErr) {
			return c.JSON(http.StatusInternalServerError, map[string]any{
				"ok":    false,
				"error": sendErr.Err.Error(),
				"code":  sendErr.Code,
			})
		}

		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"ok":        true,
		"messageId": messageID,
	})
}

// ValidateToken probes a token with a dry-run send. Probe failures are a
// structured 200, not an error.
func (h *DeviceHandler) ValidateToken(c echo.Context) error {
	var req ValidateTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid token input"})
	}
	if req.Token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing token"})
	}

	return c.JSON(http.StatusOK, h.deviceUC.ValidateToken(c.Request().Context(), req.Token))
}
