package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evalert/internal/domain/service"
	mockusecase "evalert/internal/mocks/usecase"
	"evalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceHandlerContext(t *testing.T, body string) (*DeviceHandler, *mockusecase.MockDeviceUsecase, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	deviceUC := mockusecase.NewMockDeviceUsecase(t)
	handler := &DeviceHandler{
		deviceUC: deviceUC,
		logger:   slog.New(slog.DiscardHandler),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return handler, deviceUC, e.NewContext(req, rec), rec
}

func TestDeviceHandler_Ping_Success(t *testing.T) {
	handler, deviceUC, c, rec := newDeviceHandlerContext(t, `{"token":"tok-1","title":"Hi"}`)

	deviceUC.EXPECT().
		Ping(mock.Anything, "tok-1", "Hi", "", "").
		Return("projects/p/messages/123", nil)

	require.NoError(t, handler.Ping(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.Contains(t, rec.Body.String(), `"messageId":"projects/p/messages/123"`)
}

func TestDeviceHandler_Ping_MissingToken(t *testing.T) {
	handler, _, c, rec := newDeviceHandlerContext(t, `{"title":"Hi"}`)

	require.NoError(t, handler.Ping(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing token")
}

func TestDeviceHandler_Ping_SendError(t *testing.T) {
	handler, deviceUC, c, rec := newDeviceHandlerContext(t, `{"token":"tok-dead"}`)

	deviceUC.EXPECT().
		Ping(mock.Anything, "tok-dead", "", "", "").
		Return("", &service.SendError{
			Code:      "registration-token-not-registered",
			Permanent: true,
			Err:       errors.New("requested entity was not found"),
		})

	require.NoError(t, handler.Ping(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
	assert.Contains(t, rec.Body.String(), "registration-token-not-registered")
}

func TestDeviceHandler_ValidateToken_Rejected(t *testing.T) {
	handler, deviceUC, c, rec := newDeviceHandlerContext(t, `{"token":"tok-bad"}`)

	deviceUC.EXPECT().
		ValidateToken(mock.Anything, "tok-bad").
		Return(&usecase.TokenValidation{
			ErrorCode:    "invalid-registration-token",
			ErrorMessage: "invalid token",
		})

	require.NoError(t, handler.ValidateToken(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
	assert.Contains(t, rec.Body.String(), "invalid-registration-token")
}

func TestDeviceHandler_RegisterToken_NoUID(t *testing.T) {
	handler, _, c, rec := newDeviceHandlerContext(t, `{"token":"tok-1"}`)

	require.NoError(t, handler.RegisterToken(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing Authorization header")
}
