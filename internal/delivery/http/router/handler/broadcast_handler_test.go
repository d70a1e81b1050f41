package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evalert/internal/domain/entity"
	mockusecase "evalert/internal/mocks/usecase"
	"evalert/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBroadcastHandlerContext(t *testing.T, target, body string) (*BroadcastHandler, *mockusecase.MockBroadcastUsecase, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	broadcastUC := mockusecase.NewMockBroadcastUsecase(t)
	handler := &BroadcastHandler{
		broadcastUC: broadcastUC,
		logger:      slog.New(slog.DiscardHandler),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return handler, broadcastUC, e.NewContext(req, rec), rec
}

func TestBroadcastHandler_NotifyAll_ReportsPartialFailure(t *testing.T) {
	handler, broadcastUC, c, rec := newBroadcastHandlerContext(t, "/api/notify-all", `{"title":"New +EV"}`)
	c.Set("uid", "admin-1")

	broadcastUC.EXPECT().
		Broadcast(mock.Anything, "admin-1", usecase.BroadcastInput{Title: "New +EV"}).
		Return(&usecase.BroadcastReport{
			BroadcastID:      uuid.New(),
			Sent:             3,
			Succeeded:        2,
			Failed:           1,
			DuplicatesPruned: 1,
			Failures: []entity.DispatchFailure{
				{DestinationPreview: "tok-gone-a", ErrorCode: "registration-token-not-registered", ErrorMessage: "not registered"},
			},
		}, nil)

	require.NoError(t, handler.NotifyAll(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"sent":3`)
	assert.Contains(t, body, `"success":2`)
	assert.Contains(t, body, `"fail":1`)
	assert.Contains(t, body, `"duplicatesPruned":1`)
	assert.Contains(t, body, `"errorCode":"registration-token-not-registered"`)
}

func TestBroadcastHandler_NotifyAll_NoUID(t *testing.T) {
	handler, _, c, rec := newBroadcastHandlerContext(t, "/api/notify-all", `{}`)

	require.NoError(t, handler.NotifyAll(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing Authorization header")
}

func TestBroadcastHandler_NotifyAll_Async(t *testing.T) {
	handler, broadcastUC, c, rec := newBroadcastHandlerContext(t, "/api/notify-all?async=true", `{"body":"Queued"}`)
	c.Set("uid", "admin-1")

	broadcastID := uuid.New()
	broadcastUC.EXPECT().
		EnqueueBroadcast(mock.Anything, "admin-1", usecase.BroadcastInput{Body: "Queued"}).
		Return(broadcastID, nil)

	require.NoError(t, handler.NotifyAll(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), broadcastID.String())
}
