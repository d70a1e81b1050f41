package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"evalert/internal/delivery/http/response"
	"evalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BroadcastHandlerParams holds dependencies for BroadcastHandler, injected by Fx.
type BroadcastHandlerParams struct {
	fx.In

	BroadcastUC usecase.BroadcastUsecase
	Logger      *slog.Logger
}

// BroadcastHandler holds dependencies for the admin broadcast endpoints.
type BroadcastHandler struct {
	broadcastUC usecase.BroadcastUsecase
	logger      *slog.Logger
}

// NewBroadcastHandler is the constructor for BroadcastHandler.
func NewBroadcastHandler(params BroadcastHandlerParams) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastUC: params.BroadcastUC,
		logger:      params.Logger,
	}
}

// NotifyAllRequest represents the request body for a broadcast. All fields are
// optional; empty ones fall back to defaults.
type NotifyAllRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// NotifyAll sends one notification to every registered destination. The
// report is a 200 even on partial failure so callers can tell "nothing sent"
// from "some failed". With ?async=true the dispatch is queued instead.
func (h *BroadcastHandler) NotifyAll(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing Authorization header"})
	}

	var req NotifyAllRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid broadcast input"})
	}

	input := usecase.BroadcastInput{
		Title: req.Title,
		Body:  req.Body,
		URL:   req.URL,
	}

	if c.QueryParam("async") == "true" {
		broadcastID, err := h.broadcastUC.EnqueueBroadcast(c.Request().Context(), uid, input)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusAccepted, map[string]string{"broadcastId": broadcastID.String()})
	}

	report, err := h.broadcastUC.Broadcast(c.Request().Context(), uid, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

// History returns recent broadcast records with pagination.
func (h *BroadcastHandler) History(c echo.Context) error {
	limit := 20
	offset := 0

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			offset = parsedOffset
		}
	}

	records, err := h.broadcastUC.History(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Broadcast history retrieved successfully")
}
