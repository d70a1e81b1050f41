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

// OpportunityHandlerParams holds dependencies for OpportunityHandler, injected by Fx.
type OpportunityHandlerParams struct {
	fx.In

	BetUC  usecase.BetUsecase
	Logger *slog.Logger
}

// OpportunityHandler serves the open +EV opportunity feed.
type OpportunityHandler struct {
	betUC  usecase.BetUsecase
	logger *slog.Logger
}

// NewOpportunityHandler is the constructor for OpportunityHandler.
func NewOpportunityHandler(params OpportunityHandlerParams) *OpportunityHandler {
	return &OpportunityHandler{
		betUC:  params.BetUC,
		logger: params.Logger,
	}
}

// ListOpen returns open opportunities sorted by bookmaker, plus the distinct
// bookmaker names for filter menus.
func (h *OpportunityHandler) ListOpen(c echo.Context) error {
	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	opportunities, bookmakers, err := h.betUC.ListOpenOpportunities(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"opportunities": opportunities,
		"bookmakers":    bookmakers,
	}, "Opportunities retrieved successfully")
}
