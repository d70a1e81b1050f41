package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"evalert/internal/delivery/http/response"
	"evalert/internal/domain/entity"
	"evalert/internal/usecase"
	"evalert/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BetHandlerParams holds dependencies for BetHandler, injected by Fx.
type BetHandlerParams struct {
	fx.In

	BetUC  usecase.BetUsecase
	Logger *slog.Logger
}

// BetHandler holds dependencies for starred-bet endpoints.
type BetHandler struct {
	betUC  usecase.BetUsecase
	logger *slog.Logger
}

// NewBetHandler is the constructor for BetHandler.
func NewBetHandler(params BetHandlerParams) *BetHandler {
	return &BetHandler{
		betUC:  params.BetUC,
		logger: params.Logger,
	}
}

// Star copies an opportunity into the caller's starred bets.
func (h *BetHandler) Star(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing Authorization header"})
	}

	opportunityID := c.Param("id")
	if opportunityID == "" {
		return response.BadRequest(c, "INVALID_ID", "Missing opportunity ID")
	}

	bet, err := h.betUC.Star(c.Request().Context(), uid, opportunityID)
	if err != nil {
		if errors.Is(err, impl.ErrOpportunityNotFound) {
			return response.NotFound(c, "OPPORTUNITY_NOT_FOUND", "Opportunity not found")
		}

		return err
	}

	return response.Success(c, http.StatusCreated, bet, "Bet starred successfully")
}

// Unstar removes a starred bet.
func (h *BetHandler) Unstar(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing Authorization header"})
	}

	betID := c.Param("id")
	if betID == "" {
		return response.BadRequest(c, "INVALID_ID", "Missing bet ID")
	}

	if err := h.betUC.Unstar(c.Request().Context(), uid, betID); err != nil {
		if errors.Is(err, impl.ErrBetNotFound) {
			return response.NotFound(c, "BET_NOT_FOUND", "Bet not found")
		}

		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Bet unstarred successfully"}, "Bet unstarred successfully")
}

// ListBets returns the caller's starred bets, reconciled on the way out.
// An optional status query filters by lifecycle state.
func (h *BetHandler) ListBets(c echo.Context) error {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing Authorization header"})
	}

	status := entity.BetStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown bet status")
	}

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	bets, err := h.betUC.ListBets(c.Request().Context(), uid, status, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, bets, "Bets retrieved successfully")
}
