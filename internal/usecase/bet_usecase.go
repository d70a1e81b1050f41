package usecase

import (
	"context"

	"evalert/internal/domain/entity"
)

// BetUsecase defines the interface for starred-bet management and lifecycle
// reconciliation.
type BetUsecase interface {
	// Star copies an opportunity into the user's starred bets, freezing its
	// display fields at star time.
	Star(ctx context.Context, userID, opportunityID string) (*entity.StarredBet, error)

	// Unstar removes a starred bet.
	Unstar(ctx context.Context, userID, betID string) error

	// ListBets returns the user's starred bets, reconciling each record's
	// lifecycle status on the way out. An empty status returns all.
	ListBets(ctx context.Context, userID string, status entity.BetStatus, limit int) ([]*entity.StarredBet, error)

	// Reconcile evaluates one starred bet's lifecycle status and persists
	// the transition when it changed.
	Reconcile(ctx context.Context, userID string, bet *entity.StarredBet) *entity.StarredBet

	// ReconcileUser re-evaluates every starred bet of one user. Returns the
	// number of records evaluated.
	ReconcileUser(ctx context.Context, userID string, limit int) (int, error)

	// ReconcileAll sweeps every user's starred bets. Returns the number of
	// records evaluated across all users.
	ReconcileAll(ctx context.Context, perUserLimit int) (int, error)

	// ListOpenOpportunities returns the open +EV feed sorted by bookmaker,
	// plus the distinct bookmaker names.
	ListOpenOpportunities(ctx context.Context, limit int) ([]*entity.SourceOpportunity, []string, error)
}
