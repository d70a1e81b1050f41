package repository

import (
	"context"

	"evalert/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrBetNotFound is returned when a starred bet is not found.
var ErrBetNotFound = errors.New("starred bet not found")

// BetStatusUpdate is the subset of starred-bet fields the reconciler is
// allowed to write back. Merge semantics: absent fields stay untouched.
type BetStatusUpdate struct {
	Status      entity.BetStatus
	Kickoff     string
	Bookmaker   string
	SetFinished bool // also stamp finishedAt with the server timestamp
}

// BetRepository defines the interface for starred-bet storage, scoped per
// user.
type BetRepository interface {
	// Star persists a starred bet under its user with merge semantics.
	Star(ctx context.Context, bet *entity.StarredBet) error

	// Unstar deletes a starred bet outright.
	Unstar(ctx context.Context, userID, betID string) error

	// ListByUser returns the newest starred bets for a user, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.StarredBet, error)

	// ApplyStatus writes back a reconciled status/metadata update.
	ApplyStatus(ctx context.Context, userID, betID string, update BetStatusUpdate) error

	// ListUserIDs enumerates every user that may hold starred bets.
	ListUserIDs(ctx context.Context) ([]string, error)
}
