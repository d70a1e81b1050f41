// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"evalert/internal/domain/entity"

	"github.com/google/uuid"
)

// BroadcastInput is the caller-supplied content of a broadcast. Empty fields
// fall back to fixed defaults rather than failing.
type BroadcastInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// BroadcastReport is the caller-visible outcome of one broadcast, including
// partial failures so "nothing sent" and "some failed" are distinguishable.
type BroadcastReport struct {
	BroadcastID      uuid.UUID                `json:"broadcastId"`
	Sent             int                      `json:"sent"`
	Succeeded        int                      `json:"success"`
	Failed           int                      `json:"fail"`
	DuplicatesPruned int                      `json:"duplicatesPruned"`
	Failures         []entity.DispatchFailure `json:"failures,omitempty"`
}

// BroadcastUsecase defines the interface for broadcast management use cases.
type BroadcastUsecase interface {
	// Broadcast sends one payload to every known destination synchronously
	// and returns the aggregated report.
	Broadcast(ctx context.Context, actorUID string, input BroadcastInput) (*BroadcastReport, error)

	// Execute dispatches a broadcast against an existing history record.
	// Used by the async worker path.
	Execute(ctx context.Context, broadcastID uuid.UUID, actorUID string, input BroadcastInput) (*BroadcastReport, error)

	// EnqueueBroadcast records the broadcast and publishes it for async
	// dispatch by the sweeper worker.
	EnqueueBroadcast(ctx context.Context, actorUID string, input BroadcastInput) (uuid.UUID, error)

	// History returns recent broadcast records with pagination.
	History(ctx context.Context, limit, offset int) ([]*entity.BroadcastRecord, error)
}
