package repository

import (
	"context"

	"evalert/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrBroadcastNotFound is returned when a broadcast record is not found.
var ErrBroadcastNotFound = errors.New("broadcast record not found")

// BroadcastRepository defines the interface for broadcast history storage.
type BroadcastRepository interface {
	// CreateBroadcast persists a new broadcast record.
	CreateBroadcast(ctx context.Context, record *entity.BroadcastRecord) error

	// UpdateBroadcastCounts updates the aggregate counts after dispatch.
	UpdateBroadcastCounts(ctx context.Context, id uuid.UUID, attempted, succeeded, failed, duplicatesPruned int) error

	// BatchCreateFailureLogs persists per-destination failure logs in a batch.
	BatchCreateFailureLogs(ctx context.Context, logs []*entity.BroadcastFailureLog) error

	// FindRecentBroadcasts returns broadcast records with pagination, newest
	// first.
	FindRecentBroadcasts(ctx context.Context, limit, offset int) ([]*entity.BroadcastRecord, error)
}
