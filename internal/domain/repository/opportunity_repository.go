package repository

import (
	"context"

	"evalert/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOpportunityNotFound is returned when an opportunity is not in the
// source feed.
var ErrOpportunityNotFound = errors.New("opportunity not found")

// OpportunityRepository defines read-only access to the externally maintained
// source and results feeds.
type OpportunityRepository interface {
	// ListRecent returns the newest source opportunities, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.SourceOpportunity, error)

	// FindSourceByID retrieves one opportunity from the live source feed.
	FindSourceByID(ctx context.Context, id string) (*entity.SourceOpportunity, error)

	// ExistsInSource reports whether an opportunity is still present in the
	// live source feed.
	ExistsInSource(ctx context.Context, id string) (bool, error)

	// ExistsInResults reports whether an opportunity has appeared in the
	// results feed.
	ExistsInResults(ctx context.Context, id string) (bool, error)
}
