// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"evalert/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDestinationNotFound is returned when a push destination is not found.
var ErrDestinationNotFound = errors.New("push destination not found")

// DestinationRepository defines the interface for push destination storage.
// Destinations live under their owning user keyed by token value; enumeration
// spans all users.
type DestinationRepository interface {
	// Save upserts a destination under its owning user (merge semantics).
	Save(ctx context.Context, dest *entity.PushDestination) error

	// ListAll enumerates every stored destination token across all users.
	ListAll(ctx context.Context) ([]*entity.PushDestination, error)

	// Delete removes a destination by token value, wherever it is stored.
	Delete(ctx context.Context, token string) error
}
