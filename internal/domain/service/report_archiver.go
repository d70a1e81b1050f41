package service

import (
	"context"

	"evalert/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportArchiver persists a full dispatch report outside the primary stores,
// for offline inspection of large broadcasts. Archiving is best effort.
type ReportArchiver interface {
	// ArchiveDispatchReport stores the result of one broadcast keyed by its
	// record ID.
	ArchiveDispatchReport(ctx context.Context, broadcastID uuid.UUID, result *entity.DispatchResult) error

	// Close releases any resources held by the archiver.
	Close() error
}
