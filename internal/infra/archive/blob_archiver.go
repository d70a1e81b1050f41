// Package archive stores full dispatch reports in a blob bucket.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"evalert/config"
	"evalert/internal/domain/entity"
	"evalert/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket schemes used in deployment and local development.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobArchiver implements ReportArchiver on top of a gocloud.dev bucket.
type blobArchiver struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobArchiver opens the configured bucket URL.
func NewBlobArchiver(ctx context.Context, bucketURL string, logger *slog.Logger) (service.ReportArchiver, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	logger.Info("Report archiver initialized",
		slog.String("bucket_url", bucketURL),
	)

	return &blobArchiver{
		bucket: bucket,
		logger: logger,
	}, nil
}

// ArchiveDispatchReport writes the full report as JSON, keyed by broadcast ID.
func (a *blobArchiver) ArchiveDispatchReport(ctx context.Context, broadcastID uuid.UUID, result *entity.DispatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return errors.WithStack(err)
	}

	key := fmt.Sprintf("broadcasts/%s.json", broadcastID)

	if err := a.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: "application/json",
	}); err != nil {
		return errors.Wrapf(err, "failed to write report %s", key)
	}

	a.logger.Debug("Dispatch report archived",
		slog.String("key", key),
		slog.Int("failures", len(result.Failures)),
	)

	return nil
}

// Close releases the bucket handle.
func (a *blobArchiver) Close() error {
	return errors.WithStack(a.bucket.Close())
}

// ArchiverParams holds dependencies for ReportArchiver, injected by Fx
type ArchiverParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewReportArchiver creates a ReportArchiver based on configuration. Returns
// nil when archiving is disabled; callers treat a nil archiver as a no-op.
func NewReportArchiver(params ArchiverParams) (service.ReportArchiver, error) {
	cfg := params.Config.Archive
	logger := params.Logger

	if cfg == nil || !cfg.Enabled {
		logger.Info("Report archiving not configured, skipping")

		return nil, nil
	}

	if cfg.BucketURL == "" {
		return nil, errors.New("bucket URL is required when archiving is enabled")
	}

	archiver, err := NewBlobArchiver(params.Ctx, cfg.BucketURL, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ReportArchiver")

			return archiver.Close()
		},
	})

	return archiver, nil
}

// Module provides the archive FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewReportArchiver),
)
