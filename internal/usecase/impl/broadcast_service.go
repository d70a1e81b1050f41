// Package impl provides the implementations of the use case interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "evalert/internal/delivery/context"
	"evalert/internal/domain/entity"
	"evalert/internal/domain/repository"
	"evalert/internal/domain/service"
	"evalert/internal/usecase"

	"github.com/google/uuid"
)

type broadcastService struct {
	destRepo  repository.DestinationRepository
	history   repository.BroadcastRepository
	messenger service.Messenger
	publisher service.EventPublisher
	archiver  service.ReportArchiver
	logger    *slog.Logger
}

// NewBroadcastService creates a new broadcast service instance. The publisher
// and archiver may be nil when the async path or report archiving is disabled.
func NewBroadcastService(
	destRepo repository.DestinationRepository,
	history repository.BroadcastRepository,
	messenger service.Messenger,
	publisher service.EventPublisher,
	archiver service.ReportArchiver,
	logger *slog.Logger,
) usecase.BroadcastUsecase {
	return &broadcastService{
		destRepo:  destRepo,
		history:   history,
		messenger: messenger,
		publisher: publisher,
		archiver:  archiver,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *broadcastService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Broadcast sends one payload to every known destination and waits for the
// full dispatch to complete before returning.
func (srv *broadcastService) Broadcast(ctx context.Context, actorUID string, input usecase.BroadcastInput) (*usecase.BroadcastReport, error) {
	record := srv.newRecord(actorUID, input)
	if err := srv.history.CreateBroadcast(ctx, record); err != nil {
		// History is an audit trail, not a delivery dependency.
		srv.log(ctx).Error("Failed to create broadcast record", slog.Any("error", err), slog.String("broadcast_id", record.ID.String()))
	}

	return srv.Execute(ctx, record.ID, actorUID, input)
}

// EnqueueBroadcast records the broadcast and hands it to the sweeper worker
// through the message queue.
func (srv *broadcastService) EnqueueBroadcast(ctx context.Context, actorUID string, input usecase.BroadcastInput) (uuid.UUID, error) {
	if srv.publisher == nil {
		return uuid.Nil, fmt.Errorf("no event publisher configured")
	}

	record := srv.newRecord(actorUID, input)
	if err := srv.history.CreateBroadcast(ctx, record); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create broadcast record: %w", err)
	}

	event := &service.BroadcastEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		BroadcastID: record.ID.String(),
		ActorUID:    actorUID,
		Title:       input.Title,
		Body:        input.Body,
		LinkURL:     input.URL,
	}
	if err := srv.publisher.PublishBroadcastEvent(ctx, event); err != nil {
		return uuid.Nil, fmt.Errorf("failed to publish broadcast event: %w", err)
	}

	srv.log(ctx).Info("Broadcast enqueued", slog.String("broadcast_id", record.ID.String()), slog.String("actor_uid", actorUID))

	return record.ID, nil
}

// Execute runs the dispatch for an already recorded broadcast. Shared by the
// synchronous endpoint and the worker's push handler.
func (srv *broadcastService) Execute(ctx context.Context, broadcastID uuid.UUID, actorUID string, input usecase.BroadcastInput) (*usecase.BroadcastReport, error) {
	payload := entity.NewBroadcastPayload(input.Title, input.Body, input.URL)

	destinations, err := srv.destRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}

	tokens, pruned := dedupeTokens(destinations)
	srv.log(ctx).Info("Dispatching broadcast",
		slog.String("broadcast_id", broadcastID.String()),
		slog.String("actor_uid", actorUID),
		slog.Int("destinations", len(tokens)),
		slog.Int("duplicates_pruned", pruned))

	result, failureLogs, invalid := srv.dispatch(ctx, broadcastID, tokens, payload)

	srv.pruneInvalid(ctx, invalid)
	srv.record(ctx, broadcastID, result, failureLogs, pruned)

	return &usecase.BroadcastReport{
		BroadcastID:      broadcastID,
		Sent:             result.Attempted,
		Succeeded:        result.Succeeded,
		Failed:           result.Failed,
		DuplicatesPruned: pruned,
		Failures:         result.Failures,
	}, nil
}

// History returns recent broadcast records, newest first.
func (srv *broadcastService) History(ctx context.Context, limit, offset int) ([]*entity.BroadcastRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	records, err := srv.history.FindRecentBroadcasts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find recent broadcasts: %w", err)
	}

	return records, nil
}

func (srv *broadcastService) newRecord(actorUID string, input usecase.BroadcastInput) *entity.BroadcastRecord {
	payload := entity.NewBroadcastPayload(input.Title, input.Body, input.URL)

	return &entity.BroadcastRecord{
		ID:       uuid.New(),
		ActorUID: actorUID,
		Title:    payload.Title,
		Body:     payload.Body,
		LinkURL:  payload.LinkURL,
		Kind:     entity.KindBroadcast,
	}
}

// dispatch sends the payload in sequential chunks and aggregates the outcome.
// A failed chunk call counts every destination in that chunk as failed and
// does not stop the remaining chunks.
func (srv *broadcastService) dispatch(
	ctx context.Context,
	broadcastID uuid.UUID,
	tokens []string,
	payload entity.BroadcastPayload,
) (*entity.DispatchResult, []*entity.BroadcastFailureLog, []string) {
	result := &entity.DispatchResult{Attempted: len(tokens)}

	var (
		failureLogs []*entity.BroadcastFailureLog
		invalid     []string
	)

	for start := 0; start < len(tokens); start += service.MulticastChunkLimit {
		end := start + service.MulticastChunkLimit
		if end > len(tokens) {
			end = len(tokens)
		}
		chunk := tokens[start:end]

		chunkResult, err := srv.messenger.SendMulticast(ctx, chunk, payload)
		if err != nil {
			srv.log(ctx).Error("Multicast chunk failed",
				slog.Any("error", err),
				slog.String("broadcast_id", broadcastID.String()),
				slog.Int("chunk_start", start),
				slog.Int("chunk_size", len(chunk)))

			result.Failed += len(chunk)
			for _, token := range chunk {
				failure := entity.DispatchFailure{
					DestinationPreview: entity.Preview(token),
					ErrorCode:          "multicast-error",
					ErrorMessage:       err.Error(),
				}
				result.Failures = append(result.Failures, failure)
				failureLogs = append(failureLogs, newFailureLog(broadcastID, failure, false))
			}

			continue
		}

		result.Succeeded += chunkResult.Succeeded
		result.Failed += chunkResult.Failed

		for i, resp := range chunkResult.Responses {
			if !resp.Failed() {
				continue
			}

			failure := entity.DispatchFailure{
				DestinationPreview: entity.Preview(chunk[i]),
				ErrorCode:          resp.ErrorCode,
				ErrorMessage:       resp.ErrorMessage,
			}
			result.Failures = append(result.Failures, failure)
			failureLogs = append(failureLogs, newFailureLog(broadcastID, failure, resp.Permanent))

			if resp.Permanent {
				invalid = append(invalid, chunk[i])
			}
		}
	}

	return result, failureLogs, invalid
}

// pruneInvalid deletes destinations the backend reported as permanently
// undeliverable. Delete errors never fail the broadcast.
func (srv *broadcastService) pruneInvalid(ctx context.Context, tokens []string) {
	for _, token := range tokens {
		if err := srv.destRepo.Delete(ctx, token); err != nil {
			srv.log(ctx).Warn("Failed to delete invalid destination",
				slog.Any("error", err),
				slog.String("token", entity.Preview(token)))

			continue
		}

		srv.log(ctx).Info("Deleted invalid destination", slog.String("token", entity.Preview(token)))
	}
}

// record persists the aggregate counts, failure logs and archived report.
// All three are best effort.
func (srv *broadcastService) record(
	ctx context.Context,
	broadcastID uuid.UUID,
	result *entity.DispatchResult,
	failureLogs []*entity.BroadcastFailureLog,
	pruned int,
) {
	if err := srv.history.UpdateBroadcastCounts(ctx, broadcastID, result.Attempted, result.Succeeded, result.Failed, pruned); err != nil {
		srv.log(ctx).Error("Failed to update broadcast counts", slog.Any("error", err), slog.String("broadcast_id", broadcastID.String()))
	}

	if len(failureLogs) > 0 {
		if err := srv.history.BatchCreateFailureLogs(ctx, failureLogs); err != nil {
			srv.log(ctx).Error("Failed to persist failure logs", slog.Any("error", err), slog.String("broadcast_id", broadcastID.String()))
		}
	}

	if srv.archiver != nil {
		if err := srv.archiver.ArchiveDispatchReport(ctx, broadcastID, result); err != nil {
			srv.log(ctx).Warn("Failed to archive dispatch report", slog.Any("error", err), slog.String("broadcast_id", broadcastID.String()))
		}
	}
}

// dedupeTokens collapses duplicate tokens while preserving first-seen order,
// returning the unique tokens and the number pruned.
func dedupeTokens(destinations []*entity.PushDestination) ([]string, int) {
	seen := make(map[string]struct{}, len(destinations))
	tokens := make([]string, 0, len(destinations))

	for _, dest := range destinations {
		if dest == nil || dest.Token == "" {
			continue
		}
		if _, ok := seen[dest.Token]; ok {
			continue
		}
		seen[dest.Token] = struct{}{}
		tokens = append(tokens, dest.Token)
	}

	return tokens, len(destinations) - len(tokens)
}

func newFailureLog(broadcastID uuid.UUID, failure entity.DispatchFailure, permanent bool) *entity.BroadcastFailureLog {
	return &entity.BroadcastFailureLog{
		ID:           uuid.New(),
		BroadcastID:  broadcastID,
		TokenPreview: failure.DestinationPreview,
		ErrorCode:    failure.ErrorCode,
		ErrorMessage: failure.ErrorMessage,
		Permanent:    permanent,
		SentAt:       time.Now(),
	}
}
