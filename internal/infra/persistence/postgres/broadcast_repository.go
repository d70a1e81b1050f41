// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"evalert/internal/domain/entity"
	domainerrors "evalert/internal/domain/errors"
	"evalert/internal/domain/repository"
	"evalert/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// broadcastRepository implements the repository.BroadcastRepository interface.
type broadcastRepository struct {
	db *gorm.DB
}

// NewBroadcastRepository is the constructor for broadcastRepository.
func NewBroadcastRepository(db *gorm.DB) repository.BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

// CreateBroadcast persists a new broadcast audit record.
func (repo *broadcastRepository) CreateBroadcast(ctx context.Context, record *entity.BroadcastRecord) error {
	recordM := fromBroadcastDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required broadcast information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create broadcast")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// UpdateBroadcastCounts updates the aggregate counts after dispatch.
func (repo *broadcastRepository) UpdateBroadcastCounts(ctx context.Context, id uuid.UUID, attempted, succeeded, failed, duplicatesPruned int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BroadcastModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempted":         attempted,
			"succeeded":         succeeded,
			"failed":            failed,
			"duplicates_pruned": duplicatesPruned,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update broadcast counts")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBroadcastNotFound
	}

	return nil
}

// BatchCreateFailureLogs persists failure log entries in batches.
func (repo *broadcastRepository) BatchCreateFailureLogs(ctx context.Context, logs []*entity.BroadcastFailureLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.BroadcastFailureLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromFailureLogDomain(log))
	}

	// Batch size of 100 balances round trips against statement size.
	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, 100).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBroadcastNotFound.WrapMessage("unknown broadcast reference in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create failure logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
		logs[i].SentAt = logM.SentAt
	}

	return nil
}

// FindRecentBroadcasts returns broadcast records with pagination, newest first.
func (repo *broadcastRepository) FindRecentBroadcasts(ctx context.Context, limit, offset int) ([]*entity.BroadcastRecord, error) {
	var recordModels []*model.BroadcastModel

	query := repo.db.WithContext(ctx).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent broadcasts")
	}

	records := make([]*entity.BroadcastRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toBroadcastDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

// toBroadcastDomain converts a GORM BroadcastModel to a domain BroadcastRecord entity.
func toBroadcastDomain(data *model.BroadcastModel) *entity.BroadcastRecord {
	if data == nil {
		return nil
	}

	return &entity.BroadcastRecord{
		ID:               data.ID,
		ActorUID:         data.ActorUID,
		Title:            data.Title,
		Body:             data.Body,
		LinkURL:          data.LinkURL,
		Kind:             entity.MessageKind(data.Kind),
		Attempted:        data.Attempted,
		Succeeded:        data.Succeeded,
		Failed:           data.Failed,
		DuplicatesPruned: data.DuplicatesPruned,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromBroadcastDomain converts a domain BroadcastRecord entity to a GORM BroadcastModel.
func fromBroadcastDomain(data *entity.BroadcastRecord) *model.BroadcastModel {
	if data == nil {
		return nil
	}

	return &model.BroadcastModel{
		ID:               data.ID,
		ActorUID:         data.ActorUID,
		Title:            data.Title,
		Body:             data.Body,
		LinkURL:          data.LinkURL,
		Kind:             string(data.Kind),
		Attempted:        data.Attempted,
		Succeeded:        data.Succeeded,
		Failed:           data.Failed,
		DuplicatesPruned: data.DuplicatesPruned,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromFailureLogDomain converts a domain BroadcastFailureLog entity to a GORM BroadcastFailureLogModel.
func fromFailureLogDomain(data *entity.BroadcastFailureLog) *model.BroadcastFailureLogModel {
	if data == nil {
		return nil
	}

	return &model.BroadcastFailureLogModel{
		ID:           data.ID,
		BroadcastID:  data.BroadcastID,
		TokenPreview: data.TokenPreview,
		ErrorCode:    data.ErrorCode,
		ErrorMessage: data.ErrorMessage,
		Permanent:    data.Permanent,
		SentAt:       data.SentAt,
	}
}
