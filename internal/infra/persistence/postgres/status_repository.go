package postgres

import (
	"context"
	"time"

	"georemind/internal/domain/entity"
	domainerrors "georemind/internal/domain/errors"
	"georemind/internal/domain/repository"
	"georemind/internal/errors"
	"georemind/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type statusRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStatusRepository creates a gorm backed StatusRepository.
func NewStatusRepository(db *gorm.DB) repository.StatusRepository {
	return &statusRepository{
		db:  db,
		now: time.Now,
	}
}

// PersistStatus upserts the latest status and appends it to the history in one transaction.
func (r *statusRepository) PersistStatus(ctx context.Context, reminderID string, status entity.ReminderStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown reminder status: " + string(status))
	}

	now := r.now().UTC()
	current := &model.ReminderStatusModel{
		ReminderID: reminderID,
		Status:     string(status),
		UpdatedAt:  now,
	}
	event := &model.ReminderStatusEventModel{
		ReminderID: reminderID,
		Status:     string(status),
		RecordedAt: now,
	}

	err := r.db.WithContext(withReminderID(ctx, reminderID)).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reminder_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).Create(current).Error; err != nil {
			return err
		}

		return tx.Create(event).Error
	})
	if err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to persist reminder status")
	}

	return nil
}

func (r *statusRepository) FindStatus(ctx context.Context, reminderID string) (entity.ReminderStatus, error) {
	var current model.ReminderStatusModel
	err := r.db.WithContext(withReminderID(ctx, reminderID)).
		Where("reminder_id = ?", reminderID).
		First(&current).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrStatusNotFound
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to find reminder status")
	}

	return entity.ReminderStatus(current.Status), nil
}
