// Package memory keeps reminder statuses in process when no database is configured.
package memory

import (
	"context"
	"sync"

	"georemind/internal/domain/entity"
	domainerrors "georemind/internal/domain/errors"
	"georemind/internal/domain/repository"
)

type statusRepository struct {
	mu       sync.RWMutex
	statuses map[string]entity.ReminderStatus
}

// NewStatusRepository creates an empty in-memory StatusRepository.
func NewStatusRepository() repository.StatusRepository {
	return &statusRepository{
		statuses: make(map[string]entity.ReminderStatus),
	}
}

func (r *statusRepository) PersistStatus(_ context.Context, reminderID string, status entity.ReminderStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown reminder status: " + string(status))
	}

	r.mu.Lock()
	r.statuses[reminderID] = status
	r.mu.Unlock()

	return nil
}

func (r *statusRepository) FindStatus(_ context.Context, reminderID string) (entity.ReminderStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status, ok := r.statuses[reminderID]
	if !ok {
		return "", repository.ErrStatusNotFound
	}

	return status, nil
}
