// Package repository defines the persistence contracts used by the engine.
package repository

import (
	"context"
	"errors"

	"georemind/internal/domain/entity"
)

// ErrStatusNotFound is returned when no status was persisted for a reminder.
var ErrStatusNotFound = errors.New("reminder status not found")

// StatusRepository records reminder lifecycle status outside the engine.
type StatusRepository interface {
	// PersistStatus upserts the status of a reminder
	PersistStatus(ctx context.Context, reminderID string, status entity.ReminderStatus) error

	// FindStatus returns the last persisted status, or ErrStatusNotFound
	FindStatus(ctx context.Context, reminderID string) (entity.ReminderStatus, error)
}
