package usecase

import (
	"context"

	"georemind/internal/domain/entity"
)

// Callbacks is a set of optional observers invoked synchronously on engine transitions.
// Only one set is registered at a time; the last registration wins.
type Callbacks struct {
	OnServiceStart         func()
	OnServiceStop          func()
	OnServicePause         func()
	OnServiceResume        func()
	OnNotificationReceived func(reminder entity.LocationReminder, notificationID string)
}

// ReminderEngine is the facade over the geofence reminder engine.
//
// Adding a reminder to a stopped engine starts it, and removing the last
// registered reminder stops it, so location is never tracked with nothing to evaluate.
type ReminderEngine interface {
	// Lifecycle transitions. All are idempotent.
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	// ForceStop stops the engine and clears every registered reminder
	ForceStop(ctx context.Context) error
	// EmergencyStop halts tracking and resets all in-memory state without
	// cancelling notifications or notifying observers. It never fails.
	EmergencyStop()

	// Reminder management
	AddReminder(ctx context.Context, spec entity.ReminderSpec) (entity.LocationReminder, error)
	RemoveReminder(ctx context.Context, id string) error
	ActivateReminder(ctx context.Context, id string) error
	DeactivateReminder(ctx context.Context, id string) error
	ExpireReminder(ctx context.Context, id string) error
	GetReminder(ctx context.Context, id string) (entity.LocationReminder, error)

	// ServiceInfo returns a snapshot of the engine state
	ServiceInfo(ctx context.Context) entity.ServiceInfo

	// Observers
	RegisterCallbacks(callbacks Callbacks)
	UnregisterCallbacks()
	// Events returns a bounded stream of lifecycle events. Events are dropped when the buffer is full.
	Events() <-chan entity.LifecycleEvent

	// Shutdown stops tracking and waits for background persistence and publishing to finish
	Shutdown(ctx context.Context) error
}
