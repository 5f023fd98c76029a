package impl

import (
	"cmp"
	"slices"
	"time"

	"georemind/internal/domain/entity"
)

// reminderRegistry is the in-memory store of location reminders keyed by id.
// It is not safe for concurrent use; the engine serialises every call under its own lock.
// Reads return copies so callers never hold references into the registry.
type reminderRegistry struct {
	reminders map[string]*entity.LocationReminder
	now       func() time.Time
}

func newReminderRegistry(now func() time.Time) *reminderRegistry {
	return &reminderRegistry{
		reminders: make(map[string]*entity.LocationReminder),
		now:       now,
	}
}

// Add upserts the reminder as active and pending, stamping CreatedAt.
func (r *reminderRegistry) Add(reminder entity.LocationReminder) entity.LocationReminder {
	stored := reminder.Clone()
	stored.IsActive = true
	stored.Status = entity.ReminderStatusPending
	stored.CreatedAt = r.now()

	r.reminders[stored.ID] = &stored

	return stored.Clone()
}

// Remove deletes the reminder. It reports whether a reminder was removed.
func (r *reminderRegistry) Remove(id string) bool {
	if _, ok := r.reminders[id]; !ok {
		return false
	}
	delete(r.reminders, id)

	return true
}

func (r *reminderRegistry) Get(id string) (entity.LocationReminder, bool) {
	reminder, ok := r.reminders[id]
	if !ok {
		return entity.LocationReminder{}, false
	}

	return reminder.Clone(), true
}

// Deactivate excludes the reminder from evaluation and leaves its status untouched.
func (r *reminderRegistry) Deactivate(id string) bool {
	reminder, ok := r.reminders[id]
	if !ok {
		return false
	}
	reminder.IsActive = false

	return true
}

// Activate re-arms the reminder: active again and back to pending.
func (r *reminderRegistry) Activate(id string) bool {
	reminder, ok := r.reminders[id]
	if !ok {
		return false
	}
	reminder.IsActive = true
	reminder.Status = entity.ReminderStatusPending

	return true
}

func (r *reminderRegistry) SetStatus(id string, status entity.ReminderStatus) bool {
	reminder, ok := r.reminders[id]
	if !ok {
		return false
	}
	reminder.Status = status

	return true
}

// ActiveReminders returns a snapshot of every reminder still eligible for evaluation.
func (r *reminderRegistry) ActiveReminders() []entity.LocationReminder {
	return r.collect(func(reminder *entity.LocationReminder) bool { return reminder.IsActive })
}

func (r *reminderRegistry) InactiveReminders() []entity.LocationReminder {
	return r.collect(func(reminder *entity.LocationReminder) bool { return !reminder.IsActive })
}

func (r *reminderRegistry) Count() int {
	return len(r.reminders)
}

func (r *reminderRegistry) ActiveCount() int {
	count := 0
	for _, reminder := range r.reminders {
		if reminder.IsActive {
			count++
		}
	}

	return count
}

func (r *reminderRegistry) IsEmpty() bool {
	return len(r.reminders) == 0
}

func (r *reminderRegistry) Clear() {
	clear(r.reminders)
}

// collect copies matching reminders, oldest first so snapshots are stable.
func (r *reminderRegistry) collect(match func(*entity.LocationReminder) bool) []entity.LocationReminder {
	result := make([]entity.LocationReminder, 0, len(r.reminders))
	for _, reminder := range r.reminders {
		if match(reminder) {
			result = append(result, reminder.Clone())
		}
	}

	slices.SortFunc(result, func(a, b entity.LocationReminder) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return result
}
