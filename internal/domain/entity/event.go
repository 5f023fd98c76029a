package entity

import "time"

// LifecycleEventKind identifies what happened inside the engine.
type LifecycleEventKind string

const (
	EventServiceStart         LifecycleEventKind = "service_start"
	EventServiceStop          LifecycleEventKind = "service_stop"
	EventServicePause         LifecycleEventKind = "service_pause"
	EventServiceResume        LifecycleEventKind = "service_resume"
	EventNotificationReceived LifecycleEventKind = "notification_received"
)

// LifecycleEvent is emitted on every service transition and reminder trigger.
type LifecycleEvent struct {
	Kind           LifecycleEventKind `json:"kind"`
	OccurredAt     time.Time          `json:"occurred_at"`
	Reminder       *LocationReminder  `json:"reminder,omitempty"`        // Set for notification_received.
	NotificationID string             `json:"notification_id,omitempty"` // Set for notification_received.
	Position       *Position          `json:"position,omitempty"`        // Position that triggered the reminder.
}
