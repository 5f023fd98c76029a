package service

import (
	"context"
)

// TriggerEvent is published whenever a reminder fires, for downstream message dispatch.
type TriggerEvent struct {
	RequestID      string         `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string         `json:"notification_id"`
	ReminderID     string         `json:"reminder_id"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	Radius         float64        `json:"radius"`
	Payload        map[string]any `json:"payload,omitempty"`
	TriggeredAt    string         `json:"triggered_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTriggerEvent publishes a reminder trigger for async processing
	PublishTriggerEvent(ctx context.Context, event *TriggerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
