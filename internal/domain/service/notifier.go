package service

import (
	"context"
)

// ChannelImportance controls how intrusively a notification channel alerts the user.
type ChannelImportance string

const (
	ChannelImportanceDefault ChannelImportance = "default"
	ChannelImportanceHigh    ChannelImportance = "high"
)

// ChannelConfig describes the notification channel reminders are posted to.
type ChannelConfig struct {
	ID         string
	Name       string
	Importance ChannelImportance
}

// NotificationSpec is a fully built notification ready for display.
type NotificationSpec struct {
	ID        string
	ChannelID string
	Title     string
	Body      string
	Data      map[string]string
}

// Notifier defines the interface for the local notification system
type Notifier interface {
	CreateChannel(ctx context.Context, cfg ChannelConfig) error

	// Display shows the notification and returns the id it was displayed under
	Display(ctx context.Context, spec NotificationSpec) (string, error)

	Cancel(ctx context.Context, notificationID string) error

	CancelAll(ctx context.Context) error
}
