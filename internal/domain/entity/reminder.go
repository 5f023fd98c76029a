// Package entity contains the core business objects of the project.
package entity

import (
	"maps"
	"time"

	"github.com/paulmach/orb"
)

// ReminderStatus is the lifecycle marker of a location reminder.
type ReminderStatus string

const (
	ReminderStatusPending ReminderStatus = "pending" // Never fired, or re-armed.
	ReminderStatusSent    ReminderStatus = "sent"    // Notification was displayed.
	ReminderStatusExpired ReminderStatus = "expired" // Invalidated without firing.
)

// IsValid reports whether s is a known status.
func (s ReminderStatus) IsValid() bool {
	switch s {
	case ReminderStatusPending, ReminderStatusSent, ReminderStatusExpired:
		return true
	default:
		return false
	}
}

// LocationReminder is a user-defined geofence that notifies once when the device enters it.
type LocationReminder struct {
	ID        string         `json:"id"`         // Unique identifier, caller- or engine-generated.
	Latitude  float64        `json:"latitude"`   // Latitude of the geofence center, in degrees.
	Longitude float64        `json:"longitude"`  // Longitude of the geofence center, in degrees.
	Radius    float64        `json:"radius"`     // Trigger radius in meters.
	Title     string         `json:"title"`      // Notification title.
	Message   string         `json:"message"`    // Notification body.
	Payload   map[string]any `json:"payload"`    // Opaque reminder data forwarded with the notification.
	IsActive  bool           `json:"is_active"`  // Whether the reminder is evaluated against location updates.
	Status    ReminderStatus `json:"status"`     // Lifecycle marker.
	CreatedAt time.Time      `json:"created_at"` // When the reminder was registered.
}

// Point returns the geofence center as an orb point (lng, lat).
func (r *LocationReminder) Point() orb.Point {
	return orb.Point{r.Longitude, r.Latitude}
}

// Clone returns a copy that shares no mutable state with r.
func (r *LocationReminder) Clone() LocationReminder {
	cloned := *r
	if r.Payload != nil {
		cloned.Payload = maps.Clone(r.Payload)
	}

	return cloned
}

// ReminderSpec is the caller input for registering a reminder.
type ReminderSpec struct {
	ID        string         `json:"id,omitempty"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Radius    float64        `json:"radius"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
}
