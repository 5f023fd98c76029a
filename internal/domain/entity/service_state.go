package entity

// ServiceStatus is the engine's top-level mode.
type ServiceStatus string

const (
	ServiceStatusStopped ServiceStatus = "stopped"
	ServiceStatusRunning ServiceStatus = "running"
	ServiceStatusPaused  ServiceStatus = "paused"
)

// ServiceState is the engine's tracking state. Status is always derived from Tracking and Paused.
type ServiceState struct {
	Tracking             bool          `json:"tracking"`
	Paused               bool          `json:"paused"`
	Status               ServiceStatus `json:"status"`
	LastLocation         *Position     `json:"last_location,omitempty"`
	ActiveRemindersCount int           `json:"active_reminders_count"`
}

// ServiceInfo is a read-only snapshot of the engine for observers.
type ServiceInfo struct {
	Tracking                 bool               `json:"tracking"`
	Paused                   bool               `json:"paused"`
	Status                   ServiceStatus      `json:"status"`
	ActiveRemindersCount     int                `json:"active_reminders_count"`
	ActiveReminders          []LocationReminder `json:"active_reminders"`
	InactiveReminders        []LocationReminder `json:"inactive_reminders"`
	LastLocation             *Position          `json:"last_location,omitempty"`
	OutstandingNotifications []string           `json:"outstanding_notifications"`
}
