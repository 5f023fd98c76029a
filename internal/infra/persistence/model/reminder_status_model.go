package model

import "time"

// ReminderStatusModel holds the latest status of each reminder.
type ReminderStatusModel struct {
	ReminderID string    `gorm:"column:reminder_id;type:varchar(64);primaryKey"`
	Status     string    `gorm:"column:status;type:varchar(16);not null;check:chk_reminder_status,status IN ('pending','sent','expired')"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (ReminderStatusModel) TableName() string {
	return "reminder_statuses"
}

// ReminderStatusEventModel is an append-only history of status changes.
type ReminderStatusEventModel struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ReminderID string    `gorm:"column:reminder_id;type:varchar(64);not null;index:idx_reminder_status_events_reminder"`
	Status     string    `gorm:"column:status;type:varchar(16);not null"`
	RecordedAt time.Time `gorm:"column:recorded_at;not null"`
}

func (ReminderStatusEventModel) TableName() string {
	return "reminder_status_events"
}
