package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ScheduledBetween struct {
	From time.Time
	To   time.Time
}

func (s ScheduledBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scheduled_at >= ? AND scheduled_at < ?", s.From, s.To)
}

// ReminderDue selects booked appointments inside the reminder window that
// have not been reminded yet.
type ReminderDue struct {
	Before time.Time
}

func (s ReminderDue) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ? AND scheduled_at <= ? AND scheduled_at > NOW() AND reminder_sent_at IS NULL",
		"booked", s.Before)
}

type UnreadOnly struct{}

func (s UnreadOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("read = ?", false)
}
