// FILE: internal/entity/notification_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeEscalation  NotificationType = "escalation"
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeReminder    NotificationType = "reminder"
)

type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      NotificationType
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}
