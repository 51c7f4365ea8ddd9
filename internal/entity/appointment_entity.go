// FILE: internal/entity/appointment_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	Id             uuid.UUID
	PatientId      uuid.UUID
	DoctorId       uuid.UUID
	HospitalId     uuid.UUID
	ScheduledAt    time.Time
	Status         AppointmentStatus
	Reason         string
	ReminderSentAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
