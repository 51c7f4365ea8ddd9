// FILE: internal/entity/patient_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	FullName       string
	DateOfBirth    *time.Time
	Gender         string
	Phone          string
	MedicalHistory []string
	Allergies      []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MedicalEvent is an entry in the patient's longitudinal record: a past
// diagnosis, procedure, or recorded symptom episode.
type MedicalEvent struct {
	Id          uuid.UUID
	PatientId   uuid.UUID
	EventType   string
	Description string
	OccurredAt  time.Time
	CreatedAt   time.Time
}
