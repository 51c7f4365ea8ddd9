// FILE: internal/dto/patient_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	FullName       string   `json:"full_name" validate:"required,min=3"`
	DateOfBirth    string   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender         string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone          string   `json:"phone" validate:"omitempty,min=7,max=20"`
	MedicalHistory []string `json:"medical_history" validate:"max=50"`
	Allergies      []string `json:"allergies" validate:"max=50"`
}

type UpdatePatientRequest struct {
	FullName       string   `json:"full_name" validate:"omitempty,min=3"`
	Phone          string   `json:"phone" validate:"omitempty,min=7,max=20"`
	MedicalHistory []string `json:"medical_history" validate:"max=50"`
	Allergies      []string `json:"allergies" validate:"max=50"`
}

type PatientResponse struct {
	Id             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	DateOfBirth    *string   `json:"date_of_birth,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	MedicalHistory []string  `json:"medical_history,omitempty"`
	Allergies      []string  `json:"allergies,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateMedicalEventRequest struct {
	EventType   string `json:"event_type" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required"`
	OccurredAt  string `json:"occurred_at" validate:"required,datetime=2006-01-02"`
}

type MedicalEventResponse struct {
	Id          uuid.UUID `json:"id"`
	EventType   string    `json:"event_type"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
}
