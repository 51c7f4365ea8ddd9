// FILE: internal/dto/appointment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	DoctorId    uuid.UUID `json:"doctor_id" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Reason      string    `json:"reason" validate:"omitempty,max=1000"`
}

type AppointmentResponse struct {
	Id           uuid.UUID `json:"id"`
	DoctorId     uuid.UUID `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name,omitempty"`
	HospitalId   uuid.UUID `json:"hospital_id"`
	HospitalName string    `json:"hospital_name,omitempty"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
