// FILE: internal/dto/hospital_dto.go
package dto

import (
	"github.com/google/uuid"
)

type HospitalQuery struct {
	City             string `query:"city"`
	Specialty        string `query:"specialty"`
	EmergencyCapable bool   `query:"emergency_capable"`
}

type HospitalResponse struct {
	Id               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	Phone            string    `json:"phone"`
	Specialties      []string  `json:"specialties,omitempty"`
	EmergencyCapable bool      `json:"emergency_capable"`
}

type DoctorResponse struct {
	Id           uuid.UUID           `json:"id"`
	HospitalId   uuid.UUID           `json:"hospital_id"`
	FullName     string              `json:"full_name"`
	Specialty    string              `json:"specialty"`
	Availability map[string][]string `json:"availability,omitempty"`
}
