// FILE: internal/entity/hospital_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Hospital struct {
	Id               uuid.UUID
	Name             string
	Address          string
	City             string
	Phone            string
	Specialties      []string
	EmergencyCapable bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Doctor struct {
	Id         uuid.UUID
	HospitalId uuid.UUID
	FullName   string
	Specialty  string
	// Availability maps weekday names to bookable hour slots, e.g.
	// {"monday": ["09:00", "10:00"]}.
	Availability map[string][]string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
