package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCity struct {
	City string
}

func (s ByCity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("city ILIKE ?", s.City)
}

// HasSpecialty matches hospitals whose jsonb specialties array contains the
// given value.
type HasSpecialty struct {
	Specialty string
}

func (s HasSpecialty) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("specialties @> ?", `["`+s.Specialty+`"]`)
}

type EmergencyCapable struct{}

func (s EmergencyCapable) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("emergency_capable = ?", true)
}

type ByHospital struct {
	HospitalID uuid.UUID
}

func (s ByHospital) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("hospital_id = ?", s.HospitalID)
}

type BySpecialty struct {
	Specialty string
}

func (s BySpecialty) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("specialty = ?", s.Specialty)
}
