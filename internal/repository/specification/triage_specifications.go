package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByPatient struct {
	PatientID uuid.UUID
}

func (s ByPatient) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("patient_id = ?", s.PatientID)
}

type EscalatedOnly struct{}

func (s EscalatedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("needs_escalation = ?", true)
}

type BySeverity struct {
	Severity string
}

func (s BySeverity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("severity = ?", s.Severity)
}

type CreatedAfter struct {
	Time time.Time
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Time)
}
