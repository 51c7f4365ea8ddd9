package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	DoctorId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	HospitalId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ScheduledAt    time.Time  `gorm:"not null;index"`
	Status         string     `gorm:"type:varchar(50);not null;default:'booked'"`
	Reason         string     `gorm:"type:text"`
	ReminderSentAt *time.Time
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Appointment) TableName() string {
	return "appointments"
}
