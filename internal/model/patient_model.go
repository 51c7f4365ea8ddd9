package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Patient struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	FullName       string         `gorm:"type:varchar(255);not null"`
	DateOfBirth    *time.Time     `gorm:"type:date"`
	Gender         string         `gorm:"type:varchar(20)"`
	Phone          string         `gorm:"type:varchar(30)"`
	MedicalHistory datatypes.JSON `gorm:"type:jsonb"`
	Allergies      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Patient) TableName() string {
	return "patients"
}

type MedicalEvent struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientId   uuid.UUID `gorm:"type:uuid;not null;index"`
	EventType   string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	OccurredAt  time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (MedicalEvent) TableName() string {
	return "medical_events"
}
