package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hospital struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string         `gorm:"type:varchar(255);not null"`
	Address          string         `gorm:"type:text"`
	City             string         `gorm:"type:varchar(100);index"`
	Phone            string         `gorm:"type:varchar(30)"`
	Specialties      datatypes.JSON `gorm:"type:jsonb"`
	EmergencyCapable bool           `gorm:"default:false;index"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

type Doctor struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HospitalId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	FullName     string         `gorm:"type:varchar(255);not null"`
	Specialty    string         `gorm:"type:varchar(100);index"`
	Availability datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Doctor) TableName() string {
	return "doctors"
}
