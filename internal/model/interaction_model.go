package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Interaction struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientId          uuid.UUID      `gorm:"type:uuid;not null;index:idx_interactions_patient_created"`
	UserInput          string         `gorm:"type:text;not null"`
	Response           string         `gorm:"type:text"`
	Severity           string         `gorm:"type:varchar(50)"`
	Confidence         float64        `gorm:"type:numeric(4,3)"`
	RecommendedPathway string         `gorm:"type:varchar(100)"`
	IsEmergency        bool           `gorm:"default:false"`
	NeedsEscalation    bool           `gorm:"default:false;index"`
	Status             string         `gorm:"type:varchar(50);not null;default:'completed'"`
	ActionPlan         datatypes.JSON `gorm:"type:jsonb"`
	ErrorDetail        string         `gorm:"type:text"`
	CreatedAt          time.Time      `gorm:"autoCreateTime;index:idx_interactions_patient_created"`
}

func (Interaction) TableName() string {
	return "interactions"
}
