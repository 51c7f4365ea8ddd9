// FILE: internal/entity/interaction_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type InteractionStatus string

const (
	InteractionStatusCompleted InteractionStatus = "completed"
	InteractionStatusEscalated InteractionStatus = "escalated"
	InteractionStatusGathering InteractionStatus = "gathering_info"
)

// Interaction is one triage exchange: the patient's message plus the full
// outcome of the decision pipeline that answered it.
type Interaction struct {
	Id                 uuid.UUID
	PatientId          uuid.UUID
	UserInput          string
	Response           string
	Severity           string
	Confidence         float64
	RecommendedPathway string
	IsEmergency        bool
	NeedsEscalation    bool
	Status             InteractionStatus
	ActionPlan         map[string]interface{}
	ErrorDetail        string
	CreatedAt          time.Time
}
