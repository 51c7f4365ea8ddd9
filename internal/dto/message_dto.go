// FILE: internal/dto/message_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// PersistInteractionMessage is the watermill payload handed from the triage
// endpoint to the background consumer that writes the interaction record.
type PersistInteractionMessage struct {
	InteractionId      uuid.UUID              `json:"interaction_id"`
	PatientId          uuid.UUID              `json:"patient_id"`
	UserInput          string                 `json:"user_input"`
	Response           string                 `json:"response"`
	Severity           string                 `json:"severity"`
	Confidence         float64                `json:"confidence"`
	RecommendedPathway string                 `json:"recommended_pathway"`
	IsEmergency        bool                   `json:"is_emergency"`
	NeedsEscalation    bool                   `json:"needs_escalation"`
	Status             string                 `json:"status"`
	ActionPlan         map[string]interface{} `json:"action_plan,omitempty"`
	ErrorDetail        string                 `json:"error_detail,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
}
