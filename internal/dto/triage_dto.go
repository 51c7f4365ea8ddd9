// FILE: internal/dto/triage_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type TriageChatRequest struct {
	Message string               `json:"message" validate:"required,min=1,max=4000"`
	Media   []MediaAttachmentDTO `json:"media,omitempty" validate:"max=5,dive"`
}

// MediaAttachmentDTO describes an uploaded file by metadata only. The file
// itself is not stored; a summary of the attachment is appended to the
// message for model context.
type MediaAttachmentDTO struct {
	Type string `json:"type" validate:"required,max=50"`
	Name string `json:"name" validate:"max=255"`
	Size int64  `json:"size" validate:"min=0"`
}

// TriageChatResponse is the shaped pipeline outcome returned to the client.
// Exactly one of the three states holds: gathering_info (follow-up question),
// escalated (clinician takeover), or completed (actionable plan).
type TriageChatResponse struct {
	InteractionId      uuid.UUID      `json:"interaction_id"`
	Status             string         `json:"status"`
	Response           string         `json:"response"`
	Severity           string         `json:"severity"`
	Confidence         float64        `json:"confidence"`
	IsEmergency        bool           `json:"is_emergency"`
	NeedsEscalation    bool           `json:"needs_escalation"`
	RecommendedPathway string         `json:"recommended_pathway,omitempty"`
	ActionPlan         *ActionPlanDTO `json:"action_plan,omitempty"`
	QuotaRemaining     int            `json:"quota_remaining"`
}

type ActionPlanDTO struct {
	Action            string   `json:"action"`
	Steps             []string `json:"steps,omitempty"`
	Reason            string   `json:"reason,omitempty"`
	EstimatedTime     string   `json:"estimated_time,omitempty"`
	FollowUpNeeded    bool     `json:"follow_up_needed"`
	MedicalDisclaimer string   `json:"medical_disclaimer"`
}

type InteractionResponse struct {
	Id                 uuid.UUID              `json:"id"`
	UserInput          string                 `json:"user_input"`
	Response           string                 `json:"response"`
	Severity           string                 `json:"severity"`
	Confidence         float64                `json:"confidence"`
	RecommendedPathway string                 `json:"recommended_pathway,omitempty"`
	IsEmergency        bool                   `json:"is_emergency"`
	NeedsEscalation    bool                   `json:"needs_escalation"`
	Status             string                 `json:"status"`
	ActionPlan         map[string]interface{} `json:"action_plan,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
}
