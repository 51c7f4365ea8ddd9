package triage

// Severity is a triage severity tier.
type Severity string

const (
	SeveritySelfCare  Severity = "self_care"
	SeverityReferral  Severity = "referral"
	SeverityUrgent    Severity = "urgent"
	SeverityEmergency Severity = "emergency"

	// SeverityUnknown marks a case still in information gathering.
	SeverityUnknown Severity = "unknown"
)

// Pathway is a recommended care pathway.
type Pathway string

const (
	PathwayNoAction            Pathway = "no_action"
	PathwaySelfCareAdvice      Pathway = "self_care_advice"
	PathwayOTCTreatment        Pathway = "otc_treatment"
	PathwayScheduleFollowUp    Pathway = "schedule_follow_up"
	PathwayScheduleSpecialist  Pathway = "schedule_specialist"
	PathwayTelehealth          Pathway = "telehealth"
	PathwayEmergencyEscalation Pathway = "emergency_escalation"
)

// Exchange is one prior user/assistant turn, oldest first.
type Exchange struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// TriageResult is the structured output of the triage model call.
// Severity and Confidence are optional: the model omits them while it is
// still asking follow-up questions.
type TriageResult struct {
	NeedsMoreInfo      bool     `json:"needs_more_info"`
	Severity           Severity `json:"severity,omitempty"`
	Reasoning          string   `json:"reasoning,omitempty"`
	Recommendation     string   `json:"recommendation"`
	PossibleConditions []string `json:"possible_conditions,omitempty"`
	SuggestedActions   []string `json:"suggested_actions,omitempty"`
	Medications        []string `json:"medications,omitempty"`
	Disclaimer         string   `json:"disclaimer,omitempty"`
	Confidence         *float64 `json:"confidence,omitempty"`
	Escalated          bool     `json:"escalated,omitempty"`
}

// PathwayResult is the structured output of the care pathway model call.
type PathwayResult struct {
	RecommendedPathway Pathway  `json:"recommended_pathway"`
	Reasoning          string   `json:"reasoning,omitempty"`
	SpecificActions    []string `json:"specific_actions,omitempty"`
	UrgencyTimeframe   string   `json:"urgency_timeframe,omitempty"`
	SafetyNetting      string   `json:"safety_netting,omitempty"`
	Disclaimers        []string `json:"disclaimers,omitempty"`
	Confidence         float64  `json:"confidence,omitempty"`
}

// ActionPlan is the structured output of the action execution model call.
// MedicalDisclaimer is injected by the workflow at finalize, never by the model.
type ActionPlan struct {
	Action            string   `json:"action,omitempty"`
	Reason            string   `json:"reason,omitempty"`
	Steps             []string `json:"steps,omitempty"`
	EstimatedTime     string   `json:"estimated_time,omitempty"`
	ExternalLinks     []string `json:"external_links,omitempty"`
	FollowUpNeeded    bool     `json:"follow_up_needed,omitempty"`
	Disclaimers       []string `json:"disclaimers,omitempty"`
	Error             string   `json:"error,omitempty"`
	MedicalDisclaimer string   `json:"medical_disclaimer,omitempty"`
}

// Case is the record threaded through one workflow run. It lives for the
// duration of a single Run call; callers persist a snapshot if they need one.
type Case struct {
	PatientID           string
	UserInput           string
	ConversationHistory []Exchange

	TriageResult *TriageResult
	Severity     Severity
	IsEmergency  bool

	CarePathway        *PathwayResult
	RecommendedPathway Pathway

	ActionPlan *ActionPlan

	NeedsEscalation bool
	Confidence      float64
	Error           string
	SkipToFinalize  bool
}

// setError records a stage-local failure. The first failure wins; later
// stages proceed with their safe defaults without overwriting it.
func (c *Case) setError(msg string) {
	if c.Error == "" {
		c.Error = msg
	}
}
