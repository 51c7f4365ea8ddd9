package triage

import (
	"context"
	"log"
)

// MedicalDisclaimer is appended to every finalized action plan.
const MedicalDisclaimer = "This is not a substitute for professional medical advice. " +
	"Always consult a qualified healthcare provider for diagnosis and treatment."

// stage identifies a node in the fixed workflow graph. The topology is
// small and static, so a switch dispatcher replaces a graph library.
type stage int

const (
	stageTriage stage = iota
	stageCheckEmergency
	stageCheckConfidence
	stageRecommendPathway
	stageExecuteAction
	stageEscalate
	stageFinalize
	stageDone
)

// Workflow sequences the staged triage pipeline:
//
//	Triage -> CheckEmergency -> CheckConfidence -> {RecommendPathway -> ExecuteAction | Escalate | skip} -> Finalize
//
// Every patient message either produces actionable guidance or is forcibly
// escalated; Run never aborts on a stage failure. One Run owns its Case
// exclusively, so concurrent runs need no locking.
type Workflow struct {
	gateway *Gateway
	logger  *log.Logger
}

func NewWorkflow(gateway *Gateway, logger *log.Logger) *Workflow {
	return &Workflow{gateway: gateway, logger: logger}
}

// Run executes the workflow for one patient message and returns the
// completed case record. Stage-local failures are recorded in Case.Error
// and replaced with conservative defaults; the returned case is always
// fully populated.
func (w *Workflow) Run(ctx context.Context, patientID, userInput string, history []Exchange) *Case {
	c := &Case{
		PatientID:           patientID,
		UserInput:           userInput,
		ConversationHistory: history,
		Confidence:          1.0,
	}

	for s := stageTriage; s != stageDone; {
		switch s {
		case stageTriage:
			s = w.runTriage(ctx, c)
		case stageCheckEmergency:
			s = w.checkEmergency(c)
		case stageCheckConfidence:
			s = w.checkConfidence(c)
		case stageRecommendPathway:
			s = w.recommendPathway(ctx, c)
		case stageExecuteAction:
			s = w.executeAction(ctx, c)
		case stageEscalate:
			s = w.escalate(c)
		case stageFinalize:
			s = w.finalize(c)
		}
	}

	return c
}

func (w *Workflow) runTriage(ctx context.Context, c *Case) stage {
	result, err := w.gateway.PerformTriage(ctx, c.UserInput, c.ConversationHistory)
	if err != nil {
		w.logger.Printf("[WORKFLOW] Triage stage failed: %v", err)
		c.setError("triage failed: " + err.Error())
		// Never fail open to self_care.
		c.Severity = SeverityReferral
		return stageCheckEmergency
	}

	c.TriageResult = result
	switch {
	case result.Severity != "":
		c.Severity = result.Severity
	case result.NeedsMoreInfo:
		c.Severity = SeverityUnknown
	default:
		c.Severity = SeverityReferral
	}
	if result.Confidence != nil {
		c.Confidence = *result.Confidence
	} else {
		c.Confidence = 0.5
	}
	c.IsEmergency = result.Severity == SeverityEmergency

	return stageCheckEmergency
}

// checkEmergency is a pure branch, evaluated before the confidence gate so
// an emergency always overrides a low-confidence reading.
func (w *Workflow) checkEmergency(c *Case) stage {
	c.IsEmergency = c.Severity == SeverityEmergency
	if c.IsEmergency {
		return stageEscalate
	}
	return stageCheckConfidence
}

// checkConfidence gates on the information-gathering state first: an
// incomplete case skips to finalize rather than escalating, regardless of
// its confidence value.
func (w *Workflow) checkConfidence(c *Case) stage {
	if c.Severity == SeverityUnknown {
		c.SkipToFinalize = true
		return stageFinalize
	}
	if c.Confidence < w.gateway.cfg.ConfidenceThreshold {
		return stageEscalate
	}
	return stageRecommendPathway
}

func (w *Workflow) recommendPathway(ctx context.Context, c *Case) stage {
	pathway, err := w.gateway.RecommendPathway(ctx, c.TriageResult, patientContext(c))
	if err != nil {
		w.logger.Printf("[WORKFLOW] Pathway stage failed: %v", err)
		c.setError("care pathway failed: " + err.Error())
		c.RecommendedPathway = PathwayNoAction
		return stageExecuteAction
	}

	c.CarePathway = pathway
	c.RecommendedPathway = pathway.RecommendedPathway
	if c.RecommendedPathway == "" {
		c.RecommendedPathway = PathwayNoAction
	}
	return stageExecuteAction
}

func (w *Workflow) executeAction(ctx context.Context, c *Case) stage {
	plan, err := w.gateway.ExecuteAction(ctx, c.CarePathway, patientContext(c))
	if err != nil {
		w.logger.Printf("[WORKFLOW] Action stage failed: %v", err)
		c.setError("action execution failed: " + err.Error())
		c.ActionPlan = &ActionPlan{Error: err.Error()}
		return stageFinalize
	}

	c.ActionPlan = plan
	return stageFinalize
}

func (w *Workflow) escalate(c *Case) stage {
	c.NeedsEscalation = true
	reason := "Confidence threshold not met, case requires clinician review"
	if c.IsEmergency {
		reason = "Emergency detected, case requires immediate clinician review"
	}
	c.ActionPlan = &ActionPlan{
		Action: "escalate_to_clinician",
		Reason: reason,
		Steps: []string{
			"Contacting healthcare provider",
			"Escalating case for immediate review",
		},
	}
	return stageFinalize
}

func (w *Workflow) finalize(c *Case) stage {
	if c.ActionPlan == nil {
		c.ActionPlan = &ActionPlan{}
	}
	c.ActionPlan.MedicalDisclaimer = MedicalDisclaimer
	return stageDone
}

func patientContext(c *Case) map[string]string {
	return map[string]string{"patient_id": c.PatientID}
}
