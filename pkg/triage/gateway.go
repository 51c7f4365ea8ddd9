package triage

import (
	"context"
	"errors"
	"log"

	"medtriage-be/pkg/llm"
)

// DefaultConfidenceThreshold is the escalation cutoff when none is configured.
const DefaultConfidenceThreshold = 0.6

// GatewayConfig carries the model-call knobs. All values come from
// configuration; the gateway applies them unchanged.
type GatewayConfig struct {
	ConfidenceThreshold float64
	Temperature         float64
	MaxTokens           int
}

// Gateway issues the three prompt-based model calls and turns free-form
// replies into structured results. Parse failures are absorbed into
// operation-specific conservative fallbacks; transport failures propagate to
// the calling workflow stage, which records them and substitutes its own
// safe default.
//
// A Gateway holds no per-call state and may be shared across concurrent
// workflow runs.
type Gateway struct {
	provider llm.Provider
	detector *EmergencyDetector
	prompts  *Prompts
	cfg      GatewayConfig
	logger   *log.Logger
}

func NewGateway(provider llm.Provider, detector *EmergencyDetector, prompts *Prompts, cfg GatewayConfig, logger *log.Logger) *Gateway {
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if detector == nil {
		detector = NewEmergencyDetector(nil)
	}
	if prompts == nil {
		prompts = DefaultPrompts()
	}
	return &Gateway{
		provider: provider,
		detector: detector,
		prompts:  prompts,
		cfg:      cfg,
		logger:   logger,
	}
}

// PerformTriage classifies the patient's message. Obviously dangerous text
// short-circuits to a maximum-severity result before any model call.
func (g *Gateway) PerformTriage(ctx context.Context, input string, history []Exchange) (*TriageResult, error) {
	if g.detector.Detect(input) {
		g.logger.Printf("[TRIAGE] Emergency keyword detected, bypassing model")
		return emergencyTriageResult(), nil
	}

	prompt := g.prompts.BuildTriage(input, history)
	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result TriageResult
	if perr := Parse(raw, &result); perr != nil || result.Recommendation == "" {
		g.logger.Printf("[WARN] Triage reply unparsable, using gather-info fallback: %v", perr)
		result = gatherInfoFallback()
	}

	// Escalation flag needs both signals present; a reply that is still
	// gathering information never escalates on its own.
	if result.Confidence != nil && result.Severity != "" {
		result.Escalated = *result.Confidence < g.cfg.ConfidenceThreshold ||
			result.Severity == SeverityUrgent || result.Severity == SeverityEmergency
	} else {
		result.Escalated = false
	}

	return &result, nil
}

// RecommendPathway maps a completed triage onto one of the enumerated care
// pathways.
func (g *Gateway) RecommendPathway(ctx context.Context, triageResult *TriageResult, patientContext map[string]string) (*PathwayResult, error) {
	prompt := g.prompts.BuildPathway(triageResult, patientContext)
	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result PathwayResult
	if perr := Parse(raw, &result); perr != nil || result.RecommendedPathway == "" {
		g.logger.Printf("[WARN] Pathway reply unparsable, using referral fallback: %v", perr)
		result = pathwayFallback()
	}
	return &result, nil
}

// ExecuteAction expands a pathway into an ordered list of concrete steps.
// No keyword pre-check and no confidence post-processing happen here.
func (g *Gateway) ExecuteAction(ctx context.Context, pathway *PathwayResult, patientContext map[string]string) (*ActionPlan, error) {
	prompt := g.prompts.BuildAction(pathway, patientContext)
	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var plan ActionPlan
	if perr := Parse(raw, &plan); perr != nil || plan.Action == "" {
		g.logger.Printf("[WARN] Action reply unparsable, using follow-up fallback: %v", perr)
		plan = actionFallback()
	}
	return &plan, nil
}

func (g *Gateway) generate(ctx context.Context, prompt string) (string, error) {
	opts := []llm.Option{llm.WithTemperature(g.cfg.Temperature)}
	if g.cfg.MaxTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(g.cfg.MaxTokens))
	}
	raw, err := g.provider.Generate(ctx, prompt, opts...)
	if err != nil {
		return "", err
	}
	return raw, nil
}

// IsParseError reports whether err is the parser's sentinel.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func emergencyTriageResult() *TriageResult {
	conf := 1.0
	return &TriageResult{
		Severity:       SeverityEmergency,
		Reasoning:      "Emergency keywords detected in patient description",
		Recommendation: "IMMEDIATE MEDICAL ATTENTION REQUIRED. Call 999 or go to nearest emergency room. Do not wait.",
		SuggestedActions: []string{
			"Call emergency services (999)",
			"Go to nearest emergency department",
			"Do not drive yourself",
		},
		Disclaimer: "This is an emergency. Do not delay seeking immediate medical care.",
		Confidence: &conf,
		Escalated:  true,
	}
}

func gatherInfoFallback() TriageResult {
	conf := 0.8
	return TriageResult{
		NeedsMoreInfo:  true,
		Recommendation: "Could you please tell me more about your symptoms? How long have you been experiencing this, and are there any other symptoms?",
		SuggestedActions: []string{
			"Describe symptoms in detail",
			"Mention duration and severity",
		},
		Disclaimer: "This is not medical advice. Please consult a healthcare professional if symptoms persist.",
		Confidence: &conf,
	}
}

func pathwayFallback() PathwayResult {
	return PathwayResult{
		RecommendedPathway: PathwayScheduleFollowUp,
		Reasoning:          "Unable to interpret model output; defaulting to clinician follow-up",
		SpecificActions:    []string{"Consult with a healthcare provider"},
		SafetyNetting:      "Seek immediate care if symptoms worsen",
		Disclaimers:        []string{"This is not medical advice. Please consult a healthcare professional."},
		Confidence:         0.3,
	}
}

func actionFallback() ActionPlan {
	return ActionPlan{
		Action: "schedule_follow_up",
		Steps: []string{
			"Contact your healthcare provider to arrange a follow-up",
			"Keep a note of your symptoms and when they started",
		},
		FollowUpNeeded: true,
		Disclaimers:    []string{"This is not medical advice. Please consult a healthcare professional."},
	}
}
