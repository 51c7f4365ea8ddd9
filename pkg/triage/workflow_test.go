package triage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkflow(p *stubProvider) *Workflow {
	return NewWorkflow(newTestGateway(p), testLogger())
}

func TestRun_EmergencyKeywordBypassesModel(t *testing.T) {
	stub := &stubProvider{}
	w := newTestWorkflow(stub)

	c := w.Run(context.Background(), "p-1", "I have severe chest pain and difficulty breathing", nil)

	assert.Equal(t, 0, stub.calls, "no pathway/action model calls on the emergency path")
	assert.Equal(t, SeverityEmergency, c.Severity)
	assert.True(t, c.IsEmergency)
	assert.True(t, c.NeedsEscalation)
	assert.Equal(t, 1.0, c.Confidence)
	require.NotNil(t, c.ActionPlan)
	assert.Equal(t, "escalate_to_clinician", c.ActionPlan.Action)
	assert.Equal(t, MedicalDisclaimer, c.ActionPlan.MedicalDisclaimer)
	assert.Nil(t, c.CarePathway)
	assert.Empty(t, c.Error)
}

func TestRun_LowConfidenceEscalates(t *testing.T) {
	stub := &stubProvider{replies: []string{
		`{"recommendation": "hard to say", "severity": "referral", "confidence": 0.4}`,
	}}
	w := newTestWorkflow(stub)

	c := w.Run(context.Background(), "p-1", "I feel vaguely unwell", nil)

	assert.Equal(t, 1, stub.calls, "pathway and action stages are skipped")
	assert.True(t, c.NeedsEscalation)
	assert.False(t, c.IsEmergency)
	assert.Nil(t, c.CarePathway)
	assert.Equal(t, Pathway(""), c.RecommendedPathway)
	require.NotNil(t, c.ActionPlan)
	assert.Equal(t, "escalate_to_clinician", c.ActionPlan.Action)
	assert.Contains(t, c.ActionPlan.Reason, "Confidence threshold")
	assert.Equal(t, []string{"Contacting healthcare provider", "Escalating case for immediate review"}, c.ActionPlan.Steps)
	assert.Equal(t, MedicalDisclaimer, c.ActionPlan.MedicalDisclaimer)
}

func TestRun_GatherInfoSkipsToFinalize(t *testing.T) {
	stub := &stubProvider{replies: []string{
		`{"needs_more_info": true, "recommendation": "How long have you had the rash?", "confidence": 0.3}`,
	}}
	w := newTestWorkflow(stub)

	c := w.Run(context.Background(), "p-1", "I have a rash", nil)

	// Low confidence while gathering info routes to finalize, not escalate.
	assert.True(t, c.SkipToFinalize)
	assert.False(t, c.NeedsEscalation)
	assert.Equal(t, SeverityUnknown, c.Severity)
	assert.Nil(t, c.CarePathway)
	assert.Equal(t, 1, stub.calls)
	require.NotNil(t, c.ActionPlan)
	assert.NotEqual(t, "escalate_to_clinician", c.ActionPlan.Action)
	assert.Equal(t, MedicalDisclaimer, c.ActionPlan.MedicalDisclaimer)
}

func TestRun_FullPathway(t *testing.T) {
	stub := &stubProvider{replies: []string{
		`{"recommendation": "clean the cut, apply a bandage", "severity": "self_care", "confidence": 0.9}`,
		`{"recommended_pathway": "self_care_advice", "reasoning": "minor wound", "specific_actions": ["clean", "bandage"]}`,
		`{"action": "provide_self_care_advice", "steps": ["wash with soap", "apply plaster"], "follow_up_needed": false}`,
	}}
	w := newTestWorkflow(stub)

	c := w.Run(context.Background(), "p-1", "I have a small cut on my finger, not deep", nil)

	assert.Equal(t, 3, stub.calls)
	assert.False(t, c.NeedsEscalation)
	assert.Equal(t, SeveritySelfCare, c.Severity)
	assert.Equal(t, PathwaySelfCareAdvice, c.RecommendedPathway)
	require.NotNil(t, c.CarePathway)
	require.NotNil(t, c.ActionPlan)
	assert.Equal(t, "provide_self_care_advice", c.ActionPlan.Action)
	assert.Equal(t, MedicalDisclaimer, c.ActionPlan.MedicalDisclaimer)
	assert.Empty(t, c.Error)
}

func TestRun_UrgentHighConfidenceProceedsToPathway(t *testing.T) {
	stub := &stubProvider{replies: []string{
		`{"recommendation": "see a GP within 24h", "severity": "urgent", "confidence": 0.9}`,
		`{"recommended_pathway": "schedule_follow_up", "reasoning": "red flags"}`,
		`{"action": "book_appointment", "steps": ["call your GP"]}`,
	}}
	w := newTestWorkflow(stub)

	c := w.Run(context.Background(), "p-1", "persistent cough for 3 weeks with night sweats", nil)

	// Urgent is not emergency: the workflow still recommends a pathway.
	assert.False(t, c.NeedsEscalation)
	assert.Equal(t, SeverityUrgent, c.Severity)
	assert.Equal(t, PathwayScheduleFollowUp, c.RecommendedPathway)
	assert.Equal(t, 3, stub.calls)
}

func TestRun_TransportFailureYieldsSafeDefaults(t *testing.T) {
	stub := &stubProvider{err: errors.New("model backend unreachable")}
	w := newTestWorkflow(stub)

	c := w.Run(context.Background(), "p-1", "I have a headache", nil)

	// Triage failure forces the conservative referral default; the initial
	// confidence of 1.0 passes the gate, and the later stages fail into
	// their own defaults. First error wins.
	assert.Equal(t, SeverityReferral, c.Severity)
	assert.Contains(t, c.Error, "triage failed")
	assert.Equal(t, PathwayNoAction, c.RecommendedPathway)
	require.NotNil(t, c.ActionPlan)
	assert.NotEmpty(t, c.ActionPlan.Error)
	assert.Equal(t, MedicalDisclaimer, c.ActionPlan.MedicalDisclaimer)
	assert.False(t, c.NeedsEscalation)
}

func TestRun_MalformedRepliesNeverPanic(t *testing.T) {
	stub := &stubProvider{replies: []string{
		"TRIAGE: the patient should rest (not json)",
		"PATHWAY: also not json",
		"ACTION: still not json",
	}}
	w := newTestWorkflow(stub)

	var c *Case
	assert.NotPanics(t, func() {
		c = w.Run(context.Background(), "p-1", "I have a headache", nil)
	})

	// Unparsable triage falls back to gathering info, which skips ahead.
	assert.True(t, c.SkipToFinalize)
	assert.Equal(t, SeverityUnknown, c.Severity)
	require.NotNil(t, c.ActionPlan)
	assert.Equal(t, MedicalDisclaimer, c.ActionPlan.MedicalDisclaimer)
	assert.Empty(t, c.Error, "parse fallbacks are not stage failures")
}

func TestRun_Idempotent(t *testing.T) {
	replies := []string{
		`{"recommendation": "clean the cut", "severity": "self_care", "confidence": 0.9}`,
		`{"recommended_pathway": "self_care_advice", "reasoning": "minor wound"}`,
		`{"action": "provide_self_care_advice", "steps": ["wash", "bandage"]}`,
	}
	history := []Exchange{{User: "hi", Assistant: "hello, what brings you here?"}}

	first := newTestWorkflow(&stubProvider{replies: replies}).
		Run(context.Background(), "p-1", "small cut on finger", history)
	second := newTestWorkflow(&stubProvider{replies: replies}).
		Run(context.Background(), "p-1", "small cut on finger", history)

	assert.Equal(t, first, second)
}

func TestRun_PathwayFailureStillExecutesAction(t *testing.T) {
	// Triage succeeds, pathway reply is garbage (fallback, no error),
	// action succeeds against the fallback pathway.
	stub := &stubProvider{replies: []string{
		`{"recommendation": "see a GP", "severity": "referral", "confidence": 0.8}`,
		"garbage",
		`{"action": "schedule_follow_up", "steps": ["call the practice"]}`,
	}}
	w := newTestWorkflow(stub)

	c := w.Run(context.Background(), "p-1", "recurring stomach ache", nil)

	assert.Equal(t, 3, stub.calls)
	assert.Equal(t, PathwayScheduleFollowUp, c.RecommendedPathway)
	assert.Equal(t, "schedule_follow_up", c.ActionPlan.Action)
	assert.Empty(t, c.Error)
}
