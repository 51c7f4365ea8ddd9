package triage

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medtriage-be/pkg/llm"
)

// stubProvider replays canned replies in order. A nil reply list with err
// set simulates an unreachable model backend.
type stubProvider struct {
	replies []string
	err     error
	calls   int
	prompts []string
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if s.calls >= len(s.replies) {
		return "", errors.New("stub: no reply configured")
	}
	reply := s.replies[s.calls]
	s.calls++
	return reply, nil
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) == 0 {
		return "", errors.New("stub: empty history")
	}
	return s.Generate(ctx, history[len(history)-1].Content, options...)
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestGateway(p llm.Provider) *Gateway {
	return NewGateway(p, NewEmergencyDetector(nil), DefaultPrompts(), GatewayConfig{
		ConfidenceThreshold: 0.6,
		Temperature:         0.3,
		MaxTokens:           1024,
	}, testLogger())
}

func TestPerformTriage_KeywordShortCircuit(t *testing.T) {
	stub := &stubProvider{}
	g := newTestGateway(stub)

	result, err := g.PerformTriage(context.Background(), "I have severe chest pain and difficulty breathing", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, stub.calls, "model must not be consulted on the keyword path")
	assert.Equal(t, SeverityEmergency, result.Severity)
	require.NotNil(t, result.Confidence)
	assert.Equal(t, 1.0, *result.Confidence)
	assert.True(t, result.Escalated)
}

func TestPerformTriage_EscalatedFlag(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		escalated bool
	}{
		{
			name:      "low confidence",
			reply:     `{"recommendation": "see a GP", "severity": "referral", "confidence": 0.4}`,
			escalated: true,
		},
		{
			name:      "urgent severity",
			reply:     `{"recommendation": "see a GP within 24h", "severity": "urgent", "confidence": 0.95}`,
			escalated: true,
		},
		{
			name:      "confident self care",
			reply:     `{"recommendation": "clean and bandage", "severity": "self_care", "confidence": 0.9}`,
			escalated: false,
		},
		{
			name:      "missing severity never escalates",
			reply:     `{"recommendation": "how long has this lasted?", "needs_more_info": true, "confidence": 0.2}`,
			escalated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(&stubProvider{replies: []string{tt.reply}})

			result, err := g.PerformTriage(context.Background(), "my knee hurts", nil)

			require.NoError(t, err)
			assert.Equal(t, tt.escalated, result.Escalated)
		})
	}
}

func TestPerformTriage_ParseFallback(t *testing.T) {
	g := newTestGateway(&stubProvider{replies: []string{"I'm sorry, I can only answer in plain text."}})

	result, err := g.PerformTriage(context.Background(), "my knee hurts", nil)

	require.NoError(t, err)
	assert.True(t, result.NeedsMoreInfo)
	assert.NotEmpty(t, result.Recommendation)
	assert.False(t, result.Escalated)
}

func TestPerformTriage_HistoryCappedAtFive(t *testing.T) {
	stub := &stubProvider{replies: []string{`{"recommendation": "rest", "severity": "self_care", "confidence": 0.9}`}}
	g := newTestGateway(stub)

	history := []Exchange{
		{User: "turn-1", Assistant: "a1"},
		{User: "turn-2", Assistant: "a2"},
		{User: "turn-3", Assistant: "a3"},
		{User: "turn-4", Assistant: "a4"},
		{User: "turn-5", Assistant: "a5"},
		{User: "turn-6", Assistant: "a6"},
	}
	_, err := g.PerformTriage(context.Background(), "still sore", history)

	require.NoError(t, err)
	require.Len(t, stub.prompts, 1)
	assert.NotContains(t, stub.prompts[0], "turn-1")
	assert.Contains(t, stub.prompts[0], "turn-2")
	assert.Contains(t, stub.prompts[0], "turn-6")
}

func TestPerformTriage_TransportErrorPropagates(t *testing.T) {
	g := newTestGateway(&stubProvider{err: errors.New("connection refused")})

	result, err := g.PerformTriage(context.Background(), "my knee hurts", nil)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestRecommendPathway_ParseFallback(t *testing.T) {
	g := newTestGateway(&stubProvider{replies: []string{"not json at all"}})

	result, err := g.RecommendPathway(context.Background(), &TriageResult{Severity: SeverityReferral}, nil)

	require.NoError(t, err)
	assert.Equal(t, PathwayScheduleFollowUp, result.RecommendedPathway)
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
}

func TestRecommendPathway_NilTriageUsesReferralDefaults(t *testing.T) {
	stub := &stubProvider{replies: []string{`{"recommended_pathway": "schedule_follow_up", "reasoning": "needs review"}`}}
	g := newTestGateway(stub)

	result, err := g.RecommendPathway(context.Background(), nil, map[string]string{"patient_id": "p-1"})

	require.NoError(t, err)
	assert.Equal(t, PathwayScheduleFollowUp, result.RecommendedPathway)
	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Severity: referral")
	assert.Contains(t, stub.prompts[0], "patient_id: p-1")
}

func TestExecuteAction_ParseFallback(t *testing.T) {
	g := newTestGateway(&stubProvider{replies: []string{"```\nplain advice\n```"}})

	plan, err := g.ExecuteAction(context.Background(), &PathwayResult{RecommendedPathway: PathwaySelfCareAdvice}, nil)

	require.NoError(t, err)
	assert.Equal(t, "schedule_follow_up", plan.Action)
	assert.NotEmpty(t, plan.Steps)
}

func TestExecuteAction_Success(t *testing.T) {
	reply := `{"action": "provide_self_care_advice", "steps": ["rest", "hydrate"], "estimated_time": "2 days", "follow_up_needed": false}`
	g := newTestGateway(&stubProvider{replies: []string{reply}})

	plan, err := g.ExecuteAction(context.Background(), &PathwayResult{RecommendedPathway: PathwaySelfCareAdvice}, nil)

	require.NoError(t, err)
	assert.Equal(t, "provide_self_care_advice", plan.Action)
	assert.Equal(t, []string{"rest", "hydrate"}, plan.Steps)
	assert.Empty(t, plan.MedicalDisclaimer, "disclaimer is injected at finalize, not by the gateway")
}
