package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		found bool
	}{
		{
			name:  "bare object",
			raw:   `{"a":1}`,
			want:  `{"a":1}`,
			found: true,
		},
		{
			name:  "markdown fenced",
			raw:   "Here you go:\n```json\n{\"severity\": \"urgent\"}\n```\nHope that helps!",
			want:  `{"severity": "urgent"}`,
			found: true,
		},
		{
			name:  "nested objects",
			raw:   `prefix {"outer": {"inner": 2}} suffix`,
			want:  `{"outer": {"inner": 2}}`,
			found: true,
		},
		{
			name:  "braces inside strings",
			raw:   `{"note": "use {caution} here", "ok": true} trailing`,
			want:  `{"note": "use {caution} here", "ok": true}`,
			found: true,
		},
		{
			name:  "escaped quote inside string",
			raw:   `{"note": "he said \"wait}\"", "ok": true}`,
			want:  `{"note": "he said \"wait}\"", "ok": true}`,
			found: true,
		},
		{
			name:  "no braces",
			raw:   "I am not able to answer in JSON.",
			found: false,
		},
		{
			name:  "unbalanced",
			raw:   `{"severity": "urgent"`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.raw)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParse_Strict(t *testing.T) {
	var result TriageResult
	err := Parse(`{"severity": "self_care", "recommendation": "rest", "confidence": 0.9}`, &result)

	require.NoError(t, err)
	assert.Equal(t, SeveritySelfCare, result.Severity)
	require.NotNil(t, result.Confidence)
	assert.InDelta(t, 0.9, *result.Confidence, 1e-9)
}

func TestParse_ExtractsFromProse(t *testing.T) {
	raw := "Sure! Based on the symptoms:\n```json\n{\"recommended_pathway\": \"telehealth\", \"reasoning\": \"minor\"}\n```"

	var result PathwayResult
	err := Parse(raw, &result)

	require.NoError(t, err)
	assert.Equal(t, PathwayTelehealth, result.RecommendedPathway)
}

func TestParse_SentinelOnGarbage(t *testing.T) {
	var result TriageResult
	err := Parse("the model refused to answer", &result)

	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "the model refused to answer", pe.Raw)
	assert.True(t, IsParseError(err))
}

func TestParse_OmittedConfidenceStaysNil(t *testing.T) {
	var result TriageResult
	err := Parse(`{"needs_more_info": true, "recommendation": "how long has this lasted?"}`, &result)

	require.NoError(t, err)
	assert.Nil(t, result.Confidence)
	assert.Equal(t, Severity(""), result.Severity)
	assert.True(t, result.NeedsMoreInfo)
}
