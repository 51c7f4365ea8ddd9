package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmergencyDetector_Defaults(t *testing.T) {
	d := NewEmergencyDetector(nil)

	assert.True(t, d.Detect("I have severe CHEST PAIN and difficulty breathing"))
	assert.True(t, d.Detect("my friend took an overdose of pills"))
	assert.True(t, d.Detect("it feels like anaphylaxis"))
	assert.False(t, d.Detect("I have a mild headache since this morning"))
	assert.False(t, d.Detect(""))
}

func TestEmergencyDetector_SubstringMatch(t *testing.T) {
	d := NewEmergencyDetector(nil)

	// Keyword embedded mid-sentence still matches
	assert.True(t, d.Detect("ever since yesterday I simply can't breathe properly"))
}

func TestEmergencyDetector_CustomKeywords(t *testing.T) {
	d := NewEmergencyDetector([]string{"Broken Bone"})

	assert.True(t, d.Detect("I think I have a broken bone in my arm"))
	// Default list is replaced, not extended
	assert.False(t, d.Detect("severe chest pain"))
}
