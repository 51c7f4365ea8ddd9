package triage

import "strings"

// DefaultEmergencyKeywords is the built-in red-flag list. Deployments can
// swap it via configuration without touching code.
var DefaultEmergencyKeywords = []string{
	"chest pain",
	"difficulty breathing",
	"shortness of breath",
	"can't breathe",
	"unconscious",
	"unresponsive",
	"severe bleeding",
	"poisoning",
	"overdose",
	"stroke",
	"heart attack",
	"seizure",
	"allergic reaction",
	"anaphylaxis",
}

// EmergencyDetector flags raw patient text that contains any emergency
// keyword. It runs before any model call so the highest-stakes path never
// depends on model output.
type EmergencyDetector struct {
	keywords []string
}

func NewEmergencyDetector(keywords []string) *EmergencyDetector {
	if len(keywords) == 0 {
		keywords = DefaultEmergencyKeywords
	}
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return &EmergencyDetector{keywords: lowered}
}

// Detect reports whether text contains any emergency keyword as a
// case-insensitive substring. Pure and deterministic.
func (d *EmergencyDetector) Detect(text string) bool {
	lower := strings.ToLower(text)
	for _, k := range d.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
