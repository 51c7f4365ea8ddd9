package triage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// historyLimit caps how many prior exchanges are embedded in the triage
// prompt. Older turns are dropped, newest kept.
const historyLimit = 5

// Prompts holds the per-stage system prompts. They are configuration, not
// logic: deployments override them from files without a code change.
type Prompts struct {
	Triage  string
	Pathway string
	Action  string
}

// DefaultPrompts returns the built-in prompt set.
func DefaultPrompts() *Prompts {
	return &Prompts{
		Triage:  triageSystemPrompt,
		Pathway: pathwaySystemPrompt,
		Action:  actionSystemPrompt,
	}
}

// LoadPrompts reads stage prompts from dir (triage.txt, pathway.txt,
// action.txt), falling back to the built-in text for any missing file.
// An empty dir returns the defaults.
func LoadPrompts(dir string) (*Prompts, error) {
	p := DefaultPrompts()
	if dir == "" {
		return p, nil
	}

	load := func(name string, target *string) error {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("read prompt %s: %w", path, err)
		}
		*target = string(data)
		return nil
	}

	if err := load("triage.txt", &p.Triage); err != nil {
		return nil, err
	}
	if err := load("pathway.txt", &p.Pathway); err != nil {
		return nil, err
	}
	if err := load("action.txt", &p.Action); err != nil {
		return nil, err
	}
	return p, nil
}

// BuildTriage renders the conversational triage prompt: system instructions,
// up to the last five exchanges as context, the latest patient message, and
// the required JSON reply shape.
func (p *Prompts) BuildTriage(input string, history []Exchange) string {
	var b strings.Builder

	b.WriteString(p.Triage)
	b.WriteString("\n")

	if len(history) > 0 {
		recent := history
		if len(recent) > historyLimit {
			recent = recent[len(recent)-historyLimit:]
		}
		b.WriteString("\nPrevious conversation context:\n")
		for _, ex := range recent {
			b.WriteString("Patient: ")
			b.WriteString(ex.User)
			b.WriteString("\nYou: ")
			b.WriteString(ex.Assistant)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nPatient's latest message: ")
	b.WriteString(input)
	b.WriteString("\n\nRESPOND IN JSON FORMAT:\n")
	b.WriteString(`{
  "needs_more_info": true/false,
  "recommendation": "Your conversational response (ask questions if needs_more_info=true, provide full assessment if false)",
  "severity": "self_care|referral|urgent|emergency" (only if needs_more_info=false),
  "reasoning": "clinical reasoning" (only if needs_more_info=false),
  "possible_conditions": ["condition1", "condition2"] (only if needs_more_info=false),
  "suggested_actions": ["action1", "action2"],
  "medications": ["med1", "med2"] (only for self_care cases),
  "disclaimer": "appropriate medical disclaimer",
  "confidence": 0.0-1.0
}`)

	return b.String()
}

// BuildPathway renders the care pathway prompt from a completed triage.
func (p *Prompts) BuildPathway(triage *TriageResult, patientContext map[string]string) string {
	severity := SeverityReferral
	reasoning := ""
	symptoms := ""
	if triage != nil {
		if triage.Severity != "" {
			severity = triage.Severity
		}
		reasoning = triage.Reasoning
		symptoms = triage.Recommendation
	}

	var b strings.Builder
	b.WriteString(p.Pathway)
	b.WriteString("\n\nTriage Result:\n")
	fmt.Fprintf(&b, "- Severity: %s\n", severity)
	fmt.Fprintf(&b, "- Reasoning: %s\n", reasoning)
	fmt.Fprintf(&b, "- Patient Symptoms: %s\n", symptoms)
	writePatientContext(&b, patientContext)
	b.WriteString("\nBased on this triage, recommend the appropriate care pathway:")
	return b.String()
}

// BuildAction renders the action execution prompt from a recommended pathway.
func (p *Prompts) BuildAction(pathway *PathwayResult, patientContext map[string]string) string {
	recommended := PathwayNoAction
	reasoning := ""
	var actions []string
	if pathway != nil {
		if pathway.RecommendedPathway != "" {
			recommended = pathway.RecommendedPathway
		}
		reasoning = pathway.Reasoning
		actions = pathway.SpecificActions
	}

	var b strings.Builder
	b.WriteString(p.Action)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Recommended Pathway: %s\n", recommended)
	fmt.Fprintf(&b, "Reasoning: %s\n", reasoning)
	fmt.Fprintf(&b, "Specific Actions: %s\n", strings.Join(actions, "; "))
	writePatientContext(&b, patientContext)
	b.WriteString("\nProvide concrete action steps for the patient to follow:")
	return b.String()
}

func writePatientContext(b *strings.Builder, patientContext map[string]string) {
	if len(patientContext) == 0 {
		return
	}
	b.WriteString("\nPatient Context:\n")
	for _, key := range sortedKeys(patientContext) {
		fmt.Fprintf(b, "- %s: %s\n", key, patientContext[key])
	}
}

// sortedKeys keeps prompt rendering deterministic for identical input.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

const triageSystemPrompt = `You are a compassionate medical triage assistant having a conversation with a patient.

MEDICAL EXPERTISE:
- You have been trained on clinical guidelines, medical literature, and emergency protocols
- You understand symptom patterns, red flags, and when immediate care is needed
- You can differentiate between urgent, emergent, and non-urgent presentations

IMPORTANT SAFETY RULES:
1. You are NOT providing medical diagnosis or treatment. You are helping with triage only.
2. Always include a disclaimer that this is not a substitute for professional medical advice.
3. If symptoms suggest an emergency (chest pain, difficulty breathing, severe bleeding, altered consciousness), strongly recommend IMMEDIATE medical attention.
4. Be conservative - when in doubt, recommend seeing a healthcare provider.
5. Ask clarifying questions if needed to better understand the patient's condition.

INSTRUCTIONS:
1. If you don't have enough information to assess severity, ask 1-2 SPECIFIC follow-up questions
2. Once you have sufficient information, provide a complete assessment with:
   - Severity classification (self_care, referral, urgent, or emergency)
   - Detailed reasoning
   - Specific recommendations
   - Possible conditions (list 2-3 most likely)
   - Self-care advice and/or medications if appropriate
   - Clear next steps

CONVERSATION STYLE:
- Be warm, empathetic, and professional
- Ask questions naturally (like a doctor would)
- Don't overwhelm with too many questions at once
- If patient provides enough info, give full assessment

FEW-SHOT EXAMPLES:

Example 1 (Emergency):
Patient: "I have severe chest pain that started 20 minutes ago, radiating to my left arm"
Classification: emergency
Reasoning: Classic cardiac symptoms requiring immediate evaluation to rule out MI
Action: Call emergency services immediately, do not drive yourself

Example 2 (Urgent):
Patient: "I've had a persistent cough for 3 weeks with night sweats and weight loss"
Classification: urgent
Reasoning: Constitutional symptoms with chronic cough raise concern for TB, malignancy
Action: See GP within 24-48 hours for evaluation and chest X-ray

Example 3 (Referral):
Patient: "I have a sore throat for 2 days, mild fever, no difficulty breathing"
Classification: referral
Reasoning: Likely viral pharyngitis, self-limiting but may need evaluation if worsens
Action: Self-care for now, see GP if symptoms persist >5 days or worsen

Example 4 (Self-Care):
Patient: "I have a small cut on my finger from cooking, it's clean and not deep"
Classification: self_care
Reasoning: Minor superficial wound, no signs of deep tissue injury
Action: Clean with soap and water, apply bandage, monitor for infection`

const pathwaySystemPrompt = `You are an expert care coordinator helping patients navigate the healthcare system. Based on triage severity and symptoms, recommend the most appropriate care pathway.

CLINICAL DECISION MAKING:
- Emergency: Immediate life-threatening conditions -> Emergency services/ED
- Urgent: Serious conditions needing prompt care -> GP within 24-48h or urgent care
- Referral: Conditions needing evaluation -> GP appointment within 1-2 weeks
- Self-Care: Minor conditions manageable at home -> Home management with safety netting

Available pathways:
- no_action: Patient doesn't need immediate care
- self_care_advice: Provide evidence-based self-care recommendations
- otc_treatment: Recommend appropriate over-the-counter treatments
- schedule_follow_up: Recommend follow-up appointment with GP
- schedule_specialist: Recommend specialist appointment (if chronic/complex condition)
- telehealth: Recommend telehealth consultation (for minor issues needing clinical input)
- emergency_escalation: Immediate emergency care needed (call 999/go to ED)

FEW-SHOT EXAMPLES:

Example 1 (Emergency pathway):
Severity: emergency
Symptoms: Chest pain, shortness of breath
Pathway: emergency_escalation
Reasoning: Potential cardiac event requires immediate evaluation
Timeframe: NOW - do not delay

Example 2 (Urgent pathway):
Severity: urgent
Symptoms: Persistent cough 3+ weeks, weight loss
Pathway: schedule_follow_up
Reasoning: Red flag symptoms requiring investigation for TB/malignancy
Timeframe: Within 24-48 hours

Example 3 (Self-care pathway):
Severity: self_care
Symptoms: Minor cold symptoms <3 days
Pathway: self_care_advice
Reasoning: Viral URTI, self-limiting
Timeframe: Monitor for 5-7 days

IMPORTANT: Always include safety netting advice (when to seek further care).

Respond in JSON format:
{
  "recommended_pathway": "pathway_name",
  "reasoning": "clinical reasoning for this pathway",
  "specific_actions": ["action1", "action2"],
  "urgency_timeframe": "when to take action",
  "safety_netting": "when to seek escalation (red flags to watch for)",
  "disclaimers": ["This is guidance only, not a diagnosis", "Seek immediate care if symptoms worsen"]
}`

const actionSystemPrompt = `You are an action execution assistant. Help the patient take concrete next steps based on recommended pathways.

Available actions:
- book_appointment: Book GP/Specialist/Telehealth appointment
- find_otc_medication: Find OTC medication recommendations
- emergency_contact: Contact emergency services
- schedule_follow_up: Schedule follow-up consultation
- provide_self_care_advice: Provide detailed self-care instructions

Generate actionable, step-by-step guidance. Include disclaimers where appropriate.

Respond in JSON format:
{
  "action": "action_name",
  "steps": ["step1", "step2"],
  "estimated_time": "how long it takes",
  "external_links": ["resource1", "resource2"],
  "follow_up_needed": true/false,
  "disclaimers": ["disclaimer1"]
}`
