package integration

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"medtriage-be/pkg/llm"
	"medtriage-be/pkg/llm/ollama"
	"medtriage-be/pkg/triage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultOllamaModel = "llama3"

func ollamaBaseURL() string {
	if url := os.Getenv("OLLAMA_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:11434"
}

// requireOllama skips the test when no local Ollama server is reachable.
func requireOllama(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", ollamaBaseURL(), nil)
	require.NoError(t, err)

	client := &http.Client{Timeout: 5 * time.Second}
	res, err := client.Do(req)
	if err != nil {
		t.Skipf("Ollama not running at %s: %v", ollamaBaseURL(), err)
	}
	res.Body.Close()
}

func TestOllamaSimpleResponse(t *testing.T) {
	requireOllama(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	provider := ollama.NewProvider(ollamaBaseURL(), defaultOllamaModel)

	response, err := provider.Chat(ctx, []llm.Message{
		{Role: "user", Content: "Say 'Ollama works!' in one sentence."},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response)
	t.Logf("Response: %s", response)
}

func TestOllamaMultiTurnConversation(t *testing.T) {
	requireOllama(t)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	provider := ollama.NewProvider(ollamaBaseURL(), defaultOllamaModel)

	response, err := provider.Chat(ctx, []llm.Message{
		{Role: "user", Content: "My name is John"},
		{Role: "assistant", Content: "Nice to meet you, John!"},
		{Role: "user", Content: "What is my name?"},
	})
	require.NoError(t, err)
	t.Logf("Response: %s", response)

	if !strings.Contains(response, "John") {
		t.Logf("Warning: response may not remember the name: %s", response)
	}
}

// TestOllamaTriageCall runs a real triage classification against the local
// model. The reply format varies between models, so the assertions only
// check the structural guarantees the gateway makes.
func TestOllamaTriageCall(t *testing.T) {
	requireOllama(t)

	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	provider := ollama.NewProvider(ollamaBaseURL(), defaultOllamaModel)
	gateway := triage.NewGateway(
		provider,
		triage.NewEmergencyDetector(nil),
		triage.DefaultPrompts(),
		triage.GatewayConfig{ConfidenceThreshold: 0.6, Temperature: 0.2, MaxTokens: 1024},
		log.New(os.Stdout, "[TRIAGE-TEST] ", log.LstdFlags),
	)

	result, err := gateway.PerformTriage(ctx, "I have had a mild sore throat for two days, no fever", nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Recommendation)
	t.Logf("Severity: %s, NeedsMoreInfo: %v", result.Severity, result.NeedsMoreInfo)
}

// TestOllamaFullWorkflow drives the complete staged pipeline end to end.
func TestOllamaFullWorkflow(t *testing.T) {
	requireOllama(t)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Second)
	defer cancel()

	provider := ollama.NewProvider(ollamaBaseURL(), defaultOllamaModel)
	logger := log.New(os.Stdout, "[TRIAGE-TEST] ", log.LstdFlags)
	gateway := triage.NewGateway(
		provider,
		triage.NewEmergencyDetector(nil),
		triage.DefaultPrompts(),
		triage.GatewayConfig{ConfidenceThreshold: 0.6, Temperature: 0.2, MaxTokens: 1024},
		logger,
	)
	workflow := triage.NewWorkflow(gateway, logger)

	c := workflow.Run(ctx, "integration-patient", "I twisted my ankle yesterday, it is swollen and hurts when I walk", nil)
	require.NotNil(t, c)

	// Whatever path the model takes, the run must finalize cleanly.
	assert.NotEmpty(t, string(c.Severity))
	if c.ActionPlan != nil {
		assert.NotEmpty(t, c.ActionPlan.MedicalDisclaimer)
	}
	t.Logf("Severity: %s, Pathway: %s, Escalated: %v, Error: %q",
		c.Severity, c.RecommendedPathway, c.NeedsEscalation, c.Error)
}
