package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medtriage-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSendsOpenAICompatibleBody(t *testing.T) {
	var body map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"hi"}}]}`))
	}))
	defer srv.Close()

	p := NewProvider("test-key", srv.URL, "test-model")
	reply, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "hello"},
		{Role: "model", Content: "previous answer"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi", reply)

	// The router speaks the OpenAI chat schema: lowercase keys only.
	msgs, ok := body["messages"].([]interface{})
	require.True(t, ok, "messages key missing: %v", body)
	require.Len(t, msgs, 2)

	first := msgs[0].(map[string]interface{})
	assert.Equal(t, "user", first["role"])
	assert.Equal(t, "hello", first["content"])
	assert.NotContains(t, first, "Role")
	assert.NotContains(t, first, "Content")

	// "model" roles are normalized to "assistant" for the OpenAI schema.
	second := msgs[1].(map[string]interface{})
	assert.Equal(t, "assistant", second["role"])
}

func TestChatSurfacesRouterError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	p := NewProvider("bad-key", srv.URL, "test-model")
	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hello"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}
