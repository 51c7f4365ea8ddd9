package factory

import (
	"fmt"

	"medtriage-be/pkg/llm"
	"medtriage-be/pkg/llm/huggingface"
	"medtriage-be/pkg/llm/ollama"
)

func NewProvider(providerType, modelName, ollamaBaseURL, hfAPIKey string) (llm.Provider, error) {
	switch providerType {
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewProvider(ollamaBaseURL, modelName), nil
	case "huggingface":
		return huggingface.NewProvider(hfAPIKey, "", modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
