package factory

import (
	"fmt"

	"dp-ai-be/pkg/llm"
	"dp-ai-be/pkg/llm/groq"
	"dp-ai-be/pkg/llm/ollama"
)

// NewProvider builds the completion provider selected by config.
// "groq" is the hosted default; "ollama" is the local development option.
func NewProvider(provider, model, groqBaseURL, groqAPIKey, ollamaBaseURL string) (llm.Provider, error) {
	switch provider {
	case "groq":
		if groqAPIKey == "" {
			return nil, fmt.Errorf("groq provider requires GROQ_API_KEY")
		}
		return groq.NewGroqProvider(groqBaseURL, groqAPIKey, model), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", provider)
	}
}
