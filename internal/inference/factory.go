package inference

import (
	"fmt"
	"strings"

	"github.com/greenstamp/greenstamp/internal/model"
)

// NewEngine creates an engine for the configured provider
func NewEngine(config model.InferenceConfig, proxy model.ProxyConfig) (Engine, error) {
	switch strings.ToLower(config.Provider) {
	case "", "keyword":
		return NewKeywordEngine(), nil

	case "openai":
		return NewOpenAIEngine(config)

	case "ollama":
		return NewOllamaEngine(config, proxy)

	default:
		return nil, fmt.Errorf("unknown inference provider: %s (supported: keyword, openai, ollama)", config.Provider)
	}
}
