package llm

import (
	"fmt"

	"remindagent/internal/config"
)

// NewProvider creates a Provider based on the configuration.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderDeepSeek:
		return NewDeepSeekProvider(cfg.DeepSeek)

	case config.ProviderOllama:
		return NewOllamaProvider(cfg.Ollama)

	default:
		return nil, fmt.Errorf("unknown provider type: %s (supported: %s, %s)",
			cfg.Provider, config.ProviderDeepSeek, config.ProviderOllama)
	}
}
