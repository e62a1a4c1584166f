package llmprovider

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/g3lasio/Andy-AI-by-Claude/config"
	"github.com/g3lasio/Andy-AI-by-Claude/pkg/anthropic"
)

// InitializeProviders creates Provider instances from config.LLMConfig with
// disabled providers filtered out. A provider that fails to initialize fails
// startup: running without a configured tier would silently degrade routing.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var providers []Provider
	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize provider %s: %w", p.Name, err)
		}
		providers = append(providers, provider)
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch cfg.Name {
	case "claude", "anthropic":
		client, err := anthropic.New(anthropic.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return NewAnthropicAdapter(client, client.Model()), nil

	case "gpt4", "openai":
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		return NewOpenAIAdapter(openai.NewClientWithConfig(clientCfg), cfg.Model), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
