package llm

import (
	"context"
	"fmt"
	"log/slog"

	"converse/internal/config"
	"converse/internal/service/llm/providers/anthropic"
	"converse/internal/service/llm/providers/gemini"
	"converse/internal/service/llm/providers/lorem"
)

// SetupProviders initializes the provider registry from config.
// Providers without API keys are skipped; the lorem mock is always
// available so dev and test environments work without credentials.
func SetupProviders(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ProviderRegistry, error) {
	registry := NewProviderRegistry()

	if cfg.GoogleAPIKey != "" {
		provider, err := gemini.NewProvider(ctx, cfg.GoogleAPIKey)
		if err != nil {
			return nil, fmt.Errorf("setup gemini provider: %w", err)
		}
		registry.Register(provider)
		logger.Info("provider available", "name", "gemini", "models", "gemini-*")
	} else {
		logger.Warn("GOOGLE_API_KEY not set - Gemini provider not available")
	}

	if cfg.AnthropicAPIKey != "" {
		provider, err := anthropic.NewProvider(cfg.AnthropicAPIKey)
		if err != nil {
			return nil, fmt.Errorf("setup anthropic provider: %w", err)
		}
		registry.Register(provider)
		logger.Info("provider available", "name", "anthropic", "models", "claude-*")
	}

	registry.Register(lorem.NewProvider())

	// The default model must be servable, otherwise every chat turn fails
	if _, err := registry.Resolve(cfg.DefaultModel); err != nil {
		return nil, fmt.Errorf("default model not servable: %w", err)
	}

	logger.Info("provider registry initialized", "providers", registry.Names())

	return registry, nil
}
