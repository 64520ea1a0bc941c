package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	domainllm "converse/internal/domain/services/llm"
)

// Provider implements the Provider interface for Google Gemini models.
type Provider struct {
	model *googleai.GoogleAI
}

// NewProvider creates a new Gemini provider with the given API key.
func NewProvider(ctx context.Context, apiKey string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google API key is required")
	}

	model, err := googleai.New(ctx, googleai.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create googleai client: %w", err)
	}

	return &Provider{model: model}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "gemini"
}

// SupportsModel returns true if this provider supports the given model.
// Gemini models start with "gemini-"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "gemini-")
}

// Generate sends the single utterance to Gemini and returns the reply text.
func (p *Provider) Generate(ctx context.Context, req *domainllm.GenerateRequest) (*domainllm.GenerateResponse, error) {
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by gemini provider", req.Model)
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, p.model, req.Prompt, llms.WithModel(req.Model))
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	return &domainllm.GenerateResponse{
		Text:  text,
		Model: req.Model,
	}, nil
}
