package lorem

import (
	"context"
	"fmt"
	"strings"
	"time"

	loremgen "github.com/bozaro/golorem"

	domainllm "converse/internal/domain/services/llm"
)

// Provider is a mock completion provider that generates lorem ipsum text.
// Used for testing and development without requiring real API keys.
type Provider struct {
	generator *loremgen.Lorem
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{
		generator: loremgen.New(),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// SupportsModel returns true if the model name starts with "lorem-".
// Example models: "lorem-fast", "lorem-slow"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "lorem-")
}

// getDelay returns the simulated provider latency based on the model name.
func getDelay(model string) time.Duration {
	if strings.Contains(model, "slow") {
		return 5 * time.Second
	}
	if strings.Contains(model, "fast") {
		return 50 * time.Millisecond
	}
	return 500 * time.Millisecond
}

// Generate produces a lorem ipsum reply after a model-dependent delay,
// simulating a blocking call to a real completion provider.
func (p *Provider) Generate(ctx context.Context, req *domainllm.GenerateRequest) (*domainllm.GenerateResponse, error) {
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by lorem provider", req.Model)
	}

	select {
	case <-time.After(getDelay(req.Model)):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var sb strings.Builder
	for i := 0; i < 3; i++ {
		sb.WriteString(p.generator.Sentence(5, 15))
		sb.WriteString(" ")
	}

	return &domainllm.GenerateResponse{
		Text:  strings.TrimSpace(sb.String()),
		Model: req.Model,
	}, nil
}
