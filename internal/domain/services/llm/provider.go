package llm

import "context"

// Provider defines the interface that all completion providers must implement.
// This abstraction allows supporting multiple providers (Gemini, Anthropic, a
// lorem mock) while keeping the chat service agnostic to the backend.
type Provider interface {
	// Generate sends a single prompt to the provider and returns the
	// generated text. Each call is single-turn and stateless toward the
	// model: no conversation history is forwarded.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Name returns the provider name (e.g., "gemini", "anthropic")
	Name() string

	// SupportsModel returns true if the provider supports the given model.
	SupportsModel(model string) bool
}

// GenerateRequest contains the parameters for a completion request.
type GenerateRequest struct {
	// Prompt is the current user utterance, forwarded verbatim.
	Prompt string

	// Model is the model identifier (e.g., "gemini-pro")
	Model string
}

// GenerateResponse contains the provider's reply.
type GenerateResponse struct {
	// Text is the generated assistant reply.
	Text string

	// Model is the model that was used (may differ from request if aliased)
	Model string
}
