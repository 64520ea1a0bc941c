package llm

import (
	"fmt"
	"sync"

	domainllm "converse/internal/domain/services/llm"
)

// ProviderRegistry routes model names to the provider that supports them.
// Providers are registered once at startup; lookups are read-mostly.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers []domainllm.Provider
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{}
}

// Register adds a provider to the registry.
func (r *ProviderRegistry) Register(p domainllm.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, p)
}

// Resolve returns the first registered provider that supports the model.
//
// Examples:
//   - "gemini-pro" → gemini provider
//   - "claude-haiku-4-5" → anthropic provider
//   - "lorem-fast" → lorem mock provider
func (r *ProviderRegistry) Resolve(model string) (domainllm.Provider, error) {
	if model == "" {
		return nil, fmt.Errorf("model cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.providers {
		if p.SupportsModel(model) {
			return p, nil
		}
	}

	return nil, fmt.Errorf("no provider supports model '%s'", model)
}

// Names returns the names of all registered providers.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Name())
	}
	return names
}
