package lorem

import (
	"context"
	"errors"
	"testing"
	"time"

	domainllm "converse/internal/domain/services/llm"
)

func TestSupportsModel(t *testing.T) {
	p := NewProvider()

	tests := []struct {
		model string
		want  bool
	}{
		{"lorem-fast", true},
		{"lorem-slow", true},
		{"lorem-", true},
		{"gemini-pro", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := p.SupportsModel(tt.model); got != tt.want {
			t.Errorf("SupportsModel(%q) = %v, want %v", tt.model, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	p := NewProvider()

	resp, err := p.Generate(context.Background(), &domainllm.GenerateRequest{
		Prompt: "hello",
		Model:  "lorem-fast",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Text == "" {
		t.Error("expected non-empty reply text")
	}
	if resp.Model != "lorem-fast" {
		t.Errorf("model = %q, want lorem-fast", resp.Model)
	}
}

func TestGenerate_UnsupportedModel(t *testing.T) {
	p := NewProvider()

	_, err := p.Generate(context.Background(), &domainllm.GenerateRequest{
		Prompt: "hello",
		Model:  "claude-haiku-4-5",
	})
	if err == nil {
		t.Fatal("expected error for unsupported model")
	}
}

func TestGenerate_ContextCancelled(t *testing.T) {
	p := NewProvider()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, &domainllm.GenerateRequest{
		Prompt: "hello",
		Model:  "lorem-slow",
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
