// Package llm defines the LLM client contract workers depend on and an
// Anthropic-backed implementation.
package llm

import "context"

// Options tunes a single generation call. Zero values fall back to the
// client's configured defaults.
type Options struct {
	System        string
	Temperature   float64
	MaxTokens     int
	StopSequences []string
}

// Completion is the outcome of one generation call.
type Completion struct {
	Text         string
	InputTokens  int
	OutputTokens int
	StopReason   string
}

// Client is the generation contract. Timeouts and rate-limit errors are
// returned as ordinary errors; callers treat them as execute failures.
type Client interface {
	// Generate produces a full completion for the prompt.
	Generate(ctx context.Context, prompt string, opts Options) (*Completion, error)

	// GenerateStream produces the completion incrementally, invoking
	// onChunk for each text fragment. A non-nil onChunk error aborts the
	// stream and is returned.
	GenerateStream(ctx context.Context, prompt string, opts Options, onChunk func(text string) error) (*Completion, error)
}
