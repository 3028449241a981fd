package llm

import (
	"context"
	"sync"
)

// MockClient is a canned-response Client for tests and local demos.
type MockClient struct {
	mu        sync.Mutex
	Response  string
	Err       error
	Calls     []string
	ChunkSize int
}

var _ Client = (*MockClient)(nil)

// Generate records the prompt and returns the canned response.
func (m *MockClient) Generate(_ context.Context, prompt string, _ Options) (*Completion, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, prompt)
	m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return &Completion{
		Text:         m.Response,
		OutputTokens: len(m.Response) / 4,
		StopReason:   "end_turn",
	}, nil
}

// GenerateStream replays the canned response in fixed-size chunks.
func (m *MockClient) GenerateStream(ctx context.Context, prompt string, opts Options, onChunk func(text string) error) (*Completion, error) {
	completion, err := m.Generate(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}
	size := m.ChunkSize
	if size <= 0 {
		size = 16
	}
	text := completion.Text
	for i := 0; i < len(text); i += size {
		end := min(i+size, len(text))
		if onChunk != nil {
			if err := onChunk(text[i:end]); err != nil {
				return nil, err
			}
		}
	}
	return completion, nil
}
