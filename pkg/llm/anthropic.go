package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/devex-platform/crewd/pkg/config"
)

// MessagesClient is the subset of the Anthropic SDK used here. It is
// satisfied by *sdk.MessageService so tests can substitute a stub.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
	NewStreaming(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) *ssestream.Stream[sdk.MessageStreamEventUnion]
}

// AnthropicClient implements Client on top of the Claude Messages API.
type AnthropicClient struct {
	msg MessagesClient
	cfg config.LLMConfig
}

// NewAnthropicClient builds a client from the runtime LLM configuration.
func NewAnthropicClient(cfg config.LLMConfig) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("LLM_API_KEY is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(cfg.APIKey))
	return NewAnthropicClientFromMessages(&ac.Messages, cfg), nil
}

// NewAnthropicClientFromMessages wraps an existing Messages client
// (useful for testing).
func NewAnthropicClientFromMessages(msg MessagesClient, cfg config.LLMConfig) *AnthropicClient {
	return &AnthropicClient{msg: msg, cfg: cfg}
}

func (c *AnthropicClient) buildParams(prompt string, opts Options) (sdk.MessageNewParams, error) {
	if strings.TrimSpace(prompt) == "" {
		return sdk.MessageNewParams{}, errors.New("prompt is required")
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}
	temperature := opts.Temperature
	if temperature <= 0 {
		temperature = c.cfg.Temperature
	}
	params := sdk.MessageNewParams{
		MaxTokens: int64(maxTokens),
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(prompt))},
		Model:     sdk.Model(c.cfg.Model),
	}
	if temperature > 0 {
		params.Temperature = sdk.Float(temperature)
	}
	if opts.System != "" {
		params.System = []sdk.TextBlockParam{{Text: opts.System}}
	}
	if len(opts.StopSequences) > 0 {
		params.StopSequences = opts.StopSequences
	}
	return params, nil
}

// Generate issues a non-streaming Messages.New call.
func (c *AnthropicClient) Generate(ctx context.Context, prompt string, opts Options) (*Completion, error) {
	params, err := c.buildParams(prompt, opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	msg, err := c.msg.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic generate: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return &Completion{
		Text:         sb.String(),
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
		StopReason:   string(msg.StopReason),
	}, nil
}

// GenerateStream issues a streaming call and forwards text deltas.
func (c *AnthropicClient) GenerateStream(ctx context.Context, prompt string, opts Options, onChunk func(text string) error) (*Completion, error) {
	params, err := c.buildParams(prompt, opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	stream := c.msg.NewStreaming(ctx, params)
	defer func() { _ = stream.Close() }()

	var sb strings.Builder
	completion := &Completion{}
	for stream.Next() {
		event := stream.Current()
		switch ev := event.AsAny().(type) {
		case sdk.ContentBlockDeltaEvent:
			if delta, ok := ev.Delta.AsAny().(sdk.TextDelta); ok && delta.Text != "" {
				sb.WriteString(delta.Text)
				if onChunk != nil {
					if err := onChunk(delta.Text); err != nil {
						return nil, err
					}
				}
			}
		case sdk.MessageDeltaEvent:
			completion.OutputTokens = int(ev.Usage.OutputTokens)
			completion.StopReason = string(ev.Delta.StopReason)
		case sdk.MessageStartEvent:
			completion.InputTokens = int(ev.Message.Usage.InputTokens)
		}
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("anthropic stream: %w", err)
	}
	completion.Text = sb.String()
	return completion, nil
}
