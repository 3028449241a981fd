package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/devex-platform/crewd/pkg/llm"
	"github.com/devex-platform/crewd/pkg/models"
)

// LLMWorker is the stock worker implementation: it renders a role prompt
// from its template and delegates generation to the shared LLM client.
// All builtin templates instantiate this type.
type LLMWorker struct {
	template models.AgentTemplate
	config   map[string]any
	client   llm.Client
	prompt   string
}

var (
	_ Worker   = (*LLMWorker)(nil)
	_ Reasoner = (*LLMWorker)(nil)
)

// NewLLMWorker builds a worker for the given template. The effective
// config may override the system prompt under "system_prompt".
func NewLLMWorker(template models.AgentTemplate, cfg map[string]any, client llm.Client) (*LLMWorker, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is required for template %s", template.TemplateID)
	}
	prompt := defaultSystemPrompt(template)
	if override, ok := cfg["system_prompt"].(string); ok && override != "" {
		prompt = override
	}
	return &LLMWorker{
		template: template,
		config:   cfg,
		client:   client,
		prompt:   prompt,
	}, nil
}

// SetSystemPrompt swaps the active system prompt. Used when an evolution
// mutation is applied at a phase boundary.
func (w *LLMWorker) SetSystemPrompt(prompt string) {
	w.prompt = prompt
}

// SystemPrompt returns the active system prompt.
func (w *LLMWorker) SystemPrompt() string {
	return w.prompt
}

func defaultSystemPrompt(t models.AgentTemplate) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s, a specialized %s agent.\n", t.DisplayName, t.Kind)
	if len(t.Responsibilities) > 0 {
		sb.WriteString("Your responsibilities:\n")
		for _, r := range t.Responsibilities {
			fmt.Fprintf(&sb, "- %s\n", r)
		}
	}
	sb.WriteString("Produce concrete, complete output for the task you are given.")
	return sb.String()
}

// Execute renders the task prompt from the input and shared context, calls
// the LLM, and wraps the completion as an ExecutionResult. LLM errors are
// returned as errors; the caller converts them to failed results.
func (w *LLMWorker) Execute(ctx context.Context, input map[string]any, execCtx ExecutionContext) (*models.ExecutionResult, error) {
	start := time.Now()

	task, _ := input["task"].(string)
	if task == "" {
		encoded, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("encode input: %w", err)
		}
		task = string(encoded)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Task: %s\n", task)
	if len(execCtx.SharedContext) > 0 {
		contextJSON, err := json.Marshal(execCtx.SharedContext)
		if err == nil {
			fmt.Fprintf(&sb, "\nShared workflow context:\n%s\n", contextJSON)
		}
	}

	completion, err := w.client.Generate(ctx, sb.String(), llm.Options{System: w.prompt})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return &models.ExecutionResult{
		OK: true,
		Output: map[string]any{
			"content": completion.Text,
		},
		TokensUsed: completion.InputTokens + completion.OutputTokens,
		Elapsed:    time.Since(start),
		Metadata: map[string]any{
			"template_id": w.template.TemplateID,
			"stop_reason": completion.StopReason,
		},
	}, nil
}

// Reason exposes a raw generation step for callers that want the model's
// reasoning without result wrapping.
func (w *LLMWorker) Reason(ctx context.Context, prompt string) (string, error) {
	completion, err := w.client.Generate(ctx, prompt, llm.Options{System: w.prompt})
	if err != nil {
		return "", err
	}
	return completion.Text, nil
}
