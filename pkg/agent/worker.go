// Package agent defines the uniform worker contract, the append-only
// template registry, and the factory that instantiates workers from
// specifications.
package agent

import (
	"context"

	"github.com/devex-platform/crewd/pkg/models"
)

// ExecutionContext carries the workflow-scoped information a worker may
// consult during execute. PreviousAgents is truncated to the last 20.
type ExecutionContext struct {
	WorkflowID     string
	SessionID      string
	AgentID        string
	SharedContext  map[string]any
	PreviousAgents []string
}

// maxPreviousAgents bounds the provenance trail carried in context.
const maxPreviousAgents = 20

// AppendPreviousAgent records an agent in the provenance trail, keeping
// only the most recent entries.
func (c *ExecutionContext) AppendPreviousAgent(agentID string) {
	c.PreviousAgents = append(c.PreviousAgents, agentID)
	if n := len(c.PreviousAgents); n > maxPreviousAgents {
		c.PreviousAgents = c.PreviousAgents[n-maxPreviousAgents:]
	}
}

// Worker is the uniform execution contract. The core depends only on
// Execute; richer capabilities are optional interfaces below.
type Worker interface {
	Execute(ctx context.Context, input map[string]any, execCtx ExecutionContext) (*models.ExecutionResult, error)
}

// Reasoner is implemented by LLM-routed workers that expose their raw
// reasoning step.
type Reasoner interface {
	Reason(ctx context.Context, prompt string) (string, error)
}

// Actor is implemented by tool-using workers.
type Actor interface {
	Act(ctx context.Context, toolID string, args map[string]any) (map[string]any, error)
}

// Initializer is implemented by workers that need setup between the
// Initializing and Ready lifecycle states.
type Initializer interface {
	Initialize(ctx context.Context) error
}
