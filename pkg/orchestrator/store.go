package orchestrator

import (
	"context"
	"time"

	"github.com/devex-platform/crewd/pkg/evolution"
	"github.com/devex-platform/crewd/pkg/models"
)

// ExecutionRow is one append-only audit record per attempted execute.
type ExecutionRow struct {
	ExecutionID string
	AgentID     string
	SessionID   string
	WorkflowID  string
	Input       map[string]any
	Output      map[string]any
	Status      string
	Error       string
	TokensUsed  int
	StartedAt   time.Time
	CompletedAt *time.Time
	Metadata    map[string]any
}

// Store is the persistence surface the orchestrator writes through.
// Workflow status writes are critical and retried; audit appends are
// best-effort.
type Store interface {
	UpsertWorkflow(ctx context.Context, wf models.Workflow) error
	LoadWorkflow(ctx context.Context, workflowID string) (*models.Workflow, error)
	AppendAgentExecution(ctx context.Context, row ExecutionRow) error
}

// ResultCache is the optional execute result cache, keyed by template id
// and input hash.
type ResultCache interface {
	SetAgentResult(ctx context.Context, templateID, inputHash string, value any) error
	GetAgentResult(ctx context.Context, templateID, inputHash string, out any) error
}

// PromptStore mirrors applied prompt versions and their running
// performance to persistent storage. Writes are best-effort.
type PromptStore interface {
	SavePromptVersion(ctx context.Context, v evolution.PromptVersion) error
}
