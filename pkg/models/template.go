package models

import "time"

// AgentKind classifies what a template's workers produce.
type AgentKind string

const (
	KindCode          AgentKind = "code"
	KindDocumentation AgentKind = "documentation"
	KindAnalysis      AgentKind = "analysis"
	KindMeta          AgentKind = "meta"
	KindCreative      AgentKind = "creative"
	KindWorkflow      AgentKind = "workflow"
)

// AgentTemplate is an immutable, process-lifetime description of a worker
// role. Templates are seeded into the registry at startup; the registry is
// append-only after that.
type AgentTemplate struct {
	TemplateID           string         `json:"template_id"`
	DisplayName          string         `json:"display_name"`
	Kind                 AgentKind      `json:"kind"`
	RequiredTechnologies []Technology   `json:"required_technologies"`
	Responsibilities     []string       `json:"responsibilities"`
	ToolIDs              []string       `json:"tool_ids"`
	DefaultConfig        map[string]any `json:"default_config"`
}

// AgentSpecification is a concrete, parameterized realization of a
// template, ready to instantiate.
type AgentSpecification struct {
	AgentID         string         `json:"agent_id"`
	TemplateID      string         `json:"template_id"`
	Dependencies    []string       `json:"dependencies"`
	EffectiveConfig map[string]any `json:"effective_config"`
}

// ExecutionResult is the uniform outcome of one worker execute call.
type ExecutionResult struct {
	OK         bool           `json:"ok"`
	Output     map[string]any `json:"output,omitempty"`
	Error      string         `json:"error,omitempty"`
	TokensUsed int            `json:"tokens_used"`
	Elapsed    time.Duration  `json:"elapsed"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}
