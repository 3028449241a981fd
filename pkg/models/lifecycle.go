package models

import "time"

// LifecycleState is the state-machine position of a worker.
type LifecycleState string

const (
	StateCreated      LifecycleState = "created"
	StateInitializing LifecycleState = "initializing"
	StateReady        LifecycleState = "ready"
	StateRunning      LifecycleState = "running"
	StatePaused       LifecycleState = "paused"
	StateSuspended    LifecycleState = "suspended"
	StateTerminating  LifecycleState = "terminating"
	StateTerminated   LifecycleState = "terminated"
	StateError        LifecycleState = "error"
)

// CheckpointSchemaVersion tags serialized checkpoints so recovery across
// versions stays possible.
const CheckpointSchemaVersion = 1

// Checkpoint is one entry in an agent's bounded checkpoint ring.
type Checkpoint struct {
	SchemaVersion int            `json:"schema_version"`
	Timestamp     time.Time      `json:"timestamp"`
	Payload       map[string]any `json:"payload"`
	ExecCount     int            `json:"exec_count_at_capture"`
}

// StatusCounters are the bookkeeping fields persisted with every state.
type StatusCounters struct {
	ExecutionCount int       `json:"execution_count"`
	ErrorCount     int       `json:"error_count"`
	LastUpdated    time.Time `json:"last_updated"`
	CreatedAt      time.Time `json:"created_at"`
}

// AgentState is the lifecycle manager's persisted record for one worker.
// Exactly one exists per agent_id for the process lifetime.
type AgentState struct {
	AgentID         string         `json:"agent_id"`
	TemplateID      string         `json:"template_id"`
	Kind            AgentKind      `json:"kind"`
	Lifecycle       LifecycleState `json:"lifecycle"`
	Counters        StatusCounters `json:"status_counters"`
	ContextSnapshot map[string]any `json:"context_snapshot,omitempty"`
	Dependencies    []string       `json:"dependencies,omitempty"`
	Checkpoints     []Checkpoint   `json:"checkpoints,omitempty"`
}
