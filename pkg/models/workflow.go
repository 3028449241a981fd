package models

import (
	"fmt"
	"time"
)

// WorkflowStatus is the aggregate status of a workflow.
type WorkflowStatus string

const (
	WorkflowPending    WorkflowStatus = "pending"
	WorkflowInProgress WorkflowStatus = "in_progress"
	WorkflowPaused     WorkflowStatus = "paused"
	WorkflowCompleted  WorkflowStatus = "completed"
	WorkflowFailed     WorkflowStatus = "failed"
	WorkflowCancelled  WorkflowStatus = "cancelled"
)

// Terminal reports whether no further execution is possible.
func (s WorkflowStatus) Terminal() bool {
	return s == WorkflowCompleted || s == WorkflowFailed || s == WorkflowCancelled
}

// PhaseKind controls step scheduling within a phase.
type PhaseKind string

const (
	PhaseParallel   PhaseKind = "parallel"
	PhaseSequential PhaseKind = "sequential"
)

// PhaseStatus mirrors WorkflowStatus at phase granularity.
type PhaseStatus string

const (
	PhasePending    PhaseStatus = "pending"
	PhaseInProgress PhaseStatus = "in_progress"
	PhaseCompleted  PhaseStatus = "completed"
	PhaseFailed     PhaseStatus = "failed"
	PhaseSkipped    PhaseStatus = "skipped"
)

// StepStatus is the status of one execute invocation.
type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepRunning   StepStatus = "running"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
	StepCancelled StepStatus = "cancelled"
)

// Terminal reports whether the step can no longer change.
func (s StepStatus) Terminal() bool {
	switch s {
	case StepCompleted, StepFailed, StepSkipped, StepCancelled:
		return true
	}
	return false
}

// Step is a single execute invocation on one worker.
type Step struct {
	StepID     string         `json:"step_id"`
	AgentID    string         `json:"agent_id"`
	PhaseID    string         `json:"phase_id"`
	Name       string         `json:"name"`
	Inputs     map[string]any `json:"inputs,omitempty"`
	Outputs    map[string]any `json:"outputs,omitempty"`
	Status     StepStatus     `json:"status"`
	StartedAt  *time.Time     `json:"started_at,omitempty"`
	FinishedAt *time.Time     `json:"finished_at,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// Phase is a named group of steps executed as parallel or sequential.
type Phase struct {
	PhaseID string      `json:"phase_id"`
	Name    string      `json:"name"`
	Kind    PhaseKind   `json:"kind"`
	Steps   []Step      `json:"steps"`
	Status  PhaseStatus `json:"status"`
}

// WorkflowOptions carries per-workflow execution switches.
type WorkflowOptions struct {
	ContinueOnFailure  bool `json:"continue_on_failure"`
	AutoApplyEvolution bool `json:"auto_apply_evolution"`
	CacheResults       bool `json:"cache_results"`
}

// Workflow is the unit the orchestrator drives: a phased plan over a pool
// of workers, plus the shared context step outputs accumulate into.
type Workflow struct {
	WorkflowID    string         `json:"workflow_id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	ProjectType   ProjectType    `json:"project_type"`
	OwnerUserID   string         `json:"owner_user_id"`
	SessionID     string         `json:"session_id"`
	CreatedAt     time.Time      `json:"created_at"`
	Phases        []Phase        `json:"phases"`
	Status        WorkflowStatus `json:"status"`
	Options       WorkflowOptions `json:"options"`
	SharedContext map[string]any `json:"shared_context,omitempty"`
	EstimatedTime time.Duration  `json:"estimated_time"`
}

// StepCount returns the total number of steps across all phases.
func (w *Workflow) StepCount() int {
	n := 0
	for i := range w.Phases {
		n += len(w.Phases[i].Steps)
	}
	return n
}

// CompletedSteps counts steps in the completed status.
func (w *Workflow) CompletedSteps() int {
	n := 0
	for i := range w.Phases {
		for j := range w.Phases[i].Steps {
			if w.Phases[i].Steps[j].Status == StepCompleted {
				n++
			}
		}
	}
	return n
}

// Progress renders "k/n" over completed vs total steps.
func (w *Workflow) Progress() string {
	return fmt.Sprintf("%d/%d", w.CompletedSteps(), w.StepCount())
}

// Percentage returns completion as 0–100.
func (w *Workflow) Percentage() float64 {
	total := w.StepCount()
	if total == 0 {
		return 0
	}
	return float64(w.CompletedSteps()) / float64(total) * 100
}

// CurrentPhase returns the name of the first non-terminal phase, or the
// last phase name when every phase is terminal.
func (w *Workflow) CurrentPhase() string {
	for i := range w.Phases {
		switch w.Phases[i].Status {
		case PhasePending, PhaseInProgress:
			return w.Phases[i].Name
		}
	}
	if len(w.Phases) > 0 {
		return w.Phases[len(w.Phases)-1].Name
	}
	return ""
}

// AgentIDs returns every agent referenced by the plan, in plan order,
// without duplicates.
func (w *Workflow) AgentIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for i := range w.Phases {
		for j := range w.Phases[i].Steps {
			id := w.Phases[i].Steps[j].AgentID
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids
}
