package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/devex-platform/crewd/pkg/models"
)

// ErrInvalidControl rejects a control action the workflow's current
// status does not permit.
var ErrInvalidControl = errors.New("invalid control action")

// Pause stops new step dispatch at the next step boundary and pauses
// every idle worker. Steps already in flight run to completion. A no-op
// on already-terminal workflows.
func (o *Orchestrator) Pause(ctx context.Context, workflowID string) error {
	r, err := o.getRun(workflowID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.workflow.Status.Terminal() {
		r.mu.Unlock()
		return nil
	}
	if r.workflow.Status != models.WorkflowInProgress {
		status := r.workflow.Status
		r.mu.Unlock()
		return fmt.Errorf("%w: cannot pause workflow in status %s", ErrInvalidControl, status)
	}
	r.paused = true
	r.resumeCh = make(chan struct{})
	r.workflow.Status = models.WorkflowPaused
	agentIDs := r.workflow.AgentIDs()
	r.mu.Unlock()

	for _, agentID := range agentIDs {
		if state, serr := o.lifecycle.State(agentID); serr == nil && state.Lifecycle == models.StateReady {
			if perr := o.lifecycle.Pause(ctx, agentID); perr != nil {
				o.logger.Warn("Failed to pause agent", "agent_id", agentID, "error", perr)
			}
		}
	}

	o.persistWorkflowBestEffort(ctx, r)
	o.logger.Info("Workflow paused", "workflow_id", workflowID)
	return nil
}

// Resume reopens the dispatch gate and resumes paused workers. A no-op
// on already-terminal workflows.
func (o *Orchestrator) Resume(ctx context.Context, workflowID string) error {
	r, err := o.getRun(workflowID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.workflow.Status.Terminal() {
		r.mu.Unlock()
		return nil
	}
	if r.workflow.Status != models.WorkflowPaused {
		status := r.workflow.Status
		r.mu.Unlock()
		return fmt.Errorf("%w: cannot resume workflow in status %s", ErrInvalidControl, status)
	}
	r.paused = false
	r.workflow.Status = models.WorkflowInProgress
	ch := r.resumeCh
	agentIDs := r.workflow.AgentIDs()
	r.mu.Unlock()

	for _, agentID := range agentIDs {
		if state, serr := o.lifecycle.State(agentID); serr == nil && state.Lifecycle == models.StatePaused {
			if rerr := o.lifecycle.Resume(ctx, agentID); rerr != nil {
				o.logger.Warn("Failed to resume agent", "agent_id", agentID, "error", rerr)
			}
		}
	}

	if ch != nil {
		close(ch)
	}
	o.persistWorkflowBestEffort(ctx, r)
	o.logger.Info("Workflow resumed", "workflow_id", workflowID)
	return nil
}

// Cancel stops the workflow and tears down its pool: dispatch stops,
// the run context is cancelled, workers are force-terminated, pending
// response waiters are released, and the cancelled status is persisted.
// A no-op on already-terminal workflows.
func (o *Orchestrator) Cancel(ctx context.Context, workflowID string) error {
	r, err := o.getRun(workflowID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if r.cancelled || r.workflow.Status.Terminal() {
		r.mu.Unlock()
		return nil
	}
	r.cancelled = true
	r.workflow.Status = models.WorkflowCancelled
	cancel := r.cancel
	resumeCh := r.resumeCh
	r.paused = false
	agentIDs := r.workflow.AgentIDs()
	r.mu.Unlock()

	if resumeCh != nil {
		close(resumeCh)
	}
	if cancel != nil {
		cancel()
	}

	for _, agentID := range agentIDs {
		if terr := o.lifecycle.Terminate(ctx, agentID, true); terr != nil {
			o.logger.Warn("Failed to terminate agent on cancel",
				"agent_id", agentID, "error", terr)
		}
	}
	o.bus.ReleaseAll()

	r.mu.Lock()
	for pi := range r.workflow.Phases {
		phase := &r.workflow.Phases[pi]
		for si := range phase.Steps {
			if !phase.Steps[si].Status.Terminal() && phase.Steps[si].Status != models.StepRunning {
				phase.Steps[si].Status = models.StepCancelled
			}
		}
	}
	r.mu.Unlock()

	o.emit(r, EventWorkflowCancelled, "Workflow cancelled", nil)
	if perr := o.persistWorkflow(ctx, r); perr != nil {
		o.logger.Error("Failed to persist cancelled workflow",
			"workflow_id", workflowID, "error", perr)
	}
	o.logger.Info("Workflow cancelled", "workflow_id", workflowID)
	return nil
}

// Status returns a snapshot of the workflow, consulting the store for
// workflows not resident in memory.
func (o *Orchestrator) Status(ctx context.Context, workflowID string) (*models.Workflow, error) {
	if r, err := o.getRun(workflowID); err == nil {
		wf := r.snapshot()
		return &wf, nil
	}
	wf, err := o.store.LoadWorkflow(ctx, workflowID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkflow, workflowID)
	}
	return wf, nil
}

// ListActive returns in-memory workflows that are not terminal,
// optionally filtered to one owner, ordered by creation time.
func (o *Orchestrator) ListActive(userID string) []models.Workflow {
	o.mu.RLock()
	runs := make([]*run, 0, len(o.runs))
	for _, r := range o.runs {
		runs = append(runs, r)
	}
	o.mu.RUnlock()

	var out []models.Workflow
	for _, r := range runs {
		wf := r.snapshot()
		if wf.Status.Terminal() {
			continue
		}
		if userID != "" && wf.OwnerUserID != userID {
			continue
		}
		out = append(out, wf)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Release drops a terminal workflow's in-memory run state. Active
// workflows are refused.
func (o *Orchestrator) Release(workflowID string) error {
	r, err := o.getRun(workflowID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	terminal := r.workflow.Status.Terminal()
	r.mu.Unlock()
	if !terminal {
		return fmt.Errorf("%w: workflow %s still active", ErrInvalidControl, workflowID)
	}
	o.mu.Lock()
	delete(o.runs, workflowID)
	o.mu.Unlock()
	return nil
}
