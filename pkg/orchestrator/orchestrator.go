// Package orchestrator drives phased workflow execution: it creates
// worker pools, runs phases (parallel or sequential), propagates step
// outputs, reacts to failures, and feeds outcomes to the evolution
// engine.
package orchestrator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/devex-platform/crewd/pkg/agent"
	"github.com/devex-platform/crewd/pkg/breaker"
	"github.com/devex-platform/crewd/pkg/bus"
	"github.com/devex-platform/crewd/pkg/evolution"
	"github.com/devex-platform/crewd/pkg/lifecycle"
	"github.com/devex-platform/crewd/pkg/limiter"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/devex-platform/crewd/pkg/pool"
	"github.com/google/uuid"
)

// Sentinel errors surfaced to the service caller. Per-step failures never
// propagate; they are materialized in the workflow's step records.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnknownWorkflow = errors.New("unknown workflow")
)

const orchestratorSender = "orchestrator"

// run is the in-memory execution state for one workflow.
type run struct {
	mu       sync.Mutex
	workflow *models.Workflow
	pool     *pool.Pool
	byAgent  map[string]models.AgentSpecification

	cancel    context.CancelFunc
	cancelled bool
	paused    bool
	resumeCh  chan struct{}

	// mutations proposed mid-phase, applied only at the phase boundary
	pending []*evolution.Mutation
	// prompt version in use per agent, for performance report-back
	activeVersion map[string]string
}

func (r *run) snapshot() models.Workflow {
	r.mu.Lock()
	defer r.mu.Unlock()
	wf := *r.workflow
	wf.Phases = make([]models.Phase, len(r.workflow.Phases))
	for i, p := range r.workflow.Phases {
		wf.Phases[i] = p
		wf.Phases[i].Steps = append([]models.Step(nil), p.Steps...)
	}
	wf.SharedContext = make(map[string]any, len(r.workflow.SharedContext))
	for k, v := range r.workflow.SharedContext {
		wf.SharedContext[k] = v
	}
	return wf
}

// Orchestrator coordinates the pool maker, lifecycle manager, bus,
// limiter, breakers, and evolution engine. All dependencies are explicit;
// there are no package-level singletons.
type Orchestrator struct {
	maker     *pool.Maker
	lifecycle *lifecycle.Manager
	bus       *bus.Bus
	limiter   *limiter.Limiter
	breakers  *breaker.Registry
	evolution *evolution.Engine
	store     Store
	cache     ResultCache
	prompts   PromptStore
	sink      EventSink
	logger    *slog.Logger

	mu   sync.RWMutex
	runs map[string]*run
}

// Deps bundles the orchestrator's collaborators for construction in main.
type Deps struct {
	Maker     *pool.Maker
	Lifecycle *lifecycle.Manager
	Bus       *bus.Bus
	Limiter   *limiter.Limiter
	Breakers  *breaker.Registry
	Evolution *evolution.Engine
	Store     Store
	Cache     ResultCache
	Prompts   PromptStore
	Sink      EventSink
	Logger    *slog.Logger
}

// New wires an orchestrator. Cache, Prompts, and Sink may be nil.
func New(d Deps) *Orchestrator {
	return &Orchestrator{
		maker:     d.Maker,
		lifecycle: d.Lifecycle,
		bus:       d.Bus,
		limiter:   d.Limiter,
		breakers:  d.Breakers,
		evolution: d.Evolution,
		store:     d.Store,
		cache:     d.Cache,
		prompts:   d.Prompts,
		sink:      d.Sink,
		logger:    d.Logger.With("component", "orchestrator"),
		runs:      make(map[string]*run),
	}
}

// CreateWorkflow analyzes the request, instantiates the pool, installs
// every worker with the lifecycle manager, and persists the workflow.
func (o *Orchestrator) CreateWorkflow(ctx context.Context, userText, sessionID, userID string, opts models.WorkflowOptions) (*models.Workflow, error) {
	if strings.TrimSpace(userText) == "" {
		return nil, fmt.Errorf("%w: empty workflow description", ErrInvalidInput)
	}

	req := o.maker.AnalyzeRequirements(ctx, userText, nil)
	p, err := o.maker.InstantiatePool(ctx, req)
	if err != nil {
		return nil, err
	}

	byAgent := make(map[string]models.AgentSpecification, len(p.Specs))
	for _, spec := range p.Specs {
		template, terr := o.maker.Template(spec.TemplateID)
		kind := models.KindCode
		if terr == nil {
			kind = template.Kind
		}
		if _, cerr := o.lifecycle.Create(ctx, spec, kind, p.Workers[spec.AgentID]); cerr != nil {
			return nil, fmt.Errorf("install agent %s: %w", spec.AgentID, cerr)
		}
		byAgent[spec.AgentID] = spec
	}

	now := time.Now()
	wf := &models.Workflow{
		WorkflowID:    uuid.NewString(),
		Name:          workflowName(userText),
		Description:   userText,
		ProjectType:   req.ProjectType,
		OwnerUserID:   userID,
		SessionID:     sessionID,
		CreatedAt:     now,
		Phases:        p.Plan,
		Status:        models.WorkflowPending,
		Options:       opts,
		SharedContext: make(map[string]any),
		EstimatedTime: pool.EstimateCompletionTime(req, len(p.Specs)),
	}

	r := &run{
		workflow:      wf,
		pool:          p,
		byAgent:       byAgent,
		activeVersion: make(map[string]string),
	}
	o.mu.Lock()
	o.runs[wf.WorkflowID] = r
	o.mu.Unlock()

	if err := o.persistWorkflow(ctx, r); err != nil {
		return nil, err
	}

	o.logger.Info("Workflow created",
		"workflow_id", wf.WorkflowID, "agents", len(p.Specs),
		"phases", len(p.Plan), "project_type", req.ProjectType)
	snapshot := r.snapshot()
	return &snapshot, nil
}

func workflowName(userText string) string {
	name := strings.TrimSpace(userText)
	if len(name) > 60 {
		name = name[:57] + "..."
	}
	return name
}

func (o *Orchestrator) getRun(workflowID string) (*run, error) {
	o.mu.RLock()
	r, ok := o.runs[workflowID]
	o.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWorkflow, workflowID)
	}
	return r, nil
}

// StepResult is one entry of an execution report.
type StepResult struct {
	StepID  string            `json:"step_id"`
	AgentID string            `json:"agent_id"`
	Status  models.StepStatus `json:"status"`
	Output  map[string]any    `json:"output,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// ExecutionReport summarizes a completed ExecuteWorkflow call.
type ExecutionReport struct {
	WorkflowID     string                `json:"workflow_id"`
	Status         models.WorkflowStatus `json:"status"`
	StepsCompleted int                   `json:"steps_completed"`
	Results        []StepResult          `json:"results"`
}

// ExecuteWorkflow drives the phase loop to completion (or failure or
// cancel) and returns the aggregate report.
func (o *Orchestrator) ExecuteWorkflow(ctx context.Context, workflowID string) (*ExecutionReport, error) {
	r, err := o.getRun(workflowID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.workflow.Status != models.WorkflowPending {
		status := r.workflow.Status
		r.mu.Unlock()
		return o.report(r), fmt.Errorf("%w: workflow %s is %s", ErrInvalidInput, workflowID, status)
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()
	r.cancel = cancel
	r.workflow.Status = models.WorkflowInProgress
	r.mu.Unlock()

	o.persistWorkflowBestEffort(ctx, r)

	failed := false
phases:
	for pi := range r.snapshot().Phases {
		if runCtx.Err() != nil {
			break
		}
		r.mu.Lock()
		phase := &r.workflow.Phases[pi]
		if phase.Status == models.PhaseSkipped {
			r.mu.Unlock()
			continue
		}
		phase.Status = models.PhaseInProgress
		phaseName := phase.Name
		phaseKind := phase.Kind
		stepCount := len(phase.Steps)
		r.mu.Unlock()

		o.emit(r, EventPhaseStarted, fmt.Sprintf("Phase %q started", phaseName),
			map[string]any{"phase": phaseName, "kind": string(phaseKind), "steps": stepCount})

		var phaseFailed bool
		if phaseKind == models.PhaseParallel {
			phaseFailed = o.runParallelPhase(runCtx, r, pi)
		} else {
			phaseFailed = o.runSequentialPhase(runCtx, r, pi)
		}

		// Mutations queued during the phase are applied only here, never
		// mid-phase.
		o.applyPendingMutations(ctx, r)

		r.mu.Lock()
		phase = &r.workflow.Phases[pi]
		if phaseFailed {
			phase.Status = models.PhaseFailed
		} else if runCtx.Err() != nil {
			// cancelled mid-phase; statuses already set per step
		} else {
			phase.Status = models.PhaseCompleted
		}
		continueOnFailure := r.workflow.Options.ContinueOnFailure
		r.mu.Unlock()

		o.emit(r, EventPhaseCompleted, fmt.Sprintf("Phase %q finished", phaseName),
			map[string]any{"phase": phaseName, "failed": phaseFailed})
		o.persistWorkflowBestEffort(ctx, r)

		if phaseFailed && !continueOnFailure {
			failed = true
			o.skipRemaining(r, pi+1)
			break phases
		}
		if phaseFailed {
			failed = true
		}
	}

	r.mu.Lock()
	cancelled := r.cancelled
	if !cancelled {
		if failed {
			r.workflow.Status = models.WorkflowFailed
		} else {
			r.workflow.Status = models.WorkflowCompleted
		}
	}
	finalStatus := r.workflow.Status
	r.mu.Unlock()

	switch finalStatus {
	case models.WorkflowCompleted:
		o.emit(r, EventWorkflowCompleted, "Workflow completed", nil)
	case models.WorkflowFailed:
		o.emit(r, EventWorkflowFailed, "Workflow failed", nil)
	}

	if err := o.persistWorkflow(ctx, r); err != nil {
		o.logger.Error("Failed to persist final workflow status",
			"workflow_id", workflowID, "error", err)
	}
	return o.report(r), nil
}

// runSequentialPhase executes steps in order, propagating outputs into
// the shared context between steps. Returns true when the phase failed.
func (o *Orchestrator) runSequentialPhase(ctx context.Context, r *run, phaseIdx int) bool {
	failed := false
	r.mu.Lock()
	stepCount := len(r.workflow.Phases[phaseIdx].Steps)
	r.mu.Unlock()

	for si := 0; si < stepCount; si++ {
		if ctx.Err() != nil {
			o.markCancelledOrSkipped(r, phaseIdx, si)
			continue
		}
		if failed {
			o.markStep(r, phaseIdx, si, func(step *models.Step) {
				step.Status = models.StepSkipped
			})
			continue
		}

		result := o.executeStep(ctx, r, phaseIdx, si)
		if result == nil || !result.OK {
			failed = true
			continue
		}

		// Outputs become visible to later steps in this phase only after
		// the prior step returns.
		r.mu.Lock()
		step := r.workflow.Phases[phaseIdx].Steps[si]
		r.workflow.SharedContext[step.AgentID+"_output"] = result.Output
		r.mu.Unlock()
	}
	return failed
}

// runParallelPhase dispatches all steps concurrently and gathers results.
// Parallel phases are reserved for steps with no inter-step dependencies,
// so outputs are not propagated between members.
func (o *Orchestrator) runParallelPhase(ctx context.Context, r *run, phaseIdx int) bool {
	r.mu.Lock()
	stepCount := len(r.workflow.Phases[phaseIdx].Steps)
	r.mu.Unlock()

	results := make([]*models.ExecutionResult, stepCount)
	var wg sync.WaitGroup
	for si := 0; si < stepCount; si++ {
		wg.Add(1)
		go func(si int) {
			defer wg.Done()
			if ctx.Err() != nil {
				o.markCancelledOrSkipped(r, phaseIdx, si)
				return
			}
			results[si] = o.executeStep(ctx, r, phaseIdx, si)
		}(si)
	}
	wg.Wait()

	failed := false
	for si, result := range results {
		if ctx.Err() != nil && result == nil {
			continue
		}
		if result == nil || !result.OK {
			failed = true
			continue
		}
		r.mu.Lock()
		step := r.workflow.Phases[phaseIdx].Steps[si]
		r.workflow.SharedContext[step.AgentID+"_output"] = result.Output
		r.mu.Unlock()
	}
	return failed
}

func (o *Orchestrator) markStep(r *run, phaseIdx, stepIdx int, mutate func(step *models.Step)) models.Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	step := &r.workflow.Phases[phaseIdx].Steps[stepIdx]
	mutate(step)
	return *step
}

func (o *Orchestrator) markCancelledOrSkipped(r *run, phaseIdx, stepIdx int) {
	r.mu.Lock()
	cancelled := r.cancelled
	r.mu.Unlock()
	status := models.StepSkipped
	if cancelled {
		status = models.StepCancelled
	}
	o.markStep(r, phaseIdx, stepIdx, func(step *models.Step) {
		if !step.Status.Terminal() {
			step.Status = status
		}
	})
}

// waitIfPaused blocks while the run is paused. Returns false when the
// run context is cancelled while waiting.
func (o *Orchestrator) waitIfPaused(ctx context.Context, r *run) bool {
	for {
		r.mu.Lock()
		if !r.paused {
			r.mu.Unlock()
			return true
		}
		ch := r.resumeCh
		r.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
			return false
		}
	}
}

// executeStep runs one worker execute under the breaker and limiter,
// records the audit row, counters, and evolution sample, and materializes
// the outcome in the step record.
func (o *Orchestrator) executeStep(ctx context.Context, r *run, phaseIdx, stepIdx int) *models.ExecutionResult {
	if !o.waitIfPaused(ctx, r) {
		o.markCancelledOrSkipped(r, phaseIdx, stepIdx)
		return nil
	}

	started := time.Now()
	step := o.markStep(r, phaseIdx, stepIdx, func(step *models.Step) {
		step.Status = models.StepRunning
		step.StartedAt = &started
	})

	r.mu.Lock()
	wf := r.workflow
	spec := r.byAgent[step.AgentID]
	inputs := step.Inputs
	if inputs == nil {
		inputs = map[string]any{
			"task": fmt.Sprintf("%s: %s", step.Name, wf.Description),
		}
	}
	sharedCopy := make(map[string]any, len(wf.SharedContext))
	for k, v := range wf.SharedContext {
		sharedCopy[k] = v
	}
	sessionID := wf.SessionID
	workflowID := wf.WorkflowID
	cacheResults := wf.Options.CacheResults
	r.mu.Unlock()

	o.emit(r, EventStepStarted, fmt.Sprintf("Step %s started", step.Name),
		map[string]any{"step_id": step.StepID, "agent_id": step.AgentID})

	worker, err := o.lifecycle.Worker(step.AgentID)
	if err != nil {
		return o.finishStep(ctx, r, phaseIdx, stepIdx, started, inputs,
			&models.ExecutionResult{OK: false, Error: err.Error()}, err)
	}

	// Prefer the best-performing prompt version when history exists.
	if lw, ok := worker.(*agent.LLMWorker); ok {
		if version := o.evolution.BestPromptVersion(step.AgentID); version != nil {
			lw.SetSystemPrompt(version.TemplateText)
			r.mu.Lock()
			r.activeVersion[step.AgentID] = version.VersionID
			r.mu.Unlock()
		}
	}

	// Cache keys use the template id so identical requests hit across
	// workflows; agent ids are fresh per pool.
	inputHash := hashInputs(inputs, sharedCopy)
	if cacheResults && o.cache != nil {
		var cached models.ExecutionResult
		if cerr := o.cache.GetAgentResult(ctx, spec.TemplateID, inputHash, &cached); cerr == nil {
			o.logger.Info("Execute served from result cache",
				"agent_id", step.AgentID, "workflow_id", workflowID)
			return o.finishStep(ctx, r, phaseIdx, stepIdx, started, inputs, &cached, nil)
		}
	}

	// Ready → Running doubles as the one-execute-in-flight guard.
	if err := o.lifecycle.Start(ctx, step.AgentID); err != nil {
		return o.finishStep(ctx, r, phaseIdx, stepIdx, started, inputs,
			&models.ExecutionResult{OK: false, Error: err.Error()}, err)
	}

	execCtx := agent.ExecutionContext{
		WorkflowID:    workflowID,
		SessionID:     sessionID,
		AgentID:       step.AgentID,
		SharedContext: sharedCopy,
	}
	result, execErr := o.breakers.Execute(ctx, spec.TemplateID, step.AgentID, o.limiter,
		func(callCtx context.Context) (*models.ExecutionResult, error) {
			return worker.Execute(callCtx, inputs, execCtx)
		})
	if result == nil {
		result = &models.ExecutionResult{OK: false}
		if execErr != nil {
			result.Error = execErr.Error()
		}
	}

	// A panic leaves the worker in Error; anything else returns to Ready.
	if errors.Is(execErr, limiter.ErrWorkerPanic) {
		_ = o.lifecycle.Transition(ctx, step.AgentID, models.StateError)
	} else if ferr := o.lifecycle.Finish(ctx, step.AgentID); ferr != nil {
		o.logger.Warn("Failed to return agent to ready",
			"agent_id", step.AgentID, "error", ferr)
	}

	if result.OK && cacheResults && o.cache != nil {
		if cerr := o.cache.SetAgentResult(ctx, spec.TemplateID, inputHash, result); cerr != nil {
			o.logger.Warn("Failed to cache step result",
				"agent_id", step.AgentID, "error", cerr)
		}
	}

	return o.finishStep(ctx, r, phaseIdx, stepIdx, started, inputs, result, execErr)
}

func (o *Orchestrator) finishStep(ctx context.Context, r *run, phaseIdx, stepIdx int, started time.Time, inputs map[string]any, result *models.ExecutionResult, execErr error) *models.ExecutionResult {
	finished := time.Now()
	status := models.StepCompleted
	if !result.OK {
		status = models.StepFailed
	}
	if errors.Is(execErr, context.Canceled) {
		status = models.StepCancelled
	}

	step := o.markStep(r, phaseIdx, stepIdx, func(step *models.Step) {
		step.Status = status
		step.FinishedAt = &finished
		step.Outputs = result.Output
		step.Error = result.Error
	})

	r.mu.Lock()
	workflowID := r.workflow.WorkflowID
	sessionID := r.workflow.SessionID
	autoApply := r.workflow.Options.AutoApplyEvolution
	versionID := r.activeVersion[step.AgentID]
	r.mu.Unlock()

	// Audit row per attempted step, best effort.
	rowStatus := "completed"
	switch status {
	case models.StepFailed:
		rowStatus = "failed"
		if errors.Is(execErr, limiter.ErrTimeout) {
			rowStatus = "timed_out"
		}
	case models.StepCancelled:
		rowStatus = "cancelled"
	}
	row := ExecutionRow{
		ExecutionID: uuid.NewString(),
		AgentID:     step.AgentID,
		SessionID:   sessionID,
		WorkflowID:  workflowID,
		Input:       inputs,
		Output:      result.Output,
		Status:      rowStatus,
		Error:       result.Error,
		TokensUsed:  result.TokensUsed,
		StartedAt:   started,
		CompletedAt: &finished,
		Metadata:    result.Metadata,
	}
	if err := o.store.AppendAgentExecution(ctx, row); err != nil {
		o.logger.Warn("Failed to append execution audit row",
			"agent_id", step.AgentID, "error", err)
	}

	if err := o.lifecycle.RecordExecution(ctx, step.AgentID, result.OK); err != nil &&
		!errors.Is(err, lifecycle.ErrUnknownAgent) {
		o.logger.Warn("Failed to record execution counters",
			"agent_id", step.AgentID, "error", err)
	}

	// Evolution bookkeeping: sample, optional mutation, prompt version
	// performance.
	currentPrompt := ""
	if worker, err := o.lifecycle.Worker(step.AgentID); err == nil {
		if lw, ok := worker.(*agent.LLMWorker); ok {
			currentPrompt = lw.SystemPrompt()
		}
	}
	sample := evolution.SampleFromResult(result.OK, finished.Sub(started), result.Error)
	if mutation := o.evolution.Record(step.AgentID, sample, currentPrompt); mutation != nil && autoApply {
		r.mu.Lock()
		r.pending = append(r.pending, mutation)
		r.mu.Unlock()
	}
	if versionID != "" {
		o.evolution.UpdatePromptPerformance(step.AgentID, versionID, result.OK, finished.Sub(started))
		if o.prompts != nil {
			for _, v := range o.evolution.PromptVersions(step.AgentID) {
				if v.VersionID == versionID {
					if perr := o.prompts.SavePromptVersion(ctx, *v); perr != nil {
						o.logger.Warn("Failed to persist prompt version stats",
							"version_id", versionID, "error", perr)
					}
					break
				}
			}
		}
	}

	if status == models.StepCompleted {
		o.emit(r, EventStepCompleted, fmt.Sprintf("Step %s completed", step.Name),
			map[string]any{"step_id": step.StepID, "agent_id": step.AgentID})
	} else {
		o.emit(r, EventStepFailed, fmt.Sprintf("Step %s %s", step.Name, status),
			map[string]any{"step_id": step.StepID, "agent_id": step.AgentID, "error": step.Error})
	}
	return result
}

// applyPendingMutations swaps worker prompts for queued mutations at the
// phase boundary and opens a prompt version for each.
func (o *Orchestrator) applyPendingMutations(ctx context.Context, r *run) {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, mutation := range pending {
		worker, err := o.lifecycle.Worker(mutation.AgentID)
		if err != nil {
			continue
		}
		lw, ok := worker.(*agent.LLMWorker)
		if !ok {
			continue
		}
		version := o.evolution.ApplyMutation(mutation)
		lw.SetSystemPrompt(mutation.ProposedPrompt)
		r.mu.Lock()
		r.activeVersion[mutation.AgentID] = version.VersionID
		r.mu.Unlock()
		if o.prompts != nil {
			if perr := o.prompts.SavePromptVersion(ctx, *version); perr != nil {
				o.logger.Warn("Failed to persist prompt version",
					"agent_id", mutation.AgentID, "version_id", version.VersionID, "error", perr)
			}
		}
		o.logger.Info("Applied evolution mutation at phase boundary",
			"agent_id", mutation.AgentID, "strategy", mutation.Strategy,
			"version_id", version.VersionID)
	}
}

// skipRemaining marks every step in phases from startIdx on as Skipped.
func (o *Orchestrator) skipRemaining(r *run, startIdx int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for pi := startIdx; pi < len(r.workflow.Phases); pi++ {
		phase := &r.workflow.Phases[pi]
		phase.Status = models.PhaseSkipped
		for si := range phase.Steps {
			if !phase.Steps[si].Status.Terminal() {
				phase.Steps[si].Status = models.StepSkipped
			}
		}
	}
}

func hashInputs(inputs, shared map[string]any) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(inputs)
	_ = enc.Encode(shared)
	return hex.EncodeToString(h.Sum(nil))[:32]
}

func (o *Orchestrator) report(r *run) *ExecutionReport {
	wf := r.snapshot()
	report := &ExecutionReport{
		WorkflowID:     wf.WorkflowID,
		Status:         wf.Status,
		StepsCompleted: wf.CompletedSteps(),
	}
	for _, phase := range wf.Phases {
		for _, step := range phase.Steps {
			report.Results = append(report.Results, StepResult{
				StepID:  step.StepID,
				AgentID: step.AgentID,
				Status:  step.Status,
				Output:  step.Outputs,
				Error:   step.Error,
			})
		}
	}
	return report
}

// emit publishes the event to the sink and broadcasts it on the bus.
func (o *Orchestrator) emit(r *run, t EventType, message string, data map[string]any) {
	r.mu.Lock()
	workflowID := r.workflow.WorkflowID
	r.mu.Unlock()

	event := newEvent(workflowID, t, message, data)
	if o.sink != nil {
		o.sink.Publish(event)
	}
	msg := models.NewMessage(orchestratorSender, "", models.MessageEvent, map[string]any{
		"event":       string(t),
		"workflow_id": workflowID,
		"message":     message,
		"data":        data,
	})
	if err := o.bus.Broadcast(msg); err != nil {
		o.logger.Debug("Event broadcast dropped", "type", t, "error", err)
	}
}

// persistWorkflow writes the workflow with retry; status writes are
// critical.
func (o *Orchestrator) persistWorkflow(ctx context.Context, r *run) error {
	wf := r.snapshot()
	var err error
	backoff := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		if err = o.store.UpsertWorkflow(ctx, wf); err == nil {
			return nil
		}
		if attempt < 2 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return err
			}
			backoff *= 2
		}
	}
	return fmt.Errorf("persist workflow %s: %w", wf.WorkflowID, err)
}

func (o *Orchestrator) persistWorkflowBestEffort(ctx context.Context, r *run) {
	if err := o.persistWorkflow(ctx, r); err != nil {
		o.logger.Warn("Workflow persistence failed", "error", err)
	}
}
