// Package lifecycle owns the per-worker state machine: transitions,
// persistence, checkpoints, dependency-aware termination, and recovery.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/devex-platform/crewd/pkg/agent"
	"github.com/devex-platform/crewd/pkg/bus"
	"github.com/devex-platform/crewd/pkg/models"
)

// Sentinel errors.
var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrDependencyBlocked = errors.New("dependency blocked")
	ErrUnknownAgent      = errors.New("unknown agent")
)

// validTransitions is the full transition matrix. Anything absent fails
// with ErrInvalidTransition.
var validTransitions = map[models.LifecycleState][]models.LifecycleState{
	models.StateCreated:      {models.StateInitializing, models.StateError},
	models.StateInitializing: {models.StateReady, models.StateError},
	models.StateReady:        {models.StateRunning, models.StatePaused, models.StateTerminating},
	models.StateRunning:      {models.StateReady, models.StatePaused, models.StateSuspended, models.StateTerminating, models.StateError},
	models.StatePaused:       {models.StateRunning, models.StateReady, models.StateTerminating},
	models.StateSuspended:    {models.StateReady, models.StateTerminating},
	models.StateError:        {models.StateReady, models.StateTerminating},
	models.StateTerminating:  {models.StateTerminated},
	models.StateTerminated:   {},
}

// CanTransition reports whether from → to is in the matrix.
func CanTransition(from, to models.LifecycleState) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// maxCheckpoints bounds each agent's checkpoint ring.
const maxCheckpoints = 10

// Store is the persistence surface the manager writes through.
type Store interface {
	UpsertAgentState(ctx context.Context, state models.AgentState) error
	LoadAgentState(ctx context.Context, agentID string) (*models.AgentState, error)
}

// StateCache mirrors state rows for fast recovery reads. May be nil.
type StateCache interface {
	SetAgentState(ctx context.Context, agentID string, value any) error
	GetAgentState(ctx context.Context, agentID string, out any) error
}

// Hook is a per-state callback run synchronously on transition into that
// state. A failing hook logs but never blocks the transition.
type Hook func(ctx context.Context, state models.AgentState) error

type entry struct {
	mu     sync.Mutex
	state  models.AgentState
	worker agent.Worker
}

// Manager is the single writer for all lifecycle state. Mutations are
// serialized per agent_id.
type Manager struct {
	store  Store
	cache  StateCache
	bus    *bus.Bus
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]*entry

	hookMu sync.RWMutex
	hooks  map[models.LifecycleState][]Hook
}

// NewManager wires a manager. cache may be nil.
func NewManager(store Store, cache StateCache, b *bus.Bus, logger *slog.Logger) *Manager {
	return &Manager{
		store:   store,
		cache:   cache,
		bus:     b,
		logger:  logger.With("component", "lifecycle"),
		entries: make(map[string]*entry),
		hooks:   make(map[models.LifecycleState][]Hook),
	}
}

// OnState registers a hook invoked whenever any agent enters state.
// Hooks run in registration order.
func (m *Manager) OnState(state models.LifecycleState, hook Hook) {
	m.hookMu.Lock()
	m.hooks[state] = append(m.hooks[state], hook)
	m.hookMu.Unlock()
}

// Create installs the agent's state record, registers it with the bus,
// runs worker initialization under Initializing, and leaves the agent
// Ready.
func (m *Manager) Create(ctx context.Context, spec models.AgentSpecification, kind models.AgentKind, worker agent.Worker) (string, error) {
	now := time.Now()
	state := models.AgentState{
		AgentID:      spec.AgentID,
		TemplateID:   spec.TemplateID,
		Kind:         kind,
		Lifecycle:    models.StateCreated,
		Dependencies: spec.Dependencies,
		Counters: models.StatusCounters{
			CreatedAt:   now,
			LastUpdated: now,
		},
	}

	m.mu.Lock()
	if _, exists := m.entries[spec.AgentID]; exists {
		m.mu.Unlock()
		return "", fmt.Errorf("agent %s already managed", spec.AgentID)
	}
	e := &entry{state: state, worker: worker}
	m.entries[spec.AgentID] = e
	m.mu.Unlock()

	m.bus.Register(spec.AgentID)

	if err := m.Transition(ctx, spec.AgentID, models.StateInitializing); err != nil {
		return "", err
	}
	if init, ok := worker.(agent.Initializer); ok {
		if err := init.Initialize(ctx); err != nil {
			_ = m.Transition(ctx, spec.AgentID, models.StateError)
			return "", fmt.Errorf("initialize agent %s: %w", spec.AgentID, err)
		}
	}
	if err := m.Transition(ctx, spec.AgentID, models.StateReady); err != nil {
		return "", err
	}
	return spec.AgentID, nil
}

func (m *Manager) get(agentID string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.entries[agentID]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, agentID)
	}
	return e, nil
}

// Transition moves the agent to the target state, runs hooks, broadcasts
// the change on the bus, and persists the new state.
func (m *Manager) Transition(ctx context.Context, agentID string, to models.LifecycleState) error {
	e, err := m.get(agentID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	from := e.state.Lifecycle
	if !CanTransition(from, to) {
		e.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s for agent %s", ErrInvalidTransition, from, to, agentID)
	}
	e.state.Lifecycle = to
	e.state.Counters.LastUpdated = time.Now()
	snapshot := e.state
	e.mu.Unlock()

	m.logger.Info("Lifecycle transition", "agent_id", agentID, "from", from, "to", to)
	m.runHooks(ctx, to, snapshot)
	m.broadcastTransition(agentID, from, to)

	if err := m.saveState(ctx, snapshot); err != nil {
		return err
	}
	return nil
}

func (m *Manager) runHooks(ctx context.Context, state models.LifecycleState, snapshot models.AgentState) {
	m.hookMu.RLock()
	hooks := m.hooks[state]
	m.hookMu.RUnlock()
	for _, hook := range hooks {
		if err := hook(ctx, snapshot); err != nil {
			m.logger.Warn("Lifecycle hook failed",
				"agent_id", snapshot.AgentID, "state", state, "error", err)
		}
	}
}

func (m *Manager) broadcastTransition(agentID string, from, to models.LifecycleState) {
	msg := models.NewMessage(agentID, "", models.MessageEvent, map[string]any{
		"event": "lifecycle_transition",
		"from":  string(from),
		"to":    string(to),
	})
	if err := m.bus.Broadcast(msg); err != nil {
		m.logger.Warn("Failed to broadcast lifecycle event", "agent_id", agentID, "error", err)
	}
}

// Start moves Ready → Running. The orchestrator calls this before each
// execute, which also guarantees at most one execute in flight per agent.
func (m *Manager) Start(ctx context.Context, agentID string) error {
	return m.Transition(ctx, agentID, models.StateRunning)
}

// Finish moves Running → Ready after an execute returns.
func (m *Manager) Finish(ctx context.Context, agentID string) error {
	return m.Transition(ctx, agentID, models.StateReady)
}

// Pause moves the agent to Paused.
func (m *Manager) Pause(ctx context.Context, agentID string) error {
	return m.Transition(ctx, agentID, models.StatePaused)
}

// Resume moves a Paused agent back to Ready.
func (m *Manager) Resume(ctx context.Context, agentID string) error {
	return m.Transition(ctx, agentID, models.StateReady)
}

// Suspend parks the agent with a reason recorded in its context snapshot.
func (m *Manager) Suspend(ctx context.Context, agentID, reason string) error {
	e, err := m.get(agentID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	if e.state.ContextSnapshot == nil {
		e.state.ContextSnapshot = make(map[string]any)
	}
	e.state.ContextSnapshot["suspend_reason"] = reason
	e.mu.Unlock()
	return m.Transition(ctx, agentID, models.StateSuspended)
}

// Terminate tears the agent down. Without force it refuses while any
// other non-terminated agent depends on this one.
func (m *Manager) Terminate(ctx context.Context, agentID string, force bool) error {
	e, err := m.get(agentID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	current := e.state.Lifecycle
	e.mu.Unlock()
	if current == models.StateTerminated {
		return nil
	}

	if !force {
		if dependents := m.dependents(agentID); len(dependents) > 0 {
			return fmt.Errorf("%w: agent %s has non-terminated dependents %v",
				ErrDependencyBlocked, agentID, dependents)
		}
	}

	if current != models.StateTerminating {
		if err := m.Transition(ctx, agentID, models.StateTerminating); err != nil {
			return err
		}
	}
	if err := m.Transition(ctx, agentID, models.StateTerminated); err != nil {
		return err
	}

	m.bus.Unregister(agentID)
	return nil
}

// dependents lists non-terminated agents that declare agentID as a
// dependency.
func (m *Manager) dependents(agentID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for id, e := range m.entries {
		if id == agentID {
			continue
		}
		e.mu.Lock()
		state := e.state.Lifecycle
		deps := e.state.Dependencies
		e.mu.Unlock()
		if state == models.StateTerminated {
			continue
		}
		for _, dep := range deps {
			if dep == agentID {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

// Release drops the in-memory entry after the agent's workflow has
// terminated. The persisted row is retained.
func (m *Manager) Release(agentID string) {
	m.mu.Lock()
	delete(m.entries, agentID)
	m.mu.Unlock()
}

// Recover loads a persisted agent state, re-registers it with the bus,
// and moves Error/Suspended back to Ready. The caller re-installs the
// worker separately when needed.
func (m *Manager) Recover(ctx context.Context, agentID string, worker agent.Worker) error {
	state, err := m.loadState(ctx, agentID)
	if err != nil {
		return err
	}
	if state == nil {
		return fmt.Errorf("%w: %s", ErrUnknownAgent, agentID)
	}

	m.mu.Lock()
	m.entries[agentID] = &entry{state: *state, worker: worker}
	m.mu.Unlock()

	m.bus.Register(agentID)

	switch state.Lifecycle {
	case models.StateError, models.StateSuspended:
		return m.Transition(ctx, agentID, models.StateReady)
	}
	return nil
}

func (m *Manager) loadState(ctx context.Context, agentID string) (*models.AgentState, error) {
	if m.cache != nil {
		var cached models.AgentState
		if err := m.cache.GetAgentState(ctx, agentID, &cached); err == nil {
			return &cached, nil
		}
	}
	state, err := m.store.LoadAgentState(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("load agent state %s: %w", agentID, err)
	}
	return state, nil
}

// saveState persists to the store (critical, retried) and mirrors to the
// cache (best effort).
func (m *Manager) saveState(ctx context.Context, state models.AgentState) error {
	if err := retry(ctx, 3, func() error {
		return m.store.UpsertAgentState(ctx, state)
	}); err != nil {
		m.logger.Error("Failed to persist agent state",
			"agent_id", state.AgentID, "error", err)
		return fmt.Errorf("persist agent state %s: %w", state.AgentID, err)
	}
	if m.cache != nil {
		if err := m.cache.SetAgentState(ctx, state.AgentID, state); err != nil {
			m.logger.Warn("Failed to cache agent state",
				"agent_id", state.AgentID, "error", err)
		}
	}
	return nil
}

// SaveState persists the agent's current state on demand.
func (m *Manager) SaveState(ctx context.Context, agentID string) error {
	e, err := m.get(agentID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	snapshot := e.state
	e.mu.Unlock()
	return m.saveState(ctx, snapshot)
}

// Checkpoint appends a payload to the agent's bounded checkpoint ring and
// persists.
func (m *Manager) Checkpoint(ctx context.Context, agentID string, payload map[string]any) error {
	e, err := m.get(agentID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	cp := models.Checkpoint{
		SchemaVersion: models.CheckpointSchemaVersion,
		Timestamp:     time.Now(),
		Payload:       payload,
		ExecCount:     e.state.Counters.ExecutionCount,
	}
	e.state.Checkpoints = append(e.state.Checkpoints, cp)
	if n := len(e.state.Checkpoints); n > maxCheckpoints {
		e.state.Checkpoints = e.state.Checkpoints[n-maxCheckpoints:]
	}
	snapshot := e.state
	e.mu.Unlock()

	return m.saveState(ctx, snapshot)
}

// RestoreCheckpoint reads a checkpoint payload without changing state.
// index -1 selects the newest.
func (m *Manager) RestoreCheckpoint(agentID string, index int) (models.Checkpoint, error) {
	e, err := m.get(agentID)
	if err != nil {
		return models.Checkpoint{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.state.Checkpoints)
	if n == 0 {
		return models.Checkpoint{}, fmt.Errorf("agent %s has no checkpoints", agentID)
	}
	if index < 0 {
		index = n - 1
	}
	if index >= n {
		return models.Checkpoint{}, fmt.Errorf("checkpoint index %d out of range for agent %s", index, agentID)
	}
	return e.state.Checkpoints[index], nil
}

// RecordExecution updates the agent's counters after an execute attempt.
func (m *Manager) RecordExecution(ctx context.Context, agentID string, ok bool) error {
	e, err := m.get(agentID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.state.Counters.ExecutionCount++
	if !ok {
		e.state.Counters.ErrorCount++
	}
	e.state.Counters.LastUpdated = time.Now()
	snapshot := e.state
	e.mu.Unlock()
	return m.saveState(ctx, snapshot)
}

// State returns a copy of the agent's current state.
func (m *Manager) State(agentID string) (models.AgentState, error) {
	e, err := m.get(agentID)
	if err != nil {
		return models.AgentState{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, nil
}

// Worker returns the worker bound to the agent.
func (m *Manager) Worker(agentID string) (agent.Worker, error) {
	e, err := m.get(agentID)
	if err != nil {
		return nil, err
	}
	return e.worker, nil
}

// Health summarizes managed agents: counts by state plus the agents
// currently in Error.
type Health struct {
	Total     int                           `json:"total"`
	ByState   map[models.LifecycleState]int `json:"by_state"`
	Unhealthy []string                      `json:"unhealthy,omitempty"`
}

// HealthCheck aggregates lifecycle health for /healthz.
func (m *Manager) HealthCheck() Health {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h := Health{ByState: make(map[models.LifecycleState]int)}
	for id, e := range m.entries {
		e.mu.Lock()
		state := e.state.Lifecycle
		e.mu.Unlock()
		h.Total++
		h.ByState[state]++
		if state == models.StateError {
			h.Unhealthy = append(h.Unhealthy, id)
		}
	}
	return h
}

// ActiveCount reports agents not yet terminated.
func (m *Manager) ActiveCount() int {
	h := m.HealthCheck()
	return h.Total - h.ByState[models.StateTerminated]
}

// retry runs fn up to attempts times with exponential backoff.
func retry(ctx context.Context, attempts int, fn func() error) error {
	var err error
	backoff := 100 * time.Millisecond
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return err
		}
		backoff *= 2
	}
	return err
}
