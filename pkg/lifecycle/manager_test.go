package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/devex-platform/crewd/pkg/agent"
	"github.com/devex-platform/crewd/pkg/bus"
	"github.com/devex-platform/crewd/pkg/config"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu     sync.Mutex
	states map[string]models.AgentState
	fail   bool
}

func newMemStore() *memStore {
	return &memStore{states: make(map[string]models.AgentState)}
}

func (s *memStore) UpsertAgentState(_ context.Context, state models.AgentState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("store unavailable")
	}
	s.states[state.AgentID] = state
	return nil
}

func (s *memStore) LoadAgentState(_ context.Context, agentID string) (*models.AgentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[agentID]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

type nopWorker struct{}

func (nopWorker) Execute(context.Context, map[string]any, agent.ExecutionContext) (*models.ExecutionResult, error) {
	return &models.ExecutionResult{OK: true}, nil
}

func newTestManager(t *testing.T) (*Manager, *memStore, *bus.Bus) {
	t.Helper()
	store := newMemStore()
	b := bus.New(config.DefaultBus(), slog.Default())
	b.Start()
	t.Cleanup(b.Stop)
	return NewManager(store, nil, b, slog.Default()), store, b
}

func spec(id string, deps ...string) models.AgentSpecification {
	return models.AgentSpecification{AgentID: id, TemplateID: "python_backend", Dependencies: deps}
}

func TestCreateLeavesAgentReady(t *testing.T) {
	m, store, b := newTestManager(t)
	ctx := context.Background()

	id, err := m.Create(ctx, spec("a1"), models.KindCode, nopWorker{})
	require.NoError(t, err)
	assert.Equal(t, "a1", id)

	state, err := m.State("a1")
	require.NoError(t, err)
	assert.Equal(t, models.StateReady, state.Lifecycle)
	assert.True(t, b.Registered("a1"))

	store.mu.Lock()
	persisted := store.states["a1"]
	store.mu.Unlock()
	assert.Equal(t, models.StateReady, persisted.Lifecycle)
}

func TestTransitionMatrix(t *testing.T) {
	tests := []struct {
		from  models.LifecycleState
		to    models.LifecycleState
		valid bool
	}{
		{models.StateCreated, models.StateInitializing, true},
		{models.StateCreated, models.StateRunning, false},
		{models.StateInitializing, models.StateReady, true},
		{models.StateReady, models.StateRunning, true},
		{models.StateReady, models.StateSuspended, false},
		{models.StateRunning, models.StateReady, true},
		{models.StateRunning, models.StateSuspended, true},
		{models.StatePaused, models.StateRunning, true},
		{models.StatePaused, models.StateSuspended, false},
		{models.StateSuspended, models.StateReady, true},
		{models.StateSuspended, models.StateRunning, false},
		{models.StateError, models.StateReady, true},
		{models.StateError, models.StateRunning, false},
		{models.StateTerminating, models.StateTerminated, true},
		{models.StateTerminated, models.StateReady, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestInvalidTransitionRejected(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()
	_, err := m.Create(ctx, spec("a1"), models.KindCode, nopWorker{})
	require.NoError(t, err)

	err = m.Transition(ctx, "a1", models.StateSuspended)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTerminateBlockedByDependents(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.Create(ctx, spec("writer"), models.KindDocumentation, nopWorker{})
	require.NoError(t, err)
	_, err = m.Create(ctx, spec("backend", "writer"), models.KindCode, nopWorker{})
	require.NoError(t, err)

	err = m.Terminate(ctx, "writer", false)
	assert.ErrorIs(t, err, ErrDependencyBlocked)

	// Force override works regardless of dependents.
	require.NoError(t, m.Terminate(ctx, "writer", true))
	state, err := m.State("writer")
	require.NoError(t, err)
	assert.Equal(t, models.StateTerminated, state.Lifecycle)

	// After the dependent terminates, a second terminate is a no-op.
	require.NoError(t, m.Terminate(ctx, "backend", false))
	require.NoError(t, m.Terminate(ctx, "backend", false))
}

func TestCheckpointRingBounded(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()
	_, err := m.Create(ctx, spec("a1"), models.KindCode, nopWorker{})
	require.NoError(t, err)

	for i := 0; i < 15; i++ {
		require.NoError(t, m.Checkpoint(ctx, "a1", map[string]any{"seq": i}))
	}

	state, err := m.State("a1")
	require.NoError(t, err)
	require.Len(t, state.Checkpoints, 10)
	// Newest last; oldest surviving entry is seq=5.
	assert.EqualValues(t, 5, state.Checkpoints[0].Payload["seq"])
	assert.EqualValues(t, 14, state.Checkpoints[9].Payload["seq"])

	cp, err := m.RestoreCheckpoint("a1", -1)
	require.NoError(t, err)
	assert.EqualValues(t, 14, cp.Payload["seq"])
	assert.Equal(t, models.CheckpointSchemaVersion, cp.SchemaVersion)
}

func TestRecoverFromError(t *testing.T) {
	m, store, b := newTestManager(t)
	ctx := context.Background()
	_, err := m.Create(ctx, spec("a1"), models.KindCode, nopWorker{})
	require.NoError(t, err)

	require.NoError(t, m.Start(ctx, "a1"))
	require.NoError(t, m.Transition(ctx, "a1", models.StateError))

	// Simulate a restart: drop the in-memory entry, recover from the store.
	m.Release("a1")
	b.Unregister("a1")
	_, err = m.State("a1")
	assert.ErrorIs(t, err, ErrUnknownAgent)

	require.NoError(t, m.Recover(ctx, "a1", nopWorker{}))
	state, err := m.State("a1")
	require.NoError(t, err)
	assert.Equal(t, models.StateReady, state.Lifecycle)
	assert.True(t, b.Registered("a1"))

	store.mu.Lock()
	assert.Equal(t, models.StateReady, store.states["a1"].Lifecycle)
	store.mu.Unlock()
}

func TestHooksRunOnTransitionAndFailuresDoNotBlock(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	var order []string
	m.OnState(models.StateReady, func(_ context.Context, s models.AgentState) error {
		order = append(order, "first")
		return errors.New("hook failure ignored")
	})
	m.OnState(models.StateReady, func(_ context.Context, s models.AgentState) error {
		order = append(order, "second")
		return nil
	})

	_, err := m.Create(ctx, spec("a1"), models.KindCode, nopWorker{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRecordExecutionCounters(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()
	_, err := m.Create(ctx, spec("a1"), models.KindCode, nopWorker{})
	require.NoError(t, err)

	require.NoError(t, m.RecordExecution(ctx, "a1", true))
	require.NoError(t, m.RecordExecution(ctx, "a1", false))

	state, err := m.State("a1")
	require.NoError(t, err)
	assert.Equal(t, 2, state.Counters.ExecutionCount)
	assert.Equal(t, 1, state.Counters.ErrorCount)
}

func TestHealthCheck(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()
	_, err := m.Create(ctx, spec("ok"), models.KindCode, nopWorker{})
	require.NoError(t, err)
	_, err = m.Create(ctx, spec("bad"), models.KindCode, nopWorker{})
	require.NoError(t, err)
	require.NoError(t, m.Start(ctx, "bad"))
	require.NoError(t, m.Transition(ctx, "bad", models.StateError))

	h := m.HealthCheck()
	assert.Equal(t, 2, h.Total)
	assert.Equal(t, 1, h.ByState[models.StateReady])
	assert.Equal(t, []string{"bad"}, h.Unhealthy)
	assert.Equal(t, 2, m.ActiveCount())
}
