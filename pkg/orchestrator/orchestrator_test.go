package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/devex-platform/crewd/pkg/agent"
	"github.com/devex-platform/crewd/pkg/breaker"
	"github.com/devex-platform/crewd/pkg/bus"
	"github.com/devex-platform/crewd/pkg/config"
	"github.com/devex-platform/crewd/pkg/evolution"
	"github.com/devex-platform/crewd/pkg/lifecycle"
	"github.com/devex-platform/crewd/pkg/limiter"
	"github.com/devex-platform/crewd/pkg/llm"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/devex-platform/crewd/pkg/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	req models.Requirements
}

func (s stubAnalyzer) Analyze(context.Context, string, map[string]any) (models.Requirements, error) {
	return s.req, nil
}

type runRecord struct {
	TemplateID string
	AgentID    string
	SharedKeys []string
}

// script drives every worker in the pool: which templates fail, which
// block on a gate, and a log of what actually ran.
type script struct {
	mu      sync.Mutex
	fail    map[string]string
	gate    map[string]chan struct{}
	started chan string
	runs    []runRecord
}

func newScript() *script {
	return &script{
		fail: make(map[string]string),
		gate: make(map[string]chan struct{}),
	}
}

func (s *script) recorded() []runRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]runRecord(nil), s.runs...)
}

type scriptedWorker struct {
	templateID string
	script     *script
}

func (w *scriptedWorker) Execute(ctx context.Context, _ map[string]any, execCtx agent.ExecutionContext) (*models.ExecutionResult, error) {
	w.script.mu.Lock()
	failMsg := w.script.fail[w.templateID]
	gate := w.script.gate[w.templateID]
	started := w.script.started
	w.script.mu.Unlock()

	if started != nil {
		started <- w.templateID
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return &models.ExecutionResult{OK: false, Error: ctx.Err().Error()}, ctx.Err()
		}
	}

	keys := make([]string, 0, len(execCtx.SharedContext))
	for k := range execCtx.SharedContext {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w.script.mu.Lock()
	w.script.runs = append(w.script.runs, runRecord{
		TemplateID: w.templateID,
		AgentID:    execCtx.AgentID,
		SharedKeys: keys,
	})
	w.script.mu.Unlock()

	if failMsg != "" {
		return &models.ExecutionResult{OK: false, Error: failMsg}, nil
	}
	return &models.ExecutionResult{
		OK:     true,
		Output: map[string]any{"content": "done-" + w.templateID},
	}, nil
}

type fakeStore struct {
	mu        sync.Mutex
	workflows map[string]models.Workflow
	rows      []ExecutionRow
	states    map[string]models.AgentState
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		workflows: make(map[string]models.Workflow),
		states:    make(map[string]models.AgentState),
	}
}

func (s *fakeStore) UpsertWorkflow(_ context.Context, wf models.Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workflows[wf.WorkflowID] = wf
	return nil
}

func (s *fakeStore) LoadWorkflow(_ context.Context, workflowID string) (*models.Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wf, ok := s.workflows[workflowID]
	if !ok {
		return nil, fmt.Errorf("workflow %s not found", workflowID)
	}
	return &wf, nil
}

func (s *fakeStore) AppendAgentExecution(_ context.Context, row ExecutionRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, row)
	return nil
}

func (s *fakeStore) executionRows() []ExecutionRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ExecutionRow(nil), s.rows...)
}

func (s *fakeStore) UpsertAgentState(_ context.Context, state models.AgentState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.AgentID] = state
	return nil
}

func (s *fakeStore) LoadAgentState(_ context.Context, agentID string) (*models.AgentState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[agentID]
	if !ok {
		return nil, fmt.Errorf("agent state %s not found", agentID)
	}
	return &state, nil
}

type fakeSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *fakeSink) Publish(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *fakeSink) types() []EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

type fakeResultCache struct {
	mu      sync.Mutex
	entries map[string]models.ExecutionResult
}

func (c *fakeResultCache) SetAgentResult(_ context.Context, templateID, inputHash string, value any) error {
	result, ok := value.(*models.ExecutionResult)
	if !ok {
		return fmt.Errorf("unexpected value type %T", value)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string]models.ExecutionResult)
	}
	c.entries[templateID+":"+inputHash] = *result
	return nil
}

func (c *fakeResultCache) GetAgentResult(_ context.Context, templateID, inputHash string, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.entries[templateID+":"+inputHash]
	if !ok {
		return errors.New("miss")
	}
	*(out.(*models.ExecutionResult)) = result
	return nil
}

type testEnv struct {
	orch   *Orchestrator
	store  *fakeStore
	sink   *fakeSink
	script *script
}

func newTestEnv(t *testing.T, sc *script, req models.Requirements, rc ResultCache) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	registry := agent.NewRegistry()
	for _, template := range agent.BuiltinTemplates() {
		templateID := template.TemplateID
		require.NoError(t, registry.Register(agent.Registration{
			Template: template,
			Factory: func(map[string]any, llm.Client) (agent.Worker, error) {
				return &scriptedWorker{templateID: templateID, script: sc}, nil
			},
		}))
	}
	factory := agent.NewFactory(registry, &llm.MockClient{Response: "ok"}, logger)

	b := bus.New(config.DefaultBus(), logger)
	b.Start()
	t.Cleanup(b.Stop)

	store := newFakeStore()
	lm := lifecycle.NewManager(store, nil, b, logger)
	lim := limiter.New(config.LimiterConfig{
		MaxConcurrent:    4,
		MaxExecutionTime: 5 * time.Second,
		HistorySize:      50,
	}, logger)
	brk := breaker.NewRegistry(config.DefaultBreaker(), func(err error) bool {
		return errors.Is(err, limiter.ErrTimeout)
	}, logger)

	maker := pool.NewMaker(stubAnalyzer{req: req}, factory, logger)
	seq := 0
	maker.SetIDGenerator(func() string {
		seq++
		return fmt.Sprintf("agent-%03d", seq)
	})

	sink := &fakeSink{}
	orch := New(Deps{
		Maker:     maker,
		Lifecycle: lm,
		Bus:       b,
		Limiter:   lim,
		Breakers:  brk,
		Evolution: evolution.NewEngine(logger),
		Store:     store,
		Cache:     rc,
		Sink:      sink,
		Logger:    logger,
	})
	return &testEnv{orch: orch, store: store, sink: sink, script: sc}
}

// backendsReq yields three sequential backend steps plus the writer.
func backendsReq() models.Requirements {
	return models.Requirements{
		ProjectType: models.ProjectWebApp,
		Complexity:  models.ComplexityMedium,
		Technologies: []models.Technology{
			models.TechGolang, models.TechNodeExpress, models.TechPythonFastAPI,
		},
	}
}

// writerOnlyReq yields the minimal pool: just the technical writer.
func writerOnlyReq() models.Requirements {
	return models.Requirements{
		ProjectType: models.ProjectWebApp,
		Complexity:  models.ComplexitySimple,
	}
}

func findStep(t *testing.T, wf *models.Workflow, name string) models.Step {
	t.Helper()
	for _, phase := range wf.Phases {
		for _, step := range phase.Steps {
			if step.Name == name {
				return step
			}
		}
	}
	t.Fatalf("step %s not found", name)
	return models.Step{}
}

func TestExecuteWorkflowCompletes(t *testing.T) {
	env := newTestEnv(t, newScript(), backendsReq(), nil)
	ctx := context.Background()

	wf, err := env.orch.CreateWorkflow(ctx, "build a multi-backend service", "sess-1", "user-1", models.WorkflowOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowPending, wf.Status)
	assert.Len(t, wf.Phases, 2)

	report, err := env.orch.ExecuteWorkflow(ctx, wf.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowCompleted, report.Status)

	// Every planned step is accounted for, exactly once, all terminal.
	assert.Len(t, report.Results, wf.StepCount())
	for _, res := range report.Results {
		assert.True(t, res.Status.Terminal(), "step %s not terminal", res.StepID)
		assert.Equal(t, models.StepCompleted, res.Status)
	}

	types := env.sink.types()
	assert.Contains(t, types, EventWorkflowCompleted)
	assert.NotContains(t, types, EventWorkflowFailed)
}

func TestSequentialFailureSkipsRemainder(t *testing.T) {
	sc := newScript()
	sc.fail[agent.TemplateNodeBackend] = "compilation exploded"
	env := newTestEnv(t, sc, backendsReq(), nil)
	ctx := context.Background()

	wf, err := env.orch.CreateWorkflow(ctx, "build a multi-backend service", "sess-1", "user-1", models.WorkflowOptions{})
	require.NoError(t, err)

	report, err := env.orch.ExecuteWorkflow(ctx, wf.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowFailed, report.Status)

	final, err := env.orch.Status(ctx, wf.WorkflowID)
	require.NoError(t, err)

	// Sequential backend phase: go completed, node failed with the
	// worker's error text, python skipped.
	assert.Equal(t, models.StepCompleted, findStep(t, final, agent.TemplateGoBackend).Status)
	failed := findStep(t, final, agent.TemplateNodeBackend)
	assert.Equal(t, models.StepFailed, failed.Status)
	assert.Equal(t, "compilation exploded", failed.Error)
	assert.Equal(t, models.StepSkipped, findStep(t, final, agent.TemplatePythonBackend).Status)

	// The writer phase never starts.
	assert.Equal(t, models.StepSkipped, findStep(t, final, agent.TemplateTechnicalWriter).Status)
	assert.Equal(t, models.PhaseFailed, final.Phases[0].Status)
	assert.Equal(t, models.PhaseSkipped, final.Phases[1].Status)

	// Completed outputs survive the failure.
	goAgent := findStep(t, final, agent.TemplateGoBackend).AgentID
	assert.Contains(t, final.SharedContext, goAgent+"_output")

	// One audit row per attempted step, none for skipped ones.
	rows := env.store.executionRows()
	require.Len(t, rows, 2)
	statuses := map[string]string{}
	for _, row := range rows {
		statuses[row.AgentID] = row.Status
	}
	assert.Equal(t, "completed", statuses[goAgent])
	assert.Equal(t, "failed", statuses[failed.AgentID])
}

func TestContinueOnFailureRunsLaterPhases(t *testing.T) {
	sc := newScript()
	sc.fail[agent.TemplateNodeBackend] = "still broken"
	env := newTestEnv(t, sc, backendsReq(), nil)
	ctx := context.Background()

	wf, err := env.orch.CreateWorkflow(ctx, "keep going", "sess-1", "user-1",
		models.WorkflowOptions{ContinueOnFailure: true})
	require.NoError(t, err)

	report, err := env.orch.ExecuteWorkflow(ctx, wf.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowFailed, report.Status)

	final, err := env.orch.Status(ctx, wf.WorkflowID)
	require.NoError(t, err)
	// The writer phase still ran despite the backend failure.
	assert.Equal(t, models.StepCompleted, findStep(t, final, agent.TemplateTechnicalWriter).Status)
	assert.Equal(t, models.PhaseCompleted, final.Phases[1].Status)
}

func TestSequentialOutputPropagation(t *testing.T) {
	sc := newScript()
	env := newTestEnv(t, sc, backendsReq(), nil)
	ctx := context.Background()

	wf, err := env.orch.CreateWorkflow(ctx, "pipeline", "sess-1", "user-1", models.WorkflowOptions{})
	require.NoError(t, err)
	_, err = env.orch.ExecuteWorkflow(ctx, wf.WorkflowID)
	require.NoError(t, err)

	final, err := env.orch.Status(ctx, wf.WorkflowID)
	require.NoError(t, err)
	goAgent := findStep(t, final, agent.TemplateGoBackend).AgentID
	nodeAgent := findStep(t, final, agent.TemplateNodeBackend).AgentID

	var goRun, nodeRun, pythonRun *runRecord
	recs := sc.recorded()
	for i := range recs {
		rec := recs[i]
		switch rec.TemplateID {
		case agent.TemplateGoBackend:
			goRun = &rec
		case agent.TemplateNodeBackend:
			nodeRun = &rec
		case agent.TemplatePythonBackend:
			pythonRun = &rec
		}
	}
	require.NotNil(t, goRun)
	require.NotNil(t, nodeRun)
	require.NotNil(t, pythonRun)

	// The first step sees no prior outputs; each later step sees every
	// predecessor's output under "{agent_id}_output".
	assert.Empty(t, goRun.SharedKeys)
	assert.Equal(t, []string{goAgent + "_output"}, nodeRun.SharedKeys)
	assert.Equal(t, []string{goAgent + "_output", nodeAgent + "_output"}, pythonRun.SharedKeys)
}

func TestCancelIsIdempotent(t *testing.T) {
	env := newTestEnv(t, newScript(), writerOnlyReq(), nil)
	ctx := context.Background()

	wf, err := env.orch.CreateWorkflow(ctx, "cancel me", "sess-1", "user-1", models.WorkflowOptions{})
	require.NoError(t, err)

	require.NoError(t, env.orch.Cancel(ctx, wf.WorkflowID))
	require.NoError(t, env.orch.Cancel(ctx, wf.WorkflowID))

	final, err := env.orch.Status(ctx, wf.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowCancelled, final.Status)
	for _, phase := range final.Phases {
		for _, step := range phase.Steps {
			assert.Equal(t, models.StepCancelled, step.Status)
		}
	}

	// A cancelled workflow cannot be executed.
	_, err = env.orch.ExecuteWorkflow(ctx, wf.WorkflowID)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Contains(t, env.sink.types(), EventWorkflowCancelled)
}

func TestPauseGatesNextStep(t *testing.T) {
	sc := newScript()
	sc.started = make(chan string, 8)
	gate := make(chan struct{})
	sc.gate[agent.TemplateGoBackend] = gate
	env := newTestEnv(t, sc, backendsReq(), nil)
	ctx := context.Background()

	wf, err := env.orch.CreateWorkflow(ctx, "pause me", "sess-1", "user-1", models.WorkflowOptions{})
	require.NoError(t, err)

	done := make(chan *ExecutionReport, 1)
	go func() {
		report, _ := env.orch.ExecuteWorkflow(ctx, wf.WorkflowID)
		done <- report
	}()

	// First step is in flight and blocked on the gate.
	select {
	case tid := <-sc.started:
		require.Equal(t, agent.TemplateGoBackend, tid)
	case <-time.After(2 * time.Second):
		t.Fatal("first step never started")
	}

	require.NoError(t, env.orch.Pause(ctx, wf.WorkflowID))
	close(gate)

	// The running step finishes, but the next one stays gated.
	select {
	case tid := <-sc.started:
		t.Fatalf("step %s dispatched while paused", tid)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, env.orch.Resume(ctx, wf.WorkflowID))

	select {
	case report := <-done:
		require.NotNil(t, report)
		assert.Equal(t, models.WorkflowCompleted, report.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("workflow did not finish after resume")
	}
}

func TestPauseRequiresInProgress(t *testing.T) {
	env := newTestEnv(t, newScript(), writerOnlyReq(), nil)
	ctx := context.Background()

	wf, err := env.orch.CreateWorkflow(ctx, "not started", "sess-1", "user-1", models.WorkflowOptions{})
	require.NoError(t, err)

	assert.ErrorIs(t, env.orch.Pause(ctx, wf.WorkflowID), ErrInvalidControl)
	assert.ErrorIs(t, env.orch.Resume(ctx, wf.WorkflowID), ErrInvalidControl)
}

func TestControlsAreNoOpsOnTerminalWorkflows(t *testing.T) {
	env := newTestEnv(t, newScript(), writerOnlyReq(), nil)
	ctx := context.Background()

	wf, err := env.orch.CreateWorkflow(ctx, "finish me", "sess-1", "user-1", models.WorkflowOptions{})
	require.NoError(t, err)
	_, err = env.orch.ExecuteWorkflow(ctx, wf.WorkflowID)
	require.NoError(t, err)

	final, err := env.orch.Status(ctx, wf.WorkflowID)
	require.NoError(t, err)
	require.Equal(t, models.WorkflowCompleted, final.Status)

	// Controls on a finished workflow succeed without touching it.
	require.NoError(t, env.orch.Pause(ctx, wf.WorkflowID))
	require.NoError(t, env.orch.Resume(ctx, wf.WorkflowID))
	require.NoError(t, env.orch.Cancel(ctx, wf.WorkflowID))

	after, err := env.orch.Status(ctx, wf.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowCompleted, after.Status)
	for _, phase := range after.Phases {
		for _, step := range phase.Steps {
			assert.Equal(t, models.StepCompleted, step.Status)
		}
	}
}

func TestCreateWorkflowRejectsEmptyText(t *testing.T) {
	env := newTestEnv(t, newScript(), writerOnlyReq(), nil)
	_, err := env.orch.CreateWorkflow(context.Background(), "   ", "sess-1", "user-1", models.WorkflowOptions{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStatusFallsBackToStore(t *testing.T) {
	env := newTestEnv(t, newScript(), writerOnlyReq(), nil)
	ctx := context.Background()

	wf, err := env.orch.CreateWorkflow(ctx, "archive me", "sess-1", "user-1", models.WorkflowOptions{})
	require.NoError(t, err)
	_, err = env.orch.ExecuteWorkflow(ctx, wf.WorkflowID)
	require.NoError(t, err)

	require.NoError(t, env.orch.Release(wf.WorkflowID))
	loaded, err := env.orch.Status(ctx, wf.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, wf.WorkflowID, loaded.WorkflowID)
	assert.Equal(t, models.WorkflowCompleted, loaded.Status)

	_, err = env.orch.Status(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUnknownWorkflow)
}

func TestListActiveFiltersByUser(t *testing.T) {
	env := newTestEnv(t, newScript(), writerOnlyReq(), nil)
	ctx := context.Background()

	a, err := env.orch.CreateWorkflow(ctx, "for alice", "sess-1", "alice", models.WorkflowOptions{})
	require.NoError(t, err)
	_, err = env.orch.CreateWorkflow(ctx, "for bob", "sess-2", "bob", models.WorkflowOptions{})
	require.NoError(t, err)

	all := env.orch.ListActive("")
	assert.Len(t, all, 2)

	alice := env.orch.ListActive("alice")
	require.Len(t, alice, 1)
	assert.Equal(t, a.WorkflowID, alice[0].WorkflowID)

	// Terminal workflows drop out of the active list.
	_, err = env.orch.ExecuteWorkflow(ctx, a.WorkflowID)
	require.NoError(t, err)
	assert.Empty(t, env.orch.ListActive("alice"))
}

func TestResultCacheServesRepeatExecutions(t *testing.T) {
	rc := &fakeResultCache{}

	sc := newScript()
	env := newTestEnv(t, sc, writerOnlyReq(), rc)
	ctx := context.Background()
	opts := models.WorkflowOptions{CacheResults: true}

	first, err := env.orch.CreateWorkflow(ctx, "same request", "sess-1", "user-1", opts)
	require.NoError(t, err)
	_, err = env.orch.ExecuteWorkflow(ctx, first.WorkflowID)
	require.NoError(t, err)
	require.Len(t, sc.recorded(), 1)

	// The second identical workflow is served from the result cache; the
	// worker never runs.
	second, err := env.orch.CreateWorkflow(ctx, "same request", "sess-2", "user-1", opts)
	require.NoError(t, err)
	report, err := env.orch.ExecuteWorkflow(ctx, second.WorkflowID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowCompleted, report.Status)
	assert.Len(t, sc.recorded(), 1)
}

func TestExecuteTwiceRejected(t *testing.T) {
	env := newTestEnv(t, newScript(), writerOnlyReq(), nil)
	ctx := context.Background()

	wf, err := env.orch.CreateWorkflow(ctx, "once only", "sess-1", "user-1", models.WorkflowOptions{})
	require.NoError(t, err)
	_, err = env.orch.ExecuteWorkflow(ctx, wf.WorkflowID)
	require.NoError(t, err)

	_, err = env.orch.ExecuteWorkflow(ctx, wf.WorkflowID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
