package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/devex-platform/crewd/pkg/models"
	"github.com/devex-platform/crewd/pkg/orchestrator"
	"github.com/devex-platform/crewd/pkg/pool"
	"github.com/devex-platform/crewd/pkg/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	mu        sync.Mutex
	workflows map[string]*models.Workflow
	createErr error
	executed  chan string
}

func newStubRunner() *stubRunner {
	return &stubRunner{
		workflows: make(map[string]*models.Workflow),
		executed:  make(chan string, 8),
	}
}

func (r *stubRunner) add(wf *models.Workflow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workflows[wf.WorkflowID] = wf
}

func (r *stubRunner) CreateWorkflow(_ context.Context, userText, sessionID, userID string, opts models.WorkflowOptions) (*models.Workflow, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	wf := &models.Workflow{
		WorkflowID:  "wf-1",
		Name:        userText,
		Description: userText,
		SessionID:   sessionID,
		OwnerUserID: userID,
		Status:      models.WorkflowPending,
		Options:     opts,
		CreatedAt:   time.Now(),
	}
	r.add(wf)
	return wf, nil
}

func (r *stubRunner) ExecuteWorkflow(_ context.Context, workflowID string) (*orchestrator.ExecutionReport, error) {
	r.executed <- workflowID
	return &orchestrator.ExecutionReport{WorkflowID: workflowID, Status: models.WorkflowCompleted}, nil
}

func (r *stubRunner) Pause(_ context.Context, workflowID string) error {
	if _, ok := r.workflows[workflowID]; !ok {
		return orchestrator.ErrUnknownWorkflow
	}
	wf := r.workflows[workflowID]
	if wf.Status != models.WorkflowInProgress {
		return fmt.Errorf("%w: cannot pause workflow in status %s", orchestrator.ErrInvalidControl, wf.Status)
	}
	wf.Status = models.WorkflowPaused
	return nil
}

func (r *stubRunner) Resume(_ context.Context, workflowID string) error {
	wf, ok := r.workflows[workflowID]
	if !ok {
		return orchestrator.ErrUnknownWorkflow
	}
	if wf.Status != models.WorkflowPaused {
		return fmt.Errorf("%w: cannot resume workflow in status %s", orchestrator.ErrInvalidControl, wf.Status)
	}
	wf.Status = models.WorkflowInProgress
	return nil
}

func (r *stubRunner) Cancel(_ context.Context, workflowID string) error {
	wf, ok := r.workflows[workflowID]
	if !ok {
		return orchestrator.ErrUnknownWorkflow
	}
	wf.Status = models.WorkflowCancelled
	return nil
}

func (r *stubRunner) Status(_ context.Context, workflowID string) (*models.Workflow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wf, ok := r.workflows[workflowID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", orchestrator.ErrUnknownWorkflow, workflowID)
	}
	copied := *wf
	return &copied, nil
}

func (r *stubRunner) ListActive(userID string) []models.Workflow {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Workflow
	for _, wf := range r.workflows {
		if wf.Status.Terminal() {
			continue
		}
		if userID != "" && wf.OwnerUserID != userID {
			continue
		}
		out = append(out, *wf)
	}
	return out
}

func newTestServer(runner WorkflowRunner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(Deps{Runner: runner, Logger: logger})
	engine := gin.New()
	server.RegisterRoutes(engine)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCreateWorkflow(t *testing.T) {
	runner := newStubRunner()
	engine := newTestServer(runner)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/workflows", CreateWorkflowRequest{
		Description: "build an API",
		SessionID:   "sess-1",
		UserID:      "user-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var wf models.Workflow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wf))
	assert.Equal(t, "wf-1", wf.WorkflowID)
	assert.Equal(t, models.WorkflowPending, wf.Status)
}

func TestCreateWorkflowMissingDescription(t *testing.T) {
	engine := newTestServer(newStubRunner())
	rec := doJSON(t, engine, http.MethodPost, "/api/v1/workflows", map[string]string{"session_id": "s"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateWorkflowPoolFailure(t *testing.T) {
	runner := newStubRunner()
	runner.createErr = fmt.Errorf("%w: no workers", pool.ErrPoolInstantiationFailed)
	engine := newTestServer(runner)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/workflows", CreateWorkflowRequest{Description: "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestExecuteWorkflowAccepted(t *testing.T) {
	runner := newStubRunner()
	runner.add(&models.Workflow{WorkflowID: "wf-1", Status: models.WorkflowPending})
	engine := newTestServer(runner)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/workflows/wf-1/execute", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case id := <-runner.executed:
		assert.Equal(t, "wf-1", id)
	case <-time.After(2 * time.Second):
		t.Fatal("execution never dispatched")
	}
}

func TestExecuteWorkflowConflictWhenNotPending(t *testing.T) {
	runner := newStubRunner()
	runner.add(&models.Workflow{WorkflowID: "wf-1", Status: models.WorkflowCompleted})
	engine := newTestServer(runner)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/workflows/wf-1/execute", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetWorkflowNotFound(t *testing.T) {
	engine := newTestServer(newStubRunner())
	rec := doJSON(t, engine, http.MethodGet, "/api/v1/workflows/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetWorkflowProgress(t *testing.T) {
	runner := newStubRunner()
	now := time.Now()
	runner.add(&models.Workflow{
		WorkflowID: "wf-1",
		Status:     models.WorkflowInProgress,
		CreatedAt:  now,
		Phases: []models.Phase{{
			PhaseID: "phase-1",
			Name:    "Backend Development",
			Kind:    models.PhaseSequential,
			Status:  models.PhaseInProgress,
			Steps: []models.Step{
				{StepID: "phase-1-step-1", Status: models.StepCompleted},
				{StepID: "phase-1-step-2", Status: models.StepRunning},
			},
		}},
	})
	engine := newTestServer(runner)

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/workflows/wf-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Progress     string  `json:"progress"`
		Percentage   float64 `json:"percentage"`
		CurrentPhase string  `json:"current_phase"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1/2", body.Progress)
	assert.InDelta(t, 50.0, body.Percentage, 1e-9)
	assert.Equal(t, "Backend Development", body.CurrentPhase)
}

func TestPauseResumeCancelTransitions(t *testing.T) {
	runner := newStubRunner()
	runner.add(&models.Workflow{WorkflowID: "wf-1", Status: models.WorkflowInProgress})
	engine := newTestServer(runner)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/workflows/wf-1/pause", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Pausing an already-paused workflow conflicts.
	rec = doJSON(t, engine, http.MethodPost, "/api/v1/workflows/wf-1/pause", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/workflows/wf-1/resume", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/workflows/wf-1/cancel", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/workflows/ghost/cancel", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListWorkflowsActiveFilter(t *testing.T) {
	runner := newStubRunner()
	runner.add(&models.Workflow{WorkflowID: "wf-1", OwnerUserID: "alice", Status: models.WorkflowPending})
	runner.add(&models.Workflow{WorkflowID: "wf-2", OwnerUserID: "bob", Status: models.WorkflowPending})
	runner.add(&models.Workflow{WorkflowID: "wf-3", OwnerUserID: "alice", Status: models.WorkflowCompleted})
	engine := newTestServer(runner)

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/workflows?user_id=alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Workflows []models.Workflow `json:"workflows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Workflows, 1)
	assert.Equal(t, "wf-1", body.Workflows[0].WorkflowID)
}

func TestCreateWorkflowTracksSession(t *testing.T) {
	runner := newStubRunner()
	tracker := session.NewTracker()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(Deps{Runner: runner, Sessions: tracker, Logger: logger})
	engine := gin.New()
	server.RegisterRoutes(engine)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/workflows", CreateWorkflowRequest{
		Description: "build an API",
		UserID:      "alice",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var wf models.Workflow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wf))
	require.NotEmpty(t, wf.SessionID, "a session id is generated when the client sends none")

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/sessions/"+wf.SessionID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Session   session.Session  `json:"session"`
		Workflows []map[string]any `json:"workflows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{wf.WorkflowID}, body.Session.WorkflowIDs)
	require.Len(t, body.Workflows, 1)
	assert.Equal(t, wf.WorkflowID, body.Workflows[0]["workflow_id"])

	rec = doJSON(t, engine, http.MethodGet, "/api/v1/sessions?user_id=alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(Deps{Runner: newStubRunner(), Sessions: session.NewTracker(), Logger: logger})
	engine := gin.New()
	server.RegisterRoutes(engine)

	rec := doJSON(t, engine, http.MethodGet, "/api/v1/sessions/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthWithoutCollaborators(t *testing.T) {
	engine := newTestServer(newStubRunner())
	rec := doJSON(t, engine, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestRespondErrorUnknownError(t *testing.T) {
	runner := newStubRunner()
	runner.createErr = errors.New("database exploded")
	engine := newTestServer(runner)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/workflows", CreateWorkflowRequest{Description: "x"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
