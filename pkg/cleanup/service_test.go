package cleanup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/devex-platform/crewd/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu         sync.Mutex
	workflows  int
	executions int
	agents     int
	cutoffs    []time.Time
	err        error
}

func (f *fakeStore) PurgeOldWorkflows(_ context.Context, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.workflows++
	f.cutoffs = append(f.cutoffs, cutoff)
	return 2, nil
}

func (f *fakeStore) PurgeOldExecutions(_ context.Context, _ time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.executions++
	return 0, nil
}

func (f *fakeStore) PurgeTerminatedAgents(_ context.Context, _ time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.agents++
	return 1, nil
}

func (f *fakeStore) counts() (int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.workflows, f.executions, f.agents
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_RunAllPurgesEverything(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(config.RetentionConfig{
		WorkflowRetentionDays:  30,
		ExecutionRetentionDays: 90,
		Interval:               time.Hour,
	}, store, testLogger())

	svc.runAll(context.Background())

	wf, ex, ag := store.counts()
	assert.Equal(t, 1, wf)
	assert.Equal(t, 1, ex)
	assert.Equal(t, 1, ag)
}

func TestService_WorkflowCutoffRespectsRetentionWindow(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(config.RetentionConfig{
		WorkflowRetentionDays:  30,
		ExecutionRetentionDays: 90,
		Interval:               time.Hour,
	}, store, testLogger())

	before := time.Now().AddDate(0, 0, -30)
	svc.runAll(context.Background())
	after := time.Now().AddDate(0, 0, -30)

	require.Len(t, store.cutoffs, 1)
	cutoff := store.cutoffs[0]
	assert.False(t, cutoff.Before(before))
	assert.False(t, cutoff.After(after))
}

func TestService_StoreErrorsDoNotStopTheLoop(t *testing.T) {
	store := &fakeStore{err: errors.New("database unavailable")}
	svc := NewService(config.DefaultRetention(), store, testLogger())

	// Must not panic; the next tick simply retries.
	svc.runAll(context.Background())

	wf, ex, ag := store.counts()
	assert.Zero(t, wf)
	assert.Zero(t, ex)
	assert.Zero(t, ag)
}

func TestService_StartRunsImmediatelyAndStops(t *testing.T) {
	store := &fakeStore{}
	cfg := config.DefaultRetention()
	cfg.Interval = 10 * time.Millisecond
	svc := NewService(cfg, store, testLogger())

	svc.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if wf, _, _ := store.counts(); wf >= 2 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	svc.Stop()

	wf, _, _ := store.counts()
	require.GreaterOrEqual(t, wf, 2, "expected the initial run plus at least one tick")

	// Stop is idempotent and no further runs happen after it returns.
	svc.Stop()
	after, _, _ := store.counts()
	time.Sleep(30 * time.Millisecond)
	final, _, _ := store.counts()
	assert.Equal(t, after, final)
}

func TestService_StartIsIdempotent(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(config.DefaultRetention(), store, testLogger())

	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()
}
