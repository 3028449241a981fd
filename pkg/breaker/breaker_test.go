package breaker

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/devex-platform/crewd/pkg/config"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTimeout = errors.New("execution timeout")

// passthroughExecutor invokes fn directly, standing in for the limiter.
type passthroughExecutor struct {
	calls int
}

func (e *passthroughExecutor) Execute(ctx context.Context, agentID string, fn Fn) (*models.ExecutionResult, error) {
	e.calls++
	return fn(ctx)
}

func newTestRegistry(recovery time.Duration) *Registry {
	cfg := config.DefaultBreaker()
	cfg.RecoveryTimeout = recovery
	return NewRegistry(cfg, func(err error) bool {
		return errors.Is(err, errTimeout)
	}, slog.Default())
}

func failing(ctx context.Context) (*models.ExecutionResult, error) {
	return &models.ExecutionResult{OK: false, Error: "timeout"}, errTimeout
}

func succeeding(ctx context.Context) (*models.ExecutionResult, error) {
	return &models.ExecutionResult{OK: true}, nil
}

func TestOpensAfterConsecutiveExpectedFailures(t *testing.T) {
	r := newTestRegistry(time.Minute)
	exec := &passthroughExecutor{}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := r.Execute(ctx, "python_backend", "a1", exec, failing)
		assert.ErrorIs(t, err, errTimeout)
	}
	assert.Equal(t, "open", r.State("python_backend"))
	assert.Equal(t, 5, exec.calls)

	// Sixth call short-circuits without invoking the executor.
	_, err := r.Execute(ctx, "python_backend", "a1", exec, failing)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 5, exec.calls)
}

func TestHalfOpenProbeRecovers(t *testing.T) {
	r := newTestRegistry(50 * time.Millisecond)
	exec := &passthroughExecutor{}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _ = r.Execute(ctx, "t", "a1", exec, failing)
	}
	require.Equal(t, "open", r.State("t"))

	time.Sleep(80 * time.Millisecond)

	// Exactly one probe is admitted; its success closes the circuit.
	result, err := r.Execute(ctx, "t", "a1", exec, succeeding)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, "closed", r.State("t"))

	// The failure count was reset: a single new failure does not reopen.
	_, err = r.Execute(ctx, "t", "a1", exec, failing)
	assert.ErrorIs(t, err, errTimeout)
	assert.Equal(t, "closed", r.State("t"))
}

func TestHalfOpenFailureReopens(t *testing.T) {
	r := newTestRegistry(50 * time.Millisecond)
	exec := &passthroughExecutor{}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _ = r.Execute(ctx, "t", "a1", exec, failing)
	}
	time.Sleep(80 * time.Millisecond)

	_, err := r.Execute(ctx, "t", "a1", exec, failing)
	assert.ErrorIs(t, err, errTimeout)
	assert.Equal(t, "open", r.State("t"))
}

func TestUnexpectedErrorsDoNotCount(t *testing.T) {
	r := newTestRegistry(time.Minute)
	exec := &passthroughExecutor{}
	ctx := context.Background()

	unexpected := errors.New("config botched")
	for i := 0; i < 10; i++ {
		_, err := r.Execute(ctx, "t", "a1", exec, func(ctx context.Context) (*models.ExecutionResult, error) {
			return &models.ExecutionResult{OK: false}, unexpected
		})
		assert.ErrorIs(t, err, unexpected)
	}
	assert.Equal(t, "closed", r.State("t"))
}

func TestBreakersAreIndependentPerTemplate(t *testing.T) {
	r := newTestRegistry(time.Minute)
	exec := &passthroughExecutor{}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _ = r.Execute(ctx, "bad_template", "a1", exec, failing)
	}
	assert.Equal(t, "open", r.State("bad_template"))

	result, err := r.Execute(ctx, "good_template", "a2", exec, succeeding)
	require.NoError(t, err)
	assert.True(t, result.OK)

	states := r.States()
	assert.Equal(t, "open", states["bad_template"])
	assert.Equal(t, "closed", states["good_template"])
}
