package limiter

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devex-platform/crewd/pkg/config"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, mutate func(*config.LimiterConfig)) *Limiter {
	t.Helper()
	cfg := config.DefaultLimiter()
	if mutate != nil {
		mutate(&cfg)
	}
	l := New(cfg, slog.Default())
	t.Cleanup(l.Stop)
	return l
}

func TestExecuteSuccess(t *testing.T) {
	l := newTestLimiter(t, nil)

	result, err := l.Execute(context.Background(), "a1", func(ctx context.Context) (*models.ExecutionResult, error) {
		return &models.ExecutionResult{OK: true, Output: map[string]any{"x": 1}}, nil
	})
	require.NoError(t, err)
	assert.True(t, result.OK)

	stats := l.Stats()
	assert.Equal(t, 1, stats.Total)
	assert.InDelta(t, 1.0, stats.SuccessRate, 1e-9)
}

func TestExecuteTimeoutBoundary(t *testing.T) {
	l := newTestLimiter(t, func(cfg *config.LimiterConfig) {
		cfg.MaxExecutionTime = 100 * time.Millisecond
	})

	// Well under the limit: succeeds.
	result, err := l.Execute(context.Background(), "fast", func(ctx context.Context) (*models.ExecutionResult, error) {
		time.Sleep(10 * time.Millisecond)
		return &models.ExecutionResult{OK: true}, nil
	})
	require.NoError(t, err)
	assert.True(t, result.OK)

	// Past the limit: fails with ErrTimeout and a failed result.
	result, err = l.Execute(context.Background(), "slow", func(ctx context.Context) (*models.ExecutionResult, error) {
		select {
		case <-time.After(time.Second):
			return &models.ExecutionResult{OK: true}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
	assert.ErrorIs(t, err, ErrTimeout)
	require.NotNil(t, result)
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Error)
}

func TestExecuteRecoversPanic(t *testing.T) {
	l := newTestLimiter(t, nil)

	result, err := l.Execute(context.Background(), "a1", func(ctx context.Context) (*models.ExecutionResult, error) {
		panic("worker exploded")
	})
	assert.ErrorIs(t, err, ErrWorkerPanic)
	require.NotNil(t, result)
	assert.False(t, result.OK)
	assert.Contains(t, result.Error, "worker exploded")
}

func TestConcurrencyCeiling(t *testing.T) {
	l := newTestLimiter(t, func(cfg *config.LimiterConfig) {
		cfg.MaxConcurrent = 2
	})

	var inFlight, peak atomic.Int32
	done := make(chan struct{})
	for i := 0; i < 6; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = l.Execute(context.Background(), "a", func(ctx context.Context) (*models.ExecutionResult, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				inFlight.Add(-1)
				return &models.ExecutionResult{OK: true}, nil
			})
		}()
	}
	for i := 0; i < 6; i++ {
		<-done
	}
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestHistoryBounded(t *testing.T) {
	l := newTestLimiter(t, func(cfg *config.LimiterConfig) {
		cfg.HistorySize = 5
	})

	for i := 0; i < 8; i++ {
		_, err := l.Execute(context.Background(), "a", func(ctx context.Context) (*models.ExecutionResult, error) {
			return &models.ExecutionResult{OK: true}, nil
		})
		require.NoError(t, err)
	}

	history := l.History()
	assert.Len(t, history, 5)
	assert.Equal(t, 5, l.Stats().Total)
}

func TestExecuteFnError(t *testing.T) {
	l := newTestLimiter(t, nil)

	wantErr := errors.New("llm unavailable")
	result, err := l.Execute(context.Background(), "a", func(ctx context.Context) (*models.ExecutionResult, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	require.NotNil(t, result)
	assert.False(t, result.OK)

	stats := l.Stats()
	assert.InDelta(t, 0.0, stats.SuccessRate, 1e-9)
}
