// Package limiter bounds worker executions: a global concurrency
// semaphore, per-call timeouts, memory sampling, and a rolling stats
// history.
package limiter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/devex-platform/crewd/pkg/config"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Sentinel errors.
var (
	ErrTimeout     = errors.New("execution timeout")
	ErrWorkerPanic = errors.New("worker panic")
)

// Record is one entry in the rolling execution history.
type Record struct {
	ID          string        `json:"id"`
	AgentID     string        `json:"agent_id"`
	StartedAt   time.Time     `json:"started_at"`
	OK          bool          `json:"ok"`
	Duration    time.Duration `json:"duration"`
	MemoryBytes uint64        `json:"memory_bytes"`
	Error       string        `json:"error,omitempty"`
}

// Stats summarizes the rolling history for /api/v1/system/stats.
type Stats struct {
	Total           int           `json:"total"`
	SuccessRate     float64       `json:"success_rate"`
	AvgDuration     time.Duration `json:"avg_duration"`
	AvgMemoryBytes  uint64        `json:"avg_memory_bytes"`
	ActiveCount     int           `json:"active_count"`
	MaxConcurrent   int           `json:"max_concurrent"`
	MaxExecutionSec float64       `json:"max_execution_seconds"`
}

// Fn is the guarded unit of work. An alias so wrappers can declare
// compatible call signatures without importing this package's type.
type Fn = func(ctx context.Context) (*models.ExecutionResult, error)

// Limiter guards worker executes. Timeouts cancel the underlying context;
// panics are converted to failed results.
type Limiter struct {
	cfg    config.LimiterConfig
	sem    *semaphore.Weighted
	logger *slog.Logger

	mu      sync.Mutex
	history []Record
	active  map[string]time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// New builds a limiter; call Start to enable the periodic cleanup loop.
func New(cfg config.LimiterConfig, logger *slog.Logger) *Limiter {
	if cfg.MaxConcurrent <= 0 {
		cfg = config.DefaultLimiter()
	}
	return &Limiter{
		cfg:    cfg,
		sem:    semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
		logger: logger.With("component", "limiter"),
		active: make(map[string]time.Time),
		stop:   make(chan struct{}),
	}
}

// Start launches the periodic cleanup loop.
func (l *Limiter) Start() {
	go l.cleanupLoop()
}

// Stop halts the cleanup loop.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Execute runs fn under the concurrency ceiling and per-call timeout.
// The returned result is always non-nil once a slot was acquired; the
// error is ErrTimeout on deadline, ErrWorkerPanic on a recovered panic,
// or fn's own error.
func (l *Limiter) Execute(ctx context.Context, agentID string, fn Fn) (*models.ExecutionResult, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("acquire execution slot: %w", err)
	}
	defer l.sem.Release(1)

	execID := uuid.NewString()
	start := time.Now()
	l.mu.Lock()
	l.active[execID] = start
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		delete(l.active, execID)
		l.mu.Unlock()
	}()

	memBefore := heapAlloc()

	execCtx, cancel := context.WithTimeout(ctx, l.cfg.MaxExecutionTime)
	defer cancel()

	type outcome struct {
		result *models.ExecutionResult
		err    error
	}
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{
					result: &models.ExecutionResult{OK: false, Error: fmt.Sprintf("panic: %v", r)},
					err:    fmt.Errorf("%w: %v", ErrWorkerPanic, r),
				}
			}
		}()
		result, err := fn(execCtx)
		ch <- outcome{result: result, err: err}
	}()

	var result *models.ExecutionResult
	var err error
	select {
	case out := <-ch:
		result, err = out.result, out.err
	case <-execCtx.Done():
		// Best-effort cancel: the worker observes execCtx.
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w after %s", ErrTimeout, l.cfg.MaxExecutionTime)
		} else {
			err = execCtx.Err()
		}
		result = &models.ExecutionResult{OK: false, Error: err.Error(), Elapsed: time.Since(start)}
	}

	if result == nil {
		result = &models.ExecutionResult{OK: false}
		if err != nil {
			result.Error = err.Error()
		}
	}
	if err != nil && result.Error == "" {
		result.Error = err.Error()
	}
	if err != nil {
		result.OK = false
	}
	if result.Elapsed == 0 {
		result.Elapsed = time.Since(start)
	}

	memAfter := heapAlloc()
	var memUsed uint64
	if memAfter > memBefore {
		memUsed = memAfter - memBefore
	}
	limitBytes := uint64(l.cfg.MaxMemoryMB) * 1024 * 1024
	if memUsed > limitBytes {
		l.logger.Warn("Execution exceeded memory budget, reclaiming",
			"agent_id", agentID, "memory_bytes", memUsed, "limit_mb", l.cfg.MaxMemoryMB)
		runtime.GC()
	}

	l.record(Record{
		ID:          execID,
		AgentID:     agentID,
		StartedAt:   start,
		OK:          result.OK,
		Duration:    result.Elapsed,
		MemoryBytes: memUsed,
		Error:       result.Error,
	})

	return result, err
}

func (l *Limiter) record(rec Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.history = append(l.history, rec)
	if n := len(l.history); n > l.cfg.HistorySize {
		l.history = l.history[n-l.cfg.HistorySize:]
	}
}

// Stats computes rolling statistics over the bounded history.
func (l *Limiter) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Stats{
		Total:           len(l.history),
		ActiveCount:     len(l.active),
		MaxConcurrent:   l.cfg.MaxConcurrent,
		MaxExecutionSec: l.cfg.MaxExecutionTime.Seconds(),
	}
	if s.Total == 0 {
		return s
	}
	var okCount int
	var totalDur time.Duration
	var totalMem uint64
	for _, rec := range l.history {
		if rec.OK {
			okCount++
		}
		totalDur += rec.Duration
		totalMem += rec.MemoryBytes
	}
	s.SuccessRate = float64(okCount) / float64(s.Total)
	s.AvgDuration = totalDur / time.Duration(s.Total)
	s.AvgMemoryBytes = totalMem / uint64(s.Total)
	return s
}

// History returns a copy of the rolling history, newest last.
func (l *Limiter) History() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.history))
	copy(out, l.history)
	return out
}

// cleanupLoop purges stale active entries and reclaims memory when heap
// usage crosses 80% of the configured limit.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cfg.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *Limiter) cleanup() {
	cutoff := time.Now().Add(-l.cfg.ActiveMaxAge)
	l.mu.Lock()
	var purged int
	for id, started := range l.active {
		if started.Before(cutoff) {
			delete(l.active, id)
			purged++
		}
	}
	l.mu.Unlock()
	if purged > 0 {
		l.logger.Warn("Purged stale active executions", "count", purged)
	}

	limitBytes := uint64(l.cfg.MaxMemoryMB) * 1024 * 1024
	if heapAlloc() > limitBytes*8/10 {
		l.logger.Info("Heap above 80% of execution memory limit, reclaiming")
		runtime.GC()
	}
}

func heapAlloc() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.HeapAlloc
}
