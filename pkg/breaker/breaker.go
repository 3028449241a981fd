// Package breaker guards per-template executions with circuit breakers.
// Five consecutive failures of the expected error class open a template's
// circuit; after the recovery timeout a single probe is allowed through.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/devex-platform/crewd/pkg/config"
	"github.com/devex-platform/crewd/pkg/models"
	"github.com/sony/gobreaker"
)

// ErrCircuitOpen short-circuits calls while a template's circuit is open.
var ErrCircuitOpen = errors.New("circuit open")

// Classifier reports whether an error belongs to the expected failure
// class the breaker counts. Unexpected errors pass through uncounted.
type Classifier func(err error) bool

// Fn is the guarded unit of work, matching the limiter's signature.
type Fn = func(ctx context.Context) (*models.ExecutionResult, error)

// Executor is the downstream call the breaker wraps (the limiter).
type Executor interface {
	Execute(ctx context.Context, agentID string, fn Fn) (*models.ExecutionResult, error)
}

// Registry holds one circuit breaker per template_id, created lazily.
type Registry struct {
	cfg      config.BreakerConfig
	expected Classifier
	logger   *slog.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewRegistry builds a registry. expected classifies which errors count
// toward opening a circuit; nil counts every error.
func NewRegistry(cfg config.BreakerConfig, expected Classifier, logger *slog.Logger) *Registry {
	if cfg.FailureThreshold <= 0 {
		cfg = config.DefaultBreaker()
	}
	if expected == nil {
		expected = func(err error) bool { return true }
	}
	return &Registry{
		cfg:      cfg,
		expected: expected,
		logger:   logger.With("component", "breaker"),
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

func (r *Registry) breaker(templateID string) *gobreaker.CircuitBreaker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cb, ok := r.breakers[templateID]; ok {
		return cb
	}
	threshold := uint32(r.cfg.FailureThreshold)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        templateID,
		MaxRequests: 1,
		Timeout:     r.cfg.RecoveryTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			// Only the expected class counts as a breaker failure.
			return err == nil || !r.expected(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			r.logger.Warn("Circuit state change",
				"template_id", name, "from", from.String(), "to", to.String())
		},
	})
	r.breakers[templateID] = cb
	return cb
}

// Execute runs fn for an agent of the given template through its circuit.
// While the circuit is open the call fails with ErrCircuitOpen without
// invoking the executor.
func (r *Registry) Execute(ctx context.Context, templateID, agentID string, exec Executor, fn Fn) (*models.ExecutionResult, error) {
	cb := r.breaker(templateID)

	out, err := cb.Execute(func() (any, error) {
		return exec.Execute(ctx, agentID, fn)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: template %s", ErrCircuitOpen, templateID)
	}
	result, _ := out.(*models.ExecutionResult)
	return result, err
}

// State returns the circuit state for a template as a string
// (closed, half-open, open).
func (r *Registry) State(templateID string) string {
	return r.breaker(templateID).State().String()
}

// States snapshots every known circuit for stats reporting.
func (r *Registry) States() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.breakers))
	for id, cb := range r.breakers {
		out[id] = cb.State().String()
	}
	return out
}
