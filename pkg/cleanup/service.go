// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/devex-platform/crewd/pkg/config"
)

// Store is the persistence surface the retention loop purges through.
// *services.StoreService satisfies it.
type Store interface {
	PurgeOldWorkflows(ctx context.Context, cutoff time.Time) (int, error)
	PurgeOldExecutions(ctx context.Context, cutoff time.Time) (int, error)
	PurgeTerminatedAgents(ctx context.Context, cutoff time.Time) (int, error)
}

// Service periodically enforces retention policies:
//   - Deletes terminal workflows past the workflow retention window
//   - Deletes execution audit rows past the execution retention window
//   - Deletes terminated agent state rows past the workflow retention window
//
// All operations are idempotent and safe to run from multiple instances.
type Service struct {
	config config.RetentionConfig
	store  Store
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, store Store, logger *slog.Logger) *Service {
	return &Service{
		config: cfg,
		store:  store,
		logger: logger,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Retention service started",
		"workflow_retention_days", s.config.WorkflowRetentionDays,
		"execution_retention_days", s.config.ExecutionRetentionDays,
		"interval", s.config.Interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeWorkflows(ctx)
	s.purgeExecutions(ctx)
	s.purgeTerminatedAgents(ctx)
}

func (s *Service) purgeWorkflows(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.WorkflowRetentionDays)
	count, err := s.store.PurgeOldWorkflows(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention: workflow purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: purged old workflows", "count", count)
	}
}

func (s *Service) purgeExecutions(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.ExecutionRetentionDays)
	count, err := s.store.PurgeOldExecutions(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention: execution purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: purged old executions", "count", count)
	}
}

func (s *Service) purgeTerminatedAgents(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.WorkflowRetentionDays)
	count, err := s.store.PurgeTerminatedAgents(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention: terminated agent purge failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: purged terminated agents", "count", count)
	}
}
