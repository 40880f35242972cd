package scheduler

import (
	"context"
	"log/slog"
	"time"

	"outreach_syncer/internal/domain"
)

// JobSubmitter is the slice of the job service the scheduler needs.
type JobSubmitter interface {
	Submit(ctx context.Context, cfg domain.SyncConfig) (string, error)
	ListActive() []domain.SyncJob
	Cleanup(maxAge time.Duration) int
}

// Scheduler submits a recurring delta sync across all platforms and
// namespaces. A tick is skipped while a previous run is still active, so
// slow upstreams never stack jobs.
type Scheduler struct {
	jobs      JobSubmitter
	config    domain.SyncConfig
	interval  time.Duration
	retention time.Duration
	logger    *slog.Logger
}

func New(jobs JobSubmitter, config domain.SyncConfig, interval, retention time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		jobs:      jobs,
		config:    config,
		interval:  interval,
		retention: retention,
		logger:    logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if evicted := s.jobs.Cleanup(s.retention); evicted > 0 {
		s.logger.Debug("evicted old jobs", "count", evicted)
	}

	if active := s.jobs.ListActive(); len(active) > 0 {
		s.logger.Info("skipping scheduled sync, previous run still active",
			"active_jobs", len(active),
		)
		return
	}

	jobID, err := s.jobs.Submit(ctx, s.config)
	if err != nil {
		s.logger.Error("scheduled sync submission failed", "error", err)
		return
	}
	s.logger.Info("scheduled sync submitted", "job_id", jobID)
}
