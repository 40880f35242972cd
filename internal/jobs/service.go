package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"outreach_syncer/internal/domain"
	"outreach_syncer/internal/service"
)

// Planner resolves a sync config into fetch plans, failing fast on bad input.
type Planner interface {
	Resolve(ctx context.Context, cfg domain.SyncConfig) ([]domain.FetchPlan, error)
}

// Orchestrator executes a resolved plan.
type Orchestrator interface {
	Execute(ctx context.Context, cfg domain.SyncConfig, plans []domain.FetchPlan, handle service.JobHandle) (*domain.Summary, error)
}

// Notifier delivers best-effort terminal-state callbacks.
type Notifier interface {
	Notify(ctx context.Context, url, jobID string, status domain.JobStatus, summary *domain.Summary)
}

// Config tunes the job service.
type Config struct {
	MaxConcurrent int
}

// Service tracks sync runs as cancellable background jobs. The registry is
// in-memory only: history and active state are lost on process restart.
type Service struct {
	planner      Planner
	orchestrator Orchestrator
	notifier     Notifier
	logger       *slog.Logger

	mu    sync.Mutex
	jobs  map[string]*jobEntry
	order []string // submission order

	sem     chan struct{}
	wg      sync.WaitGroup
	rootCtx context.Context
	stop    context.CancelFunc
}

type jobEntry struct {
	mu              sync.Mutex
	job             domain.SyncJob
	plans           []domain.FetchPlan
	cancelRequested bool
}

// New creates a job service. notifier may be nil when webhooks are unused.
func New(planner Planner, orchestrator Orchestrator, notifier Notifier, cfg Config, logger *slog.Logger) *Service {
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = 4
	}
	rootCtx, stop := context.WithCancel(context.Background())
	return &Service{
		planner:      planner,
		orchestrator: orchestrator,
		notifier:     notifier,
		logger:       logger.With("component", "jobs"),
		jobs:         make(map[string]*jobEntry),
		sem:          make(chan struct{}, cfg.MaxConcurrent),
		rootCtx:      rootCtx,
		stop:         stop,
	}
}

// Submit validates cfg, resolves its fetch plans and enqueues a job. Invalid
// configs are rejected synchronously; no job is created for them.
func (s *Service) Submit(ctx context.Context, cfg domain.SyncConfig) (string, error) {
	plans, err := s.planner.Resolve(ctx, cfg)
	if err != nil {
		return "", err
	}

	now := time.Now()
	entry := &jobEntry{
		job: domain.SyncJob{
			ID:        uuid.NewString(),
			Config:    cfg,
			Status:    domain.JobQueued,
			CreatedAt: now,
			UpdatedAt: now,
		},
		plans: plans,
	}

	s.mu.Lock()
	s.jobs[entry.job.ID] = entry
	s.order = append(s.order, entry.job.ID)
	s.mu.Unlock()

	s.logger.Info("job submitted",
		"job_id", entry.job.ID,
		"mode", cfg.Mode,
		"platforms", cfg.Platforms,
		"plans", len(plans),
	)

	s.wg.Add(1)
	go s.run(entry)

	return entry.job.ID, nil
}

func (s *Service) run(e *jobEntry) {
	defer s.wg.Done()

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-s.rootCtx.Done():
		s.finish(e, domain.JobCancelled, nil, nil)
		return
	}

	e.mu.Lock()
	if e.cancelRequested {
		e.mu.Unlock()
		s.finish(e, domain.JobCancelled, nil, nil)
		return
	}
	e.job.Status = domain.JobRunning
	e.job.UpdatedAt = time.Now()
	cfg := e.job.Config
	plans := e.plans
	e.mu.Unlock()

	summary, err := s.orchestrator.Execute(s.rootCtx, cfg, plans, &handle{entry: e, track: cfg.ProgressTracking})

	e.mu.Lock()
	cancelled := e.cancelRequested
	e.mu.Unlock()

	switch {
	case cancelled:
		s.finish(e, domain.JobCancelled, summary, nil)
	case err != nil:
		s.finish(e, domain.JobFailed, summary, err)
	default:
		s.finish(e, domain.JobCompleted, summary, nil)
	}
}

func (s *Service) finish(e *jobEntry, status domain.JobStatus, summary *domain.Summary, err error) {
	e.mu.Lock()
	e.job.Status = status
	e.job.Summary = summary
	if err != nil {
		e.job.Error = err.Error()
	}
	e.job.UpdatedAt = time.Now()
	jobID := e.job.ID
	webhookURL := e.job.Config.WebhookURL
	e.mu.Unlock()

	logger := s.logger.With("job_id", jobID, "status", status)
	if summary != nil {
		logger = logger.With(
			"events", summary.TotalEvents,
			"errors", summary.TotalErrors,
			"duration", summary.Duration,
		)
	}
	logger.Info("job finished")

	if webhookURL != "" && s.notifier != nil {
		s.notifier.Notify(s.rootCtx, webhookURL, jobID, status, summary)
	}
}

// GetStatus returns a consistent snapshot of the job.
func (s *Service) GetStatus(jobID string) (domain.SyncJob, error) {
	s.mu.Lock()
	entry, ok := s.jobs[jobID]
	s.mu.Unlock()
	if !ok {
		return domain.SyncJob{}, domain.ErrJobNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.job, nil
}

// Cancel requests cooperative cancellation. It returns false when the job is
// already terminal; the in-flight campaign is allowed to finish.
func (s *Service) Cancel(jobID string) (bool, error) {
	s.mu.Lock()
	entry, ok := s.jobs[jobID]
	s.mu.Unlock()
	if !ok {
		return false, domain.ErrJobNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.job.Status.Terminal() {
		return false, nil
	}
	entry.cancelRequested = true
	s.logger.Info("cancellation requested", "job_id", jobID)
	return true, nil
}

// ListActive returns snapshots of queued and running jobs in submission order.
func (s *Service) ListActive() []domain.SyncJob {
	return s.list(func(j domain.SyncJob) bool { return !j.Status.Terminal() }, 0)
}

// ListHistory returns up to limit terminal jobs, newest first. limit <= 0
// means no cap.
func (s *Service) ListHistory(limit int) []domain.SyncJob {
	jobs := s.list(func(j domain.SyncJob) bool { return j.Status.Terminal() }, 0)
	// submission order -> newest first
	for i, j := 0, len(jobs)-1; i < j; i, j = i+1, j-1 {
		jobs[i], jobs[j] = jobs[j], jobs[i]
	}
	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs
}

func (s *Service) list(keep func(domain.SyncJob) bool, limit int) []domain.SyncJob {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.SyncJob
	for _, id := range s.order {
		entry := s.jobs[id]
		entry.mu.Lock()
		job := entry.job
		entry.mu.Unlock()
		if keep(job) {
			out = append(out, job)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Cleanup evicts terminal jobs whose last update is older than maxAge, and
// returns how many were removed.
func (s *Service) Cleanup(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	kept := s.order[:0]
	for _, id := range s.order {
		entry := s.jobs[id]
		entry.mu.Lock()
		evict := entry.job.Status.Terminal() && entry.job.UpdatedAt.Before(cutoff)
		entry.mu.Unlock()
		if evict {
			delete(s.jobs, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed
}

// Shutdown stops accepting work and waits for running jobs, bounded by ctx.
func (s *Service) Shutdown(ctx context.Context) error {
	s.stop()
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// handle adapts a jobEntry to the orchestrator's JobHandle. Progress writes
// are dropped when the job was submitted without progress tracking;
// cancellation polling always works.
type handle struct {
	entry *jobEntry
	track bool
}

func (h *handle) Cancelled() bool {
	h.entry.mu.Lock()
	defer h.entry.mu.Unlock()
	return h.entry.cancelRequested
}

func (h *handle) AddTotal(n int) {
	if !h.track {
		return
	}
	h.entry.mu.Lock()
	defer h.entry.mu.Unlock()
	h.entry.job.Progress.Total += n
	h.entry.job.UpdatedAt = time.Now()
}

func (h *handle) AddProcessed(n int) {
	if !h.track {
		return
	}
	h.entry.mu.Lock()
	defer h.entry.mu.Unlock()
	h.entry.job.Progress.Processed += n
	h.entry.job.UpdatedAt = time.Now()
}

func (h *handle) SetStage(stage string) {
	if !h.track {
		return
	}
	h.entry.mu.Lock()
	defer h.entry.mu.Unlock()
	h.entry.job.Progress.Stage = stage
	h.entry.job.UpdatedAt = time.Now()
}
