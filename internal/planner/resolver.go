package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"outreach_syncer/internal/domain"
	"outreach_syncer/internal/namespace"
)

// CheckpointStore provides the last-committed timestamp per
// platform+namespace for delta resolution. A zero time means no checkpoint.
type CheckpointStore interface {
	Get(ctx context.Context, platform, ns string) (time.Time, error)
}

// Config tunes plan resolution.
type Config struct {
	// DefaultLookback is the window used by DELTA_SINCE_LAST when no
	// checkpoint exists yet for a platform+namespace.
	DefaultLookback time.Duration
	KnownPlatforms  []string
}

// Resolver turns a sync request into concrete fetch plans, one per
// platform x namespace pair. It fails fast: an invalid request never
// produces a job, let alone a network call.
type Resolver struct {
	namespaces  *namespace.Resolver
	checkpoints CheckpointStore
	cfg         Config
	logger      *slog.Logger
}

// New creates a plan resolver.
func New(namespaces *namespace.Resolver, checkpoints CheckpointStore, cfg Config, logger *slog.Logger) *Resolver {
	if cfg.DefaultLookback == 0 {
		cfg.DefaultLookback = 30 * 24 * time.Hour
	}
	return &Resolver{
		namespaces:  namespaces,
		checkpoints: checkpoints,
		cfg:         cfg,
		logger:      logger.With("component", "planner"),
	}
}

// Resolve validates cfg and expands it into fetch plans.
func (r *Resolver) Resolve(ctx context.Context, cfg domain.SyncConfig) ([]domain.FetchPlan, error) {
	if err := r.validate(cfg); err != nil {
		return nil, err
	}

	targets, err := r.namespaces.ResolveTargets(cfg.Namespaces)
	if err != nil {
		return nil, err
	}

	var plans []domain.FetchPlan
	for _, platform := range cfg.Platforms {
		for _, target := range targets {
			plan := domain.FetchPlan{
				Platform:      platform,
				Namespace:     target.Namespace,
				StorageTarget: target.StorageTarget,
				Mode:          cfg.Mode,
			}

			switch cfg.Mode {
			case domain.ModeFullHistorical:
				// Unbounded window.
			case domain.ModeNamespaceReset:
				plan.Reset = true
			case domain.ModeDateRange:
				plan.Since = cfg.DateRange.Start
				plan.Until = cfg.DateRange.End
			case domain.ModeDeltaSinceLast:
				since, err := r.deltaSince(ctx, platform, target.Namespace)
				if err != nil {
					return nil, fmt.Errorf("resolve checkpoint for %s/%s: %w", platform, target.Namespace, err)
				}
				plan.Since = since
			}

			plans = append(plans, plan)
		}
	}

	r.logger.Debug("resolved fetch plans", "mode", cfg.Mode, "plans", len(plans))
	return plans, nil
}

func (r *Resolver) validate(cfg domain.SyncConfig) error {
	if len(cfg.Platforms) == 0 {
		return &domain.ValidationError{Field: "platforms", Reason: "empty"}
	}
	for _, p := range cfg.Platforms {
		if !r.knownPlatform(p) {
			return &domain.ValidationError{Field: "platforms", Reason: fmt.Sprintf("unknown platform %q", p)}
		}
	}
	if !cfg.Mode.Valid() {
		return &domain.ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown mode %q", cfg.Mode)}
	}
	if cfg.Mode == domain.ModeDateRange {
		if cfg.DateRange == nil {
			return &domain.ValidationError{Field: "date_range", Reason: "required for DATE_RANGE mode"}
		}
		if cfg.DateRange.End.Before(cfg.DateRange.Start) {
			return &domain.ValidationError{Field: "date_range", Reason: "start must not be after end"}
		}
	}
	if cfg.BatchSize < 0 {
		return &domain.ValidationError{Field: "batch_size", Reason: "must be non-negative"}
	}
	return nil
}

func (r *Resolver) knownPlatform(name string) bool {
	for _, p := range r.cfg.KnownPlatforms {
		if p == name {
			return true
		}
	}
	return false
}

func (r *Resolver) deltaSince(ctx context.Context, platform, ns string) (time.Time, error) {
	checkpoint, err := r.checkpoints.Get(ctx, platform, ns)
	if err != nil {
		return time.Time{}, err
	}
	if checkpoint.IsZero() {
		return time.Now().Add(-r.cfg.DefaultLookback), nil
	}
	return checkpoint, nil
}
