package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"outreach_syncer/internal/domain"
)

// Config tunes one upstream API budget.
type Config struct {
	RequestsPerSecond float64
	Burst             int
	BaseBackoff       time.Duration
	MaxBackoff        time.Duration
	MaxWait           time.Duration
}

func (c *Config) setDefaults() {
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = 5
	}
	if c.Burst == 0 {
		c.Burst = 1
	}
	if c.BaseBackoff == 0 {
		c.BaseBackoff = 1 * time.Second
	}
	if c.MaxBackoff == 0 {
		c.MaxBackoff = 60 * time.Second
	}
	if c.MaxWait == 0 {
		c.MaxWait = 2 * time.Minute
	}
}

// Snapshot is a point-in-time view of limiter state for observability.
type Snapshot struct {
	APIType           string
	WindowRequests    int64
	ConsecutiveErrors int
	BackoffDelay      time.Duration
	NextAllowedAt     time.Time
}

// Limiter throttles calls against one upstream API. A single instance is
// shared process-wide per API so concurrent jobs split one external budget
// instead of each assuming the full one.
type Limiter struct {
	apiType string
	cfg     Config
	budget  *rate.Limiter
	logger  *slog.Logger

	mu                sync.Mutex
	windowRequests    int64
	consecutiveErrors int
	backoffDelay      time.Duration
	nextAllowedAt     time.Time
}

// New creates a limiter for the named upstream API.
func New(apiType string, cfg Config, logger *slog.Logger) *Limiter {
	cfg.setDefaults()
	return &Limiter{
		apiType: apiType,
		cfg:     cfg,
		budget:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		logger:  logger.With("api", apiType),
	}
}

// Acquire blocks until the caller may issue one upstream request. The wait is
// bounded by MaxWait; exceeding it returns domain.ErrRateLimitExceeded.
// Caller context cancellation is propagated as-is.
func (l *Limiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.cfg.MaxWait)
	defer cancel()

	// Honor any backoff gate set by previous failures first.
	for {
		l.mu.Lock()
		gate := l.nextAllowedAt
		l.mu.Unlock()

		d := time.Until(gate)
		if d <= 0 {
			break
		}

		select {
		case <-waitCtx.Done():
			return l.waitErr(ctx)
		case <-time.After(d):
		}
	}

	if err := l.budget.Wait(waitCtx); err != nil {
		return l.waitErr(ctx)
	}

	l.mu.Lock()
	l.windowRequests++
	l.mu.Unlock()
	return nil
}

func (l *Limiter) waitErr(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("%s: wait exceeded %s: %w", l.apiType, l.cfg.MaxWait, domain.ErrRateLimitExceeded)
}

// ReportSuccess resets the error streak and decays the backoff toward zero.
func (l *Limiter) ReportSuccess() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.consecutiveErrors = 0
	l.backoffDelay /= 2
	if l.backoffDelay < l.cfg.BaseBackoff {
		l.backoffDelay = 0
	}
	l.nextAllowedAt = time.Time{}
}

// ReportFailure records a failed upstream call. Transient failures grow the
// backoff exponentially up to the configured maximum, with jitter; permanent
// failures never touch it and the caller re-raises them immediately.
func (l *Limiter) ReportFailure(class domain.FailureClass) {
	if class == domain.FailurePermanent {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.consecutiveErrors++
	delay := l.cfg.BaseBackoff << uint(l.consecutiveErrors-1)
	if delay > l.cfg.MaxBackoff || delay <= 0 {
		delay = l.cfg.MaxBackoff
	}
	delay += time.Duration(rand.Int63n(int64(l.cfg.BaseBackoff)/2 + 1))

	l.backoffDelay = delay
	l.nextAllowedAt = time.Now().Add(delay)

	l.logger.Warn("transient upstream failure, backing off",
		"consecutive_errors", l.consecutiveErrors,
		"backoff", delay,
	)
}

// State returns a snapshot of the limiter.
func (l *Limiter) State() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	return Snapshot{
		APIType:           l.apiType,
		WindowRequests:    l.windowRequests,
		ConsecutiveErrors: l.consecutiveErrors,
		BackoffDelay:      l.backoffDelay,
		NextAllowedAt:     l.nextAllowedAt,
	}
}
