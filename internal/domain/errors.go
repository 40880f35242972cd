package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Sentinel errors shared across the sync engine.
var (
	// ErrJobNotFound is returned for lookups of unknown job ids.
	ErrJobNotFound = errors.New("job not found")

	// ErrRateLimitExceeded is raised when an upstream call cannot be
	// admitted before the backoff ceiling or max wait is exhausted. It
	// aborts the remaining work for that platform only.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrInvalidKeyInput flags key generation with neither an activity id
	// nor an identity. A fallback key is still produced.
	ErrInvalidKeyInput = errors.New("event key input missing activity id and identity")
)

// ValidationError rejects a sync config before any job is created.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// FailureClass partitions upstream failures for the rate limiter.
type FailureClass int

const (
	// FailureTransient covers HTTP 429, 5xx and timeouts; retried under
	// backoff.
	FailureTransient FailureClass = iota
	// FailurePermanent covers auth/validation 4xx; re-raised immediately,
	// never drives backoff.
	FailurePermanent
)

// UpstreamError wraps a failed call against a platform API, carrying enough
// context to classify it.
type UpstreamError struct {
	Platform string
	Op       string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s: status %d", e.Platform, e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %s: %v", e.Platform, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Transient reports whether the error should be retried under backoff.
// Calls that never produced a status (connection refused, DNS failure,
// truncated response) are transient; only auth/validation 4xx are permanent.
func (e *UpstreamError) Transient() bool {
	if e.Status == 0 {
		return true
	}
	if e.Status == 429 || e.Status >= 500 {
		return true
	}
	return e.Status < 400
}

// Classify maps an error from an upstream call to a failure class. Timeouts
// and cancelled deadlines count as transient per the rate-limiter contract.
func Classify(err error) FailureClass {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		if ue.Transient() {
			return FailureTransient
		}
		return FailurePermanent
	}
	if isTimeout(err) {
		return FailureTransient
	}
	return FailureTransient
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
