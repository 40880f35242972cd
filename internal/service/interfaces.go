package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"outreach_syncer/internal/domain"
	"outreach_syncer/internal/eventkey"
)

// PlatformClient lists campaigns, leads and activities from one upstream
// outreach API. All listings are paginated; the orchestrator drives the page
// loop so the rate limiter gates every network call.
type PlatformClient interface {
	Platform() string
	ListCampaigns(ctx context.Context, page int) (*domain.CampaignPage, error)
	ListLeads(ctx context.Context, campaignID string, page int) (*domain.LeadPage, error)
	ListActivities(ctx context.Context, campaignID string, since, until time.Time, page int) (*domain.ActivityPage, error)
}

// EventStore persists event records. Upsert is idempotent on event_key and
// reports whether a row was actually inserted.
type EventStore interface {
	Upsert(ctx context.Context, target string, rec *domain.EventRecord) (bool, error)
	ClearNamespace(ctx context.Context, target, platform string) error
}

// ProfileStore persists normalized user identities.
type ProfileStore interface {
	Upsert(ctx context.Context, target string, profile *domain.UserProfile) error
}

// CheckpointStore tracks the last committed activity timestamp per
// platform+namespace. Set must never regress an existing checkpoint.
type CheckpointStore interface {
	Get(ctx context.Context, platform, ns string) (time.Time, error)
	Set(ctx context.Context, platform, ns string, ts time.Time) error
}

// TransactionManager runs fn within a storage transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher forwards inserted events downstream, best effort.
type Publisher interface {
	Publish(ctx context.Context, rec *domain.EventRecord, inserted bool) error
	Close() error
}

// KeyGenerator derives idempotent event keys.
type KeyGenerator interface {
	Generate(in eventkey.Input) (eventkey.Result, error)
}

// Limiter gates calls against one upstream API.
type Limiter interface {
	Acquire(ctx context.Context) error
	ReportSuccess()
	ReportFailure(class domain.FailureClass)
}

// CampaignMatcher routes a campaign name to its namespace.
type CampaignMatcher interface {
	MatchCampaign(name string) string
}

// JobHandle is the orchestrator's view of the job being driven: cooperative
// cancellation plus progress reporting.
type JobHandle interface {
	Cancelled() bool
	AddTotal(n int)
	AddProcessed(n int)
	SetStage(stage string)
}
