package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"outreach_syncer/internal/domain"
	"outreach_syncer/internal/eventkey"
)

// Deps wires the orchestrator's collaborators. Publisher may be nil when no
// downstream broker is configured.
type Deps struct {
	Clients     map[string]PlatformClient
	Limiters    map[string]Limiter
	Keys        KeyGenerator
	Events      EventStore
	Profiles    ProfileStore
	Checkpoints CheckpointStore
	TxManager   TransactionManager
	Publisher   Publisher
	Matcher     CampaignMatcher
}

// Config tunes orchestrator behavior.
type Config struct {
	// MaxAttempts caps retries of a single upstream call under transient
	// failures. Exhaustion fails the current campaign only.
	MaxAttempts int
}

// Orchestrator drives fetch -> normalize -> key -> upsert across the
// platforms and namespaces of a fetch plan. Failures are isolated per
// campaign; a rate-limit exhaustion or permanent upstream error aborts only
// the affected platform.
type Orchestrator struct {
	deps        Deps
	maxAttempts int
	logger      *slog.Logger
}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator(deps Deps, cfg Config, logger *slog.Logger) *Orchestrator {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	return &Orchestrator{
		deps:        deps,
		maxAttempts: cfg.MaxAttempts,
		logger:      logger.With("component", "orchestrator"),
	}
}

type campaignResult struct {
	events        int
	skipped       int
	users         int
	maxOccurred   time.Time
	committed     bool
	storageErrors []storageFailure
}

// storageFailure rides back to the namespace loop through the result so it
// lands in the summary without aborting the campaign.
type storageFailure struct {
	campaign string
	err      error
}

// Execute runs all plans and returns the run summary. Per-campaign and
// per-record errors are aggregated into the summary, never returned; the
// error return is reserved for full-plan failures.
func (o *Orchestrator) Execute(ctx context.Context, cfg domain.SyncConfig, plans []domain.FetchPlan, handle JobHandle) (*domain.Summary, error) {
	if len(plans) == 0 {
		return nil, fmt.Errorf("empty fetch plan")
	}

	start := time.Now()
	summary := domain.NewSummary()

	// Group by platform, preserving request order.
	var order []string
	byPlatform := make(map[string][]domain.FetchPlan)
	for _, plan := range plans {
		if _, seen := byPlatform[plan.Platform]; !seen {
			order = append(order, plan.Platform)
		}
		byPlatform[plan.Platform] = append(byPlatform[plan.Platform], plan)
	}

	for _, platform := range order {
		if handle.Cancelled() {
			break
		}
		o.syncPlatform(ctx, cfg, platform, byPlatform[platform], summary, handle)
	}

	for _, ps := range summary.PerPlatform {
		summary.TotalEvents += ps.Events
		summary.TotalUsers += ps.Users
	}
	summary.Duration = time.Since(start)
	return summary, nil
}

func (o *Orchestrator) syncPlatform(ctx context.Context, cfg domain.SyncConfig, platform string, plans []domain.FetchPlan, summary *domain.Summary, handle JobHandle) {
	ps := summary.Platform(platform)
	logger := o.logger.With("platform", platform)

	client, ok := o.deps.Clients[platform]
	if !ok {
		ps.Aborted = true
		ps.AbortedBy = "unconfigured"
		summary.RecordError(domain.ErrorDetail{Platform: platform, Message: "no client configured"})
		return
	}

	// One upstream listing serves every namespace of the platform; each
	// plan filters it through the matcher.
	handle.SetStage(fmt.Sprintf("%s: listing campaigns", platform))
	campaigns, err := o.fetchCampaigns(ctx, client, platform, handle)
	if err != nil {
		err = fmt.Errorf("list campaigns: %w", err)
		ps.Aborted = true
		ps.AbortedBy = abortReason(err)
		summary.RecordError(domain.ErrorDetail{Platform: platform, Message: err.Error()})
		logger.Error("platform aborted", "error", err)
		return
	}

	for _, plan := range plans {
		if handle.Cancelled() {
			return
		}

		err := o.syncNamespace(ctx, cfg, client, plan, campaigns, ps, summary, handle)
		if err == nil {
			continue
		}

		ps.Aborted = true
		ps.AbortedBy = abortReason(err)
		summary.RecordError(domain.ErrorDetail{
			Platform:  platform,
			Namespace: plan.Namespace,
			Message:   err.Error(),
		})
		logger.Error("platform aborted", "namespace", plan.Namespace, "error", err)
		return
	}
}

func abortReason(err error) string {
	if errors.Is(err, domain.ErrRateLimitExceeded) {
		return "rate_limit"
	}
	return "upstream"
}

func (o *Orchestrator) syncNamespace(ctx context.Context, cfg domain.SyncConfig, client PlatformClient, plan domain.FetchPlan, campaigns []domain.Campaign, ps *domain.PlatformStats, summary *domain.Summary, handle JobHandle) error {
	logger := o.logger.With("platform", plan.Platform, "namespace", plan.Namespace)

	if plan.Reset {
		if err := o.deps.Events.ClearNamespace(ctx, plan.StorageTarget, plan.Platform); err != nil {
			// Skip the namespace rather than load on top of stale rows.
			summary.RecordError(domain.ErrorDetail{
				Platform:  plan.Platform,
				Namespace: plan.Namespace,
				Message:   fmt.Sprintf("reset namespace: %v", err),
			})
			ps.Errors++
			logger.Error("namespace reset failed, skipping", "error", err)
			return nil
		}
		logger.Info("namespace cleared for reload")
	}

	var matched []domain.Campaign
	for _, c := range campaigns {
		if o.deps.Matcher.MatchCampaign(c.Name) == plan.Namespace {
			matched = append(matched, c)
		}
	}
	ps.Campaigns += len(matched)
	handle.AddTotal(len(matched))

	var (
		maxOccurred time.Time
		committed   bool
	)
	// A lead active in several campaigns counts once per namespace.
	seenUsers := make(map[string]bool)

	for _, campaign := range matched {
		if handle.Cancelled() {
			logger.Info("cancellation requested, stopping between campaigns")
			break
		}
		handle.SetStage(fmt.Sprintf("%s/%s: campaign %s", plan.Platform, plan.Namespace, campaign.Name))

		res, err := o.syncCampaign(ctx, cfg, client, plan, campaign, seenUsers, handle)
		if err != nil {
			if errors.Is(err, domain.ErrRateLimitExceeded) {
				return err
			}
			var ue *domain.UpstreamError
			if errors.As(err, &ue) && !ue.Transient() {
				return err
			}
			// Partial-failure isolation: count and move on.
			ps.Errors++
			summary.RecordError(domain.ErrorDetail{
				Platform:  plan.Platform,
				Namespace: plan.Namespace,
				Campaign:  campaign.ID,
				Message:   err.Error(),
			})
			logger.Warn("campaign failed, continuing", "campaign_id", campaign.ID, "error", err)
			handle.AddProcessed(1)
			continue
		}

		ps.Events += res.events
		ps.Skipped += res.skipped
		ps.Users += res.users
		for _, sf := range res.storageErrors {
			ps.Errors++
			summary.RecordError(domain.ErrorDetail{
				Platform:  plan.Platform,
				Namespace: plan.Namespace,
				Campaign:  sf.campaign,
				Message:   sf.err.Error(),
			})
		}
		if res.committed {
			committed = true
			if res.maxOccurred.After(maxOccurred) {
				maxOccurred = res.maxOccurred
			}
		}
		handle.AddProcessed(1)
	}

	// A delta checkpoint only advances when this run committed records; an
	// aborted run before any commit leaves it untouched.
	if plan.Mode == domain.ModeDeltaSinceLast && committed && !maxOccurred.IsZero() {
		if err := o.deps.Checkpoints.Set(ctx, plan.Platform, plan.Namespace, maxOccurred); err != nil {
			ps.Errors++
			summary.RecordError(domain.ErrorDetail{
				Platform:  plan.Platform,
				Namespace: plan.Namespace,
				Message:   fmt.Sprintf("advance checkpoint: %v", err),
			})
		}
	}

	return nil
}

func (o *Orchestrator) fetchCampaigns(ctx context.Context, client PlatformClient, platform string, handle JobHandle) ([]domain.Campaign, error) {
	var all []domain.Campaign
	for page := 0; ; page++ {
		if page > 0 && handle.Cancelled() {
			break
		}

		var resp *domain.CampaignPage
		err := o.callUpstream(ctx, platform, "list campaigns", func(ctx context.Context) error {
			var err error
			resp, err = client.ListCampaigns(ctx, page)
			return err
		})
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Campaigns...)
		if !resp.HasMore {
			break
		}
	}
	return all, nil
}

func (o *Orchestrator) syncCampaign(ctx context.Context, cfg domain.SyncConfig, client PlatformClient, plan domain.FetchPlan, campaign domain.Campaign, seenUsers map[string]bool, handle JobHandle) (campaignResult, error) {
	var res campaignResult

	// Lead indexing completes before activities so identity enrichment is
	// available at write time.
	index, err := o.indexLeads(ctx, client, plan, campaign)
	if err != nil {
		return res, fmt.Errorf("index leads for campaign %s: %w", campaign.ID, err)
	}

	for page := 0; ; page++ {
		if page > 0 && handle.Cancelled() {
			break
		}

		var resp *domain.ActivityPage
		err := o.callUpstream(ctx, plan.Platform, "list activities", func(ctx context.Context) error {
			var err error
			resp, err = client.ListActivities(ctx, campaign.ID, plan.Since, plan.Until, page)
			return err
		})
		if err != nil {
			return res, err
		}

		for _, activity := range resp.Activities {
			o.ingestActivity(ctx, cfg, plan, campaign, activity, index, seenUsers, &res)
		}
		if !resp.HasMore {
			break
		}
	}

	return res, nil
}

// identityIndex resolves activities to normalized leads by email or
// platform-side lead id.
type identityIndex struct {
	byEmail map[string]domain.Lead
	byID    map[string]domain.Lead
}

func (ix *identityIndex) resolve(a domain.Activity) (domain.Lead, bool) {
	if a.LeadEmail != "" {
		if lead, ok := ix.byEmail[normalizeEmail(a.LeadEmail)]; ok {
			return lead, true
		}
	}
	if a.LeadID != "" {
		if lead, ok := ix.byID[a.LeadID]; ok {
			return lead, true
		}
	}
	return domain.Lead{}, false
}

func (o *Orchestrator) indexLeads(ctx context.Context, client PlatformClient, plan domain.FetchPlan, campaign domain.Campaign) (*identityIndex, error) {
	index := &identityIndex{
		byEmail: make(map[string]domain.Lead),
		byID:    make(map[string]domain.Lead),
	}

	for page := 0; ; page++ {
		var resp *domain.LeadPage
		err := o.callUpstream(ctx, plan.Platform, "list leads", func(ctx context.Context) error {
			var err error
			resp, err = client.ListLeads(ctx, campaign.ID, page)
			return err
		})
		if err != nil {
			return nil, err
		}

		for _, lead := range resp.Leads {
			if lead.Email != "" {
				index.byEmail[normalizeEmail(lead.Email)] = lead
			}
			if lead.ID != "" {
				index.byID[lead.ID] = lead
			}
		}
		if !resp.HasMore {
			break
		}
	}
	return index, nil
}

func (o *Orchestrator) ingestActivity(ctx context.Context, cfg domain.SyncConfig, plan domain.FetchPlan, campaign domain.Campaign, activity domain.Activity, index *identityIndex, seenUsers map[string]bool, res *campaignResult) {
	logger := o.logger.With("platform", plan.Platform, "campaign_id", campaign.ID)

	lead, resolved := index.resolve(activity)
	userID := userIdentity(lead, activity)

	keyRes, err := o.deps.Keys.Generate(eventkey.Input{
		Platform:   plan.Platform,
		CampaignID: campaign.ID,
		EventType:  activity.Type,
		Identity:   userID,
		ActivityID: activity.ID,
		Namespace:  plan.Namespace,
		Timestamp:  activity.OccurredAt,
	})
	if err != nil {
		// Key was still produced from the full fallback; ingest it but
		// leave a trace, this upstream payload had no usable identity.
		logger.Warn("activity without activity id or identity", "event_type", activity.Type)
	}

	rec := &domain.EventRecord{
		EventKey:   keyRes.Key,
		UserID:     userID,
		EventType:  activity.Type,
		Platform:   plan.Platform,
		Namespace:  plan.Namespace,
		Metadata:   activity.Metadata,
		OccurredAt: activity.OccurredAt,
	}

	var inserted bool
	err = o.deps.TxManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		inserted, err = o.deps.Events.Upsert(txCtx, plan.StorageTarget, rec)
		if err != nil {
			return fmt.Errorf("upsert event: %w", err)
		}
		if inserted && resolved && !seenUsers[userID] {
			profile := &domain.UserProfile{
				UserID:    userID,
				Email:     normalizeEmail(lead.Email),
				FirstName: lead.FirstName,
				LastName:  lead.LastName,
				Company:   lead.Company,
				LinkedIn:  lead.ProfileURL,
				Platform:  plan.Platform,
			}
			if err := o.deps.Profiles.Upsert(txCtx, plan.StorageTarget, profile); err != nil {
				return fmt.Errorf("upsert profile: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		// A storage error aborts this record only.
		logger.Warn("record upsert failed", "event_key", rec.EventKey, "error", err)
		res.storageErrors = append(res.storageErrors, storageFailure{campaign: campaign.ID, err: err})
		return
	}

	res.committed = true
	if activity.OccurredAt.After(res.maxOccurred) {
		res.maxOccurred = activity.OccurredAt
	}
	if inserted {
		res.events++
		if resolved && !seenUsers[userID] {
			seenUsers[userID] = true
			res.users++
		}
		if cfg.DownstreamTracking && o.deps.Publisher != nil {
			if perr := o.deps.Publisher.Publish(ctx, rec, true); perr != nil {
				logger.Warn("downstream publish failed", "event_key", rec.EventKey, "error", perr)
			}
		}
	} else {
		res.skipped++
	}
}

func userIdentity(lead domain.Lead, activity domain.Activity) string {
	if lead.Email != "" {
		return normalizeEmail(lead.Email)
	}
	if lead.ProfileURL != "" {
		return lead.ProfileURL
	}
	if activity.LeadEmail != "" {
		return normalizeEmail(activity.LeadEmail)
	}
	return activity.LeadID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// callUpstream gates fn behind the platform limiter and retries transient
// failures up to the attempt ceiling, after which the last transient error is
// returned for the caller to isolate. Permanent failures are re-raised
// immediately. domain.ErrRateLimitExceeded only comes out of Acquire, when
// the backoff ceiling itself is exhausted.
func (o *Orchestrator) callUpstream(ctx context.Context, platform, op string, fn func(ctx context.Context) error) error {
	limiter := o.deps.Limiters[platform]
	if limiter == nil {
		return fmt.Errorf("no limiter configured for platform %s", platform)
	}

	var lastErr error
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		if err := limiter.Acquire(ctx); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			limiter.ReportSuccess()
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		class := domain.Classify(err)
		limiter.ReportFailure(class)
		if class == domain.FailurePermanent {
			return err
		}

		lastErr = err
		o.logger.Warn("transient upstream failure",
			"platform", platform,
			"op", op,
			"attempt", attempt,
			"error", err,
		)
	}

	return fmt.Errorf("%s: %s failed after %d attempts: %w", platform, op, o.maxAttempts, lastErr)
}
