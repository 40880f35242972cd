package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"outreach_syncer/internal/domain"
	"outreach_syncer/internal/eventkey"
	"outreach_syncer/internal/service/mocks"
)

// fakeHandle is a minimal job handle that can trigger cooperative
// cancellation after a number of processed campaigns.
type fakeHandle struct {
	mu          sync.Mutex
	processed   int
	total       int
	cancelAfter int // 0 = never cancel
}

func (h *fakeHandle) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelAfter > 0 && h.processed >= h.cancelAfter
}

func (h *fakeHandle) AddTotal(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.total += n
}

func (h *fakeHandle) AddProcessed(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.processed += n
}

func (h *fakeHandle) SetStage(string) {}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	lemlist     *mocks.MockPlatformClient
	expandi     *mocks.MockPlatformClient
	limiter     *mocks.MockLimiter
	events      *mocks.MockEventStore
	profiles    *mocks.MockProfileStore
	checkpoints *mocks.MockCheckpointStore
	txManager   *mocks.MockTransactionManager
	matcher     *mocks.MockCampaignMatcher

	keys   *eventkey.Generator
	logger *slog.Logger
	handle *fakeHandle
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.lemlist = mocks.NewMockPlatformClient(s.ctrl)
	s.expandi = mocks.NewMockPlatformClient(s.ctrl)
	s.limiter = mocks.NewMockLimiter(s.ctrl)
	s.events = mocks.NewMockEventStore(s.ctrl)
	s.profiles = mocks.NewMockProfileStore(s.ctrl)
	s.checkpoints = mocks.NewMockCheckpointStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.matcher = mocks.NewMockCampaignMatcher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.keys = eventkey.New(s.logger)
	s.handle = &fakeHandle{}

	s.limiter.EXPECT().Acquire(gomock.Any()).Return(nil).AnyTimes()
	s.limiter.EXPECT().ReportSuccess().AnyTimes()
	s.limiter.EXPECT().ReportFailure(gomock.Any()).AnyTimes()

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	s.matcher.EXPECT().MatchCampaign(gomock.Any()).Return("test").AnyTimes()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(maxAttempts int) *Orchestrator {
	return NewOrchestrator(Deps{
		Clients:     map[string]PlatformClient{"lemlist": s.lemlist, "expandi": s.expandi},
		Limiters:    map[string]Limiter{"lemlist": s.limiter, "expandi": s.limiter},
		Keys:        s.keys,
		Events:      s.events,
		Profiles:    s.profiles,
		Checkpoints: s.checkpoints,
		TxManager:   s.txManager,
		Matcher:     s.matcher,
	}, Config{MaxAttempts: maxAttempts}, s.logger)
}

func plan(platform string, mode domain.SyncMode) domain.FetchPlan {
	return domain.FetchPlan{
		Platform:      platform,
		Namespace:     "test",
		StorageTarget: "events_test",
		Mode:          mode,
	}
}

func campaignPage(campaigns ...domain.Campaign) *domain.CampaignPage {
	return &domain.CampaignPage{Campaigns: campaigns}
}

func onePage(lead domain.Lead) *domain.LeadPage {
	return &domain.LeadPage{Leads: []domain.Lead{lead}}
}

func activities(list ...domain.Activity) *domain.ActivityPage {
	return &domain.ActivityPage{Activities: list}
}

func (s *OrchestratorTestSuite) TestExecute_DateRangeEndToEnd() {
	ctx := context.Background()
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	occurred := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	p := plan("lemlist", domain.ModeDateRange)
	p.Since, p.Until = since, until

	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(
		domain.Campaign{ID: "cam1", Name: "Camp One"},
		domain.Campaign{ID: "cam2", Name: "Camp Two"},
	), nil)

	for _, id := range []string{"cam1", "cam2"} {
		lead := domain.Lead{ID: "lead_" + id, Email: id + "@Example.com", FirstName: "Jane"}
		leads := s.lemlist.EXPECT().ListLeads(gomock.Any(), id, 0).Return(onePage(lead), nil)
		s.lemlist.EXPECT().ListActivities(gomock.Any(), id, since, until, 0).Return(activities(domain.Activity{
			ID:         "act_" + id,
			Type:       "linkedinSent",
			CampaignID: id,
			LeadEmail:  id + "@example.com",
			OccurredAt: occurred,
		}), nil).After(leads)
	}

	var keys, users []string
	s.events.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, rec *domain.EventRecord) (bool, error) {
			keys = append(keys, rec.EventKey)
			users = append(users, rec.UserID)
			s.Equal("linkedinSent", rec.EventType)
			s.Equal("test", rec.Namespace)
			return true, nil
		},
	).Times(2)
	s.profiles.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(nil).Times(2)

	summary, err := s.newOrchestrator(3).Execute(ctx, domain.SyncConfig{}, []domain.FetchPlan{p}, s.handle)

	s.NoError(err)
	s.Equal(2, summary.TotalEvents)
	s.Equal(0, summary.TotalErrors)
	s.Equal(2, summary.TotalUsers)
	s.ElementsMatch([]string{"cam1@example.com", "cam2@example.com"}, users)
	s.Regexp(`^lemlist_cam1_linkedinsent_[0-9a-f]{8}$`, keys[0])
	s.Regexp(`^lemlist_cam2_linkedinsent_[0-9a-f]{8}$`, keys[1])
	s.Equal(2, s.handle.processed)
	s.Equal(2, s.handle.total)
}

func (s *OrchestratorTestSuite) TestExecute_PartialFailureIsolation() {
	ctx := context.Background()
	occurred := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(
		domain.Campaign{ID: "c1", Name: "One"},
		domain.Campaign{ID: "c2", Name: "Two"},
		domain.Campaign{ID: "c3", Name: "Three"},
	), nil)

	for _, id := range []string{"c1", "c3"} {
		s.lemlist.EXPECT().ListLeads(gomock.Any(), id, 0).Return(onePage(domain.Lead{ID: id, Email: id + "@x.com"}), nil)
		s.lemlist.EXPECT().ListActivities(gomock.Any(), id, gomock.Any(), gomock.Any(), 0).Return(activities(domain.Activity{
			ID: "a_" + id, Type: "emailsSent", CampaignID: id, LeadEmail: id + "@x.com", OccurredAt: occurred,
		}), nil)
	}
	s.lemlist.EXPECT().ListLeads(gomock.Any(), "c2", 0).Return(nil, errors.New("boom"))

	s.events.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(true, nil).Times(2)
	s.profiles.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(nil).Times(2)

	summary, err := s.newOrchestrator(1).Execute(ctx, domain.SyncConfig{},
		[]domain.FetchPlan{plan("lemlist", domain.ModeFullHistorical)}, s.handle)

	s.NoError(err)
	s.Equal(2, summary.TotalEvents)
	s.Equal(1, summary.TotalErrors)
	s.Len(summary.Errors, 1)
	s.Equal("c2", summary.Errors[0].Campaign)
	s.False(summary.PerPlatform["lemlist"].Aborted)
}

func (s *OrchestratorTestSuite) TestExecute_RateLimitAbortsPlatformOnly() {
	ctx := context.Background()
	occurred := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	exhausted := mocks.NewMockLimiter(s.ctrl)
	exhausted.EXPECT().Acquire(gomock.Any()).
		Return(fmt.Errorf("lemlist: wait exceeded: %w", domain.ErrRateLimitExceeded)).
		AnyTimes()

	s.expandi.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(domain.Campaign{ID: "e1", Name: "LI"}), nil)
	s.expandi.EXPECT().ListLeads(gomock.Any(), "e1", 0).Return(onePage(domain.Lead{ID: "l1", Email: "a@x.com"}), nil)
	s.expandi.EXPECT().ListActivities(gomock.Any(), "e1", gomock.Any(), gomock.Any(), 0).Return(activities(domain.Activity{
		ID: "a1", Type: "connectionAccepted", CampaignID: "e1", LeadEmail: "a@x.com", OccurredAt: occurred,
	}), nil)

	s.events.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(true, nil)
	s.profiles.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(nil)

	orch := NewOrchestrator(Deps{
		Clients:     map[string]PlatformClient{"lemlist": s.lemlist, "expandi": s.expandi},
		Limiters:    map[string]Limiter{"lemlist": exhausted, "expandi": s.limiter},
		Keys:        s.keys,
		Events:      s.events,
		Profiles:    s.profiles,
		Checkpoints: s.checkpoints,
		TxManager:   s.txManager,
		Matcher:     s.matcher,
	}, Config{MaxAttempts: 3}, s.logger)

	summary, err := orch.Execute(ctx, domain.SyncConfig{}, []domain.FetchPlan{
		plan("lemlist", domain.ModeFullHistorical),
		plan("expandi", domain.ModeFullHistorical),
	}, s.handle)

	s.NoError(err)
	s.True(summary.PerPlatform["lemlist"].Aborted)
	s.Equal("rate_limit", summary.PerPlatform["lemlist"].AbortedBy)
	s.False(summary.PerPlatform["expandi"].Aborted)
	s.Equal(1, summary.TotalEvents)
	s.Equal(1, summary.TotalErrors)
}

func (s *OrchestratorTestSuite) TestExecute_PermanentUpstreamAbortsPlatform() {
	ctx := context.Background()

	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(nil, &domain.UpstreamError{
		Platform: "lemlist", Op: "list campaigns", Status: 401,
	})

	summary, err := s.newOrchestrator(3).Execute(ctx, domain.SyncConfig{},
		[]domain.FetchPlan{plan("lemlist", domain.ModeFullHistorical)}, s.handle)

	s.NoError(err)
	s.True(summary.PerPlatform["lemlist"].Aborted)
	s.Equal("upstream", summary.PerPlatform["lemlist"].AbortedBy)
	s.Equal(1, summary.TotalErrors)
}

func (s *OrchestratorTestSuite) TestExecute_CancellationBetweenCampaigns() {
	ctx := context.Background()
	occurred := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	var all []domain.Campaign
	for i := 0; i < 10; i++ {
		all = append(all, domain.Campaign{ID: fmt.Sprintf("c%d", i), Name: fmt.Sprintf("Camp %d", i)})
	}
	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(all...), nil)

	// Only the first five campaigns get processed before cancellation bites.
	s.lemlist.EXPECT().ListLeads(gomock.Any(), gomock.Any(), 0).
		Return(onePage(domain.Lead{ID: "l", Email: "a@x.com"}), nil).Times(5)
	s.lemlist.EXPECT().ListActivities(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 0).
		Return(activities(domain.Activity{ID: "a", Type: "open", LeadEmail: "a@x.com", OccurredAt: occurred}), nil).
		Times(5)
	s.events.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(true, nil).Times(5)
	s.profiles.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(nil).Times(5)

	s.handle.cancelAfter = 5

	summary, err := s.newOrchestrator(3).Execute(ctx, domain.SyncConfig{},
		[]domain.FetchPlan{plan("lemlist", domain.ModeFullHistorical)}, s.handle)

	s.NoError(err)
	s.Equal(5, summary.TotalEvents)
	s.Equal(5, s.handle.processed)
}

func (s *OrchestratorTestSuite) TestExecute_DeltaAdvancesCheckpoint() {
	ctx := context.Background()
	t1 := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(domain.Campaign{ID: "c1", Name: "One"}), nil)
	s.lemlist.EXPECT().ListLeads(gomock.Any(), "c1", 0).Return(onePage(domain.Lead{ID: "l1", Email: "a@x.com"}), nil)
	s.lemlist.EXPECT().ListActivities(gomock.Any(), "c1", gomock.Any(), gomock.Any(), 0).Return(activities(
		domain.Activity{ID: "a1", Type: "open", LeadEmail: "a@x.com", OccurredAt: t2},
		domain.Activity{ID: "a2", Type: "click", LeadEmail: "a@x.com", OccurredAt: t1},
	), nil)

	s.events.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(true, nil).Times(2)
	s.profiles.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(nil)

	// Checkpoint lands on the max occurred_at of committed records.
	s.checkpoints.EXPECT().Set(gomock.Any(), "lemlist", "test", t2).Return(nil)

	_, err := s.newOrchestrator(3).Execute(ctx, domain.SyncConfig{},
		[]domain.FetchPlan{plan("lemlist", domain.ModeDeltaSinceLast)}, s.handle)
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestExecute_DeltaWithoutCommitsLeavesCheckpoint() {
	ctx := context.Background()

	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(domain.Campaign{ID: "c1", Name: "One"}), nil)
	s.lemlist.EXPECT().ListLeads(gomock.Any(), "c1", 0).Return(&domain.LeadPage{}, nil)
	s.lemlist.EXPECT().ListActivities(gomock.Any(), "c1", gomock.Any(), gomock.Any(), 0).Return(&domain.ActivityPage{}, nil)

	// No Set expectation: a run with zero commits must not touch it.
	_, err := s.newOrchestrator(3).Execute(ctx, domain.SyncConfig{},
		[]domain.FetchPlan{plan("lemlist", domain.ModeDeltaSinceLast)}, s.handle)
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestExecute_NamespaceResetClearsBeforeLoad() {
	ctx := context.Background()
	occurred := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(domain.Campaign{ID: "c1", Name: "One"}), nil)
	cleared := s.events.EXPECT().ClearNamespace(gomock.Any(), "events_test", "lemlist").Return(nil)
	s.lemlist.EXPECT().ListLeads(gomock.Any(), "c1", 0).Return(onePage(domain.Lead{ID: "l1", Email: "a@x.com"}), nil)
	s.lemlist.EXPECT().ListActivities(gomock.Any(), "c1", gomock.Any(), gomock.Any(), 0).Return(activities(domain.Activity{
		ID: "a1", Type: "open", LeadEmail: "a@x.com", OccurredAt: occurred,
	}), nil)
	s.events.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(true, nil).After(cleared)
	s.profiles.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(nil)

	p := plan("lemlist", domain.ModeNamespaceReset)
	p.Reset = true

	summary, err := s.newOrchestrator(3).Execute(ctx, domain.SyncConfig{}, []domain.FetchPlan{p}, s.handle)
	s.NoError(err)
	s.Equal(1, summary.TotalEvents)
}

func (s *OrchestratorTestSuite) TestExecute_StorageErrorIsPerRecord() {
	ctx := context.Background()
	occurred := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(domain.Campaign{ID: "c1", Name: "One"}), nil)
	s.lemlist.EXPECT().ListLeads(gomock.Any(), "c1", 0).Return(onePage(domain.Lead{ID: "l1", Email: "a@x.com"}), nil)
	s.lemlist.EXPECT().ListActivities(gomock.Any(), "c1", gomock.Any(), gomock.Any(), 0).Return(activities(
		domain.Activity{ID: "a1", Type: "open", LeadEmail: "a@x.com", OccurredAt: occurred},
		domain.Activity{ID: "a2", Type: "click", LeadEmail: "a@x.com", OccurredAt: occurred},
	), nil)

	first := s.events.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(false, errors.New("connection reset"))
	s.events.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(true, nil).After(first)
	s.profiles.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(nil)

	summary, err := s.newOrchestrator(3).Execute(ctx, domain.SyncConfig{},
		[]domain.FetchPlan{plan("lemlist", domain.ModeFullHistorical)}, s.handle)

	s.NoError(err)
	s.Equal(1, summary.TotalEvents)
	s.Equal(1, summary.TotalErrors)
	s.False(summary.PerPlatform["lemlist"].Aborted)
}

func (s *OrchestratorTestSuite) TestExecute_DuplicateKeysAreSkipped() {
	ctx := context.Background()
	occurred := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(domain.Campaign{ID: "c1", Name: "One"}), nil)
	s.lemlist.EXPECT().ListLeads(gomock.Any(), "c1", 0).Return(onePage(domain.Lead{ID: "l1", Email: "a@x.com"}), nil)
	s.lemlist.EXPECT().ListActivities(gomock.Any(), "c1", gomock.Any(), gomock.Any(), 0).Return(activities(domain.Activity{
		ID: "a1", Type: "open", LeadEmail: "a@x.com", OccurredAt: occurred,
	}), nil)

	// Conflict on event_key: no insert, counted as skipped, no profile write.
	s.events.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(false, nil)

	summary, err := s.newOrchestrator(3).Execute(ctx, domain.SyncConfig{},
		[]domain.FetchPlan{plan("lemlist", domain.ModeFullHistorical)}, s.handle)

	s.NoError(err)
	s.Equal(0, summary.TotalEvents)
	s.Equal(1, summary.PerPlatform["lemlist"].Skipped)
	s.Equal(0, summary.TotalErrors)
}

func (s *OrchestratorTestSuite) TestExecute_CampaignListingSharedAcrossNamespaces() {
	ctx := context.Background()
	occurred := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	matcher := mocks.NewMockCampaignMatcher(s.ctrl)
	matcher.EXPECT().MatchCampaign("Alpha Outreach").Return("alpha").AnyTimes()
	matcher.EXPECT().MatchCampaign("Beta Outreach").Return("beta").AnyTimes()

	// One listing call serves both namespace plans.
	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(
		domain.Campaign{ID: "ca", Name: "Alpha Outreach"},
		domain.Campaign{ID: "cb", Name: "Beta Outreach"},
	), nil).Times(1)

	for id, target := range map[string]string{"ca": "events_alpha", "cb": "events_beta"} {
		s.lemlist.EXPECT().ListLeads(gomock.Any(), id, 0).Return(onePage(domain.Lead{ID: id, Email: id + "@x.com"}), nil)
		s.lemlist.EXPECT().ListActivities(gomock.Any(), id, gomock.Any(), gomock.Any(), 0).Return(activities(domain.Activity{
			ID: "a_" + id, Type: "emailsSent", CampaignID: id, LeadEmail: id + "@x.com", OccurredAt: occurred,
		}), nil)
		s.events.EXPECT().Upsert(gomock.Any(), target, gomock.Any()).Return(true, nil)
		s.profiles.EXPECT().Upsert(gomock.Any(), target, gomock.Any()).Return(nil)
	}

	orch := NewOrchestrator(Deps{
		Clients:     map[string]PlatformClient{"lemlist": s.lemlist},
		Limiters:    map[string]Limiter{"lemlist": s.limiter},
		Keys:        s.keys,
		Events:      s.events,
		Profiles:    s.profiles,
		Checkpoints: s.checkpoints,
		TxManager:   s.txManager,
		Matcher:     matcher,
	}, Config{MaxAttempts: 3}, s.logger)

	alpha := plan("lemlist", domain.ModeFullHistorical)
	alpha.Namespace, alpha.StorageTarget = "alpha", "events_alpha"
	beta := plan("lemlist", domain.ModeFullHistorical)
	beta.Namespace, beta.StorageTarget = "beta", "events_beta"

	summary, err := orch.Execute(ctx, domain.SyncConfig{}, []domain.FetchPlan{alpha, beta}, s.handle)

	s.NoError(err)
	s.Equal(2, summary.TotalEvents)
	s.Equal(2, summary.PerPlatform["lemlist"].Campaigns)
	s.Equal(0, summary.TotalErrors)
}

func (s *OrchestratorTestSuite) TestExecute_RepeatLeadCountedOncePerNamespace() {
	ctx := context.Background()
	occurred := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	s.lemlist.EXPECT().ListCampaigns(gomock.Any(), 0).Return(campaignPage(
		domain.Campaign{ID: "c1", Name: "One"},
		domain.Campaign{ID: "c2", Name: "Two"},
	), nil)

	// The same lead appears in both campaigns.
	for _, id := range []string{"c1", "c2"} {
		s.lemlist.EXPECT().ListLeads(gomock.Any(), id, 0).
			Return(onePage(domain.Lead{ID: "l1", Email: "jane@example.com"}), nil)
		s.lemlist.EXPECT().ListActivities(gomock.Any(), id, gomock.Any(), gomock.Any(), 0).Return(activities(domain.Activity{
			ID: "a_" + id, Type: "open", CampaignID: id, LeadEmail: "jane@example.com", OccurredAt: occurred,
		}), nil)
	}

	s.events.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(true, nil).Times(2)
	// Profile written once; the second campaign sees the lead as known.
	s.profiles.EXPECT().Upsert(gomock.Any(), "events_test", gomock.Any()).Return(nil).Times(1)

	summary, err := s.newOrchestrator(3).Execute(ctx, domain.SyncConfig{},
		[]domain.FetchPlan{plan("lemlist", domain.ModeFullHistorical)}, s.handle)

	s.NoError(err)
	s.Equal(2, summary.TotalEvents)
	s.Equal(1, summary.TotalUsers)
}

func (s *OrchestratorTestSuite) TestExecute_EmptyPlanFails() {
	_, err := s.newOrchestrator(3).Execute(context.Background(), domain.SyncConfig{}, nil, s.handle)
	s.Error(err)
}
