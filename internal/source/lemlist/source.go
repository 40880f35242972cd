package lemlist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"outreach_syncer/internal/domain"
)

const PlatformID = "lemlist"

// Config holds lemlist client configuration. Lemlist authenticates with an
// API key as the basic-auth password.
type Config struct {
	BaseURL  string
	APIKey   string
	PageSize int
	Timeout  time.Duration
}

// Source is the lemlist platform client. It issues one HTTP request per page;
// rate limiting and retries are the orchestrator's concern.
type Source struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	pageSize   int
	logger     *slog.Logger
}

// New creates a lemlist client.
func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.PageSize == 0 {
		cfg.PageSize = 100
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		pageSize:   cfg.PageSize,
		logger:     logger.With("source", PlatformID),
	}
}

// Platform returns the platform identifier.
func (s *Source) Platform() string {
	return PlatformID
}

// ListCampaigns fetches one page of campaigns.
func (s *Source) ListCampaigns(ctx context.Context, page int) (*domain.CampaignPage, error) {
	var campaigns []Campaign
	if err := s.get(ctx, "/api/campaigns", s.pageQuery(page, nil), "list campaigns", &campaigns); err != nil {
		return nil, err
	}

	out := &domain.CampaignPage{HasMore: len(campaigns) == s.pageSize}
	for _, c := range campaigns {
		out.Campaigns = append(out.Campaigns, domain.Campaign{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// ListLeads fetches one page of leads for a campaign.
func (s *Source) ListLeads(ctx context.Context, campaignID string, page int) (*domain.LeadPage, error) {
	path := fmt.Sprintf("/api/campaigns/%s/leads", url.PathEscape(campaignID))

	var leads []Lead
	if err := s.get(ctx, path, s.pageQuery(page, nil), "list leads", &leads); err != nil {
		return nil, err
	}

	out := &domain.LeadPage{HasMore: len(leads) == s.pageSize}
	for _, l := range leads {
		out.Leads = append(out.Leads, domain.Lead{
			ID:         l.ID,
			Email:      l.Email,
			FirstName:  l.FirstName,
			LastName:   l.LastName,
			Company:    l.CompanyName,
			ProfileURL: l.LinkedInURL,
		})
	}
	return out, nil
}

// ListActivities fetches one page of activities for a campaign. The API has
// no server-side date filter, so the window is applied on the client.
func (s *Source) ListActivities(ctx context.Context, campaignID string, since, until time.Time, page int) (*domain.ActivityPage, error) {
	query := url.Values{"campaignId": {campaignID}}

	var raw []Activity
	if err := s.get(ctx, "/api/activities", s.pageQuery(page, query), "list activities", &raw); err != nil {
		return nil, err
	}

	out := &domain.ActivityPage{HasMore: len(raw) == s.pageSize}
	for _, a := range raw {
		occurred, err := time.Parse(time.RFC3339, a.CreatedAt)
		if err != nil {
			s.logger.Warn("skipping activity with unparseable timestamp",
				"activity_id", a.ID,
				"created_at", a.CreatedAt,
			)
			continue
		}
		if !since.IsZero() && occurred.Before(since) {
			continue
		}
		if !until.IsZero() && occurred.After(until) {
			continue
		}
		out.Activities = append(out.Activities, domain.Activity{
			ID:         a.ID,
			Type:       a.Type,
			CampaignID: a.CampaignID,
			LeadEmail:  a.LeadEmail,
			LeadID:     a.LeadID,
			OccurredAt: occurred,
			Metadata:   a.Extra,
		})
	}
	return out, nil
}

func (s *Source) pageQuery(page int, query url.Values) url.Values {
	if query == nil {
		query = url.Values{}
	}
	query.Set("limit", strconv.Itoa(s.pageSize))
	query.Set("offset", strconv.Itoa(page*s.pageSize))
	return query
}

func (s *Source) get(ctx context.Context, path string, query url.Values, op string, out any) error {
	reqURL := s.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth("", s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &domain.UpstreamError{Platform: PlatformID, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.UpstreamError{Platform: PlatformID, Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.UpstreamError{Platform: PlatformID, Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
