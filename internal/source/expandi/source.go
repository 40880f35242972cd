package expandi

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

const PlatformID = "expandi"

// Config holds Expandi client configuration.
type Config struct {
	BaseURL  string
	APIToken string
	PageSize int
	Timeout  time.Duration
}

// Source is the Expandi (LinkedIn automation) platform client.
type Source struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	pageSize   int
	logger     *slog.Logger
}

// New creates an Expandi client.
func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.PageSize == 0 {
		cfg.PageSize = 50
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiToken:   cfg.APIToken,
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
	var env envelope[Campaign]
	if err := s.get(ctx, "/v1/campaigns", s.pageQuery(page, nil), "list campaigns", &env); err != nil {
		return nil, err
	}

	out := &domain.CampaignPage{HasMore: env.Page+1 < env.TotalPages}
	for _, c := range env.Items {
		out.Campaigns = append(out.Campaigns, domain.Campaign{
			ID:   strconv.FormatInt(c.ID, 10),
			Name: c.Name,
		})
	}
	return out, nil
}

// ListLeads fetches one page of campaign contacts.
func (s *Source) ListLeads(ctx context.Context, campaignID string, page int) (*domain.LeadPage, error) {
	path := fmt.Sprintf("/v1/campaigns/%s/contacts", url.PathEscape(campaignID))

	var env envelope[Contact]
	if err := s.get(ctx, path, s.pageQuery(page, nil), "list contacts", &env); err != nil {
		return nil, err
	}

	out := &domain.LeadPage{HasMore: env.Page+1 < env.TotalPages}
	for _, c := range env.Items {
		out.Leads = append(out.Leads, domain.Lead{
			ID:         strconv.FormatInt(c.ID, 10),
			Email:      c.Email,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			Company:    c.Company,
			ProfileURL: c.ProfileURL,
		})
	}
	return out, nil
}

// ListActivities fetches one page of campaign events. Expandi filters the
// window server-side.
func (s *Source) ListActivities(ctx context.Context, campaignID string, since, until time.Time, page int) (*domain.ActivityPage, error) {
	path := fmt.Sprintf("/v1/campaigns/%s/events", url.PathEscape(campaignID))

	query := url.Values{}
	if !since.IsZero() {
		query.Set("from", since.UTC().Format(time.RFC3339))
	}
	if !until.IsZero() {
		query.Set("to", until.UTC().Format(time.RFC3339))
	}

	var env envelope[Event]
	if err := s.get(ctx, path, s.pageQuery(page, query), "list events", &env); err != nil {
		return nil, err
	}

	out := &domain.ActivityPage{HasMore: env.Page+1 < env.TotalPages}
	for _, e := range env.Items {
		occurred, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil {
			s.logger.Warn("skipping event with unparseable timestamp",
				"event_id", e.ID,
				"timestamp", e.Timestamp,
			)
			continue
		}
		out.Activities = append(out.Activities, domain.Activity{
			ID:         strconv.FormatInt(e.ID, 10),
			Type:       e.EventType,
			CampaignID: strconv.FormatInt(e.CampaignID, 10),
			LeadEmail:  e.Email,
			LeadID:     strconv.FormatInt(e.ContactID, 10),
			OccurredAt: occurred,
			Metadata:   e.Payload,
		})
	}
	return out, nil
}

func (s *Source) pageQuery(page int, query url.Values) url.Values {
	if query == nil {
		query = url.Values{}
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(s.pageSize))
	return query
}

func (s *Source) get(ctx context.Context, path string, query url.Values, op string, out any) error {
	reqURL := s.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiToken)
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
