package domain

import "time"

// EventRecord is the canonical shape of a synced activity event. EventKey is
// unique per namespace+platform; writes are idempotent upserts keyed on it.
type EventRecord struct {
	EventKey   string         `db:"event_key"`
	UserID     string         `db:"user_id"`
	EventType  string         `db:"event_type"`
	Platform   string         `db:"platform"`
	Namespace  string         `db:"namespace"`
	Metadata   map[string]any `db:"-"`
	OccurredAt time.Time      `db:"occurred_at"`
}

// UserProfile is the normalized identity attached to events at write time.
type UserProfile struct {
	UserID    string `db:"user_id"`
	Email     string `db:"email"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Company   string `db:"company"`
	LinkedIn  string `db:"linkedin_url"`
	Platform  string `db:"platform"`
}

// Campaign is an upstream campaign as listed by a platform client.
type Campaign struct {
	ID   string
	Name string
}

// Lead is an upstream campaign member. Email is the primary identity;
// LinkedIn-only platforms may carry only a profile URL.
type Lead struct {
	ID         string
	Email      string
	FirstName  string
	LastName   string
	Company    string
	ProfileURL string
}

// Activity is a single upstream campaign event (email sent, reply,
// LinkedIn connect, ...). ID may be empty on platforms that do not expose
// activity identifiers.
type Activity struct {
	ID         string
	Type       string
	CampaignID string
	LeadEmail  string
	LeadID     string
	OccurredAt time.Time
	Metadata   map[string]any
}

// CampaignPage is one page of a paginated campaign listing.
type CampaignPage struct {
	Campaigns []Campaign
	HasMore   bool
}

// LeadPage is one page of a paginated lead listing.
type LeadPage struct {
	Leads   []Lead
	HasMore bool
}

// ActivityPage is one page of a paginated activity listing.
type ActivityPage struct {
	Activities []Activity
	HasMore    bool
}
