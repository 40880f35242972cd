package expandi

// envelope is the common paginated response wrapper of the Expandi API.
type envelope[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// Campaign is an Expandi campaign.
type Campaign struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Contact is an Expandi campaign contact. LinkedIn-only contacts carry an
// empty email.
type Contact struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company_name"`
	ProfileURL string `json:"linkedin_profile_url"`
}

// Event is one entry of the campaign events feed. Timestamp is RFC3339.
type Event struct {
	ID         int64          `json:"id"`
	EventType  string         `json:"event_type"`
	CampaignID int64          `json:"campaign_id"`
	ContactID  int64          `json:"contact_id"`
	Email      string         `json:"contact_email"`
	Timestamp  string         `json:"timestamp"`
	Payload    map[string]any `json:"payload"`
}
