package lemlist

// Campaign is a lemlist campaign as returned by /api/campaigns.
type Campaign struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Lead is a lemlist campaign lead.
type Lead struct {
	ID          string `json:"_id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	CompanyName string `json:"companyName"`
	LinkedInURL string `json:"linkedinUrl"`
}

// Activity is one entry of /api/activities. CreatedAt is RFC3339.
type Activity struct {
	ID         string         `json:"_id"`
	Type       string         `json:"type"`
	CampaignID string         `json:"campaignId"`
	LeadID     string         `json:"leadId"`
	LeadEmail  string         `json:"leadEmail"`
	CreatedAt  string         `json:"createdAt"`
	Extra      map[string]any `json:"metaData"`
}
