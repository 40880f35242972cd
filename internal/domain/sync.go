package domain

import "time"

// SyncMode selects how the time window of a sync run is derived.
type SyncMode string

const (
	ModeFullHistorical SyncMode = "FULL_HISTORICAL"
	ModeDeltaSinceLast SyncMode = "DELTA_SINCE_LAST"
	ModeDateRange      SyncMode = "DATE_RANGE"
	ModeNamespaceReset SyncMode = "NAMESPACE_RESET"
)

// Valid reports whether m is a known sync mode.
func (m SyncMode) Valid() bool {
	switch m {
	case ModeFullHistorical, ModeDeltaSinceLast, ModeDateRange, ModeNamespaceReset:
		return true
	}
	return false
}

// NamespaceAll expands to every active namespace when requested.
const NamespaceAll = "all"

// DateRange is an explicit [Start, End] window for ModeDateRange.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SyncConfig describes a requested sync run. It is immutable once a job has
// been created from it.
type SyncConfig struct {
	Platforms          []string   `json:"platforms"`
	Mode               SyncMode   `json:"mode"`
	Namespaces         []string   `json:"namespaces"`
	DateRange          *DateRange `json:"date_range,omitempty"`
	BatchSize          int        `json:"batch_size,omitempty"`
	ProgressTracking   bool       `json:"progress_tracking"`
	DownstreamTracking bool       `json:"downstream_tracking"`
	WebhookURL         string     `json:"webhook_url,omitempty"`
}

// FetchPlan is the concrete unit of work derived from a sync request: one
// (platform, namespace, window) triple. Zero Since/Until mean unbounded.
// Consumed read-only by the orchestrator.
type FetchPlan struct {
	Platform      string
	Namespace     string
	StorageTarget string
	Since         time.Time
	Until         time.Time
	Reset         bool
	Mode          SyncMode
}

// PlatformStats accumulates per-platform counts for a run.
type PlatformStats struct {
	Campaigns int    `json:"campaigns"`
	Users     int    `json:"users"`
	Events    int    `json:"events"`
	Skipped   int    `json:"skipped"`
	Errors    int    `json:"errors"`
	Aborted   bool   `json:"aborted,omitempty"`
	AbortedBy string `json:"aborted_by,omitempty"`
}

// ErrorDetail is one sampled entry of Summary.Errors.
type ErrorDetail struct {
	Platform  string `json:"platform"`
	Namespace string `json:"namespace,omitempty"`
	Campaign  string `json:"campaign,omitempty"`
	Message   string `json:"message"`
}

// maxErrorDetails bounds the error sample carried in a summary; TotalErrors
// still counts every error.
const maxErrorDetails = 20

// Summary is the terminal result of a sync run.
type Summary struct {
	TotalUsers  int                       `json:"total_users"`
	TotalEvents int                       `json:"total_events"`
	TotalErrors int                       `json:"total_errors"`
	PerPlatform map[string]*PlatformStats `json:"per_platform"`
	Errors      []ErrorDetail             `json:"errors,omitempty"`
	Duration    time.Duration             `json:"duration"`
}

// NewSummary returns an empty summary ready for accumulation.
func NewSummary() *Summary {
	return &Summary{PerPlatform: make(map[string]*PlatformStats)}
}

// Platform returns the stats bucket for a platform, creating it on first use.
func (s *Summary) Platform(name string) *PlatformStats {
	ps, ok := s.PerPlatform[name]
	if !ok {
		ps = &PlatformStats{}
		s.PerPlatform[name] = ps
	}
	return ps
}

// RecordError counts an error and keeps a bounded sample of details.
func (s *Summary) RecordError(d ErrorDetail) {
	s.TotalErrors++
	if len(s.Errors) < maxErrorDetails {
		s.Errors = append(s.Errors, d)
	}
}
