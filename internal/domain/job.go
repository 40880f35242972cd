package domain

import "time"

// JobStatus is the lifecycle state of a sync job. Transitions are
// one-directional: QUEUED -> RUNNING -> {COMPLETED, FAILED, CANCELLED}.
type JobStatus string

const (
	JobQueued    JobStatus = "QUEUED"
	JobRunning   JobStatus = "RUNNING"
	JobCompleted JobStatus = "COMPLETED"
	JobFailed    JobStatus = "FAILED"
	JobCancelled JobStatus = "CANCELLED"
)

// Terminal reports whether the status is final.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobCompleted, JobFailed, JobCancelled:
		return true
	}
	return false
}

// Progress is a point-in-time view of how far a run has come. Total grows as
// new campaigns are discovered when no up-front estimate was feasible.
type Progress struct {
	Processed int    `json:"processed"`
	Total     int    `json:"total"`
	Stage     string `json:"stage,omitempty"`
}

// SyncJob is a trackable sync run. Owned exclusively by the job service;
// mutated only by the worker goroutine driving it.
type SyncJob struct {
	ID        string     `json:"id"`
	Config    SyncConfig `json:"config"`
	Status    JobStatus  `json:"status"`
	Progress  Progress   `json:"progress"`
	Summary   *Summary   `json:"summary,omitempty"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
