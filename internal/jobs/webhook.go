package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"outreach_syncer/internal/domain"
)

// WebhookNotifier POSTs terminal job states to a caller-supplied URL.
// Delivery is best effort: failures are logged, never retried, and never
// change the job's status.
type WebhookNotifier struct {
	client *http.Client
	logger *slog.Logger
}

// NewWebhookNotifier creates a notifier with a bounded request timeout.
func NewWebhookNotifier(timeout time.Duration, logger *slog.Logger) *WebhookNotifier {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &WebhookNotifier{
		client: &http.Client{Timeout: timeout},
		logger: logger.With("component", "webhook"),
	}
}

type webhookPayload struct {
	JobID   string          `json:"jobId"`
	Status  string          `json:"status"`
	Summary *domain.Summary `json:"summary,omitempty"`
}

// Notify posts {jobId, status, summary} to url.
func (n *WebhookNotifier) Notify(ctx context.Context, url, jobID string, status domain.JobStatus, summary *domain.Summary) {
	body, err := json.Marshal(webhookPayload{
		JobID:   jobID,
		Status:  string(status),
		Summary: summary,
	})
	if err != nil {
		n.logger.Error("marshal webhook payload", "job_id", jobID, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("build webhook request", "job_id", jobID, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("webhook delivery failed", "job_id", jobID, "url", url, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.Warn("webhook delivery rejected",
			"job_id", jobID,
			"url", url,
			"status", resp.StatusCode,
		)
		return
	}

	n.logger.Debug("webhook delivered", "job_id", jobID, "status", status)
}
