// Package exceptions forwards unhandled worker errors to an external
// webhook. Reporting is best-effort: it never blocks the caller and
// never lets a reporting failure cascade.
package exceptions

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds the reporter's webhook settings.
type Config struct {
	WebhookURL     string
	MinInterval    time.Duration
	RequestTimeout time.Duration
}

// Report is one forwarded exception.
type Report struct {
	Component string                 `json:"component"`
	Message   string                 `json:"message"`
	Detail    map[string]interface{} `json:"detail,omitempty"`
	Hostname  string                 `json:"hostname,omitempty"`
	At        time.Time              `json:"at"`
}

// Reporter posts reports to the webhook, at most one per MinInterval.
// Excess reports are dropped, not queued: during an error storm the
// first report is the useful one.
type Reporter struct {
	cfg     Config
	limiter *rate.Limiter
	client  *http.Client
	now     func() time.Time
}

// NewReporter creates a reporter. A nil reporter and a reporter with an
// empty webhook URL are both safe to call and do nothing.
func NewReporter(cfg Config) *Reporter {
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = 5 * time.Minute
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	return &Reporter{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
		client:  &http.Client{Timeout: cfg.RequestTimeout},
		now:     time.Now,
	}
}

// Notify forwards one report asynchronously. Returns immediately.
func (r *Reporter) Notify(component, message string, detail map[string]interface{}) {
	if r == nil || r.cfg.WebhookURL == "" {
		return
	}
	if !r.limiter.Allow() {
		return
	}

	report := Report{
		Component: component,
		Message:   message,
		Detail:    detail,
		At:        r.now().UTC(),
	}
	go r.post(report)
}

func (r *Reporter) post(report Report) {
	body, err := json.Marshal(report)
	if err != nil {
		slog.Warn("Exception report encoding failed", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		slog.Warn("Exception report request failed", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		slog.Warn("Exception report delivery failed", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		slog.Warn("Exception webhook rejected report", "status", resp.StatusCode)
	}
}
