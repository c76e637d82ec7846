package services

import (
	"context"
	"fmt"
	"time"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/apicalllog"
)

// maxLoggedBody bounds request/response capture per row. Oversized
// bodies are cut at 1 MiB and carry truncationSentinel as a suffix.
const (
	maxLoggedBody      = 1 << 20
	truncationSentinel = "…[truncated]"
)

// APILogService persists the HTTP audit trail written by the logging
// middleware.
type APILogService struct {
	client *ent.Client
}

// NewAPILogService creates a new APILogService.
func NewAPILogService(client *ent.Client) *APILogService {
	return &APILogService{client: client}
}

// LogCallInput is one captured HTTP exchange.
type LogCallInput struct {
	Method         string
	Path           string
	Status         int
	LatencyMS      int
	Authenticated  bool
	RequestHeaders map[string]string
	RequestBody    string
	ResponseBody   string
}

// Log appends one audit row, truncating oversized bodies.
func (s *APILogService) Log(ctx context.Context, input LogCallInput) error {
	truncated := false
	if len(input.RequestBody) > maxLoggedBody {
		input.RequestBody = input.RequestBody[:maxLoggedBody] + truncationSentinel
		truncated = true
	}
	if len(input.ResponseBody) > maxLoggedBody {
		input.ResponseBody = input.ResponseBody[:maxLoggedBody] + truncationSentinel
		truncated = true
	}

	builder := s.client.ApiCallLog.Create().
		SetMethod(input.Method).
		SetPath(input.Path).
		SetStatus(input.Status).
		SetLatencyMs(input.LatencyMS).
		SetAuthenticated(input.Authenticated).
		SetTruncated(truncated)
	if input.RequestHeaders != nil {
		builder.SetRequestHeaders(input.RequestHeaders)
	}
	if input.RequestBody != "" {
		builder.SetRequestBody(input.RequestBody)
	}
	if input.ResponseBody != "" {
		builder.SetResponseBody(input.ResponseBody)
	}
	return builder.Exec(ctx)
}

// Recent returns the newest audit rows.
func (s *APILogService) Recent(ctx context.Context, limit int) ([]*ent.ApiCallLog, error) {
	if limit <= 0 {
		limit = 100
	}
	logs, err := s.client.ApiCallLog.Query().
		Order(ent.Desc(apicalllog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list api call logs: %w", err)
	}
	return logs, nil
}

// DeleteOlderThan removes audit rows past the retention cutoff and
// returns the number deleted.
func (s *APILogService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.ApiCallLog.Delete().
		Where(apicalllog.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old api call logs: %w", err)
	}
	return n, nil
}
