// Package cleanup enforces retention on the durable event log and the
// HTTP audit trail.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/headspace-sh/headspace/pkg/config"
	"github.com/headspace-sh/headspace/pkg/services"
)

// Service periodically deletes events and api-call-log rows past their
// TTL. Deletes are idempotent and safe to run alongside another
// process.
type Service struct {
	config  config.RetentionConfig
	events  *services.EventService
	apiLogs *services.APILogService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service.
func NewService(cfg config.RetentionConfig, events *services.EventService, apiLogs *services.APILogService) *Service {
	if cfg.EventTTL <= 0 {
		cfg.EventTTL = 14 * 24 * time.Hour
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Hour
	}
	return &Service{config: cfg, events: events, apiLogs: apiLogs}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce applies retention once. Exported for tests.
func (s *Service) RunOnce(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.EventTTL)

	count, err := s.events.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
	} else if count > 0 {
		slog.Info("Retention: deleted expired events", "count", count)
	}

	if s.apiLogs == nil {
		return
	}
	count, err = s.apiLogs.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: api log cleanup failed", "error", err)
	} else if count > 0 {
		slog.Info("Retention: deleted expired api call logs", "count", count)
	}
}
