package services

import (
	"context"
	"fmt"
	"time"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/event"
)

// EventService reads the durable event log; writes go through the
// events.Writer.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// ListSince returns events with id greater than afterID in insertion
// order; the SSE catch-up query for reconnecting dashboards.
func (s *EventService) ListSince(ctx context.Context, afterID int, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 500
	}
	events, err := s.client.Event.Query().
		Where(event.IDGT(afterID)).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListForAgent returns an agent's events newest first.
func (s *EventService) ListForAgent(ctx context.Context, agentID int, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	events, err := s.client.Event.Query().
		Where(event.AgentIDEQ(agentID)).
		Order(ent.Desc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent events: %w", err)
	}
	return events, nil
}

// DeleteOlderThan removes events past the retention cutoff and returns
// how many went.
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return n, nil
}
