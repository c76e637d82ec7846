package services

import (
	"context"
	"fmt"
	"time"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/objective"
)

// ObjectiveService manages the single live objective the priority
// scorer ranks agents against.
type ObjectiveService struct {
	client *ent.Client
}

// NewObjectiveService creates a new ObjectiveService.
func NewObjectiveService(client *ent.Client) *ObjectiveService {
	return &ObjectiveService{client: client}
}

// Current returns the live objective, or ErrNotFound when none has been
// set yet.
func (s *ObjectiveService) Current(ctx context.Context) (*ent.Objective, error) {
	o, err := s.client.Objective.Query().
		Order(ent.Desc(objective.FieldUpdatedAt), ent.Desc(objective.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get objective: %w", err)
	}
	return o, nil
}

// Set replaces the live objective text.
func (s *ObjectiveService) Set(ctx context.Context, text string, priorityEnabled bool) (*ent.Objective, error) {
	if text == "" {
		return nil, NewValidationError("text", "required")
	}

	existing, err := s.Current(ctx)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	if existing != nil {
		updated, err := existing.Update().
			SetText(text).
			SetPriorityEnabled(priorityEnabled).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update objective: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.Objective.Create().
		SetText(text).
		SetPriorityEnabled(priorityEnabled).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create objective: %w", err)
	}
	return created, nil
}

// SetPriorityEnabled flips the scorer switch without touching the text.
func (s *ObjectiveService) SetPriorityEnabled(ctx context.Context, enabled bool) error {
	existing, err := s.Current(ctx)
	if err != nil {
		return err
	}
	return existing.Update().
		SetPriorityEnabled(enabled).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
}
