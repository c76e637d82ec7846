package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/agent"
)

// AgentService manages agent rows: registration on session_start,
// liveness bookkeeping, priority and context-usage triplets, and
// termination.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// RegisterInput describes a session announcing itself.
type RegisterInput struct {
	SessionUUID     uuid.UUID
	ProjectID       int
	PersonaID       *int
	PositionID      *int
	PreviousAgentID *int
	TmuxSessionName string
	TmuxPaneID      string
}

// Register creates the agent row for a new session. Re-registration of
// a known session_uuid returns the existing row untouched.
func (s *AgentService) Register(ctx context.Context, input RegisterInput) (*ent.Agent, error) {
	if input.SessionUUID == uuid.Nil {
		return nil, NewValidationError("session_uuid", "required")
	}

	existing, err := s.client.Agent.Query().
		Where(agent.SessionUUIDEQ(input.SessionUUID)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query agent: %w", err)
	}

	builder := s.client.Agent.Create().
		SetSessionUUID(input.SessionUUID).
		SetProjectID(input.ProjectID)
	if input.PersonaID != nil {
		builder.SetPersonaID(*input.PersonaID)
	}
	if input.PositionID != nil {
		builder.SetPositionID(*input.PositionID)
	}
	if input.PreviousAgentID != nil {
		builder.SetPreviousAgentID(*input.PreviousAgentID)
	}
	if input.TmuxSessionName != "" {
		builder.SetTmuxSessionName(input.TmuxSessionName)
	}
	if input.TmuxPaneID != "" {
		builder.SetTmuxPaneID(input.TmuxPaneID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent registration of the same session.
			return s.GetBySessionUUID(ctx, input.SessionUUID)
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return created, nil
}

// GetBySessionUUID retrieves the agent bound to a session.
func (s *AgentService) GetBySessionUUID(ctx context.Context, sessionUUID uuid.UUID) (*ent.Agent, error) {
	a, err := s.client.Agent.Query().
		Where(agent.SessionUUIDEQ(sessionUUID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// Get retrieves an agent by id.
func (s *AgentService) Get(ctx context.Context, id int) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// ListActive returns all agents that have not ended, newest first.
func (s *AgentService) ListActive(ctx context.Context) ([]*ent.Agent, error) {
	agents, err := s.client.Agent.Query().
		Where(agent.EndedAtIsNil()).
		Order(ent.Desc(agent.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active agents: %w", err)
	}
	return agents, nil
}

// ListActiveWithRefs returns active agents with their project and
// persona loaded, for card projection.
func (s *AgentService) ListActiveWithRefs(ctx context.Context) ([]*ent.Agent, error) {
	agents, err := s.client.Agent.Query().
		Where(agent.EndedAtIsNil()).
		WithProject().
		WithPersona().
		WithPosition().
		Order(ent.Desc(agent.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active agents: %w", err)
	}
	return agents, nil
}

// TouchLastSeen bumps last_seen_at. Every hook does this, even ones
// whose transition is rejected.
func (s *AgentService) TouchLastSeen(ctx context.Context, id int) error {
	err := s.client.Agent.UpdateOneID(id).
		SetLastSeenAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SetPane records the multiplexer pane binding.
func (s *AgentService) SetPane(ctx context.Context, id int, sessionName, paneID string) error {
	err := s.client.Agent.UpdateOneID(id).
		SetTmuxSessionName(sessionName).
		SetTmuxPaneID(paneID).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// AssignRefs binds the persona and predecessor chosen at creation time
// to the agent row the hook pipeline registered.
func (s *AgentService) AssignRefs(ctx context.Context, id int, personaID, previousAgentID *int) error {
	builder := s.client.Agent.UpdateOneID(id)
	if personaID != nil {
		builder.SetPersonaID(*personaID)
	}
	if previousAgentID != nil {
		builder.SetPreviousAgentID(*previousAgentID)
	}
	err := builder.Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// MarkPromptInjected records completion of persona injection, the full
// readiness marker.
func (s *AgentService) MarkPromptInjected(ctx context.Context, id int, guardrailsHash string) error {
	builder := s.client.Agent.UpdateOneID(id).
		SetPromptInjectedAt(time.Now())
	if guardrailsHash != "" {
		builder.SetGuardrailsVersionHash(guardrailsHash)
	}
	err := builder.Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SetPriority writes the priority triplet atomically.
func (s *AgentService) SetPriority(ctx context.Context, id int, score int, reason string) error {
	err := s.client.Agent.UpdateOneID(id).
		SetPriorityScore(score).
		SetPriorityReason(reason).
		SetPriorityUpdatedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SetContextUsage writes the context-usage triplet from the status
// line.
func (s *AgentService) SetContextUsage(ctx context.Context, id int, percentUsed int, remaining string) error {
	err := s.client.Agent.UpdateOneID(id).
		SetContextPercentUsed(percentUsed).
		SetContextRemainingTokens(remaining).
		SetContextUpdatedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// End marks the agent terminated. Idempotent: a second End keeps the
// first ended_at.
func (s *AgentService) End(ctx context.Context, id int) (*ent.Agent, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.EndedAt != nil {
		return a, nil
	}
	updated, err := a.Update().
		SetEndedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to end agent: %w", err)
	}
	return updated, nil
}

// RecordHandoff stores the outgoing agent's handoff briefing for its
// successor. One briefing per agent.
func (s *AgentService) RecordHandoff(ctx context.Context, agentID int, reason string) error {
	err := s.client.Handoff.Create().
		SetAgentID(agentID).
		SetReason(reason).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		return ErrAlreadyExists
	}
	return err
}

// HandoffFor returns the predecessor's briefing, or ErrNotFound.
func (s *AgentService) HandoffFor(ctx context.Context, agentID int) (*ent.Handoff, error) {
	a, err := s.client.Agent.Query().
		Where(agent.IDEQ(agentID)).
		WithHandoff().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query handoff: %w", err)
	}
	if a.Edges.Handoff == nil {
		return nil, ErrNotFound
	}
	return a.Edges.Handoff, nil
}
