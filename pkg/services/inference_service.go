package services

import (
	"context"
	"fmt"
	"time"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/inferencecall"
)

// InferenceLogService records every Oracle invocation for cost
// accounting and cache hit analysis.
type InferenceLogService struct {
	client *ent.Client
}

// NewInferenceLogService creates a new InferenceLogService.
func NewInferenceLogService(client *ent.Client) *InferenceLogService {
	return &InferenceLogService{client: client}
}

// RecordCallInput is one Oracle invocation. Exactly the FKs relevant to
// the call's level should be set; the database CHECK rejects an
// unparented row.
type RecordCallInput struct {
	Level            inferencecall.Level
	InputHash        string
	Cached           bool
	PromptTokens     int
	CompletionTokens int
	CostUSD          float64
	LatencyMS        int
	ProjectID        *int
	AgentID          *int
	CommandID        *int
	TurnID           *int
}

// Record appends one call row.
func (s *InferenceLogService) Record(ctx context.Context, input RecordCallInput) (*ent.InferenceCall, error) {
	if input.InputHash == "" {
		return nil, NewValidationError("input_hash", "required")
	}

	builder := s.client.InferenceCall.Create().
		SetLevel(input.Level).
		SetInputHash(input.InputHash).
		SetCached(input.Cached).
		SetPromptTokens(input.PromptTokens).
		SetCompletionTokens(input.CompletionTokens).
		SetCostUsd(input.CostUSD).
		SetLatencyMs(input.LatencyMS)
	if input.ProjectID != nil {
		builder.SetProjectID(*input.ProjectID)
	}
	if input.AgentID != nil {
		builder.SetAgentID(*input.AgentID)
	}
	if input.CommandID != nil {
		builder.SetCommandID(*input.CommandID)
	}
	if input.TurnID != nil {
		builder.SetTurnID(*input.TurnID)
	}

	call, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record inference call: %w", err)
	}
	return call, nil
}

// CostSince sums spend across all calls newer than the cutoff.
func (s *InferenceLogService) CostSince(ctx context.Context, since time.Time) (float64, error) {
	var agg []struct {
		Sum float64 `json:"sum"`
	}
	err := s.client.InferenceCall.Query().
		Where(inferencecall.CreatedAtGTE(since)).
		Aggregate(ent.Sum(inferencecall.FieldCostUsd)).
		Scan(ctx, &agg)
	if err != nil {
		return 0, fmt.Errorf("failed to sum inference cost: %w", err)
	}
	if len(agg) == 0 {
		return 0, nil
	}
	return agg[0].Sum, nil
}

// CachedResult looks up a prior non-cached call with the same input
// hash, the idempotent-cache probe.
func (s *InferenceLogService) CachedResult(ctx context.Context, inputHash string) (*ent.InferenceCall, error) {
	call, err := s.client.InferenceCall.Query().
		Where(inferencecall.InputHashEQ(inputHash)).
		Order(ent.Desc(inferencecall.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query inference cache: %w", err)
	}
	return call, nil
}
