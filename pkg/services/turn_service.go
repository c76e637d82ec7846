package services

import (
	"context"
	"fmt"
	"time"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/turn"
)

// TurnService persists turns. The (command_id, jsonl_entry_hash)
// partial unique index backs it: a constraint violation on insert
// means another writer beat us to the same transcript line and is
// reported as ErrConflict for a silent skip.
type TurnService struct {
	client *ent.Client
}

// NewTurnService creates a new TurnService.
func NewTurnService(client *ent.Client) *TurnService {
	return &TurnService{client: client}
}

// CreateTurnInput is one turn to persist.
type CreateTurnInput struct {
	CommandID       int
	Actor           turn.Actor
	Intent          turn.Intent
	Text            string
	Timestamp       time.Time
	TimestampSource turn.TimestampSource
	JSONLEntryHash  string // "" means NULL: hook-born turn
	IsInternal      bool
	ToolInput       map[string]interface{}
	FileMetadata    map[string]interface{}
}

func (s *TurnService) turnClient(tx *ent.Tx) *ent.TurnClient {
	if tx != nil {
		return tx.Turn
	}
	return s.client.Turn
}

// Create persists one turn, optionally inside the caller's transaction.
func (s *TurnService) Create(ctx context.Context, tx *ent.Tx, input CreateTurnInput) (*ent.Turn, error) {
	if input.Text == "" {
		return nil, NewValidationError("text", "required")
	}
	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
		input.TimestampSource = turn.TimestampSourceInferred
	}

	builder := s.turnClient(tx).Create().
		SetCommandID(input.CommandID).
		SetActor(input.Actor).
		SetIntent(input.Intent).
		SetText(input.Text).
		SetTimestamp(ts).
		SetTimestampSource(input.TimestampSource).
		SetIsInternal(input.IsInternal)
	if input.JSONLEntryHash != "" {
		builder.SetJsonlEntryHash(input.JSONLEntryHash)
	}
	if input.ToolInput != nil {
		builder.SetToolInput(input.ToolInput)
	}
	if input.FileMetadata != nil {
		builder.SetFileMetadata(input.FileMetadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create turn: %w", err)
	}
	return created, nil
}

// Get retrieves a turn by id.
func (s *TurnService) Get(ctx context.Context, id int) (*ent.Turn, error) {
	t, err := s.client.Turn.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get turn: %w", err)
	}
	return t, nil
}

// ListForCommand returns a command's turns in conversation order.
func (s *TurnService) ListForCommand(ctx context.Context, commandID int) ([]*ent.Turn, error) {
	turns, err := s.client.Turn.Query().
		Where(turn.CommandIDEQ(commandID)).
		Order(ent.Asc(turn.FieldTimestamp), ent.Asc(turn.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	return turns, nil
}

// LatestQuestion returns the most recent unanswered question turn in a
// command, or ErrNotFound.
func (s *TurnService) LatestQuestion(ctx context.Context, tx *ent.Tx, commandID int) (*ent.Turn, error) {
	t, err := s.turnClient(tx).Query().
		Where(
			turn.CommandIDEQ(commandID),
			turn.IntentEQ(turn.IntentQuestion),
			turn.AnsweredByTurnIDIsNil(),
		).
		Order(ent.Desc(turn.FieldTimestamp), ent.Desc(turn.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query question turn: %w", err)
	}
	return t, nil
}

// LinkAnswer records the question → answer back-reference.
func (s *TurnService) LinkAnswer(ctx context.Context, tx *ent.Tx, questionTurnID, answerTurnID int) error {
	err := s.turnClient(tx).UpdateOneID(questionTurnID).
		SetAnsweredByTurnID(answerTurnID).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SetSummary records the Oracle's turn summary.
func (s *TurnService) SetSummary(ctx context.Context, id int, summary string) error {
	err := s.client.Turn.UpdateOneID(id).
		SetSummary(summary).
		SetSummaryGeneratedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// Unsummarized returns turns still waiting for a summary, oldest first.
func (s *TurnService) Unsummarized(ctx context.Context, limit int) ([]*ent.Turn, error) {
	q := s.client.Turn.Query().
		Where(turn.SummaryIsNil()).
		Order(ent.Asc(turn.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	turns, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsummarized turns: %w", err)
	}
	return turns, nil
}
