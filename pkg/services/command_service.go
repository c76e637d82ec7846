package services

import (
	"context"
	"fmt"
	"time"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/command"
)

// CommandService manages command rows and their state column. The
// legality of a transition is the correlator's business; this layer
// only enforces terminal-state immutability.
type CommandService struct {
	client *ent.Client
}

// NewCommandService creates a new CommandService.
func NewCommandService(client *ent.Client) *CommandService {
	return &CommandService{client: client}
}

// txOrClient lets every method run inside a caller's transaction.
type txOrClient interface {
	CommandClient() *ent.CommandClient
}

type clientWrapper struct{ c *ent.Client }

func (w clientWrapper) CommandClient() *ent.CommandClient { return w.c.Command }

type txWrapper struct{ tx *ent.Tx }

func (w txWrapper) CommandClient() *ent.CommandClient { return w.tx.Command }

func (s *CommandService) on(tx *ent.Tx) txOrClient {
	if tx != nil {
		return txWrapper{tx}
	}
	return clientWrapper{s.client}
}

// Create opens a new command in COMMANDED state.
func (s *CommandService) Create(ctx context.Context, tx *ent.Tx, agentID int, fullCommand string, startedAt time.Time) (*ent.Command, error) {
	if fullCommand == "" {
		return nil, NewValidationError("full_command", "required")
	}
	cmd, err := s.on(tx).CommandClient().Create().
		SetAgentID(agentID).
		SetState(command.StateCommanded).
		SetStartedAt(startedAt).
		SetFullCommand(fullCommand).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create command: %w", err)
	}
	return cmd, nil
}

// Open returns the agent's most recent non-complete command, or
// ErrNotFound when every command is complete (the agent is IDLE).
func (s *CommandService) Open(ctx context.Context, tx *ent.Tx, agentID int) (*ent.Command, error) {
	cmd, err := s.on(tx).CommandClient().Query().
		Where(
			command.AgentIDEQ(agentID),
			command.StateNEQ(command.StateComplete),
		).
		Order(ent.Desc(command.FieldStartedAt), ent.Desc(command.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query open command: %w", err)
	}
	return cmd, nil
}

// Get retrieves a command by id.
func (s *CommandService) Get(ctx context.Context, id int) (*ent.Command, error) {
	cmd, err := s.client.Command.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get command: %w", err)
	}
	return cmd, nil
}

// SetState moves a command to a new state. Completed commands are
// immutable; moving to COMPLETE stamps completed_at.
func (s *CommandService) SetState(ctx context.Context, tx *ent.Tx, cmd *ent.Command, to command.State) (*ent.Command, error) {
	if cmd.State == command.StateComplete {
		return nil, ErrTerminalState
	}

	builder := s.on(tx).CommandClient().UpdateOneID(cmd.ID).
		SetState(to)
	if to == command.StateComplete {
		builder.SetCompletedAt(time.Now())
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update command state: %w", err)
	}
	return updated, nil
}

// Complete finishes a command, optionally recording the verbatim final
// output.
func (s *CommandService) Complete(ctx context.Context, tx *ent.Tx, cmd *ent.Command, fullOutput string) (*ent.Command, error) {
	if cmd.State == command.StateComplete {
		return cmd, nil
	}
	builder := s.on(tx).CommandClient().UpdateOneID(cmd.ID).
		SetState(command.StateComplete).
		SetCompletedAt(time.Now())
	if fullOutput != "" {
		builder.SetFullOutput(fullOutput)
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete command: %w", err)
	}
	return updated, nil
}

// SetSummaries records the Oracle's instruction and completion
// summaries. Summaries are the one exception to terminal immutability:
// the summariser runs after completion.
func (s *CommandService) SetSummaries(ctx context.Context, id int, instruction, completionSummary string) error {
	builder := s.client.Command.UpdateOneID(id)
	if instruction != "" {
		builder.SetInstruction(instruction)
	}
	if completionSummary != "" {
		builder.SetCompletionSummary(completionSummary)
	}
	err := builder.Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// CompletedUnsummarized returns completed commands still waiting for
// their completion summary, oldest first.
func (s *CommandService) CompletedUnsummarized(ctx context.Context, limit int) ([]*ent.Command, error) {
	q := s.client.Command.Query().
		Where(
			command.StateEQ(command.StateComplete),
			command.CompletionSummaryIsNil(),
		).
		Order(ent.Asc(command.FieldCompletedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	cmds, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsummarized commands: %w", err)
	}
	return cmds, nil
}

// ListForAgent returns an agent's commands newest first.
func (s *CommandService) ListForAgent(ctx context.Context, agentID int, limit int) ([]*ent.Command, error) {
	q := s.client.Command.Query().
		Where(command.AgentIDEQ(agentID)).
		Order(ent.Desc(command.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	cmds, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commands: %w", err)
	}
	return cmds, nil
}

// StatusCounts returns how many non-ended agents sit in each derived
// state bucket, keyed by the command state name plus "idle".
func (s *CommandService) StatusCounts(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		State string `json:"state"`
		Count int    `json:"count"`
	}
	err := s.client.Command.Query().
		Where(command.StateNEQ(command.StateComplete)).
		GroupBy(command.FieldState).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count command states: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.State] = row.Count
	}
	return counts, nil
}
