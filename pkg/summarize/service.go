// Package summarize is the background worker that asks the oracle for
// turn summaries and command completion summaries.
package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/inferencecall"
	entturn "github.com/headspace-sh/headspace/ent/turn"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/oracle"
	"github.com/headspace-sh/headspace/pkg/services"
)

// trivialTextLimit is the length under which a turn is its own summary
// and the oracle is not consulted.
const trivialTextLimit = 80

// Config holds the worker's tunables.
type Config struct {
	Interval  time.Duration
	BatchSize int
}

// Service sweeps unsummarized turns and completed commands on a timer.
type Service struct {
	cfg      Config
	turns    *services.TurnService
	commands *services.CommandService
	agents   *services.AgentService
	oracle   *oracle.Oracle
	pub      *events.Publisher

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a summariser.
func NewService(
	cfg Config,
	turns *services.TurnService,
	commands *services.CommandService,
	agents *services.AgentService,
	orc *oracle.Oracle,
	pub *events.Publisher,
) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	return &Service{
		cfg:      cfg,
		turns:    turns,
		commands: commands,
		agents:   agents,
		oracle:   orc,
		pub:      pub,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Summariser started",
		"interval", s.cfg.Interval, "batch_size", s.cfg.BatchSize)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Summariser stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep processes one batch of turns and one batch of completed
// commands. Exported so tests and the CLI can drive it directly.
func (s *Service) Sweep(ctx context.Context) {
	if err := s.sweepTurns(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Turn summary sweep failed", "error", err)
	}
	if err := s.sweepCommands(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Command summary sweep failed", "error", err)
	}
}

func (s *Service) sweepTurns(ctx context.Context) error {
	turns, err := s.turns.Unsummarized(ctx, s.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, turn := range turns {
		if err := s.summarizeTurn(ctx, turn); err != nil {
			if errors.Is(err, oracle.ErrInferencePaused) {
				continue
			}
			slog.Warn("Failed to summarise turn", "turn_id", turn.ID, "error", err)
		}
	}
	return nil
}

func (s *Service) summarizeTurn(ctx context.Context, turn *ent.Turn) error {
	text := strings.TrimSpace(turn.Text)
	if len(text) <= trivialTextLimit {
		// Short turns carry their own summary; no tokens spent.
		return s.turns.SetSummary(ctx, turn.ID, text)
	}

	cmd, err := s.commands.Get(ctx, turn.CommandID)
	if err != nil {
		return err
	}
	agent, err := s.agents.Get(ctx, cmd.AgentID)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf(
		"Summarise this %s turn from a coding agent transcript in one or two sentences:\n\n%s",
		turn.Actor, text)

	summary, err := s.oracle.Invoke(ctx, oracle.InvokeInput{
		Level:     inferencecall.LevelTurn,
		Prompt:    prompt,
		ProjectID: &agent.ProjectID,
		TurnID:    &turn.ID,
	})
	if err != nil {
		return err
	}

	if err := s.turns.SetSummary(ctx, turn.ID, strings.TrimSpace(summary)); err != nil {
		return err
	}
	s.publishRefresh(ctx, cmd.AgentID, "turn_summarized")
	return nil
}

// commandSummary is the JSON shape the oracle returns for a completed
// command.
type commandSummary struct {
	Instruction       string `json:"instruction"`
	CompletionSummary string `json:"completion_summary"`
}

func (s *Service) sweepCommands(ctx context.Context) error {
	cmds, err := s.commands.CompletedUnsummarized(ctx, s.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		if err := s.summarizeCommand(ctx, cmd); err != nil {
			if errors.Is(err, oracle.ErrInferencePaused) {
				continue
			}
			slog.Warn("Failed to summarise command", "command_id", cmd.ID, "error", err)
		}
	}
	return nil
}

func (s *Service) summarizeCommand(ctx context.Context, cmd *ent.Command) error {
	turns, err := s.turns.ListForCommand(ctx, cmd.ID)
	if err != nil {
		return err
	}

	opening := openingUserTurn(turns, cmd)
	closingUser, closingAgent := closingPair(turns)
	if opening == "" && closingAgent == "" {
		// Nothing to summarise; stamp a placeholder so the sweep does not
		// revisit this command forever.
		return s.commands.SetSummaries(ctx, cmd.ID, "", "(no transcript)")
	}

	agent, err := s.agents.Get(ctx, cmd.AgentID)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf(`A coding agent completed a command.

Opening user message:
%s

Final exchange:
user: %s
agent: %s

Respond with JSON only: {"instruction": "<imperative phrase naming the task>", "completion_summary": "<one or two sentences on the outcome>"}`,
		opening, closingUser, closingAgent)

	raw, err := s.oracle.Invoke(ctx, oracle.InvokeInput{
		Level:     inferencecall.LevelCommand,
		Prompt:    prompt,
		ProjectID: &agent.ProjectID,
		CommandID: &cmd.ID,
	})
	if err != nil {
		return err
	}

	parsed := parseCommandSummary(raw, opening)
	if err := s.commands.SetSummaries(ctx, cmd.ID, parsed.Instruction, parsed.CompletionSummary); err != nil {
		return err
	}
	s.publishRefresh(ctx, cmd.AgentID, "command_summarized")
	return nil
}

// parseCommandSummary tolerates prose around the JSON object and falls
// back to the raw text when no object parses.
func parseCommandSummary(raw, opening string) commandSummary {
	var parsed commandSummary
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err == nil &&
			parsed.CompletionSummary != "" {
			return parsed
		}
	}
	return commandSummary{
		Instruction:       truncate(opening, 140),
		CompletionSummary: truncate(strings.TrimSpace(raw), 500),
	}
}

func openingUserTurn(turns []*ent.Turn, cmd *ent.Command) string {
	for _, t := range turns {
		if t.Actor == entturn.ActorUser && !t.IsInternal {
			return t.Text
		}
	}
	if cmd.FullCommand != nil {
		return *cmd.FullCommand
	}
	return ""
}

func closingPair(turns []*ent.Turn) (user, agent string) {
	for i := len(turns) - 1; i >= 0; i-- {
		t := turns[i]
		if agent == "" && t.Actor == entturn.ActorAgent {
			agent = t.Text
			continue
		}
		if agent != "" && t.Actor == entturn.ActorUser {
			user = t.Text
			break
		}
	}
	return user, agent
}

func truncate(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	return text[:max] + "…"
}

func (s *Service) publishRefresh(ctx context.Context, agentID int, reason string) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(ctx, events.StreamMessage{
		Type:    events.StreamCardRefresh,
		AgentID: &agentID,
		Reason:  reason,
	})
}
