// Package scoring ranks active agents against the live objective via
// the inference oracle.
package scoring

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
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/oracle"
	"github.com/headspace-sh/headspace/pkg/services"
)

// Config holds the scorer's tunables.
type Config struct {
	Interval  time.Duration
	BatchSize int
}

// Scorer periodically scores the fleet against the current objective.
type Scorer struct {
	cfg        Config
	agents     *services.AgentService
	commands   *services.CommandService
	turns      *services.TurnService
	objectives *services.ObjectiveService
	oracle     *oracle.Oracle
	pub        *events.Publisher

	cancel context.CancelFunc
	done   chan struct{}
}

// NewScorer creates a priority scorer.
func NewScorer(
	cfg Config,
	agents *services.AgentService,
	commands *services.CommandService,
	turns *services.TurnService,
	objectives *services.ObjectiveService,
	orc *oracle.Oracle,
	pub *events.Publisher,
) *Scorer {
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 25
	}
	return &Scorer{
		cfg:        cfg,
		agents:     agents,
		commands:   commands,
		turns:      turns,
		objectives: objectives,
		oracle:     orc,
		pub:        pub,
	}
}

// Start launches the scoring loop.
func (s *Scorer) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Priority scorer started", "interval", s.cfg.Interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Scorer) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Priority scorer stopped")
}

func (s *Scorer) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.ScoreOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("Scoring round failed", "error", err)
			}
		}
	}
}

// agentEntry is one agent's slice of the scoring prompt.
type agentEntry struct {
	AgentID         int    `json:"agent_id"`
	State           string `json:"state"`
	Instruction     string `json:"instruction"`
	LastTurnSummary string `json:"last_turn_summary"`
}

// scoreResult is what the oracle returns per agent.
type scoreResult struct {
	AgentID int    `json:"agent_id"`
	Score   int    `json:"score"`
	Reason  string `json:"reason"`
}

// ScoreOnce runs a single scoring round. Rounds are skipped entirely
// when there is no objective or priority scoring is disabled on it.
func (s *Scorer) ScoreOnce(ctx context.Context) error {
	objective, err := s.objectives.Current(ctx)
	if errors.Is(err, services.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !objective.PriorityEnabled {
		return nil
	}

	agents, err := s.agents.ListActiveWithRefs(ctx)
	if err != nil {
		return err
	}

	entries := make([]agentEntry, 0, len(agents))
	eligible := make([]*ent.Agent, 0, len(agents))
	for _, agent := range agents {
		if project := agent.Edges.Project; project != nil && project.InferencePaused {
			continue
		}
		entry, err := s.describe(ctx, agent)
		if err != nil {
			slog.Warn("Skipping agent in scoring round", "agent_id", agent.ID, "error", err)
			continue
		}
		entries = append(entries, entry)
		eligible = append(eligible, agent)
		if len(entries) >= s.cfg.BatchSize {
			break
		}
	}
	if len(entries) == 0 {
		return nil
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode scoring payload: %w", err)
	}

	prompt := fmt.Sprintf(`Objective: %s

Score each agent 0-100 on how much its current work advances the objective.

Agents:
%s

Respond with JSON only: [{"agent_id": N, "score": 0-100, "reason": "<one sentence>"}, ...]`,
		objective.Text, payload)

	// The call row is attributed to the first scored agent; priority
	// rounds are fleet-wide and the log schema wants a parent.
	raw, err := s.oracle.Invoke(ctx, oracle.InvokeInput{
		Level:   inferencecall.LevelPriority,
		Prompt:  prompt,
		AgentID: &eligible[0].ID,
	})
	if err != nil {
		return err
	}

	results, err := parseScores(raw)
	if err != nil {
		return fmt.Errorf("failed to parse scores: %w", err)
	}

	known := make(map[int]bool, len(eligible))
	for _, agent := range eligible {
		known[agent.ID] = true
	}

	applied := 0
	for _, result := range results {
		if !known[result.AgentID] {
			continue
		}
		score := result.Score
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		if err := s.agents.SetPriority(ctx, result.AgentID, score, result.Reason); err != nil {
			slog.Warn("Failed to write priority", "agent_id", result.AgentID, "error", err)
			continue
		}
		applied++
		s.publish(ctx, result.AgentID, score)
	}

	slog.Info("Scoring round complete", "scored", applied, "eligible", len(eligible))
	return nil
}

// describe assembles one agent's prompt entry.
func (s *Scorer) describe(ctx context.Context, agent *ent.Agent) (agentEntry, error) {
	entry := agentEntry{AgentID: agent.ID, State: "IDLE"}

	cmds, err := s.commands.ListForAgent(ctx, agent.ID, 1)
	if err != nil {
		return agentEntry{}, err
	}
	if len(cmds) == 0 {
		return entry, nil
	}
	cmd := cmds[0]

	entry.State = strings.ToUpper(string(cmd.State))
	if cmd.Instruction != nil {
		entry.Instruction = *cmd.Instruction
	} else if cmd.FullCommand != nil {
		entry.Instruction = truncate(*cmd.FullCommand, 140)
	}

	turns, err := s.turns.ListForCommand(ctx, cmd.ID)
	if err != nil {
		return agentEntry{}, err
	}
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Summary != nil {
			entry.LastTurnSummary = *turns[i].Summary
			break
		}
	}
	return entry, nil
}

// parseScores tolerates prose around the JSON array.
func parseScores(raw string) ([]scoreResult, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in oracle response")
	}
	var results []scoreResult
	if err := json.Unmarshal([]byte(raw[start:end+1]), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Scorer) publish(ctx context.Context, agentID, score int) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(ctx, events.StreamMessage{
		Type:    events.StreamPriorityUpdated,
		AgentID: &agentID,
		Data:    map[string]interface{}{"score": score},
	})
	s.pub.Publish(ctx, events.StreamMessage{
		Type:    events.StreamCardRefresh,
		AgentID: &agentID,
		Reason:  "priority_updated",
	})
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "…"
}
