// Package correlator fuses transcript turns and lifecycle hooks into
// command state under the per-agent advisory lock. It owns the
// correlation rules: which observation opens a command, which one moves
// it, and which one is recorded and ignored.
package correlator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/turn"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/locks"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/statemachine"
)

// Config tunes the correlator's dedup and rate-limit knobs.
type Config struct {
	// LockTimeout bounds how long an observation waits for the agent's
	// advisory lock.
	LockTimeout time.Duration
	// DedupTTL is the window within which identical content hashes are
	// dropped.
	DedupTTL time.Duration
	// CommandsPerMinute caps new commands per agent against runaway
	// prompt loops.
	CommandsPerMinute int
}

// DefaultConfig mirrors the shipped defaults.
func DefaultConfig() Config {
	return Config{
		LockTimeout:       10 * time.Second,
		DedupTTL:          30 * time.Second,
		CommandsPerMinute: 20,
	}
}

// TurnObservation is one observation entering the correlator, from
// either the transcript tail or a hook body.
type TurnObservation struct {
	Actor           statemachine.Actor
	Text            string
	Timestamp       time.Time
	TimestampSource turn.TimestampSource
	ContentHash     string // "" for hook-born observations
}

// Outcome reports what one observation did.
type Outcome struct {
	TurnID         int
	CommandID      int
	CreatedCommand bool
	FromState      statemachine.State
	ToState        statemachine.State
	Transitioned   bool
	Rejected       bool
	Duplicate      bool
	RateLimited    bool
}

// Correlator applies observations to agents.
type Correlator struct {
	cfg      Config
	client   *ent.Client
	agents   *services.AgentService
	commands *services.CommandService
	turns    *services.TurnService
	activity *services.ActivityService
	writer   *events.Writer
	pub      *events.Publisher
	locks    *locks.Manager

	ring *hashRing

	mu       sync.Mutex
	limiters map[int]*rate.Limiter
}

// New creates a correlator over the shared service layer.
func New(
	cfg Config,
	client *ent.Client,
	agents *services.AgentService,
	commands *services.CommandService,
	turns *services.TurnService,
	activity *services.ActivityService,
	writer *events.Writer,
	pub *events.Publisher,
	lockManager *locks.Manager,
) *Correlator {
	return &Correlator{
		cfg:      cfg,
		client:   client,
		agents:   agents,
		commands: commands,
		turns:    turns,
		activity: activity,
		writer:   writer,
		pub:      pub,
		locks:    lockManager,
		ring:     newHashRing(cfg.DedupTTL, 512),
		limiters: make(map[int]*rate.Limiter),
	}
}

// limiter returns the agent's command-creation limiter.
func (c *Correlator) limiter(agentID int) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.limiters[agentID]
	if !ok {
		perMinute := c.cfg.CommandsPerMinute
		if perMinute <= 0 {
			perMinute = 20
		}
		l = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
		c.limiters[agentID] = l
	}
	return l
}

// ObserveTurn applies one transcript or hook observation to an agent
// under its advisory lock.
func (c *Correlator) ObserveTurn(ctx context.Context, agent *ent.Agent, obs TurnObservation) (Outcome, error) {
	if c.ring.Seen(agent.ID, obs.ContentHash) {
		slog.Debug("Duplicate turn dropped by recent-hash ring",
			"agent_id", agent.ID, "hash", obs.ContentHash)
		return Outcome{Duplicate: true}, nil
	}

	lockedCtx, release, err := c.locks.Lock(ctx, locks.NamespaceAgent, int64(agent.ID), c.cfg.LockTimeout)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to lock agent %d: %w", agent.ID, err)
	}
	defer release()

	return c.applyTurnLocked(lockedCtx, agent, obs)
}

// ObserveHook applies a state-bearing hook (stop, notification) under
// the agent's advisory lock. Hooks that never touch command state are
// not routed here.
func (c *Correlator) ObserveHook(ctx context.Context, agent *ent.Agent, kind statemachine.HookKind) (Outcome, error) {
	ctx, release, err := c.locks.Lock(ctx, locks.NamespaceAgent, int64(agent.ID), c.cfg.LockTimeout)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to lock agent %d: %w", agent.ID, err)
	}
	defer release()

	defer c.touch(ctx, agent.ID)

	open, state, err := c.openState(ctx, nil, agent.ID)
	if err != nil {
		return Outcome{}, err
	}

	result := statemachine.ValidateHook(state, kind)
	if !result.Valid {
		c.recordRejection(ctx, agent, state, result, "", "")
		return Outcome{FromState: state, Rejected: true}, nil
	}

	tx, err := c.client.Tx(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	updated, err := c.commands.SetState(ctx, tx, open, command.State(result.To))
	if err != nil {
		return Outcome{}, err
	}
	res := c.writer.Write(ctx, events.EventTypeStateTransition, map[string]interface{}{
		"from_state": string(state),
		"to_state":   string(result.To),
		"trigger":    result.Trigger,
	}, events.WithTx(tx), events.WithAgent(agent.ID), events.WithCommand(updated.ID))
	if res.Err != nil {
		return Outcome{}, res.Err
	}
	if err := tx.Commit(); err != nil {
		return Outcome{}, fmt.Errorf("failed to commit hook transition: %w", err)
	}

	c.publishRefresh(ctx, agent.ID, result.Trigger)
	return Outcome{
		CommandID:    updated.ID,
		FromState:    state,
		ToState:      result.To,
		Transitioned: true,
	}, nil
}

// WithAgentLock runs fn under the agent's advisory lock with the
// correlator's configured timeout. End-of-life mutation outside the
// correlator goes through here so it serialises with in-flight
// observations.
func (c *Correlator) WithAgentLock(ctx context.Context, agentID int, fn func(ctx context.Context) error) error {
	lockedCtx, release, err := c.locks.Lock(ctx, locks.NamespaceAgent, int64(agentID), c.cfg.LockTimeout)
	if err != nil {
		return fmt.Errorf("failed to lock agent %d: %w", agentID, err)
	}
	defer release()

	return fn(lockedCtx)
}

// ForgetAgent clears per-agent correlator state after session end.
func (c *Correlator) ForgetAgent(agentID int) {
	c.ring.Forget(agentID)
	c.mu.Lock()
	delete(c.limiters, agentID)
	c.mu.Unlock()
}

// applyTurnLocked runs the correlation rules with the agent lock held.
func (c *Correlator) applyTurnLocked(ctx context.Context, agent *ent.Agent, obs TurnObservation) (Outcome, error) {
	defer c.touch(ctx, agent.ID)

	open, state, err := c.openState(ctx, nil, agent.ID)
	if err != nil {
		return Outcome{}, err
	}

	var cls classification
	switch obs.Actor {
	case statemachine.ActorUser:
		cls = classifyUser(obs.Text, state)
	default:
		cls = classifyAgent(obs.Text)
	}

	// Internal control prompts are recorded for the audit trail but
	// never drive the state machine.
	if cls.IsInternal {
		return c.recordInternal(ctx, open, agent, obs)
	}

	result := statemachine.ValidateTurn(state, obs.Actor, cls.Intent)

	switch {
	case result.CreateCommand:
		return c.createSiblingCommand(ctx, agent, state, obs)
	case result.Valid:
		return c.applyTransition(ctx, agent, open, state, result, cls.Intent, obs)
	default:
		c.recordRejection(ctx, agent, state, result, string(obs.Actor), string(cls.Intent))
		return Outcome{FromState: state, Rejected: true}, nil
	}
}

// openState resolves the agent's open command and derived state.
func (c *Correlator) openState(ctx context.Context, tx *ent.Tx, agentID int) (*ent.Command, statemachine.State, error) {
	open, err := c.commands.Open(ctx, tx, agentID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, statemachine.StateIdle, nil
		}
		return nil, "", err
	}
	return open, statemachine.State(open.State), nil
}

// createSiblingCommand opens a new command for a user prompt, leaving
// any live command untouched.
func (c *Correlator) createSiblingCommand(ctx context.Context, agent *ent.Agent, from statemachine.State, obs TurnObservation) (Outcome, error) {
	if !c.limiter(agent.ID).Allow() {
		slog.Warn("Command creation rate limit hit", "agent_id", agent.ID)
		c.recordRejection(ctx, agent, from, statemachine.TransitionResult{
			Reason:  "command creation rate limit exceeded",
			Trigger: "user_command",
		}, string(statemachine.ActorUser), string(statemachine.IntentCommand))
		return Outcome{FromState: from, RateLimited: true}, nil
	}

	tx, err := c.client.Tx(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ts := obs.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	cmd, err := c.commands.Create(ctx, tx, agent.ID, obs.Text, ts)
	if err != nil {
		return Outcome{}, err
	}

	created, err := c.turns.Create(ctx, tx, services.CreateTurnInput{
		CommandID:       cmd.ID,
		Actor:           turn.ActorUser,
		Intent:          turn.IntentCommand,
		Text:            obs.Text,
		Timestamp:       ts,
		TimestampSource: obs.TimestampSource,
		JSONLEntryHash:  obs.ContentHash,
	})
	if errors.Is(err, services.ErrConflict) {
		c.ring.Record(agent.ID, obs.ContentHash)
		return Outcome{Duplicate: true}, nil
	}
	if err != nil {
		return Outcome{}, err
	}

	for _, write := range []events.WriteResult{
		c.writer.Write(ctx, events.EventTypeTurnDetected, map[string]interface{}{
			"actor":            "user",
			"intent":           "command",
			"text_preview":     preview(obs.Text),
			"timestamp_source": string(obs.TimestampSource),
		}, events.WithTx(tx), events.WithAgent(agent.ID), events.WithCommand(cmd.ID), events.WithTurn(created.ID)),
		c.writer.Write(ctx, events.EventTypeStateTransition, map[string]interface{}{
			"from_state": string(from),
			"to_state":   string(statemachine.StateCommanded),
			"trigger":    "user_command",
		}, events.WithTx(tx), events.WithAgent(agent.ID), events.WithCommand(cmd.ID)),
	} {
		if write.Err != nil {
			return Outcome{}, write.Err
		}
	}

	if err := tx.Commit(); err != nil {
		return Outcome{}, fmt.Errorf("failed to commit new command: %w", err)
	}
	c.ring.Record(agent.ID, obs.ContentHash)

	if c.activity != nil {
		if err := c.activity.RecordCommand(ctx, agent.ID, agent.ProjectID, ts); err != nil {
			slog.Warn("Failed to record command metric", "agent_id", agent.ID, "error", err)
		}
		if err := c.activity.RecordTurn(ctx, agent.ID, agent.ProjectID, ts); err != nil {
			slog.Warn("Failed to record turn metric", "agent_id", agent.ID, "error", err)
		}
	}
	c.publishRefresh(ctx, agent.ID, "user_command")

	return Outcome{
		TurnID:         created.ID,
		CommandID:      cmd.ID,
		CreatedCommand: true,
		FromState:      from,
		ToState:        statemachine.StateCommanded,
		Transitioned:   true,
	}, nil
}

// applyTransition records the turn and moves the open command in one
// transaction.
func (c *Correlator) applyTransition(ctx context.Context, agent *ent.Agent, open *ent.Command, from statemachine.State, result statemachine.TransitionResult, intent statemachine.Intent, obs TurnObservation) (Outcome, error) {
	tx, err := c.client.Tx(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	created, err := c.turns.Create(ctx, tx, services.CreateTurnInput{
		CommandID:       open.ID,
		Actor:           turn.Actor(obs.Actor),
		Intent:          turn.Intent(intent),
		Text:            obs.Text,
		Timestamp:       obs.Timestamp,
		TimestampSource: obs.TimestampSource,
		JSONLEntryHash:  obs.ContentHash,
	})
	if errors.Is(err, services.ErrConflict) {
		// Storage-level dedup: a concurrent writer already recorded this
		// exact transcript line.
		c.ring.Record(agent.ID, obs.ContentHash)
		return Outcome{Duplicate: true}, nil
	}
	if err != nil {
		return Outcome{}, err
	}

	if intent == statemachine.IntentAnswer {
		if question, qerr := c.turns.LatestQuestion(ctx, tx, open.ID); qerr == nil {
			if err := c.turns.LinkAnswer(ctx, tx, question.ID, created.ID); err != nil {
				return Outcome{}, err
			}
		}
	}

	if !result.SelfLoop {
		if _, err := c.commands.SetState(ctx, tx, open, command.State(result.To)); err != nil {
			return Outcome{}, err
		}
	}
	if intent == statemachine.IntentCompletion && obs.Text != "" {
		if err := tx.Command.UpdateOneID(open.ID).SetFullOutput(obs.Text).Exec(ctx); err != nil {
			return Outcome{}, fmt.Errorf("failed to record full output: %w", err)
		}
	}

	writes := []events.WriteResult{
		c.writer.Write(ctx, events.EventTypeTurnDetected, map[string]interface{}{
			"actor":            string(obs.Actor),
			"intent":           string(intent),
			"text_preview":     preview(obs.Text),
			"timestamp_source": string(obs.TimestampSource),
		}, events.WithTx(tx), events.WithAgent(agent.ID), events.WithCommand(open.ID), events.WithTurn(created.ID)),
	}
	if !result.SelfLoop {
		writes = append(writes, c.writer.Write(ctx, events.EventTypeStateTransition, map[string]interface{}{
			"from_state": string(from),
			"to_state":   string(result.To),
			"trigger":    result.Trigger,
		}, events.WithTx(tx), events.WithAgent(agent.ID), events.WithCommand(open.ID)))
	}
	if intent == statemachine.IntentQuestion {
		writes = append(writes, c.writer.Write(ctx, events.EventTypeQuestionDetected, map[string]interface{}{
			"question_preview": preview(obs.Text),
			"turn_id":          created.ID,
		}, events.WithTx(tx), events.WithAgent(agent.ID), events.WithCommand(open.ID), events.WithTurn(created.ID)))
	}
	for _, write := range writes {
		if write.Err != nil {
			return Outcome{}, write.Err
		}
	}

	if err := tx.Commit(); err != nil {
		return Outcome{}, fmt.Errorf("failed to commit turn: %w", err)
	}
	c.ring.Record(agent.ID, obs.ContentHash)

	if c.activity != nil {
		if err := c.activity.RecordTurn(ctx, agent.ID, agent.ProjectID, obs.Timestamp); err != nil {
			slog.Warn("Failed to record turn metric", "agent_id", agent.ID, "error", err)
		}
	}
	c.publishRefresh(ctx, agent.ID, result.Trigger)

	out := Outcome{
		TurnID:    created.ID,
		CommandID: open.ID,
		FromState: from,
		ToState:   result.To,
	}
	if result.SelfLoop {
		out.ToState = from
	} else {
		out.Transitioned = true
	}
	return out, nil
}

// recordInternal stores a control-prompt turn on the open command when
// one exists. With no open command there is nothing to attach it to.
func (c *Correlator) recordInternal(ctx context.Context, open *ent.Command, agent *ent.Agent, obs TurnObservation) (Outcome, error) {
	if open == nil {
		return Outcome{}, nil
	}
	created, err := c.turns.Create(ctx, nil, services.CreateTurnInput{
		CommandID:       open.ID,
		Actor:           turn.Actor(obs.Actor),
		Intent:          turn.IntentProgress,
		Text:            obs.Text,
		Timestamp:       obs.Timestamp,
		TimestampSource: obs.TimestampSource,
		JSONLEntryHash:  obs.ContentHash,
		IsInternal:      true,
	})
	if errors.Is(err, services.ErrConflict) {
		c.ring.Record(agent.ID, obs.ContentHash)
		return Outcome{Duplicate: true}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	c.ring.Record(agent.ID, obs.ContentHash)
	return Outcome{TurnID: created.ID, CommandID: open.ID, FromState: statemachine.State(open.State), ToState: statemachine.State(open.State)}, nil
}

// recordRejection logs the no-op cell for traceability. Best-effort:
// the rejected observation itself carries no state.
func (c *Correlator) recordRejection(ctx context.Context, agent *ent.Agent, from statemachine.State, result statemachine.TransitionResult, actor, intent string) {
	payload := map[string]interface{}{
		"from_state": string(from),
		"trigger":    result.Trigger,
		"reason":     result.Reason,
	}
	if actor != "" {
		payload["actor"] = actor
	}
	if intent != "" {
		payload["intent"] = intent
	}
	if res := c.writer.Write(ctx, events.EventTypeStateTransitionRejected, payload, events.WithAgent(agent.ID)); res.Err != nil {
		slog.Warn("Failed to record rejected transition", "agent_id", agent.ID, "error", res.Err)
	}
}

func (c *Correlator) touch(ctx context.Context, agentID int) {
	if err := c.agents.TouchLastSeen(ctx, agentID); err != nil {
		slog.Warn("Failed to bump last_seen_at", "agent_id", agentID, "error", err)
	}
}

func (c *Correlator) publishRefresh(ctx context.Context, agentID int, reason string) {
	if c.pub == nil {
		return
	}
	c.pub.Publish(ctx, events.StreamMessage{
		Type:    events.StreamCardRefresh,
		AgentID: &agentID,
		Reason:  reason,
	})
}

// preview truncates turn text for event payloads.
func preview(text string) string {
	const max = 200
	if len(text) <= max {
		return text
	}
	return text[:max] + "…"
}
