// Package reaper closes inactive sessions, recovers or ends agents with
// dead panes, and samples context usage from live panes.
package reaper

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/locks"
	"github.com/headspace-sh/headspace/pkg/registry"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/tmux"
)

// Config holds the reaper's tunables.
type Config struct {
	Interval             time.Duration
	PaneFailureThreshold int
	InactivityTimeout    time.Duration
}

// PaneBridge is the slice of the tmux bridge the reaper uses.
type PaneBridge interface {
	CheckHealth(ctx context.Context, pane string) (tmux.Health, error)
	CapturePane(ctx context.Context, pane string, lines int) (string, error)
}

// Reconnector rebinds an agent to a reappeared pane.
type Reconnector interface {
	Reconnect(ctx context.Context, agent *ent.Agent) (bool, error)
}

// Reaper is the periodic fleet janitor. All sweeps take the per-agent
// advisory lock with TryLock: a busy agent is skipped, never blocked on.
type Reaper struct {
	cfg      Config
	registry *registry.Registry
	agents   *services.AgentService
	activity *services.ActivityService
	bridge   PaneBridge
	reconn   Reconnector
	locks    *locks.Manager
	writer   *events.Writer
	pub      *events.Publisher

	failures map[int]int

	cancel context.CancelFunc
	done   chan struct{}
}

// NewReaper creates a reaper.
func NewReaper(
	cfg Config,
	reg *registry.Registry,
	agents *services.AgentService,
	activity *services.ActivityService,
	bridge PaneBridge,
	reconn Reconnector,
	lockManager *locks.Manager,
	writer *events.Writer,
	pub *events.Publisher,
) *Reaper {
	if cfg.Interval <= 0 {
		cfg.Interval = 60 * time.Second
	}
	if cfg.PaneFailureThreshold <= 0 {
		cfg.PaneFailureThreshold = 3
	}
	if cfg.InactivityTimeout <= 0 {
		cfg.InactivityTimeout = 30 * time.Minute
	}
	return &Reaper{
		cfg:      cfg,
		registry: reg,
		agents:   agents,
		activity: activity,
		bridge:   bridge,
		reconn:   reconn,
		locks:    lockManager,
		writer:   writer,
		pub:      pub,
		failures: make(map[int]int),
	}
}

// Start launches the sweep loop.
func (r *Reaper) Start(ctx context.Context) {
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	slog.Info("Reaper started",
		"interval", r.cfg.Interval,
		"pane_failure_threshold", r.cfg.PaneFailureThreshold,
		"inactivity_timeout", r.cfg.InactivityTimeout)
}

// Stop signals the loop to exit and waits for it to finish.
func (r *Reaper) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	slog.Info("Reaper stopped")
}

func (r *Reaper) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep runs one reaper pass. Exported for tests and manual triggering.
func (r *Reaper) Sweep(ctx context.Context) {
	r.closeStaleSessions(ctx)
	r.checkPanes(ctx)
}

// closeStaleSessions ends sessions idle past the inactivity timeout.
func (r *Reaper) closeStaleSessions(ctx context.Context) {
	for _, session := range r.registry.StaleSessions(r.cfg.InactivityTimeout) {
		r.CloseSession(ctx, session.SessionUUID, "timeout")
	}
}

// CloseSession ends one session with the given reason. Also serves as
// the watcher's inactivity callback.
func (r *Reaper) CloseSession(ctx context.Context, sessionUUID, reason string) {
	parsed, err := uuid.Parse(sessionUUID)
	if err != nil {
		r.registry.Remove(sessionUUID)
		return
	}

	agent, err := r.agents.GetBySessionUUID(ctx, parsed)
	if errors.Is(err, services.ErrNotFound) {
		r.registry.Remove(sessionUUID)
		return
	}
	if err != nil {
		slog.Error("Reaper: agent lookup failed", "session_uuid", sessionUUID, "error", err)
		return
	}

	release, ok := r.locks.TryLock(ctx, locks.NamespaceAgent, int64(agent.ID))
	if !ok {
		// Something else is working on this agent; next sweep retries.
		return
	}
	defer release()

	r.endAgent(ctx, agent, reason)
	r.registry.Remove(sessionUUID)
}

// checkPanes counts consecutive health failures per agent and, past the
// threshold, reconnects or ends. Healthy panes feed the context-usage
// sampler.
func (r *Reaper) checkPanes(ctx context.Context) {
	agents, err := r.agents.ListActive(ctx)
	if err != nil {
		slog.Error("Reaper: failed to list agents", "error", err)
		return
	}

	seen := make(map[int]bool, len(agents))
	for _, agent := range agents {
		if agent.TmuxPaneID == nil || *agent.TmuxPaneID == "" {
			continue
		}
		seen[agent.ID] = true

		health, err := r.bridge.CheckHealth(ctx, *agent.TmuxPaneID)
		if err != nil {
			slog.Warn("Reaper: pane health check errored", "agent_id", agent.ID, "error", err)
			continue
		}

		if health.Available && health.Running {
			r.failures[agent.ID] = 0
			r.sampleContext(ctx, agent)
			continue
		}

		r.failures[agent.ID]++
		if r.failures[agent.ID] < r.cfg.PaneFailureThreshold {
			continue
		}
		r.recoverOrEnd(ctx, agent)
	}

	// Drop counters for agents that ended or lost their pane binding.
	for id := range r.failures {
		if !seen[id] {
			delete(r.failures, id)
		}
	}
}

func (r *Reaper) recoverOrEnd(ctx context.Context, agent *ent.Agent) {
	release, ok := r.locks.TryLock(ctx, locks.NamespaceAgent, int64(agent.ID))
	if !ok {
		return
	}
	defer release()

	reconnected, err := r.reconn.Reconnect(ctx, agent)
	if err != nil {
		slog.Error("Reaper: reconnection failed", "agent_id", agent.ID, "error", err)
		return
	}
	if reconnected {
		r.failures[agent.ID] = 0
		return
	}

	r.endAgent(ctx, agent, "pane_lost")
	r.registry.Remove(agent.SessionUUID.String())
	delete(r.failures, agent.ID)
}

func (r *Reaper) endAgent(ctx context.Context, agent *ent.Agent, reason string) {
	if _, err := r.agents.End(ctx, agent.ID); err != nil {
		slog.Error("Reaper: failed to end agent", "agent_id", agent.ID, "error", err)
		return
	}

	if w := r.writer.Write(ctx, events.EventTypeSessionEnded, map[string]interface{}{
		"session_uuid": agent.SessionUUID.String(),
		"reason":       reason,
	}, events.WithAgent(agent.ID)); w.Err != nil {
		slog.Warn("Reaper: failed to record session_ended", "error", w.Err)
	}

	if r.pub != nil {
		id := agent.ID
		r.pub.Publish(ctx, events.StreamMessage{
			Type:    events.StreamSessionEnded,
			AgentID: &id,
			Reason:  reason,
		})
	}

	slog.Info("Reaper ended agent", "agent_id", agent.ID, "reason", reason)
}

// sampleContext captures the pane tail and persists any context-usage
// status line it finds.
func (r *Reaper) sampleContext(ctx context.Context, agent *ent.Agent) {
	captured, err := r.bridge.CapturePane(ctx, *agent.TmuxPaneID, 10)
	if err != nil {
		return
	}
	usage := tmux.ParseContextUsage(captured)
	if usage == nil {
		return
	}

	if err := r.agents.SetContextUsage(ctx, agent.ID, usage.PercentUsed, usage.RemainingTokens); err != nil {
		slog.Warn("Reaper: failed to store context usage", "agent_id", agent.ID, "error", err)
		return
	}
	if r.activity != nil {
		if err := r.activity.RecordSnapshot(ctx, agent.ID, usage.PercentUsed, usage.RemainingTokens, usage.Raw); err != nil {
			slog.Warn("Reaper: failed to store snapshot", "agent_id", agent.ID, "error", err)
		}
	}
}
