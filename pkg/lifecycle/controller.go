// Package lifecycle creates and terminates agents, delivers persona and
// guardrail injections, and rebinds agents to reappeared panes.
package lifecycle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/pkg/correlator"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/tmux"
)

// ErrMultiplexerMissing means the tmux binary is not installed.
var ErrMultiplexerMissing = errors.New("terminal multiplexer not installed")

// TerminalBridge is the slice of the tmux bridge the controller uses.
type TerminalBridge interface {
	NewSession(ctx context.Context, name, workdir, command string) (string, error)
	SendText(ctx context.Context, pane, text string) error
	ListPanes(ctx context.Context) ([]tmux.PaneInfo, error)
}

// Config holds the controller's tunables.
type Config struct {
	// REPLCommand is the agent binary spawned in new panes.
	REPLCommand string
	// GuardrailsPath locates the platform guardrail document injected
	// into every persona-bearing agent.
	GuardrailsPath string
	// PendingTTL bounds how long a spawned pane may wait for its
	// session_start hook before the creation intent is forgotten.
	PendingTTL time.Duration
}

// DefaultConfig returns the standard controller settings.
func DefaultConfig() Config {
	return Config{
		REPLCommand: "claude",
		PendingTTL:  10 * time.Minute,
	}
}

// Pending is a creation intent waiting for its session_start hook.
type Pending struct {
	TmuxSessionName string
	PaneID          string
	ProjectID       int
	PersonaID       *int
	PreviousAgentID *int
	CreatedAt       time.Time
}

// Receipt is what Create returns. Full readiness (prompt_injected_at)
// is reported asynchronously once the hook pipeline registers the
// session.
type Receipt struct {
	TmuxSessionName string `json:"tmux_session_name"`
	PaneID          string `json:"pane_id"`
	ProjectID       int    `json:"project_id"`
	ProjectSlug     string `json:"project_slug"`
}

// CreateInput describes a requested agent.
type CreateInput struct {
	ProjectID       int
	PersonaSlug     string
	PreviousAgentID *int
}

// Controller owns agent creation, injection, shutdown, and pane
// reconnection.
type Controller struct {
	cfg      Config
	projects *services.ProjectService
	agents   *services.AgentService
	personas *services.PersonaService
	bridge   TerminalBridge
	writer   *events.Writer
	pub      *events.Publisher

	mu      sync.Mutex
	pending map[int][]*Pending // keyed by project id, oldest first

	lookPath func(string) (string, error)
}

// NewController creates a lifecycle controller.
func NewController(
	cfg Config,
	projects *services.ProjectService,
	agents *services.AgentService,
	personas *services.PersonaService,
	bridge TerminalBridge,
	writer *events.Writer,
	pub *events.Publisher,
) *Controller {
	if cfg.REPLCommand == "" {
		cfg.REPLCommand = "claude"
	}
	if cfg.PendingTTL <= 0 {
		cfg.PendingTTL = 10 * time.Minute
	}
	return &Controller{
		cfg:      cfg,
		projects: projects,
		agents:   agents,
		personas: personas,
		bridge:   bridge,
		writer:   writer,
		pub:      pub,
		pending:  make(map[int][]*Pending),
		lookPath: exec.LookPath,
	}
}

// Create validates the request, spawns a detached REPL pane, and records
// the creation intent for adoption when the session_start hook fires.
func (c *Controller) Create(ctx context.Context, input CreateInput) (Receipt, error) {
	project, err := c.projects.Get(ctx, input.ProjectID)
	if err != nil {
		return Receipt{}, err
	}
	if _, err := os.Stat(project.Path); err != nil {
		return Receipt{}, services.NewValidationError("project", fmt.Sprintf("path %s not accessible", project.Path))
	}
	if _, err := c.lookPath("tmux"); err != nil {
		return Receipt{}, ErrMultiplexerMissing
	}

	var personaID *int
	if input.PersonaSlug != "" {
		persona, err := c.personas.GetBySlug(ctx, input.PersonaSlug)
		if err != nil {
			return Receipt{}, err
		}
		personaID = &persona.ID
	}
	if input.PreviousAgentID != nil {
		if _, err := c.agents.Get(ctx, *input.PreviousAgentID); err != nil {
			return Receipt{}, err
		}
	}

	name := mintSessionName(project.Slug)
	pane, err := c.bridge.NewSession(ctx, name, project.Path, c.cfg.REPLCommand)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to spawn agent session: %w", err)
	}

	c.mu.Lock()
	c.pending[project.ID] = append(c.pending[project.ID], &Pending{
		TmuxSessionName: name,
		PaneID:          pane,
		ProjectID:       project.ID,
		PersonaID:       personaID,
		PreviousAgentID: input.PreviousAgentID,
		CreatedAt:       time.Now(),
	})
	c.mu.Unlock()

	slog.Info("Agent session spawned",
		"tmux_session", name, "pane", pane, "project", project.Slug)

	return Receipt{
		TmuxSessionName: name,
		PaneID:          pane,
		ProjectID:       project.ID,
		ProjectSlug:     project.Slug,
	}, nil
}

// Adopt matches a freshly registered agent against a pending creation
// intent for its project, binds the pane, and performs injection. A
// registration with no matching intent (an externally started session)
// is a no-op.
func (c *Controller) Adopt(ctx context.Context, agent *ent.Agent) error {
	pending := c.claim(agent.ProjectID)
	if pending == nil {
		return nil
	}

	if err := c.agents.SetPane(ctx, agent.ID, pending.TmuxSessionName, pending.PaneID); err != nil {
		return fmt.Errorf("failed to bind pane: %w", err)
	}
	if err := c.agents.AssignRefs(ctx, agent.ID, pending.PersonaID, pending.PreviousAgentID); err != nil {
		return fmt.Errorf("failed to assign refs: %w", err)
	}

	return c.inject(ctx, agent.ID, pending)
}

// claim pops the oldest unexpired pending intent for a project.
func (c *Controller) claim(projectID int) *Pending {
	c.mu.Lock()
	defer c.mu.Unlock()

	queue := c.pending[projectID]
	cutoff := time.Now().Add(-c.cfg.PendingTTL)
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		if head.CreatedAt.Before(cutoff) {
			slog.Warn("Discarding expired creation intent",
				"tmux_session", head.TmuxSessionName, "project_id", projectID)
			continue
		}
		c.pending[projectID] = queue
		return head
	}
	delete(c.pending, projectID)
	return nil
}

// inject delivers the persona payload and the revival or handoff
// instruction, then stamps prompt_injected_at.
func (c *Controller) inject(ctx context.Context, agentID int, pending *Pending) error {
	var parts []string
	var guardrailsHash string

	if pending.PersonaID != nil {
		payload, hash, err := c.personaPayload(ctx, *pending.PersonaID)
		if err != nil {
			return err
		}
		parts = append(parts, payload)
		guardrailsHash = hash
	}

	if pending.PreviousAgentID != nil {
		instruction, err := c.successorInstruction(ctx, *pending.PreviousAgentID)
		if err != nil {
			return err
		}
		parts = append(parts, instruction)
	}

	if len(parts) > 0 {
		text := correlator.InternalMarker + " " + strings.Join(parts, "\n\n")
		if err := c.bridge.SendText(ctx, pending.PaneID, text); err != nil {
			return fmt.Errorf("failed to deliver injection: %w", err)
		}
	}

	if err := c.agents.MarkPromptInjected(ctx, agentID, guardrailsHash); err != nil {
		return err
	}
	c.publishRefresh(ctx, agentID, "prompt_injected")
	return nil
}

// personaPayload assembles skill content, optional experience content,
// and the platform guardrails. The returned hash identifies the
// guardrail document version stamped onto the agent.
func (c *Controller) personaPayload(ctx context.Context, personaID int) (string, string, error) {
	persona, err := c.personas.Get(ctx, personaID)
	if err != nil {
		return "", "", err
	}

	var parts []string

	if persona.SkillPath != nil {
		skill, err := os.ReadFile(*persona.SkillPath)
		if err != nil {
			return "", "", fmt.Errorf("failed to read skill document for %s: %w", persona.Slug, err)
		}
		parts = append(parts, string(skill))

		// Accumulated experience lives next to the skill document and is
		// optional.
		if exp, err := os.ReadFile(experiencePath(*persona.SkillPath)); err == nil {
			parts = append(parts, string(exp))
		}
	}

	var hash string
	if c.cfg.GuardrailsPath != "" {
		guardrails, err := os.ReadFile(c.cfg.GuardrailsPath)
		if err != nil {
			return "", "", fmt.Errorf("failed to read guardrails document: %w", err)
		}
		parts = append(parts, string(guardrails))
		sum := sha256.Sum256(guardrails)
		hash = hex.EncodeToString(sum[:])
	}

	return strings.Join(parts, "\n\n"), hash, nil
}

// successorInstruction picks revival or handoff based on whether the
// predecessor left a briefing.
func (c *Controller) successorInstruction(ctx context.Context, previousAgentID int) (string, error) {
	handoff, err := c.agents.HandoffFor(ctx, previousAgentID)
	if errors.Is(err, services.ErrNotFound) {
		return fmt.Sprintf(
			"You are resuming the work of agent %d. Review its transcript in this project before continuing.",
			previousAgentID), nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"You are taking over from agent %d. Handoff briefing:\n%s",
		previousAgentID, handoff.Reason), nil
}

// Shutdown is non-blocking: it sends /exit to the agent's pane and
// returns. The hook pipeline records session_ended when it fires. An
// agent with no pane binding is ended directly.
func (c *Controller) Shutdown(ctx context.Context, agentID int) error {
	agent, err := c.agents.Get(ctx, agentID)
	if err != nil {
		return err
	}
	if agent.EndedAt != nil {
		return nil
	}

	if agent.TmuxPaneID == nil || *agent.TmuxPaneID == "" {
		_, err := c.agents.End(ctx, agentID)
		return err
	}

	if err := c.bridge.SendText(ctx, *agent.TmuxPaneID, "/exit"); err != nil {
		return fmt.Errorf("failed to send exit: %w", err)
	}
	slog.Info("Agent shutdown requested", "agent_id", agentID, "pane", *agent.TmuxPaneID)
	return nil
}

// Reconnect scans for a fresh pane in the agent's project path running a
// REPL process, skipping the known-dead pane. When exactly one
// candidate exists the agent's pane binding updates; more than one
// candidate in the same working directory is ambiguous and skipped with
// a diagnostic event.
func (c *Controller) Reconnect(ctx context.Context, agent *ent.Agent) (bool, error) {
	project, err := c.projects.Get(ctx, agent.ProjectID)
	if err != nil {
		return false, err
	}

	panes, err := c.bridge.ListPanes(ctx)
	if err != nil {
		return false, err
	}

	deadPane := ""
	if agent.TmuxPaneID != nil {
		deadPane = *agent.TmuxPaneID
	}

	var candidates []tmux.PaneInfo
	for _, pane := range panes {
		if pane.PaneID == deadPane {
			continue
		}
		if pane.WorkingDirectory == project.Path && tmux.IsREPLCommand(pane.CurrentCommand) {
			candidates = append(candidates, pane)
		}
	}

	switch len(candidates) {
	case 0:
		return false, nil
	case 1:
		match := candidates[0]
		if err := c.agents.SetPane(ctx, agent.ID, match.SessionName, match.PaneID); err != nil {
			return false, err
		}
		slog.Info("Agent reconnected to pane",
			"agent_id", agent.ID, "pane", match.PaneID, "session", match.SessionName)
		c.publishRefresh(ctx, agent.ID, "reconnected")
		return true, nil
	default:
		if w := c.writer.Write(ctx, events.EventTypeReconnectionAmbiguous, map[string]interface{}{
			"working_directory": project.Path,
			"candidate_panes":   len(candidates),
		}, events.WithAgent(agent.ID)); w.Err != nil {
			slog.Warn("Failed to record ambiguous reconnection", "error", w.Err)
		}
		slog.Warn("Ambiguous pane reconnection skipped",
			"agent_id", agent.ID, "candidates", len(candidates))
		return false, nil
	}
}

// PendingCount reports queued creation intents, for health output.
func (c *Controller) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, queue := range c.pending {
		n += len(queue)
	}
	return n
}

func (c *Controller) publishRefresh(ctx context.Context, agentID int, reason string) {
	if c.pub == nil {
		return
	}
	c.pub.Publish(ctx, events.StreamMessage{
		Type:    events.StreamCardRefresh,
		AgentID: &agentID,
		Reason:  reason,
	})
}

// experiencePath derives the optional experience document's location
// from the skill document: dev.md -> dev.experience.md.
func experiencePath(skillPath string) string {
	ext := filepath.Ext(skillPath)
	return strings.TrimSuffix(skillPath, ext) + ".experience" + ext
}

// mintSessionName builds hs-<project-slug>-<nonce>.
func mintSessionName(slug string) string {
	nonce := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("hs-%s-%s", slug, nonce)
}
