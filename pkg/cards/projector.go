// Package cards is the read-side projection of agents into dashboard
// card payloads. It never writes: everything here is derived from the
// agent row, its newest command, and that command's turns.
package cards

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/headspace-sh/headspace/ent"
	entcommand "github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/pkg/services"
)

// Card states as they cross the wire. Enums stay server-side; the JSON
// carries plain uppercase strings.
const (
	StateIdle          = "IDLE"
	StateCommanded     = "COMMANDED"
	StateProcessing    = "PROCESSING"
	StateAwaitingInput = "AWAITING_INPUT"
	StateComplete      = "COMPLETE"
	StateTimedOut      = "TIMED_OUT"
)

// ProjectRef is the card's embedded project summary.
type ProjectRef struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Card is one agent's dashboard payload.
type Card struct {
	ID          int        `json:"id"`
	SessionUUID string     `json:"session_uuid"`
	Project     ProjectRef `json:"project"`
	Persona     *string    `json:"persona,omitempty"`

	State    string `json:"state"`
	Uptime   string `json:"uptime"`
	LastSeen string `json:"last_seen"`

	TaskSummary           *string `json:"task_summary"`
	TaskInstruction       *string `json:"task_instruction"`
	TaskCompletionSummary *string `json:"task_completion_summary"`

	Priority       *int    `json:"priority"`
	PriorityReason *string `json:"priority_reason"`

	TurnCount int     `json:"turn_count"`
	Elapsed   *string `json:"elapsed,omitempty"`

	ContextPercentUsed *int `json:"context_percent_used,omitempty"`

	HeroChars string   `json:"hero_chars"`
	HeroTrail []string `json:"hero_trail"`
}

// StatusCounts is the fleet-level aggregate shown next to the card list.
type StatusCounts struct {
	InputNeeded int `json:"input_needed"`
	Working     int `json:"working"`
	Idle        int `json:"idle"`
}

// Projector builds cards from the persistence layer.
type Projector struct {
	agents   *services.AgentService
	commands *services.CommandService
	turns    *services.TurnService

	staleProcessing time.Duration
	now             func() time.Time
}

// NewProjector creates a card projector. staleProcessing is the age of
// the newest turn past which a PROCESSING command presents as TIMED_OUT.
func NewProjector(agents *services.AgentService, commands *services.CommandService, turns *services.TurnService, staleProcessing time.Duration) *Projector {
	return &Projector{
		agents:          agents,
		commands:        commands,
		turns:           turns,
		staleProcessing: staleProcessing,
		now:             time.Now,
	}
}

// List projects every active agent plus the fleet status counts.
func (p *Projector) List(ctx context.Context) ([]Card, StatusCounts, error) {
	agents, err := p.agents.ListActiveWithRefs(ctx)
	if err != nil {
		return nil, StatusCounts{}, err
	}

	cards := make([]Card, 0, len(agents))
	var counts StatusCounts
	for _, agent := range agents {
		card, err := p.Project(ctx, agent)
		if err != nil {
			return nil, StatusCounts{}, fmt.Errorf("failed to project agent %d: %w", agent.ID, err)
		}
		cards = append(cards, card)

		switch card.State {
		case StateAwaitingInput:
			counts.InputNeeded++
		case StateCommanded, StateProcessing, StateTimedOut:
			counts.Working++
		default:
			counts.Idle++
		}
	}
	return cards, counts, nil
}

// Project builds the card for one agent. The agent's project edge must
// be loaded; persona is optional.
func (p *Projector) Project(ctx context.Context, agent *ent.Agent) (Card, error) {
	now := p.now()

	card := Card{
		ID:                 agent.ID,
		SessionUUID:        agent.SessionUUID.String(),
		State:              StateIdle,
		Uptime:             formatDuration(now.Sub(agent.StartedAt)),
		LastSeen:           relativeTime(now, agent.LastSeenAt),
		Priority:           agent.PriorityScore,
		PriorityReason:     agent.PriorityReason,
		ContextPercentUsed: agent.ContextPercentUsed,
	}
	card.HeroChars, card.HeroTrail = heroIdentifiers(agent.SessionUUID.String())

	if project := agent.Edges.Project; project != nil {
		card.Project = ProjectRef{ID: project.ID, Slug: project.Slug, Name: project.Name}
	} else {
		card.Project = ProjectRef{ID: agent.ProjectID}
	}
	if persona := agent.Edges.Persona; persona != nil {
		card.Persona = &persona.Slug
	}

	cmds, err := p.commands.ListForAgent(ctx, agent.ID, 1)
	if err != nil {
		return Card{}, err
	}
	if len(cmds) == 0 {
		return card, nil
	}
	cmd := cmds[0]

	card.State = strings.ToUpper(string(cmd.State))
	card.TaskInstruction = cmd.Instruction
	card.TaskCompletionSummary = cmd.CompletionSummary
	if card.TaskInstruction == nil && cmd.FullCommand != nil {
		preview := previewText(*cmd.FullCommand)
		card.TaskInstruction = &preview
	}

	turns, err := p.turns.ListForCommand(ctx, cmd.ID)
	if err != nil {
		return Card{}, err
	}
	card.TurnCount = len(turns)
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Summary != nil {
			card.TaskSummary = turns[i].Summary
			break
		}
	}

	if cmd.State == entcommand.StateProcessing && len(turns) > 0 {
		last := turns[len(turns)-1].Timestamp
		if now.Sub(last) > p.staleProcessing {
			card.State = StateTimedOut
		}
	}

	if cmd.State == entcommand.StateComplete && cmd.CompletedAt != nil {
		elapsed := formatDuration(cmd.CompletedAt.Sub(cmd.StartedAt))
		card.Elapsed = &elapsed
	}

	return card, nil
}

// heroIdentifiers derives the card's stable visual identity from the
// session UUID: two leading glyph characters plus a four-step trail.
func heroIdentifiers(sessionUUID string) (string, []string) {
	hex := strings.ToUpper(strings.ReplaceAll(sessionUUID, "-", ""))
	if len(hex) < 10 {
		return "??", nil
	}
	trail := make([]string, 0, 4)
	for i := 2; i < 10; i += 2 {
		trail = append(trail, hex[i:i+2])
	}
	return hex[:2], trail
}

// relativeTime renders a human-friendly "ago" string.
func relativeTime(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < 10*time.Second:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh %dm ago", int(d.Hours()), int(d.Minutes())%60)
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// formatDuration renders an uptime/elapsed duration compactly.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	default:
		return fmt.Sprintf("%dd %dh", int(d.Hours())/24, int(d.Hours())%24)
	}
}

func previewText(text string) string {
	const max = 200
	if len(text) <= max {
		return text
	}
	return text[:max] + "…"
}
