package cards

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	entcommand "github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/turn"
	"github.com/headspace-sh/headspace/pkg/services"
	testdb "github.com/headspace-sh/headspace/test/database"
)

type cardFixture struct {
	client    *ent.Client
	agents    *services.AgentService
	commands  *services.CommandService
	turns     *services.TurnService
	projector *Projector
}

func newCardFixture(t *testing.T) *cardFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	agents := services.NewAgentService(client)
	commands := services.NewCommandService(client)
	turns := services.NewTurnService(client)

	return &cardFixture{
		client:    client,
		agents:    agents,
		commands:  commands,
		turns:     turns,
		projector: NewProjector(agents, commands, turns, 3*time.Minute),
	}
}

func (f *cardFixture) newAgent(t *testing.T, ctx context.Context, path string) *ent.Agent {
	t.Helper()
	project, err := services.NewProjectService(f.client).FindOrCreateByPath(ctx, path)
	require.NoError(t, err)
	agent, err := f.agents.Register(ctx, services.RegisterInput{
		SessionUUID: uuid.New(),
		ProjectID:   project.ID,
	})
	require.NoError(t, err)
	return agent
}

func (f *cardFixture) loaded(t *testing.T, ctx context.Context, id int) *ent.Agent {
	t.Helper()
	agents, err := f.agents.ListActiveWithRefs(ctx)
	require.NoError(t, err)
	for _, a := range agents {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("agent %d not in active list", id)
	return nil
}

func TestProjector_IdleAgent(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	agent := f.newAgent(t, ctx, "/proj/alpha")

	card, err := f.projector.Project(ctx, f.loaded(t, ctx, agent.ID))
	require.NoError(t, err)

	assert.Equal(t, StateIdle, card.State)
	assert.Equal(t, "alpha", card.Project.Slug)
	assert.Nil(t, card.TaskInstruction)
	assert.Nil(t, card.Priority)
	assert.Len(t, card.HeroChars, 2)
	assert.Len(t, card.HeroTrail, 4)
	assert.NotEmpty(t, card.Uptime)
	assert.Equal(t, "just now", card.LastSeen)
}

func TestProjector_CommandStates(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	agent := f.newAgent(t, ctx, "/proj/beta")

	cmd, err := f.commands.Create(ctx, nil, agent.ID, "Fix the login flow so users can sign in again without retry loops or stale sessions blocking them", time.Now())
	require.NoError(t, err)

	card, err := f.projector.Project(ctx, f.loaded(t, ctx, agent.ID))
	require.NoError(t, err)
	assert.Equal(t, StateCommanded, card.State)
	require.NotNil(t, card.TaskInstruction, "full_command preview backfills missing instruction")

	_, err = f.commands.SetState(ctx, nil, cmd, entcommand.StateProcessing)
	require.NoError(t, err)
	_, err = f.turns.Create(ctx, nil, services.CreateTurnInput{
		CommandID: cmd.ID,
		Actor:     turn.ActorAgent,
		Intent:    turn.IntentProgress,
		Text:      "Reading auth middleware",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	card, err = f.projector.Project(ctx, f.loaded(t, ctx, agent.ID))
	require.NoError(t, err)
	assert.Equal(t, StateProcessing, card.State)
	assert.Equal(t, 1, card.TurnCount)
}

func TestProjector_TimedOutDerived(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	agent := f.newAgent(t, ctx, "/proj/gamma")

	cmd, err := f.commands.Create(ctx, nil, agent.ID, "Task", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = f.commands.SetState(ctx, nil, cmd, entcommand.StateProcessing)
	require.NoError(t, err)
	_, err = f.turns.Create(ctx, nil, services.CreateTurnInput{
		CommandID: cmd.ID,
		Actor:     turn.ActorAgent,
		Intent:    turn.IntentProgress,
		Text:      "working",
		Timestamp: time.Now().Add(-10 * time.Minute),
	})
	require.NoError(t, err)

	card, err := f.projector.Project(ctx, f.loaded(t, ctx, agent.ID))
	require.NoError(t, err)
	assert.Equal(t, StateTimedOut, card.State, "stale processing presents as timed out")

	// A fresh turn clears the derived state.
	_, err = f.turns.Create(ctx, nil, services.CreateTurnInput{
		CommandID: cmd.ID,
		Actor:     turn.ActorAgent,
		Intent:    turn.IntentProgress,
		Text:      "still working",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	card, err = f.projector.Project(ctx, f.loaded(t, ctx, agent.ID))
	require.NoError(t, err)
	assert.Equal(t, StateProcessing, card.State)
}

func TestProjector_CompletedCommand(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	agent := f.newAgent(t, ctx, "/proj/delta")

	cmd, err := f.commands.Create(ctx, nil, agent.ID, "Ship it", time.Now().Add(-5*time.Minute))
	require.NoError(t, err)
	_, err = f.commands.Complete(ctx, nil, cmd, "done")
	require.NoError(t, err)
	require.NoError(t, f.commands.SetSummaries(ctx, cmd.ID, "Ship the release", "Release shipped"))

	card, err := f.projector.Project(ctx, f.loaded(t, ctx, agent.ID))
	require.NoError(t, err)
	assert.Equal(t, StateComplete, card.State)
	require.NotNil(t, card.TaskInstruction)
	assert.Equal(t, "Ship the release", *card.TaskInstruction)
	require.NotNil(t, card.TaskCompletionSummary)
	assert.Equal(t, "Release shipped", *card.TaskCompletionSummary)
	assert.NotNil(t, card.Elapsed)
}

func TestProjector_ListStatusCounts(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()

	idle := f.newAgent(t, ctx, "/proj/one")
	working := f.newAgent(t, ctx, "/proj/two")
	waiting := f.newAgent(t, ctx, "/proj/three")
	_ = idle

	_, err := f.commands.Create(ctx, nil, working.ID, "Build", time.Now())
	require.NoError(t, err)

	cmd, err := f.commands.Create(ctx, nil, waiting.ID, "Ask", time.Now())
	require.NoError(t, err)
	_, err = f.commands.SetState(ctx, nil, cmd, entcommand.StateProcessing)
	require.NoError(t, err)
	_, err = f.commands.SetState(ctx, nil, cmd, entcommand.StateAwaitingInput)
	require.NoError(t, err)

	cardList, counts, err := f.projector.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cardList, 3)
	assert.Equal(t, 1, counts.InputNeeded)
	assert.Equal(t, 1, counts.Working)
	assert.Equal(t, 1, counts.Idle)
}

func TestHeroIdentifiers_Stable(t *testing.T) {
	id := uuid.New().String()
	chars1, trail1 := heroIdentifiers(id)
	chars2, trail2 := heroIdentifiers(id)
	assert.Equal(t, chars1, chars2)
	assert.Equal(t, trail1, trail2)

	other, _ := heroIdentifiers(uuid.New().String())
	_ = other // different UUIDs usually differ, but equality is not guaranteed
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at       time.Time
		expected string
	}{
		{now.Add(-2 * time.Second), "just now"},
		{now.Add(-30 * time.Second), "30s ago"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-90 * time.Minute), "1h 30m ago"},
		{now.Add(-49 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, relativeTime(now, tt.at))
	}
}
