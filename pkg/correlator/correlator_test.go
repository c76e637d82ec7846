package correlator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	entcommand "github.com/headspace-sh/headspace/ent/command"
	entevent "github.com/headspace-sh/headspace/ent/event"
	entturn "github.com/headspace-sh/headspace/ent/turn"
	"github.com/headspace-sh/headspace/pkg/database"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/locks"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/statemachine"
	testdb "github.com/headspace-sh/headspace/test/database"
)

type fixture struct {
	client   *database.Client
	agents   *services.AgentService
	commands *services.CommandService
	turns    *services.TurnService
	corr     *Correlator
	agent    *ent.Agent
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	agents := services.NewAgentService(client.Client)
	commands := services.NewCommandService(client.Client)
	turns := services.NewTurnService(client.Client)
	activity := services.NewActivityService(client.Client, 5*time.Minute)
	writer := events.NewWriter(client.Client, 2, 10*time.Millisecond)
	lockManager := locks.NewManager(client.DB())

	project, err := services.NewProjectService(client.Client).FindOrCreateByPath(ctx, "/work/demo")
	require.NoError(t, err)
	agent, err := agents.Register(ctx, services.RegisterInput{
		SessionUUID: uuid.New(),
		ProjectID:   project.ID,
	})
	require.NoError(t, err)

	corr := New(DefaultConfig(), client.Client, agents, commands, turns, activity, writer, nil, lockManager)
	return &fixture{
		client:   client,
		agents:   agents,
		commands: commands,
		turns:    turns,
		corr:     corr,
		agent:    agent,
	}
}

func userTurn(text string) TurnObservation {
	return TurnObservation{
		Actor:           statemachine.ActorUser,
		Text:            text,
		Timestamp:       time.Now(),
		TimestampSource: entturn.TimestampSourceHook,
	}
}

func agentTurn(text, hash string) TurnObservation {
	return TurnObservation{
		Actor:           statemachine.ActorAgent,
		Text:            text,
		Timestamp:       time.Now(),
		TimestampSource: entturn.TimestampSourceJsonl,
		ContentHash:     hash,
	}
}

func TestCorrelator_CommandLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// User prompt opens a command.
	out, err := f.corr.ObserveTurn(ctx, f.agent, userTurn("Fix login"))
	require.NoError(t, err)
	assert.True(t, out.CreatedCommand)
	assert.Equal(t, statemachine.StateIdle, out.FromState)
	assert.Equal(t, statemachine.StateCommanded, out.ToState)

	// First assistant progress: COMMANDED -> PROCESSING.
	out, err = f.corr.ObserveTurn(ctx, f.agent, agentTurn("Reading auth.go", "h1"))
	require.NoError(t, err)
	assert.True(t, out.Transitioned)
	assert.Equal(t, statemachine.StateProcessing, out.ToState)

	// Second progress: self-loop, turn recorded, no transition.
	out, err = f.corr.ObserveTurn(ctx, f.agent, agentTurn("Patching the check", "h2"))
	require.NoError(t, err)
	assert.False(t, out.Transitioned)
	assert.NotZero(t, out.TurnID)

	// Stop hook completes the command.
	out, err = f.corr.ObserveHook(ctx, f.agent, statemachine.HookStop)
	require.NoError(t, err)
	assert.True(t, out.Transitioned)
	assert.Equal(t, statemachine.StateComplete, out.ToState)

	cmd, err := f.commands.Get(ctx, out.CommandID)
	require.NoError(t, err)
	assert.Equal(t, entcommand.StateComplete, cmd.State)
	assert.NotNil(t, cmd.CompletedAt)

	// The durable log recorded the transitions.
	count, err := f.client.Event.Query().
		Where(entevent.EventTypeEQ(entevent.EventTypeStateTransition)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "idle->commanded, commanded->processing, processing->complete")
}

func TestCorrelator_StopFromCommanded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.corr.ObserveTurn(ctx, f.agent, userTurn("Quick task"))
	require.NoError(t, err)

	// Stop before any progress turn: command completes from COMMANDED.
	out, err := f.corr.ObserveHook(ctx, f.agent, statemachine.HookStop)
	require.NoError(t, err)
	assert.True(t, out.Transitioned)
	assert.Equal(t, statemachine.StateCommanded, out.FromState)
	assert.Equal(t, statemachine.StateComplete, out.ToState)
}

func TestCorrelator_QuestionAnswerFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.corr.ObserveTurn(ctx, f.agent, userTurn("Migrate the configs"))
	require.NoError(t, err)
	_, err = f.corr.ObserveTurn(ctx, f.agent, agentTurn("Looking at both environments", "p1"))
	require.NoError(t, err)

	// Question moves PROCESSING -> AWAITING_INPUT.
	out, err := f.corr.ObserveTurn(ctx, f.agent, agentTurn("Should I include staging?", "q1"))
	require.NoError(t, err)
	assert.Equal(t, statemachine.StateAwaitingInput, out.ToState)
	questionTurnID := out.TurnID

	// Answer moves back to PROCESSING and links the back-reference.
	out, err = f.corr.ObserveTurn(ctx, f.agent, userTurn("Yes, both."))
	require.NoError(t, err)
	assert.Equal(t, statemachine.StateProcessing, out.ToState)

	question, err := f.turns.Get(ctx, questionTurnID)
	require.NoError(t, err)
	require.NotNil(t, question.AnsweredByTurnID)
	assert.Equal(t, out.TurnID, *question.AnsweredByTurnID)

	// A question_detected event was logged.
	count, err := f.client.Event.Query().
		Where(entevent.EventTypeEQ(entevent.EventTypeQuestionDetected)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCorrelator_SiblingCommandOnDoublePrompt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.corr.ObserveTurn(ctx, f.agent, userTurn("First task"))
	require.NoError(t, err)
	_, err = f.corr.ObserveTurn(ctx, f.agent, agentTurn("Working on it", "w1"))
	require.NoError(t, err)

	// Second prompt while PROCESSING opens a sibling.
	second, err := f.corr.ObserveTurn(ctx, f.agent, userTurn("Also do this"))
	require.NoError(t, err)
	assert.True(t, second.CreatedCommand)
	assert.NotEqual(t, first.CommandID, second.CommandID)

	prev, err := f.commands.Get(ctx, first.CommandID)
	require.NoError(t, err)
	assert.Equal(t, entcommand.StateProcessing, prev.State, "previous sibling keeps its state")
}

func TestCorrelator_NotificationOnlyFromProcessing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.corr.ObserveTurn(ctx, f.agent, userTurn("Task"))
	require.NoError(t, err)

	// Notification while COMMANDED is a recorded no-op.
	out, err := f.corr.ObserveHook(ctx, f.agent, statemachine.HookNotification)
	require.NoError(t, err)
	assert.True(t, out.Rejected)

	_, err = f.corr.ObserveTurn(ctx, f.agent, agentTurn("On it", "n1"))
	require.NoError(t, err)

	out, err = f.corr.ObserveHook(ctx, f.agent, statemachine.HookNotification)
	require.NoError(t, err)
	assert.True(t, out.Transitioned)
	assert.Equal(t, statemachine.StateAwaitingInput, out.ToState)

	// Notification while AWAITING_INPUT is again a no-op.
	out, err = f.corr.ObserveHook(ctx, f.agent, statemachine.HookNotification)
	require.NoError(t, err)
	assert.True(t, out.Rejected)

	count, err := f.client.Event.Query().
		Where(entevent.EventTypeEQ(entevent.EventTypeStateTransitionRejected)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "both rejected notifications are traceable")
}

func TestCorrelator_DuplicateHashSilentSkip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.corr.ObserveTurn(ctx, f.agent, userTurn("Task"))
	require.NoError(t, err)

	obs := agentTurn("Identical transcript line", "dup1")
	first, err := f.corr.ObserveTurn(ctx, f.agent, obs)
	require.NoError(t, err)
	assert.NotZero(t, first.TurnID)

	// Ring catches the immediate replay.
	again, err := f.corr.ObserveTurn(ctx, f.agent, obs)
	require.NoError(t, err)
	assert.True(t, again.Duplicate)

	turns, err := f.turns.ListForCommand(ctx, first.CommandID)
	require.NoError(t, err)
	assert.Len(t, turns, 2, "command turn plus one progress turn")
}

func TestCorrelator_ConcurrentObservationsSerialize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.corr.ObserveTurn(ctx, f.agent, userTurn("Task"))
	require.NoError(t, err)

	// Concurrent handlers on one agent queue on the advisory lock; none
	// may error out, and every observation lands.
	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = f.corr.ObserveTurn(ctx, f.agent,
				agentTurn(fmt.Sprintf("Working on part %d", n), fmt.Sprintf("conc%d", n)))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "observation %d", i)
	}

	turns, err := f.turns.ListForCommand(ctx, out.CommandID)
	require.NoError(t, err)
	assert.Len(t, turns, 5, "command turn plus all four progress turns")
}

func TestCorrelator_AgentProgressWhileIdleRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.corr.ObserveTurn(ctx, f.agent, agentTurn("Orphan progress", "o1"))
	require.NoError(t, err)
	assert.True(t, out.Rejected)
	assert.Equal(t, statemachine.StateIdle, out.FromState)

	// last_seen_at still moved.
	refreshed, err := f.agents.Get(ctx, f.agent.ID)
	require.NoError(t, err)
	assert.True(t, refreshed.LastSeenAt.After(f.agent.LastSeenAt) || refreshed.LastSeenAt.Equal(f.agent.LastSeenAt))
}

func TestCorrelator_CommandRateLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	agents := services.NewAgentService(client.Client)
	commands := services.NewCommandService(client.Client)
	turns := services.NewTurnService(client.Client)
	writer := events.NewWriter(client.Client, 2, 10*time.Millisecond)
	lockManager := locks.NewManager(client.DB())

	project, err := services.NewProjectService(client.Client).FindOrCreateByPath(ctx, "/work/demo")
	require.NoError(t, err)
	agent, err := agents.Register(ctx, services.RegisterInput{SessionUUID: uuid.New(), ProjectID: project.ID})
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.CommandsPerMinute = 2
	corr := New(cfg, client.Client, agents, commands, turns, nil, writer, nil, lockManager)

	var limited bool
	for i := 0; i < 5; i++ {
		out, err := corr.ObserveTurn(ctx, agent, userTurn("prompt loop"))
		require.NoError(t, err)
		if out.RateLimited {
			limited = true
		}
	}
	assert.True(t, limited, "runaway prompting must hit the limiter")

	count, err := client.Command.Query().Count(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, count, 3, "burst capped")
}

func TestCorrelator_InternalTurnRecordedWithoutTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	opened, err := f.corr.ObserveTurn(ctx, f.agent, userTurn("Task"))
	require.NoError(t, err)

	out, err := f.corr.ObserveTurn(ctx, f.agent, userTurn(InternalMarker+" persona briefing"))
	require.NoError(t, err)
	assert.False(t, out.Transitioned)
	assert.NotZero(t, out.TurnID)

	turns, err := f.turns.ListForCommand(ctx, opened.CommandID)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.True(t, turns[1].IsInternal)

	cmd, err := f.commands.Get(ctx, opened.CommandID)
	require.NoError(t, err)
	assert.Equal(t, entcommand.StateCommanded, cmd.State, "internal turn never drives the state machine")
}
