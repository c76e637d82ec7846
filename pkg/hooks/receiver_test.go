package hooks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entcommand "github.com/headspace-sh/headspace/ent/command"
	entevent "github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/pkg/correlator"
	"github.com/headspace-sh/headspace/pkg/database"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/locks"
	"github.com/headspace-sh/headspace/pkg/registry"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/statemachine"
	testdb "github.com/headspace-sh/headspace/test/database"
)

type noterSpy struct{ count int }

func (n *noterSpy) NoteHookActivity() { n.count++ }

type hookFixture struct {
	client   *database.Client
	reg      *registry.Registry
	receiver *Receiver
	noter    *noterSpy
	commands *services.CommandService
	agents   *services.AgentService
}

func newHookFixture(t *testing.T) *hookFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	reg := registry.New()
	projects := services.NewProjectService(client.Client)
	agents := services.NewAgentService(client.Client)
	commands := services.NewCommandService(client.Client)
	turns := services.NewTurnService(client.Client)
	writer := events.NewWriter(client.Client, 2, 10*time.Millisecond)
	lockManager := locks.NewManager(client.DB())
	corr := correlator.New(correlator.DefaultConfig(), client.Client, agents, commands, turns, nil, writer, nil, lockManager)
	noter := &noterSpy{}

	return &hookFixture{
		client:   client,
		reg:      reg,
		receiver: NewReceiver(reg, projects, agents, corr, writer, nil, noter),
		noter:    noter,
		commands: commands,
		agents:   agents,
	}
}

func TestReceiver_SessionLifecycle(t *testing.T) {
	f := newHookFixture(t)
	ctx := context.Background()
	sessionID := uuid.New().String()

	agent, err := f.receiver.SessionStart(ctx, Request{
		SessionUUID:      sessionID,
		WorkingDirectory: "/proj",
	})
	require.NoError(t, err)
	assert.Nil(t, agent.EndedAt)
	assert.Equal(t, 1, f.reg.Len(), "session registered in the runtime registry")

	// user_prompt_submit opens a command.
	out, err := f.receiver.UserPrompt(ctx, Request{SessionUUID: sessionID, Prompt: "Fix login"})
	require.NoError(t, err)
	assert.True(t, out.CreatedCommand)

	cmd, err := f.commands.Get(ctx, out.CommandID)
	require.NoError(t, err)
	assert.Equal(t, entcommand.StateCommanded, cmd.State)
	require.NotNil(t, cmd.FullCommand)
	assert.Equal(t, "Fix login", *cmd.FullCommand)

	// stop completes it.
	out, err = f.receiver.Stop(ctx, Request{SessionUUID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, statemachine.StateComplete, out.ToState)

	// session_end terminates the agent and clears the registry.
	require.NoError(t, f.receiver.SessionEnd(ctx, Request{SessionUUID: sessionID}))
	assert.Zero(t, f.reg.Len())

	ended, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.NotNil(t, ended.EndedAt)

	assert.GreaterOrEqual(t, f.noter.count, 4, "every hook switches the watcher regime")
}

func TestReceiver_SessionStartIdempotent(t *testing.T) {
	f := newHookFixture(t)
	ctx := context.Background()
	sessionID := uuid.New().String()

	a1, err := f.receiver.SessionStart(ctx, Request{SessionUUID: sessionID, WorkingDirectory: "/proj"})
	require.NoError(t, err)
	a2, err := f.receiver.SessionStart(ctx, Request{SessionUUID: sessionID, WorkingDirectory: "/proj"})
	require.NoError(t, err)
	assert.Equal(t, a1.ID, a2.ID)
	assert.Equal(t, 1, f.reg.Len())
}

func TestReceiver_UnknownSession(t *testing.T) {
	f := newHookFixture(t)
	ctx := context.Background()

	_, err := f.receiver.Stop(ctx, Request{SessionUUID: uuid.New().String()})
	assert.True(t, IsUnknownSession(err))

	_, err = f.receiver.UserPrompt(ctx, Request{SessionUUID: "not-a-uuid", Prompt: "x"})
	assert.True(t, services.IsValidationError(err))
}

func TestReceiver_HookEventsRecorded(t *testing.T) {
	f := newHookFixture(t)
	ctx := context.Background()
	sessionID := uuid.New().String()

	_, err := f.receiver.SessionStart(ctx, Request{SessionUUID: sessionID, WorkingDirectory: "/proj"})
	require.NoError(t, err)
	_, err = f.receiver.UserPrompt(ctx, Request{SessionUUID: sessionID, Prompt: "Task"})
	require.NoError(t, err)
	_, err = f.receiver.Notification(ctx, Request{SessionUUID: sessionID, Message: "Needs permission"})
	require.NoError(t, err)
	require.NoError(t, f.receiver.PostToolUse(ctx, Request{SessionUUID: sessionID, ToolName: "bash"}, false))

	for _, kind := range []entevent.EventType{
		entevent.EventTypeHookSessionStart,
		entevent.EventTypeSessionRegistered,
		entevent.EventTypeHookUserPrompt,
		entevent.EventTypeHookNotification,
		entevent.EventTypeHookPostToolUse,
	} {
		count, err := f.client.Event.Query().Where(entevent.EventTypeEQ(kind)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "expected one %s event", kind)
	}
}

func TestReceiver_SessionEndWaitsForAgentLock(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	reg := registry.New()
	projects := services.NewProjectService(client.Client)
	agents := services.NewAgentService(client.Client)
	commands := services.NewCommandService(client.Client)
	turns := services.NewTurnService(client.Client)
	writer := events.NewWriter(client.Client, 2, 10*time.Millisecond)
	cfg := correlator.DefaultConfig()
	cfg.LockTimeout = 300 * time.Millisecond
	corr := correlator.New(cfg, client.Client, agents, commands, turns, nil, writer, nil, locks.NewManager(client.DB()))
	receiver := NewReceiver(reg, projects, agents, corr, writer, nil, &noterSpy{})

	sessionID := uuid.New().String()
	agent, err := receiver.SessionStart(ctx, Request{SessionUUID: sessionID, WorkingDirectory: "/proj"})
	require.NoError(t, err)

	// While another session holds the agent lock, teardown must not
	// mutate agent state behind its back.
	foreign := locks.NewManager(client.DB())
	_, release, err := foreign.Lock(ctx, locks.NamespaceAgent, int64(agent.ID), 5*time.Second)
	require.NoError(t, err)

	err = receiver.SessionEnd(ctx, Request{SessionUUID: sessionID})
	assert.ErrorIs(t, err, locks.ErrLockTimeout)
	assert.Equal(t, 1, reg.Len(), "a blocked teardown leaves the session registered")

	got, err := agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EndedAt, "a blocked teardown leaves the agent live")

	release()

	require.NoError(t, receiver.SessionEnd(ctx, Request{SessionUUID: sessionID}))
	assert.Equal(t, 0, reg.Len())
}

func TestReceiver_NotificationWhileCommandedIsNoOp(t *testing.T) {
	f := newHookFixture(t)
	ctx := context.Background()
	sessionID := uuid.New().String()

	_, err := f.receiver.SessionStart(ctx, Request{SessionUUID: sessionID, WorkingDirectory: "/proj"})
	require.NoError(t, err)
	out, err := f.receiver.UserPrompt(ctx, Request{SessionUUID: sessionID, Prompt: "Task"})
	require.NoError(t, err)

	rejected, err := f.receiver.Notification(ctx, Request{SessionUUID: sessionID, Message: "ping"})
	require.NoError(t, err)
	assert.True(t, rejected.Rejected)

	cmd, err := f.commands.Get(ctx, out.CommandID)
	require.NoError(t, err)
	assert.Equal(t, entcommand.StateCommanded, cmd.State)
}
