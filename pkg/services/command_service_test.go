package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/command"
	testdb "github.com/headspace-sh/headspace/test/database"
)

func createTestAgent(t *testing.T, client *ent.Client) *ent.Agent {
	t.Helper()
	project := createTestProject(t, client, "/work/demo")
	a, err := NewAgentService(client).Register(context.Background(), RegisterInput{
		SessionUUID: uuid.New(),
		ProjectID:   project.ID,
	})
	require.NoError(t, err)
	return a
}

func TestCommandService_CreateAndOpen(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCommandService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client)

	_, err := svc.Open(ctx, nil, agent.ID)
	assert.ErrorIs(t, err, ErrNotFound, "no open command yet: agent is idle")

	cmd, err := svc.Create(ctx, nil, agent.ID, "Fix the login flow", time.Now())
	require.NoError(t, err)
	assert.Equal(t, command.StateCommanded, cmd.State)

	open, err := svc.Open(ctx, nil, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, cmd.ID, open.ID)
}

func TestCommandService_SiblingCommands(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCommandService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client)

	first, err := svc.Create(ctx, nil, agent.ID, "First task", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	second, err := svc.Create(ctx, nil, agent.ID, "Second task", time.Now())
	require.NoError(t, err)

	// Double-prompting leaves both commands live; Open returns the newest.
	open, err := svc.Open(ctx, nil, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, open.ID)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, command.StateCommanded, got.State, "earlier sibling keeps its state")
}

func TestCommandService_CompleteIsTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCommandService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client)
	cmd, err := svc.Create(ctx, nil, agent.ID, "Do the thing", time.Now())
	require.NoError(t, err)

	done, err := svc.Complete(ctx, nil, cmd, "All tests pass.")
	require.NoError(t, err)
	assert.Equal(t, command.StateComplete, done.State)
	require.NotNil(t, done.CompletedAt)
	assert.False(t, done.CompletedAt.Before(done.StartedAt), "completed_at >= started_at")

	_, err = svc.SetState(ctx, nil, done, command.StateProcessing)
	assert.ErrorIs(t, err, ErrTerminalState)

	// Complete again is a no-op, not an error.
	again, err := svc.Complete(ctx, nil, done, "")
	require.NoError(t, err)
	assert.Equal(t, done.ID, again.ID)
}

func TestCommandService_SummariesAfterCompletion(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCommandService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client)
	cmd, err := svc.Create(ctx, nil, agent.ID, "Fix flaky CI", time.Now())
	require.NoError(t, err)
	_, err = svc.Complete(ctx, nil, cmd, "done")
	require.NoError(t, err)

	require.NoError(t, svc.SetSummaries(ctx, cmd.ID, "Fix flaky CI job", "Pinned the container digest"))

	got, err := svc.Get(ctx, cmd.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Instruction)
	assert.Equal(t, "Fix flaky CI job", *got.Instruction)
	require.NotNil(t, got.CompletionSummary)
	assert.Equal(t, "Pinned the container digest", *got.CompletionSummary)
}

func TestCommandService_StatusCounts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCommandService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client)
	cmd1, err := svc.Create(ctx, nil, agent.ID, "One", time.Now())
	require.NoError(t, err)
	_, err = svc.SetState(ctx, nil, cmd1, command.StateProcessing)
	require.NoError(t, err)
	_, err = svc.Create(ctx, nil, agent.ID, "Two", time.Now())
	require.NoError(t, err)

	counts, err := svc.StatusCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["processing"])
	assert.Equal(t, 1, counts["commanded"])
	assert.Zero(t, counts["complete"], "complete commands are excluded")
}
