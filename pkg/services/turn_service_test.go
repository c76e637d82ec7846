package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/turn"
	testdb "github.com/headspace-sh/headspace/test/database"
)

func createTestCommand(t *testing.T, client *ent.Client) *ent.Command {
	t.Helper()
	agent := createTestAgent(t, client)
	cmd, err := NewCommandService(client).Create(context.Background(), nil, agent.ID, "Test task", time.Now())
	require.NoError(t, err)
	return cmd
}

func TestTurnService_DuplicateHashIsConflict(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	cmd := createTestCommand(t, client.Client)
	input := CreateTurnInput{
		CommandID:       cmd.ID,
		Actor:           turn.ActorAgent,
		Intent:          turn.IntentProgress,
		Text:            "Reading auth.go",
		Timestamp:       time.Now(),
		TimestampSource: turn.TimestampSourceJsonl,
		JSONLEntryHash:  "a3f2c1",
	}

	first, err := svc.Create(ctx, nil, input)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = svc.Create(ctx, nil, input)
	assert.ErrorIs(t, err, ErrConflict, "same (command, hash) is a silent-skip conflict")

	turns, err := svc.ListForCommand(ctx, cmd.ID)
	require.NoError(t, err)
	assert.Len(t, turns, 1)
}

func TestTurnService_NullHashesCoexist(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	cmd := createTestCommand(t, client.Client)
	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, nil, CreateTurnInput{
			CommandID:       cmd.ID,
			Actor:           turn.ActorUser,
			Intent:          turn.IntentCommand,
			Text:            "hook-born turn",
			Timestamp:       time.Now(),
			TimestampSource: turn.TimestampSourceHook,
		})
		require.NoError(t, err, "NULL hashes must not collide")
	}

	turns, err := svc.ListForCommand(ctx, cmd.ID)
	require.NoError(t, err)
	assert.Len(t, turns, 2)
}

func TestTurnService_SameHashDifferentCommands(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	cmd1 := createTestCommand(t, client.Client)
	cmd2 := createTestCommand(t, client.Client)

	for _, id := range []int{cmd1.ID, cmd2.ID} {
		_, err := svc.Create(ctx, nil, CreateTurnInput{
			CommandID:       id,
			Actor:           turn.ActorAgent,
			Intent:          turn.IntentProgress,
			Text:            "same text",
			Timestamp:       time.Now(),
			TimestampSource: turn.TimestampSourceJsonl,
			JSONLEntryHash:  "shared-hash",
		})
		require.NoError(t, err, "uniqueness is scoped per command")
	}
}

func TestTurnService_QuestionAnswerBackReference(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	cmd := createTestCommand(t, client.Client)

	question, err := svc.Create(ctx, nil, CreateTurnInput{
		CommandID:       cmd.ID,
		Actor:           turn.ActorAgent,
		Intent:          turn.IntentQuestion,
		Text:            "Should I also migrate the staging config?",
		Timestamp:       time.Now().Add(-time.Second),
		TimestampSource: turn.TimestampSourceJsonl,
	})
	require.NoError(t, err)

	found, err := svc.LatestQuestion(ctx, nil, cmd.ID)
	require.NoError(t, err)
	assert.Equal(t, question.ID, found.ID)

	answer, err := svc.Create(ctx, nil, CreateTurnInput{
		CommandID:       cmd.ID,
		Actor:           turn.ActorUser,
		Intent:          turn.IntentAnswer,
		Text:            "Yes, both.",
		Timestamp:       time.Now(),
		TimestampSource: turn.TimestampSourceHook,
	})
	require.NoError(t, err)
	require.NoError(t, svc.LinkAnswer(ctx, nil, question.ID, answer.ID))

	// The question is now answered: no unanswered question remains.
	_, err = svc.LatestQuestion(ctx, nil, cmd.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(ctx, question.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AnsweredByTurnID)
	assert.Equal(t, answer.ID, *got.AnsweredByTurnID)
}

func TestTurnService_SummaryLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTurnService(client.Client)
	ctx := context.Background()

	cmd := createTestCommand(t, client.Client)
	created, err := svc.Create(ctx, nil, CreateTurnInput{
		CommandID:       cmd.ID,
		Actor:           turn.ActorAgent,
		Intent:          turn.IntentCompletion,
		Text:            "Finished migrating all twelve call sites.",
		Timestamp:       time.Now(),
		TimestampSource: turn.TimestampSourceJsonl,
	})
	require.NoError(t, err)

	pending, err := svc.Unsummarized(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, svc.SetSummary(ctx, created.ID, "Migrated call sites"))

	pending, err = svc.Unsummarized(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
