package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent/inferencecall"
	testdb "github.com/headspace-sh/headspace/test/database"
)

func TestObjectiveService_SetReplacesCurrent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewObjectiveService(client.Client)
	ctx := context.Background()

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	first, err := svc.Set(ctx, "Ship the billing rewrite", true)
	require.NoError(t, err)
	assert.True(t, first.PriorityEnabled)

	second, err := svc.Set(ctx, "Stabilise the release branch", false)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "single live objective, updated in place")

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Stabilise the release branch", current.Text)
	assert.False(t, current.PriorityEnabled)
}

func TestInferenceLogService_RecordAndCacheProbe(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewInferenceLogService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client)

	_, err := svc.Record(ctx, RecordCallInput{
		Level:            inferencecall.LevelPriority,
		InputHash:        "deadbeef",
		PromptTokens:     120,
		CompletionTokens: 40,
		CostUSD:          0.0031,
		LatencyMS:        420,
		AgentID:          &agent.ID,
	})
	require.NoError(t, err)

	hit, err := svc.CachedResult(ctx, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, 120, hit.PromptTokens)

	_, err = svc.CachedResult(ctx, "unseen")
	assert.ErrorIs(t, err, ErrNotFound)
}
