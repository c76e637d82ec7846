package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/headspace-sh/headspace/test/database"
)

func TestActivityService_ThreeScopeBump(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewActivityService(client.Client, 5*time.Minute)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client)
	now := time.Now()

	require.NoError(t, svc.RecordTurn(ctx, agent.ID, agent.ProjectID, now))
	require.NoError(t, svc.RecordTurn(ctx, agent.ID, agent.ProjectID, now))
	require.NoError(t, svc.RecordCommand(ctx, agent.ID, agent.ProjectID, now))

	metrics, err := client.ActivityMetric.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, metrics, 3, "agent scope, project scope, overall scope")

	for _, m := range metrics {
		assert.Equal(t, 2, m.TurnCount)
		assert.Equal(t, 1, m.CommandCount)
		assert.Equal(t, svc.Bucket(now), m.BucketStart.UTC())
	}
}

func TestActivityService_SeparateBuckets(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewActivityService(client.Client, 5*time.Minute)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, svc.RecordTurn(ctx, agent.ID, agent.ProjectID, base))
	require.NoError(t, svc.RecordTurn(ctx, agent.ID, agent.ProjectID, base.Add(7*time.Minute)))

	forAgent, err := svc.RecentForAgent(ctx, agent.ID, base.Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, forAgent, 2, "two distinct five-minute buckets")
}

func TestActivityService_Snapshots(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewActivityService(client.Client, 5*time.Minute)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client)

	require.NoError(t, svc.RecordSnapshot(ctx, agent.ID, 42, "83k", "[ctx: 42% used, 83k remaining]"))
	require.NoError(t, svc.RecordSnapshot(ctx, agent.ID, 55, "61k", "[ctx: 55% used, 61k remaining]"))

	snaps, err := svc.SnapshotsForAgent(ctx, agent.ID, 0)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, 42, snaps[0].ContextPercentUsed)
	assert.Equal(t, 55, snaps[1].ContextPercentUsed)
}
