package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	testdb "github.com/headspace-sh/headspace/test/database"
)

func createTestProject(t *testing.T, client *ent.Client, path string) *ent.Project {
	t.Helper()
	p, err := NewProjectService(client).FindOrCreateByPath(context.Background(), path)
	require.NoError(t, err)
	return p
}

func TestAgentService_RegisterIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client, "/work/demo")
	sessionUUID := uuid.New()

	a1, err := svc.Register(ctx, RegisterInput{
		SessionUUID: sessionUUID,
		ProjectID:   project.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, a1.EndedAt)

	a2, err := svc.Register(ctx, RegisterInput{
		SessionUUID: sessionUUID,
		ProjectID:   project.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, a1.ID, a2.ID, "re-registration returns the existing agent")
}

func TestAgentService_RegisterRequiresSessionUUID(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)

	_, err := svc.Register(context.Background(), RegisterInput{})
	assert.True(t, IsValidationError(err))
}

func TestAgentService_EndIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client, "/work/demo")
	a, err := svc.Register(ctx, RegisterInput{SessionUUID: uuid.New(), ProjectID: project.ID})
	require.NoError(t, err)

	ended, err := svc.End(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, ended.EndedAt)
	firstEnd := *ended.EndedAt

	again, err := svc.End(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, again.EndedAt)
	assert.Equal(t, firstEnd.Unix(), again.EndedAt.Unix(), "second End keeps the original timestamp")

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestAgentService_PriorityTriplet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client, "/work/demo")
	a, err := svc.Register(ctx, RegisterInput{SessionUUID: uuid.New(), ProjectID: project.ID})
	require.NoError(t, err)

	require.NoError(t, svc.SetPriority(ctx, a.ID, 87, "blocking the release objective"))

	updated, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.PriorityScore)
	assert.Equal(t, 87, *updated.PriorityScore)
	require.NotNil(t, updated.PriorityReason)
	assert.Equal(t, "blocking the release objective", *updated.PriorityReason)
	assert.NotNil(t, updated.PriorityUpdatedAt)
}

func TestAgentService_HandoffUniquePerAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	project := createTestProject(t, client.Client, "/work/demo")
	a, err := svc.Register(ctx, RegisterInput{SessionUUID: uuid.New(), ProjectID: project.ID})
	require.NoError(t, err)

	_, err = svc.HandoffFor(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.RecordHandoff(ctx, a.ID, "context nearly exhausted; tests half-migrated"))
	err = svc.RecordHandoff(ctx, a.ID, "second briefing")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	h, err := svc.HandoffFor(ctx, a.ID)
	require.NoError(t, err)
	assert.Contains(t, h.Reason, "context nearly exhausted")
}
