package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/headspace-sh/headspace/test/database"
)

func TestProjectService_FindOrCreateByPath(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	p1, err := svc.FindOrCreateByPath(ctx, "/home/dev/billing-api/")
	require.NoError(t, err)
	assert.Equal(t, "billing-api", p1.Slug)
	assert.Equal(t, "/home/dev/billing-api", p1.Path, "trailing separator stripped")

	// Second call with the same path returns the same row.
	p2, err := svc.FindOrCreateByPath(ctx, "/home/dev/billing-api")
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID)
}

func TestProjectService_SlugCollisionDisambiguated(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	p1, err := svc.FindOrCreateByPath(ctx, "/home/alice/api")
	require.NoError(t, err)
	p2, err := svc.FindOrCreateByPath(ctx, "/home/bob/api")
	require.NoError(t, err)

	assert.NotEqual(t, p1.ID, p2.ID)
	assert.NotEqual(t, p1.Slug, p2.Slug)
}

func TestProjectService_InferencePauseRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	p, err := svc.FindOrCreateByPath(ctx, "/home/dev/demo")
	require.NoError(t, err)

	paused, err := svc.InferencePaused(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, paused)

	require.NoError(t, svc.PauseInference(ctx, p.ID, "cost cap reached"))
	updated, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, updated.InferencePaused)
	require.NotNil(t, updated.InferencePausedReason)
	assert.Equal(t, "cost cap reached", *updated.InferencePausedReason)
	assert.NotNil(t, updated.InferencePausedAt)

	require.NoError(t, svc.ResumeInference(ctx, p.ID))
	resumed, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, resumed.InferencePaused)
	assert.Nil(t, resumed.InferencePausedReason)
	assert.Nil(t, resumed.InferencePausedAt)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "billing-api", Slugify("/home/dev/Billing_API"))
	assert.Equal(t, "project", Slugify("///"))
}
