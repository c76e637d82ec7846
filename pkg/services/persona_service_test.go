package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent/persona"
	testdb "github.com/headspace-sh/headspace/test/database"
)

func TestPersonaService_RegisterUpsertsBySlug(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPersonaService(client.Client)
	ctx := context.Background()

	p1, err := svc.Register(ctx, RegisterPersonaInput{
		Slug: "backend-reviewer",
		Name: "Backend Reviewer",
	})
	require.NoError(t, err)
	assert.Equal(t, persona.StatusActive, p1.Status)

	p2, err := svc.Register(ctx, RegisterPersonaInput{
		Slug:        "backend-reviewer",
		Name:        "Backend Reviewer v2",
		Description: "Reviews Go services",
	})
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID, "same slug updates in place")
	assert.Equal(t, "Backend Reviewer v2", p2.Name)
}

func TestPersonaService_ArchiveAndReactivate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPersonaService(client.Client)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterPersonaInput{Slug: "tester", Name: "Tester"})
	require.NoError(t, err)

	require.NoError(t, svc.Archive(ctx, "tester"))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	archived, err := svc.GetBySlug(ctx, "tester")
	require.NoError(t, err)
	assert.Equal(t, persona.StatusArchived, archived.Status)
	assert.NotNil(t, archived.ArchivedAt)

	// Re-registering an archived slug reactivates it.
	reborn, err := svc.Register(ctx, RegisterPersonaInput{Slug: "tester", Name: "Tester"})
	require.NoError(t, err)
	assert.Equal(t, persona.StatusActive, reborn.Status)
	assert.Nil(t, reborn.ArchivedAt)
}

func TestPersonaService_ValidatesInput(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPersonaService(client.Client)

	_, err := svc.Register(context.Background(), RegisterPersonaInput{Name: "No Slug"})
	assert.True(t, IsValidationError(err))

	_, err = svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
