package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entevent "github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/pkg/events"
	testdb "github.com/headspace-sh/headspace/test/database"
)

func TestWriter_WritesValidEvent(t *testing.T) {
	db := testdb.NewTestClient(t)
	w := events.NewWriter(db.Client, 2, 10*time.Millisecond)
	ctx := context.Background()

	result := w.Write(ctx, events.EventTypeSessionRegistered, map[string]interface{}{
		"session_uuid": uuid.New().String(),
		"project_path": "/proj/api",
	})
	require.NoError(t, result.Err)
	assert.True(t, result.Success)
	assert.Zero(t, result.Retries)

	row, err := db.Client.Event.Get(ctx, result.EventID)
	require.NoError(t, err)
	assert.Equal(t, entevent.EventTypeSessionRegistered, row.EventType)
	assert.Equal(t, "/proj/api", row.Payload["project_path"])

	m := w.Metrics()
	assert.EqualValues(t, 1, m.Total)
	assert.EqualValues(t, 1, m.Successful)
	require.NotNil(t, m.LastWriteTimestamp)
}

func TestWriter_InvalidPayloadNeverTouchesStore(t *testing.T) {
	db := testdb.NewTestClient(t)
	w := events.NewWriter(db.Client, 2, 10*time.Millisecond)
	ctx := context.Background()

	result := w.Write(ctx, events.EventTypeSessionEnded, map[string]interface{}{
		"session_uuid": uuid.New().String(),
		// "reason" is required and missing.
	})
	require.Error(t, result.Err)
	assert.False(t, result.Success)

	count, err := db.Client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	m := w.Metrics()
	assert.EqualValues(t, 1, m.Failed)
	assert.NotEmpty(t, m.LastError)
}

func TestWriter_ForeignKeysAttached(t *testing.T) {
	db := testdb.NewTestClient(t)
	w := events.NewWriter(db.Client, 2, 10*time.Millisecond)
	ctx := context.Background()

	project, err := db.Client.Project.Create().
		SetSlug("api").SetName("api").SetPath("/proj/api").Save(ctx)
	require.NoError(t, err)
	agent, err := db.Client.Agent.Create().
		SetSessionUUID(uuid.New()).SetProjectID(project.ID).Save(ctx)
	require.NoError(t, err)

	result := w.Write(ctx, events.EventTypeHookSessionStart, map[string]interface{}{
		"session_uuid":      agent.SessionUUID.String(),
		"working_directory": "/proj/api",
	}, events.WithAgent(agent.ID), events.WithProject(project.ID))
	require.NoError(t, result.Err)

	row, err := db.Client.Event.Get(ctx, result.EventID)
	require.NoError(t, err)
	require.NotNil(t, row.AgentID)
	assert.Equal(t, agent.ID, *row.AgentID)
	require.NotNil(t, row.ProjectID)
	assert.Equal(t, project.ID, *row.ProjectID)
}

func TestWriter_PassThroughRidesCallerTransaction(t *testing.T) {
	db := testdb.NewTestClient(t)
	w := events.NewWriter(db.Client, 2, 10*time.Millisecond)
	ctx := context.Background()

	tx, err := db.Client.Tx(ctx)
	require.NoError(t, err)

	result := w.Write(ctx, events.EventTypeSessionRegistered, map[string]interface{}{
		"session_uuid": uuid.New().String(),
		"project_path": "/proj/tx",
	}, events.WithTx(tx))
	require.NoError(t, result.Err)
	assert.True(t, result.Success)

	// The event is invisible until the caller commits, and vanishes with
	// a rollback.
	require.NoError(t, tx.Rollback())
	count, err := db.Client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
