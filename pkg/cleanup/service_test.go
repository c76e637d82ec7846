package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	entevent "github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/pkg/config"
	"github.com/headspace-sh/headspace/pkg/services"
	testdb "github.com/headspace-sh/headspace/test/database"
)

func seedEvent(t *testing.T, ctx context.Context, client *ent.Client, age time.Duration) {
	t.Helper()
	err := client.Event.Create().
		SetEventType(entevent.EventTypeHookReceived).
		SetPayload(map[string]interface{}{"kind": "stop"}).
		SetCreatedAt(time.Now().Add(-age)).
		Exec(ctx)
	require.NoError(t, err)
}

func seedAPILog(t *testing.T, ctx context.Context, client *ent.Client, age time.Duration) {
	t.Helper()
	err := client.ApiCallLog.Create().
		SetMethod("GET").
		SetPath("/api/agents").
		SetStatus(200).
		SetLatencyMs(4).
		SetAuthenticated(false).
		SetTruncated(false).
		SetCreatedAt(time.Now().Add(-age)).
		Exec(ctx)
	require.NoError(t, err)
}

func TestRunOnce_DeletesExpiredEvents(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	seedEvent(t, ctx, client, 2*time.Hour)
	seedEvent(t, ctx, client, time.Minute)

	svc := NewService(config.RetentionConfig{EventTTL: time.Hour, CleanupInterval: time.Hour},
		services.NewEventService(client), services.NewAPILogService(client))
	svc.RunOnce(ctx)

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "only the recent event survives")
}

func TestRunOnce_DeletesExpiredAPILogs(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	seedAPILog(t, ctx, client, 2*time.Hour)
	seedAPILog(t, ctx, client, time.Minute)

	svc := NewService(config.RetentionConfig{EventTTL: time.Hour, CleanupInterval: time.Hour},
		services.NewEventService(client), services.NewAPILogService(client))
	svc.RunOnce(ctx)

	count, err := client.ApiCallLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunOnce_NothingExpiredIsNoOp(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	seedEvent(t, ctx, client, time.Minute)

	svc := NewService(config.RetentionConfig{EventTTL: time.Hour, CleanupInterval: time.Hour},
		services.NewEventService(client), services.NewAPILogService(client))
	svc.RunOnce(ctx)

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
