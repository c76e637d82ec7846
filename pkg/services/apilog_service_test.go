package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/headspace-sh/headspace/test/database"
)

func TestAPILogService_SmallBodiesStoredVerbatim(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAPILogService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Log(ctx, LogCallInput{
		Method:       "POST",
		Path:         "/api/agents",
		Status:       201,
		LatencyMS:    12,
		RequestBody:  `{"project_id":1}`,
		ResponseBody: `{"id":7}`,
	}))

	rows, err := svc.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, `{"project_id":1}`, rows[0].RequestBody)
	assert.False(t, rows[0].Truncated)
}

func TestAPILogService_OversizedBodyTruncatedAtOneMiB(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAPILogService(client.Client)
	ctx := context.Background()

	big := strings.Repeat("x", maxLoggedBody+100)
	require.NoError(t, svc.Log(ctx, LogCallInput{
		Method:       "POST",
		Path:         "/api/agents/7/input",
		Status:       200,
		ResponseBody: big,
	}))

	rows, err := svc.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	stored := rows[0].ResponseBody
	assert.True(t, rows[0].Truncated)
	assert.Len(t, stored, maxLoggedBody+len(truncationSentinel))
	assert.True(t, strings.HasSuffix(stored, truncationSentinel),
		"a cut body announces itself in the stored text")
}

func TestAPILogService_DeleteOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAPILogService(client.Client)
	ctx := context.Background()

	require.NoError(t, svc.Log(ctx, LogCallInput{Method: "GET", Path: "/api/agents", Status: 200}))

	n, err := svc.DeleteOlderThan(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n, "fresh rows survive the cutoff")

	n, err = svc.DeleteOlderThan(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
