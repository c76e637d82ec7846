package oracle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent/inferencecall"
	"github.com/headspace-sh/headspace/pkg/services"
	testdb "github.com/headspace-sh/headspace/test/database"
)

type fakeProvider struct {
	calls  int
	result Result
	err    error
}

func (f *fakeProvider) Infer(context.Context, string) (Result, error) {
	f.calls++
	if f.err != nil {
		return Result{}, f.err
	}
	return f.result, nil
}

func (f *fakeProvider) Close() error { return nil }

func newOracleFixture(t *testing.T) (*Oracle, *fakeProvider, *services.ProjectService, *services.InferenceLogService) {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	provider := &fakeProvider{result: Result{
		Text:             "A short summary.",
		PromptTokens:     120,
		CompletionTokens: 18,
		CostUSD:          0.0004,
	}}
	log := services.NewInferenceLogService(client)
	projects := services.NewProjectService(client)
	return New(provider, log, projects, 5*time.Second), provider, projects, log
}

func TestOracle_InvokeRecordsCall(t *testing.T) {
	o, provider, projects, log := newOracleFixture(t)
	ctx := context.Background()

	project, err := projects.FindOrCreateByPath(ctx, "/proj/x")
	require.NoError(t, err)

	text, err := o.Invoke(ctx, InvokeInput{
		Level:     inferencecall.LevelTurn,
		Prompt:    "Summarise: fixed the login bug",
		ProjectID: &project.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", text)
	assert.Equal(t, 1, provider.calls)

	cost, err := log.CostSince(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.InDelta(t, 0.0004, cost, 1e-9)
}

func TestOracle_CacheHit(t *testing.T) {
	o, provider, projects, log := newOracleFixture(t)
	ctx := context.Background()

	project, err := projects.FindOrCreateByPath(ctx, "/proj/x")
	require.NoError(t, err)

	input := InvokeInput{
		Level:     inferencecall.LevelTurn,
		Prompt:    "Summarise: same text twice",
		ProjectID: &project.ID,
	}

	first, err := o.Invoke(ctx, input)
	require.NoError(t, err)
	second, err := o.Invoke(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls, "second invocation must be served from cache")

	// Both calls are logged; the second one cached with no token spend.
	cached, err := log.CachedResult(ctx, InputHash(string(inferencecall.LevelTurn), input.Prompt))
	require.NoError(t, err)
	assert.True(t, cached.Cached)
	assert.Zero(t, cached.PromptTokens)
	assert.Zero(t, cached.CostUsd)
}

func TestOracle_LevelSeparatesCache(t *testing.T) {
	o, provider, projects, _ := newOracleFixture(t)
	ctx := context.Background()

	project, err := projects.FindOrCreateByPath(ctx, "/proj/levels")
	require.NoError(t, err)

	_, err = o.Invoke(ctx, InvokeInput{Level: inferencecall.LevelTurn, Prompt: "same", ProjectID: &project.ID})
	require.NoError(t, err)
	_, err = o.Invoke(ctx, InvokeInput{Level: inferencecall.LevelCommand, Prompt: "same", ProjectID: &project.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, provider.calls, "identical prompts at different levels are distinct cache keys")
}

func TestOracle_PausedProjectGated(t *testing.T) {
	o, provider, projects, _ := newOracleFixture(t)
	ctx := context.Background()

	project, err := projects.FindOrCreateByPath(ctx, "/proj/paused")
	require.NoError(t, err)
	require.NoError(t, projects.PauseInference(ctx, project.ID, "budget"))

	_, err = o.Invoke(ctx, InvokeInput{
		Level:     inferencecall.LevelTurn,
		Prompt:    "should not run",
		ProjectID: &project.ID,
	})
	assert.ErrorIs(t, err, ErrInferencePaused)
	assert.Zero(t, provider.calls)

	require.NoError(t, projects.ResumeInference(ctx, project.ID))
	_, err = o.Invoke(ctx, InvokeInput{
		Level:     inferencecall.LevelTurn,
		Prompt:    "should run now",
		ProjectID: &project.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
}

func TestOracle_EmptyPromptRejected(t *testing.T) {
	o, _, _, _ := newOracleFixture(t)
	_, err := o.Invoke(context.Background(), InvokeInput{Level: inferencecall.LevelTurn})
	assert.True(t, services.IsValidationError(err))
}

func TestInputHash_Stable(t *testing.T) {
	assert.Equal(t, InputHash("turn", "x"), InputHash("turn", "x"))
	assert.NotEqual(t, InputHash("turn", "x"), InputHash("command", "x"))
	assert.Len(t, InputHash("turn", "x"), 64)
}
