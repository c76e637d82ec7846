package reaper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	entevent "github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/locks"
	"github.com/headspace-sh/headspace/pkg/registry"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/tmux"
	testdb "github.com/headspace-sh/headspace/test/database"
)

type fakeBridge struct {
	health   map[string]tmux.Health
	captured map[string]string
	checks   int
}

func (b *fakeBridge) CheckHealth(_ context.Context, pane string) (tmux.Health, error) {
	b.checks++
	return b.health[pane], nil
}

func (b *fakeBridge) CapturePane(_ context.Context, pane string, _ int) (string, error) {
	return b.captured[pane], nil
}

type fakeReconnector struct {
	calls  int
	result bool
	err    error
}

func (f *fakeReconnector) Reconnect(_ context.Context, _ *ent.Agent) (bool, error) {
	f.calls++
	return f.result, f.err
}

type reaperFixture struct {
	client   *ent.Client
	projects *services.ProjectService
	agents   *services.AgentService
	registry *registry.Registry
	bridge   *fakeBridge
	reconn   *fakeReconnector
	reaper   *Reaper
}

func newReaperFixture(t *testing.T, cfg Config) *reaperFixture {
	t.Helper()
	db := testdb.NewTestClient(t)

	projects := services.NewProjectService(db.Client)
	agents := services.NewAgentService(db.Client)
	activity := services.NewActivityService(db.Client, 5*time.Minute)
	reg := registry.New()
	bridge := &fakeBridge{health: make(map[string]tmux.Health), captured: make(map[string]string)}
	reconn := &fakeReconnector{}
	lockManager := locks.NewManager(db.DB())
	writer := events.NewWriter(db.Client, 3, 10*time.Millisecond)

	return &reaperFixture{
		client:   db.Client,
		projects: projects,
		agents:   agents,
		registry: reg,
		bridge:   bridge,
		reconn:   reconn,
		reaper:   NewReaper(cfg, reg, agents, activity, bridge, reconn, lockManager, writer, nil),
	}
}

func (f *reaperFixture) newAgent(t *testing.T, ctx context.Context, path string) *ent.Agent {
	t.Helper()
	project, err := f.projects.FindOrCreateByPath(ctx, path)
	require.NoError(t, err)
	agent, err := f.agents.Register(ctx, services.RegisterInput{
		SessionUUID: uuid.New(), ProjectID: project.ID,
	})
	require.NoError(t, err)
	return agent
}

func (f *reaperFixture) sessionEndedReasons(t *testing.T, ctx context.Context) []string {
	t.Helper()
	rows, err := f.client.Event.Query().
		Where(entevent.EventTypeEQ(entevent.EventTypeSessionEnded)).
		All(ctx)
	require.NoError(t, err)
	reasons := make([]string, 0, len(rows))
	for _, row := range rows {
		reasons = append(reasons, row.Payload["reason"].(string))
	}
	return reasons
}

func TestSweep_ClosesTimedOutSessions(t *testing.T) {
	f := newReaperFixture(t, Config{InactivityTimeout: time.Millisecond})
	ctx := context.Background()

	agent := f.newAgent(t, ctx, "/proj/stale")
	f.registry.Register(agent.SessionUUID.String(), "/proj/stale", "/proj/stale")
	time.Sleep(10 * time.Millisecond)

	f.reaper.Sweep(ctx)

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.EndedAt)
	assert.Zero(t, f.registry.Len())
	assert.Equal(t, []string{"timeout"}, f.sessionEndedReasons(t, ctx))
}

func TestSweep_FreshSessionUntouched(t *testing.T) {
	f := newReaperFixture(t, Config{InactivityTimeout: time.Hour})
	ctx := context.Background()

	agent := f.newAgent(t, ctx, "/proj/fresh")
	f.registry.Register(agent.SessionUUID.String(), "/proj/fresh", "/proj/fresh")

	f.reaper.Sweep(ctx)

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.EndedAt)
	assert.Equal(t, 1, f.registry.Len())
}

func TestCloseSession_UnknownAgentDropsRegistryEntry(t *testing.T) {
	f := newReaperFixture(t, Config{InactivityTimeout: time.Millisecond})
	ctx := context.Background()

	f.registry.Register(uuid.NewString(), "/proj/ghost", "/proj/ghost")
	f.registry.Register("not-a-uuid", "/proj/ghost", "/proj/ghost")
	time.Sleep(10 * time.Millisecond)

	f.reaper.Sweep(ctx)

	assert.Zero(t, f.registry.Len())
	assert.Empty(t, f.sessionEndedReasons(t, ctx))
}

func TestCheckPanes_FailuresBelowThresholdDoNothing(t *testing.T) {
	f := newReaperFixture(t, Config{InactivityTimeout: time.Hour, PaneFailureThreshold: 3})
	ctx := context.Background()

	agent := f.newAgent(t, ctx, "/proj/pane")
	require.NoError(t, f.agents.SetPane(ctx, agent.ID, "hs-pane", "%7"))
	f.bridge.health["%7"] = tmux.Health{Available: false}

	f.reaper.Sweep(ctx)
	f.reaper.Sweep(ctx)

	assert.Zero(t, f.reconn.calls)
	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.EndedAt)
}

func TestCheckPanes_ReconnectionResetsCounter(t *testing.T) {
	f := newReaperFixture(t, Config{InactivityTimeout: time.Hour, PaneFailureThreshold: 2})
	ctx := context.Background()

	agent := f.newAgent(t, ctx, "/proj/pane")
	require.NoError(t, f.agents.SetPane(ctx, agent.ID, "hs-pane", "%7"))
	f.bridge.health["%7"] = tmux.Health{Available: false}
	f.reconn.result = true

	f.reaper.Sweep(ctx)
	f.reaper.Sweep(ctx)

	assert.Equal(t, 1, f.reconn.calls)
	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.EndedAt, "reconnected agent stays alive")

	// Counter was reset; two more failed sweeps are needed before the
	// next recovery attempt.
	f.reaper.Sweep(ctx)
	assert.Equal(t, 1, f.reconn.calls)
	f.reaper.Sweep(ctx)
	assert.Equal(t, 2, f.reconn.calls)
}

func TestCheckPanes_FailedReconnectionEndsAgent(t *testing.T) {
	f := newReaperFixture(t, Config{InactivityTimeout: time.Hour, PaneFailureThreshold: 1})
	ctx := context.Background()

	agent := f.newAgent(t, ctx, "/proj/pane")
	require.NoError(t, f.agents.SetPane(ctx, agent.ID, "hs-pane", "%7"))
	f.registry.Register(agent.SessionUUID.String(), "/proj/pane", "/proj/pane")
	f.bridge.health["%7"] = tmux.Health{Available: false}
	f.reconn.result = false

	f.reaper.Sweep(ctx)

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.EndedAt)
	assert.Zero(t, f.registry.Len())
	assert.Equal(t, []string{"pane_lost"}, f.sessionEndedReasons(t, ctx))
}

func TestCheckPanes_HealthyPaneSamplesContextUsage(t *testing.T) {
	f := newReaperFixture(t, Config{InactivityTimeout: time.Hour})
	ctx := context.Background()

	agent := f.newAgent(t, ctx, "/proj/pane")
	require.NoError(t, f.agents.SetPane(ctx, agent.ID, "hs-pane", "%7"))
	f.bridge.health["%7"] = tmux.Health{Available: true, Running: true}
	f.bridge.captured["%7"] = "some output\n[ctx: 42% used, 31k remaining]\n> "

	f.reaper.Sweep(ctx)

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ContextPercentUsed)
	assert.Equal(t, 42, *reloaded.ContextPercentUsed)
	require.NotNil(t, reloaded.ContextRemainingTokens)
	assert.Equal(t, "31k", *reloaded.ContextRemainingTokens)

	activity := services.NewActivityService(f.client, 5*time.Minute)
	snaps, err := activity.SnapshotsForAgent(ctx, agent.ID, 10)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, 42, snaps[0].ContextPercentUsed)
}

func TestStartStop(t *testing.T) {
	f := newReaperFixture(t, Config{Interval: 10 * time.Millisecond, InactivityTimeout: time.Hour})
	ctx := context.Background()

	agent := f.newAgent(t, ctx, "/proj/loop")
	require.NoError(t, f.agents.SetPane(ctx, agent.ID, "hs-pane", "%7"))
	f.bridge.health["%7"] = tmux.Health{Available: true, Running: true}

	f.reaper.Start(ctx)
	require.Eventually(t, func() bool { return f.bridge.checks > 0 },
		2*time.Second, 5*time.Millisecond)
	f.reaper.Stop()
}
