package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/pkg/oracle"
	"github.com/headspace-sh/headspace/pkg/services"
	testdb "github.com/headspace-sh/headspace/test/database"
)

type scoreProvider struct {
	calls   int
	respond func(prompt string) string
}

func (p *scoreProvider) Infer(_ context.Context, prompt string) (oracle.Result, error) {
	p.calls++
	return oracle.Result{Text: p.respond(prompt), PromptTokens: 200, CompletionTokens: 40, CostUSD: 0.001}, nil
}

func (p *scoreProvider) Close() error { return nil }

type scoreFixture struct {
	client     *ent.Client
	projects   *services.ProjectService
	agents     *services.AgentService
	commands   *services.CommandService
	objectives *services.ObjectiveService
	provider   *scoreProvider
	scorer     *Scorer
}

func newScoreFixture(t *testing.T) *scoreFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	projects := services.NewProjectService(client)
	agents := services.NewAgentService(client)
	commands := services.NewCommandService(client)
	turns := services.NewTurnService(client)
	objectives := services.NewObjectiveService(client)
	log := services.NewInferenceLogService(client)

	provider := &scoreProvider{respond: func(string) string { return "[]" }}
	orc := oracle.New(provider, log, projects, 5*time.Second)

	return &scoreFixture{
		client:     client,
		projects:   projects,
		agents:     agents,
		commands:   commands,
		objectives: objectives,
		provider:   provider,
		scorer:     NewScorer(Config{}, agents, commands, turns, objectives, orc, nil),
	}
}

func (f *scoreFixture) newAgent(t *testing.T, ctx context.Context, path string) *ent.Agent {
	t.Helper()
	project, err := f.projects.FindOrCreateByPath(ctx, path)
	require.NoError(t, err)
	agent, err := f.agents.Register(ctx, services.RegisterInput{
		SessionUUID: uuid.New(), ProjectID: project.ID,
	})
	require.NoError(t, err)
	return agent
}

func TestScoreOnce_WritesPriorityTriplets(t *testing.T) {
	f := newScoreFixture(t)
	ctx := context.Background()

	a1 := f.newAgent(t, ctx, "/proj/auth")
	a2 := f.newAgent(t, ctx, "/proj/docs")
	a3 := f.newAgent(t, ctx, "/proj/infra")
	_, err := f.commands.Create(ctx, nil, a1.ID, "Ship the auth flow", time.Now())
	require.NoError(t, err)

	_, err = f.objectives.Set(ctx, "Ship auth", true)
	require.NoError(t, err)

	f.provider.respond = func(string) string {
		return fmt.Sprintf(
			`[{"agent_id":%d,"score":95,"reason":"directly on the objective"},
			  {"agent_id":%d,"score":10,"reason":"unrelated docs work"},
			  {"agent_id":%d,"score":130,"reason":"out of range"}]`,
			a1.ID, a2.ID, a3.ID)
	}

	require.NoError(t, f.scorer.ScoreOnce(ctx))

	for _, tc := range []struct {
		id    int
		score int
	}{{a1.ID, 95}, {a2.ID, 10}, {a3.ID, 100}} {
		agent, err := f.agents.Get(ctx, tc.id)
		require.NoError(t, err)
		require.NotNil(t, agent.PriorityScore, "agent %d", tc.id)
		assert.Equal(t, tc.score, *agent.PriorityScore)
		assert.NotNil(t, agent.PriorityReason)
		assert.NotNil(t, agent.PriorityUpdatedAt)
	}
}

func TestScoreOnce_SkipsWithoutObjective(t *testing.T) {
	f := newScoreFixture(t)
	ctx := context.Background()
	f.newAgent(t, ctx, "/proj/x")

	require.NoError(t, f.scorer.ScoreOnce(ctx))
	assert.Zero(t, f.provider.calls)
}

func TestScoreOnce_SkipsWhenPriorityDisabled(t *testing.T) {
	f := newScoreFixture(t)
	ctx := context.Background()
	f.newAgent(t, ctx, "/proj/x")

	_, err := f.objectives.Set(ctx, "Ship auth", false)
	require.NoError(t, err)

	require.NoError(t, f.scorer.ScoreOnce(ctx))
	assert.Zero(t, f.provider.calls)
}

func TestScoreOnce_PausedProjectExcluded(t *testing.T) {
	f := newScoreFixture(t)
	ctx := context.Background()

	paused := f.newAgent(t, ctx, "/proj/paused")
	require.NoError(t, f.projects.PauseInference(ctx, paused.ProjectID, "budget"))
	active := f.newAgent(t, ctx, "/proj/active")

	_, err := f.objectives.Set(ctx, "Ship auth", true)
	require.NoError(t, err)

	var prompted []int
	f.provider.respond = func(prompt string) string {
		header := strings.Index(prompt, "Agents:\n")
		require.GreaterOrEqual(t, header, 0)
		body := prompt[header+len("Agents:\n"):]
		if cut := strings.Index(body, "\n\nRespond"); cut >= 0 {
			body = body[:cut]
		}
		var entries []struct {
			AgentID int `json:"agent_id"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &entries))
		for _, e := range entries {
			prompted = append(prompted, e.AgentID)
		}
		return `[]`
	}

	require.NoError(t, f.scorer.ScoreOnce(ctx))
	assert.Equal(t, []int{active.ID}, prompted, "paused project's agent never reaches the oracle")
}

func TestScoreOnce_UnknownAgentIDIgnored(t *testing.T) {
	f := newScoreFixture(t)
	ctx := context.Background()
	agent := f.newAgent(t, ctx, "/proj/x")

	_, err := f.objectives.Set(ctx, "Ship auth", true)
	require.NoError(t, err)

	f.provider.respond = func(string) string {
		return `[{"agent_id":99999,"score":50,"reason":"hallucinated"}]`
	}
	require.NoError(t, f.scorer.ScoreOnce(ctx))

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.PriorityScore)
}

func TestParseScores(t *testing.T) {
	results, err := parseScores(`Sure: [{"agent_id":1,"score":80,"reason":"ok"}] done`)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 80, results[0].Score)

	_, err = parseScores("no array here")
	assert.Error(t, err)
}
