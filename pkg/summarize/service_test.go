package summarize

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/turn"
	"github.com/headspace-sh/headspace/pkg/oracle"
	"github.com/headspace-sh/headspace/pkg/services"
	testdb "github.com/headspace-sh/headspace/test/database"
)

type scriptedProvider struct {
	calls     int
	responses map[string]string // substring match on prompt
	fallback  string
}

func (p *scriptedProvider) Infer(_ context.Context, prompt string) (oracle.Result, error) {
	p.calls++
	for needle, response := range p.responses {
		if strings.Contains(prompt, needle) {
			return oracle.Result{Text: response, PromptTokens: 50, CompletionTokens: 10, CostUSD: 0.0001}, nil
		}
	}
	return oracle.Result{Text: p.fallback, PromptTokens: 50, CompletionTokens: 10, CostUSD: 0.0001}, nil
}

func (p *scriptedProvider) Close() error { return nil }

type sumFixture struct {
	client   *ent.Client
	projects *services.ProjectService
	agents   *services.AgentService
	commands *services.CommandService
	turns    *services.TurnService
	provider *scriptedProvider
	service  *Service
}

func newSumFixture(t *testing.T) *sumFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	projects := services.NewProjectService(client)
	agents := services.NewAgentService(client)
	commands := services.NewCommandService(client)
	turns := services.NewTurnService(client)
	log := services.NewInferenceLogService(client)

	provider := &scriptedProvider{
		responses: make(map[string]string),
		fallback:  "A concise summary.",
	}
	orc := oracle.New(provider, log, projects, 5*time.Second)

	return &sumFixture{
		client:   client,
		projects: projects,
		agents:   agents,
		commands: commands,
		turns:    turns,
		provider: provider,
		service:  NewService(Config{BatchSize: 20}, turns, commands, agents, orc, nil),
	}
}

func (f *sumFixture) seedCommand(t *testing.T, ctx context.Context, path string) (*ent.Agent, *ent.Command) {
	t.Helper()
	project, err := f.projects.FindOrCreateByPath(ctx, path)
	require.NoError(t, err)
	agent, err := f.agents.Register(ctx, services.RegisterInput{
		SessionUUID: uuid.New(), ProjectID: project.ID,
	})
	require.NoError(t, err)
	cmd, err := f.commands.Create(ctx, nil, agent.ID, "Fix the login retry loop", time.Now())
	require.NoError(t, err)
	return agent, cmd
}

func longText(prefix string) string {
	return prefix + ": " + strings.Repeat("the auth middleware rejects refreshed sessions ", 5)
}

func TestSweep_SummarizesLongTurns(t *testing.T) {
	f := newSumFixture(t)
	ctx := context.Background()
	_, cmd := f.seedCommand(t, ctx, "/proj/sum")

	created, err := f.turns.Create(ctx, nil, services.CreateTurnInput{
		CommandID: cmd.ID,
		Actor:     turn.ActorAgent,
		Intent:    turn.IntentProgress,
		Text:      longText("investigating"),
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	f.service.Sweep(ctx)

	reloaded, err := f.turns.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Summary)
	assert.Equal(t, "A concise summary.", *reloaded.Summary)
	assert.NotNil(t, reloaded.SummaryGeneratedAt)
}

func TestSweep_TrivialTurnIsItsOwnSummary(t *testing.T) {
	f := newSumFixture(t)
	ctx := context.Background()
	_, cmd := f.seedCommand(t, ctx, "/proj/sum")

	created, err := f.turns.Create(ctx, nil, services.CreateTurnInput{
		CommandID: cmd.ID,
		Actor:     turn.ActorAgent,
		Intent:    turn.IntentProgress,
		Text:      "Done.",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)

	f.service.Sweep(ctx)

	reloaded, err := f.turns.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Summary)
	assert.Equal(t, "Done.", *reloaded.Summary)
	assert.Zero(t, f.provider.calls, "trivial text never reaches the oracle")
}

func TestSweep_CompletedCommandSummaries(t *testing.T) {
	f := newSumFixture(t)
	ctx := context.Background()
	_, cmd := f.seedCommand(t, ctx, "/proj/sum")

	_, err := f.turns.Create(ctx, nil, services.CreateTurnInput{
		CommandID: cmd.ID, Actor: turn.ActorUser, Intent: turn.IntentCommand,
		Text: longText("Fix the login retry loop"), Timestamp: time.Now().Add(-2 * time.Minute),
	})
	require.NoError(t, err)
	_, err = f.turns.Create(ctx, nil, services.CreateTurnInput{
		CommandID: cmd.ID, Actor: turn.ActorAgent, Intent: turn.IntentProgress,
		Text: longText("All tests pass now"), Timestamp: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)
	_, err = f.commands.Complete(ctx, nil, cmd, "done")
	require.NoError(t, err)

	f.provider.responses["completed a command"] =
		`{"instruction": "Fix login retries", "completion_summary": "Rewrote the retry loop; tests pass."}`

	f.service.Sweep(ctx)

	reloaded, err := f.commands.Get(ctx, cmd.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Instruction)
	assert.Equal(t, "Fix login retries", *reloaded.Instruction)
	require.NotNil(t, reloaded.CompletionSummary)
	assert.Equal(t, "Rewrote the retry loop; tests pass.", *reloaded.CompletionSummary)
}

func TestSweep_MalformedOracleJSONFallsBack(t *testing.T) {
	f := newSumFixture(t)
	ctx := context.Background()
	_, cmd := f.seedCommand(t, ctx, "/proj/sum")

	_, err := f.turns.Create(ctx, nil, services.CreateTurnInput{
		CommandID: cmd.ID, Actor: turn.ActorAgent, Intent: turn.IntentProgress,
		Text: longText("outcome"), Timestamp: time.Now(),
	})
	require.NoError(t, err)
	_, err = f.commands.Complete(ctx, nil, cmd, "done")
	require.NoError(t, err)

	f.provider.responses["completed a command"] = "The agent finished the task successfully."

	f.service.Sweep(ctx)

	reloaded, err := f.commands.Get(ctx, cmd.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CompletionSummary)
	assert.Contains(t, *reloaded.CompletionSummary, "finished the task")
}

func TestSweep_PausedProjectSkipped(t *testing.T) {
	f := newSumFixture(t)
	ctx := context.Background()
	agent, cmd := f.seedCommand(t, ctx, "/proj/paused")

	require.NoError(t, f.projects.PauseInference(ctx, agent.ProjectID, "budget"))

	created, err := f.turns.Create(ctx, nil, services.CreateTurnInput{
		CommandID: cmd.ID, Actor: turn.ActorAgent, Intent: turn.IntentProgress,
		Text: longText("work"), Timestamp: time.Now(),
	})
	require.NoError(t, err)

	f.service.Sweep(ctx)

	reloaded, err := f.turns.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.Summary, "paused projects get no summaries")
	assert.Zero(t, f.provider.calls)
}

func TestParseCommandSummary(t *testing.T) {
	parsed := parseCommandSummary(
		`Here you go: {"instruction": "Ship auth", "completion_summary": "Shipped."} hope that helps`,
		"opening")
	assert.Equal(t, "Ship auth", parsed.Instruction)
	assert.Equal(t, "Shipped.", parsed.CompletionSummary)

	fallback := parseCommandSummary("no json here", "Fix the build")
	assert.Equal(t, "Fix the build", fallback.Instruction)
	assert.Equal(t, "no json here", fallback.CompletionSummary)
}
