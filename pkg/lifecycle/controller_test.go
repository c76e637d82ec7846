package lifecycle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	entevent "github.com/headspace-sh/headspace/ent/event"
	"github.com/headspace-sh/headspace/pkg/correlator"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/tmux"
	testdb "github.com/headspace-sh/headspace/test/database"
)

type fakeBridge struct {
	sessions []string
	sent     map[string][]string
	panes    []tmux.PaneInfo
	sendErr  error
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{sent: make(map[string][]string)}
}

func (f *fakeBridge) NewSession(_ context.Context, name, _, _ string) (string, error) {
	f.sessions = append(f.sessions, name)
	return "%" + name, nil
}

func (f *fakeBridge) SendText(_ context.Context, pane, text string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent[pane] = append(f.sent[pane], text)
	return nil
}

func (f *fakeBridge) ListPanes(context.Context) ([]tmux.PaneInfo, error) {
	return f.panes, nil
}

type lcFixture struct {
	client     *ent.Client
	projects   *services.ProjectService
	agents     *services.AgentService
	personas   *services.PersonaService
	bridge     *fakeBridge
	controller *Controller
}

func newLCFixture(t *testing.T, cfg Config) *lcFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client

	projects := services.NewProjectService(client)
	agents := services.NewAgentService(client)
	personas := services.NewPersonaService(client)
	writer := events.NewWriter(client, 2, 10*time.Millisecond)
	bridge := newFakeBridge()

	controller := NewController(cfg, projects, agents, personas, bridge, writer, nil)
	controller.lookPath = func(string) (string, error) { return "/usr/bin/tmux", nil }

	return &lcFixture{
		client:     client,
		projects:   projects,
		agents:     agents,
		personas:   personas,
		bridge:     bridge,
		controller: controller,
	}
}

func (f *lcFixture) newProject(t *testing.T, ctx context.Context) *ent.Project {
	t.Helper()
	project, err := f.projects.FindOrCreateByPath(ctx, t.TempDir())
	require.NoError(t, err)
	return project
}

func (f *lcFixture) registerAgent(t *testing.T, ctx context.Context, projectID int) *ent.Agent {
	t.Helper()
	agent, err := f.agents.Register(ctx, services.RegisterInput{
		SessionUUID: uuid.New(),
		ProjectID:   projectID,
	})
	require.NoError(t, err)
	return agent
}

func TestController_CreateSpawnsSession(t *testing.T) {
	f := newLCFixture(t, DefaultConfig())
	ctx := context.Background()
	project := f.newProject(t, ctx)

	receipt, err := f.controller.Create(ctx, CreateInput{ProjectID: project.ID})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(receipt.TmuxSessionName, "hs-"+project.Slug+"-"),
		"session name %q carries the project slug", receipt.TmuxSessionName)
	assert.NotEmpty(t, receipt.PaneID)
	assert.Equal(t, 1, f.controller.PendingCount())

	// Nonces keep concurrent creations apart.
	receipt2, err := f.controller.Create(ctx, CreateInput{ProjectID: project.ID})
	require.NoError(t, err)
	assert.NotEqual(t, receipt.TmuxSessionName, receipt2.TmuxSessionName)
}

func TestController_CreateValidation(t *testing.T) {
	f := newLCFixture(t, DefaultConfig())
	ctx := context.Background()

	_, err := f.controller.Create(ctx, CreateInput{ProjectID: 9999})
	assert.ErrorIs(t, err, services.ErrNotFound)

	project, err := f.projects.FindOrCreateByPath(ctx, "/does/not/exist/anywhere")
	require.NoError(t, err)
	_, err = f.controller.Create(ctx, CreateInput{ProjectID: project.ID})
	assert.True(t, services.IsValidationError(err))

	realProject := f.newProject(t, ctx)
	_, err = f.controller.Create(ctx, CreateInput{ProjectID: realProject.ID, PersonaSlug: "ghost"})
	assert.ErrorIs(t, err, services.ErrNotFound)

	f.controller.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	_, err = f.controller.Create(ctx, CreateInput{ProjectID: realProject.ID})
	assert.ErrorIs(t, err, ErrMultiplexerMissing)
}

func TestController_AdoptInjectsPersonaAndGuardrails(t *testing.T) {
	dir := t.TempDir()
	skillPath := filepath.Join(dir, "reviewer.md")
	require.NoError(t, os.WriteFile(skillPath, []byte("You review code."), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reviewer.experience.md"), []byte("Past lessons."), 0o644))
	guardrailsPath := filepath.Join(dir, "guardrails.md")
	require.NoError(t, os.WriteFile(guardrailsPath, []byte("Never print secrets."), 0o644))

	cfg := DefaultConfig()
	cfg.GuardrailsPath = guardrailsPath
	f := newLCFixture(t, cfg)
	ctx := context.Background()

	project := f.newProject(t, ctx)
	_, err := f.personas.Register(ctx, services.RegisterPersonaInput{
		Slug: "reviewer", Name: "Reviewer", SkillPath: skillPath,
	})
	require.NoError(t, err)

	receipt, err := f.controller.Create(ctx, CreateInput{ProjectID: project.ID, PersonaSlug: "reviewer"})
	require.NoError(t, err)

	agent := f.registerAgent(t, ctx, project.ID)
	require.NoError(t, f.controller.Adopt(ctx, agent))

	sent := f.bridge.sent[receipt.PaneID]
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0], correlator.InternalMarker),
		"injection is marked internal so it never opens a command")
	assert.Contains(t, sent[0], "You review code.")
	assert.Contains(t, sent[0], "Past lessons.")
	assert.Contains(t, sent[0], "Never print secrets.")

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.PromptInjectedAt)
	require.NotNil(t, reloaded.GuardrailsVersionHash)
	assert.Len(t, *reloaded.GuardrailsVersionHash, 64)
	require.NotNil(t, reloaded.TmuxPaneID)
	assert.Equal(t, receipt.PaneID, *reloaded.TmuxPaneID)
	require.NotNil(t, reloaded.PersonaID)
}

func TestController_AdoptRevivalVsHandoff(t *testing.T) {
	f := newLCFixture(t, DefaultConfig())
	ctx := context.Background()
	project := f.newProject(t, ctx)

	predecessor := f.registerAgent(t, ctx, project.ID)

	// No handoff row: revival instruction.
	receipt, err := f.controller.Create(ctx, CreateInput{
		ProjectID:       project.ID,
		PreviousAgentID: &predecessor.ID,
	})
	require.NoError(t, err)
	successor := f.registerAgent(t, ctx, project.ID)
	require.NoError(t, f.controller.Adopt(ctx, successor))

	sent := f.bridge.sent[receipt.PaneID]
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "resuming the work")

	// Handoff row present: the briefing is delivered instead.
	require.NoError(t, f.agents.RecordHandoff(ctx, predecessor.ID, "Auth refactor is half done; tests in pkg/auth fail."))
	receipt2, err := f.controller.Create(ctx, CreateInput{
		ProjectID:       project.ID,
		PreviousAgentID: &predecessor.ID,
	})
	require.NoError(t, err)
	successor2 := f.registerAgent(t, ctx, project.ID)
	require.NoError(t, f.controller.Adopt(ctx, successor2))

	sent2 := f.bridge.sent[receipt2.PaneID]
	require.Len(t, sent2, 1)
	assert.Contains(t, sent2[0], "taking over")
	assert.Contains(t, sent2[0], "Auth refactor is half done")
}

func TestController_AdoptWithoutPendingIsNoOp(t *testing.T) {
	f := newLCFixture(t, DefaultConfig())
	ctx := context.Background()
	project := f.newProject(t, ctx)

	agent := f.registerAgent(t, ctx, project.ID)
	require.NoError(t, f.controller.Adopt(ctx, agent))

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.TmuxPaneID)
	assert.Nil(t, reloaded.PromptInjectedAt)
}

func TestController_Shutdown(t *testing.T) {
	f := newLCFixture(t, DefaultConfig())
	ctx := context.Background()
	project := f.newProject(t, ctx)

	agent := f.registerAgent(t, ctx, project.ID)
	require.NoError(t, f.agents.SetPane(ctx, agent.ID, "hs-x-1", "%7"))

	require.NoError(t, f.controller.Shutdown(ctx, agent.ID))
	assert.Equal(t, []string{"/exit"}, f.bridge.sent["%7"])

	// Still alive in storage until the hook pipeline fires.
	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.EndedAt)

	// No pane binding: ended directly.
	paneless := f.registerAgent(t, ctx, project.ID)
	require.NoError(t, f.controller.Shutdown(ctx, paneless.ID))
	reloaded, err = f.agents.Get(ctx, paneless.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.EndedAt)

	// Already ended: no-op.
	require.NoError(t, f.controller.Shutdown(ctx, paneless.ID))

	assert.ErrorIs(t, f.controller.Shutdown(ctx, 9999), services.ErrNotFound)
}

func TestController_Reconnect(t *testing.T) {
	f := newLCFixture(t, DefaultConfig())
	ctx := context.Background()

	path := t.TempDir()
	project, err := f.projects.FindOrCreateByPath(ctx, path)
	require.NoError(t, err)

	agent := f.registerAgent(t, ctx, project.ID)
	require.NoError(t, f.agents.SetPane(ctx, agent.ID, "hs-x-1", "%dead"))
	agent, err = f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)

	// No candidate panes.
	ok, err := f.controller.Reconnect(ctx, agent)
	require.NoError(t, err)
	assert.False(t, ok)

	// One fresh pane in the project directory running the REPL.
	f.bridge.panes = []tmux.PaneInfo{
		{PaneID: "%dead", SessionName: "hs-x-1", CurrentCommand: "claude", WorkingDirectory: path},
		{PaneID: "%fresh", SessionName: "hs-x-2", CurrentCommand: "claude", WorkingDirectory: path},
		{PaneID: "%other", SessionName: "vim", CurrentCommand: "vim", WorkingDirectory: path},
	}
	ok, err = f.controller.Reconnect(ctx, agent)
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.TmuxPaneID)
	assert.Equal(t, "%fresh", *reloaded.TmuxPaneID)
}

func TestController_ReconnectMatchesNodeProcess(t *testing.T) {
	f := newLCFixture(t, DefaultConfig())
	ctx := context.Background()

	path := t.TempDir()
	project, err := f.projects.FindOrCreateByPath(ctx, path)
	require.NoError(t, err)
	agent := f.registerAgent(t, ctx, project.ID)

	// The REPL often shows up as its node runtime rather than the CLI
	// name. A pane like that is just as much a reconnect candidate.
	f.bridge.panes = []tmux.PaneInfo{
		{PaneID: "%node", SessionName: "hs-x-1", CurrentCommand: "node", WorkingDirectory: path},
	}

	ok, err := f.controller.Reconnect(ctx, agent)
	require.NoError(t, err)
	assert.True(t, ok)

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.TmuxPaneID)
	assert.Equal(t, "%node", *reloaded.TmuxPaneID)
}

func TestController_ReconnectAmbiguousSkipped(t *testing.T) {
	f := newLCFixture(t, DefaultConfig())
	ctx := context.Background()

	path := t.TempDir()
	project, err := f.projects.FindOrCreateByPath(ctx, path)
	require.NoError(t, err)
	agent := f.registerAgent(t, ctx, project.ID)

	f.bridge.panes = []tmux.PaneInfo{
		{PaneID: "%a", SessionName: "hs-x-1", CurrentCommand: "claude", WorkingDirectory: path},
		{PaneID: "%b", SessionName: "hs-x-2", CurrentCommand: "claude", WorkingDirectory: path},
	}

	ok, err := f.controller.Reconnect(ctx, agent)
	require.NoError(t, err)
	assert.False(t, ok, "two candidates in one directory is ambiguous")

	count, err := f.client.Event.Query().
		Where(entevent.EventTypeEQ(entevent.EventTypeReconnectionAmbiguous)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.TmuxPaneID)
}

func TestController_PendingExpiry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PendingTTL = time.Millisecond
	f := newLCFixture(t, cfg)
	ctx := context.Background()
	project := f.newProject(t, ctx)

	_, err := f.controller.Create(ctx, CreateInput{ProjectID: project.ID})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	agent := f.registerAgent(t, ctx, project.ID)
	require.NoError(t, f.controller.Adopt(ctx, agent))

	reloaded, err := f.agents.Get(ctx, agent.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.TmuxPaneID, "expired intent is discarded, not adopted")
}
