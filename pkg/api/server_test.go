package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/pkg/cards"
	"github.com/headspace-sh/headspace/pkg/config"
	"github.com/headspace-sh/headspace/pkg/correlator"
	"github.com/headspace-sh/headspace/pkg/database"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/hooks"
	"github.com/headspace-sh/headspace/pkg/lifecycle"
	"github.com/headspace-sh/headspace/pkg/locks"
	"github.com/headspace-sh/headspace/pkg/registry"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/tmux"
	"github.com/headspace-sh/headspace/pkg/tokens"
	testdb "github.com/headspace-sh/headspace/test/database"
)

type fakeBridge struct {
	sessions []string
	sent     map[string][]string
	captured map[string]string
	panes    []tmux.PaneInfo
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{sent: make(map[string][]string), captured: make(map[string]string)}
}

func (f *fakeBridge) NewSession(_ context.Context, name, _, _ string) (string, error) {
	f.sessions = append(f.sessions, name)
	return "%" + name, nil
}

func (f *fakeBridge) SendText(_ context.Context, pane, text string) error {
	f.sent[pane] = append(f.sent[pane], text)
	return nil
}

func (f *fakeBridge) ListPanes(context.Context) ([]tmux.PaneInfo, error) {
	return f.panes, nil
}

func (f *fakeBridge) CapturePane(_ context.Context, pane string, _ int) (string, error) {
	return f.captured[pane], nil
}

type apiFixture struct {
	db       *database.Client
	cfg      *config.Config
	bridge   *fakeBridge
	agents   *services.AgentService
	projects *services.ProjectService
	personas *services.PersonaService
	events   *services.EventService
	store    *tokens.Store
	bcast    *events.Broadcaster
	router   *gin.Engine
}

func newAPIFixture(t *testing.T, mutate func(cfg *config.Config)) *apiFixture {
	t.Helper()
	db := testdb.NewTestClient(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	cfg.FileWatcher.PIDFile = filepath.Join(t.TempDir(), "watcher.pid")
	if mutate != nil {
		mutate(cfg)
	}

	reg := registry.New()
	projects := services.NewProjectService(db.Client)
	agents := services.NewAgentService(db.Client)
	commands := services.NewCommandService(db.Client)
	turns := services.NewTurnService(db.Client)
	personas := services.NewPersonaService(db.Client)
	objectives := services.NewObjectiveService(db.Client)
	eventsSvc := services.NewEventService(db.Client)
	writer := events.NewWriter(db.Client, 2, 10*time.Millisecond)
	lockManager := locks.NewManager(db.DB())
	corr := correlator.New(correlator.DefaultConfig(), db.Client, agents, commands, turns, nil, writer, nil, lockManager)
	receiver := hooks.NewReceiver(reg, projects, agents, corr, writer, nil, nil)
	bridge := newFakeBridge()
	controller := lifecycle.NewController(lifecycle.DefaultConfig(), projects, agents, personas, bridge, writer, nil)
	projector := cards.NewProjector(agents, commands, turns, cfg.Cards.StaleProcessing)
	store := tokens.NewStore()
	bcast := events.NewBroadcaster()

	server := NewServer(Deps{
		Config:     cfg,
		DB:         db,
		Receiver:   receiver,
		Lifecycle:  controller,
		Cards:      projector,
		Bridge:     bridge,
		Agents:     agents,
		Projects:   projects,
		Personas:   personas,
		Objectives: objectives,
		Events:     eventsSvc,
		Broadcast:  bcast,
		Tokens:     store,
		Version:    "test",
	})

	return &apiFixture{
		db:       db,
		cfg:      cfg,
		bridge:   bridge,
		agents:   agents,
		projects: projects,
		personas: personas,
		events:   eventsSvc,
		store:    store,
		bcast:    bcast,
		router:   server.Router(),
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// fakeTmuxOnPath plants an executable named tmux so lifecycle's
// binary check passes.
func fakeTmuxOnPath(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmux"), []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestHealth_DegradedWithoutWatcher(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, false, body["watcher_running"])
}

func TestHealth_HealthyWithWatcherPID(t *testing.T) {
	f := newAPIFixture(t, nil)
	require.NoError(t, os.WriteFile(f.cfg.FileWatcher.PIDFile,
		[]byte(strconv.Itoa(os.Getpid())), 0o644))

	w := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, true, body["watcher_running"])
}

func TestHooks_SessionLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t, nil)
	sessionID := uuid.New().String()

	w := f.do(t, http.MethodPost, "/hook/session-start", gin.H{
		"claude_session_id": sessionID,
		"working_directory": "/proj/api",
	})
	require.Equal(t, http.StatusOK, w.Code)
	start := decode(t, w)
	assert.Equal(t, true, start["success"])
	assert.NotNil(t, start["agent_id"])

	w = f.do(t, http.MethodPost, "/hook/user-prompt-submit", gin.H{
		"claude_session_id": sessionID,
		"prompt":            "Fix the login retry loop",
	})
	require.Equal(t, http.StatusOK, w.Code)
	prompt := decode(t, w)
	assert.Equal(t, true, prompt["success"])
	assert.Equal(t, true, prompt["state_changed"])
	assert.Equal(t, "commanded", prompt["new_state"])

	w = f.do(t, http.MethodPost, "/hook/stop", gin.H{
		"claude_session_id": sessionID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	stop := decode(t, w)
	assert.Equal(t, true, stop["state_changed"])
	assert.Equal(t, "complete", stop["new_state"])

	w = f.do(t, http.MethodPost, "/hook/session-end", gin.H{
		"claude_session_id": sessionID,
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHooks_MissingSessionIDRejected(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(t, http.MethodPost, "/hook/stop", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "validation_error", errBody["code"])
	assert.EqualValues(t, http.StatusBadRequest, errBody["status"])
}

func TestHooks_UnknownSessionIs404(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(t, http.MethodPost, "/hook/stop", gin.H{
		"claude_session_id": uuid.New().String(),
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAgent_SpawnsSession(t *testing.T) {
	f := newAPIFixture(t, nil)
	fakeTmuxOnPath(t)
	ctx := context.Background()

	project, err := f.projects.FindOrCreateByPath(ctx, t.TempDir())
	require.NoError(t, err)

	w := f.do(t, http.MethodPost, "/api/agents", gin.H{"project_id": project.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.NotEmpty(t, body["tmux_session_name"])
	assert.NotEmpty(t, body["pane_id"])
	assert.Len(t, f.bridge.sessions, 1)
}

func TestCreateAgent_UnknownProjectIsDomainError(t *testing.T) {
	f := newAPIFixture(t, nil)
	fakeTmuxOnPath(t)

	w := f.do(t, http.MethodPost, "/api/agents", gin.H{"project_id": 99999})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "domain_error", errBody["code"])
}

func TestCreateAgent_MissingFieldsRejected(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(t, http.MethodPost, "/api/agents", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAgent_UnknownIs404(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(t, http.MethodDelete, "/api/agents/99999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func (f *apiFixture) registerAgent(t *testing.T, path string) (string, int) {
	t.Helper()
	sessionID := uuid.New().String()
	w := f.do(t, http.MethodPost, "/hook/session-start", gin.H{
		"claude_session_id": sessionID,
		"working_directory": path,
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	return sessionID, int(body["agent_id"].(float64))
}

func TestListAgents_ReturnsCardsAndCounts(t *testing.T) {
	f := newAPIFixture(t, nil)

	f.registerAgent(t, "/proj/one")
	f.registerAgent(t, "/proj/two")

	w := f.do(t, http.MethodGet, "/api/agents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["agents"], 2)
	counts := body["status_counts"].(map[string]interface{})
	assert.EqualValues(t, 2, counts["idle"])
}

func TestAgentContext_NoPane(t *testing.T) {
	f := newAPIFixture(t, nil)
	_, agentID := f.registerAgent(t, "/proj/ctx")

	w := f.do(t, http.MethodGet, "/api/agents/"+strconv.Itoa(agentID)+"/context", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["available"])
}

func TestAgentContext_ParsesStatusLine(t *testing.T) {
	f := newAPIFixture(t, nil)
	_, agentID := f.registerAgent(t, "/proj/ctx")
	ctx := context.Background()

	require.NoError(t, f.agents.SetPane(ctx, agentID, "hs-ctx", "%3"))
	f.bridge.captured["%3"] = "output\n[ctx: 61% used, 18k remaining]\n"

	w := f.do(t, http.MethodGet, "/api/agents/"+strconv.Itoa(agentID)+"/context", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["available"])
	assert.EqualValues(t, 61, body["percent_used"])
	assert.Equal(t, "18k", body["remaining_tokens"])
}

func TestAgentInput_DeliveredToPane(t *testing.T) {
	f := newAPIFixture(t, nil)
	_, agentID := f.registerAgent(t, "/proj/input")
	ctx := context.Background()
	require.NoError(t, f.agents.SetPane(ctx, agentID, "hs-input", "%4"))

	w := f.do(t, http.MethodPost, "/api/agents/"+strconv.Itoa(agentID)+"/input",
		gin.H{"text": "yes, ship it"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"yes, ship it"}, f.bridge.sent["%4"])
}

func TestAgentInput_NoPaneIs422(t *testing.T) {
	f := newAPIFixture(t, nil)
	_, agentID := f.registerAgent(t, "/proj/input")

	w := f.do(t, http.MethodPost, "/api/agents/"+strconv.Itoa(agentID)+"/input",
		gin.H{"text": "hello"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPersonas_RegisterAndList(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(t, http.MethodPost, "/api/personas/register", gin.H{
		"name": "Backend Reviewer",
		"role": "reviewer",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	assert.Equal(t, "backend-reviewer", created["slug"])

	w = f.do(t, http.MethodGet, "/api/personas/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	personas := body["personas"].([]interface{})
	require.Len(t, personas, 1)
	first := personas[0].(map[string]interface{})
	assert.Equal(t, "reviewer", first["role"])

	w = f.do(t, http.MethodPost, "/api/personas/backend-reviewer/archive", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/personas/active", nil)
	body = decode(t, w)
	assert.Empty(t, body["personas"])
}

func TestObjective_RoundTrip(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(t, http.MethodGet, "/api/objective", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode(t, w)["objective"])

	w = f.do(t, http.MethodPut, "/api/objective", gin.H{
		"text":             "Ship the auth flow",
		"priority_enabled": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet, "/api/objective", nil)
	body := decode(t, w)
	objective := body["objective"].(map[string]interface{})
	assert.Equal(t, "Ship the auth flow", objective["text"])
	assert.Equal(t, true, objective["priority_enabled"])
}

func TestRemoteAgents_DisabledByDefault(t *testing.T) {
	f := newAPIFixture(t, nil)

	w := f.do(t, http.MethodPost, "/api/remote_agents/create", gin.H{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoteAgents_TokenScoping(t *testing.T) {
	f := newAPIFixture(t, func(cfg *config.Config) {
		cfg.RemoteAgents.Enabled = true
		cfg.RemoteAgents.CORSOrigins = []string{"https://phone.example"}
	})
	_, agentID := f.registerAgent(t, "/proj/remote")

	token, err := f.store.Generate(agentID, tokens.FeatureFlags{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet,
		"/api/remote_agents/"+strconv.Itoa(agentID)+"/alive", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "no token")

	req = httptest.NewRequest(http.MethodGet,
		"/api/remote_agents/"+strconv.Itoa(agentID)+"/alive", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode2(t, w.Body.Bytes())["alive"])

	// Token for one agent does not open another.
	otherReq := httptest.NewRequest(http.MethodGet, "/api/remote_agents/99999/alive", nil)
	otherReq.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, otherReq)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func decode2(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestRemoteShutdown_AlreadyTerminated(t *testing.T) {
	f := newAPIFixture(t, func(cfg *config.Config) {
		cfg.RemoteAgents.Enabled = true
	})
	_, agentID := f.registerAgent(t, "/proj/remote")
	ctx := context.Background()

	token, err := f.store.Generate(agentID, tokens.FeatureFlags{})
	require.NoError(t, err)
	_, err = f.agents.End(ctx, agentID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost,
		"/api/remote_agents/"+strconv.Itoa(agentID)+"/shutdown", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Agent already terminated", decode2(t, w.Body.Bytes())["message"])
	assert.Zero(t, f.store.Len(), "token revoked for the dead agent")
}

func TestEventStream_CatchupAndLive(t *testing.T) {
	f := newAPIFixture(t, func(cfg *config.Config) {
		cfg.SSE.HeartbeatInterval = 50 * time.Millisecond
	})
	f.registerAgent(t, "/proj/sse")

	server := httptest.NewServer(f.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		server.URL+"/api/events/stream?last_event_id=0", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	go func() {
		time.Sleep(100 * time.Millisecond)
		f.bcast.Dispatch(events.StreamMessage{Type: events.StreamCardRefresh, Reason: "test"})
	}()

	sawCatchup := false
	sawLive := false
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event:") && strings.Contains(line, "hook_session_start") {
			sawCatchup = true
		}
		if strings.HasPrefix(line, "event:") && strings.Contains(line, "card_refresh") {
			sawLive = true
			break
		}
	}
	assert.True(t, sawCatchup, "persisted events replay first")
	assert.True(t, sawLive, "live dispatches follow")
}
