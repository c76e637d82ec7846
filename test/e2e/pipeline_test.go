// Package e2e exercises the paths that cross process boundaries in
// production: the HTTP process and the standalone watcher share nothing
// but PostgreSQL, so these tests run two independent database clients
// against one schema and assert the NOTIFY channel and the advisory
// locks hold the system together.
package e2e

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headspace-sh/headspace/ent"
	entcommand "github.com/headspace-sh/headspace/ent/command"
	"github.com/headspace-sh/headspace/ent/turn"
	"github.com/headspace-sh/headspace/pkg/correlator"
	"github.com/headspace-sh/headspace/pkg/database"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/hooks"
	"github.com/headspace-sh/headspace/pkg/locks"
	"github.com/headspace-sh/headspace/pkg/registry"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/statemachine"
	"github.com/headspace-sh/headspace/pkg/transcript"
	testdb "github.com/headspace-sh/headspace/test/database"
)

// replica bundles the per-process pipeline both binaries build at
// startup.
type replica struct {
	db       *database.Client
	reg      *registry.Registry
	agents   *services.AgentService
	projects *services.ProjectService
	commands *services.CommandService
	turns    *services.TurnService
	corr     *correlator.Correlator
	receiver *hooks.Receiver
}

func newReplica(t *testing.T, shared *testdb.SharedTestDB) *replica {
	t.Helper()
	db := shared.NewClient(t)

	reg := registry.New()
	agents := services.NewAgentService(db.Client)
	projects := services.NewProjectService(db.Client)
	commands := services.NewCommandService(db.Client)
	turns := services.NewTurnService(db.Client)
	writer := events.NewWriter(db.Client, 2, 10*time.Millisecond)
	publisher := events.NewPublisher(db.DB())
	lockManager := locks.NewManager(db.DB())

	corr := correlator.New(correlator.DefaultConfig(), db.Client,
		agents, commands, turns, nil, writer, publisher, lockManager)

	return &replica{
		db:       db,
		reg:      reg,
		agents:   agents,
		projects: projects,
		commands: commands,
		turns:    turns,
		corr:     corr,
		receiver: hooks.NewReceiver(reg, projects, agents, corr, writer, publisher, nil),
	}
}

// TestCrossProcessStreamDelivery proves a hook handled in one process
// reaches SSE subscribers attached to another process, with PostgreSQL
// NOTIFY as the only link.
func TestCrossProcessStreamDelivery(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	server := newReplica(t, shared)

	// The "watcher" replica runs only the listener half.
	broadcaster := events.NewBroadcaster()
	listener := events.NewNotifyListener(shared.ConnString(), broadcaster)
	require.NoError(t, listener.Start(ctx))
	defer listener.Stop(ctx)

	sub := broadcaster.Subscribe()
	defer broadcaster.Unsubscribe(sub)

	sessionID := uuid.New().String()
	agent, err := server.receiver.SessionStart(ctx, hooks.Request{
		SessionUUID:      sessionID,
		WorkingDirectory: "/proj/stream",
	})
	require.NoError(t, err)

	_, err = server.receiver.UserPrompt(ctx, hooks.Request{
		SessionUUID: sessionID,
		Prompt:      "Refactor the session reaper",
	})
	require.NoError(t, err)

	deadline := time.After(10 * time.Second)
	for {
		select {
		case msg, ok := <-sub.C:
			require.True(t, ok, "subscriber channel closed before delivery")
			if msg.Type != events.StreamCardRefresh {
				continue
			}
			require.NotNil(t, msg.AgentID)
			assert.Equal(t, agent.ID, *msg.AgentID)
			return
		case <-deadline:
			t.Fatal("no card_refresh crossed the NOTIFY channel")
		}
	}
}

// transcriptLine renders one host-format JSONL entry.
func transcriptLine(t *testing.T, entryType, text string, at time.Time) string {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"type":      entryType,
		"timestamp": at.Format(time.RFC3339),
		"message": map[string]interface{}{
			"role":    entryType,
			"content": text,
		},
	})
	require.NoError(t, err)
	return string(raw) + "\n"
}

// TestTranscriptTailDrivesStateMachine runs the full watcher-side path:
// hooks land in the server replica, the transcript file grows on disk,
// and the watcher replica's tail pushes the agent turn through the
// correlator into PROCESSING.
func TestTranscriptTailDrivesStateMachine(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	server := newReplica(t, shared)
	tail := newReplica(t, shared)

	projectPath := t.TempDir()
	projectsRoot := t.TempDir()
	transcriptDir := filepath.Join(projectsRoot, registry.EncodeProjectPath(projectPath))
	require.NoError(t, os.MkdirAll(transcriptDir, 0o755))

	sessionID := uuid.New().String()
	agent, err := server.receiver.SessionStart(ctx, hooks.Request{
		SessionUUID:      sessionID,
		WorkingDirectory: projectPath,
	})
	require.NoError(t, err)
	out, err := server.receiver.UserPrompt(ctx, hooks.Request{
		SessionUUID: sessionID,
		Prompt:      "Fix the flaky registry test",
	})
	require.NoError(t, err)
	require.True(t, out.CreatedCommand)

	transcriptPath := filepath.Join(transcriptDir, sessionID+".jsonl")
	require.NoError(t, os.WriteFile(transcriptPath,
		[]byte(transcriptLine(t, "assistant", "Reproducing the failure now.", time.Now())),
		0o644))

	sink := func(ctx context.Context, sessionUUID string, parsed transcript.ParsedTurn) {
		id, err := uuid.Parse(sessionUUID)
		require.NoError(t, err)
		a, err := tail.agents.GetBySessionUUID(ctx, id)
		require.NoError(t, err)
		_, err = tail.corr.ObserveTurn(ctx, a, correlator.TurnObservation{
			Actor:           statemachine.Actor(parsed.Actor),
			Text:            parsed.Text,
			Timestamp:       parsed.Timestamp,
			TimestampSource: turn.TimestampSourceJsonl,
			ContentHash:     parsed.ContentHash(),
		})
		require.NoError(t, err)
	}

	tail.reg.Register(sessionID, projectPath, projectPath)
	watcher := transcript.NewWatcher(transcript.Config{
		HookActiveInterval: time.Minute,
		FallbackInterval:   50 * time.Millisecond,
		HookActiveWindow:   time.Minute,
		DebounceInterval:   10 * time.Millisecond,
		InactivityTimeout:  time.Hour,
		ProjectsRoot:       projectsRoot,
	}, tail.reg, sink, func(context.Context, string) {})
	require.NoError(t, watcher.Start(ctx))
	defer watcher.Stop()

	require.Eventually(t, func() bool {
		cmds, err := server.commands.ListForAgent(ctx, agent.ID, 5)
		if err != nil || len(cmds) == 0 {
			return false
		}
		return cmds[0].State == entcommand.StateProcessing
	}, 10*time.Second, 100*time.Millisecond, "agent turn never reached the command")

	// The persisted turn carries the transcript provenance, so a restart
	// re-reading the same file dedups against it.
	cmds, err := server.commands.ListForAgent(ctx, agent.ID, 5)
	require.NoError(t, err)
	rows, err := server.turns.ListForCommand(ctx, cmds[0].ID)
	require.NoError(t, err)
	var sawTranscriptTurn bool
	for _, row := range rows {
		if row.TimestampSource == turn.TimestampSourceJsonl {
			sawTranscriptTurn = true
			require.NotNil(t, row.JsonlEntryHash)
			assert.NotEmpty(t, *row.JsonlEntryHash)
		}
	}
	assert.True(t, sawTranscriptTurn)

	// Re-reading the same content is a no-op: the hash dedup holds even
	// across replicas.
	parsedAgain, _, err := transcript.ReadAppended(transcriptPath, 0)
	require.NoError(t, err)
	require.Len(t, parsedAgain, 1)
	dup, err := tail.corr.ObserveTurn(ctx, mustAgent(t, ctx, tail, sessionID), correlator.TurnObservation{
		Actor:           statemachine.Actor(parsedAgain[0].Actor),
		Text:            parsedAgain[0].Text,
		Timestamp:       parsedAgain[0].Timestamp,
		TimestampSource: turn.TimestampSourceJsonl,
		ContentHash:     parsedAgain[0].ContentHash(),
	})
	require.NoError(t, err)
	assert.True(t, dup.Duplicate)

	after, err := server.turns.ListForCommand(ctx, cmds[0].ID)
	require.NoError(t, err)
	assert.Equal(t, len(rows), len(after), "duplicate observation must not add a turn")
}

func mustAgent(t *testing.T, ctx context.Context, r *replica, sessionID string) *ent.Agent {
	t.Helper()
	id, err := uuid.Parse(sessionID)
	require.NoError(t, err)
	a, err := r.agents.GetBySessionUUID(ctx, id)
	require.NoError(t, err)
	return a
}
