// Headspace watcher — the standalone transcript-tailing process. It
// rebuilds the session registry from the database, tails per-session
// JSONL transcripts, feeds parsed turns into the correlator, and closes
// sessions that go quiet. A heartbeated PID file lets the server's
// /health endpoint report on it.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/turn"
	"github.com/headspace-sh/headspace/pkg/config"
	"github.com/headspace-sh/headspace/pkg/correlator"
	"github.com/headspace-sh/headspace/pkg/database"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/lifecycle"
	"github.com/headspace-sh/headspace/pkg/locks"
	"github.com/headspace-sh/headspace/pkg/reaper"
	"github.com/headspace-sh/headspace/pkg/registry"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/statemachine"
	"github.com/headspace-sh/headspace/pkg/tmux"
	"github.com/headspace-sh/headspace/pkg/transcript"
	"github.com/headspace-sh/headspace/pkg/version"
)

// registrySyncInterval is how often the watcher reconciles its in-memory
// registry against the agents table. Hooks land in the server process,
// so the database is the only channel through which new sessions reach
// this process.
const registrySyncInterval = 5 * time.Second

func main() {
	configPath := flag.String("config", config.DefaultConfigPath(),
		"Path to headspace.yaml")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	slog.Info("Starting headspace watcher",
		"version", version.Full(),
		"config", *configPath)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	if cfg.Database.URL != "" && os.Getenv("DATABASE_URL") == "" {
		if err := dbConfig.ApplyURL(cfg.Database.URL); err != nil {
			slog.Error("Invalid database.url", "error", err)
			os.Exit(1)
		}
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Services and the correlator pipeline
	agentService := services.NewAgentService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	personaService := services.NewPersonaService(dbClient.Client)
	commandService := services.NewCommandService(dbClient.Client)
	turnService := services.NewTurnService(dbClient.Client)
	activityService := services.NewActivityService(dbClient.Client, 5*time.Minute)

	writer := events.NewWriter(dbClient.Client,
		cfg.EventSystem.RetryAttempts, cfg.EventSystem.RetryDelay)
	publisher := events.NewPublisher(dbClient.DB())
	lockManager := locks.NewManager(dbClient.DB())

	corr := correlator.New(correlator.Config{
		LockTimeout:       cfg.Correlator.LockTimeout,
		DedupTTL:          cfg.Correlator.DedupTTL,
		CommandsPerMinute: cfg.Correlator.CommandsPerMinute,
	}, dbClient.Client, agentService, commandService, turnService,
		activityService, writer, publisher, lockManager)

	reg := registry.New()

	// 4. Inactivity closure goes through the reaper's close path so both
	// processes end sessions identically: advisory lock, agent row, event
	// log, stream notification. This instance never runs its own sweep
	// loop — the server's reaper owns pane health.
	bridge := tmux.NewBridge(tmux.Config{
		SubprocessTimeout:  cfg.TmuxBridge.SubprocessTimeout,
		TextEnterDelay:     cfg.TmuxBridge.TextEnterDelay,
		SequentialKeyDelay: cfg.TmuxBridge.SequentialKeyDelay,
	})
	controller := lifecycle.NewController(lifecycle.DefaultConfig(),
		projectService, agentService, personaService, bridge, writer, publisher)
	closer := reaper.NewReaper(reaper.Config{
		InactivityTimeout: cfg.FileWatcher.InactivityTimeout,
	}, reg, agentService, activityService, bridge, controller,
		lockManager, writer, publisher)

	// 5. Transcript watcher
	sink := func(ctx context.Context, sessionUUID string, parsed transcript.ParsedTurn) {
		agent, err := resolveAgent(ctx, agentService, sessionUUID)
		if err != nil {
			slog.Warn("Transcript turn for unknown session",
				"session_uuid", sessionUUID, "error", err)
			return
		}
		outcome, err := corr.ObserveTurn(ctx, agent, correlator.TurnObservation{
			Actor:           statemachine.Actor(parsed.Actor),
			Text:            parsed.Text,
			Timestamp:       parsed.Timestamp,
			TimestampSource: turn.TimestampSourceJsonl,
			ContentHash:     parsed.ContentHash(),
		})
		if err != nil {
			slog.Warn("Failed to apply transcript turn",
				"session_uuid", sessionUUID, "error", err)
			return
		}
		if outcome.Transitioned {
			slog.Debug("Transcript turn transitioned state",
				"agent_id", agent.ID,
				"from", outcome.FromState, "to", outcome.ToState)
		}
	}

	inactive := func(ctx context.Context, sessionUUID string) {
		closer.CloseSession(ctx, sessionUUID, "inactivity_timeout")
	}

	watcher := transcript.NewWatcher(transcript.Config{
		HookActiveInterval: cfg.FileWatcher.HookActiveInterval,
		FallbackInterval:   cfg.FileWatcher.FallbackInterval,
		HookActiveWindow:   cfg.FileWatcher.HookActiveWindow,
		DebounceInterval:   cfg.FileWatcher.DebounceInterval,
		InactivityTimeout:  cfg.FileWatcher.InactivityTimeout,
		ProjectsRoot:       cfg.ExpandProjectsRoot(),
	}, reg, sink, inactive)

	// 6. Cross-process hook signal: the server publishes every state
	// change over NOTIFY; receiving one means hooks are flowing, so the
	// watcher may relax its polling.
	broadcaster := events.NewBroadcaster()
	notifyListener := events.NewNotifyListener(dbConfig.URL(), broadcaster)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	hookSignal := broadcaster.Subscribe()
	defer broadcaster.Unsubscribe(hookSignal)
	go func() {
		for msg := range hookSignal.C {
			switch msg.Type {
			case events.StreamSessionCreated, events.StreamStateTransition, events.StreamCardRefresh:
				watcher.NoteHookActivity()
			}
		}
	}()

	// 7. Registry reconciliation loop
	syncCtx, syncCancel := context.WithCancel(ctx)
	defer syncCancel()
	go syncRegistry(syncCtx, reg, agentService)

	// 8. PID heartbeat for /health
	monitor := reaper.NewMonitor(cfg.FileWatcher.PIDFile, 30*time.Second)
	if err := monitor.Start(ctx); err != nil {
		slog.Error("Failed to write PID file", "path", cfg.FileWatcher.PIDFile, "error", err)
		os.Exit(1)
	}
	defer monitor.Stop()

	if err := watcher.Start(ctx); err != nil {
		slog.Error("Failed to start transcript watcher", "error", err)
		os.Exit(1)
	}

	slog.Info("Headspace watcher started",
		"projects_root", cfg.ExpandProjectsRoot(),
		"pid_file", cfg.FileWatcher.PIDFile)

	// 9. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	watcher.Stop()
	slog.Info("Shutdown complete")
}

// resolveAgent maps a registry session UUID to its agent row.
func resolveAgent(ctx context.Context, agents *services.AgentService, sessionUUID string) (*ent.Agent, error) {
	id, err := uuid.Parse(sessionUUID)
	if err != nil {
		return nil, err
	}
	return agents.GetBySessionUUID(ctx, id)
}

// syncRegistry mirrors the active agents table into the in-memory
// registry. Sessions whose agents ended elsewhere are dropped so the
// watcher stops tailing their transcripts.
func syncRegistry(ctx context.Context, reg *registry.Registry, agents *services.AgentService) {
	ticker := time.NewTicker(registrySyncInterval)
	defer ticker.Stop()

	for {
		active, err := agents.ListActiveWithRefs(ctx)
		if err != nil {
			slog.Warn("Registry sync failed", "error", err)
		} else {
			live := make(map[string]bool, len(active))
			for _, agent := range active {
				uuid := agent.SessionUUID.String()
				live[uuid] = true
				if _, ok := reg.Get(uuid); ok {
					continue
				}
				projectPath := ""
				if agent.Edges.Project != nil {
					projectPath = agent.Edges.Project.Path
				}
				reg.Register(uuid, projectPath, projectPath)
				slog.Info("Session adopted from database",
					"session_uuid", uuid, "agent_id", agent.ID)
			}
			for _, sess := range reg.List() {
				if !live[sess.SessionUUID] {
					reg.Remove(sess.SessionUUID)
					slog.Info("Session ended elsewhere, dropped",
						"session_uuid", sess.SessionUUID)
				}
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
