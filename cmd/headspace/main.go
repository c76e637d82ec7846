// Headspace server — serves the hook and dashboard HTTP API, runs the
// background workers (scorer, summariser, reaper, retention), and fans
// events out to SSE subscribers.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/headspace-sh/headspace/pkg/api"
	"github.com/headspace-sh/headspace/pkg/cards"
	"github.com/headspace-sh/headspace/pkg/cleanup"
	"github.com/headspace-sh/headspace/pkg/config"
	"github.com/headspace-sh/headspace/pkg/correlator"
	"github.com/headspace-sh/headspace/pkg/database"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/exceptions"
	"github.com/headspace-sh/headspace/pkg/hooks"
	"github.com/headspace-sh/headspace/pkg/lifecycle"
	"github.com/headspace-sh/headspace/pkg/locks"
	"github.com/headspace-sh/headspace/pkg/oracle"
	"github.com/headspace-sh/headspace/pkg/reaper"
	"github.com/headspace-sh/headspace/pkg/registry"
	"github.com/headspace-sh/headspace/pkg/scoring"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/summarize"
	"github.com/headspace-sh/headspace/pkg/tmux"
	"github.com/headspace-sh/headspace/pkg/tokens"
	"github.com/headspace-sh/headspace/pkg/version"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath(),
		"Path to headspace.yaml")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	slog.Info("Starting headspace server",
		"version", version.Full(),
		"config", *configPath)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database. The yaml URL applies only when DATABASE_URL is unset:
	// the environment wins.
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

	reporter := exceptions.NewReporter(exceptions.Config{
		WebhookURL:     cfg.Exceptions.WebhookURL,
		MinInterval:    cfg.Exceptions.MinInterval,
		RequestTimeout: cfg.Exceptions.RequestTimeout,
	})

	// 3. Domain services
	agentService := services.NewAgentService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	personaService := services.NewPersonaService(dbClient.Client)
	objectiveService := services.NewObjectiveService(dbClient.Client)
	commandService := services.NewCommandService(dbClient.Client)
	turnService := services.NewTurnService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	apiLogService := services.NewAPILogService(dbClient.Client)
	activityService := services.NewActivityService(dbClient.Client, 5*time.Minute)
	inferenceLogService := services.NewInferenceLogService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Event plumbing: durable writer, NOTIFY publisher, SSE fan-out
	writer := events.NewWriter(dbClient.Client,
		cfg.EventSystem.RetryAttempts, cfg.EventSystem.RetryDelay)
	publisher := events.NewPublisher(dbClient.DB())
	broadcaster := events.NewBroadcaster()

	notifyListener := events.NewNotifyListener(dbConfig.URL(), broadcaster)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	slog.Info("Streaming infrastructure initialized")

	// 5. Hook pipeline: registry, advisory locks, correlator, receiver
	reg := registry.New()
	lockManager := locks.NewManager(dbClient.DB())
	corr := correlator.New(correlator.Config{
		LockTimeout:       cfg.Correlator.LockTimeout,
		DedupTTL:          cfg.Correlator.DedupTTL,
		CommandsPerMinute: cfg.Correlator.CommandsPerMinute,
	}, dbClient.Client, agentService, commandService, turnService,
		activityService, writer, publisher, lockManager)
	receiver := hooks.NewReceiver(reg, projectService, agentService,
		corr, writer, publisher, nil)

	// 6. Terminal bridge and agent lifecycle
	bridge := tmux.NewBridge(tmux.Config{
		SubprocessTimeout:  cfg.TmuxBridge.SubprocessTimeout,
		TextEnterDelay:     cfg.TmuxBridge.TextEnterDelay,
		SequentialKeyDelay: cfg.TmuxBridge.SequentialKeyDelay,
	})
	controller := lifecycle.NewController(lifecycle.DefaultConfig(),
		projectService, agentService, personaService, bridge, writer, publisher)

	// 7. Inference workers. The oracle is optional: when the gRPC
	// sidecar is unreachable at startup the scorer and summariser stay
	// idle rather than taking the server down.
	var scorer *scoring.Scorer
	var summarizer *summarize.Service
	oracleClient, err := oracle.NewClient(cfg.Oracle.Address, cfg.Oracle.Model, cfg.Oracle.MaxTokens)
	if err != nil {
		slog.Warn("Oracle unavailable, scoring and summarisation disabled",
			"addr", cfg.Oracle.Address, "error", err)
		reporter.Notify("oracle", "oracle unavailable at startup",
			map[string]interface{}{"addr": cfg.Oracle.Address, "error": err.Error()})
	} else {
		defer func() {
			if err := oracleClient.Close(); err != nil {
				slog.Error("Error closing oracle client", "error", err)
			}
		}()
		orc := oracle.New(oracleClient, inferenceLogService, projectService, cfg.Oracle.Timeout)

		scorer = scoring.NewScorer(scoring.Config{
			Interval:  cfg.Scoring.Interval,
			BatchSize: cfg.Scoring.BatchSize,
		}, agentService, commandService, turnService, objectiveService, orc, publisher)
		scorer.Start(ctx)
		defer scorer.Stop()

		summarizer = summarize.NewService(summarize.Config{
			Interval:  cfg.Summarizer.Interval,
			BatchSize: cfg.Summarizer.BatchSize,
		}, turnService, commandService, agentService, orc, publisher)
		summarizer.Start(ctx)
		defer summarizer.Stop()
	}

	// 8. Reaper and retention
	sweeper := reaper.NewReaper(reaper.Config{
		Interval:             cfg.Reaper.Interval,
		PaneFailureThreshold: cfg.Reaper.PaneFailureThreshold,
		InactivityTimeout:    cfg.FileWatcher.InactivityTimeout,
	}, reg, agentService, activityService, bridge, controller,
		lockManager, writer, publisher)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	retention := cleanup.NewService(cfg.Retention, eventService, apiLogService)
	retention.Start(ctx)
	defer retention.Stop()

	// 9. HTTP server
	tokenStore := tokens.NewStore()
	projector := cards.NewProjector(agentService, commandService, turnService,
		cfg.Cards.StaleProcessing)

	httpServer := api.NewServer(api.Deps{
		Config:     cfg,
		DB:         dbClient,
		Receiver:   receiver,
		Lifecycle:  controller,
		Cards:      projector,
		Bridge:     bridge,
		Agents:     agentService,
		Projects:   projectService,
		Personas:   personaService,
		Objectives: objectiveService,
		Events:     eventService,
		APILogs:    apiLogService,
		Activity:   activityService,
		Broadcast:  broadcaster,
		Publisher:  publisher,
		Tokens:     tokenStore,
		Version:    version.Full(),
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.ListenAddr())
		if err := httpServer.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Headspace started", "remote_agents", cfg.RemoteAgents.Enabled)

	// 10. Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
		reporter.Notify("server", "http server failed",
			map[string]interface{}{"error": err.Error()})
	}

	// 11. Graceful shutdown. Deferred worker Stops run after the HTTP
	// listener drains, so in-flight requests keep their backing services.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	broadcaster.CloseAll()

	slog.Info("Shutdown complete")
}
