// Package api is the HTTP surface: hook ingestion, the dashboard REST
// routes, the remote-agent family, and the SSE stream.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/headspace-sh/headspace/pkg/cards"
	"github.com/headspace-sh/headspace/pkg/config"
	"github.com/headspace-sh/headspace/pkg/database"
	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/hooks"
	"github.com/headspace-sh/headspace/pkg/lifecycle"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/tokens"
)

// PaneCapturer is the slice of the terminal bridge the API needs: text
// delivery for operator input and pane capture for the context
// endpoint.
type PaneCapturer interface {
	SendText(ctx context.Context, pane, text string) error
	CapturePane(ctx context.Context, pane string, lines int) (string, error)
}

// Deps collects everything the server serves from.
type Deps struct {
	Config     *config.Config
	DB         *database.Client
	Receiver   *hooks.Receiver
	Lifecycle  *lifecycle.Controller
	Cards      *cards.Projector
	Bridge     PaneCapturer
	Agents     *services.AgentService
	Projects   *services.ProjectService
	Personas   *services.PersonaService
	Objectives *services.ObjectiveService
	Events     *services.EventService
	APILogs    *services.APILogService
	Activity   *services.ActivityService
	Broadcast  *events.Broadcaster
	Publisher  *events.Publisher
	Tokens     *tokens.Store
	Version    string

	// WatcherStaleAfter bounds the watcher PID heartbeat age before
	// /health reports degraded.
	WatcherStaleAfter time.Duration
}

// Server is the HTTP service.
type Server struct {
	deps Deps
	http *http.Server
}

// NewServer builds the server and its router.
func NewServer(deps Deps) *Server {
	if deps.WatcherStaleAfter <= 0 {
		deps.WatcherStaleAfter = 5 * time.Minute
	}
	s := &Server{deps: deps}
	s.http = &http.Server{
		Addr:    deps.Config.ListenAddr(),
		Handler: s.Router(),
	}
	return s
}

// Router assembles the gin engine. Exposed separately so tests can
// drive it with httptest.
func (s *Server) Router() *gin.Engine {
	if !s.deps.Config.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLog())
	if s.deps.APILogs != nil {
		r.Use(s.auditLog([]string{"/api/", "/hook/"}))
	}

	r.GET("/health", s.health)

	hook := r.Group("/hook")
	{
		hook.POST("/session-start", s.hookSessionStart)
		hook.POST("/session-end", s.hookSessionEnd)
		hook.POST("/user-prompt-submit", s.hookUserPrompt)
		hook.POST("/stop", s.hookStop)
		hook.POST("/notification", s.hookNotification)
		hook.POST("/post-tool-use", s.hookPostToolUse)
	}

	api := r.Group("/api")
	{
		api.GET("/agents", s.listAgents)
		api.POST("/agents", s.createAgent)
		api.GET("/agents/:id", s.getAgent)
		api.DELETE("/agents/:id", s.deleteAgent)
		api.GET("/agents/:id/context", s.agentContext)
		api.POST("/agents/:id/input", s.agentInput)

		api.POST("/personas/register", s.registerPersona)
		api.GET("/personas/active", s.activePersonas)
		api.POST("/personas/:slug/archive", s.archivePersona)

		api.GET("/objective", s.getObjective)
		api.PUT("/objective", s.setObjective)

		api.GET("/projects", s.listProjects)
		api.POST("/projects/:id/pause_inference", s.pauseInference)
		api.POST("/projects/:id/resume_inference", s.resumeInference)

		api.GET("/events/stream", s.streamEvents)
	}

	if s.deps.Config.RemoteAgents.Enabled {
		remote := r.Group("/api/remote_agents")
		remote.Use(corsForOrigins(s.deps.Config.RemoteAgents.CORSOrigins))
		remote.POST("/create", s.remoteCreate)
		remote.OPTIONS("/create", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		scoped := remote.Group("/:id")
		scoped.Use(s.remoteAgentAuth())
		scoped.GET("/alive", s.remoteAlive)
		scoped.POST("/shutdown", s.remoteShutdown)
		scoped.OPTIONS("/*any", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	return r
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	slog.Info("HTTP server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
