package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/persona"
	"github.com/headspace-sh/headspace/pkg/lifecycle"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/tokens"
)

type featureFlagsRequest struct {
	FileUpload   *bool `json:"file_upload"`
	ContextUsage *bool `json:"context_usage"`
	VoiceMic     *bool `json:"voice_mic"`
}

type remoteCreateRequest struct {
	ProjectSlug   string               `json:"project_slug" binding:"required"`
	PersonaSlug   string               `json:"persona_slug" binding:"required"`
	InitialPrompt string               `json:"initial_prompt" binding:"required"`
	FeatureFlags  *featureFlagsRequest `json:"feature_flags"`
}

// remoteCreate spawns an agent for an external caller and waits for the
// session to register so the caller gets a live, addressable agent back.
func (s *Server) remoteCreate(c *gin.Context) {
	var req remoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_error", err.Error(), false)
		return
	}

	project, err := s.deps.Projects.GetBySlug(c.Request.Context(), req.ProjectSlug)
	if errors.Is(err, services.ErrNotFound) {
		writeError(c, http.StatusNotFound, "project_not_found", "unknown project slug", false)
		return
	}
	if err != nil {
		mapServiceError(c, err)
		return
	}

	p, err := s.deps.Personas.GetBySlug(c.Request.Context(), req.PersonaSlug)
	if errors.Is(err, services.ErrNotFound) || (err == nil && p.Status != persona.StatusActive) {
		writeError(c, http.StatusNotFound, "persona_not_found", "unknown or archived persona slug", false)
		return
	}
	if err != nil {
		mapServiceError(c, err)
		return
	}

	receipt, err := s.deps.Lifecycle.Create(c.Request.Context(), lifecycle.CreateInput{
		ProjectID:   project.ID,
		PersonaSlug: req.PersonaSlug,
	})
	if errors.Is(err, lifecycle.ErrMultiplexerMissing) {
		writeError(c, http.StatusServiceUnavailable, "services_unavailable", "terminal multiplexer is not available", true)
		return
	}
	if err != nil {
		mapServiceError(c, err)
		return
	}

	agent, ok := s.awaitAdoption(c, receipt.PaneID)
	if !ok {
		writeRetryAfter(c, http.StatusRequestTimeout, "agent_not_ready",
			"agent session did not register in time", 15)
		return
	}

	if err := s.deps.Bridge.SendText(c.Request.Context(), receipt.PaneID, req.InitialPrompt); err != nil {
		mapServiceError(c, err)
		return
	}

	flags := s.resolveFlags(req.FeatureFlags)
	token, err := s.deps.Tokens.Generate(agent.ID, flags)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"agent_id":          agent.ID,
		"embed_url":         s.embedURL(agent.ID),
		"session_token":     token,
		"tmux_session_name": receipt.TmuxSessionName,
		"feature_flags":     flags,
	})
}

// awaitAdoption polls until the spawned pane is bound to a registered
// agent, or the creation timeout elapses.
func (s *Server) awaitAdoption(c *gin.Context, paneID string) (*ent.Agent, bool) {
	timeout := s.deps.Config.RemoteAgents.CreationTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		agents, err := s.deps.Agents.ListActive(c.Request.Context())
		if err == nil {
			for _, agent := range agents {
				if agent.TmuxPaneID != nil && *agent.TmuxPaneID == paneID {
					return agent, true
				}
			}
		}
		select {
		case <-c.Request.Context().Done():
			return nil, false
		case <-time.After(500 * time.Millisecond):
		}
	}
	return nil, false
}

func (s *Server) resolveFlags(req *featureFlagsRequest) tokens.FeatureFlags {
	defaults := s.deps.Config.RemoteAgents.EmbedDefaults
	flags := tokens.FeatureFlags{
		FileUpload:   defaults.FileUpload,
		ContextUsage: defaults.ContextUsage,
		VoiceMic:     defaults.VoiceMic,
	}
	if req == nil {
		return flags
	}
	if req.FileUpload != nil {
		flags.FileUpload = *req.FileUpload
	}
	if req.ContextUsage != nil {
		flags.ContextUsage = *req.ContextUsage
	}
	if req.VoiceMic != nil {
		flags.VoiceMic = *req.VoiceMic
	}
	return flags
}

func (s *Server) embedURL(agentID int) string {
	base := strings.TrimRight(s.deps.Config.Server.ApplicationURL, "/")
	return fmt.Sprintf("%s/embed/agents/%d", base, agentID)
}

func (s *Server) remoteAlive(c *gin.Context) {
	id, ok := agentID(c)
	if !ok {
		return
	}
	agent, err := s.deps.Agents.Get(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		writeError(c, http.StatusNotFound, "agent_not_found", "unknown agent", false)
		return
	}
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alive": agent.EndedAt == nil})
}

func (s *Server) remoteShutdown(c *gin.Context) {
	id, ok := agentID(c)
	if !ok {
		return
	}
	agent, err := s.deps.Agents.Get(c.Request.Context(), id)
	if errors.Is(err, services.ErrNotFound) {
		writeError(c, http.StatusNotFound, "agent_not_found", "unknown agent", false)
		return
	}
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if agent.EndedAt != nil {
		s.deps.Tokens.RevokeForAgent(agent.ID)
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Agent already terminated"})
		return
	}

	if err := s.deps.Lifecycle.Shutdown(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Agent shutdown initiated"})
}
