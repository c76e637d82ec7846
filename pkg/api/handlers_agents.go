package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/headspace-sh/headspace/pkg/lifecycle"
	"github.com/headspace-sh/headspace/pkg/services"
	"github.com/headspace-sh/headspace/pkg/tmux"
)

func agentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid_agent_id", "agent id must be an integer", false)
		return 0, false
	}
	return id, true
}

// listAgents returns the card projection for every active agent plus
// the fleet status counts.
func (s *Server) listAgents(c *gin.Context) {
	agentCards, counts, err := s.deps.Cards.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"agents":        agentCards,
		"status_counts": counts,
	})
}

func (s *Server) getAgent(c *gin.Context) {
	id, ok := agentID(c)
	if !ok {
		return
	}
	agent, err := s.deps.Agents.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	card, err := s.deps.Cards.Project(c.Request.Context(), agent)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

type createAgentRequest struct {
	ProjectID       int    `json:"project_id" binding:"required"`
	PersonaSlug     string `json:"persona_slug"`
	PreviousAgentID *int   `json:"previous_agent_id"`
}

func (s *Server) createAgent(c *gin.Context) {
	var req createAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_error", err.Error(), false)
		return
	}

	receipt, err := s.deps.Lifecycle.Create(c.Request.Context(), lifecycle.CreateInput{
		ProjectID:       req.ProjectID,
		PersonaSlug:     req.PersonaSlug,
		PreviousAgentID: req.PreviousAgentID,
	})
	if err != nil {
		// Missing project/persona and inaccessible paths are domain
		// errors on this route, not lookup misses.
		var validErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrNotFound), errors.As(err, &validErr):
			writeError(c, http.StatusUnprocessableEntity, "domain_error", err.Error(), false)
		default:
			mapServiceError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

func (s *Server) deleteAgent(c *gin.Context) {
	id, ok := agentID(c)
	if !ok {
		return
	}
	if err := s.deps.Lifecycle.Shutdown(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// agentContext captures the agent's pane and parses the context status
// line. A missing pane or absent status line is not an error.
func (s *Server) agentContext(c *gin.Context) {
	id, ok := agentID(c)
	if !ok {
		return
	}
	agent, err := s.deps.Agents.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if agent.TmuxPaneID == nil || *agent.TmuxPaneID == "" {
		c.JSON(http.StatusOK, gin.H{"available": false, "reason": "no pane bound"})
		return
	}

	captured, err := s.deps.Bridge.CapturePane(c.Request.Context(), *agent.TmuxPaneID, 30)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"available": false, "reason": err.Error()})
		return
	}
	usage := tmux.ParseContextUsage(captured)
	if usage == nil {
		c.JSON(http.StatusOK, gin.H{"available": false, "reason": "no context status line visible"})
		return
	}

	if err := s.deps.Agents.SetContextUsage(c.Request.Context(), id, usage.PercentUsed, usage.RemainingTokens); err != nil {
		slog.Warn("Failed to store context usage", "agent_id", id, "error", err)
	}
	if s.deps.Activity != nil {
		if err := s.deps.Activity.RecordSnapshot(c.Request.Context(), id, usage.PercentUsed, usage.RemainingTokens, usage.Raw); err != nil {
			slog.Warn("Failed to store snapshot", "agent_id", id, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"available":        true,
		"percent_used":     usage.PercentUsed,
		"remaining_tokens": usage.RemainingTokens,
		"raw":              usage.Raw,
	})
}

type agentInputRequest struct {
	Text string `json:"text" binding:"required"`
}

// agentInput delivers operator text to the agent's pane. The transcript
// watcher picks the exchange up as a normal user turn.
func (s *Server) agentInput(c *gin.Context) {
	id, ok := agentID(c)
	if !ok {
		return
	}
	var req agentInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_error", err.Error(), false)
		return
	}

	agent, err := s.deps.Agents.Get(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if agent.EndedAt != nil {
		writeError(c, http.StatusConflict, "agent_ended", "agent has already ended", false)
		return
	}
	if agent.TmuxPaneID == nil || *agent.TmuxPaneID == "" {
		writeError(c, http.StatusUnprocessableEntity, "pane_unavailable", "agent has no pane bound", false)
		return
	}

	if err := s.deps.Bridge.SendText(c.Request.Context(), *agent.TmuxPaneID, req.Text); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
