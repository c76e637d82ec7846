package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/headspace-sh/headspace/pkg/correlator"
	"github.com/headspace-sh/headspace/pkg/hooks"
	"github.com/headspace-sh/headspace/pkg/sanitize"
)

// hookResponse is what every hook endpoint returns on success.
type hookResponse struct {
	Success      bool   `json:"success"`
	AgentID      *int   `json:"agent_id,omitempty"`
	StateChanged bool   `json:"state_changed,omitempty"`
	NewState     string `json:"new_state,omitempty"`
}

func bindHook(c *gin.Context) (hooks.Request, bool) {
	var req hooks.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_error", err.Error(), false)
		return hooks.Request{}, false
	}
	return req, true
}

func outcomeResponse(outcome correlator.Outcome) hookResponse {
	resp := hookResponse{Success: true, StateChanged: outcome.Transitioned}
	if outcome.Transitioned {
		resp.NewState = string(outcome.ToState)
	}
	return resp
}

func (s *Server) hookSessionStart(c *gin.Context) {
	req, ok := bindHook(c)
	if !ok {
		return
	}

	agent, err := s.deps.Receiver.SessionStart(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// An operator-created session has a pending intent waiting; adoption
	// binds the pane and injects persona and guardrails. Injection
	// failure does not fail the hook — the session is already live.
	if s.deps.Lifecycle != nil {
		if err := s.deps.Lifecycle.Adopt(c.Request.Context(), agent); err != nil {
			slog.Warn("Adoption failed for new session", "agent_id", agent.ID, "error", err)
		}
	}

	c.JSON(http.StatusOK, hookResponse{Success: true, AgentID: &agent.ID})
}

func (s *Server) hookSessionEnd(c *gin.Context) {
	req, ok := bindHook(c)
	if !ok {
		return
	}
	if err := s.deps.Receiver.SessionEnd(c.Request.Context(), req); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hookResponse{Success: true})
}

func (s *Server) hookUserPrompt(c *gin.Context) {
	req, ok := bindHook(c)
	if !ok {
		return
	}
	outcome, err := s.deps.Receiver.UserPrompt(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if outcome.RateLimited {
		writeRetryAfter(c, http.StatusTooManyRequests, "rate_limited", "command creation rate exceeded", 60)
		return
	}
	c.JSON(http.StatusOK, outcomeResponse(outcome))
}

func (s *Server) hookStop(c *gin.Context) {
	req, ok := bindHook(c)
	if !ok {
		return
	}
	outcome, err := s.deps.Receiver.Stop(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcomeResponse(outcome))
}

func (s *Server) hookNotification(c *gin.Context) {
	req, ok := bindHook(c)
	if !ok {
		return
	}
	outcome, err := s.deps.Receiver.Notification(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcomeResponse(outcome))
}

func (s *Server) hookPostToolUse(c *gin.Context) {
	req, ok := bindHook(c)
	if !ok {
		return
	}

	sanitized := false
	if req.ToolError != "" && sanitize.ContainsErrorPatterns(req.ToolError) {
		req.ToolError = sanitize.Sanitize(req.ToolError)
		sanitized = true
	}

	if err := s.deps.Receiver.PostToolUse(c.Request.Context(), req, sanitized); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hookResponse{Success: true})
}
