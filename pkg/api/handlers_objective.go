package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/headspace-sh/headspace/pkg/events"
	"github.com/headspace-sh/headspace/pkg/services"
)

func (s *Server) getObjective(c *gin.Context) {
	objective, err := s.deps.Objectives.Current(c.Request.Context())
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"objective": nil})
		return
	}
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"objective": gin.H{
		"text":             objective.Text,
		"priority_enabled": objective.PriorityEnabled,
		"updated_at":       objective.UpdatedAt,
	}})
}

type setObjectiveRequest struct {
	Text            string `json:"text" binding:"required"`
	PriorityEnabled bool   `json:"priority_enabled"`
}

func (s *Server) setObjective(c *gin.Context) {
	var req setObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_error", err.Error(), false)
		return
	}

	objective, err := s.deps.Objectives.Set(c.Request.Context(), req.Text, req.PriorityEnabled)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if s.deps.Publisher != nil {
		s.deps.Publisher.Publish(c.Request.Context(), events.StreamMessage{
			Type: events.StreamObjectiveChanged,
			Data: map[string]interface{}{
				"text":             objective.Text,
				"priority_enabled": objective.PriorityEnabled,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"text":             objective.Text,
		"priority_enabled": objective.PriorityEnabled,
	})
}

func (s *Server) listProjects(c *gin.Context) {
	projects, err := s.deps.Projects.List(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func projectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid_project_id", "project id must be an integer", false)
		return 0, false
	}
	return id, true
}

type pauseInferenceRequest struct {
	Reason string `json:"reason"`
}

func (s *Server) pauseInference(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	var req pauseInferenceRequest
	_ = c.ShouldBindJSON(&req)
	if req.Reason == "" {
		req.Reason = "operator"
	}

	if err := s.deps.Projects.PauseInference(c.Request.Context(), id, req.Reason); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "inference_paused": true})
}

func (s *Server) resumeInference(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	if err := s.deps.Projects.ResumeInference(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "inference_paused": false})
}
