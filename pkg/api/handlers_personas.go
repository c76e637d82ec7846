package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/pkg/services"
)

type registerPersonaRequest struct {
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Description string `json:"description"`
	SkillPath   string `json:"skill_path"`
}

func (s *Server) registerPersona(c *gin.Context) {
	var req registerPersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "validation_error", err.Error(), false)
		return
	}

	role, err := s.deps.Personas.EnsureRole(c.Request.Context(), req.Role)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	persona, err := s.deps.Personas.Register(c.Request.Context(), services.RegisterPersonaInput{
		Slug:        services.Slugify(req.Name),
		Name:        req.Name,
		Description: req.Description,
		SkillPath:   req.SkillPath,
		RoleID:      &role.ID,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	path := ""
	if persona.SkillPath != nil {
		path = *persona.SkillPath
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":   persona.ID,
		"slug": persona.Slug,
		"path": path,
	})
}

type personaView struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

func (s *Server) activePersonas(c *gin.Context) {
	personas, err := s.deps.Personas.ListActive(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}

	views := make([]personaView, 0, len(personas))
	for _, p := range personas {
		views = append(views, personaView{
			ID:          p.ID,
			Slug:        p.Slug,
			Name:        p.Name,
			Role:        personaRole(p),
			Description: personaDescription(p),
		})
	}
	c.JSON(http.StatusOK, gin.H{"personas": views})
}

func personaRole(p *ent.Persona) string {
	if p.Edges.Role != nil {
		return p.Edges.Role.Name
	}
	return ""
}

func personaDescription(p *ent.Persona) string {
	if p.Description != nil {
		return *p.Description
	}
	return ""
}

func (s *Server) archivePersona(c *gin.Context) {
	if err := s.deps.Personas.Archive(c.Request.Context(), c.Param("slug")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
