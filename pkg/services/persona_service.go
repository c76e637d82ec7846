package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/persona"
	"github.com/headspace-sh/headspace/ent/role"
)

// PersonaService manages the persona catalogue.
type PersonaService struct {
	client *ent.Client
}

// NewPersonaService creates a new PersonaService.
func NewPersonaService(client *ent.Client) *PersonaService {
	return &PersonaService{client: client}
}

// RegisterPersonaInput is an idempotent persona registration.
type RegisterPersonaInput struct {
	Slug        string
	Name        string
	Description string
	SkillPath   string
	RoleID      *int
}

// Register upserts a persona by slug: a known slug updates in place and
// reactivates an archived persona.
func (s *PersonaService) Register(ctx context.Context, input RegisterPersonaInput) (*ent.Persona, error) {
	if input.Slug == "" {
		return nil, NewValidationError("slug", "required")
	}
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	existing, err := s.client.Persona.Query().
		Where(persona.SlugEQ(input.Slug)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query persona: %w", err)
	}

	if existing != nil {
		builder := existing.Update().
			SetName(input.Name).
			SetStatus(persona.StatusActive).
			ClearArchivedAt()
		if input.Description != "" {
			builder.SetDescription(input.Description)
		}
		if input.SkillPath != "" {
			builder.SetSkillPath(input.SkillPath)
		}
		if input.RoleID != nil {
			builder.SetRoleID(*input.RoleID)
		}
		updated, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update persona: %w", err)
		}
		return updated, nil
	}

	builder := s.client.Persona.Create().
		SetSlug(input.Slug).
		SetName(input.Name).
		SetStatus(persona.StatusActive)
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}
	if input.SkillPath != "" {
		builder.SetSkillPath(input.SkillPath)
	}
	if input.RoleID != nil {
		builder.SetRoleID(*input.RoleID)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create persona: %w", err)
	}
	return created, nil
}

// GetBySlug retrieves a persona by slug.
func (s *PersonaService) GetBySlug(ctx context.Context, slug string) (*ent.Persona, error) {
	p, err := s.client.Persona.Query().Where(persona.SlugEQ(slug)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get persona: %w", err)
	}
	return p, nil
}

// Get retrieves a persona by id.
func (s *PersonaService) Get(ctx context.Context, id int) (*ent.Persona, error) {
	p, err := s.client.Persona.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get persona: %w", err)
	}
	return p, nil
}

// ListActive returns active personas with their role loaded, ordered
// by (role name, persona name).
func (s *PersonaService) ListActive(ctx context.Context) ([]*ent.Persona, error) {
	personas, err := s.client.Persona.Query().
		Where(persona.StatusEQ(persona.StatusActive)).
		WithRole().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list personas: %w", err)
	}
	sort.Slice(personas, func(i, j int) bool {
		ri, rj := roleName(personas[i]), roleName(personas[j])
		if ri != rj {
			return ri < rj
		}
		return personas[i].Name < personas[j].Name
	})
	return personas, nil
}

func roleName(p *ent.Persona) string {
	if p.Edges.Role != nil {
		return p.Edges.Role.Name
	}
	return ""
}

// EnsureRole returns the role with the given name, creating it on first
// sight.
func (s *PersonaService) EnsureRole(ctx context.Context, name string) (*ent.Role, error) {
	if name == "" {
		return nil, NewValidationError("role", "required")
	}
	existing, err := s.client.Role.Query().Where(role.NameEQ(name)).First(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query role: %w", err)
	}
	created, err := s.client.Role.Create().SetName(name).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return created, nil
}

// Archive retires a persona. Running agents keep their reference.
func (s *PersonaService) Archive(ctx context.Context, slug string) error {
	p, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return p.Update().
		SetStatus(persona.StatusArchived).
		SetArchivedAt(time.Now()).
		Exec(ctx)
}
