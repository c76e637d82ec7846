package services

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/headspace-sh/headspace/ent"
	"github.com/headspace-sh/headspace/ent/project"
)

// ProjectService manages projects and the inference pause switch.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a stable project slug from a filesystem path.
func Slugify(path string) string {
	base := strings.ToLower(filepath.Base(strings.TrimRight(path, "/")))
	slug := strings.Trim(slugRe.ReplaceAllString(base, "-"), "-")
	if slug == "" {
		slug = "project"
	}
	return slug
}

// FindOrCreateByPath returns the project rooted at path, creating it on
// first sight. Concurrent creates collapse onto the existing row.
func (s *ProjectService) FindOrCreateByPath(ctx context.Context, path string) (*ent.Project, error) {
	if path == "" {
		return nil, NewValidationError("path", "required")
	}
	path = strings.TrimRight(path, "/")

	existing, err := s.client.Project.Query().
		Where(project.PathEQ(path)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	slug := Slugify(path)
	created, err := s.client.Project.Create().
		SetSlug(slug).
		SetName(filepath.Base(path)).
		SetPath(path).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the create race, or the slug is taken by a project at
			// another path. Retry by path, then disambiguate the slug.
			if existing, qerr := s.client.Project.Query().Where(project.PathEQ(path)).Only(ctx); qerr == nil {
				return existing, nil
			}
			created, err = s.client.Project.Create().
				SetSlug(fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli()%100000)).
				SetName(filepath.Base(path)).
				SetPath(path).
				Save(ctx)
			if err == nil {
				return created, nil
			}
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// GetBySlug retrieves a project by slug.
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*ent.Project, error) {
	p, err := s.client.Project.Query().Where(project.SlugEQ(slug)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// Get retrieves a project by id.
func (s *ProjectService) Get(ctx context.Context, id int) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// List returns all projects ordered by slug.
func (s *ProjectService) List(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Asc(project.FieldSlug)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// PauseInference stops all Oracle traffic for a project. Reason is
// surfaced on the dashboard.
func (s *ProjectService) PauseInference(ctx context.Context, id int, reason string) error {
	err := s.client.Project.UpdateOneID(id).
		SetInferencePaused(true).
		SetInferencePausedReason(reason).
		SetInferencePausedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// ResumeInference clears the pause triplet.
func (s *ProjectService) ResumeInference(ctx context.Context, id int) error {
	err := s.client.Project.UpdateOneID(id).
		SetInferencePaused(false).
		ClearInferencePausedReason().
		ClearInferencePausedAt().
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// InferencePaused reports whether Oracle calls are currently blocked
// for the project.
func (s *ProjectService) InferencePaused(ctx context.Context, id int) (bool, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return p.InferencePaused, nil
}
