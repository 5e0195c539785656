package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/linguahub/translation-dashboard/internal/core/access"
	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

type projectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

// NewProjectService returns a ProjectService implementation.
func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, log zerolog.Logger) ports.ProjectService {
	return &projectService{projects: projects, users: users, log: log}
}

// Create persists a new project owned by the actor. Only clients and
// admins may create projects; title and deadline are required.
func (s *projectService) Create(ctx context.Context, actor *domain.UserProfile, input ports.CreateProjectInput) (*domain.Project, error) {
	if !access.CanCreateProject(actor) {
		return nil, domain.ErrForbidden
	}
	if input.Title == "" || input.Deadline.IsZero() {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		ClientID:    actor.ID,
		Status:      domain.ProjectNotStarted,
		Progress:    0,
		Deadline:    input.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		s.log.Error().Err(err).Str("client_id", actor.ID).Msg("failed to create project")
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.Info().Str("project_id", created.ID).Str("client_id", actor.ID).Msg("project created")
	return created, nil
}

// Update applies a partial update to a project's client-editable fields.
// Omitted patch fields are left untouched.
func (s *projectService) Update(ctx context.Context, actor *domain.UserProfile, projectID string, patch ports.ProjectPatch) (*domain.Project, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !access.CanUpdateProject(actor, project) {
		return nil, domain.ErrForbidden
	}

	if patch.Empty() {
		// Nothing to write; return current state unchanged.
		return project, nil
	}

	updated, err := s.projects.Update(ctx, projectID, patch)
	if err != nil {
		s.log.Error().Err(err).Str("project_id", projectID).Msg("failed to update project")
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.log.Info().Str("project_id", projectID).Str("actor_id", actor.ID).Msg("project updated")
	return updated, nil
}

// List returns projects visible to the actor: everything for admins,
// otherwise only projects whose ownership fields contain the actor.
func (s *projectService) List(ctx context.Context, actor *domain.UserProfile) ([]ports.ProjectSummary, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}

	filter := ports.ListProjectsFilter{}
	if !access.IsAdmin(actor) {
		filter.MemberID = actor.ID
	}

	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	names := s.displayNames(ctx, projects)

	summaries := make([]ports.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, ports.ProjectSummary{
			ID:                p.ID,
			Title:             p.Title,
			Description:       p.Description,
			Status:            string(p.Status),
			Progress:          p.Progress,
			Deadline:          p.Deadline,
			ClientID:          p.ClientID,
			ClientName:        names[p.ClientID],
			TranslatorID:      p.TranslatorID,
			TranslatorName:    names[p.TranslatorID],
			Chapters:          p.Chapters,
			CompletedChapters: p.CompletedChapters,
			CreatedAt:         p.CreatedAt,
		})
	}
	return summaries, nil
}

// displayNames resolves client/translator names for the list view.
// Enrichment is cosmetic: a lookup failure degrades to empty names.
func (s *projectService) displayNames(ctx context.Context, projects []*domain.Project) map[string]string {
	idSet := make(map[string]struct{})
	for _, p := range projects {
		if p.ClientID != "" {
			idSet[p.ClientID] = struct{}{}
		}
		if p.TranslatorID != "" {
			idSet[p.TranslatorID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names, err := s.users.NamesByIDs(ctx, ids)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to resolve display names")
		return nil
	}
	return names
}
