package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/internal/store"
	"github.com/MKhiriev/freelance-hub/models"
)

// projectService is the concrete implementation of ProjectService.
type projectService struct {
	projectRepository store.ProjectRepository
	logger            *logger.Logger
}

// NewProjectService constructs a ProjectService wired to the given repository.
func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		logger:            logger,
	}
}

// CreateProject validates and persists a new project under an existing
// client.
//
// Validation rules:
//   - Title must be non-blank.
//   - Budget must not be negative; an omitted budget stays 0.
//   - ClientID must be positive.
//
// The status of a new project is always the initial cycle state regardless
// of the input. Returns the persisted project or ErrInvalidDataProvided
// wrapped with the failing rule; an unknown owning client surfaces as
// store.ErrClientNotFound.
func (s *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	project.Title = strings.TrimSpace(project.Title)
	project.Description = strings.TrimSpace(project.Description)

	if err := validateProject(project); err != nil {
		log.Error().Err(err).Int64("client_id", project.ClientID).Msg("invalid project data provided")
		return models.Project{}, err
	}

	created, err := s.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Int64("client_id", project.ClientID).Msg("project creation ended with error")
		return models.Project{}, fmt.Errorf("project creation ended with error: %w", err)
	}

	return created, nil
}

// ListProjects returns all projects.
func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepository.ListProjects(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("project listing ended with error")
		return nil, fmt.Errorf("project listing ended with error: %w", err)
	}

	return projects, nil
}

// ToggleProjectStatus advances the project's status one step along the
// status cycle and returns the updated project.
func (s *projectService) ToggleProjectStatus(ctx context.Context, projectID int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	if projectID <= 0 {
		log.Error().Int64("project_id", projectID).Msg("invalid project id provided")
		return models.Project{}, fmt.Errorf("%w: project id must be positive", ErrInvalidDataProvided)
	}

	updated, err := s.projectRepository.ToggleProjectStatus(ctx, projectID)
	if err != nil {
		log.Err(err).Int64("project_id", projectID).Msg("project status toggle ended with error")
		return models.Project{}, fmt.Errorf("project status toggle ended with error: %w", err)
	}

	return updated, nil
}

// DeleteProject removes a single project. The owning client is untouched.
func (s *projectService) DeleteProject(ctx context.Context, projectID int64) error {
	log := logger.FromContext(ctx)

	if projectID <= 0 {
		log.Error().Int64("project_id", projectID).Msg("invalid project id provided")
		return fmt.Errorf("%w: project id must be positive", ErrInvalidDataProvided)
	}

	if err := s.projectRepository.DeleteProject(ctx, projectID); err != nil {
		log.Err(err).Int64("project_id", projectID).Msg("project deletion ended with error")
		return fmt.Errorf("project deletion ended with error: %w", err)
	}

	return nil
}

func validateProject(project models.Project) error {
	if project.Title == "" {
		return fmt.Errorf("%w: project title is required", ErrInvalidDataProvided)
	}
	if project.Budget < 0 {
		return fmt.Errorf("%w: project budget must not be negative", ErrInvalidDataProvided)
	}
	if project.ClientID <= 0 {
		return fmt.Errorf("%w: project client id must be positive", ErrInvalidDataProvided)
	}

	return nil
}
