package service

import (
	"context"

	"github.com/MKhiriev/freelance-hub/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.ClientRepository
// ─────────────────────────────────────────────

type mockClientRepository struct {
	createClientFn func(ctx context.Context, client models.Client) (models.Client, error)
	listClientsFn  func(ctx context.Context) ([]models.Client, error)
	deleteClientFn func(ctx context.Context, clientID int64) error
}

func (m *mockClientRepository) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	if m.createClientFn != nil {
		return m.createClientFn(ctx, client)
	}
	return client, nil
}

func (m *mockClientRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	if m.listClientsFn != nil {
		return m.listClientsFn(ctx)
	}
	return nil, nil
}

func (m *mockClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	if m.deleteClientFn != nil {
		return m.deleteClientFn(ctx, clientID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ProjectRepository
// ─────────────────────────────────────────────

type mockProjectRepository struct {
	createProjectFn       func(ctx context.Context, project models.Project) (models.Project, error)
	listProjectsFn        func(ctx context.Context) ([]models.Project, error)
	deleteProjectFn       func(ctx context.Context, projectID int64) error
	toggleProjectStatusFn func(ctx context.Context, projectID int64) (models.Project, error)
}

func (m *mockProjectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.createProjectFn != nil {
		return m.createProjectFn(ctx, project)
	}
	return project, nil
}

func (m *mockProjectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	if m.listProjectsFn != nil {
		return m.listProjectsFn(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepository) DeleteProject(ctx context.Context, projectID int64) error {
	if m.deleteProjectFn != nil {
		return m.deleteProjectFn(ctx, projectID)
	}
	return nil
}

func (m *mockProjectRepository) ToggleProjectStatus(ctx context.Context, projectID int64) (models.Project, error) {
	if m.toggleProjectStatusFn != nil {
		return m.toggleProjectStatusFn(ctx, projectID)
	}
	return models.Project{}, nil
}
