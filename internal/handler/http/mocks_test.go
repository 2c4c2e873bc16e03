package http

import (
	"context"

	"github.com/MKhiriev/freelance-hub/internal/config"
	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/internal/service"
	"github.com/MKhiriev/freelance-hub/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn   func(ctx context.Context, username, password string) (models.User, error)
	loginFn          func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	bootstrapAdminFn func(ctx context.Context) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, username, password)
	}
	return models.User{UserID: 1, Username: username}, nil
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return models.User{UserID: 1, Username: username}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "test-token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1}, nil
}

func (m *mockAuthService) BootstrapAdmin(ctx context.Context) error {
	if m.bootstrapAdminFn != nil {
		return m.bootstrapAdminFn(ctx)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.ClientService
// ─────────────────────────────────────────────

type mockClientService struct {
	createClientFn func(ctx context.Context, client models.Client) (models.Client, error)
	listClientsFn  func(ctx context.Context) ([]models.Client, error)
	deleteClientFn func(ctx context.Context, clientID int64) error
}

func (m *mockClientService) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	if m.createClientFn != nil {
		return m.createClientFn(ctx, client)
	}
	return client, nil
}

func (m *mockClientService) ListClients(ctx context.Context) ([]models.Client, error) {
	if m.listClientsFn != nil {
		return m.listClientsFn(ctx)
	}
	return nil, nil
}

func (m *mockClientService) DeleteClient(ctx context.Context, clientID int64) error {
	if m.deleteClientFn != nil {
		return m.deleteClientFn(ctx, clientID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.ProjectService
// ─────────────────────────────────────────────

type mockProjectService struct {
	createProjectFn       func(ctx context.Context, project models.Project) (models.Project, error)
	listProjectsFn        func(ctx context.Context) ([]models.Project, error)
	toggleProjectStatusFn func(ctx context.Context, projectID int64) (models.Project, error)
	deleteProjectFn       func(ctx context.Context, projectID int64) error
}

func (m *mockProjectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if m.createProjectFn != nil {
		return m.createProjectFn(ctx, project)
	}
	return project, nil
}

func (m *mockProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	if m.listProjectsFn != nil {
		return m.listProjectsFn(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) ToggleProjectStatus(ctx context.Context, projectID int64) (models.Project, error) {
	if m.toggleProjectStatusFn != nil {
		return m.toggleProjectStatusFn(ctx, projectID)
	}
	return models.Project{ProjectID: projectID}, nil
}

func (m *mockProjectService) DeleteProject(ctx context.Context, projectID int64) error {
	if m.deleteProjectFn != nil {
		return m.deleteProjectFn(ctx, projectID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth     *mockAuthService
	clients  *mockClientService
	projects *mockProjectService
}

func newTestHandler(mocks testServices) *Handler {
	if mocks.auth == nil {
		mocks.auth = &mockAuthService{}
	}
	if mocks.clients == nil {
		mocks.clients = &mockClientService{}
	}
	if mocks.projects == nil {
		mocks.projects = &mockProjectService{}
	}

	services := &service.Services{
		AuthService:    mocks.auth,
		ClientService:  mocks.clients,
		ProjectService: mocks.projects,
	}

	return NewHandler(services, config.Auth{}, logger.Nop())
}
