package service

import (
	"context"

	"github.com/MKhiriev/freelance-hub/models"
)

// AuthService owns account registration, credential verification and the
// session token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	BootstrapAdmin(ctx context.Context) error
}

// ClientService validates and orchestrates client operations on top of the
// client repository.
type ClientService interface {
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

// ProjectService validates and orchestrates project operations on top of the
// project repository.
type ProjectService interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	ToggleProjectStatus(ctx context.Context, projectID int64) (models.Project, error)
	DeleteProject(ctx context.Context, projectID int64) error
}
