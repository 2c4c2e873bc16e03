package store

import (
	"context"

	"github.com/MKhiriev/freelance-hub/models"
)

// UserRepository is the durable credential store: a mapping of username to
// password hash. No update or delete operation is exposed.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ClientRepository persists client records and owns the cascade-delete
// policy: deleting a client atomically removes every project it owns.
type ClientRepository interface {
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	DeleteClient(ctx context.Context, clientID int64) error
}

// ProjectRepository persists project records. Creation requires an existing
// owning client; status changes advance along the status cycle.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	DeleteProject(ctx context.Context, projectID int64) error
	ToggleProjectStatus(ctx context.Context, projectID int64) (models.Project, error)
}
