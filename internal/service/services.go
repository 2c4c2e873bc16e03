package service

import (
	"github.com/MKhiriev/freelance-hub/internal/config"
	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/internal/store"
)

// Services bundles every service implementation for injection into the
// transport layer.
type Services struct {
	AuthService    AuthService
	ClientService  ClientService
	ProjectService ProjectService
}

// NewServices constructs all services on the shared repositories.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		ClientService:  NewClientService(repositories.ClientRepository, logger),
		ProjectService: NewProjectService(repositories.ProjectRepository, logger),
	}
}
