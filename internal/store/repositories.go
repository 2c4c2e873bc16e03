package store

import "github.com/MKhiriev/freelance-hub/internal/logger"

// Repositories bundles all repository implementations behind their
// interfaces for injection into the service layer.
type Repositories struct {
	UserRepository    UserRepository
	ClientRepository  ClientRepository
	ProjectRepository ProjectRepository
}

// NewRepositories constructs every repository on the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		ClientRepository:  NewClientRepository(db, logger),
		ProjectRepository: NewProjectRepository(db, logger),
	}
}
