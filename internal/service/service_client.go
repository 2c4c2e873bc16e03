package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/internal/store"
	"github.com/MKhiriev/freelance-hub/models"
)

// clientService is the concrete implementation of ClientService.
type clientService struct {
	clientRepository store.ClientRepository
	logger           *logger.Logger
}

// NewClientService constructs a ClientService wired to the given repository.
func NewClientService(clientRepository store.ClientRepository, logger *logger.Logger) ClientService {
	return &clientService{
		clientRepository: clientRepository,
		logger:           logger,
	}
}

// CreateClient validates and persists a new client.
//
// Validation rules:
//   - Name must be non-blank.
//   - Email must be non-blank and a parseable address.
//
// CompanyName is optional. Returns the persisted client (with a
// server-assigned ClientID and an empty projects collection) or
// ErrInvalidDataProvided wrapped with the failing rule; conflicts surface as
// store.ErrEmailTaken.
func (s *clientService) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	client.Name = strings.TrimSpace(client.Name)
	client.Email = strings.TrimSpace(client.Email)
	client.CompanyName = strings.TrimSpace(client.CompanyName)

	if err := validateClient(client); err != nil {
		log.Error().Err(err).Str("email", client.Email).Msg("invalid client data provided")
		return models.Client{}, err
	}

	created, err := s.clientRepository.CreateClient(ctx, client)
	if err != nil {
		log.Err(err).Str("email", client.Email).Msg("client creation ended with error")
		return models.Client{}, fmt.Errorf("client creation ended with error: %w", err)
	}

	return created, nil
}

// ListClients returns all clients with their projects attached.
func (s *clientService) ListClients(ctx context.Context) ([]models.Client, error) {
	clients, err := s.clientRepository.ListClients(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("client listing ended with error")
		return nil, fmt.Errorf("client listing ended with error: %w", err)
	}

	return clients, nil
}

// DeleteClient removes the client and, transitively, every project it owns.
// Returns ErrInvalidDataProvided for a non-positive id and passes through
// store.ErrClientNotFound for an unknown one.
func (s *clientService) DeleteClient(ctx context.Context, clientID int64) error {
	log := logger.FromContext(ctx)

	if clientID <= 0 {
		log.Error().Int64("client_id", clientID).Msg("invalid client id provided")
		return fmt.Errorf("%w: client id must be positive", ErrInvalidDataProvided)
	}

	if err := s.clientRepository.DeleteClient(ctx, clientID); err != nil {
		log.Err(err).Int64("client_id", clientID).Msg("client deletion ended with error")
		return fmt.Errorf("client deletion ended with error: %w", err)
	}

	return nil
}

func validateClient(client models.Client) error {
	if client.Name == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidDataProvided)
	}
	if client.Email == "" {
		return fmt.Errorf("%w: client email is required", ErrInvalidDataProvided)
	}
	if _, err := mail.ParseAddress(client.Email); err != nil {
		return fmt.Errorf("%w: client email is malformed", ErrInvalidDataProvided)
	}

	return nil
}
