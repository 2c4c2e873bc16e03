package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/internal/store"
	"github.com/MKhiriev/freelance-hub/models"
)

func newTestClientService(repo *mockClientRepository) ClientService {
	return NewClientService(repo, logger.Nop())
}

func TestCreateClient_Success(t *testing.T) {
	repo := &mockClientRepository{
		createClientFn: func(ctx context.Context, client models.Client) (models.Client, error) {
			client.ClientID = 1
			client.Projects = []models.Project{}
			return client, nil
		},
	}
	svc := newTestClientService(repo)

	created, err := svc.CreateClient(context.Background(), models.Client{
		Name:  "Acme Corp",
		Email: "contact@acme.test",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ClientID)
	assert.NotNil(t, created.Projects)
}

func TestCreateClient_TrimsWhitespace(t *testing.T) {
	var stored models.Client
	repo := &mockClientRepository{
		createClientFn: func(ctx context.Context, client models.Client) (models.Client, error) {
			stored = client
			return client, nil
		},
	}
	svc := newTestClientService(repo)

	_, err := svc.CreateClient(context.Background(), models.Client{
		Name:        "  Acme Corp  ",
		Email:       " contact@acme.test ",
		CompanyName: " Acme Holdings ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", stored.Name)
	assert.Equal(t, "contact@acme.test", stored.Email)
	assert.Equal(t, "Acme Holdings", stored.CompanyName)
}

func TestCreateClient_Validation(t *testing.T) {
	tests := []struct {
		name   string
		client models.Client
	}{
		{"missing name", models.Client{Email: "contact@acme.test"}},
		{"blank name", models.Client{Name: "   ", Email: "contact@acme.test"}},
		{"missing email", models.Client{Name: "Acme Corp"}},
		{"malformed email", models.Client{Name: "Acme Corp", Email: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repoCalled := false
			repo := &mockClientRepository{
				createClientFn: func(ctx context.Context, client models.Client) (models.Client, error) {
					repoCalled = true
					return client, nil
				},
			}
			svc := newTestClientService(repo)

			_, err := svc.CreateClient(context.Background(), tt.client)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.False(t, repoCalled, "repository must not be reached on validation failure")
		})
	}
}

func TestCreateClient_OptionalCompanyName(t *testing.T) {
	svc := newTestClientService(&mockClientRepository{})

	_, err := svc.CreateClient(context.Background(), models.Client{
		Name:  "Solo",
		Email: "solo@client.test",
	})
	assert.NoError(t, err)
}

func TestCreateClient_EmailTakenPassthrough(t *testing.T) {
	repo := &mockClientRepository{
		createClientFn: func(ctx context.Context, client models.Client) (models.Client, error) {
			return models.Client{}, store.ErrEmailTaken
		},
	}
	svc := newTestClientService(repo)

	_, err := svc.CreateClient(context.Background(), models.Client{
		Name:  "Acme Corp",
		Email: "contact@acme.test",
	})
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestListClients_Delegates(t *testing.T) {
	repo := &mockClientRepository{
		listClientsFn: func(ctx context.Context) ([]models.Client, error) {
			return []models.Client{
				{ClientID: 1, Name: "Acme Corp", Projects: []models.Project{}},
				{ClientID: 2, Name: "Solo", Projects: []models.Project{{ProjectID: 10}}},
			}, nil
		},
	}
	svc := newTestClientService(repo)

	clients, err := svc.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Len(t, clients[1].Projects, 1)
}

func TestDeleteClient_Success(t *testing.T) {
	var deletedID int64
	repo := &mockClientRepository{
		deleteClientFn: func(ctx context.Context, clientID int64) error {
			deletedID = clientID
			return nil
		},
	}
	svc := newTestClientService(repo)

	require.NoError(t, svc.DeleteClient(context.Background(), 5))
	assert.Equal(t, int64(5), deletedID)
}

func TestDeleteClient_InvalidID(t *testing.T) {
	svc := newTestClientService(&mockClientRepository{})

	assert.ErrorIs(t, svc.DeleteClient(context.Background(), 0), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.DeleteClient(context.Background(), -3), ErrInvalidDataProvided)
}

func TestDeleteClient_NotFoundPassthrough(t *testing.T) {
	repo := &mockClientRepository{
		deleteClientFn: func(ctx context.Context, clientID int64) error {
			return store.ErrClientNotFound
		},
	}
	svc := newTestClientService(repo)

	assert.ErrorIs(t, svc.DeleteClient(context.Background(), 99), store.ErrClientNotFound)
}
