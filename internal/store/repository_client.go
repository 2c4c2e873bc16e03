package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/models"
)

// clientRepository is the SQL-backed implementation of [ClientRepository].
//
// Client deletion runs the cascade policy: the client row and every project
// row referencing it are removed inside one transaction, so either both
// disappear or neither does.
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] backed by the provided
// database connection and logger.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// CreateClient persists a new client record and returns it with
// server-assigned fields (ClientID, CreatedAt).
//
// The email uniqueness constraint is the authority for conflicts: a
// violation reported by the engine becomes [ErrEmailTaken], so concurrent
// creates with the same email cannot both succeed.
func (r *clientRepository) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertClientQuery(client)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.CreateClient").Msg("error building insert query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanClient(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.CreateClient").Str("email", client.Email).Msg("error creating client")

		switch {
		case isUniqueViolation(err):
			return models.Client{}, ErrEmailTaken
		default:
			return models.Client{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created.Projects = []models.Project{}

	return created, nil
}

// ListClients returns all clients ordered by id, each with its projects
// eagerly attached. The Projects slice is always non-nil so callers can rely
// on the collection being present.
//
// Two queries are issued (clients, then all projects) and the projects are
// grouped in memory; the project list is ordered by project id within each
// client.
func (r *clientRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listClientsQuery()
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.ListClients").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.ListClients").Msg("error executing clients query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clients := make([]models.Client, 0, 16)
	for rows.Next() {
		client, scanErr := scanClientRows(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*clientRepository.ListClients").Msg("error scanning client row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		client.Projects = []models.Project{}
		clients = append(clients, client)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*clientRepository.ListClients").Msg("error during clients rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	projects, err := r.listAllProjects(ctx)
	if err != nil {
		return nil, err
	}

	byClient := make(map[int64][]models.Project, len(clients))
	for _, project := range projects {
		byClient[project.ClientID] = append(byClient[project.ClientID], project)
	}
	for i := range clients {
		if owned, ok := byClient[clients[i].ClientID]; ok {
			clients[i].Projects = owned
		}
	}

	return clients, nil
}

// DeleteClient removes the client and every project referencing it inside a
// single transaction.
//
// Error handling:
//   - client id not present → [ErrClientNotFound], nothing is deleted.
//   - any failure mid-cascade → transaction rolled back, no partial cascade
//     is observable.
func (r *clientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	projectsQuery, projectsArgs, err := r.db.deleteProjectsByClientQuery(clientID)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Msg("error building projects delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, projectsQuery, projectsArgs...); err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Int64("client_id", clientID).Msg("error deleting owned projects")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	clientQuery, clientArgs, err := r.db.deleteClientQuery(clientID)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Msg("error building client delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, clientQuery, clientArgs...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Int64("client_id", clientID).Msg("error deleting client")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.DeleteClient").Msg("error reading rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*clientRepository.DeleteClient").Int64("client_id", clientID).Msg("error committing cascade delete")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// listAllProjects loads every project ordered by id for in-memory grouping.
func (r *clientRepository) listAllProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listProjectsQuery()
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.listAllProjects").Msg("error building projects query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.listAllProjects").Msg("error executing projects query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 32)
	for rows.Next() {
		project, scanErr := scanProjectRows(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*clientRepository.listAllProjects").Msg("error scanning project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		projects = append(projects, project)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*clientRepository.listAllProjects").Msg("error during projects rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return projects, nil
}

func scanClient(row *sql.Row) (models.Client, error) {
	var client models.Client
	var companyName sql.NullString

	if err := row.Scan(&client.ClientID, &client.Name, &client.Email, &companyName, &client.CreatedAt); err != nil {
		return models.Client{}, err
	}

	client.CompanyName = companyName.String
	return client, nil
}

func scanClientRows(rows *sql.Rows) (models.Client, error) {
	var client models.Client
	var companyName sql.NullString

	if err := rows.Scan(&client.ClientID, &client.Name, &client.Email, &companyName, &client.CreatedAt); err != nil {
		return models.Client{}, err
	}

	client.CompanyName = companyName.String
	return client, nil
}
