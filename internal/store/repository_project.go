package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/models"
)

// projectRepository is the SQL-backed implementation of [ProjectRepository].
//
// Project creation verifies the owning client exists before inserting and
// additionally translates a foreign-key violation into [ErrClientNotFound],
// so the reference stays valid even when the client is deleted concurrently
// between the check and the insert.
type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by the
// provided database connection and logger.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProject persists a new project owned by an existing client and
// returns it with server-assigned fields (ProjectID, CreatedAt).
//
// The status is always initialized to the status cycle's first member,
// regardless of the input value.
//
// Error handling:
//   - owning client absent (pre-check or FK violation) → [ErrClientNotFound];
//     no project record is persisted.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if err := r.checkClientExists(ctx, project.ClientID); err != nil {
		return models.Project{}, err
	}

	project.Status = models.InitialStatus()

	query, args, err := r.db.insertProjectQuery(project)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Msg("error building insert query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Int64("client_id", project.ClientID).Msg("error creating project")

		switch {
		case isForeignKeyViolation(err):
			return models.Project{}, ErrClientNotFound
		default:
			return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// ListProjects returns all projects ordered by id.
func (r *projectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listProjectsQuery()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error executing projects query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 32)
	for rows.Next() {
		project, scanErr := scanProjectRows(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*projectRepository.ListProjects").Msg("error scanning project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		projects = append(projects, project)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*projectRepository.ListProjects").Msg("error during projects rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return projects, nil
}

// DeleteProject removes the project record.
// Returns [ErrProjectNotFound] if the id does not exist.
func (r *projectRepository) DeleteProject(ctx context.Context, projectID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteProjectQuery(projectID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Int64("project_id", projectID).Msg("error deleting project")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Msg("error reading rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// ToggleProjectStatus advances the project's status one position along the
// status cycle and persists the new value, returning the updated project.
//
// The read and the update run in one transaction with the row locked on
// engines that support it, so concurrent toggles on the same project
// serialize and each observes the previous committed status.
//
// A stored status outside the cycle is repaired: the next value is the
// cycle's initial state.
func (r *projectRepository) ToggleProjectStatus(ctx context.Context, projectID int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ToggleProjectStatus").Msg("error beginning transaction")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	selectQuery, selectArgs, err := r.db.selectProjectForToggleQuery(projectID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ToggleProjectStatus").Msg("error building select query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	project, err := scanProject(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrProjectNotFound
		}

		log.Err(err).Str("func", "*projectRepository.ToggleProjectStatus").Int64("project_id", projectID).Msg("error loading project")
		return models.Project{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if !project.Status.Valid() {
		log.Warn().
			Str("func", "*projectRepository.ToggleProjectStatus").
			Int64("project_id", projectID).
			Str("status", project.Status.String()).
			Msg("unrecognized project status, repairing to the initial state")
	}
	project.Status = project.Status.Next()

	updateQuery, updateArgs, err := r.db.updateProjectStatusQuery(projectID, project.Status)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ToggleProjectStatus").Msg("error building update query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		log.Err(err).Str("func", "*projectRepository.ToggleProjectStatus").Int64("project_id", projectID).Msg("error updating project status")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*projectRepository.ToggleProjectStatus").Int64("project_id", projectID).Msg("error committing status toggle")
		return models.Project{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return project, nil
}

// checkClientExists verifies the owning client is present before an insert.
func (r *projectRepository) checkClientExists(ctx context.Context, clientID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.clientExistsQuery(clientID)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.checkClientExists").Msg("error building select query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrClientNotFound
		}

		log.Err(err).Str("func", "*projectRepository.checkClientExists").Int64("client_id", clientID).Msg("error checking client existence")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func scanProject(row *sql.Row) (models.Project, error) {
	var project models.Project
	var description sql.NullString

	if err := row.Scan(
		&project.ProjectID,
		&project.Title,
		&description,
		&project.Budget,
		&project.Status,
		&project.ClientID,
		&project.CreatedAt,
	); err != nil {
		return models.Project{}, err
	}

	project.Description = description.String
	return project, nil
}

func scanProjectRows(rows *sql.Rows) (models.Project, error) {
	var project models.Project
	var description sql.NullString

	if err := rows.Scan(
		&project.ProjectID,
		&project.Title,
		&description,
		&project.Budget,
		&project.Status,
		&project.ClientID,
		&project.CreatedAt,
	); err != nil {
		return models.Project{}, err
	}

	project.Description = description.String
	return project, nil
}
