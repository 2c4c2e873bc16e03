package store

import (
	"database/sql"

	"github.com/MKhiriev/freelance-hub/models"
)

// Column lists shared between INSERT ... RETURNING clauses and SELECTs so
// that scan destinations stay in one obvious order per table.
const (
	userColumns    = "user_id, username, password_hash, created_at"
	clientColumns  = "client_id, name, email, company_name, created_at"
	projectColumns = "project_id, title, description, budget, status, client_id, created_at"
)

// Query builders. All statements are produced through the dialect-aware
// squirrel builder carried by [DB] so the same repository code runs against
// PostgreSQL ($n placeholders) and SQLite (? placeholders).

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

func (db *DB) findUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select(userColumns).
		From(models.User{}.TableName()).
		Where("username = ?", username).
		ToSql()
}

func (db *DB) insertClientQuery(client models.Client) (string, []any, error) {
	return db.builder.
		Insert(client.TableName()).
		Columns("name", "email", "company_name").
		Values(client.Name, client.Email, nullableString(client.CompanyName)).
		Suffix("RETURNING " + clientColumns).
		ToSql()
}

func (db *DB) listClientsQuery() (string, []any, error) {
	return db.builder.
		Select(clientColumns).
		From(models.Client{}.TableName()).
		OrderBy("client_id").
		ToSql()
}

func (db *DB) clientExistsQuery(clientID int64) (string, []any, error) {
	return db.builder.
		Select("client_id").
		From(models.Client{}.TableName()).
		Where("client_id = ?", clientID).
		ToSql()
}

func (db *DB) deleteClientQuery(clientID int64) (string, []any, error) {
	return db.builder.
		Delete(models.Client{}.TableName()).
		Where("client_id = ?", clientID).
		ToSql()
}

func (db *DB) insertProjectQuery(project models.Project) (string, []any, error) {
	return db.builder.
		Insert(project.TableName()).
		Columns("title", "description", "budget", "status", "client_id").
		Values(project.Title, nullableString(project.Description), project.Budget, project.Status.String(), project.ClientID).
		Suffix("RETURNING " + projectColumns).
		ToSql()
}

func (db *DB) listProjectsQuery() (string, []any, error) {
	return db.builder.
		Select(projectColumns).
		From(models.Project{}.TableName()).
		OrderBy("project_id").
		ToSql()
}

func (db *DB) deleteProjectQuery(projectID int64) (string, []any, error) {
	return db.builder.
		Delete(models.Project{}.TableName()).
		Where("project_id = ?", projectID).
		ToSql()
}

func (db *DB) deleteProjectsByClientQuery(clientID int64) (string, []any, error) {
	return db.builder.
		Delete(models.Project{}.TableName()).
		Where("client_id = ?", clientID).
		ToSql()
}

// selectProjectForToggleQuery locks the project row on engines that support
// row locks so concurrent toggles serialize and none observes a stale status.
func (db *DB) selectProjectForToggleQuery(projectID int64) (string, []any, error) {
	builder := db.builder.
		Select(projectColumns).
		From(models.Project{}.TableName()).
		Where("project_id = ?", projectID)

	if db.lockSuffix != "" {
		builder = builder.Suffix(db.lockSuffix)
	}

	return builder.ToSql()
}

func (db *DB) updateProjectStatusQuery(projectID int64, status models.Status) (string, []any, error) {
	return db.builder.
		Update(models.Project{}.TableName()).
		Set("status", status.String()).
		Where("project_id = ?", projectID).
		ToSql()
}

// nullableString maps an empty optional field to SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
