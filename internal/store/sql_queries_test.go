package store

import (
	"database/sql/driver"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/freelance-hub/models"
)

func postgresQueryDB() *DB {
	return &DB{
		driver:     "pgx",
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		lockSuffix: "FOR UPDATE",
	}
}

func sqliteQueryDB() *DB {
	return &DB{
		driver:  "sqlite3",
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

func Test_insertUserQuery_SQLContainsParts(t *testing.T) {
	db := postgresQueryDB()

	query, args, err := db.insertUserQuery(models.User{Username: "freelancer", PasswordHash: "hash"})
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, "freelancer", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "username")
	require.Contains(t, q, "password_hash")
	require.Contains(t, q, "returning")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_insertClientQuery_NullsEmptyCompanyName(t *testing.T) {
	db := postgresQueryDB()

	_, args, err := db.insertClientQuery(models.Client{Name: "Solo", Email: "solo@client.test"})
	require.NoError(t, err)

	require.Len(t, args, 3)
	companyName, ok := args[2].(driver.Valuer)
	require.True(t, ok, "company_name argument should be a driver.Valuer")

	value, err := companyName.Value()
	require.NoError(t, err)
	require.Nil(t, value, "empty company name should be stored as NULL")
}

func Test_insertProjectQuery_SendsStatusAsString(t *testing.T) {
	db := postgresQueryDB()

	project := models.Project{
		Title:    "Website",
		Budget:   1500.0,
		Status:   models.StatusActive,
		ClientID: 1,
	}

	query, args, err := db.insertProjectQuery(project)
	require.NoError(t, err)

	require.Len(t, args, 5)
	require.Equal(t, "Active", args[3])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into projects")
	require.Contains(t, q, "returning")
}

func Test_selectProjectForToggleQuery_LocksRowOnPostgres(t *testing.T) {
	db := postgresQueryDB()

	query, args, err := db.selectProjectForToggleQuery(7)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(7), args[0])
	require.Contains(t, query, "FOR UPDATE")
	require.Contains(t, query, "$1")
}

func Test_selectProjectForToggleQuery_NoLockOnSQLite(t *testing.T) {
	db := sqliteQueryDB()

	query, _, err := db.selectProjectForToggleQuery(7)
	require.NoError(t, err)

	require.NotContains(t, query, "FOR UPDATE")
	require.Contains(t, query, "?")
}

func Test_deleteProjectsByClientQuery_FiltersByClient(t *testing.T) {
	db := postgresQueryDB()

	query, args, err := db.deleteProjectsByClientQuery(3)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(3), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from projects")
	require.Contains(t, q, "client_id")
}
