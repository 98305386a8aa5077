// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewMockDB returns an sqlx handle backed by sqlmock. Unmet expectations
// fail the test during cleanup.
func NewMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	return newMockDB(t, false)
}

// NewMockDBWithPings is NewMockDB with Ping calls checked against
// ExpectPing expectations.
func NewMockDBWithPings(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	return newMockDB(t, true)
}

func newMockDB(t *testing.T, pings bool) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(pings))
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "postgres")
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return db, mock
}

// ExistsRows is the single-column result of a SELECT EXISTS(...) probe
func ExistsRows(exists bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(exists)
}
