package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Store failures are hard to provoke against a real file, so these paths
// run against a mocked driver.

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return &DB{mockDB}, mock
}

func TestListProjectsQueryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM projects").WillReturnError(errors.New("disk I/O error"))

	_, err := db.ListProjects()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list projects")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReportsQueryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM reports").WillReturnError(errors.New("database is locked"))

	_, err := db.ListReports()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list reports")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertContactExecFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO contacts").WillReturnError(errors.New("database is locked"))

	err := db.InsertContact(&Contact{Name: "n", Email: "e@example.com", Message: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert contact")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatsCountFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("disk I/O error"))

	_, err := db.GetStats()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count projects")
	assert.NoError(t, mock.ExpectationsWereMet())
}
