package accounts

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/models"
)

func newRepoWithMock(t *testing.T) (*SQLiteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db), mock
}

var (
	qFind   = regexp.QuoteMeta(`SELECT name, salt, hash FROM accounts WHERE name = ? COLLATE NOCASE`)
	qInsert = regexp.QuoteMeta(`INSERT INTO accounts (name, salt, hash) VALUES (?, ?, ?)`)
	qList   = regexp.QuoteMeta(`SELECT name, salt, hash FROM accounts ORDER BY rowid`)
)

func TestCreate_InsertErrorRollsBack(t *testing.T) {
	r, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(qFind).WithArgs("bob").WillReturnRows(sqlmock.NewRows([]string{"name", "salt", "hash"}))
	mock.ExpectExec(qInsert).WithArgs("bob", "s", "h").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := r.Create(context.Background(), models.Account{Name: "bob", Salt: "s", Hash: "h"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create account[bob]: disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExistingRollsBackWithDuplicate(t *testing.T) {
	r, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(qFind).WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"name", "salt", "hash"}).AddRow("Bob", "s", "h"))
	mock.ExpectRollback()

	err := r.Create(context.Background(), models.Account{Name: "bob", Salt: "s", Hash: "h"})
	assert.ErrorIs(t, err, common.ErrDuplicateAccount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_SuccessCommits(t *testing.T) {
	r, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(qFind).WithArgs("bob").WillReturnRows(sqlmock.NewRows([]string{"name", "salt", "hash"}))
	mock.ExpectExec(qInsert).WithArgs("bob", "s", "h").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, r.Create(context.Background(), models.Account{Name: "bob", Salt: "s", Hash: "h"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFind_DBErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)

	mock.ExpectQuery(qFind).WithArgs("bob").WillReturnError(errors.New("db down"))

	_, err := r.Find(context.Background(), "bob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find account[bob]: db down")
}

func TestList_ScanErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)

	mock.ExpectQuery(qList).WillReturnRows(sqlmock.NewRows([]string{"name", "salt"}).AddRow("a", "b"))

	_, err := r.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan account row")
}

func TestList_RowErrorWrapped(t *testing.T) {
	r, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"name", "salt", "hash"}).
		AddRow("a", "s", "h").
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery(qList).WillReturnRows(rows)

	_, err := r.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to iterate account rows")
}
