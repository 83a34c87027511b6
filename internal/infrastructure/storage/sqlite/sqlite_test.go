package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"digitalwill/internal/infrastructure/migration"
)

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, slog.Default()), mock
}

func TestStore_GetHit(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("digitalWillUser").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"id":"1"}`)))

	got, ok, err := s.Get(context.Background(), "digitalWillUser")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetMiss(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WithArgs("k").
		WillReturnError(sql.ErrNoRows)

	got, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_GetError(t *testing.T) {
	s, mock := newMock(t)

	boom := errors.New("disk I/O error")
	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WithArgs("k").WillReturnError(boom)

	_, _, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, boom)
}

func TestStore_Set(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(setQuery)).
		WithArgs("k", []byte("v"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Delete(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_File(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	s, err := Open(ctx, path, migration.DefaultEngine, slog.Default())
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "k", []byte("first")))
	require.NoError(t, s.Set(ctx, "k", []byte("second")))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path, migration.DefaultEngine, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", string(got))
}
