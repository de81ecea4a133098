package local

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresStore(db), mock
}

func TestPostgresStoreEnsureSchema(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS local_storage")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGetItem(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM local_storage WHERE key = $1")).
		WithArgs("userBookings").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))

	got, err := store.GetItem(context.Background(), "userBookings")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreGetItemNotFound(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM local_storage WHERE key = $1")).
		WithArgs("userBookings").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetItem(context.Background(), "userBookings")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreSetItem(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO local_storage (key,value) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()",
	)).
		WithArgs("urbanServices_user", []byte(`{"id":"2"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.SetItem(context.Background(), "urbanServices_user", []byte(`{"id":"2"}`)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreRemoveItem(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM local_storage WHERE key = $1")).
		WithArgs("urbanServices_user").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.RemoveItem(context.Background(), "urbanServices_user"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreExecError(t *testing.T) {
	store, mock := newTestPostgresStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO local_storage")).
		WillReturnError(errors.New("connection reset"))

	err := store.SetItem(context.Background(), "userBookings", []byte("[]"))
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
