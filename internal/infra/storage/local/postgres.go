package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-UrbanServices/pkg/psqlbuilder"
)

const tableName = "local_storage"

const createTableQuery = `CREATE TABLE IF NOT EXISTS local_storage (
	key        TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresStore хранилище записей в таблице local_storage
type PostgresStore struct {
	db DBExecutor
}

// NewPostgresStore создает хранилище поверх PostgreSQL
func NewPostgresStore(db DBExecutor) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema создает таблицу, если её ещё нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// GetItem возвращает значение записи
func (s *PostgresStore) GetItem(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("value").
		From(tableName).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetItem - build select query: %v", ErrBuildQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetItem - scan value: %v", ErrScanRow, err)
	}

	return value, nil
}

// SetItem перезаписывает значение записи целиком (upsert по ключу)
func (s *PostgresStore) SetItem(ctx context.Context, key string, value []byte) error {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetItem - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetItem - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveItem удаляет запись; отсутствие записи не является ошибкой
func (s *PostgresStore) RemoveItem(ctx context.Context, key string) error {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveItem - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RemoveItem - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
