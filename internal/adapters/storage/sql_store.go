package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"solar-chrome-service/internal/platform/obs"
	"solar-chrome-service/internal/ports"
)

// SQLStore is the Postgres-dialect KeyValueStore used by hosted
// deployments (platform/db opens the pool).
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

// InitSchema creates the kv_store table. Postgres deployments run this
// through dbtool; the SQLite table ships with the reference schema.
func (s *SQLStore) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL
	);
	`

	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init kv schema: %w", err)
	}

	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	defer obs.Time(ctx, "kv.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("kv store: db is nil")
	}
	if key == "" {
		return nil, errEmptyKey
	}

	q := `
	SELECT value
	FROM kv_store
	WHERE key = $1;
	`

	var value []byte
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get kv entry %q: %w", key, err)
	}

	return value, nil
}

func (s *SQLStore) Put(ctx context.Context, key string, value []byte) (err error) {
	defer obs.Time(ctx, "kv.Put")(&err)

	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}
	if key == "" {
		return errEmptyKey
	}

	q := `
	INSERT INTO kv_store (key, value)
	VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("put kv entry %q: %w", key, err)
	}

	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) (err error) {
	defer obs.Time(ctx, "kv.Delete")(&err)

	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}
	if key == "" {
		return errEmptyKey
	}

	q := `DELETE FROM kv_store WHERE key = $1;`

	if _, err := s.DB.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("delete kv entry %q: %w", key, err)
	}

	return nil
}
