package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"solar-chrome-service/internal/ports"
)

// SQLite-backed KeyValueStore over the kv_store table. This is the
// server's default persistence; the schema comes from
// repositories.InitSchema.
type SqliteStore struct {
	DB *sql.DB
}

func NewSqliteStore(db *sql.DB) *SqliteStore {
	return &SqliteStore{DB: db}
}

func (s *SqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.DB == nil {
		return nil, errors.New("kv store: db is nil")
	}
	if key == "" {
		return nil, errEmptyKey
	}

	q := `
	SELECT value
	FROM kv_store
	WHERE key = ?;
	`

	var value []byte
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get kv entry %q: %w", key, err)
	}

	return value, nil
}

func (s *SqliteStore) Put(ctx context.Context, key string, value []byte) error {
	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}
	if key == "" {
		return errEmptyKey
	}

	q := `
	INSERT OR REPLACE INTO kv_store (key, value)
	VALUES (?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("put kv entry %q: %w", key, err)
	}

	return nil
}

func (s *SqliteStore) Delete(ctx context.Context, key string) error {
	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}
	if key == "" {
		return errEmptyKey
	}

	q := `DELETE FROM kv_store WHERE key = ?;`

	if _, err := s.DB.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("delete kv entry %q: %w", key, err)
	}

	return nil
}
