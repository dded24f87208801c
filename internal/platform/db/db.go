// Package db opens the shared Postgres pool used by hosted
// deployments for preference storage.
package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects to Postgres via the pgx stdlib driver and verifies the
// connection. Pool limits are sized for the small, read-mostly
// preference workload.
func Open(databaseURL string) (*sql.DB, error) {
	pool, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(10)
	pool.SetConnMaxLifetime(30 * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return pool, nil
}
