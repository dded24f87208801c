package storage

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"solar-chrome-service/internal/adapters/repositories"
	"solar-chrome-service/internal/ports"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// each pooled connection would get its own in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSqliteStoreRoundTrip(t *testing.T) {
	store := NewSqliteStore(openTestDB(t))
	ctx := context.Background()

	if err := store.Put(ctx, "prefs:location", []byte(`{"lat":36.5,"lon":127.8}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "prefs:location")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"lat":36.5,"lon":127.8}`)) {
		t.Fatalf("value = %q", got)
	}

	if err := store.Put(ctx, "prefs:location", []byte(`{"lat":35.1,"lon":129.0}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = store.Get(ctx, "prefs:location")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"lat":35.1,"lon":129.0}`)) {
		t.Fatalf("value after overwrite = %q", got)
	}
}

func TestSqliteStoreMissingKey(t *testing.T) {
	store := NewSqliteStore(openTestDB(t))

	_, err := store.Get(context.Background(), "never-saved")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ports.ErrNotFound", err)
	}
}

func TestSqliteStoreDelete(t *testing.T) {
	store := NewSqliteStore(openTestDB(t))
	ctx := context.Background()

	if err := store.Put(ctx, "theme", []byte(`"dark"`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, "theme"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, "theme"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err after delete = %v, want ports.ErrNotFound", err)
	}
}

func TestSqliteStoreNilDB(t *testing.T) {
	store := &SqliteStore{}
	ctx := context.Background()

	if _, err := store.Get(ctx, "k"); err == nil {
		t.Fatal("expected error with nil DB")
	}
	if err := store.Put(ctx, "k", []byte("v")); err == nil {
		t.Fatal("expected error with nil DB")
	}
	if err := store.Delete(ctx, "k"); err == nil {
		t.Fatal("expected error with nil DB")
	}
}
