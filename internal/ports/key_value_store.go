package ports

import (
	"context"
	"errors"
)

// ErrNotFound reports a key with no stored value. Adapters map their
// native miss signal (sql.ErrNoRows, redis.Nil) to this sentinel.
var ErrNotFound = errors.New("key not found")

// Port: a boundary for durable key/value storage. Values are opaque
// byte slices; callers own serialization. Implementations must be safe
// for concurrent use.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
