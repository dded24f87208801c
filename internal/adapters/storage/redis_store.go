package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"solar-chrome-service/internal/ports"
)

// RedisStore keeps preferences in Redis so multiple instances share
// one view. Entries never expire; callers overwrite or delete them.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.Client == nil {
		return nil, errors.New("kv store: redis client is nil")
	}
	if key == "" {
		return nil, errEmptyKey
	}

	value, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get kv entry %q: %w", key, err)
	}

	return value, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if s.Client == nil {
		return errors.New("kv store: redis client is nil")
	}
	if key == "" {
		return errEmptyKey
	}

	if err := s.Client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("put kv entry %q: %w", key, err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if s.Client == nil {
		return errors.New("kv store: redis client is nil")
	}
	if key == "" {
		return errEmptyKey
	}

	if err := s.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete kv entry %q: %w", key, err)
	}

	return nil
}
