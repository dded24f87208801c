package chrome

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"solar-chrome-service/internal/ports"
)

// Save stores v as JSON under key, best effort. Marshal and storage
// failures are logged and contained; they never reach the caller. A
// service without a store treats storage as unavailable and no-ops.
func (s *Service) Save(ctx context.Context, key string, v any) {
	if s.store == nil {
		log.Printf("persist save key=%q skipped: storage unavailable", key)
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("persist save key=%q marshal failed: %v", key, err)
		return
	}

	if err := s.store.Put(ctx, key, data); err != nil {
		log.Printf("persist save key=%q write failed: %v", key, err)
	}
}

// Load returns the value stored under key, decoded with encoding/json
// defaults (objects as map[string]any, numbers as float64). A missing
// key, unavailable storage, a corrupt entry, or any storage fault all
// yield nil; faults are logged, plain misses are not.
func (s *Service) Load(ctx context.Context, key string) any {
	if s.store == nil {
		return nil
	}

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			log.Printf("persist load key=%q read failed: %v", key, err)
		}
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		log.Printf("persist load key=%q corrupt entry: %v", key, err)
		return nil
	}

	return v
}

// Remove deletes the value stored under key, best effort. Failures are
// logged and contained like Save's.
func (s *Service) Remove(ctx context.Context, key string) {
	if s.store == nil {
		return
	}

	if err := s.store.Delete(ctx, key); err != nil {
		log.Printf("persist remove key=%q delete failed: %v", key, err)
	}
}
