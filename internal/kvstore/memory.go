package kvstore

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// MemoryStore is an in-process Store used in dev mode and by tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (slf *MemoryStore) Get(_ context.Context, key string, dest any) error {
	slf.mu.RLock()
	raw, ok := slf.data[key]
	slf.mu.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (slf *MemoryStore) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	slf.mu.Lock()
	slf.data[key] = raw
	slf.mu.Unlock()
	return nil
}

func (slf *MemoryStore) MGet(_ context.Context, keys []string) ([][]byte, error) {
	slf.mu.RLock()
	defer slf.mu.RUnlock()

	out := make([][]byte, 0, len(keys))
	for _, key := range keys {
		if raw, ok := slf.data[key]; ok {
			out = append(out, raw)
		}
	}
	return out, nil
}

func (slf *MemoryStore) GetByPrefix(_ context.Context, prefix string) ([][]byte, error) {
	slf.mu.RLock()
	defer slf.mu.RUnlock()

	var out [][]byte
	for key, raw := range slf.data {
		if strings.HasPrefix(key, prefix) {
			out = append(out, raw)
		}
	}
	return out, nil
}

var _ Store = (*MemoryStore)(nil)
