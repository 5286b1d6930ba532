package repo

import (
	"context"
	"sync"

	"joblink/internal/kvstore"
)

// keyLock serializes read-modify-write cycles on index lists and cached
// counters. The store itself offers no atomicity, so every mutation of a
// list key must run under the lock for that key. Single-process guarantee
// only; a multi-instance deployment needs store-side conditional writes.
type keyLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[string]*sync.Mutex)}
}

func (slf *keyLock) Lock(key string) *sync.Mutex {
	slf.mu.Lock()
	m, ok := slf.locks[key]
	if !ok {
		m = &sync.Mutex{}
		slf.locks[key] = m
	}
	slf.mu.Unlock()

	m.Lock()
	return m
}

// indexLocks is shared by all repositories in the process.
var indexLocks = newKeyLock()

// readIndex loads an id list; a missing key is an empty list.
func readIndex(ctx context.Context, store kvstore.Store, key string) ([]string, error) {
	var ids []string
	err := store.Get(ctx, key, &ids)
	if kvstore.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// appendToIndex appends id to the list at key under the key's lock and
// returns the new length.
func appendToIndex(ctx context.Context, store kvstore.Store, key, id string) (int, error) {
	defer indexLocks.Lock(key).Unlock()

	ids, err := readIndex(ctx, store, key)
	if err != nil {
		return 0, err
	}
	ids = append(ids, id)
	if err := store.Set(ctx, key, ids); err != nil {
		return 0, err
	}
	return len(ids), nil
}
