package kvstore

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has no value.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store is the flat key-value namespace all entities live in.
// Values are JSON documents; keys follow the "<kind>:<id>" /
// "<kind>:<id>:<relation>" convention of the repository layer.
type Store interface {
	// Get decodes the value at key into dest, or returns ErrKeyNotFound.
	Get(ctx context.Context, key string, dest any) error

	// Set JSON-encodes value and stores it at key, overwriting any
	// previous value.
	Set(ctx context.Context, key string, value any) error

	// MGet returns the raw values for the given keys, in key order.
	// Keys without a value are skipped, not errors.
	MGet(ctx context.Context, keys []string) ([][]byte, error)

	// GetByPrefix returns the raw values of every key starting with prefix.
	// Order is unspecified; callers sort.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}

// DecodeAll unmarshals a batch of raw JSON values into a typed slice.
func DecodeAll[T any](raws [][]byte) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
