package kvstore

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is a row of the kv_store table.
type KVEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"type:jsonb;not null;column:value"`
}

func (KVEntry) TableName() string {
	return "kv_store"
}

// PostgresStore backs the key-value namespace with a single two-column
// table: prefix scans become LIKE queries, multi-gets become IN queries.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the kv_store table if it does not exist.
func (slf *PostgresStore) Migrate() error {
	return slf.db.AutoMigrate(&KVEntry{})
}

func (slf *PostgresStore) Get(ctx context.Context, key string, dest any) error {
	var entry KVEntry
	err := slf.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrKeyNotFound
		}
		return err
	}
	return json.Unmarshal(entry.Value, dest)
}

func (slf *PostgresStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := KVEntry{Key: key, Value: raw}
	return slf.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry).Error
}

func (slf *PostgresStore) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	var entries []KVEntry
	err := slf.db.WithContext(ctx).Where("key IN ?", keys).Find(&entries).Error
	if err != nil {
		return nil, err
	}

	// Re-order to match the requested key order.
	byKey := make(map[string][]byte, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e.Value
	}

	out := make([][]byte, 0, len(entries))
	for _, key := range keys {
		if raw, ok := byKey[key]; ok {
			out = append(out, raw)
		}
	}
	return out, nil
}

func (slf *PostgresStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var entries []KVEntry
	err := slf.db.WithContext(ctx).Where("key LIKE ?", prefix+"%").Find(&entries).Error
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Value)
	}
	return out, nil
}

var _ Store = (*PostgresStore)(nil)
