package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name string `json:"name"`
}

func TestMemoryStore_GetSet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user:1", record{Name: "Awa"}))

	var got record
	require.NoError(t, store.Get(ctx, "user:1", &got))
	assert.Equal(t, "Awa", got.Name)
}

func TestMemoryStore_Get_Missing(t *testing.T) {
	store := NewMemoryStore()

	var got record
	err := store.Get(context.Background(), "user:missing", &got)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestMemoryStore_Set_Overwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user:1", record{Name: "Awa"}))
	require.NoError(t, store.Set(ctx, "user:1", record{Name: "Moussa"}))

	var got record
	require.NoError(t, store.Get(ctx, "user:1", &got))
	assert.Equal(t, "Moussa", got.Name)
}

func TestMemoryStore_MGet_SkipsMissing(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user:1", record{Name: "Awa"}))
	require.NoError(t, store.Set(ctx, "user:3", record{Name: "Moussa"}))

	raws, err := store.MGet(ctx, []string{"user:1", "user:2", "user:3"})
	require.NoError(t, err)

	users, err := DecodeAll[record](raws)
	require.NoError(t, err)
	require.Len(t, users, 2, "Missing keys are skipped, not errors")
	assert.Equal(t, "Awa", users[0].Name)
	assert.Equal(t, "Moussa", users[1].Name)
}

func TestMemoryStore_GetByPrefix(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "job:1", record{Name: "Housekeeper"}))
	require.NoError(t, store.Set(ctx, "job:2", record{Name: "Driver"}))
	require.NoError(t, store.Set(ctx, "user:1", record{Name: "Awa"}))

	raws, err := store.GetByPrefix(ctx, "job:")
	require.NoError(t, err)
	assert.Len(t, raws, 2)

	raws, err = store.GetByPrefix(ctx, "feedback:")
	require.NoError(t, err)
	assert.Empty(t, raws)
}
