package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ *MemoryStore }

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrStoreCorrupted
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "z", "1"))
	require.NoError(t, store.Set(ctx, "a", "2"))
	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "z"}, keys)

	require.NoError(t, store.Remove(ctx, "z"))
	require.NoError(t, store.Clear(ctx))
	keys, err = store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.ErrorIs(t, store.Set(ctx, "", "x"), ErrEmptyKey)
}

func TestTypedHelpers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.Equal(t, "dark", GetString(ctx, store, "theme", "dark"))
	require.NoError(t, SetString(ctx, store, "theme", "light"))
	assert.Equal(t, "light", GetString(ctx, store, "theme", "dark"))

	assert.True(t, GetBool(ctx, store, "onboarded", true))
	require.NoError(t, SetBool(ctx, store, "onboarded", false))
	assert.False(t, GetBool(ctx, store, "onboarded", true))

	require.NoError(t, SetNumber(ctx, store, "last_company", 42.5))
	assert.InDelta(t, 42.5, GetNumber(ctx, store, "last_company", 0), 1e-9)

	type view struct {
		Period string `json:"period"`
		Last   int    `json:"last"`
	}
	require.NoError(t, SetObject(ctx, store, "view", view{Period: "monthly", Last: 12}))
	var got view
	require.True(t, GetObject(ctx, store, "view", &got))
	assert.Equal(t, view{Period: "monthly", Last: 12}, got)

	assert.True(t, Contains(ctx, store, "view"))
	assert.False(t, Contains(ctx, store, "absent"))
}

func TestTypedHelpers_ParseFailuresReturnDefault(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "k", "not-a-value"))

	assert.True(t, GetBool(ctx, store, "k", true))
	assert.InDelta(t, 7.0, GetNumber(ctx, store, "k", 7), 1e-9)

	var out map[string]any
	assert.False(t, GetObject(ctx, store, "k", &out))
	assert.Nil(t, out)
}

func TestTypedHelpers_StoreErrorsReturnDefault(t *testing.T) {
	ctx := context.Background()
	store := failingStore{MemoryStore: NewMemoryStore()}

	assert.Equal(t, "def", GetString(ctx, store, "k", "def"))
	assert.False(t, GetBool(ctx, store, "k", false))
	assert.False(t, Contains(ctx, store, "k"))
}

func TestSetObject_EncodeError(t *testing.T) {
	err := SetObject(context.Background(), NewMemoryStore(), "bad", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding preference")
}
