package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halcyonchain/halcyon/backend"
)

func TestStore_PersistsAcrossReopen(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := Open(path)
	require.NoError(err)
	require.NoError(store.Put([]byte("key"), []byte("value")))
	require.NoError(store.Close())

	store, err = Open(path)
	require.NoError(err)
	defer func() {
		require.NoError(store.Close())
	}()

	value, err := store.Get([]byte("key"))
	require.NoError(err)
	require.Equal([]byte("value"), value)

	_, err = store.Get([]byte("missing"))
	require.ErrorIs(err, backend.ErrNotFound)
}

func TestStore_OverwriteAndDelete(t *testing.T) {
	require := require.New(t)

	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(err)
	defer func() {
		require.NoError(store.Close())
	}()

	require.NoError(store.Put([]byte("key"), []byte("old")))
	require.NoError(store.Put([]byte("key"), []byte("new")))

	value, err := store.Get([]byte("key"))
	require.NoError(err)
	require.Equal([]byte("new"), value)

	require.NoError(store.Delete([]byte("key")))
	_, err = store.Get([]byte("key"))
	require.ErrorIs(err, backend.ErrNotFound)
}

func TestStore_IterateInKeyOrder(t *testing.T) {
	require := require.New(t)

	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(err)
	defer func() {
		require.NoError(store.Close())
	}()

	require.NoError(store.Put([]byte("b"), []byte("2")))
	require.NoError(store.Put([]byte("a"), []byte("1")))
	require.NoError(store.Put([]byte("c"), []byte("3")))

	var keys []string
	require.NoError(store.Iterate(func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	}))
	require.Equal([]string{"a", "b", "c"}, keys)
}
