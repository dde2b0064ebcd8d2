package leveldb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halcyonchain/halcyon/backend"
)

func TestStore_PersistsAcrossReopen(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(err)
	require.NoError(store.Put([]byte("key"), []byte("value")))
	require.NoError(store.Close())

	store, err = Open(dir)
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

func TestStore_SubStoreAndIterate(t *testing.T) {
	require := require.New(t)

	store, err := Open(t.TempDir())
	require.NoError(err)
	defer func() {
		require.NoError(store.Close())
	}()

	sub := store.SubStore([]byte("ns|"))
	require.NoError(sub.Put([]byte("a"), []byte("1")))
	require.NoError(sub.Put([]byte("b"), []byte("2")))
	require.NoError(store.Put([]byte("outside"), []byte("3")))

	var keys []string
	require.NoError(sub.Iterate(func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	}))
	require.Equal([]string{"a", "b"}, keys)
}
