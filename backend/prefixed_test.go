package backend_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/halcyonchain/halcyon/backend"
	"github.com/halcyonchain/halcyon/backend/memory"
)

func TestPrefixed_IsolatesSiblingNamespaces(t *testing.T) {
	require := require.New(t)
	root := memory.New()

	a := root.SubStore([]byte("a|"))
	b := root.SubStore([]byte("b|"))

	require.NoError(a.Put([]byte("k"), []byte("va")))
	require.NoError(b.Put([]byte("k"), []byte("vb")))

	value, err := a.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("va"), value)

	value, err = b.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("vb"), value)

	value, err = root.Get([]byte("a|k"))
	require.NoError(err)
	require.Equal([]byte("va"), value)
}

func TestPrefixed_NestingFlattensIntoSinglePrefix(t *testing.T) {
	require := require.New(t)
	root := memory.New()

	nested := root.SubStore([]byte("a|")).SubStore([]byte("b|")).SubStore([]byte("c|"))
	require.NoError(nested.Put([]byte("k"), []byte("v")))

	value, err := root.Get([]byte("a|b|c|k"))
	require.NoError(err)
	require.Equal([]byte("v"), value)
}

func TestPrefixed_IterateEmitsKeysWithoutPrefix(t *testing.T) {
	require := require.New(t)
	root := memory.New()

	sub := root.SubStore([]byte("ns|"))
	require.NoError(sub.Put([]byte("k1"), []byte("v1")))
	require.NoError(sub.Put([]byte("k2"), []byte("v2")))
	require.NoError(root.Put([]byte("other"), []byte("x")))

	var keys []string
	require.NoError(sub.Iterate(func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	}))
	require.Equal([]string{"k1", "k2"}, keys)
}

func TestPrefixed_DelegatesToInnerStore(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	inner := backend.NewMockStore(ctrl)

	inner.EXPECT().Put([]byte("p|k"), []byte("v")).Return(nil)
	inner.EXPECT().Get([]byte("p|k")).Return([]byte("v"), nil)
	inner.EXPECT().Delete([]byte("p|k")).Return(nil)

	sub := backend.NewPrefixed(inner, []byte("p|"))
	require.NoError(sub.Put([]byte("k"), []byte("v")))

	value, err := sub.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), value)
	require.NoError(sub.Delete([]byte("k")))
}
