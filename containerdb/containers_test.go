package containerdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/halcyonchain/halcyon/backend"
	"github.com/halcyonchain/halcyon/backend/memory"
	"github.com/halcyonchain/halcyon/common"
	"github.com/halcyonchain/halcyon/errors"
)

func TestVarDB_SetGetRoundTrip(t *testing.T) {
	require := require.New(t)
	store := memory.New()

	varDB, err := NewVarDB("supply", store, KindInt)
	require.NoError(err)

	_, found, err := varDB.Get()
	require.NoError(err)
	require.False(found)

	require.NoError(varDB.Set(NewInt64(1000)))
	value, found, err := varDB.Get()
	require.NoError(err)
	require.True(found)
	require.Equal(int64(1000), value.Int64())

	// The value lives under the encoded container key of the parent.
	raw, err := store.Get([]byte("supply|"))
	require.NoError(err)
	require.Equal([]byte("0x3e8"), raw)
}

func TestVarDB_SiblingsDoNotCollide(t *testing.T) {
	require := require.New(t)
	store := memory.New()

	a, err := NewVarDB("a", store, KindText)
	require.NoError(err)
	b, err := NewVarDB("ab", store, KindText)
	require.NoError(err)

	require.NoError(a.Set(NewText("first")))
	require.NoError(b.Set(NewText("second")))

	value, _, err := a.Get()
	require.NoError(err)
	require.Equal("first", value.Text())

	value, _, err = b.Get()
	require.NoError(err)
	require.Equal("second", value.Text())
}

func TestVarDB_WritesThroughDerivedSubStore(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	parent := backend.NewMockStore(ctrl)
	sub := backend.NewMockStore(ctrl)

	parent.EXPECT().SubStore([]byte("flag|")).Return(sub)
	sub.EXPECT().Put(nil, []byte("0x1")).Return(nil)

	varDB, err := NewVarDB("flag", parent, KindBool)
	require.NoError(err)
	require.NoError(varDB.Set(NewBool(true)))
}

func TestListDB_AppendsAtAscendingIndices(t *testing.T) {
	require := require.New(t)
	store := memory.New()

	list, err := NewListDB("holders", store, KindText)
	require.NoError(err)

	size, err := list.Size()
	require.NoError(err)
	require.Equal(int64(0), size)

	require.NoError(list.Put(NewText("alice")))
	require.NoError(list.Put(NewText("bob")))

	size, err = list.Size()
	require.NoError(err)
	require.Equal(int64(2), size)

	// Values are stored under encoded integer index keys in order.
	value, found, err := GetFromStore(store, "holders", KindText, NewInt64(0))
	require.NoError(err)
	require.True(found)
	require.Equal("alice", value.Text())

	value, found, err = GetFromStore(store, "holders", KindText, NewInt64(1))
	require.NoError(err)
	require.True(found)
	require.Equal("bob", value.Text())
}

func TestListDB_SizeSurvivesReconstruction(t *testing.T) {
	require := require.New(t)
	store := memory.New()

	list, err := NewListDB("log", store, KindInt)
	require.NoError(err)
	require.NoError(list.Put(NewInt64(7)))
	require.NoError(list.Put(NewInt64(8)))
	require.NoError(list.Put(NewInt64(9)))

	// A fresh container over the same store sees the persisted counter.
	reopened, err := NewListDB("log", store, KindInt)
	require.NoError(err)
	size, err := reopened.Size()
	require.NoError(err)
	require.Equal(int64(3), size)

	require.NoError(reopened.Put(NewInt64(10)))
	value, found, err := GetFromStore(store, "log", KindInt, NewInt64(3))
	require.NoError(err)
	require.True(found)
	require.Equal(int64(10), value.Int64())
}

func TestListDB_PopAndGetAreNotImplemented(t *testing.T) {
	require := require.New(t)

	list, err := NewListDB("holders", memory.New(), KindText)
	require.NoError(err)

	_, err = list.Pop()
	require.ErrorIs(err, ErrNotImplemented)

	_, err = list.Get(0)
	require.ErrorIs(err, ErrNotImplemented)
}

func TestDictDB_DepthOneRoundTrip(t *testing.T) {
	require := require.New(t)
	store := memory.New()

	dict, err := NewDictDB("balances", store, KindInt, 1)
	require.NoError(err)

	owner := common.NewAccountAddress([]byte{1})
	require.NoError(dict.Set([]Value{NewAddress(owner)}, NewInt64(500)))

	value, found, err := dict.Get(NewAddress(owner))
	require.NoError(err)
	require.True(found)
	require.Equal(int64(500), value.Int64())

	_, found, err = dict.Get(NewAddress(common.NewAccountAddress([]byte{2})))
	require.NoError(err)
	require.False(found)
}

func TestDictDB_EnforcesDeclaredDepth(t *testing.T) {
	require := require.New(t)
	store := memory.New()

	dict, err := NewDictDB("allowances", store, KindInt, 2)
	require.NoError(err)

	owner := NewAddress(common.NewAccountAddress([]byte{1}))
	spender := NewAddress(common.NewAccountAddress([]byte{2}))

	err = dict.Set([]Value{owner}, NewInt64(1))
	require.Error(err)
	require.Equal(errors.CodeInvalidContainerAccess, errors.CodeOf(err))

	_, _, err = dict.Get(owner, spender, NewText("extra"))
	require.Error(err)
	require.Equal(errors.CodeInvalidContainerAccess, errors.CodeOf(err))

	require.NoError(dict.Set([]Value{owner, spender}, NewInt64(77)))
	value, found, err := dict.Get(owner, spender)
	require.NoError(err)
	require.True(found)
	require.Equal(int64(77), value.Int64())
}

func TestDictDB_RejectsUnsupportedKeyKinds(t *testing.T) {
	require := require.New(t)

	dict, err := NewDictDB("flags", memory.New(), KindBool, 1)
	require.NoError(err)

	err = dict.Set([]Value{NewBool(true)}, NewBool(true))
	require.Error(err)
	require.Equal(errors.CodeInvalidInstance, errors.CodeOf(err))

	_, _, err = dict.Get(NewBytes([]byte{1}))
	require.Error(err)
	require.Equal(errors.CodeInvalidInstance, errors.CodeOf(err))
}

func TestNewDictDB_RejectsInvalidDepth(t *testing.T) {
	require := require.New(t)

	_, err := NewDictDB("broken", memory.New(), KindInt, 0)
	require.Error(err)
	require.Equal(errors.CodeInvalidContainerAccess, errors.CodeOf(err))
}

func TestDictDB_KeyLevelsNestNamespaces(t *testing.T) {
	require := require.New(t)
	store := memory.New()

	dict, err := NewDictDB("m", store, KindText, 2)
	require.NoError(err)
	require.NoError(dict.Set([]Value{NewText("a"), NewText("b")}, NewText("deep")))

	raw, err := store.Get([]byte("m|a|b|"))
	require.NoError(err)
	require.Equal([]byte("deep"), raw)
}
