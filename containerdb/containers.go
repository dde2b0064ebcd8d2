package containerdb

import (
	"errors"
	"fmt"

	"github.com/halcyonchain/halcyon/backend"
	"github.com/halcyonchain/halcyon/common"
	scoreerrors "github.com/halcyonchain/halcyon/errors"
)

// ErrNotImplemented marks list operations that are intentionally not
// supported in this revision. It is distinct from the coded data errors
// so callers cannot mistake it for a storage failure.
const ErrNotImplemented = common.ConstError("not implemented")

// listSizeName is the reserved key holding a list's length counter
// inside the list's namespace.
const listSizeName = "size"

// subStoreOf derives the container's namespaced child store, so the
// container never writes into the parent's own key space.
func subStoreOf(name string, parent backend.Store) (backend.Store, error) {
	prefix, err := EncodeKey(NewText(name))
	if err != nil {
		return nil, err
	}
	return parent.SubStore(prefix), nil
}

// read decodes the value stored under key in store, mapping a missing
// entry to the absent result.
func read(store backend.Store, key []byte, kind Kind) (Value, bool, error) {
	data, err := store.Get(key)
	if errors.Is(err, backend.ErrNotFound) {
		return Value{}, false, nil
	}
	if err != nil {
		return Value{}, false, err
	}
	return DecodeValue(data, kind)
}

// VarDB is a single typed scalar stored in its own namespace.
type VarDB struct {
	store backend.Store
	kind  Kind
}

func NewVarDB(name string, parent backend.Store, kind Kind) (*VarDB, error) {
	store, err := subStoreOf(name, parent)
	if err != nil {
		return nil, err
	}
	return &VarDB{store: store, kind: kind}, nil
}

func (v *VarDB) Set(value Value) error {
	data, err := EncodeValue(value)
	if err != nil {
		return err
	}
	return v.store.Put(nil, data)
}

// Get returns the stored value, or found == false if nothing has been
// stored yet.
func (v *VarDB) Get() (Value, bool, error) {
	return read(v.store, nil, v.kind)
}

// ListDB is an append-only ordered list. Elements live at ascending
// integer indices; the length counter is persisted under the reserved
// "size" key of the list's namespace. Removal and random access are not
// part of this revision.
type ListDB struct {
	store   backend.Store
	kind    Kind
	sizeKey []byte
	size    int64
	loaded  bool
}

func NewListDB(name string, parent backend.Store, kind Kind) (*ListDB, error) {
	store, err := subStoreOf(name, parent)
	if err != nil {
		return nil, err
	}
	sizeKey, err := EncodeKey(NewText(listSizeName))
	if err != nil {
		return nil, err
	}
	return &ListDB{store: store, kind: kind, sizeKey: sizeKey}, nil
}

// Put appends a value at the current length index and persists the
// incremented length counter.
func (l *ListDB) Put(value Value) error {
	size, err := l.Size()
	if err != nil {
		return err
	}
	data, err := EncodeValue(value)
	if err != nil {
		return err
	}
	key, err := EncodeKey(NewInt64(size))
	if err != nil {
		return err
	}
	if err := l.store.Put(key, data); err != nil {
		return err
	}
	counter, err := EncodeValue(NewInt64(size + 1))
	if err != nil {
		return err
	}
	if err := l.store.Put(l.sizeKey, counter); err != nil {
		return err
	}
	l.size = size + 1
	return nil
}

// Size returns the persisted length, lazily loaded on first access and
// defaulting to zero when no counter is stored.
func (l *ListDB) Size() (int64, error) {
	if l.loaded {
		return l.size, nil
	}
	value, found, err := read(l.store, l.sizeKey, KindInt)
	if err != nil {
		return 0, err
	}
	if found {
		l.size = value.Int64()
	}
	l.loaded = true
	return l.size, nil
}

func (l *ListDB) Pop() (Value, error) {
	return Value{}, ErrNotImplemented
}

func (l *ListDB) Get(index int64) (Value, error) {
	return Value{}, ErrNotImplemented
}

// DictDB is a mapping with a fixed key depth declared at construction.
// Each key level but the last narrows into a deeper namespace; only the
// final level addresses a value.
type DictDB struct {
	store backend.Store
	kind  Kind
	depth int
}

func NewDictDB(name string, parent backend.Store, kind Kind, depth int) (*DictDB, error) {
	if depth < 1 {
		return nil, scoreerrors.InvalidContainerAccess(fmt.Sprintf("invalid depth: %d", depth))
	}
	store, err := subStoreOf(name, parent)
	if err != nil {
		return nil, err
	}
	return &DictDB{store: store, kind: kind, depth: depth}, nil
}

func (d *DictDB) Set(keys []Value, value Value) error {
	store, last, err := d.walk(keys)
	if err != nil {
		return err
	}
	data, err := EncodeValue(value)
	if err != nil {
		return err
	}
	return store.Put(last, data)
}

func (d *DictDB) Get(keys ...Value) (Value, bool, error) {
	store, last, err := d.walk(keys)
	if err != nil {
		return Value{}, false, err
	}
	return read(store, last, d.kind)
}

// walk validates the key tuple against the declared depth and descends
// through all namespace levels, returning the deepest store and the
// encoded final key.
func (d *DictDB) walk(keys []Value) (backend.Store, []byte, error) {
	if len(keys) != d.depth {
		return nil, nil, scoreerrors.InvalidContainerAccess(
			fmt.Sprintf("expected %d keys, got %d", d.depth, len(keys)))
	}
	store := d.store
	for _, key := range keys[:len(keys)-1] {
		prefix, err := EncodeKey(key)
		if err != nil {
			return nil, nil, err
		}
		store = store.SubStore(prefix)
	}
	last, err := EncodeKey(keys[len(keys)-1])
	if err != nil {
		return nil, nil, err
	}
	return store, last, nil
}
