package containerdb

import (
	"github.com/0xsoniclabs/tracy"

	"github.com/halcyonchain/halcyon/backend"
)

// Tree is a recursive value structure for bulk ingestion: a leaf holds
// a single storable value, a list fans out into integer-indexed key
// levels, and a dict fans out into typed key levels. Persisting a tree
// reuses the same namespacing as the container types, so a structure
// written in bulk is indistinguishable from one written key by key.
type Tree struct {
	kind treeKind
	leaf Value
	list []Tree
	dict []TreeEntry
}

type treeKind int

const (
	treeLeaf treeKind = iota
	treeList
	treeDict
)

// TreeEntry is one key level of a dict node. Entries keep their
// declaration order when persisted.
type TreeEntry struct {
	Key   Value
	Value Tree
}

func Leaf(value Value) Tree {
	return Tree{kind: treeLeaf, leaf: value}
}

func List(items ...Tree) Tree {
	return Tree{kind: treeList, list: items}
}

func Dict(entries ...TreeEntry) Tree {
	return Tree{kind: treeDict, dict: entries}
}

// StoreTree persists a whole tree under the container key in one pass.
func StoreTree(parent backend.Store, name string, tree Tree) error {
	zone := tracy.ZoneBegin("containerdb::store_tree")
	defer zone.End()

	store, err := subStoreOf(name, parent)
	if err != nil {
		return err
	}
	return storeNode(store, nil, tree)
}

// storeNode writes one node. A leaf is written at key within store;
// lists and dicts descend into the namespace derived from key first.
func storeNode(store backend.Store, key []byte, node Tree) error {
	switch node.kind {
	case treeLeaf:
		data, err := EncodeValue(node.leaf)
		if err != nil {
			return err
		}
		return store.Put(key, data)
	case treeList:
		if key != nil {
			store = store.SubStore(key)
		}
		for index, item := range node.list {
			itemKey, err := EncodeKey(NewInt64(int64(index)))
			if err != nil {
				return err
			}
			if err := storeNode(store, itemKey, item); err != nil {
				return err
			}
		}
		return nil
	default:
		if key != nil {
			store = store.SubStore(key)
		}
		for _, entry := range node.dict {
			entryKey, err := EncodeKey(entry.Key)
			if err != nil {
				return err
			}
			if err := storeNode(store, entryKey, entry.Value); err != nil {
				return err
			}
		}
		return nil
	}
}

// GetFromStore reads one value back from a structure persisted under
// the container key, walking the namespace path given by keys. All keys
// but the last descend one namespace level; the last addresses the
// value itself.
func GetFromStore(parent backend.Store, name string, kind Kind, keys ...Value) (Value, bool, error) {
	store, err := subStoreOf(name, parent)
	if err != nil {
		return Value{}, false, err
	}
	if len(keys) == 0 {
		return read(store, nil, kind)
	}
	for _, key := range keys[:len(keys)-1] {
		prefix, err := EncodeKey(key)
		if err != nil {
			return Value{}, false, err
		}
		store = store.SubStore(prefix)
	}
	last, err := EncodeKey(keys[len(keys)-1])
	if err != nil {
		return Value{}, false, err
	}
	return read(store, last, kind)
}
