package backend

import "github.com/halcyonchain/halcyon/common"

//go:generate mockgen -source backend.go -destination store_mock.go -package backend

// ErrNotFound is returned by Get when no value is stored under a key.
const ErrNotFound = common.ConstError("not found")

// Store is a flat byte-key/byte-value view of the underlying database.
// SubStore derives a view scoped under a key prefix; a container built
// on a sub-store cannot observe or overwrite keys of its siblings.
//
// Implementations perform no internal locking beyond what the backing
// database needs; the execution context serializes state access per
// transaction.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	// SubStore returns a view of this store scoped under the given
	// prefix.
	SubStore(prefix []byte) Store
	// Iterate visits all entries in ascending key order. Returning an
	// error from fn aborts the iteration with that error.
	Iterate(fn func(key, value []byte) error) error
}
