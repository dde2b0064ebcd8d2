package leveldb

import (
	"github.com/pbnjay/memory"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/halcyonchain/halcyon/backend"
)

var _ backend.Store = (*Store)(nil)

// Store is a persistent implementation of backend.Store using LevelDB.
type Store struct {
	db *leveldb.DB
}

func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		BlockCacheCapacity: blockCacheCapacity(),
	})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// blockCacheCapacity sizes the block cache from the machine's total
// memory, clamped to keep small hosts and test runners usable.
func blockCacheCapacity() int {
	const minCapacity = 8 << 20
	const maxCapacity = 256 << 20
	capacity := int(memory.TotalMemory() / 64)
	if capacity < minCapacity {
		return minCapacity
	}
	if capacity > maxCapacity {
		return maxCapacity
	}
	return capacity
}

func (s *Store) Get(key []byte) ([]byte, error) {
	data, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, backend.ErrNotFound
	}
	return data, err
}

func (s *Store) Put(key, value []byte) error {
	return s.db.Put(key, value, nil)
}

func (s *Store) Delete(key []byte) error {
	return s.db.Delete(key, nil)
}

func (s *Store) SubStore(prefix []byte) backend.Store {
	return backend.NewPrefixed(s, prefix)
}

func (s *Store) Iterate(fn func(key, value []byte) error) error {
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		if err := fn(iter.Key(), iter.Value()); err != nil {
			return err
		}
	}
	return iter.Error()
}

func (s *Store) Close() error {
	return s.db.Close()
}
