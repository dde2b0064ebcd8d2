package memory

import (
	"slices"
	"sort"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/halcyonchain/halcyon/backend"
)

var _ backend.Store = (*Store)(nil)

// Store is an in-memory implementation of backend.Store for testing and
// ephemeral execution. Iteration visits keys in ascending byte order.
type Store struct {
	lock sync.RWMutex
	data map[string][]byte
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(key []byte) ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	value, ok := s.data[string(key)]
	if !ok {
		return nil, backend.ErrNotFound
	}
	return slices.Clone(value), nil
}

func (s *Store) Put(key, value []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.data[string(key)] = slices.Clone(value)
	return nil
}

func (s *Store) Delete(key []byte) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.data, string(key))
	return nil
}

func (s *Store) SubStore(prefix []byte) backend.Store {
	return backend.NewPrefixed(s, prefix)
}

func (s *Store) Iterate(fn func(key, value []byte) error) error {
	s.lock.RLock()
	keys := maps.Keys(s.data)
	sort.Strings(keys)
	entries := make([][2][]byte, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, [2][]byte{[]byte(key), slices.Clone(s.data[key])})
	}
	s.lock.RUnlock()

	for _, entry := range entries {
		if err := fn(entry[0], entry[1]); err != nil {
			return err
		}
	}
	return nil
}
