package backend

import (
	"bytes"
	"slices"
)

// prefixed is a Store view scoped under a key prefix of another Store.
// Keys are translated by concatenation on the way in and truncation on
// the way out; nesting flattens into a single combined prefix against
// the root store.
type prefixed struct {
	inner  Store
	prefix []byte
}

// NewPrefixed returns a view of inner scoped under the given prefix.
func NewPrefixed(inner Store, prefix []byte) Store {
	if p, ok := inner.(*prefixed); ok {
		return &prefixed{
			inner:  p.inner,
			prefix: slices.Concat(p.prefix, prefix),
		}
	}
	return &prefixed{inner: inner, prefix: slices.Clone(prefix)}
}

func (p *prefixed) key(k []byte) []byte {
	return slices.Concat(p.prefix, k)
}

func (p *prefixed) Get(key []byte) ([]byte, error) {
	return p.inner.Get(p.key(key))
}

func (p *prefixed) Put(key, value []byte) error {
	return p.inner.Put(p.key(key), value)
}

func (p *prefixed) Delete(key []byte) error {
	return p.inner.Delete(p.key(key))
}

func (p *prefixed) SubStore(prefix []byte) Store {
	return NewPrefixed(p, prefix)
}

func (p *prefixed) Iterate(fn func(key, value []byte) error) error {
	return p.inner.Iterate(func(key, value []byte) error {
		if !bytes.HasPrefix(key, p.prefix) {
			return nil
		}
		return fn(key[len(p.prefix):], value)
	})
}
