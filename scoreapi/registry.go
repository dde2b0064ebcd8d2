package scoreapi

import (
	"fmt"
	"slices"

	"github.com/halcyonchain/halcyon/errors"
)

// Builder collects contract elements during the one-shot construction
// pass. Build consumes the builder into an immutable Registry; any
// mutation attempt afterwards fails instead of silently succeeding.
type Builder struct {
	contract  string
	names     []string
	elements  map[string]Element
	externals int
	eventlogs int
	built     bool
}

func NewBuilder(contract string) *Builder {
	return &Builder{
		contract: contract,
		elements: make(map[string]Element),
	}
}

func (b *Builder) Add(e Element) error {
	if b.built {
		return errors.SystemError("element registry is frozen")
	}
	name := e.Name()
	if _, exists := b.elements[name]; exists {
		return errors.IllegalFormat(fmt.Sprintf("duplicate element: %s.%s", b.contract, name))
	}
	switch e.(type) {
	case *Function:
		b.externals++
	case *EventLogElement:
		b.eventlogs++
	default:
		return errors.SystemError(fmt.Sprintf("invalid element: %T", e))
	}
	b.names = append(b.names, name)
	b.elements[name] = e
	return nil
}

func (b *Builder) Remove(name string) error {
	if b.built {
		return errors.SystemError("element registry is frozen")
	}
	e, exists := b.elements[name]
	if !exists {
		return errors.MethodNotFound(fmt.Sprintf("method not found: %s.%s", b.contract, name))
	}
	delete(b.elements, name)
	b.names = slices.DeleteFunc(b.names, func(n string) bool { return n == name })
	if _, isEvent := e.(*EventLogElement); isEvent {
		b.eventlogs--
	} else {
		b.externals--
	}
	return nil
}

// Build freezes the collected elements into a Registry. The builder is
// consumed; it rejects all further mutation.
func (b *Builder) Build() *Registry {
	b.built = true
	return &Registry{
		contract:  b.contract,
		names:     b.names,
		elements:  b.elements,
		externals: b.externals,
		eventlogs: b.eventlogs,
	}
}

// Registry is the frozen name-to-element map of one contract class. It
// has no mutation operations; concurrent lookups need no further
// synchronization.
type Registry struct {
	contract  string
	names     []string
	elements  map[string]Element
	externals int
	eventlogs int
}

// Get resolves a method or event by name.
func (r *Registry) Get(name string) (Element, error) {
	if e, ok := r.elements[name]; ok {
		return e, nil
	}
	return nil, errors.MethodNotFound(fmt.Sprintf("method not found: %s.%s", r.contract, name))
}

// Names returns the element names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

func (r *Registry) Contract() string {
	return r.contract
}

func (r *Registry) Len() int {
	return len(r.names)
}

func (r *Registry) Externals() int {
	return r.externals
}

func (r *Registry) EventLogs() int {
	return r.eventlogs
}
