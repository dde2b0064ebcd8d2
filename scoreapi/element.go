package scoreapi

import "reflect"

// FallbackName is the reserved name of the method invoked when a plain
// coin transfer addresses the contract.
const FallbackName = "fallback"

// Parameter is one normalized entry of an element's signature.
type Parameter struct {
	Name string
	Type TypeHint
}

// Element is a registered contract method or event declaration.
type Element interface {
	// Name the element is dispatched under.
	Name() string
	Flags() Flag
	// Params is the normalized signature, receiver excluded.
	Params() []Parameter
	// Origin is the callable backing this element.
	Origin() reflect.Value
}

type element struct {
	name   string
	flags  Flag
	params []Parameter
	origin reflect.Value
}

func (e *element) Name() string {
	return e.name
}

func (e *element) Flags() Flag {
	return e.flags
}

func (e *element) Params() []Parameter {
	return e.params
}

func (e *element) Origin() reflect.Value {
	return e.origin
}

// Function is an externally visible contract method.
type Function struct {
	element
}

func (f *Function) IsExternal() bool {
	return f.flags&External != 0
}

func (f *Function) IsPayable() bool {
	return f.flags&Payable != 0
}

func (f *Function) IsReadOnly() bool {
	return f.flags&ReadOnly != 0
}

func (f *Function) IsFallback() bool {
	return f.name == FallbackName && f.IsPayable()
}

// EventLogElement is an event declared by a contract.
type EventLogElement struct {
	element
	indexed int
}

// IndexedArgs is the number of leading parameters recorded as indexed
// when the event is emitted.
func (e *EventLogElement) IndexedArgs() int {
	return e.indexed
}
