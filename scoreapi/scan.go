package scoreapi

import (
	"fmt"
	"reflect"

	"github.com/halcyonchain/halcyon/errors"
)

// MethodAttrs declares the capability flags and metadata attached to
// one contract method. It replaces the runtime attribute tagging of
// dynamic platforms with an explicit declaration supplied alongside the
// contract type, keeping the scan a pure function of its inputs.
type MethodAttrs struct {
	// Name overrides the registered element name. Defaults to the Go
	// method name; the fallback method registers as "fallback".
	Name  string
	Flags Flag
	// IndexedArgs is the indexed-parameter count of an event log.
	IndexedArgs int
	// ParamNames names the parameters in declaration order. Missing
	// entries get positional names.
	ParamNames []string
	// ParamTypes declares parameter types by name, overriding the
	// reflected Go type. An empty entry keeps the reflected type.
	ParamTypes []string
}

// AttrTable maps Go method names to their declared attributes.
type AttrTable map[string]MethodAttrs

// ScanElements walks the exported methods of a contract type and builds
// its frozen element registry. Methods without an attribute entry, and
// entries carrying none of the candidate flags, are ignored; candidates
// are validated and normalized before admission, so an illegal contract
// is rejected at load time rather than at first invocation.
func ScanElements(contract any, attrs AttrTable) (*Registry, error) {
	t := reflect.TypeOf(contract)
	builder := NewBuilder(contractName(t))

	for i := range t.NumMethod() {
		method := t.Method(i)
		attr, ok := attrs[method.Name]
		if !ok || attr.Flags&candidateMask == 0 {
			continue
		}
		if err := attr.Flags.Validate(); err != nil {
			return nil, err
		}
		params, err := normalizeParams(method, attr)
		if err != nil {
			return nil, err
		}
		name := attr.Name
		if name == "" {
			name = method.Name
		}
		base := element{
			name:   name,
			flags:  attr.Flags,
			params: params,
			origin: method.Func,
		}
		var e Element
		if attr.Flags&EventLog != 0 {
			if attr.IndexedArgs < 0 || attr.IndexedArgs > len(params) {
				return nil, errors.IllegalFormat(fmt.Sprintf(
					"invalid indexed args count for %s: %d", name, attr.IndexedArgs))
			}
			e = &EventLogElement{element: base, indexed: attr.IndexedArgs}
		} else {
			e = &Function{element: base}
		}
		if err := builder.Add(e); err != nil {
			return nil, err
		}
	}
	return builder.Build(), nil
}

func contractName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// normalizeParams derives the canonical signature of a method. The
// receiver is skipped; declared type names take precedence over the
// reflected parameter types.
func normalizeParams(method reflect.Method, attr MethodAttrs) ([]Parameter, error) {
	fn := method.Func.Type()
	params := make([]Parameter, 0, fn.NumIn()-1)
	for i := 1; i < fn.NumIn(); i++ {
		pos := i - 1
		var hint TypeHint
		var err error
		if pos < len(attr.ParamTypes) && attr.ParamTypes[pos] != "" {
			hint, err = ParseTypeName(attr.ParamTypes[pos])
		} else {
			hint, err = NormalizeType(fn.In(i))
		}
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("arg%d", pos)
		if pos < len(attr.ParamNames) && attr.ParamNames[pos] != "" {
			name = attr.ParamNames[pos]
		}
		params = append(params, Parameter{Name: name, Type: hint})
	}
	return params, nil
}
