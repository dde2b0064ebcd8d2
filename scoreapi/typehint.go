package scoreapi

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/halcyonchain/halcyon/common"
	"github.com/halcyonchain/halcyon/containerdb"
	"github.com/halcyonchain/halcyon/errors"
)

// Shape distinguishes the three representable parameter shapes.
type Shape int

const (
	ShapeScalar Shape = iota
	ShapeList
	ShapeDict
)

// TypeHint is the canonical representation of a declared parameter
// type: a scalar of one of the supported storage kinds, a homogeneous
// list, or a dict with text keys. Any other shape is rejected during
// normalization.
type TypeHint struct {
	Shape  Shape
	Scalar containerdb.Kind // valid for ShapeScalar
	Elem   *TypeHint        // valid for ShapeList and ShapeDict
}

func ScalarHint(kind containerdb.Kind) TypeHint {
	return TypeHint{Shape: ShapeScalar, Scalar: kind}
}

func ListHint(elem TypeHint) TypeHint {
	return TypeHint{Shape: ShapeList, Elem: &elem}
}

func DictHint(elem TypeHint) TypeHint {
	return TypeHint{Shape: ShapeDict, Elem: &elem}
}

func (h TypeHint) String() string {
	switch h.Shape {
	case ShapeList:
		return "[]" + h.Elem.String()
	case ShapeDict:
		return "map[str]" + h.Elem.String()
	default:
		return h.Scalar.String()
	}
}

func (h TypeHint) Equal(other TypeHint) bool {
	if h.Shape != other.Shape {
		return false
	}
	if h.Shape == ShapeScalar {
		return h.Scalar == other.Scalar
	}
	return h.Elem.Equal(*other.Elem)
}

var (
	bigIntType  = reflect.TypeOf((*big.Int)(nil))
	addressType = reflect.TypeOf(common.Address{})
	anyType     = reflect.TypeOf((*any)(nil)).Elem()
)

// NormalizeType maps a Go parameter type onto its canonical hint. An
// untyped (any) parameter defaults to text. Only scalar base types,
// slices of a supported element type, and string-keyed maps are
// accepted; everything else is rejected naming the offending shape.
func NormalizeType(t reflect.Type) (TypeHint, error) {
	switch t {
	case bigIntType:
		return ScalarHint(containerdb.KindInt), nil
	case addressType:
		return ScalarHint(containerdb.KindAddress), nil
	case anyType:
		return ScalarHint(containerdb.KindText), nil
	}
	switch t.Kind() {
	case reflect.String:
		return ScalarHint(containerdb.KindText), nil
	case reflect.Bool:
		return ScalarHint(containerdb.KindBool), nil
	case reflect.Int, reflect.Int64:
		return ScalarHint(containerdb.KindInt), nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return ScalarHint(containerdb.KindBytes), nil
		}
		elem, err := NormalizeType(t.Elem())
		if err != nil {
			return TypeHint{}, err
		}
		return ListHint(elem), nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return TypeHint{}, errors.IllegalFormat(fmt.Sprintf("unsupported type hint: %s", t))
		}
		elem, err := NormalizeType(t.Elem())
		if err != nil {
			return TypeHint{}, err
		}
		return DictHint(elem), nil
	default:
		return TypeHint{}, errors.IllegalFormat(fmt.Sprintf("unsupported type hint: %s", t))
	}
}

// ParseTypeName resolves a type declared by name, as used in attribute
// tables: "int", "str", "bool", "bytes", "Address", "[]T", and
// "map[str]T". An empty name defaults to text.
func ParseTypeName(name string) (TypeHint, error) {
	switch name {
	case "":
		return ScalarHint(containerdb.KindText), nil
	case "int":
		return ScalarHint(containerdb.KindInt), nil
	case "str":
		return ScalarHint(containerdb.KindText), nil
	case "bool":
		return ScalarHint(containerdb.KindBool), nil
	case "bytes":
		return ScalarHint(containerdb.KindBytes), nil
	case "Address":
		return ScalarHint(containerdb.KindAddress), nil
	}
	if rest, ok := strings.CutPrefix(name, "[]"); ok {
		elem, err := ParseTypeName(rest)
		if err != nil {
			return TypeHint{}, err
		}
		return ListHint(elem), nil
	}
	if rest, ok := strings.CutPrefix(name, "map[str]"); ok {
		elem, err := ParseTypeName(rest)
		if err != nil {
			return TypeHint{}, err
		}
		return DictHint(elem), nil
	}
	return TypeHint{}, errors.IllegalFormat(fmt.Sprintf("unsupported type hint: %q", name))
}
