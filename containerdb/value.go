package containerdb

import (
	"math/big"
	"slices"

	"github.com/halcyonchain/halcyon/common"
)

// Kind enumerates the value types supported by container storage. The
// set is closed; codecs switch exhaustively over it instead of falling
// back on runtime type inspection.
type Kind int

const (
	KindInt Kind = iota
	KindText
	KindBool
	KindAddress
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindText:
		return "str"
	case KindBool:
		return "bool"
	case KindAddress:
		return "Address"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the supported storage types. The zero
// Value is not valid for encoding; container reads report absence
// through a separate flag rather than a sentinel Value.
type Value struct {
	kind    Kind
	num     *big.Int
	text    string
	boolean bool
	addr    common.Address
	raw     []byte
}

func NewInt(v *big.Int) Value {
	return Value{kind: KindInt, num: new(big.Int).Set(v)}
}

func NewInt64(v int64) Value {
	return Value{kind: KindInt, num: big.NewInt(v)}
}

func NewText(v string) Value {
	return Value{kind: KindText, text: v}
}

func NewBool(v bool) Value {
	return Value{kind: KindBool, boolean: v}
}

func NewAddress(v common.Address) Value {
	return Value{kind: KindAddress, addr: v}
}

func NewBytes(v []byte) Value {
	return Value{kind: KindBytes, raw: slices.Clone(v)}
}

func (v Value) Kind() Kind {
	return v.kind
}

// BigInt returns the integer content. It must only be called on values
// of KindInt.
func (v Value) BigInt() *big.Int {
	return new(big.Int).Set(v.num)
}

func (v Value) Int64() int64 {
	return v.num.Int64()
}

func (v Value) Text() string {
	return v.text
}

func (v Value) Bool() bool {
	return v.boolean
}

func (v Value) Address() common.Address {
	return v.addr
}

func (v Value) Bytes() []byte {
	return slices.Clone(v.raw)
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.num.Cmp(other.num) == 0
	case KindText:
		return v.text == other.text
	case KindBool:
		return v.boolean == other.boolean
	case KindAddress:
		return v.addr == other.addr
	case KindBytes:
		return slices.Equal(v.raw, other.raw)
	default:
		return false
	}
}
