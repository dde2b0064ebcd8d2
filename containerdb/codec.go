package containerdb

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/halcyonchain/halcyon/common"
	"github.com/halcyonchain/halcyon/errors"
)

// KeyDelimiter terminates every encoded key. No encoded key content of
// a supported kind ends with it, so no valid encoded key can be a byte
// prefix of another; without this, a lookup for key K could match data
// stored under K plus a suffix.
const KeyDelimiter = byte('|')

// EncodeKey encodes a container key. Only integer, text, and address
// keys are supported; the result always ends with KeyDelimiter.
func EncodeKey(key Value) ([]byte, error) {
	var text string
	switch key.kind {
	case KindInt:
		text = encodeInt(key.num)
	case KindText:
		text = key.text
	case KindAddress:
		text = key.addr.String()
	default:
		return nil, errors.InvalidInstance(fmt.Sprintf("can't encode key of type %s", key.kind))
	}
	return append([]byte(text), KeyDelimiter), nil
}

// EncodeValue encodes a stored value. Values are not used as namespace
// prefixes, so no delimiter is appended.
func EncodeValue(value Value) ([]byte, error) {
	switch value.kind {
	case KindInt:
		return []byte(encodeInt(value.num)), nil
	case KindText:
		return []byte(value.text), nil
	case KindBool:
		if value.boolean {
			return []byte("0x1"), nil
		}
		return []byte("0x0"), nil
	case KindAddress:
		return []byte(value.addr.String()), nil
	case KindBytes:
		return value.Bytes(), nil
	default:
		return nil, errors.InvalidInstance(fmt.Sprintf("can't encode value of type %s", value.kind))
	}
}

// DecodeValue is the exact inverse of EncodeValue for the requested
// kind. Absent data (nil) yields found == false and never an error; the
// encoding carries no type information, so the caller must supply the
// kind it stored.
func DecodeValue(data []byte, kind Kind) (value Value, found bool, err error) {
	if data == nil {
		return Value{}, false, nil
	}
	switch kind {
	case KindInt:
		num, err := decodeInt(string(data))
		if err != nil {
			return Value{}, false, err
		}
		return NewInt(num), true, nil
	case KindText:
		return NewText(string(data)), true, nil
	case KindBool:
		num, err := decodeInt(string(data))
		if err != nil {
			return Value{}, false, err
		}
		return NewBool(num.Sign() != 0), true, nil
	case KindAddress:
		addr, err := common.AddressFromString(string(data))
		if err != nil {
			return Value{}, false, errors.IllegalFormat(err.Error())
		}
		return NewAddress(addr), true, nil
	case KindBytes:
		return NewBytes(data), true, nil
	default:
		return Value{}, false, errors.IllegalFormat(fmt.Sprintf("can't decode value of type %v", kind))
	}
}

// StripKeyDelimiter recovers the original key bytes from an encoded key
// emitted by a raw iteration over a namespaced store. It is a helper
// for iteration consumers; the store layer itself always hands out keys
// with the delimiter in place.
func StripKeyDelimiter(key []byte) []byte {
	return key[:len(key)-1]
}

// encodeInt renders an integer as lowercase hex with a 0x prefix and no
// zero padding; negative values carry a leading minus sign.
func encodeInt(v *big.Int) string {
	return hexutil.EncodeBig(v)
}

// decodeInt parses the hex form without a width bound; stored integers
// are arbitrary precision and must read back exactly as written.
func decodeInt(text string) (*big.Int, error) {
	digits := strings.TrimPrefix(text, "-")
	negative := len(digits) != len(text)
	digits, ok := strings.CutPrefix(digits, "0x")
	if !ok || digits == "" || strings.ContainsAny(digits, "+-") {
		return nil, errors.IllegalFormat(fmt.Sprintf("invalid integer encoding %q", text))
	}
	num, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, errors.IllegalFormat(fmt.Sprintf("invalid integer encoding %q", text))
	}
	if negative {
		num.Neg(num)
	}
	return num, nil
}
