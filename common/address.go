package common

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// AddressBodyLength is the number of bytes identifying an account,
// excluding the leading ID byte.
const AddressBodyLength = 20

const (
	accountPrefix  = "hx"
	contractPrefix = "cx"
)

const ErrInvalidAddress = ConstError("invalid address")

// AddressID distinguishes externally owned accounts from deployed
// contracts.
type AddressID byte

const (
	AccountID  AddressID = 0x00
	ContractID AddressID = 0x01
)

// Address identifies an account or a deployed contract. The first byte
// holds the AddressID, the remaining 20 bytes the account body. The
// canonical textual form is a two-letter prefix ("hx" for accounts,
// "cx" for contracts) followed by 40 lowercase hex digits.
type Address [AddressBodyLength + 1]byte

func NewAccountAddress(body []byte) Address {
	return newAddress(AccountID, body)
}

func NewContractAddress(body []byte) Address {
	return newAddress(ContractID, body)
}

func newAddress(id AddressID, body []byte) Address {
	var addr Address
	addr[0] = byte(id)
	if len(body) > AddressBodyLength {
		body = body[len(body)-AddressBodyLength:]
	}
	copy(addr[1+AddressBodyLength-len(body):], body)
	return addr
}

// AddressOfPublicKey derives the account address owned by the given
// uncompressed public key: the last 20 bytes of its sha3-256 digest.
func AddressOfPublicKey(pubKey []byte) Address {
	digest := sha3.Sum256(pubKey)
	return NewAccountAddress(digest[len(digest)-AddressBodyLength:])
}

// ContractAddressOf derives a deterministic contract address from the
// given seed, typically the hash of the deployment transaction.
func ContractAddressOf(seed []byte) Address {
	digest := sha3.Sum256(seed)
	return NewContractAddress(digest[len(digest)-AddressBodyLength:])
}

func AddressFromString(s string) (Address, error) {
	if len(s) != 2+2*AddressBodyLength {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	var id AddressID
	switch s[:2] {
	case accountPrefix:
		id = AccountID
	case contractPrefix:
		id = ContractID
	default:
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	body, err := hex.DecodeString(s[2:])
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return newAddress(id, body), nil
}

func (a Address) ID() AddressID {
	return AddressID(a[0])
}

func (a Address) IsContract() bool {
	return a.ID() == ContractID
}

// Body returns the 20-byte account identifier without the ID byte.
func (a Address) Body() []byte {
	body := make([]byte, AddressBodyLength)
	copy(body, a[1:])
	return body
}

func (a Address) String() string {
	prefix := accountPrefix
	if a.IsContract() {
		prefix = contractPrefix
	}
	return prefix + hex.EncodeToString(a[1:])
}
