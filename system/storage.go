// Package system keeps the chain-wide configuration values that used to
// be scattered over governance state: revision, step pricing, and the
// contract black list. Values live under a dedicated prefix of the
// backing store and are coded with canonical CBOR, so the stored bytes
// are deterministic across nodes.
package system

import (
	stderrors "errors"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/halcyonchain/halcyon/backend"
	"github.com/halcyonchain/halcyon/common"
	"github.com/halcyonchain/halcyon/errors"
)

// ValueType identifies one system value. The string is the storage key
// of the value inside the system prefix.
type ValueType string

const (
	Revision       ValueType = "revision"
	StepPrice      ValueType = "step_price"
	StepCosts      ValueType = "step_costs"
	MaxStepLimits  ValueType = "max_step_limits"
	ServiceConfig  ValueType = "service_config"
	ScoreBlackList ValueType = "score_black_list"
)

var (
	storagePrefix    = []byte("gv")
	migrationFlagKey = []byte("mf")
)

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Storage provides typed access to the system values of one store.
type Storage struct {
	store backend.Store
}

func NewStorage(store backend.Store) *Storage {
	return &Storage{store: backend.NewPrefixed(store, storagePrefix)}
}

// PutValue stores one system value under its type key.
func (s *Storage) PutValue(t ValueType, value any) error {
	data, err := encMode.Marshal(value)
	if err != nil {
		return errors.IllegalFormat(fmt.Sprintf("failed to encode system value %s: %v", t, err))
	}
	return s.store.Put([]byte(t), data)
}

// GetValue loads one system value into out. It reports false without an
// error when the value has never been stored.
func (s *Storage) GetValue(t ValueType, out any) (bool, error) {
	data, err := s.store.Get([]byte(t))
	if stderrors.Is(err, backend.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := cbor.Unmarshal(data, out); err != nil {
		return false, errors.IllegalFormat(fmt.Sprintf("corrupted system value %s: %v", t, err))
	}
	return true, nil
}

// DeleteValue removes one system value. Deleting an absent value is not
// an error.
func (s *Storage) DeleteValue(t ValueType) error {
	err := s.store.Delete([]byte(t))
	if stderrors.Is(err, backend.ErrNotFound) {
		return nil
	}
	return err
}

// Migrated reports whether the system values have been migrated into
// this storage. Before the flag is set, callers fall back to the legacy
// governance contract for every value.
func (s *Storage) Migrated() (bool, error) {
	data, err := s.store.Get(migrationFlagKey)
	if stderrors.Is(err, backend.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var flag bool
	if err := cbor.Unmarshal(data, &flag); err != nil {
		return false, errors.IllegalFormat(fmt.Sprintf("corrupted migration flag: %v", err))
	}
	return flag, nil
}

// SetMigrated marks the storage as the authoritative source of system
// values. The transition is one-way.
func (s *Storage) SetMigrated() error {
	data, err := encMode.Marshal(true)
	if err != nil {
		return err
	}
	return s.store.Put(migrationFlagKey, data)
}

func (s *Storage) Revision() (int64, bool, error) {
	var rev int64
	ok, err := s.GetValue(Revision, &rev)
	return rev, ok, err
}

func (s *Storage) SetRevision(rev int64) error {
	return s.PutValue(Revision, rev)
}

func (s *Storage) StepPrice() (*big.Int, bool, error) {
	price := new(big.Int)
	ok, err := s.GetValue(StepPrice, price)
	if !ok || err != nil {
		return nil, ok, err
	}
	return price, true, nil
}

func (s *Storage) SetStepPrice(price *big.Int) error {
	return s.PutValue(StepPrice, price)
}

func (s *Storage) StepCosts() (map[string]int64, bool, error) {
	var costs map[string]int64
	ok, err := s.GetValue(StepCosts, &costs)
	return costs, ok, err
}

func (s *Storage) SetStepCosts(costs map[string]int64) error {
	return s.PutValue(StepCosts, costs)
}

func (s *Storage) MaxStepLimits() (map[string]int64, bool, error) {
	var limits map[string]int64
	ok, err := s.GetValue(MaxStepLimits, &limits)
	return limits, ok, err
}

func (s *Storage) SetMaxStepLimits(limits map[string]int64) error {
	return s.PutValue(MaxStepLimits, limits)
}

// GetScoreBlackList returns the contract addresses barred from
// invocation. Addresses are stored in their text form.
func (s *Storage) GetScoreBlackList() ([]common.Address, bool, error) {
	var encoded []string
	ok, err := s.GetValue(ScoreBlackList, &encoded)
	if !ok || err != nil {
		return nil, ok, err
	}
	addrs := make([]common.Address, 0, len(encoded))
	for _, e := range encoded {
		addr, err := common.AddressFromString(e)
		if err != nil {
			return nil, false, errors.IllegalFormat(fmt.Sprintf("corrupted black list entry %q", e))
		}
		addrs = append(addrs, addr)
	}
	return addrs, true, nil
}

func (s *Storage) SetScoreBlackList(addrs []common.Address) error {
	encoded := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		encoded = append(encoded, addr.String())
	}
	return s.PutValue(ScoreBlackList, encoded)
}
