package scoreapi

import (
	"fmt"
	"strings"

	"github.com/halcyonchain/halcyon/errors"
)

// Flag is a bitmask of capability flags attached to a contract method
// or event declaration.
type Flag int

const (
	External Flag = 1 << iota
	Payable
	ReadOnly
	EventLog
	Interface
)

// candidateMask selects the flags that make a callable a registry
// candidate. Interface is recognized but pure interface declarations
// are not registered.
const candidateMask = External | Payable | ReadOnly | EventLog

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, entry := range []struct {
		flag Flag
		name string
	}{
		{External, "external"},
		{Payable, "payable"},
		{ReadOnly, "readonly"},
		{EventLog, "eventlog"},
		{Interface, "interface"},
	} {
		if f&entry.flag != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}

// Validate checks the legality of a flag combination. An invalid
// contract is rejected here, at registry construction, before any call
// dispatch is possible.
func (f Flag) Validate() error {
	if f&ReadOnly != 0 {
		// A read-only call must be side-effect-free, so it cannot
		// accept funds; and it is only meaningful on an externally
		// callable method.
		if f&Payable != 0 {
			return errors.IllegalFormat("payable method cannot be readonly")
		}
		if f&External == 0 {
			return errors.IllegalFormat(fmt.Sprintf("invalid score flag: %s", f))
		}
	}
	if f&EventLog != 0 && f != EventLog {
		return errors.IllegalFormat(fmt.Sprintf("invalid score flag: %s", f))
	}
	if f&Interface != 0 && f != Interface {
		return errors.IllegalFormat(fmt.Sprintf("invalid score flag: %s", f))
	}
	return nil
}
