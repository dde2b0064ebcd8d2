package scoreapi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halcyonchain/halcyon/errors"
)

func TestFlag_Validate_AcceptsLegalCombinations(t *testing.T) {
	for _, flags := range []Flag{
		External,
		External | Payable,
		External | ReadOnly,
		Payable,
		EventLog,
		Interface,
	} {
		t.Run(flags.String(), func(t *testing.T) {
			require.NoError(t, flags.Validate())
		})
	}
}

func TestFlag_Validate_RejectsIllegalCombinations(t *testing.T) {
	for _, flags := range []Flag{
		ReadOnly | Payable,
		External | ReadOnly | Payable,
		ReadOnly,
		ReadOnly | Payable | EventLog,
		EventLog | External,
		EventLog | ReadOnly,
		Interface | External,
		Interface | EventLog,
	} {
		t.Run(flags.String(), func(t *testing.T) {
			err := flags.Validate()
			require.Error(t, err)
			require.Equal(t, errors.CodeIllegalFormat, errors.CodeOf(err))
		})
	}
}

func TestFlag_String_NamesEverySetFlag(t *testing.T) {
	require := require.New(t)

	require.Equal("none", Flag(0).String())
	require.Equal("external", External.String())
	require.Equal("external|readonly", (External | ReadOnly).String())
	require.Equal("external|payable|readonly|eventlog|interface",
		(External | Payable | ReadOnly | EventLog | Interface).String())
}
