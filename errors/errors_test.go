package errors

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_MessageDefaultsToCodeName(t *testing.T) {
	require := require.New(t)

	err := New(CodeMethodNotFound, "")
	require.Equal("Method not found", err.Message())
	require.Equal("Method not found (3)", err.Error())

	err = New(CodeAccessDenied, "no permission")
	require.Equal("no permission (9)", err.Error())
}

func TestCodeOf_ReportsSystemErrorForForeignErrors(t *testing.T) {
	require := require.New(t)

	require.Equal(CodeOK, CodeOf(nil))
	require.Equal(CodeInvalidParameter, CodeOf(InvalidParameter("bad arg")))
	require.Equal(CodeInvalidParameter, CodeOf(fmt.Errorf("wrapped: %w", InvalidParameter("bad arg"))))
	require.Equal(CodeSystemError, CodeOf(fmt.Errorf("plain failure")))
}

func TestNewUserError_BandingAndClamping(t *testing.T) {
	require := require.New(t)

	require.Equal(CodeScoreError, NewUserError("revert", 0).Code())
	require.Equal(Code(33), NewUserError("revert", 1).Code())
	require.Equal(CodeEnd, NewUserError("revert", 67).Code())
	require.Equal(CodeEnd, NewUserError("revert", 1_000_000).Code())
	require.Equal(CodeScoreError, NewUserError("revert", -5).Code())
}

func TestUserErrorFrom_RejectsNonIntegerOffset(t *testing.T) {
	require := require.New(t)

	err, convErr := UserErrorFrom("revert", 2)
	require.NoError(convErr)
	require.Equal(Code(34), err.Code())

	err, convErr = UserErrorFrom("revert", big.NewInt(3))
	require.NoError(convErr)
	require.Equal(Code(35), err.Code())

	_, convErr = UserErrorFrom("revert", "2")
	require.Error(convErr)
	require.Equal(CodeInvalidParameter, CodeOf(convErr))

	_, convErr = UserErrorFrom("revert", 1.5)
	require.Error(convErr)
	require.Equal(CodeInvalidParameter, CodeOf(convErr))
}

func TestFatalAndBaseTransactionErrorsAreDistinct(t *testing.T) {
	require := require.New(t)

	fatal := Fatalf("commit state diverged at block %d", 42)
	require.True(IsFatal(fatal))
	require.False(IsBaseTransactionError(fatal))

	base := InvalidBaseTransaction("unexpected issue amount")
	require.True(IsBaseTransactionError(base))
	require.False(IsFatal(base))

	require.False(IsFatal(SystemError("recoverable")))
}
