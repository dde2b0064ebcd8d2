package errors

import (
	stderrors "errors"
	"fmt"
	"math/big"
)

// Error is a coded service failure. It is constructed at the failure
// site and propagated unchanged to the transaction boundary, which maps
// the code to the protocol-level response.
type Error struct {
	code    Code
	message string
}

// New creates an Error with the given code. An empty message is derived
// from the code's textual name.
func New(code Code, message string) *Error {
	if message == "" {
		message = code.String()
	}
	return &Error{code: code, message: message}
}

func (e *Error) Code() Code {
	return e.code
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d)", e.message, e.code)
}

// CodeOf extracts the failure code from an error chain. Errors raised
// outside this taxonomy report CodeSystemError.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	var coded *Error
	if stderrors.As(err, &coded) {
		return coded.code
	}
	return CodeSystemError
}

func SystemError(message string) *Error {
	return New(CodeSystemError, message)
}

func ContractNotFound(message string) *Error {
	return New(CodeContractNotFound, message)
}

func MethodNotFound(message string) *Error {
	return New(CodeMethodNotFound, message)
}

func MethodNotPayable(message string) *Error {
	return New(CodeMethodNotPayable, message)
}

func IllegalFormat(message string) *Error {
	return New(CodeIllegalFormat, message)
}

func InvalidParameter(message string) *Error {
	return New(CodeInvalidParameter, message)
}

func InvalidInstance(message string) *Error {
	return New(CodeInvalidInstance, message)
}

func InvalidContainerAccess(message string) *Error {
	return New(CodeInvalidContainerAccess, message)
}

func AccessDenied(message string) *Error {
	return New(CodeAccessDenied, message)
}

func OutOfStep(message string) *Error {
	return New(CodeOutOfStep, message)
}

func OutOfBalance(message string) *Error {
	return New(CodeOutOfBalance, message)
}

func Timeout(message string) *Error {
	return New(CodeTimeout, message)
}

func StackOverflow(message string) *Error {
	return New(CodeStackOverflow, message)
}

func InvalidPackage(message string) *Error {
	return New(CodeInvalidPackage, message)
}

func MethodNotAllowed(message string) *Error {
	return New(CodeMethodNotAllowed, message)
}

// NewUserError maps a contract-raised failure onto the reserved band:
// code = CodeScoreError + offset, clamped into [CodeScoreError, CodeEnd].
func NewUserError(message string, offset int) *Error {
	code := CodeScoreError + Code(offset)
	if code < CodeScoreError {
		code = CodeScoreError
	} else if code > CodeEnd {
		code = CodeEnd
	}
	return New(code, message)
}

// UserErrorFrom converts a revert raised by contract code. The offset
// arrives as a decoded call parameter of unknown type; any non-integral
// offset is rejected before banding is attempted.
func UserErrorFrom(message string, offset any) (*Error, error) {
	switch v := offset.(type) {
	case int:
		return NewUserError(message, v), nil
	case int64:
		return NewUserError(message, int(v)), nil
	case *big.Int:
		if !v.IsInt64() {
			// Far outside the band either way; clamping handles it.
			return NewUserError(message, int(v.Sign())*int(CodeEnd)), nil
		}
		return NewUserError(message, int(v.Int64())), nil
	default:
		return nil, InvalidParameter(fmt.Sprintf("invalid index type: %T", offset))
	}
}
