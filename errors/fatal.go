package errors

import (
	stderrors "errors"
	"fmt"
)

// FatalError marks an invariant violation severe enough that continued
// operation risks corrupting committed state. It must propagate until it
// terminates the enclosing process; the transaction boundary never
// converts it into a failure response.
type FatalError struct {
	message string
}

func Fatalf(format string, args ...any) *FatalError {
	return &FatalError{message: fmt.Sprintf(format, args...)}
}

func (e *FatalError) Error() string {
	return e.message
}

func IsFatal(err error) bool {
	var fatal *FatalError
	return stderrors.As(err, &fatal)
}

// BaseTransactionError marks a failure during the platform's own
// bootstrap ("base") transaction. It is handled by dedicated logic at
// the boundary, outside normal transaction error recovery.
type BaseTransactionError struct {
	message string
}

func InvalidBaseTransaction(message string) *BaseTransactionError {
	return &BaseTransactionError{message: message}
}

func (e *BaseTransactionError) Error() string {
	return e.message
}

func IsBaseTransactionError(err error) bool {
	var base *BaseTransactionError
	return stderrors.As(err, &base)
}
