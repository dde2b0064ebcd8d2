package errors

// Code classifies a service failure. The numeric values are part of the
// protocol: the transaction boundary maps them into the failure field of
// the external response, so they must never be renumbered.
type Code int

const (
	CodeOK                     Code = 0
	CodeSystemError            Code = 1
	CodeContractNotFound       Code = 2
	CodeMethodNotFound         Code = 3
	CodeMethodNotPayable       Code = 4
	CodeIllegalFormat          Code = 5
	CodeInvalidParameter       Code = 6
	CodeInvalidInstance        Code = 7
	CodeInvalidContainerAccess Code = 8
	CodeAccessDenied           Code = 9
	CodeOutOfStep              Code = 10
	CodeOutOfBalance           Code = 11
	CodeTimeout                Code = 12
	CodeStackOverflow          Code = 13
	CodeInvalidPackage         Code = 14
	CodeMethodNotAllowed       Code = 15

	// CodeScoreError is the base of the band [32, 99] reserved for
	// failures raised by contract code itself, including reverts.
	CodeScoreError Code = 32
	CodeEnd        Code = 99
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "Ok"
	case CodeSystemError:
		return "System error"
	case CodeContractNotFound:
		return "Contract not found"
	case CodeMethodNotFound:
		return "Method not found"
	case CodeMethodNotPayable:
		return "Method not payable"
	case CodeIllegalFormat:
		return "Illegal format"
	case CodeInvalidParameter:
		return "Invalid parameter"
	case CodeInvalidInstance:
		return "Invalid instance"
	case CodeInvalidContainerAccess:
		return "Invalid container access"
	case CodeAccessDenied:
		return "Access denied"
	case CodeOutOfStep:
		return "Out of step"
	case CodeOutOfBalance:
		return "Out of balance"
	case CodeTimeout:
		return "Timeout error"
	case CodeStackOverflow:
		return "Stack overflow"
	case CodeInvalidPackage:
		return "Invalid package"
	case CodeMethodNotAllowed:
		return "Method not allowed"
	case CodeEnd:
		return "End"
	default:
		if c >= CodeScoreError && c < CodeEnd {
			return "Score error"
		}
		return "Unknown"
	}
}
