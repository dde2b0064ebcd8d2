package common

// ConstError is an error type that can be declared as a constant.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}
