package num

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrDivideByZero is the panic value for a zero divisor or modulus.
	ErrDivideByZero = errors.New("num: division by zero")

	// ErrDomain is wrapped by the panic value of operations given an argument
	// outside their mathematical domain, like the square root of a negative.
	ErrDomain = errors.New("num: argument out of domain")

	// ErrSyntax is wrapped by a FormatError when the input is not a base-10
	// integer.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange is wrapped by a FormatError when the input does not fit in
	// the target type.
	ErrRange = errors.New("value out of range")
)

// FormatError is returned when a string can not be parsed into a U128 or I128.
type FormatError struct {
	Type  string
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("num: %s string %q: %v", e.Type, e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func domainPanic(op string) {
	panic(errors.Wrap(ErrDomain, op))
}
