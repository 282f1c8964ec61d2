package units

import (
	"errors"
	"fmt"
)

// ErrUnitMismatch is returned when an operation requires equal dimensions.
var ErrUnitMismatch = errors.New("unit mismatch")

// MismatchError records the operation and the two units that disagreed.
type MismatchError struct {
	Op   string
	A, B Unit
}

func (e *MismatchError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("unit %q does not match unit %q", e.A, e.B)
	}
	return fmt.Sprintf("%s: unit %q does not match unit %q", e.Op, e.A, e.B)
}

// Unwrap lets errors.Is match ErrUnitMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrUnitMismatch
}

// AssertMatch returns a *MismatchError if a and b have different dimensions.
func AssertMatch(a, b Unit) error {
	return Check("", a, b)
}

// Check is AssertMatch with the failing operation named in the error.
func Check(op string, a, b Unit) error {
	if a.NotEqual(b) {
		return &MismatchError{Op: op, A: a, B: b}
	}
	return nil
}
