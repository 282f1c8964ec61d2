// Package math provides vector and matrix types for dimensional arithmetic.
//
// Vector2 and Vector3 are written once against the Field capability set and
// instantiated over any component type that supplies one: plain float64 via
// Float64Ops, or dimensioned values from package physics. Vec2 and Vec3 are
// the specialized float64 forms with no Field indirection.
package math

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrArityMismatch is returned when a vector is built from the wrong number
// of components.
var ErrArityMismatch = errors.New("arity mismatch")

// Field is the set of numeric operations a component type must supply to be
// used inside Vector2 and Vector3. Implementations are expected to be
// zero-size types so that a vector carries nothing but its components.
//
// Operations that can reject their operands (Add, Subtract, Pow, Atan2)
// return an error; the others cannot fail and follow IEEE semantics for
// division by zero and out-of-domain inputs.
type Field[T any] interface {
	Zero() T
	One() T
	Add(a, b T) (T, error)
	Subtract(a, b T) (T, error)
	Multiply(a, b T) T
	Divide(a, b T) T
	Minus(a T) T
	Sqrt(a T) T
	Pow(a, b T) (T, error)
	Acos(a T) T
	Asin(a T) T
	Atan(a T) T
	Atan2(a, b T) (T, error)
	// Sign returns -1, 0 or +1.
	Sign(a T) int
}

// Builder constructs a vector type V from an ordered list of components.
type Builder[T, V any] interface {
	Build(components ...T) (V, error)
}

// Build is a convenience for calling Build on the zero value of V.
func Build[T any, V Builder[T, V]](components ...T) (V, error) {
	var zero V
	return zero.Build(components...)
}

func checkArity(want int, got int) error {
	if got != want {
		return fmt.Errorf("%w: want %d components, got %d", ErrArityMismatch, want, got)
	}
	return nil
}

// Float64Ops is the Field for plain float64 components.
type Float64Ops struct{}

func (Float64Ops) Zero() float64                          { return 0 }
func (Float64Ops) One() float64                           { return 1 }
func (Float64Ops) Add(a, b float64) (float64, error)      { return a + b, nil }
func (Float64Ops) Subtract(a, b float64) (float64, error) { return a - b, nil }
func (Float64Ops) Multiply(a, b float64) float64          { return a * b }
func (Float64Ops) Divide(a, b float64) float64            { return a / b }
func (Float64Ops) Minus(a float64) float64                { return -a }
func (Float64Ops) Sqrt(a float64) float64                 { return math.Sqrt(a) }
func (Float64Ops) Pow(a, b float64) (float64, error)      { return math.Pow(a, b), nil }
func (Float64Ops) Acos(a float64) float64                 { return math.Acos(a) }
func (Float64Ops) Asin(a float64) float64                 { return math.Asin(a) }
func (Float64Ops) Atan(a float64) float64                 { return math.Atan(a) }
func (Float64Ops) Atan2(a, b float64) (float64, error)    { return math.Atan2(a, b), nil }
func (Float64Ops) Sign(a float64) int                     { return sign(a) }

func sign[T constraints.Float](a T) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual[T constraints.Float](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// Lerp interpolates linearly between a and b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}
