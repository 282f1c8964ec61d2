// Package physics provides dimensioned scalar values and vectors of them.
package physics

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/Faultbox/quantity/pkg/units"
)

// Scalar is a value in SI base units paired with its dimensions. Units
// always carries identity conversion, so arithmetic never converts.
type Scalar struct {
	Value float64
	Units units.Unit
}

// New converts raw from unit u into SI and returns the resulting Scalar.
func New(raw float64, u units.Unit) Scalar {
	return Scalar{Value: u.ToSI(raw), Units: u.Core()}
}

// Dimensionless returns v with no units.
func Dimensionless(v float64) Scalar {
	return Scalar{Value: v}
}

// In returns the value expressed in unit u.
func (s Scalar) In(u units.Unit) (float64, error) {
	if err := units.Check("convert", s.Units, u); err != nil {
		return 0, err
	}
	return u.FromSI(s.Value), nil
}

// Add returns s + other. Both must have the same dimensions.
func (s Scalar) Add(other Scalar) (Scalar, error) {
	if err := units.Check("add", s.Units, other.Units); err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: s.Value + other.Value, Units: s.Units}, nil
}

// Sub returns s - other. Both must have the same dimensions.
func (s Scalar) Sub(other Scalar) (Scalar, error) {
	if err := units.Check("subtract", s.Units, other.Units); err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: s.Value - other.Value, Units: s.Units}, nil
}

// Mul returns s * other with multiplied dimensions.
func (s Scalar) Mul(other Scalar) Scalar {
	return Scalar{Value: s.Value * other.Value, Units: s.Units.Mul(other.Units)}
}

// Div returns s / other with divided dimensions.
func (s Scalar) Div(other Scalar) Scalar {
	return Scalar{Value: s.Value / other.Value, Units: s.Units.Div(other.Units)}
}

// Scale returns s * k.
func (s Scalar) Scale(k float64) Scalar {
	return Scalar{Value: s.Value * k, Units: s.Units}
}

// DivFloat returns s / k.
func (s Scalar) DivFloat(k float64) Scalar {
	return Scalar{Value: s.Value / k, Units: s.Units}
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	return Scalar{Value: -s.Value, Units: s.Units}
}

// Pow raises s to exp.Value. The exponent must share s's dimensions, and
// the result carries s's dimensions unchanged.
func (s Scalar) Pow(exp Scalar) (Scalar, error) {
	if err := units.Check("pow", s.Units, exp.Units); err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: gomath.Pow(s.Value, exp.Value), Units: s.Units.Core()}, nil
}

// PowFloat raises s to p, keeping s's dimensions.
func (s Scalar) PowFloat(p float64) Scalar {
	return Scalar{Value: gomath.Pow(s.Value, p), Units: s.Units}
}

// Equal reports exact value equality and equal dimensions.
func (s Scalar) Equal(other Scalar) bool {
	return s.Value == other.Value && s.Units.Equal(other.Units)
}

func (s Scalar) String() string {
	return strings.TrimSpace(fmt.Sprintf("%v %v", s.Value, s.Units))
}
