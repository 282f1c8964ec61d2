package physics

import (
	gomath "math"

	"github.com/Faultbox/quantity/pkg/math"
	"github.com/Faultbox/quantity/pkg/units"
)

// ScalarOps is the math.Field for Scalar components.
type ScalarOps struct{}

var _ math.Field[Scalar] = ScalarOps{}

// Scalar2 and Scalar3 are vectors of dimensioned components.
type (
	Scalar2 = math.Vector2[Scalar, ScalarOps]
	Scalar3 = math.Vector3[Scalar, ScalarOps]
)

// NewScalar2 returns the vector (x, y).
func NewScalar2(x, y Scalar) Scalar2 {
	return Scalar2{X: x, Y: y}
}

// NewScalar3 returns the vector (x, y, z).
func NewScalar3(x, y, z Scalar) Scalar3 {
	return Scalar3{X: x, Y: y, Z: z}
}

func (ScalarOps) Zero() Scalar { return Dimensionless(0) }

func (ScalarOps) One() Scalar { return Dimensionless(1) }

func (ScalarOps) Add(a, b Scalar) (Scalar, error) { return a.Add(b) }

func (ScalarOps) Subtract(a, b Scalar) (Scalar, error) { return a.Sub(b) }

func (ScalarOps) Multiply(a, b Scalar) Scalar { return a.Mul(b) }

func (ScalarOps) Divide(a, b Scalar) Scalar { return a.Div(b) }

func (ScalarOps) Minus(a Scalar) Scalar { return a.Neg() }

func (ScalarOps) Pow(a, b Scalar) (Scalar, error) { return a.Pow(b) }

// Sqrt halves every exponent when all are even. Otherwise the square root
// is not representable and the argument's dimensions are kept.
func (ScalarOps) Sqrt(a Scalar) Scalar {
	exps := a.Units.Exponents()
	for i, e := range exps {
		if e%2 != 0 {
			return Scalar{Value: gomath.Sqrt(a.Value), Units: a.Units.Core()}
		}
		exps[i] = e / 2
	}
	return Scalar{Value: gomath.Sqrt(a.Value), Units: units.FromExponents(exps)}
}

// Acos keeps the argument's dimensions.
func (ScalarOps) Acos(a Scalar) Scalar {
	return Scalar{Value: gomath.Acos(a.Value), Units: a.Units}
}

// Asin keeps the argument's dimensions.
func (ScalarOps) Asin(a Scalar) Scalar {
	return Scalar{Value: gomath.Asin(a.Value), Units: a.Units}
}

// Atan keeps the argument's dimensions.
func (ScalarOps) Atan(a Scalar) Scalar {
	return Scalar{Value: gomath.Atan(a.Value), Units: a.Units}
}

// Atan2 requires a and b to share dimensions; the result carries them.
func (ScalarOps) Atan2(a, b Scalar) (Scalar, error) {
	if err := units.Check("atan2", a.Units, b.Units); err != nil {
		return Scalar{}, err
	}
	return Scalar{Value: gomath.Atan2(a.Value, b.Value), Units: a.Units.Core()}, nil
}

func (ScalarOps) Sign(a Scalar) int {
	switch {
	case a.Value > 0:
		return 1
	case a.Value < 0:
		return -1
	default:
		return 0
	}
}
