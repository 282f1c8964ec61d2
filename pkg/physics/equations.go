package physics

import (
	"fmt"

	"github.com/Faultbox/quantity/pkg/units"
)

// GravitationalForce returns the Newtonian attraction between two masses
// separated by distance.
func GravitationalForce(mass1, mass2, distance Scalar) (Scalar, error) {
	if err := checkAll(
		arg{"mass1", mass1, units.Kilograms},
		arg{"mass2", mass2, units.Kilograms},
		arg{"distance", distance, units.Meters},
	); err != nil {
		return Scalar{}, fmt.Errorf("gravitational force: %w", err)
	}
	return G.Mul(mass1.Mul(mass2).Div(distance.Mul(distance))), nil
}

// GravitationalAcceleration returns the acceleration toward mass at distance.
func GravitationalAcceleration(mass, distance Scalar) (Scalar, error) {
	if err := checkAll(
		arg{"mass", mass, units.Kilograms},
		arg{"distance", distance, units.Meters},
	); err != nil {
		return Scalar{}, fmt.Errorf("gravitational acceleration: %w", err)
	}
	return G.Mul(mass.Div(distance.Mul(distance))), nil
}

type arg struct {
	name string
	val  Scalar
	want units.Unit
}

func checkAll(args ...arg) error {
	for _, a := range args {
		if err := units.Check(a.name, a.val.Units, a.want); err != nil {
			return err
		}
	}
	return nil
}
