package physics

import (
	"errors"
	"testing"

	"github.com/Faultbox/quantity/pkg/units"
)

func TestEarthMoonGravForce(t *testing.T) {
	force, err := GravitationalForce(EarthMass, MoonMass, EarthMoonDistance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !near(force.Value, 2e20, 1e19) {
		t.Errorf("force = %v, want ~2e20", force.Value)
	}
	if !force.Units.Equal(units.Newtons) {
		t.Errorf("expected force units, got %q", force.Units)
	}
}

func TestForceGroupingIndependent(t *testing.T) {
	m1, m2, d := EarthMass, MoonMass, EarthMoonDistance

	groupings := map[string]Scalar{}
	groupings["G*(m1*m2/d^2)"] = G.Mul(m1.Mul(m2).Div(d.Mul(d)))
	groupings["((G*m1)*m2)/d/d"] = G.Mul(m1).Mul(m2).Div(d).Div(d)
	groupings["m2*(m1*G)/(d*d)"] = m2.Mul(m1.Mul(G)).Div(d.Mul(d))
	groupings["(m1/d)*(m2/d)*G"] = m1.Div(d).Mul(m2.Div(d)).Mul(G)

	for name, f := range groupings {
		if !f.Units.Equal(units.Newtons) {
			t.Errorf("%s: expected force units, got %q", name, f.Units)
		}
		if !near(f.Value, 2e20, 1e19) {
			t.Errorf("%s: force = %v, want ~2e20", name, f.Value)
		}
	}
}

func TestSurfaceGravity(t *testing.T) {
	tests := []struct {
		name     string
		mass     Scalar
		distance Scalar
		want     Scalar
	}{
		{"earth", EarthMass, EarthRadius, EarthSurfaceGravity},
		{"earth from miles", EarthMass, New(3958.8, units.Miles), EarthSurfaceGravity},
		{"moon", MoonMass, MoonRadius, MoonSurfaceGravity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accel, err := GravitationalAcceleration(tt.mass, tt.distance)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !near(accel.Value, tt.want.Value, 0.1) {
				t.Errorf("accel = %v, want ~%v", accel.Value, tt.want.Value)
			}
			if !accel.Units.Equal(units.Acceleration) {
				t.Errorf("expected acceleration units, got %q", accel.Units)
			}
		})
	}
}

func TestGravityRejectsWrongUnits(t *testing.T) {
	_, err := GravitationalForce(EarthMass, MoonMass, New(1, units.Seconds))
	if !errors.Is(err, units.ErrUnitMismatch) {
		t.Errorf("expected ErrUnitMismatch, got %v", err)
	}

	_, err = GravitationalAcceleration(EarthRadius, EarthRadius)
	var mismatch *units.MismatchError
	if !errors.As(err, &mismatch) || mismatch.Op != "mass" {
		t.Errorf("expected mismatch on mass, got %v", err)
	}
}
