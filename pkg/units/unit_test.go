package units

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

var allUnits = map[string]Unit{
	"one":          One,
	"kilograms":    Kilograms,
	"grams":        Grams,
	"pounds":       Pounds,
	"meters":       Meters,
	"feet":         Feet,
	"miles":        Miles,
	"hours":        Hours,
	"kelvin":       Kelvin,
	"amperes":      Amperes,
	"moles":        Moles,
	"candelas":     Candelas,
	"velocity":     Velocity,
	"acceleration": Acceleration,
	"newtons":      Newtons,
	"joules":       Joules,
	"volts":        Volts,
	"ohms":         Ohms,
	"teslas":       Teslas,
	"wavenumber":   Wavenumber,
}

func TestDimensionClosure(t *testing.T) {
	for an, a := range allUnits {
		for bn, b := range allUnits {
			got := a.Mul(b).Div(b)
			if !got.Equal(a) {
				t.Errorf("(%s*%s)/%s = %v, want %v", an, bn, bn, got.Exponents(), a.Exponents())
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	linearUnits := []Unit{Grams, Pounds, Feet, Kilometers, Miles, Minutes, Hours,
		Miles.Div(Hours), Miles.Div(Hours).Div(Seconds), KilowattHours, Newtons}
	values := []float64{0, 1, -3.5, 60, 1e6}

	for _, u := range linearUnits {
		for _, v := range values {
			got := u.FromSI(u.ToSI(v))
			if !approx(got, v, tolerance) {
				t.Errorf("%v: FromSI(ToSI(%v)) = %v", u, v, got)
			}
		}
	}
}

func TestAffineTemperature(t *testing.T) {
	tests := []struct {
		name   string
		unit   Unit
		value  float64
		kelvin float64
	}{
		{"freezing celsius", Celsius, 0, 273.15},
		{"boiling celsius", Celsius, 100, 373.15},
		{"freezing fahrenheit", Fahrenheit, 32, 273.15},
		{"boiling fahrenheit", Fahrenheit, 212, 373.15},
		{"minus forty", Fahrenheit, -40, 233.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.ToSI(tt.value); !approx(got, tt.kelvin, tolerance) {
				t.Errorf("ToSI(%v) = %v, want %v", tt.value, got, tt.kelvin)
			}
			if got := tt.unit.FromSI(tt.kelvin); !approx(got, tt.value, tolerance) {
				t.Errorf("FromSI(%v) = %v, want %v", tt.kelvin, got, tt.value)
			}
			if !tt.unit.Equal(Kelvin) {
				t.Errorf("expected temperature dimension, got %v", tt.unit)
			}
		})
	}
}

func TestMilesPerHour(t *testing.T) {
	mph := Miles.Div(Hours)
	if got := mph.ToSI(60); !approx(got, 26.8224, 1e-6) {
		t.Errorf("60 mph = %v m/s, want 26.8224", got)
	}
	if got := mph.FromSI(26.8224); !approx(got, 60, 1e-6) {
		t.Errorf("26.8224 m/s = %v mph, want 60", got)
	}
	if !mph.Equal(Velocity) {
		t.Errorf("mph should have velocity dimension, got %v", mph)
	}
}

func TestEqualIgnoresConversion(t *testing.T) {
	if !Newtons.Equal(Kilograms.Mul(Meters).Div(Seconds.Mul(Seconds))) {
		t.Error("N should equal kg·m/s²")
	}
	if !Feet.Equal(Meters) {
		t.Error("feet and meters should compare equal")
	}
	if Meters.Equal(Seconds) || !Meters.NotEqual(Seconds) {
		t.Error("meters and seconds should differ")
	}
}

func TestCore(t *testing.T) {
	core := Miles.Core()
	if !core.Equal(Miles) {
		t.Error("Core should keep exponents")
	}
	if core.ToSI(7) != 7 || core.FromSI(7) != 7 {
		t.Error("Core should have identity conversion")
	}
}

func TestInverse(t *testing.T) {
	inv := Miles.Div(Hours).Inverse()
	if inv.Exponent(Length) != -1 || inv.Exponent(Time) != 1 {
		t.Errorf("unexpected inverse exponents %v", inv.Exponents())
	}
	if inv.ToSI(5) != 5 {
		t.Error("Inverse should reset conversion to identity")
	}
	if !One.Inverse().IsDimensionless() {
		t.Error("inverse of dimensionless should be dimensionless")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		unit Unit
		want string
	}{
		{One, ""},
		{Meters, "m"},
		{Area, "m²"},
		{Velocity, "m/s"},
		{Acceleration, "m/s²"},
		{Newtons, "kg·m/s²"},
		{Frequency, "1/s"},
		{Wavenumber, "1/m"},
		{Density, "kg/m³"},
		{Ohms, "kg·m²/s³·A²"},
		{FromExponents([7]int8{0, 12, 0, 0, 0, 0, 0}), "m¹²"},
		{Moles.Mul(Candelas), "mol·cd"},
	}

	for _, tt := range tests {
		if got := tt.unit.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAssertMatch(t *testing.T) {
	if err := AssertMatch(Newtons, Kilograms.Mul(Meters).Div(Seconds).Div(Seconds)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := Check("add", Meters, Seconds)
	if !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("expected ErrUnitMismatch, got %v", err)
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T", err)
	}
	if mismatch.Op != "add" || !mismatch.A.Equal(Meters) || !mismatch.B.Equal(Seconds) {
		t.Errorf("unexpected mismatch contents: %+v", mismatch)
	}
	if want := `add: unit "m" does not match unit "s"`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDerivedDimensions(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want [7]int8
	}{
		{"volume", Volume, [7]int8{0, 3, 0, 0, 0, 0, 0}},
		{"pascals", Pascals, [7]int8{1, -1, -2, 0, 0, 0, 0}},
		{"watts", Watts, [7]int8{1, 2, -3, 0, 0, 0, 0}},
		{"coulombs", Coulombs, [7]int8{0, 0, 1, 0, 1, 0, 0}},
		{"farads", Farads, [7]int8{-1, -2, 4, 0, 2, 0, 0}},
		{"siemens", Siemens, [7]int8{-1, -2, 3, 0, 2, 0, 0}},
		{"henrys", Henrys, [7]int8{1, 2, -2, 0, -2, 0, 0}},
		{"grays", Grays, [7]int8{0, 2, -2, 0, 0, 0, 0}},
		{"luminance", Luminance, [7]int8{0, -2, 0, 0, 0, 0, 1}},
		{"specific volume", SpecificVolume, [7]int8{-1, 3, 0, 0, 0, 0, 0}},
		{"surface density", SurfaceDensity, [7]int8{1, -2, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Exponents(); got != tt.want {
				t.Errorf("exponents = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKilowattHours(t *testing.T) {
	if got := KilowattHours.ToSI(1); !approx(got, 3.6e6, tolerance) {
		t.Errorf("1 kWh = %v J, want 3.6e6", got)
	}
	if !KilowattHours.Equal(Joules) {
		t.Error("kWh should have energy dimension")
	}
}
