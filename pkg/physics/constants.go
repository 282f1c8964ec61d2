package physics

import "github.com/Faultbox/quantity/pkg/units"

// G is the gravitational constant.
var G = New(6.67408e-11, units.Volume.Div(units.Kilograms.Mul(units.Seconds).Mul(units.Seconds)))

// Earth.
var (
	EarthMass           = New(5.9722e24, units.Kilograms)
	EarthRadius         = New(6.378137e6, units.Meters)
	EarthSurfaceGravity = New(9.80, units.Acceleration)
)

// Moon.
var (
	MoonMass           = New(7.34767309e22, units.Kilograms)
	MoonRadius         = New(1.7381e6, units.Meters)
	MoonSurfaceGravity = New(1.62, units.Acceleration)
	EarthMoonDistance  = New(3.844e8, units.Meters)
)
