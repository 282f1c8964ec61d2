package units

// Base units and their common scaled variants.
var (
	// One is the dimensionless unit.
	One = Unit{}

	Kilograms = base(Mass)
	Grams     = Scaled(Kilograms, 1e-3)
	Pounds    = Scaled(Kilograms, 0.45359237)

	Meters     = base(Length)
	Feet       = Scaled(Meters, 0.3048)
	Kilometers = Scaled(Meters, 1000)
	Miles      = Scaled(Meters, 1609.344)

	Seconds = base(Time)
	Minutes = Scaled(Seconds, 60)
	Hours   = Scaled(Seconds, 3600)

	Kelvin  = base(Temperature)
	Celsius = Derive(Kelvin,
		func(c float64) float64 { return c + 273.15 },
		func(k float64) float64 { return k - 273.15 },
	)
	Fahrenheit = Derive(Celsius,
		func(f float64) float64 { return (f - 32) / 1.8 },
		func(c float64) float64 { return c*1.8 + 32 },
	)

	Amperes  = base(Current)
	Moles    = base(Substance)
	Candelas = base(LuminousIntensity)
)

// Derived units. Package initialization orders these after the base units
// they reference.
var (
	Area           = Meters.Mul(Meters)
	Volume         = Meters.Mul(Meters).Mul(Meters)
	Velocity       = Meters.Div(Seconds)
	Acceleration   = Meters.Div(Seconds).Div(Seconds)
	Wavenumber     = One.Div(Meters)
	Density        = Kilograms.Div(Volume)
	SurfaceDensity = Kilograms.Div(Area)
	SpecificVolume = Volume.Div(Kilograms)
	Luminance      = Candelas.Div(Area)
	Frequency      = One.Div(Seconds)

	Newtons       = Meters.Mul(Kilograms).Div(Seconds).Div(Seconds)
	Pascals       = Newtons.Div(Area)
	Joules        = Newtons.Mul(Meters)
	KilowattHours = Scaled(Joules, 3.6e6)
	Watts         = Joules.Div(Seconds)

	Coulombs = Amperes.Mul(Seconds)
	Volts    = Watts.Div(Amperes)
	Farads   = Coulombs.Div(Volts)
	Ohms     = Volts.Div(Amperes)
	Siemens  = Amperes.Div(Volts)
	Webers   = Volts.Mul(Seconds)
	Teslas   = Webers.Div(Area)
	Henrys   = Webers.Div(Amperes)
	Grays    = Joules.Div(Kilograms)
)
