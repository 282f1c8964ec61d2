// Package units provides SI dimension vectors with composable conversions.
package units

import "strings"

// Dimension is one of the seven SI base dimensions.
type Dimension int

const (
	Mass Dimension = iota
	Length
	Time
	Temperature
	Current
	Substance
	LuminousIntensity

	numDimensions
)

// Conversion maps a value from one scale to another.
type Conversion func(float64) float64

// Unit is an SI dimension signature paired with conversions to and from
// the SI base scale. The zero Unit is dimensionless with identity
// conversions.
type Unit struct {
	exps   [numDimensions]int8
	toSI   Conversion
	fromSI Conversion
}

// FromExponents returns the core unit with the given exponents, ordered
// mass, length, time, temperature, current, substance, luminous intensity.
func FromExponents(exps [7]int8) Unit {
	return Unit{exps: exps}
}

func base(d Dimension) Unit {
	var u Unit
	u.exps[d] = 1
	return u
}

// Derive returns a unit with the dimensions of from, converting values
// through toFrom into from's scale before applying from's own conversion.
// Affine units compose this way: Fahrenheit derives from Celsius, which
// derives from Kelvin.
func Derive(from Unit, toFrom, fromFrom Conversion) Unit {
	return Unit{
		exps: from.exps,
		toSI: func(x float64) float64 {
			return from.ToSI(toFrom(x))
		},
		fromSI: func(x float64) float64 {
			return fromFrom(from.FromSI(x))
		},
	}
}

// Scaled returns a unit worth factor of from.
func Scaled(from Unit, factor float64) Unit {
	return Derive(from,
		func(x float64) float64 { return x * factor },
		func(x float64) float64 { return x / factor },
	)
}

func linear(exps [numDimensions]int8, factor float64) Unit {
	if factor == 1 {
		return Unit{exps: exps}
	}
	return Unit{
		exps:   exps,
		toSI:   func(x float64) float64 { return x * factor },
		fromSI: func(x float64) float64 { return x / factor },
	}
}

// ToSI converts x from this unit into the SI base scale.
func (u Unit) ToSI(x float64) float64 {
	if u.toSI == nil {
		return x
	}
	return u.toSI(x)
}

// FromSI converts x from the SI base scale into this unit.
func (u Unit) FromSI(x float64) float64 {
	if u.fromSI == nil {
		return x
	}
	return u.fromSI(x)
}

// Core returns the unit with the same exponents and identity conversion.
func (u Unit) Core() Unit {
	return Unit{exps: u.exps}
}

// Exponent returns the exponent of dimension d.
func (u Unit) Exponent(d Dimension) int {
	return int(u.exps[d])
}

// Exponents returns a copy of all seven exponents.
func (u Unit) Exponents() [7]int8 {
	return u.exps
}

// IsDimensionless reports whether every exponent is zero.
func (u Unit) IsDimensionless() bool {
	return u.exps == [numDimensions]int8{}
}

// Mul returns u·other. The composed conversion scales by the product of
// both units' SI factors, so it is only meaningful for linear units.
func (u Unit) Mul(other Unit) Unit {
	var next [numDimensions]int8
	for i := range next {
		next[i] = u.exps[i] + other.exps[i]
	}
	return linear(next, u.ToSI(1)*other.ToSI(1))
}

// Div returns u/other. The composed conversion scales by the ratio of
// both units' SI factors.
func (u Unit) Div(other Unit) Unit {
	var next [numDimensions]int8
	for i := range next {
		next[i] = u.exps[i] - other.exps[i]
	}
	return linear(next, u.ToSI(1)/other.ToSI(1))
}

// Inverse returns the reciprocal dimension with identity conversion.
func (u Unit) Inverse() Unit {
	var next [numDimensions]int8
	for i := range next {
		next[i] = -u.exps[i]
	}
	return Unit{exps: next}
}

// Equal compares exponents only; conversions are ignored.
func (u Unit) Equal(other Unit) bool {
	return u.exps == other.exps
}

// NotEqual is the negation of Equal.
func (u Unit) NotEqual(other Unit) bool {
	return u.exps != other.exps
}

var symbols = [numDimensions]string{"kg", "m", "s", "K", "A", "mol", "cd"}

var superscripts = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// String renders positive exponents as the numerator and negative ones as
// the denominator, e.g. "kg·m/s²". Dimensionless units render empty.
func (u Unit) String() string {
	var num, den []string
	for i, e := range u.exps {
		switch {
		case e > 0:
			num = append(num, symbols[i]+superscript(int(e)))
		case e < 0:
			den = append(den, symbols[i]+superscript(-int(e)))
		}
	}

	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, "·")
	case len(num) == 0:
		return "1/" + strings.Join(den, "·")
	default:
		return strings.Join(num, "·") + "/" + strings.Join(den, "·")
	}
}

// superscript renders n > 1 as superscript digits; 1 renders empty.
func superscript(n int) string {
	if n == 1 {
		return ""
	}
	var digits []rune
	for ; n > 0; n /= 10 {
		digits = append([]rune{superscripts[n%10]}, digits...)
	}
	return string(digits)
}
