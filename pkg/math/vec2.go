package math

import (
	"fmt"
	"math"
)

// Vec2 is a 2D float64 vector. It mirrors Vector2[float64, Float64Ops]
// without the Field indirection and never returns errors.
type Vec2 struct {
	X, Y float64
}

// Build implements Builder. It requires exactly two components.
func (Vec2) Build(components ...float64) (Vec2, error) {
	if err := checkArity(2, len(components)); err != nil {
		return Vec2{}, err
	}
	return Vec2{components[0], components[1]}, nil
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v / s.
func (v Vec2) Div(s float64) Vec2 {
	return v.Scale(1 / s)
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// MagnitudeSquared returns v·v.
func (v Vec2) MagnitudeSquared() float64 {
	return v.Dot(v)
}

// Magnitude returns the length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit length. A zero vector yields NaN components.
func (v Vec2) Unit() Vec2 {
	return v.Scale(1 / v.Magnitude())
}

// AngularMagnitude returns the unsigned angle between v and other in radians.
func (v Vec2) AngularMagnitude(other Vec2) float64 {
	return math.Acos(v.Dot(other) / (v.Magnitude() * other.Magnitude()))
}

// Angle returns the signed angle from v to other in radians.
func (v Vec2) Angle(other Vec2) float64 {
	return math.Atan2(other.Y, other.X) - math.Atan2(v.Y, v.X)
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Magnitude()
}

// Lerp interpolates between v (t=0) and other (t=1).
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t)}
}

// ApproxEqual reports whether every component is within eps of other's.
func (v Vec2) ApproxEqual(other Vec2, eps float64) bool {
	return ApproxEqual(v.X, other.X, eps) && ApproxEqual(v.Y, other.Y, eps)
}

func (v Vec2) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}
