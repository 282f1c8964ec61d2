package math

import (
	"fmt"
	"math"
)

// Vec3 is a 3D float64 vector. It mirrors Vector3[float64, Float64Ops]
// without the Field indirection and never returns errors.
type Vec3 struct {
	X, Y, Z float64
}

// Build implements Builder. It requires exactly three components.
func (Vec3) Build(components ...float64) (Vec3, error) {
	if err := checkArity(3, len(components)); err != nil {
		return Vec3{}, err
	}
	return Vec3{components[0], components[1], components[2]}, nil
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s.
func (v Vec3) Div(s float64) Vec3 {
	return v.Scale(1 / s)
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// MagnitudeSquared returns v·v.
func (v Vec3) MagnitudeSquared() float64 {
	return v.Dot(v)
}

// Magnitude returns the length of v.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit length. A zero vector yields NaN components.
func (v Vec3) Unit() Vec3 {
	return v.Scale(1 / v.Magnitude())
}

// AngularMagnitude returns the unsigned angle between v and other in radians.
func (v Vec3) AngularMagnitude(other Vec3) float64 {
	return math.Acos(v.Dot(other) / (v.Magnitude() * other.Magnitude()))
}

// Angle returns the angle from v to other in radians, signed by which side
// of normal the rotation falls on.
func (v Vec3) Angle(other, normal Vec3) float64 {
	if normal.Dot(v.Cross(other)) > 0 {
		return v.AngularMagnitude(other)
	}
	return -v.AngularMagnitude(other)
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Magnitude()
}

// Lerp interpolates between v (t=0) and other (t=1).
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return Vec3{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t), Lerp(v.Z, other.Z, t)}
}

// XY returns the XY components as Vec2.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// ApproxEqual reports whether every component is within eps of other's.
func (v Vec3) ApproxEqual(other Vec3, eps float64) bool {
	return ApproxEqual(v.X, other.X, eps) &&
		ApproxEqual(v.Y, other.Y, eps) &&
		ApproxEqual(v.Z, other.Z, eps)
}

func (v Vec3) String() string {
	return fmt.Sprintf("<%v, %v, %v>", v.X, v.Y, v.Z)
}
