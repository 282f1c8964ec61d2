package math

import "fmt"

// Vector2 is a 2D vector over any component type with a Field.
type Vector2[T any, F Field[T]] struct {
	X, Y T
}

// Vector3 is a 3D vector over any component type with a Field.
type Vector3[T any, F Field[T]] struct {
	X, Y, Z T
}

// NewVector2 returns the vector (x, y).
func NewVector2[T any, F Field[T]](x, y T) Vector2[T, F] {
	return Vector2[T, F]{X: x, Y: y}
}

// NewVector3 returns the vector (x, y, z).
func NewVector3[T any, F Field[T]](x, y, z T) Vector3[T, F] {
	return Vector3[T, F]{X: x, Y: y, Z: z}
}

// Build implements Builder. It requires exactly two components.
func (Vector2[T, F]) Build(components ...T) (Vector2[T, F], error) {
	if err := checkArity(2, len(components)); err != nil {
		return Vector2[T, F]{}, err
	}
	return Vector2[T, F]{X: components[0], Y: components[1]}, nil
}

// Components returns X, Y in order.
func (v Vector2[T, F]) Components() []T {
	return []T{v.X, v.Y}
}

// Dot returns the dot product.
func (v Vector2[T, F]) Dot(other Vector2[T, F]) (T, error) {
	var f F
	return f.Add(f.Multiply(v.X, other.X), f.Multiply(v.Y, other.Y))
}

// Add returns v + other.
func (v Vector2[T, F]) Add(other Vector2[T, F]) (Vector2[T, F], error) {
	var f F
	x, err := f.Add(v.X, other.X)
	if err != nil {
		return Vector2[T, F]{}, err
	}
	y, err := f.Add(v.Y, other.Y)
	if err != nil {
		return Vector2[T, F]{}, err
	}
	return Vector2[T, F]{X: x, Y: y}, nil
}

// Sub returns v - other.
func (v Vector2[T, F]) Sub(other Vector2[T, F]) (Vector2[T, F], error) {
	var f F
	x, err := f.Subtract(v.X, other.X)
	if err != nil {
		return Vector2[T, F]{}, err
	}
	y, err := f.Subtract(v.Y, other.Y)
	if err != nil {
		return Vector2[T, F]{}, err
	}
	return Vector2[T, F]{X: x, Y: y}, nil
}

// Scale returns v * s.
func (v Vector2[T, F]) Scale(s T) Vector2[T, F] {
	var f F
	return Vector2[T, F]{X: f.Multiply(v.X, s), Y: f.Multiply(v.Y, s)}
}

// Div returns v / s.
func (v Vector2[T, F]) Div(s T) Vector2[T, F] {
	var f F
	return v.Scale(f.Divide(f.One(), s))
}

// Neg returns -v.
func (v Vector2[T, F]) Neg() Vector2[T, F] {
	var f F
	return v.Scale(f.Minus(f.One()))
}

// MagnitudeSquared returns v·v.
func (v Vector2[T, F]) MagnitudeSquared() (T, error) {
	return v.Dot(v)
}

// Magnitude returns the length of v.
func (v Vector2[T, F]) Magnitude() (T, error) {
	var f F
	sq, err := v.Dot(v)
	if err != nil {
		return sq, err
	}
	return f.Sqrt(sq), nil
}

// Unit returns v scaled to unit length. A zero vector yields whatever the
// Field produces for division by zero.
func (v Vector2[T, F]) Unit() (Vector2[T, F], error) {
	var f F
	m, err := v.Magnitude()
	if err != nil {
		return Vector2[T, F]{}, err
	}
	return v.Scale(f.Divide(f.One(), m)), nil
}

// AngularMagnitude returns the unsigned angle between v and other.
func (v Vector2[T, F]) AngularMagnitude(other Vector2[T, F]) (T, error) {
	return angularMagnitude[T, F](v, other)
}

// Angle returns the signed angle from v to other.
func (v Vector2[T, F]) Angle(other Vector2[T, F]) (T, error) {
	var f F
	to, err := f.Atan2(other.Y, other.X)
	if err != nil {
		return to, err
	}
	from, err := f.Atan2(v.Y, v.X)
	if err != nil {
		return from, err
	}
	return f.Subtract(to, from)
}

func (v Vector2[T, F]) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}

// Build implements Builder. It requires exactly three components.
func (Vector3[T, F]) Build(components ...T) (Vector3[T, F], error) {
	if err := checkArity(3, len(components)); err != nil {
		return Vector3[T, F]{}, err
	}
	return Vector3[T, F]{X: components[0], Y: components[1], Z: components[2]}, nil
}

// Components returns X, Y, Z in order.
func (v Vector3[T, F]) Components() []T {
	return []T{v.X, v.Y, v.Z}
}

// Dot returns the dot product.
func (v Vector3[T, F]) Dot(other Vector3[T, F]) (T, error) {
	var f F
	xy, err := f.Add(f.Multiply(v.X, other.X), f.Multiply(v.Y, other.Y))
	if err != nil {
		return xy, err
	}
	return f.Add(xy, f.Multiply(v.Z, other.Z))
}

// Add returns v + other.
func (v Vector3[T, F]) Add(other Vector3[T, F]) (Vector3[T, F], error) {
	var f F
	x, err := f.Add(v.X, other.X)
	if err != nil {
		return Vector3[T, F]{}, err
	}
	y, err := f.Add(v.Y, other.Y)
	if err != nil {
		return Vector3[T, F]{}, err
	}
	z, err := f.Add(v.Z, other.Z)
	if err != nil {
		return Vector3[T, F]{}, err
	}
	return Vector3[T, F]{X: x, Y: y, Z: z}, nil
}

// Sub returns v - other.
func (v Vector3[T, F]) Sub(other Vector3[T, F]) (Vector3[T, F], error) {
	var f F
	x, err := f.Subtract(v.X, other.X)
	if err != nil {
		return Vector3[T, F]{}, err
	}
	y, err := f.Subtract(v.Y, other.Y)
	if err != nil {
		return Vector3[T, F]{}, err
	}
	z, err := f.Subtract(v.Z, other.Z)
	if err != nil {
		return Vector3[T, F]{}, err
	}
	return Vector3[T, F]{X: x, Y: y, Z: z}, nil
}

// Scale returns v * s.
func (v Vector3[T, F]) Scale(s T) Vector3[T, F] {
	var f F
	return Vector3[T, F]{X: f.Multiply(v.X, s), Y: f.Multiply(v.Y, s), Z: f.Multiply(v.Z, s)}
}

// Div returns v / s.
func (v Vector3[T, F]) Div(s T) Vector3[T, F] {
	var f F
	return v.Scale(f.Divide(f.One(), s))
}

// Neg returns -v.
func (v Vector3[T, F]) Neg() Vector3[T, F] {
	var f F
	return v.Scale(f.Minus(f.One()))
}

// Cross returns the cross product v × other.
func (v Vector3[T, F]) Cross(other Vector3[T, F]) (Vector3[T, F], error) {
	var f F
	x, err := f.Subtract(f.Multiply(v.Y, other.Z), f.Multiply(v.Z, other.Y))
	if err != nil {
		return Vector3[T, F]{}, err
	}
	y, err := f.Subtract(f.Multiply(v.Z, other.X), f.Multiply(v.X, other.Z))
	if err != nil {
		return Vector3[T, F]{}, err
	}
	z, err := f.Subtract(f.Multiply(v.X, other.Y), f.Multiply(v.Y, other.X))
	if err != nil {
		return Vector3[T, F]{}, err
	}
	return Vector3[T, F]{X: x, Y: y, Z: z}, nil
}

// MagnitudeSquared returns v·v.
func (v Vector3[T, F]) MagnitudeSquared() (T, error) {
	return v.Dot(v)
}

// Magnitude returns the length of v.
func (v Vector3[T, F]) Magnitude() (T, error) {
	var f F
	sq, err := v.Dot(v)
	if err != nil {
		return sq, err
	}
	return f.Sqrt(sq), nil
}

// Unit returns v scaled to unit length. A zero vector yields whatever the
// Field produces for division by zero.
func (v Vector3[T, F]) Unit() (Vector3[T, F], error) {
	var f F
	m, err := v.Magnitude()
	if err != nil {
		return Vector3[T, F]{}, err
	}
	return v.Scale(f.Divide(f.One(), m)), nil
}

// AngularMagnitude returns the unsigned angle between v and other.
func (v Vector3[T, F]) AngularMagnitude(other Vector3[T, F]) (T, error) {
	return angularMagnitude[T, F](v, other)
}

// Angle returns the angle from v to other, positive when normal·(v×other)
// is positive and negative otherwise.
func (v Vector3[T, F]) Angle(other, normal Vector3[T, F]) (T, error) {
	var f F
	cross, err := v.Cross(other)
	if err != nil {
		return f.Zero(), err
	}
	side, err := normal.Dot(cross)
	if err != nil {
		return side, err
	}
	m, err := v.AngularMagnitude(other)
	if err != nil {
		return m, err
	}
	if f.Sign(side) > 0 {
		return m, nil
	}
	return f.Minus(m), nil
}

func (v Vector3[T, F]) String() string {
	return fmt.Sprintf("<%v, %v, %v>", v.X, v.Y, v.Z)
}

// vector is the part of Vector2 and Vector3 that angularMagnitude needs.
type vector[T any, V any] interface {
	Dot(V) (T, error)
	Magnitude() (T, error)
}

// angularMagnitude returns acos(a·b / (|a|·|b|)).
func angularMagnitude[T any, F Field[T], V vector[T, V]](a, b V) (T, error) {
	var f F
	dot, err := a.Dot(b)
	if err != nil {
		return dot, err
	}
	ma, err := a.Magnitude()
	if err != nil {
		return ma, err
	}
	mb, err := b.Magnitude()
	if err != nil {
		return mb, err
	}
	return f.Acos(f.Divide(dot, f.Multiply(ma, mb))), nil
}
