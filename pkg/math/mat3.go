package math

import "fmt"

// Mat3 is a 3x3 matrix in row-major order:
//
//	[m0 m1 m2]
//	[m3 m4 m5]
//	[m6 m7 m8]
type Mat3 [9]float64

// Identity3 returns an identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromRows builds a matrix from a row-major slice of exactly nine values.
func Mat3FromRows(values []float64) (Mat3, error) {
	if err := checkArity(9, len(values)); err != nil {
		return Mat3{}, err
	}
	var m Mat3
	copy(m[:], values)
	return m, nil
}

func checkIndex(row, col int) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic(fmt.Sprintf("math: Mat3 index (%d, %d) out of range", row, col))
	}
}

// At returns the element at row, col. It panics if either is outside [0, 2].
func (m Mat3) At(row, col int) float64 {
	checkIndex(row, col)
	return m[row*3+col]
}

// With returns a copy of m with the element at row, col set to v.
func (m Mat3) With(row, col int, v float64) Mat3 {
	checkIndex(row, col)
	m[row*3+col] = v
	return m
}

// Mul multiplies this matrix by another (m * other).
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			result[row*3+col] =
				m[row*3+0]*other[0*3+col] +
					m[row*3+1]*other[1*3+col] +
					m[row*3+2]*other[2*3+col]
		}
	}
	return result
}

// MulVec3 transforms v by this matrix.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// ScaleBy multiplies every element by s.
func (m Mat3) ScaleBy(s float64) Mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Cofactor returns the signed minor for row, col.
func (m Mat3) Cofactor(row, col int) float64 {
	checkIndex(row, col)
	r1, r2 := (row+1)%3, (row+2)%3
	c1, c2 := (col+1)%3, (col+2)%3
	// Cyclic index order already carries the checkerboard sign.
	return m[r1*3+c1]*m[r2*3+c2] - m[r1*3+c2]*m[r2*3+c1]
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Mat3) Adjugate() Mat3 {
	var adj Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			adj[col*3+row] = m.Cofactor(row, col)
		}
	}
	return adj
}

// Determinant returns the determinant by the rule of Sarrus.
func (m Mat3) Determinant() float64 {
	return m[0]*m[4]*m[8] +
		m[1]*m[5]*m[6] +
		m[2]*m[3]*m[7] -
		m[2]*m[4]*m[6] -
		m[1]*m[3]*m[8] -
		m[0]*m[5]*m[7]
}

// Inverse returns the inverse of the matrix. A singular matrix yields
// infinite or NaN elements.
func (m Mat3) Inverse() Mat3 {
	return m.Adjugate().ScaleBy(1 / m.Determinant())
}
