package linalg

import (
	"strings"

	"geomq/src/math/scalar"
)

// Matrix3x3 is a row-major 3x3 matrix. Vectors are columns: M·v.
type Matrix3x3[T scalar.Float] struct {
	Ij [3][3]T
}

func NewMatrix3x3[T scalar.Float](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 T,
) Matrix3x3[T] {
	return Matrix3x3[T]{Ij: [3][3]T{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
	}}
}

// Matrix3x3Fill sets every element to v.
func Matrix3x3Fill[T scalar.Float](v T) Matrix3x3[T] {
	return NewMatrix3x3(v, v, v, v, v, v, v, v, v)
}

// Matrix3x3FromSlice reads 9 values in row-major order.
func Matrix3x3FromSlice[T scalar.Float](s []T) Matrix3x3[T] {
	scalar.Assert(len(s) >= 9, "Matrix3x3FromSlice", "need 9 values")
	return NewMatrix3x3(s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7], s[8])
}

// Matrix3x3FromRows builds a matrix whose rows are r0, r1 and r2.
func Matrix3x3FromRows[T scalar.Float](r0, r1, r2 Vector3[T]) Matrix3x3[T] {
	return NewMatrix3x3(r0.X, r0.Y, r0.Z, r1.X, r1.Y, r1.Z, r2.X, r2.Y, r2.Z)
}

func ZeroMatrix3x3[T scalar.Float]() Matrix3x3[T] {
	return Matrix3x3[T]{}
}

func Identity3x3[T scalar.Float]() Matrix3x3[T] {
	return NewMatrix3x3[T](1, 0, 0, 0, 1, 0, 0, 0, 1)
}

func (m Matrix3x3[T]) Scale(s T) Matrix3x3[T] {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Ij[r][c] *= s
		}
	}
	return m
}

// Div multiplies by the reciprocal of s. s must not be zero.
func (m Matrix3x3[T]) Div(s T) Matrix3x3[T] {
	scalar.Assert(scalar.IsNotZero(s), "Matrix3x3.Div", "division by zero")
	return m.Scale(1 / s)
}

func (m Matrix3x3[T]) Add(o Matrix3x3[T]) Matrix3x3[T] {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Ij[r][c] += o.Ij[r][c]
		}
	}
	return m
}

func (m Matrix3x3[T]) Sub(o Matrix3x3[T]) Matrix3x3[T] {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Ij[r][c] -= o.Ij[r][c]
		}
	}
	return m
}

// Mul returns m·o.
func (m Matrix3x3[T]) Mul(o Matrix3x3[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Ij[r][c] = m.Ij[r][0]*o.Ij[0][c] + m.Ij[r][1]*o.Ij[1][c] + m.Ij[r][2]*o.Ij[2][c]
		}
	}
	return out
}

func (m Matrix3x3[T]) Transpose() Matrix3x3[T] {
	return NewMatrix3x3(
		m.Ij[0][0], m.Ij[1][0], m.Ij[2][0],
		m.Ij[0][1], m.Ij[1][1], m.Ij[2][1],
		m.Ij[0][2], m.Ij[1][2], m.Ij[2][2],
	)
}

func (m Matrix3x3[T]) Determinant() T {
	return m.Ij[0][0]*m.Ij[1][1]*m.Ij[2][2] +
		m.Ij[0][1]*m.Ij[1][2]*m.Ij[2][0] +
		m.Ij[0][2]*m.Ij[1][0]*m.Ij[2][1] -
		m.Ij[0][2]*m.Ij[1][1]*m.Ij[2][0] -
		m.Ij[0][0]*m.Ij[1][2]*m.Ij[2][1] -
		m.Ij[0][1]*m.Ij[1][0]*m.Ij[2][2]
}

// Invert returns the inverse of m, or ErrMatrixNotInvertible when the
// determinant is zero under the tolerance.
func (m Matrix3x3[T]) Invert() (Matrix3x3[T], error) {
	det := m.Determinant()
	if scalar.IsZero(det) {
		return Matrix3x3[T]{}, notInvertible("Matrix3x3", det)
	}
	inv := 1 / det
	a := m.Ij
	return NewMatrix3x3(
		inv*(a[1][1]*a[2][2]-a[1][2]*a[2][1]),
		-inv*(a[0][1]*a[2][2]-a[0][2]*a[2][1]),
		inv*(a[0][1]*a[1][2]-a[0][2]*a[1][1]),
		-inv*(a[1][0]*a[2][2]-a[1][2]*a[2][0]),
		inv*(a[0][0]*a[2][2]-a[0][2]*a[2][0]),
		-inv*(a[0][0]*a[1][2]-a[0][2]*a[1][0]),
		inv*(a[1][0]*a[2][1]-a[1][1]*a[2][0]),
		-inv*(a[0][0]*a[2][1]-a[0][1]*a[2][0]),
		inv*(a[0][0]*a[1][1]-a[0][1]*a[1][0]),
	), nil
}

// TransformPoint returns m·v.
func (m Matrix3x3[T]) TransformPoint(v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: m.Ij[0][0]*v.X + m.Ij[0][1]*v.Y + m.Ij[0][2]*v.Z,
		Y: m.Ij[1][0]*v.X + m.Ij[1][1]*v.Y + m.Ij[1][2]*v.Z,
		Z: m.Ij[2][0]*v.X + m.Ij[2][1]*v.Y + m.Ij[2][2]*v.Z,
	}
}

// TransformDirection is TransformPoint: a 3x3 matrix carries no translation.
func (m Matrix3x3[T]) TransformDirection(v Vector3[T]) Vector3[T] {
	return m.TransformPoint(v)
}

func (m Matrix3x3[T]) Row(r int) Vector3[T] {
	return Vector3[T]{X: m.Ij[r][0], Y: m.Ij[r][1], Z: m.Ij[r][2]}
}

func (m Matrix3x3[T]) Column(c int) Vector3[T] {
	return Vector3[T]{X: m.Ij[0][c], Y: m.Ij[1][c], Z: m.Ij[2][c]}
}

func (m Matrix3x3[T]) IsZero() bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !scalar.IsZero(m.Ij[r][c]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix3x3[T]) IsIdentity() bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var want T
			if r == c {
				want = 1
			}
			if !scalar.AreEqual(m.Ij[r][c], want) {
				return false
			}
		}
	}
	return true
}

func (m Matrix3x3[T]) Equal(o Matrix3x3[T]) bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !scalar.AreEqual(m.Ij[r][c], o.Ij[r][c]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix3x3[T]) String() string {
	var sb strings.Builder
	sb.WriteString("M3x3(")
	for r := 0; r < 3; r++ {
		sb.WriteByte('(')
		for c := 0; c < 3; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(scalar.Format(m.Ij[r][c]))
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}
