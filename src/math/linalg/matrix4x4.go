package linalg

import (
	"strings"

	"geomq/src/math/scalar"
)

// Matrix4x4 is a row-major 4x4 matrix. Vectors are columns, so the
// translation of an affine matrix lives in column 3.
type Matrix4x4[T scalar.Float] struct {
	Ij [4][4]T
}

func NewMatrix4x4[T scalar.Float](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) Matrix4x4[T] {
	return Matrix4x4[T]{Ij: [4][4]T{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
		{m30, m31, m32, m33},
	}}
}

func Matrix4x4Fill[T scalar.Float](v T) Matrix4x4[T] {
	return NewMatrix4x4(v, v, v, v, v, v, v, v, v, v, v, v, v, v, v, v)
}

// Matrix4x4FromSlice reads 16 values in row-major order.
func Matrix4x4FromSlice[T scalar.Float](s []T) Matrix4x4[T] {
	scalar.Assert(len(s) >= 16, "Matrix4x4FromSlice", "need 16 values")
	var m Matrix4x4[T]
	for r := 0; r < 4; r++ {
		copy(m.Ij[r][:], s[r*4:r*4+4])
	}
	return m
}

// Matrix4x4FromRows builds a matrix whose rows are r0..r3.
func Matrix4x4FromRows[T scalar.Float](r0, r1, r2, r3 Vector4[T]) Matrix4x4[T] {
	return NewMatrix4x4(
		r0.X, r0.Y, r0.Z, r0.W,
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
	)
}

// Matrix4x4FromMatrix3x3 embeds m in the upper-left block of an identity.
func Matrix4x4FromMatrix3x3[T scalar.Float](m Matrix3x3[T]) Matrix4x4[T] {
	a := m.Ij
	return NewMatrix4x4(
		a[0][0], a[0][1], a[0][2], 0,
		a[1][0], a[1][1], a[1][2], 0,
		a[2][0], a[2][1], a[2][2], 0,
		0, 0, 0, 1,
	)
}

func ZeroMatrix4x4[T scalar.Float]() Matrix4x4[T] {
	return Matrix4x4[T]{}
}

func Identity4x4[T scalar.Float]() Matrix4x4[T] {
	return NewMatrix4x4[T](
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

func (m Matrix4x4[T]) Scale(s T) Matrix4x4[T] {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Ij[r][c] *= s
		}
	}
	return m
}

// Div divides every element by s. s must not be zero.
func (m Matrix4x4[T]) Div(s T) Matrix4x4[T] {
	scalar.Assert(scalar.IsNotZero(s), "Matrix4x4.Div", "division by zero")
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Ij[r][c] /= s
		}
	}
	return m
}

func (m Matrix4x4[T]) Add(o Matrix4x4[T]) Matrix4x4[T] {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Ij[r][c] += o.Ij[r][c]
		}
	}
	return m
}

func (m Matrix4x4[T]) Sub(o Matrix4x4[T]) Matrix4x4[T] {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Ij[r][c] -= o.Ij[r][c]
		}
	}
	return m
}

// Mul returns m·o, so o is applied first when transforming vectors.
func (m Matrix4x4[T]) Mul(o Matrix4x4[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Ij[r][c] = m.Ij[r][0]*o.Ij[0][c] + m.Ij[r][1]*o.Ij[1][c] +
				m.Ij[r][2]*o.Ij[2][c] + m.Ij[r][3]*o.Ij[3][c]
		}
	}
	return out
}

func (m Matrix4x4[T]) Transpose() Matrix4x4[T] {
	var out Matrix4x4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.Ij[c][r] = m.Ij[r][c]
		}
	}
	return out
}

// Determinant expands along the first row. The twelve products A..L of
// rows 1 and 2 are shared by the four cofactors; the operand order is part
// of the numeric contract.
func (m Matrix4x4[T]) Determinant() T {
	a := &m.Ij

	A := a[1][1] * a[2][2]
	B := a[1][2] * a[2][3]
	C := a[1][3] * a[2][1]
	D := a[1][3] * a[2][2]
	E := a[1][1] * a[2][3]
	F := a[1][2] * a[2][1]
	G := a[1][0] * a[2][2]
	H := a[1][3] * a[2][0]
	I := a[1][0] * a[2][3]
	J := a[1][2] * a[2][0]
	K := a[1][0] * a[2][1]
	L := a[1][1] * a[2][0]

	return a[0][0]*(A*a[3][3]+B*a[3][1]+C*a[3][2]-D*a[3][1]-E*a[3][2]-F*a[3][3]) -
		a[0][1]*(G*a[3][3]+B*a[3][0]+H*a[3][2]-D*a[3][0]-I*a[3][2]-J*a[3][3]) +
		a[0][2]*(K*a[3][3]+E*a[3][0]+H*a[3][1]-C*a[3][0]-I*a[3][1]-L*a[3][3]) -
		a[0][3]*(K*a[3][2]+A*a[3][0]+J*a[3][1]-F*a[3][0]-G*a[3][1]-L*a[3][2])
}

// Invert returns the inverse of m, or ErrMatrixNotInvertible when the
// determinant is zero under the tolerance.
func (m Matrix4x4[T]) Invert() (Matrix4x4[T], error) {
	det := m.Determinant()
	if scalar.IsZero(det) {
		return Matrix4x4[T]{}, notInvertible("Matrix4x4", det)
	}
	a := &m.Ij

	// 2x2 minors of the top two rows (s) and the bottom two rows (c).
	s0 := a[0][0]*a[1][1] - a[1][0]*a[0][1]
	s1 := a[0][0]*a[1][2] - a[1][0]*a[0][2]
	s2 := a[0][0]*a[1][3] - a[1][0]*a[0][3]
	s3 := a[0][1]*a[1][2] - a[1][1]*a[0][2]
	s4 := a[0][1]*a[1][3] - a[1][1]*a[0][3]
	s5 := a[0][2]*a[1][3] - a[1][2]*a[0][3]

	c5 := a[2][2]*a[3][3] - a[3][2]*a[2][3]
	c4 := a[2][1]*a[3][3] - a[3][1]*a[2][3]
	c3 := a[2][1]*a[3][2] - a[3][1]*a[2][2]
	c2 := a[2][0]*a[3][3] - a[3][0]*a[2][3]
	c1 := a[2][0]*a[3][2] - a[3][0]*a[2][2]
	c0 := a[2][0]*a[3][1] - a[3][0]*a[2][1]

	inv := 1 / det
	return NewMatrix4x4(
		(a[1][1]*c5-a[1][2]*c4+a[1][3]*c3)*inv,
		(-a[0][1]*c5+a[0][2]*c4-a[0][3]*c3)*inv,
		(a[3][1]*s5-a[3][2]*s4+a[3][3]*s3)*inv,
		(-a[2][1]*s5+a[2][2]*s4-a[2][3]*s3)*inv,

		(-a[1][0]*c5+a[1][2]*c2-a[1][3]*c1)*inv,
		(a[0][0]*c5-a[0][2]*c2+a[0][3]*c1)*inv,
		(-a[3][0]*s5+a[3][2]*s2-a[3][3]*s1)*inv,
		(a[2][0]*s5-a[2][2]*s2+a[2][3]*s1)*inv,

		(a[1][0]*c4-a[1][1]*c2+a[1][3]*c0)*inv,
		(-a[0][0]*c4+a[0][1]*c2-a[0][3]*c0)*inv,
		(a[3][0]*s4-a[3][1]*s2+a[3][3]*s0)*inv,
		(-a[2][0]*s4+a[2][1]*s2-a[2][3]*s0)*inv,

		(-a[1][0]*c3+a[1][1]*c1-a[1][2]*c0)*inv,
		(a[0][0]*c3-a[0][1]*c1+a[0][2]*c0)*inv,
		(-a[3][0]*s3+a[3][1]*s1-a[3][2]*s0)*inv,
		(a[2][0]*s3-a[2][1]*s1+a[2][2]*s0)*inv,
	), nil
}

// TransformPoint treats v as a point (w=1) and drops the resulting w.
func (m Matrix4x4[T]) TransformPoint(v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: m.Ij[0][0]*v.X + m.Ij[0][1]*v.Y + m.Ij[0][2]*v.Z + m.Ij[0][3],
		Y: m.Ij[1][0]*v.X + m.Ij[1][1]*v.Y + m.Ij[1][2]*v.Z + m.Ij[1][3],
		Z: m.Ij[2][0]*v.X + m.Ij[2][1]*v.Y + m.Ij[2][2]*v.Z + m.Ij[2][3],
	}
}

// TransformDirection uses the upper-left 3x3 block only.
func (m Matrix4x4[T]) TransformDirection(v Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: m.Ij[0][0]*v.X + m.Ij[0][1]*v.Y + m.Ij[0][2]*v.Z,
		Y: m.Ij[1][0]*v.X + m.Ij[1][1]*v.Y + m.Ij[1][2]*v.Z,
		Z: m.Ij[2][0]*v.X + m.Ij[2][1]*v.Y + m.Ij[2][2]*v.Z,
	}
}

func (m Matrix4x4[T]) TransformVector4(v Vector4[T]) Vector4[T] {
	return Vector4[T]{
		X: m.Ij[0][0]*v.X + m.Ij[0][1]*v.Y + m.Ij[0][2]*v.Z + m.Ij[0][3]*v.W,
		Y: m.Ij[1][0]*v.X + m.Ij[1][1]*v.Y + m.Ij[1][2]*v.Z + m.Ij[1][3]*v.W,
		Z: m.Ij[2][0]*v.X + m.Ij[2][1]*v.Y + m.Ij[2][2]*v.Z + m.Ij[2][3]*v.W,
		W: m.Ij[3][0]*v.X + m.Ij[3][1]*v.Y + m.Ij[3][2]*v.Z + m.Ij[3][3]*v.W,
	}
}

// Matrix3x3 returns the upper-left 3x3 block.
func (m Matrix4x4[T]) Matrix3x3() Matrix3x3[T] {
	a := m.Ij
	return NewMatrix3x3(
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	)
}

func (m Matrix4x4[T]) Row(r int) Vector4[T] {
	return Vector4[T]{X: m.Ij[r][0], Y: m.Ij[r][1], Z: m.Ij[r][2], W: m.Ij[r][3]}
}

func (m Matrix4x4[T]) Column(c int) Vector4[T] {
	return Vector4[T]{X: m.Ij[0][c], Y: m.Ij[1][c], Z: m.Ij[2][c], W: m.Ij[3][c]}
}

func (m Matrix4x4[T]) IsZero() bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !scalar.IsZero(m.Ij[r][c]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix4x4[T]) IsIdentity() bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
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

func (m Matrix4x4[T]) Equal(o Matrix4x4[T]) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !scalar.AreEqual(m.Ij[r][c], o.Ij[r][c]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix4x4[T]) String() string {
	var sb strings.Builder
	sb.WriteString("M4x4(")
	for r := 0; r < 4; r++ {
		sb.WriteByte('(')
		for c := 0; c < 4; c++ {
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
