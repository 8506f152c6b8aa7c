package linalg

import (
	"geomq/src/math/scalar"
)

// ScaleMatrix3x3 is a diagonal Matrix3x3.
type ScaleMatrix3x3[T scalar.Float] struct {
	Matrix3x3[T]
}

func NewScaleMatrix3x3[T scalar.Float](sx, sy, sz T) ScaleMatrix3x3[T] {
	return ScaleMatrix3x3[T]{Matrix3x3: NewMatrix3x3(
		sx, 0, 0,
		0, sy, 0,
		0, 0, sz,
	)}
}

func ScaleMatrix3x3FromVector[T scalar.Float](s Vector3[T]) ScaleMatrix3x3[T] {
	return NewScaleMatrix3x3(s.X, s.Y, s.Z)
}

func IdentityScale3x3[T scalar.Float]() ScaleMatrix3x3[T] {
	return NewScaleMatrix3x3[T](1, 1, 1)
}

// Mul multiplies the diagonals; the result stays a scale matrix.
func (m ScaleMatrix3x3[T]) Mul(o ScaleMatrix3x3[T]) ScaleMatrix3x3[T] {
	return NewScaleMatrix3x3(
		m.Ij[0][0]*o.Ij[0][0],
		m.Ij[1][1]*o.Ij[1][1],
		m.Ij[2][2]*o.Ij[2][2],
	)
}

// Invert fails when any factor is zero under the tolerance.
func (m ScaleMatrix3x3[T]) Invert() (ScaleMatrix3x3[T], error) {
	sx, sy, sz := m.Ij[0][0], m.Ij[1][1], m.Ij[2][2]
	if scalar.IsZero(sx) || scalar.IsZero(sy) || scalar.IsZero(sz) {
		return ScaleMatrix3x3[T]{}, notInvertible("ScaleMatrix3x3", sx*sy*sz)
	}
	return NewScaleMatrix3x3(1/sx, 1/sy, 1/sz), nil
}

func (m ScaleMatrix3x3[T]) Factors() Vector3[T] {
	return Vector3[T]{X: m.Ij[0][0], Y: m.Ij[1][1], Z: m.Ij[2][2]}
}

func (m ScaleMatrix3x3[T]) Matrix4x4() Matrix4x4[T] {
	return Matrix4x4FromMatrix3x3(m.Matrix3x3)
}
