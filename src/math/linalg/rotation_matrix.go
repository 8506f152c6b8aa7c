package linalg

import (
	"geomq/src/math/scalar"
)

// RotationMatrix3x3 is an orthonormal Matrix3x3.
type RotationMatrix3x3[T scalar.Float] struct {
	Matrix3x3[T]
}

func IdentityRotation3x3[T scalar.Float]() RotationMatrix3x3[T] {
	return RotationMatrix3x3[T]{Matrix3x3: Identity3x3[T]()}
}

// RotationMatrix3x3FromEuler rotates around X first, then Y, then Z:
// R = Rz·Ry·Rx.
func RotationMatrix3x3FromEuler[T scalar.Float](x, y, z scalar.Angle[T]) RotationMatrix3x3[T] {
	sx, cx := scalar.Sin(x.Radians()), scalar.Cos(x.Radians())
	sy, cy := scalar.Sin(y.Radians()), scalar.Cos(y.Radians())
	sz, cz := scalar.Sin(z.Radians()), scalar.Cos(z.Radians())
	return RotationMatrix3x3[T]{Matrix3x3: NewMatrix3x3(
		cz*cy, cz*sy*sx-sz*cx, cz*sy*cx+sz*sx,
		sz*cy, sz*sy*sx+cz*cx, sz*sy*cx-cz*sx,
		-sy, cy*sx, cy*cx,
	)}
}

// RotationMatrix3x3FromAxisAngle rotates by a around axis, which must not be zero.
func RotationMatrix3x3FromAxisAngle[T scalar.Float](axis Vector3[T], a scalar.Angle[T]) RotationMatrix3x3[T] {
	n := axis.Normalize()
	s, c := scalar.Sin(a.Radians()), scalar.Cos(a.Radians())
	t := 1 - c
	return RotationMatrix3x3[T]{Matrix3x3: NewMatrix3x3(
		t*n.X*n.X+c, t*n.X*n.Y-s*n.Z, t*n.X*n.Z+s*n.Y,
		t*n.X*n.Y+s*n.Z, t*n.Y*n.Y+c, t*n.Y*n.Z-s*n.X,
		t*n.X*n.Z-s*n.Y, t*n.Y*n.Z+s*n.X, t*n.Z*n.Z+c,
	)}
}

func RotationMatrix3x3FromQuaternion[T scalar.Float](q Quaternion[T]) RotationMatrix3x3[T] {
	return q.Normalize().ToRotationMatrix()
}

// Mul composes two rotations; o is applied first.
func (r RotationMatrix3x3[T]) Mul(o RotationMatrix3x3[T]) RotationMatrix3x3[T] {
	return RotationMatrix3x3[T]{Matrix3x3: r.Matrix3x3.Mul(o.Matrix3x3)}
}

// Invert is the transpose; a rotation is never singular.
func (r RotationMatrix3x3[T]) Invert() RotationMatrix3x3[T] {
	return RotationMatrix3x3[T]{Matrix3x3: r.Transpose()}
}

func (r RotationMatrix3x3[T]) ToQuaternion() Quaternion[T] {
	return QuaternionFromRotationMatrix(r.Matrix3x3)
}

// Matrix4x4 embeds the rotation in a homogeneous matrix.
func (r RotationMatrix3x3[T]) Matrix4x4() Matrix4x4[T] {
	return Matrix4x4FromMatrix3x3(r.Matrix3x3)
}
