package linalg

import (
	"geomq/src/math/scalar"
)

// Quaternion is X·i + Y·j + Z·k + W. Unit quaternions represent rotations.
type Quaternion[T scalar.Float] struct {
	X, Y, Z, W T
}

func NewQuaternion[T scalar.Float](x, y, z, w T) Quaternion[T] {
	return Quaternion[T]{X: x, Y: y, Z: z, W: w}
}

func IdentityQuaternion[T scalar.Float]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// QuaternionFromAxisAngle rotates by a around axis. The axis must not be zero.
func QuaternionFromAxisAngle[T scalar.Float](axis Vector3[T], a scalar.Angle[T]) Quaternion[T] {
	n := axis.Normalize()
	half := a.Radians() / 2
	s := scalar.Sin(half)
	return Quaternion[T]{X: n.X * s, Y: n.Y * s, Z: n.Z * s, W: scalar.Cos(half)}
}

// QuaternionFromEuler rotates around X first, then Y, then Z.
func QuaternionFromEuler[T scalar.Float](x, y, z scalar.Angle[T]) Quaternion[T] {
	qx := QuaternionFromAxisAngle(UnitVector3X[T](), x)
	qy := QuaternionFromAxisAngle(UnitVector3Y[T](), y)
	qz := QuaternionFromAxisAngle(UnitVector3Z[T](), z)
	return qz.Mul(qy).Mul(qx)
}

// QuaternionFromRotationMatrix extracts the rotation of an orthonormal matrix.
func QuaternionFromRotationMatrix[T scalar.Float](m Matrix3x3[T]) Quaternion[T] {
	a := m.Ij
	trace := a[0][0] + a[1][1] + a[2][2]
	switch {
	case trace > 0:
		s := scalar.Sqrt(trace+1) * 2
		return Quaternion[T]{
			X: (a[2][1] - a[1][2]) / s,
			Y: (a[0][2] - a[2][0]) / s,
			Z: (a[1][0] - a[0][1]) / s,
			W: s / 4,
		}
	case a[0][0] > a[1][1] && a[0][0] > a[2][2]:
		s := scalar.Sqrt(1+a[0][0]-a[1][1]-a[2][2]) * 2
		return Quaternion[T]{
			X: s / 4,
			Y: (a[0][1] + a[1][0]) / s,
			Z: (a[0][2] + a[2][0]) / s,
			W: (a[2][1] - a[1][2]) / s,
		}
	case a[1][1] > a[2][2]:
		s := scalar.Sqrt(1+a[1][1]-a[0][0]-a[2][2]) * 2
		return Quaternion[T]{
			X: (a[0][1] + a[1][0]) / s,
			Y: s / 4,
			Z: (a[1][2] + a[2][1]) / s,
			W: (a[0][2] - a[2][0]) / s,
		}
	default:
		s := scalar.Sqrt(1+a[2][2]-a[0][0]-a[1][1]) * 2
		return Quaternion[T]{
			X: (a[0][2] + a[2][0]) / s,
			Y: (a[1][2] + a[2][1]) / s,
			Z: s / 4,
			W: (a[1][0] - a[0][1]) / s,
		}
	}
}

func (q Quaternion[T]) Add(p Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{X: q.X + p.X, Y: q.Y + p.Y, Z: q.Z + p.Z, W: q.W + p.W}
}

func (q Quaternion[T]) Sub(p Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{X: q.X - p.X, Y: q.Y - p.Y, Z: q.Z - p.Z, W: q.W - p.W}
}

func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}

// Mul is the Hamilton product q·p; as a rotation, p is applied first.
func (q Quaternion[T]) Mul(p Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
	}
}

func (q Quaternion[T]) Dot(p Quaternion[T]) T {
	return q.X*p.X + q.Y*p.Y + q.Z*p.Z + q.W*p.W
}

func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

func (q Quaternion[T]) Length() T {
	return scalar.Sqrt(q.Dot(q))
}

func (q Quaternion[T]) SquaredLength() T {
	return q.Dot(q)
}

// Normalize panics on a zero quaternion.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	l := q.Length()
	scalar.Assert(scalar.IsNotZero(l), "Quaternion.Normalize", "zero-length quaternion")
	return q.Scale(1 / l)
}

// Invert returns the multiplicative inverse. q must not be zero.
func (q Quaternion[T]) Invert() Quaternion[T] {
	sq := q.SquaredLength()
	scalar.Assert(scalar.IsNotZero(sq), "Quaternion.Invert", "zero-length quaternion")
	return q.Conjugate().Scale(1 / sq)
}

// Lerp blends like the vector types, q*t + p*(1-t), and renormalizes.
func (q Quaternion[T]) Lerp(t T, p Quaternion[T]) Quaternion[T] {
	return q.Scale(t).Add(p.Scale(1 - t)).Normalize()
}

// Slerp interpolates on the unit sphere with the same weighting as Lerp:
// t=1 yields q and t=0 yields p. Inputs are expected to be unit length.
func (q Quaternion[T]) Slerp(t T, p Quaternion[T]) Quaternion[T] {
	cos := q.Dot(p)
	if cos < 0 {
		p = p.Scale(-1)
		cos = -cos
	}
	if scalar.IsGreaterOrEquals(cos, 1) {
		return q.Lerp(t, p)
	}
	theta := scalar.Acos(cos)
	sin := scalar.Sin(theta)
	wq := scalar.Sin(t*theta) / sin
	wp := scalar.Sin((1-t)*theta) / sin
	return q.Scale(wq).Add(p.Scale(wp))
}

// Vector returns the imaginary part.
func (q Quaternion[T]) Vector() Vector3[T] {
	return Vector3[T]{X: q.X, Y: q.Y, Z: q.Z}
}

// ToAxisAngle returns the rotation axis and angle of a unit quaternion. The
// identity reports the X axis and a zero angle.
func (q Quaternion[T]) ToAxisAngle() (Vector3[T], scalar.Angle[T]) {
	w := scalar.Clamp(q.W, -1, 1)
	s := scalar.Sqrt(1 - w*w)
	if scalar.IsZero(s) {
		return UnitVector3X[T](), scalar.Radians[T](0)
	}
	return q.Vector().Scale(1 / s), scalar.Radians(2 * scalar.Acos(w))
}

// TransformPoint rotates v by q·v·q⁻¹. q needs not be unit length, only non-zero.
func (q Quaternion[T]) TransformPoint(v Vector3[T]) Vector3[T] {
	sq := q.SquaredLength()
	scalar.Assert(scalar.IsNotZero(sq), "Quaternion.TransformPoint", "zero-length quaternion")
	u := q.Vector()
	out := v.Scale(q.W*q.W - u.Dot(u)).
		Add(u.Scale(2 * u.Dot(v))).
		Add(u.Cross(v).Scale(2 * q.W))
	return out.Scale(1 / sq)
}

// TransformDirection is TransformPoint: rotations carry no translation.
func (q Quaternion[T]) TransformDirection(v Vector3[T]) Vector3[T] {
	return q.TransformPoint(v)
}

// ToRotationMatrix converts a unit quaternion.
func (q Quaternion[T]) ToRotationMatrix() RotationMatrix3x3[T] {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return RotationMatrix3x3[T]{Matrix3x3: NewMatrix3x3(
		1-2*(y*y+z*z), 2*(x*y-w*z), 2*(x*z+w*y),
		2*(x*y+w*z), 1-2*(x*x+z*z), 2*(y*z-w*x),
		2*(x*z-w*y), 2*(y*z+w*x), 1-2*(x*x+y*y),
	)}
}

func (q Quaternion[T]) IsIdentity() bool {
	return q.Equal(IdentityQuaternion[T]())
}

func (q Quaternion[T]) Equal(p Quaternion[T]) bool {
	return scalar.AreEqual(q.X, p.X) && scalar.AreEqual(q.Y, p.Y) &&
		scalar.AreEqual(q.Z, p.Z) && scalar.AreEqual(q.W, p.W)
}

// SameRotation reports whether q and p rotate alike; q and -q do.
func (q Quaternion[T]) SameRotation(p Quaternion[T]) bool {
	return q.Equal(p) || q.Equal(p.Scale(-1))
}

func (q Quaternion[T]) String() string {
	return "Q(" + scalar.Format(q.X) + ", " + scalar.Format(q.Y) + ", " +
		scalar.Format(q.Z) + ", " + scalar.Format(q.W) + ")"
}
