package linalg

import (
	"geomq/src/math/scalar"
)

// DualQuaternion encodes a rigid transform as R + ε·D, where R is the
// rotation and D = ½·t·R carries the translation t.
type DualQuaternion[T scalar.Float] struct {
	R, D Quaternion[T]
}

func IdentityDualQuaternion[T scalar.Float]() DualQuaternion[T] {
	return DualQuaternion[T]{R: IdentityQuaternion[T]()}
}

// DualQuaternionFromRotationTranslation rotates first, then translates.
func DualQuaternionFromRotationTranslation[T scalar.Float](r Quaternion[T], t Vector3[T]) DualQuaternion[T] {
	r = r.Normalize()
	tq := Quaternion[T]{X: t.X, Y: t.Y, Z: t.Z}
	return DualQuaternion[T]{R: r, D: tq.Mul(r).Scale(0.5)}
}

// DualQuaternionFromTranslationRotation translates first, then rotates.
func DualQuaternionFromTranslationRotation[T scalar.Float](t Vector3[T], r Quaternion[T]) DualQuaternion[T] {
	return DualQuaternionFromRotation(r).Mul(DualQuaternionFromTranslation(t))
}

func DualQuaternionFromTranslation[T scalar.Float](t Vector3[T]) DualQuaternion[T] {
	return DualQuaternion[T]{
		R: IdentityQuaternion[T](),
		D: Quaternion[T]{X: t.X / 2, Y: t.Y / 2, Z: t.Z / 2},
	}
}

func DualQuaternionFromRotation[T scalar.Float](r Quaternion[T]) DualQuaternion[T] {
	return DualQuaternion[T]{R: r.Normalize()}
}

func (q DualQuaternion[T]) Add(p DualQuaternion[T]) DualQuaternion[T] {
	return DualQuaternion[T]{R: q.R.Add(p.R), D: q.D.Add(p.D)}
}

func (q DualQuaternion[T]) Sub(p DualQuaternion[T]) DualQuaternion[T] {
	return DualQuaternion[T]{R: q.R.Sub(p.R), D: q.D.Sub(p.D)}
}

func (q DualQuaternion[T]) Scale(s T) DualQuaternion[T] {
	return DualQuaternion[T]{R: q.R.Scale(s), D: q.D.Scale(s)}
}

// Mul composes two transforms; p is applied first.
func (q DualQuaternion[T]) Mul(p DualQuaternion[T]) DualQuaternion[T] {
	return DualQuaternion[T]{
		R: q.R.Mul(p.R),
		D: q.R.Mul(p.D).Add(q.D.Mul(p.R)),
	}
}

// Conjugate conjugates both parts. For a unit dual quaternion it is the
// inverse transform.
func (q DualQuaternion[T]) Conjugate() DualQuaternion[T] {
	return DualQuaternion[T]{R: q.R.Conjugate(), D: q.D.Conjugate()}
}

// Normalize scales both parts by the length of R, which must not be zero.
func (q DualQuaternion[T]) Normalize() DualQuaternion[T] {
	l := q.R.Length()
	scalar.Assert(scalar.IsNotZero(l), "DualQuaternion.Normalize", "zero-length real part")
	return q.Scale(1 / l)
}

func (q DualQuaternion[T]) Rotation() Quaternion[T] {
	return q.R
}

// Translation returns 2·D·R*, assuming R is unit length.
func (q DualQuaternion[T]) Translation() Vector3[T] {
	return q.D.Mul(q.R.Conjugate()).Scale(2).Vector()
}

func (q DualQuaternion[T]) TransformPoint(v Vector3[T]) Vector3[T] {
	return q.R.TransformPoint(v).Add(q.Translation())
}

// TransformDirection applies the rotation only.
func (q DualQuaternion[T]) TransformDirection(v Vector3[T]) Vector3[T] {
	return q.R.TransformPoint(v)
}

func (q DualQuaternion[T]) ToTransformationMatrix() TransformationMatrix4x4[T] {
	return NewTransformationMatrix4x4(q.Translation(), q.R, Vector3OfOnes[T]())
}

func (q DualQuaternion[T]) Equal(p DualQuaternion[T]) bool {
	return q.R.Equal(p.R) && q.D.Equal(p.D)
}

func (q DualQuaternion[T]) String() string {
	return "DQ(r" + trimQ(q.R.String()) + ", d" + trimQ(q.D.String()) + ")"
}

// trimQ drops the "Q" tag of a quaternion string.
func trimQ(s string) string {
	return s[1:]
}
