package linalg

import (
	"geomq/src/math/scalar"
)

// Vector3 is a 3D vector or point.
type Vector3[T scalar.Float] struct {
	X, Y, Z T
}

func NewVector3[T scalar.Float](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

func Vector3Fill[T scalar.Float](v T) Vector3[T] {
	return Vector3[T]{X: v, Y: v, Z: v}
}

// Vector3FromSlice reads the first three values of s.
func Vector3FromSlice[T scalar.Float](s []T) Vector3[T] {
	scalar.Assert(len(s) >= 3, "Vector3FromSlice", "need 3 values")
	return Vector3[T]{X: s[0], Y: s[1], Z: s[2]}
}

func ZeroVector3[T scalar.Float]() Vector3[T] {
	return Vector3[T]{}
}

func Vector3OfOnes[T scalar.Float]() Vector3[T] {
	return Vector3[T]{X: 1, Y: 1, Z: 1}
}

func UnitVector3X[T scalar.Float]() Vector3[T] {
	return Vector3[T]{X: 1}
}

func UnitVector3Y[T scalar.Float]() Vector3[T] {
	return Vector3[T]{Y: 1}
}

func UnitVector3Z[T scalar.Float]() Vector3[T] {
	return Vector3[T]{Z: 1}
}

func UnitVector3InvX[T scalar.Float]() Vector3[T] {
	return Vector3[T]{X: -1}
}

func UnitVector3InvY[T scalar.Float]() Vector3[T] {
	return Vector3[T]{Y: -1}
}

func UnitVector3InvZ[T scalar.Float]() Vector3[T] {
	return Vector3[T]{Z: -1}
}

func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul multiplies componentwise.
func (v Vector3[T]) Mul(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3[T]) Div(s T) Vector3[T] {
	scalar.Assert(scalar.IsNotZero(s), "Vector3.Div", "division by zero")
	return Vector3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// DivVec divides componentwise.
func (v Vector3[T]) DivVec(w Vector3[T]) Vector3[T] {
	scalar.Assert(scalar.IsNotZero(w.X) && scalar.IsNotZero(w.Y) && scalar.IsNotZero(w.Z),
		"Vector3.DivVec", "division by zero")
	return Vector3[T]{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z}
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3[T]) Dot(w Vector3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vector3[T]) Cross(w Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

func (v Vector3[T]) Length() T {
	return scalar.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3[T]) SquaredLength() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector with the direction of v. v must not be zero.
func (v Vector3[T]) Normalize() Vector3[T] {
	l := v.Length()
	scalar.Assert(scalar.IsNotZero(l), "Vector3.Normalize", "zero-length vector")
	return Vector3[T]{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Lerp returns v*t + w*(1-t).
func (v Vector3[T]) Lerp(t T, w Vector3[T]) Vector3[T] {
	d := 1 - t
	return Vector3[T]{X: v.X*t + w.X*d, Y: v.Y*t + w.Y*d, Z: v.Z*t + w.Z*d}
}

func (v Vector3[T]) Distance(w Vector3[T]) T {
	return v.Sub(w).Length()
}

// AngleTo returns the unsigned angle between v and w. Neither may be zero.
func (v Vector3[T]) AngleTo(w Vector3[T]) scalar.Angle[T] {
	l := v.Length() * w.Length()
	scalar.Assert(scalar.IsNotZero(l), "Vector3.AngleTo", "zero-length vector")
	return scalar.Radians(scalar.Acos(v.Dot(w) / l))
}

// Transform applies any 3D transformer to v taken as a point.
func (v Vector3[T]) Transform(t Transformer3[T]) Vector3[T] {
	return t.TransformPoint(v)
}

// ToPoint4 returns v with w=1.
func (v Vector3[T]) ToPoint4() Vector4[T] {
	return Vector4[T]{X: v.X, Y: v.Y, Z: v.Z, W: 1}
}

// ToDirection4 returns v with w=0.
func (v Vector3[T]) ToDirection4() Vector4[T] {
	return Vector4[T]{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector3[T]) Equal(w Vector3[T]) bool {
	return scalar.AreEqual(v.X, w.X) && scalar.AreEqual(v.Y, w.Y) && scalar.AreEqual(v.Z, w.Z)
}

func (v Vector3[T]) IsZero() bool {
	return scalar.IsZero(v.X) && scalar.IsZero(v.Y) && scalar.IsZero(v.Z)
}

func (v Vector3[T]) IsVectorOfOnes() bool {
	return scalar.AreEqual(v.X, 1) && scalar.AreEqual(v.Y, 1) && scalar.AreEqual(v.Z, 1)
}

func (v Vector3[T]) String() string {
	return "V3(" + scalar.Format(v.X) + ", " + scalar.Format(v.Y) + ", " + scalar.Format(v.Z) + ")"
}
