package linalg

import (
	"geomq/src/math/scalar"
)

// Vector4 is a homogeneous vector: W=1 marks a point, W=0 a direction.
type Vector4[T scalar.Float] struct {
	X, Y, Z, W T
}

func NewVector4[T scalar.Float](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

func Vector4Fill[T scalar.Float](v T) Vector4[T] {
	return Vector4[T]{X: v, Y: v, Z: v, W: v}
}

// Vector4FromSlice reads the first four values of s.
func Vector4FromSlice[T scalar.Float](s []T) Vector4[T] {
	scalar.Assert(len(s) >= 4, "Vector4FromSlice", "need 4 values")
	return Vector4[T]{X: s[0], Y: s[1], Z: s[2], W: s[3]}
}

func ZeroVector4[T scalar.Float]() Vector4[T] {
	return Vector4[T]{}
}

// ZeroPoint4 is the origin as a point.
func ZeroPoint4[T scalar.Float]() Vector4[T] {
	return Vector4[T]{W: 1}
}

// ZeroDirection4 is the null direction, w = 0.
func ZeroDirection4[T scalar.Float]() Vector4[T] {
	return Vector4[T]{}
}

func Vector4OfOnes[T scalar.Float]() Vector4[T] {
	return Vector4[T]{X: 1, Y: 1, Z: 1, W: 1}
}

func UnitVector4X[T scalar.Float]() Vector4[T] {
	return Vector4[T]{X: 1}
}

func UnitVector4Y[T scalar.Float]() Vector4[T] {
	return Vector4[T]{Y: 1}
}

func UnitVector4Z[T scalar.Float]() Vector4[T] {
	return Vector4[T]{Z: 1}
}

func UnitVector4W[T scalar.Float]() Vector4[T] {
	return Vector4[T]{W: 1}
}

func (v Vector4[T]) Add(w Vector4[T]) Vector4[T] {
	return Vector4[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

func (v Vector4[T]) Sub(w Vector4[T]) Vector4[T] {
	return Vector4[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Mul multiplies componentwise.
func (v Vector4[T]) Mul(w Vector4[T]) Vector4[T] {
	return Vector4[T]{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z, W: v.W * w.W}
}

func (v Vector4[T]) Scale(s T) Vector4[T] {
	return Vector4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

func (v Vector4[T]) Div(s T) Vector4[T] {
	scalar.Assert(scalar.IsNotZero(s), "Vector4.Div", "division by zero")
	return Vector4[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// DivVec divides componentwise.
func (v Vector4[T]) DivVec(w Vector4[T]) Vector4[T] {
	scalar.Assert(scalar.IsNotZero(w.X) && scalar.IsNotZero(w.Y) &&
		scalar.IsNotZero(w.Z) && scalar.IsNotZero(w.W), "Vector4.DivVec", "division by zero")
	return Vector4[T]{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z, W: v.W / w.W}
}

func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

func (v Vector4[T]) Dot(w Vector4[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Cross computes the 3D cross product of the xyz parts and keeps v.W.
func (v Vector4[T]) Cross(w Vector4[T]) Vector4[T] {
	return Vector4[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
		W: v.W,
	}
}

func (v Vector4[T]) Length() T {
	return scalar.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

func (v Vector4[T]) SquaredLength() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Normalize returns v divided by its four-component length. v must not be zero.
func (v Vector4[T]) Normalize() Vector4[T] {
	l := v.Length()
	scalar.Assert(scalar.IsNotZero(l), "Vector4.Normalize", "zero-length vector")
	return Vector4[T]{X: v.X / l, Y: v.Y / l, Z: v.Z / l, W: v.W / l}
}

// Lerp returns v*t + w*(1-t).
func (v Vector4[T]) Lerp(t T, w Vector4[T]) Vector4[T] {
	d := 1 - t
	return Vector4[T]{X: v.X*t + w.X*d, Y: v.Y*t + w.Y*d, Z: v.Z*t + w.Z*d, W: v.W*t + w.W*d}
}

func (v Vector4[T]) Distance(w Vector4[T]) T {
	return v.Sub(w).Length()
}

// Transform multiplies m by v as a column vector, W included.
func (v Vector4[T]) Transform(m Matrix4x4[T]) Vector4[T] {
	return m.TransformVector4(v)
}

// Vector3 drops W.
func (v Vector4[T]) Vector3() Vector3[T] {
	return Vector3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vector4[T]) Equal(w Vector4[T]) bool {
	return scalar.AreEqual(v.X, w.X) && scalar.AreEqual(v.Y, w.Y) &&
		scalar.AreEqual(v.Z, w.Z) && scalar.AreEqual(v.W, w.W)
}

func (v Vector4[T]) IsZero() bool {
	return scalar.IsZero(v.X) && scalar.IsZero(v.Y) && scalar.IsZero(v.Z) && scalar.IsZero(v.W)
}

func (v Vector4[T]) IsVectorOfOnes() bool {
	return scalar.AreEqual(v.X, 1) && scalar.AreEqual(v.Y, 1) &&
		scalar.AreEqual(v.Z, 1) && scalar.AreEqual(v.W, 1)
}

func (v Vector4[T]) String() string {
	return "V4(" + scalar.Format(v.X) + ", " + scalar.Format(v.Y) + ", " +
		scalar.Format(v.Z) + ", " + scalar.Format(v.W) + ")"
}
