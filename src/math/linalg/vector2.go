package linalg

import (
	"geomq/src/math/scalar"
)

// Vector2 is a 2D vector or point.
type Vector2[T scalar.Float] struct {
	X, Y T
}

func NewVector2[T scalar.Float](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// Vector2Fill sets every component to v.
func Vector2Fill[T scalar.Float](v T) Vector2[T] {
	return Vector2[T]{X: v, Y: v}
}

// Vector2FromSlice reads the first two values of s.
func Vector2FromSlice[T scalar.Float](s []T) Vector2[T] {
	scalar.Assert(len(s) >= 2, "Vector2FromSlice", "need 2 values")
	return Vector2[T]{X: s[0], Y: s[1]}
}

func ZeroVector2[T scalar.Float]() Vector2[T] {
	return Vector2[T]{}
}

func Vector2OfOnes[T scalar.Float]() Vector2[T] {
	return Vector2[T]{X: 1, Y: 1}
}

func UnitVector2X[T scalar.Float]() Vector2[T] {
	return Vector2[T]{X: 1}
}

func UnitVector2Y[T scalar.Float]() Vector2[T] {
	return Vector2[T]{Y: 1}
}

func UnitVector2InvX[T scalar.Float]() Vector2[T] {
	return Vector2[T]{X: -1}
}

func UnitVector2InvY[T scalar.Float]() Vector2[T] {
	return Vector2[T]{Y: -1}
}

func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul multiplies componentwise.
func (v Vector2[T]) Mul(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X * w.X, Y: v.Y * w.Y}
}

func (v Vector2[T]) Scale(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

func (v Vector2[T]) Div(s T) Vector2[T] {
	scalar.Assert(scalar.IsNotZero(s), "Vector2.Div", "division by zero")
	return Vector2[T]{X: v.X / s, Y: v.Y / s}
}

// DivVec divides componentwise.
func (v Vector2[T]) DivVec(w Vector2[T]) Vector2[T] {
	scalar.Assert(scalar.IsNotZero(w.X) && scalar.IsNotZero(w.Y), "Vector2.DivVec", "division by zero")
	return Vector2[T]{X: v.X / w.X, Y: v.Y / w.Y}
}

// Neg returns the reversed vector.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{X: -v.X, Y: -v.Y}
}

func (v Vector2[T]) Dot(w Vector2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product with z=0.
func (v Vector2[T]) Cross(w Vector2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

func (v Vector2[T]) Length() T {
	return scalar.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2[T]) SquaredLength() T {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector with the direction of v. v must not be zero.
func (v Vector2[T]) Normalize() Vector2[T] {
	l := v.Length()
	scalar.Assert(scalar.IsNotZero(l), "Vector2.Normalize", "zero-length vector")
	return Vector2[T]{X: v.X / l, Y: v.Y / l}
}

// Perpendicular returns v rotated 90 degrees counter-clockwise.
func (v Vector2[T]) Perpendicular() Vector2[T] {
	return Vector2[T]{X: -v.Y, Y: v.X}
}

// Lerp returns v*t + w*(1-t).
func (v Vector2[T]) Lerp(t T, w Vector2[T]) Vector2[T] {
	d := 1 - t
	return Vector2[T]{X: v.X*t + w.X*d, Y: v.Y*t + w.Y*d}
}

func (v Vector2[T]) Distance(w Vector2[T]) T {
	return v.Sub(w).Length()
}

// AngleTo returns the unsigned angle between v and w. Neither may be zero.
func (v Vector2[T]) AngleTo(w Vector2[T]) scalar.Angle[T] {
	l := v.Length() * w.Length()
	scalar.Assert(scalar.IsNotZero(l), "Vector2.AngleTo", "zero-length vector")
	return scalar.Radians(scalar.Acos(v.Dot(w) / l))
}

// Rotate rotates v around the origin.
func (v Vector2[T]) Rotate(a scalar.Angle[T]) Vector2[T] {
	sin, cos := scalar.Sin(a.Radians()), scalar.Cos(a.Radians())
	return Vector2[T]{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

func (v Vector2[T]) Equal(w Vector2[T]) bool {
	return scalar.AreEqual(v.X, w.X) && scalar.AreEqual(v.Y, w.Y)
}

func (v Vector2[T]) IsZero() bool {
	return scalar.IsZero(v.X) && scalar.IsZero(v.Y)
}

func (v Vector2[T]) IsVectorOfOnes() bool {
	return scalar.AreEqual(v.X, 1) && scalar.AreEqual(v.Y, 1)
}

func (v Vector2[T]) String() string {
	return "V2(" + scalar.Format(v.X) + ", " + scalar.Format(v.Y) + ")"
}
