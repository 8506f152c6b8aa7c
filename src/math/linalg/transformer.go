package linalg

import (
	"geomq/src/math/scalar"
)

// Vector is satisfied by Vector2, Vector3 and Vector4. Primitives that work
// in any dimension (segments, rays, orbs, triangles) are generic over it.
type Vector[V any, T scalar.Float] interface {
	Add(V) V
	Sub(V) V
	Scale(T) V
	Neg() V
	Dot(V) T
	Length() T
	SquaredLength() T
	Distance(V) T
	Normalize() V
	Lerp(T, V) V
	Equal(V) bool
	IsZero() bool
	String() string
}

// Transformer3 maps 3D points. Quaternions, dual quaternions and every
// 3x3/4x4 matrix flavour implement it.
type Transformer3[T scalar.Float] interface {
	TransformPoint(Vector3[T]) Vector3[T]
}

// AffineTransformer3 also maps directions, which ignore any translation.
type AffineTransformer3[T scalar.Float] interface {
	Transformer3[T]
	TransformDirection(Vector3[T]) Vector3[T]
}

// Transformer2 maps 2D points.
type Transformer2[T scalar.Float] interface {
	TransformPoint(Vector2[T]) Vector2[T]
}

// AffineTransformer2 also maps 2D directions.
type AffineTransformer2[T scalar.Float] interface {
	Transformer2[T]
	TransformDirection(Vector2[T]) Vector2[T]
}

// TransformPoints3 transforms pts in place.
func TransformPoints3[T scalar.Float](t Transformer3[T], pts []Vector3[T]) {
	for i := range pts {
		pts[i] = t.TransformPoint(pts[i])
	}
}

// TransformPoints3WithPivot transforms pts in place as if pivot were the origin.
func TransformPoints3WithPivot[T scalar.Float](t Transformer3[T], pivot Vector3[T], pts []Vector3[T]) {
	for i := range pts {
		pts[i] = t.TransformPoint(pts[i].Sub(pivot)).Add(pivot)
	}
}

// TransformPoints2 transforms pts in place.
func TransformPoints2[T scalar.Float](t Transformer2[T], pts []Vector2[T]) {
	for i := range pts {
		pts[i] = t.TransformPoint(pts[i])
	}
}

// TransformPoints2WithPivot transforms pts in place as if pivot were the origin.
func TransformPoints2WithPivot[T scalar.Float](t Transformer2[T], pivot Vector2[T], pts []Vector2[T]) {
	for i := range pts {
		pts[i] = t.TransformPoint(pts[i].Sub(pivot)).Add(pivot)
	}
}

func TranslatePoints2[T scalar.Float](d Vector2[T], pts []Vector2[T]) {
	for i := range pts {
		pts[i] = pts[i].Add(d)
	}
}

func RotatePoints2[T scalar.Float](a scalar.Angle[T], pts []Vector2[T]) {
	for i := range pts {
		pts[i] = pts[i].Rotate(a)
	}
}

func RotatePoints2WithPivot[T scalar.Float](a scalar.Angle[T], pivot Vector2[T], pts []Vector2[T]) {
	for i := range pts {
		pts[i] = pts[i].Sub(pivot).Rotate(a).Add(pivot)
	}
}

func ScalePoints2[T scalar.Float](s Vector2[T], pts []Vector2[T]) {
	for i := range pts {
		pts[i] = pts[i].Mul(s)
	}
}

func ScalePoints2WithPivot[T scalar.Float](s Vector2[T], pivot Vector2[T], pts []Vector2[T]) {
	for i := range pts {
		pts[i] = pts[i].Sub(pivot).Mul(s).Add(pivot)
	}
}
