package geometry

import (
	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

type Triangle[V linalg.Vector[V, T], T scalar.Float] struct {
	A, B, C V
}

func (t Triangle[V, T]) Perimeter() T {
	return t.A.Distance(t.B) + t.B.Distance(t.C) + t.C.Distance(t.A)
}

// Centroid is the mean of the vertices.
func (t Triangle[V, T]) Centroid() V {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3)
}

func (t Triangle[V, T]) Equal(o Triangle[V, T]) bool {
	return t.A.Equal(o.A) && t.B.Equal(o.B) && t.C.Equal(o.C)
}

func (t Triangle[V, T]) String() string {
	return "T(" + t.A.String() + ", " + t.B.String() + ", " + t.C.String() + ")"
}

type Triangle2D[T scalar.Float] struct {
	Triangle[linalg.Vector2[T], T]
}

func NewTriangle2D[T scalar.Float](a, b, c linalg.Vector2[T]) Triangle2D[T] {
	return Triangle2D[T]{Triangle[linalg.Vector2[T], T]{A: a, B: b, C: c}}
}

// Contains includes the edges.
func (t Triangle2D[T]) Contains(p linalg.Vector2[T]) bool {
	return pointInTriangle2(p, t.A, t.B, t.C)
}

func (t Triangle2D[T]) Area() T {
	return scalar.Abs(t.B.Sub(t.A).Cross(t.C.Sub(t.A))) / 2
}

type Triangle3D[T scalar.Float] struct {
	Triangle[linalg.Vector3[T], T]
}

func NewTriangle3D[T scalar.Float](a, b, c linalg.Vector3[T]) Triangle3D[T] {
	return Triangle3D[T]{Triangle[linalg.Vector3[T], T]{A: a, B: b, C: c}}
}

// Plane is the supporting plane, with normal (B-A)×(C-A). Degenerate
// triangles panic.
func (t Triangle3D[T]) Plane() Plane[T] {
	return PlaneFromPoints(t.A, t.B, t.C)
}

// Contains reports whether p lies in the plane of t and inside it, edges included.
func (t Triangle3D[T]) Contains(p linalg.Vector3[T]) bool {
	return t.Plane().Contains(p) && pointInTriangle3(p, t.A, t.B, t.C)
}

func (t Triangle3D[T]) Area() T {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length() / 2
}
