package geometry

import (
	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

// Orb is a circle in 2D or a sphere in 3D.
type Orb[V linalg.Vector[V, T], T scalar.Float] struct {
	Center V
	Radius T
}

type (
	Orb2D[T scalar.Float] = Orb[linalg.Vector2[T], T]
	Orb3D[T scalar.Float] = Orb[linalg.Vector3[T], T]
)

func NewOrb2D[T scalar.Float](center linalg.Vector2[T], radius T) Orb2D[T] {
	return Orb2D[T]{Center: center, Radius: radius}
}

func NewOrb3D[T scalar.Float](center linalg.Vector3[T], radius T) Orb3D[T] {
	return Orb3D[T]{Center: center, Radius: radius}
}

// Contains includes the surface.
func (o Orb[V, T]) Contains(p V) bool {
	return scalar.IsLessOrEquals(o.Center.Distance(p), o.Radius)
}

// Intersects reports whether the two orbs overlap or touch.
func (o Orb[V, T]) Intersects(other Orb[V, T]) bool {
	return scalar.IsLessOrEquals(o.Center.Distance(other.Center), o.Radius+other.Radius)
}

func (o Orb[V, T]) Equal(other Orb[V, T]) bool {
	return o.Center.Equal(other.Center) && scalar.AreEqual(o.Radius, other.Radius)
}

func (o Orb[V, T]) String() string {
	return "O(" + o.Center.String() + ", " + scalar.Format(o.Radius) + ")"
}
