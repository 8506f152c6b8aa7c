package geometry

import (
	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

// Plane holds the coefficients of A·x + B·y + C·z + D = 0. The normal
// (A, B, C) is not necessarily unit length.
type Plane[T scalar.Float] struct {
	A, B, C, D T
}

func NewPlane[T scalar.Float](a, b, c, d T) Plane[T] {
	return Plane[T]{A: a, B: b, C: c, D: d}
}

// PlaneFromPoints builds the plane through a, b and c with normal
// (b-a)×(c-a). The points must not be collinear.
func PlaneFromPoints[T scalar.Float](a, b, c linalg.Vector3[T]) Plane[T] {
	n := b.Sub(a).Cross(c.Sub(a))
	scalar.Assert(!n.IsZero(), "PlaneFromPoints", "collinear points")
	return Plane[T]{A: n.X, B: n.Y, C: n.Z, D: -n.Dot(a)}
}

// TryPlaneFromPoints is PlaneFromPoints for untrusted input: collinear
// points come back as an error wrapping scalar.ErrPrecondition.
func TryPlaneFromPoints[T scalar.Float](a, b, c linalg.Vector3[T]) (p Plane[T], err error) {
	defer scalar.CheckError(&err)
	return PlaneFromPoints(a, b, c), nil
}

// PlaneFromNormal builds the plane with normal n through point p.
func PlaneFromNormal[T scalar.Float](n, p linalg.Vector3[T]) Plane[T] {
	scalar.Assert(!n.IsZero(), "PlaneFromNormal", "zero normal")
	return Plane[T]{A: n.X, B: n.Y, C: n.Z, D: -n.Dot(p)}
}

func (p Plane[T]) Normal() linalg.Vector3[T] {
	return linalg.Vector3[T]{X: p.A, Y: p.B, Z: p.C}
}

// SignedDistance evaluates the plane equation at v. It is the true
// distance only when the normal is unit length.
func (p Plane[T]) SignedDistance(v linalg.Vector3[T]) T {
	return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D
}

// Distance is the unsigned euclidean distance from v to the plane.
func (p Plane[T]) Distance(v linalg.Vector3[T]) T {
	sq := p.A*p.A + p.B*p.B + p.C*p.C
	scalar.Assert(scalar.IsNotZero(sq), "Plane.Distance", "zero normal")
	return scalar.Abs(p.SignedDistance(v)) / scalar.Sqrt(sq)
}

// Project moves v along the normal onto the plane.
func (p Plane[T]) Project(v linalg.Vector3[T]) linalg.Vector3[T] {
	sq := p.A*p.A + p.B*p.B + p.C*p.C
	scalar.Assert(scalar.IsNotZero(sq), "Plane.Project", "zero normal")
	return v.Add(p.Normal().Scale(-p.SignedDistance(v) / sq))
}

func (p Plane[T]) Contains(v linalg.Vector3[T]) bool {
	return scalar.IsZero(p.SignedDistance(v))
}

// Normalize scales the coefficients so that the normal is unit length.
func (p Plane[T]) Normalize() Plane[T] {
	l := p.Normal().Length()
	scalar.Assert(scalar.IsNotZero(l), "Plane.Normalize", "zero normal")
	return Plane[T]{A: p.A / l, B: p.B / l, C: p.C / l, D: p.D / l}
}

// Flip swaps the positive and negative half-spaces.
func (p Plane[T]) Flip() Plane[T] {
	return Plane[T]{A: -p.A, B: -p.B, C: -p.C, D: -p.D}
}

func (p Plane[T]) Equal(o Plane[T]) bool {
	return scalar.AreEqual(p.A, o.A) && scalar.AreEqual(p.B, o.B) &&
		scalar.AreEqual(p.C, o.C) && scalar.AreEqual(p.D, o.D)
}

func (p Plane[T]) String() string {
	return "PL(" + scalar.Format(p.A) + ", " + scalar.Format(p.B) + ", " +
		scalar.Format(p.C) + ", " + scalar.Format(p.D) + ")"
}
