package geometry

import (
	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

type LineSegment3D[T scalar.Float] struct {
	LineSegment[linalg.Vector3[T], T]
}

func NewLineSegment3D[T scalar.Float](a, b linalg.Vector3[T]) LineSegment3D[T] {
	return LineSegment3D[T]{LineSegment[linalg.Vector3[T], T]{A: a, B: b}}
}

// UnitLine3D goes from the origin to (1, 0, 0).
func UnitLine3D[T scalar.Float]() LineSegment3D[T] {
	return NewLineSegment3D(linalg.ZeroVector3[T](), linalg.UnitVector3X[T]())
}

func LineZero3D[T scalar.Float]() LineSegment3D[T] {
	return NewLineSegment3D(linalg.ZeroVector3[T](), linalg.ZeroVector3[T]())
}

// IntersectsPlane reports whether the endpoints straddle p or touch it.
func (s LineSegment3D[T]) IntersectsPlane(p Plane[T]) bool {
	distA := p.SignedDistance(s.A)
	if scalar.IsZero(distA) {
		return true
	}
	distB := p.SignedDistance(s.B)
	if scalar.IsZero(distB) {
		return true
	}
	return scalar.IsLessThan(distA*distB, 0)
}

// PlaneIntersection returns the point where s crosses p. A segment lying
// in the plane reports InfiniteIntersections and A.
func (s LineSegment3D[T]) PlaneIntersection(p Plane[T]) (Intersections, linalg.Vector3[T]) {
	distA := p.SignedDistance(s.A)
	distB := p.SignedDistance(s.B)
	switch {
	case scalar.IsZero(distA) && scalar.IsZero(distB):
		return InfiniteIntersections, s.A
	case scalar.IsZero(distA):
		return OneIntersection, s.A
	case scalar.IsZero(distB):
		return OneIntersection, s.B
	case scalar.IsLessThan(distA*distB, 0):
		return OneIntersection, s.A.Add(s.B.Sub(s.A).Scale(distA / (distA - distB)))
	}
	return NoIntersection, linalg.Vector3[T]{}
}

// IntersectsTriangle tests the supporting plane first. A segment lying in
// that plane is tested edge by edge, then for containment.
func (s LineSegment3D[T]) IntersectsTriangle(t Triangle3D[T]) bool {
	p := t.Plane()
	if !s.IntersectsPlane(p) {
		return false
	}
	distB := p.SignedDistance(s.B)
	distA := p.SignedDistance(s.A)

	if scalar.IsZero(distB) && scalar.IsZero(distA) {
		if s.Intersects(NewLineSegment3D(t.A, t.B).LineSegment) ||
			s.Intersects(NewLineSegment3D(t.B, t.C).LineSegment) ||
			s.Intersects(NewLineSegment3D(t.C, t.A).LineSegment) {
			return true
		}
		return pointInTriangle3(s.A, t.A, t.B, t.C)
	}

	scalar.Assert(scalar.IsNotZero(distA-distB), "LineSegment3D.IntersectsTriangle", "segment parallel to plane")
	x := s.A.Add(s.B.Sub(s.A).Scale(distA / (distA - distB)))
	return pointInTriangle3(x, t.A, t.B, t.C)
}

// IntersectsQuadrilateral does for the convex planar quadrilateral abcd what
// IntersectsTriangle does for triangles.
func (s LineSegment3D[T]) IntersectsQuadrilateral(a, b, c, d linalg.Vector3[T]) bool {
	p := PlaneFromPoints(a, b, c)
	if !s.IntersectsPlane(p) {
		return false
	}
	distB := p.SignedDistance(s.B)
	distA := p.SignedDistance(s.A)

	if scalar.IsZero(distB) && scalar.IsZero(distA) {
		if s.Intersects(NewLineSegment3D(a, b).LineSegment) ||
			s.Intersects(NewLineSegment3D(b, c).LineSegment) ||
			s.Intersects(NewLineSegment3D(c, d).LineSegment) ||
			s.Intersects(NewLineSegment3D(d, a).LineSegment) {
			return true
		}
		return pointInQuadrilateral3(s.A, a, b, c, d)
	}

	scalar.Assert(scalar.IsNotZero(distA-distB), "LineSegment3D.IntersectsQuadrilateral", "segment parallel to plane")
	x := s.A.Add(s.B.Sub(s.A).Scale(distA / (distA - distB)))
	return pointInQuadrilateral3(x, a, b, c, d)
}

// IntersectsHexahedron tests the six faces, then whether s lies inside h.
func (s LineSegment3D[T]) IntersectsHexahedron(h Hexahedron[T]) bool {
	for _, f := range h.Faces() {
		if s.IntersectsQuadrilateral(f[0], f[1], f[2], f[3]) {
			return true
		}
	}
	return h.Contains(s.A)
}

func (s LineSegment3D[T]) MaxDistanceToPlane(p Plane[T]) T {
	return max(p.Distance(s.A), p.Distance(s.B))
}

func (s LineSegment3D[T]) MinDistanceToPlane(p Plane[T]) T {
	return min(p.Distance(s.A), p.Distance(s.B))
}

// ProjectToPlane moves both endpoints onto p along its normal.
func (s LineSegment3D[T]) ProjectToPlane(p Plane[T]) LineSegment3D[T] {
	return NewLineSegment3D(p.Project(s.A), p.Project(s.B))
}

// SpaceRelation places s relative to p.
func (s LineSegment3D[T]) SpaceRelation(p Plane[T]) SpaceRelation {
	return SpaceRelationOfPoints(p, s.A, s.B)
}

// Transform applies t to both endpoints, around the origin.
func (s LineSegment3D[T]) Transform(t linalg.Transformer3[T]) LineSegment3D[T] {
	return NewLineSegment3D(t.TransformPoint(s.A), t.TransformPoint(s.B))
}

// TransformFromPivot applies t as if pivot were the origin.
func (s LineSegment3D[T]) TransformFromPivot(t linalg.Transformer3[T], pivot linalg.Vector3[T]) LineSegment3D[T] {
	pts := []linalg.Vector3[T]{s.A, s.B}
	linalg.TransformPoints3WithPivot(t, pivot, pts)
	return NewLineSegment3D(pts[0], pts[1])
}
