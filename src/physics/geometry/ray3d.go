package geometry

import (
	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

type Ray3D[T scalar.Float] struct {
	Ray[linalg.Vector3[T], T]
}

func NewRay3D[T scalar.Float](origin, direction linalg.Vector3[T]) Ray3D[T] {
	return Ray3D[T]{Ray[linalg.Vector3[T], T]{Origin: origin, Direction: direction}}
}

func RayZero3D[T scalar.Float]() Ray3D[T] {
	return NewRay3D(linalg.ZeroVector3[T](), linalg.ZeroVector3[T]())
}

func RayX3D[T scalar.Float]() Ray3D[T] {
	return NewRay3D(linalg.ZeroVector3[T](), linalg.UnitVector3X[T]())
}

func RayY3D[T scalar.Float]() Ray3D[T] {
	return NewRay3D(linalg.ZeroVector3[T](), linalg.UnitVector3Y[T]())
}

func RayZ3D[T scalar.Float]() Ray3D[T] {
	return NewRay3D(linalg.ZeroVector3[T](), linalg.UnitVector3Z[T]())
}

// Contains reports whether p lies on the ray, origin included. A ray
// without direction contains only its origin.
func (r Ray3D[T]) Contains(p linalg.Vector3[T]) bool {
	if r.Origin.Equal(p) {
		return true
	}
	if r.Direction.IsZero() {
		return false
	}
	w := p.Sub(r.Origin)
	return parallel3(w, r.Direction) && !scalar.IsNegative(w.Dot(r.Direction))
}

// parallel3 reports whether a and b lie along one line, measured relative
// to their lengths. The zero vector is parallel to everything.
func parallel3[T scalar.Float](a, b linalg.Vector3[T]) bool {
	return scalar.IsNegligible(a.Cross(b).Length(), a.Length()*b.Length())
}

// coplanar3 reports whether w lies in the plane spanned by the directions
// whose cross product is n.
func coplanar3[T scalar.Float](w, n linalg.Vector3[T]) bool {
	return scalar.IsNegligible(w.Dot(n), w.Length()*n.Length())
}

// RayIntersection returns the point shared with o. Collinear rays follow
// the same rules as in 2D.
func (r Ray3D[T]) RayIntersection(o Ray3D[T]) (Intersections, linalg.Vector3[T]) {
	var none linalg.Vector3[T]
	u, v := r.Direction, o.Direction
	w := o.Origin.Sub(r.Origin)
	n := u.Cross(v)

	if parallel3(u, v) {
		if !parallel3(w, u) {
			return NoIntersection, none
		}
		if scalar.IsPositive(u.Dot(v)) {
			if r.Contains(o.Origin) {
				return InfiniteIntersections, o.Origin
			}
			return InfiniteIntersections, r.Origin
		}
		switch {
		case r.Origin.Equal(o.Origin):
			return OneIntersection, r.Origin
		case r.Contains(o.Origin):
			return InfiniteIntersections, r.Origin
		}
		return NoIntersection, none
	}
	if !coplanar3(w, n) {
		return NoIntersection, none
	}

	sq := n.SquaredLength()
	t := w.Cross(v).Dot(n) / sq
	s := w.Cross(u).Dot(n) / sq
	if scalar.IsNegative(t) || scalar.IsNegative(s) {
		return NoIntersection, none
	}
	return OneIntersection, r.Point(t)
}

func (r Ray3D[T]) IntersectsRay(o Ray3D[T]) bool {
	n, _ := r.RayIntersection(o)
	return n != NoIntersection
}

// SegmentIntersection follows the 2D rules for segments along the ray.
func (r Ray3D[T]) SegmentIntersection(s LineSegment3D[T]) (Intersections, linalg.Vector3[T]) {
	var none linalg.Vector3[T]
	u := r.Direction
	v := s.B.Sub(s.A)
	w := s.A.Sub(r.Origin)
	n := u.Cross(v)

	if parallel3(u, v) {
		if !parallel3(w, u) {
			return NoIntersection, none
		}
		aIn, bIn := r.Contains(s.A), r.Contains(s.B)
		switch {
		case aIn && bIn:
			if s.A.Distance(r.Origin) <= s.B.Distance(r.Origin) {
				return InfiniteIntersections, s.A
			}
			return InfiniteIntersections, s.B
		case aIn:
			return OneIntersection, s.A
		case bIn:
			return OneIntersection, s.B
		}
		return NoIntersection, none
	}
	if !coplanar3(w, n) {
		return NoIntersection, none
	}

	sq := n.SquaredLength()
	t := w.Cross(v).Dot(n) / sq
	k := w.Cross(u).Dot(n) / sq
	if scalar.IsNegative(t) || scalar.IsNegative(k) || scalar.IsGreaterThan(k, 1) {
		return NoIntersection, none
	}
	return OneIntersection, r.Point(t)
}

func (r Ray3D[T]) IntersectsSegment(s LineSegment3D[T]) bool {
	n, _ := r.SegmentIntersection(s)
	return n != NoIntersection
}

// PlaneIntersection returns where r meets p. A ray lying in p reports
// InfiniteIntersections and its origin.
func (r Ray3D[T]) PlaneIntersection(p Plane[T]) (Intersections, linalg.Vector3[T]) {
	nd := p.Normal().Dot(r.Direction)
	dist := p.SignedDistance(r.Origin)
	if scalar.IsZero(nd) {
		if scalar.IsZero(dist) {
			return InfiniteIntersections, r.Origin
		}
		return NoIntersection, linalg.Vector3[T]{}
	}
	t := -dist / nd
	if scalar.IsNegative(t) {
		return NoIntersection, linalg.Vector3[T]{}
	}
	return OneIntersection, r.Point(t)
}

func (r Ray3D[T]) IntersectsPlane(p Plane[T]) bool {
	n, _ := r.PlaneIntersection(p)
	return n != NoIntersection
}

// TriangleIntersection crosses the supporting plane once, unless r lies in
// it; then the edges are tested as in 2D.
func (r Ray3D[T]) TriangleIntersection(t Triangle3D[T]) (Intersections, linalg.Vector3[T], linalg.Vector3[T]) {
	var none linalg.Vector3[T]
	n, p := r.PlaneIntersection(t.Plane())
	switch n {
	case NoIntersection:
		return NoIntersection, none, none
	case OneIntersection:
		if pointInTriangle3(p, t.A, t.B, t.C) {
			return OneIntersection, p, none
		}
		return NoIntersection, none, none
	}

	h := boundaryHits[linalg.Vector3[T], T]{origin: r.Origin}
	h.add(r.SegmentIntersection(NewLineSegment3D(t.A, t.B)))
	h.add(r.SegmentIntersection(NewLineSegment3D(t.B, t.C)))
	h.add(r.SegmentIntersection(NewLineSegment3D(t.C, t.A)))
	return h.result()
}

func (r Ray3D[T]) IntersectsTriangle(t Triangle3D[T]) bool {
	n, _, _ := r.TriangleIntersection(t)
	return n != NoIntersection
}

// IntersectsHexahedron reports whether r starts inside h or crosses a face.
func (r Ray3D[T]) IntersectsHexahedron(h Hexahedron[T]) bool {
	if h.Contains(r.Origin) {
		return true
	}
	for _, f := range h.Faces() {
		if r.IntersectsTriangle(NewTriangle3D(f[0], f[1], f[2])) ||
			r.IntersectsTriangle(NewTriangle3D(f[0], f[2], f[3])) {
			return true
		}
	}
	return false
}

// Reflection bounces r off p. A ray that never reaches p, or runs inside
// it, comes back unchanged.
func (r Ray3D[T]) Reflection(p Plane[T]) Ray3D[T] {
	n, x := r.PlaneIntersection(p)
	if n != OneIntersection {
		return r
	}
	normal := p.Normal().Normalize()
	d := r.Direction.Sub(normal.Scale(2 * r.Direction.Dot(normal)))
	return NewRay3D(x, d)
}

// Transform moves the origin with m and turns the direction without
// translation, then renormalizes it.
func (r Ray3D[T]) Transform(m linalg.AffineTransformer3[T]) Ray3D[T] {
	return NewRay3D(m.TransformPoint(r.Origin), m.TransformDirection(r.Direction).Normalize())
}

// TransformWithPivot transforms the origin as if pivot were the coordinate origin.
func (r Ray3D[T]) TransformWithPivot(m linalg.AffineTransformer3[T], pivot linalg.Vector3[T]) Ray3D[T] {
	o := m.TransformPoint(r.Origin.Sub(pivot)).Add(pivot)
	return NewRay3D(o, m.TransformDirection(r.Direction).Normalize())
}
