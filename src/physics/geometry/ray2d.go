package geometry

import (
	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

type Ray2D[T scalar.Float] struct {
	Ray[linalg.Vector2[T], T]
}

func NewRay2D[T scalar.Float](origin, direction linalg.Vector2[T]) Ray2D[T] {
	return Ray2D[T]{Ray[linalg.Vector2[T], T]{Origin: origin, Direction: direction}}
}

func RayZero2D[T scalar.Float]() Ray2D[T] {
	return NewRay2D(linalg.ZeroVector2[T](), linalg.ZeroVector2[T]())
}

func RayX2D[T scalar.Float]() Ray2D[T] {
	return NewRay2D(linalg.ZeroVector2[T](), linalg.UnitVector2X[T]())
}

func RayY2D[T scalar.Float]() Ray2D[T] {
	return NewRay2D(linalg.ZeroVector2[T](), linalg.UnitVector2Y[T]())
}

// Contains reports whether p lies on the ray, origin included. A ray
// without direction contains only its origin.
func (r Ray2D[T]) Contains(p linalg.Vector2[T]) bool {
	o, d := r.Origin, r.Direction
	switch {
	case o.Equal(p):
		return true
	case d.IsZero():
		return false
	case scalar.IsZero(d.X):
		if scalar.AreNotEqual(p.X, o.X) {
			return false
		}
		return scalar.IsNegative(p.Y-o.Y) == scalar.IsNegative(d.Y)
	case scalar.IsZero(d.Y):
		if scalar.AreNotEqual(p.Y, o.Y) {
			return false
		}
		return scalar.IsNegative(p.X-o.X) == scalar.IsNegative(d.X)
	}
	tx := (p.X - o.X) / d.X
	ty := (p.Y - o.Y) / d.Y
	return scalar.AreEqual(tx, ty) && !scalar.IsNegative(tx)
}

// RayIntersection returns the point shared with o. Collinear rays that
// overlap report InfiniteIntersections and the origin lying on the other ray.
func (r Ray2D[T]) RayIntersection(o Ray2D[T]) (Intersections, linalg.Vector2[T]) {
	d1, d2 := r.Direction, o.Direction
	w := o.Origin.Sub(r.Origin)
	denom := d1.Cross(d2)

	if scalar.IsZero(denom) {
		if scalar.IsNotZero(w.Cross(d1)) {
			return NoIntersection, linalg.Vector2[T]{}
		}
		if scalar.IsPositive(d1.Dot(d2)) {
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
		return NoIntersection, linalg.Vector2[T]{}
	}

	t := w.Cross(d2) / denom
	u := w.Cross(d1) / denom
	if scalar.IsNegative(t) || scalar.IsNegative(u) {
		return NoIntersection, linalg.Vector2[T]{}
	}
	return OneIntersection, r.Point(t)
}

func (r Ray2D[T]) IntersectsRay(o Ray2D[T]) bool {
	n, _ := r.RayIntersection(o)
	return n != NoIntersection
}

// SegmentIntersection returns the point shared with s. When s lies along
// the ray, both endpoints on it give InfiniteIntersections and the nearer
// endpoint, one endpoint gives OneIntersection and that endpoint.
func (r Ray2D[T]) SegmentIntersection(s LineSegment2D[T]) (Intersections, linalg.Vector2[T]) {
	var none linalg.Vector2[T]
	p, d := r.Origin, r.Direction
	aux := s.B.Sub(s.A)
	denom := d.X*aux.Y - d.Y*aux.X

	if scalar.IsZero(denom) {
		aIn, bIn := r.Contains(s.A), r.Contains(s.B)
		switch {
		case aIn && bIn:
			if s.A.Distance(p) <= s.B.Distance(p) {
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

	num1 := aux.X*(p.Y-s.A.Y) + aux.Y*(s.A.X-p.X)
	if scalar.IsNegative(denom) != scalar.IsNegative(num1) && scalar.IsNotZero(num1) {
		return NoIntersection, none
	}
	num2 := d.X*(p.Y-s.A.Y) + d.Y*(s.A.X-p.X)
	if (scalar.IsNegative(denom) == scalar.IsNegative(num2) &&
		scalar.IsGreaterOrEquals(scalar.Abs(denom), scalar.Abs(num2))) || scalar.IsZero(num2) {
		return OneIntersection, p.Add(d.Scale(num1 / denom))
	}
	return NoIntersection, none
}

func (r Ray2D[T]) IntersectsSegment(s LineSegment2D[T]) bool {
	n, _ := r.SegmentIntersection(s)
	return n != NoIntersection
}

// TriangleIntersection returns up to two boundary points, nearest first.
func (r Ray2D[T]) TriangleIntersection(t Triangle2D[T]) (Intersections, linalg.Vector2[T], linalg.Vector2[T]) {
	h := boundaryHits[linalg.Vector2[T], T]{origin: r.Origin}
	h.add(r.SegmentIntersection(NewLineSegment2D(t.A, t.B)))
	h.add(r.SegmentIntersection(NewLineSegment2D(t.B, t.C)))
	h.add(r.SegmentIntersection(NewLineSegment2D(t.C, t.A)))
	return h.result()
}

func (r Ray2D[T]) IntersectsTriangle(t Triangle2D[T]) bool {
	return r.IntersectsSegment(NewLineSegment2D(t.A, t.B)) ||
		r.IntersectsSegment(NewLineSegment2D(t.B, t.C)) ||
		r.IntersectsSegment(NewLineSegment2D(t.C, t.A))
}

// QuadrilateralIntersection returns up to two boundary points, nearest first.
func (r Ray2D[T]) QuadrilateralIntersection(q Quadrilateral[T]) (Intersections, linalg.Vector2[T], linalg.Vector2[T]) {
	h := boundaryHits[linalg.Vector2[T], T]{origin: r.Origin}
	for _, e := range q.Edges() {
		h.add(r.SegmentIntersection(e))
	}
	return h.result()
}

func (r Ray2D[T]) IntersectsQuadrilateral(q Quadrilateral[T]) bool {
	for _, e := range q.Edges() {
		if r.IntersectsSegment(e) {
			return true
		}
	}
	return false
}

// Reflection bounces r off s. A ray parallel to s, or missing it, comes
// back unchanged.
func (r Ray2D[T]) Reflection(s LineSegment2D[T]) Ray2D[T] {
	if scalar.IsZero(r.Direction.Cross(s.B.Sub(s.A))) {
		return r
	}
	n, p := r.SegmentIntersection(s)
	if n != OneIntersection {
		return r
	}
	return NewRay2D(p, r.ReflectionDirection(s))
}

// ReflectionDirection mirrors the direction about the normal of s, ignoring
// whether r actually reaches s. s must not be degenerate.
func (r Ray2D[T]) ReflectionDirection(s LineSegment2D[T]) linalg.Vector2[T] {
	n := s.Normal()
	return r.Direction.Sub(n.Scale(2 * r.Direction.Dot(n)))
}

// Transform moves the origin with m and turns the direction with the
// linear part of m, then renormalizes it.
func (r Ray2D[T]) Transform(m linalg.AffineTransformer2[T]) Ray2D[T] {
	return NewRay2D(m.TransformPoint(r.Origin), m.TransformDirection(r.Direction).Normalize())
}

// TransformWithPivot transforms the origin as if pivot were the coordinate origin.
func (r Ray2D[T]) TransformWithPivot(m linalg.AffineTransformer2[T], pivot linalg.Vector2[T]) Ray2D[T] {
	o := m.TransformPoint(r.Origin.Sub(pivot)).Add(pivot)
	return NewRay2D(o, m.TransformDirection(r.Direction).Normalize())
}

func (r Ray2D[T]) Rotate(a scalar.Angle[T]) Ray2D[T] {
	return NewRay2D(r.Origin.Rotate(a), r.Direction.Rotate(a))
}

func (r Ray2D[T]) Translate(d linalg.Vector2[T]) Ray2D[T] {
	return NewRay2D(r.Origin.Add(d), r.Direction)
}
