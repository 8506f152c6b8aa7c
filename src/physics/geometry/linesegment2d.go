package geometry

import (
	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

type LineSegment2D[T scalar.Float] struct {
	LineSegment[linalg.Vector2[T], T]
}

func NewLineSegment2D[T scalar.Float](a, b linalg.Vector2[T]) LineSegment2D[T] {
	return LineSegment2D[T]{LineSegment[linalg.Vector2[T], T]{A: a, B: b}}
}

// UnitLine2D goes from the origin to (1, 0).
func UnitLine2D[T scalar.Float]() LineSegment2D[T] {
	return NewLineSegment2D(linalg.ZeroVector2[T](), linalg.UnitVector2X[T]())
}

func LineZero2D[T scalar.Float]() LineSegment2D[T] {
	return NewLineSegment2D(linalg.ZeroVector2[T](), linalg.ZeroVector2[T]())
}

// Intersection returns the point shared with o. Overlapping collinear
// segments report InfiniteIntersections and the first shared endpoint.
func (s LineSegment2D[T]) Intersection(o LineSegment2D[T]) (Intersections, linalg.Vector2[T]) {
	d1 := s.B.Sub(s.A)
	d2 := o.B.Sub(o.A)
	denom := d1.Cross(d2)
	w := o.A.Sub(s.A)

	if scalar.IsZero(denom) {
		if scalar.IsNotZero(w.Cross(d1)) && scalar.IsNotZero(w.Cross(d2)) {
			return NoIntersection, linalg.Vector2[T]{}
		}
		return s.collinearIntersection(o)
	}

	t := w.Cross(d2) / denom
	u := w.Cross(d1) / denom
	if scalar.IsNegative(t) || scalar.IsGreaterThan(t, 1) ||
		scalar.IsNegative(u) || scalar.IsGreaterThan(u, 1) {
		return NoIntersection, linalg.Vector2[T]{}
	}
	return OneIntersection, s.A.Add(d1.Scale(t))
}

func (s LineSegment2D[T]) collinearIntersection(o LineSegment2D[T]) (Intersections, linalg.Vector2[T]) {
	var shared []linalg.Vector2[T]
	add := func(p linalg.Vector2[T]) {
		for _, q := range shared {
			if q.Equal(p) {
				return
			}
		}
		shared = append(shared, p)
	}
	if s.containsCollinear(o.A) {
		add(o.A)
	}
	if s.containsCollinear(o.B) {
		add(o.B)
	}
	if o.containsCollinear(s.A) {
		add(s.A)
	}
	if o.containsCollinear(s.B) {
		add(s.B)
	}
	switch len(shared) {
	case 0:
		return NoIntersection, linalg.Vector2[T]{}
	case 1:
		return OneIntersection, shared[0]
	}
	return InfiniteIntersections, shared[0]
}

// containsCollinear assumes p lies on the line through s.
func (s LineSegment2D[T]) containsCollinear(p linalg.Vector2[T]) bool {
	return scalar.IsLessOrEquals(p.Distance(s.A)+p.Distance(s.B), s.Length())
}

func (s LineSegment2D[T]) Intersects(o LineSegment2D[T]) bool {
	n, _ := s.Intersection(o)
	return n != NoIntersection
}

// IntersectsTriangle reports whether s crosses an edge of t or lies inside it.
func (s LineSegment2D[T]) IntersectsTriangle(t Triangle2D[T]) bool {
	return s.Intersects(NewLineSegment2D(t.A, t.B)) ||
		s.Intersects(NewLineSegment2D(t.B, t.C)) ||
		s.Intersects(NewLineSegment2D(t.C, t.A)) ||
		t.Contains(s.A)
}

// IntersectsQuadrilateral reports whether s crosses an edge of q or lies inside it.
func (s LineSegment2D[T]) IntersectsQuadrilateral(q Quadrilateral[T]) bool {
	return s.Intersects(NewLineSegment2D(q.A, q.B)) ||
		s.Intersects(NewLineSegment2D(q.B, q.C)) ||
		s.Intersects(NewLineSegment2D(q.C, q.D)) ||
		s.Intersects(NewLineSegment2D(q.D, q.A)) ||
		q.Contains(s.A)
}

// Normal is the unit vector perpendicular to s, counterclockwise from A→B.
func (s LineSegment2D[T]) Normal() linalg.Vector2[T] {
	return s.B.Sub(s.A).Perpendicular().Normalize()
}

func (s LineSegment2D[T]) points() []linalg.Vector2[T] {
	return []linalg.Vector2[T]{s.A, s.B}
}

func lineSegment2DFrom[T scalar.Float](pts []linalg.Vector2[T]) LineSegment2D[T] {
	return NewLineSegment2D(pts[0], pts[1])
}

func (s LineSegment2D[T]) Translate(d linalg.Vector2[T]) LineSegment2D[T] {
	pts := s.points()
	linalg.TranslatePoints2(d, pts)
	return lineSegment2DFrom(pts)
}

// Rotate rotates around the origin.
func (s LineSegment2D[T]) Rotate(a scalar.Angle[T]) LineSegment2D[T] {
	pts := s.points()
	linalg.RotatePoints2(a, pts)
	return lineSegment2DFrom(pts)
}

func (s LineSegment2D[T]) RotateWithPivot(a scalar.Angle[T], pivot linalg.Vector2[T]) LineSegment2D[T] {
	pts := s.points()
	linalg.RotatePoints2WithPivot(a, pivot, pts)
	return lineSegment2DFrom(pts)
}

func (s LineSegment2D[T]) Scale(f linalg.Vector2[T]) LineSegment2D[T] {
	pts := s.points()
	linalg.ScalePoints2(f, pts)
	return lineSegment2DFrom(pts)
}

func (s LineSegment2D[T]) ScaleWithPivot(f, pivot linalg.Vector2[T]) LineSegment2D[T] {
	pts := s.points()
	linalg.ScalePoints2WithPivot(f, pivot, pts)
	return lineSegment2DFrom(pts)
}

func (s LineSegment2D[T]) Transform(m linalg.Transformer2[T]) LineSegment2D[T] {
	pts := s.points()
	linalg.TransformPoints2(m, pts)
	return lineSegment2DFrom(pts)
}

func (s LineSegment2D[T]) TransformWithPivot(m linalg.Transformer2[T], pivot linalg.Vector2[T]) LineSegment2D[T] {
	pts := s.points()
	linalg.TransformPoints2WithPivot(m, pivot, pts)
	return lineSegment2DFrom(pts)
}
