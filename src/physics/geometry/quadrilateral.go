package geometry

import (
	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

// Quadrilateral is a 2D polygon with edges AB, BC, CD and DA. It may be
// convex, concave or crossed; none of that is stored.
type Quadrilateral[T scalar.Float] struct {
	A, B, C, D linalg.Vector2[T]
}

func NewQuadrilateral[T scalar.Float](a, b, c, d linalg.Vector2[T]) Quadrilateral[T] {
	return Quadrilateral[T]{A: a, B: b, C: c, D: d}
}

// UnitSquare is centered on the origin with side 1.
func UnitSquare[T scalar.Float]() Quadrilateral[T] {
	return NewQuadrilateral(
		linalg.NewVector2[T](-0.5, 0.5),
		linalg.NewVector2[T](0.5, 0.5),
		linalg.NewVector2[T](0.5, -0.5),
		linalg.NewVector2[T](-0.5, -0.5),
	)
}

// IsCrossed reports whether two opposite edges cross each other.
func (q Quadrilateral[T]) IsCrossed() bool {
	return (!pointsOnSameSideOfLine2(q.A, q.D, q.B, q.C) && !pointsOnSameSideOfLine2(q.C, q.B, q.A, q.D)) ||
		(!pointsOnSameSideOfLine2(q.A, q.B, q.D, q.C) && !pointsOnSameSideOfLine2(q.C, q.D, q.A, q.B))
}

// IsConvex is true for crossed quadrilaterals and for those whose
// diagonals intersect.
func (q Quadrilateral[T]) IsConvex() bool {
	if q.IsCrossed() {
		return true
	}
	return NewLineSegment2D(q.A, q.C).Intersects(NewLineSegment2D(q.B, q.D))
}

func (q Quadrilateral[T]) IsConcave() bool {
	return !q.IsConvex()
}

// isConcaveHere reports whether the corner at vertex, between end1 and end2,
// is the reflex one.
func (q Quadrilateral[T]) isConcaveHere(vertex, end1, end2, opposite linalg.Vector2[T]) bool {
	if q.IsConvex() {
		return false
	}
	if !pointsOnSameSideOfLine2(opposite, vertex, end1, end2) {
		return false
	}
	diag := NewLineSegment2D(end1, end2)
	return diag.MinDistanceToPoint(vertex) < diag.MinDistanceToPoint(opposite)
}

func (q Quadrilateral[T]) cornerAngle(vertex, end1, end2, opposite linalg.Vector2[T]) scalar.Angle[T] {
	a := end2.Sub(vertex).AngleTo(end1.Sub(vertex))
	if q.isConcaveHere(vertex, end1, end2, opposite) {
		return a.Complement()
	}
	return a
}

// AngleA is the interior angle at A; a reflex corner measures more than half
// a revolution.
func (q Quadrilateral[T]) AngleA() scalar.Angle[T] {
	return q.cornerAngle(q.A, q.B, q.D, q.C)
}

func (q Quadrilateral[T]) AngleB() scalar.Angle[T] {
	return q.cornerAngle(q.B, q.A, q.C, q.D)
}

func (q Quadrilateral[T]) AngleC() scalar.Angle[T] {
	return q.cornerAngle(q.C, q.B, q.D, q.A)
}

func (q Quadrilateral[T]) AngleD() scalar.Angle[T] {
	return q.cornerAngle(q.D, q.A, q.C, q.B)
}

// Contains includes the edges. Concave quadrilaterals are split along the
// inner diagonal, crossed ones into the two triangles around the crossing.
func (q Quadrilateral[T]) Contains(p linalg.Vector2[T]) bool {
	if q.IsCrossed() {
		if n, x := NewLineSegment2D(q.A, q.B).Intersection(NewLineSegment2D(q.C, q.D)); n == OneIntersection {
			return pointInTriangle2(p, x, q.B, q.C) || pointInTriangle2(p, x, q.D, q.A)
		}
		_, x := NewLineSegment2D(q.B, q.C).Intersection(NewLineSegment2D(q.D, q.A))
		return pointInTriangle2(p, q.A, q.B, x) || pointInTriangle2(p, x, q.C, q.D)
	}
	if q.IsConvex() || q.isConcaveHere(q.A, q.B, q.D, q.C) || q.isConcaveHere(q.C, q.B, q.D, q.A) {
		return pointInTriangle2(p, q.A, q.B, q.C) || pointInTriangle2(p, q.A, q.C, q.D)
	}
	return pointInTriangle2(p, q.B, q.C, q.D) || pointInTriangle2(p, q.B, q.D, q.A)
}

// Intersects reports whether the quadrilaterals overlap, one enclosing the
// other included.
func (q Quadrilateral[T]) Intersects(o Quadrilateral[T]) bool {
	return NewLineSegment2D(q.A, q.B).IntersectsQuadrilateral(o) ||
		NewLineSegment2D(q.B, q.C).IntersectsQuadrilateral(o) ||
		NewLineSegment2D(q.C, q.D).IntersectsQuadrilateral(o) ||
		NewLineSegment2D(q.D, q.A).IntersectsQuadrilateral(o) ||
		q.Contains(o.A)
}

func (q Quadrilateral[T]) Edges() [4]LineSegment2D[T] {
	return [4]LineSegment2D[T]{
		NewLineSegment2D(q.A, q.B),
		NewLineSegment2D(q.B, q.C),
		NewLineSegment2D(q.C, q.D),
		NewLineSegment2D(q.D, q.A),
	}
}

func (q Quadrilateral[T]) points() []linalg.Vector2[T] {
	return []linalg.Vector2[T]{q.A, q.B, q.C, q.D}
}

func quadrilateralFrom[T scalar.Float](pts []linalg.Vector2[T]) Quadrilateral[T] {
	return NewQuadrilateral(pts[0], pts[1], pts[2], pts[3])
}

// Rotate rotates around the origin.
func (q Quadrilateral[T]) Rotate(a scalar.Angle[T]) Quadrilateral[T] {
	pts := q.points()
	linalg.RotatePoints2(a, pts)
	return quadrilateralFrom(pts)
}

func (q Quadrilateral[T]) RotateWithPivot(a scalar.Angle[T], pivot linalg.Vector2[T]) Quadrilateral[T] {
	pts := q.points()
	linalg.RotatePoints2WithPivot(a, pivot, pts)
	return quadrilateralFrom(pts)
}

func (q Quadrilateral[T]) Translate(d linalg.Vector2[T]) Quadrilateral[T] {
	pts := q.points()
	linalg.TranslatePoints2(d, pts)
	return quadrilateralFrom(pts)
}

func (q Quadrilateral[T]) Scale(f linalg.Vector2[T]) Quadrilateral[T] {
	pts := q.points()
	linalg.ScalePoints2(f, pts)
	return quadrilateralFrom(pts)
}

func (q Quadrilateral[T]) ScaleWithPivot(f, pivot linalg.Vector2[T]) Quadrilateral[T] {
	pts := q.points()
	linalg.ScalePoints2WithPivot(f, pivot, pts)
	return quadrilateralFrom(pts)
}

func (q Quadrilateral[T]) Transform(m linalg.Transformer2[T]) Quadrilateral[T] {
	pts := q.points()
	linalg.TransformPoints2(m, pts)
	return quadrilateralFrom(pts)
}

func (q Quadrilateral[T]) TransformWithPivot(m linalg.Transformer2[T], pivot linalg.Vector2[T]) Quadrilateral[T] {
	pts := q.points()
	linalg.TransformPoints2WithPivot(m, pivot, pts)
	return quadrilateralFrom(pts)
}

func (q Quadrilateral[T]) Equal(o Quadrilateral[T]) bool {
	return q.A.Equal(o.A) && q.B.Equal(o.B) && q.C.Equal(o.C) && q.D.Equal(o.D)
}

func (q Quadrilateral[T]) String() string {
	return "QL(" + q.A.String() + ", " + q.B.String() + ", " + q.C.String() + ", " + q.D.String() + ")"
}
