package geometry

import (
	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

// IsPointInsidePlanes reports whether point lies behind every plane, the
// planes' normals pointing outwards. A positive margin grows the volume.
func IsPointInsidePlanes[T scalar.Float](planes []Plane[T], point linalg.Vector3[T], margin T) bool {
	for i := 0; i < len(planes); i++ {
		if scalar.IsGreaterThan(planes[i].SignedDistance(point)-margin, 0) {
			return false
		}
	}
	return true
}

// AreVerticesBehindPlane reports whether no vertex lies more than margin in
// front of plane.
func AreVerticesBehindPlane[T scalar.Float](plane Plane[T], vertices []linalg.Vector3[T], margin T) bool {
	for i := 0; i < len(vertices); i++ {
		if scalar.IsGreaterThan(plane.SignedDistance(vertices[i])-margin, 0) {
			return false
		}
	}
	return true
}

// SpaceRelationOfPoints classifies points against plane. Points on the
// plane count for either side.
func SpaceRelationOfPoints[T scalar.Float](plane Plane[T], points ...linalg.Vector3[T]) SpaceRelation {
	contained := true
	for _, p := range points {
		if !plane.Contains(p) {
			contained = false
			break
		}
	}
	switch {
	case contained:
		return Contained
	case AreVerticesBehindPlane(plane.Flip(), points, 0):
		return PositiveSide
	case AreVerticesBehindPlane(plane, points, 0):
		return NegativeSide
	}
	return BothSides
}

// pointsOnSameSideOfPlane reports whether p1 and p2 lie strictly on the same
// side of the plane through a, b and c.
func pointsOnSameSideOfPlane[T scalar.Float](p1, p2, a, b, c linalg.Vector3[T]) bool {
	pl := PlaneFromPoints(a, b, c)
	return scalar.IsGreaterThan(pl.SignedDistance(p1)*pl.SignedDistance(p2), 0)
}

// pointsOnSameSideOfLine3 reports whether p1 and p2 lie on the same side of
// the line through l1 and l2 within their common plane. A point on the line
// counts as either side.
func pointsOnSameSideOfLine3[T scalar.Float](p1, p2, l1, l2 linalg.Vector3[T]) bool {
	line := l2.Sub(l1)
	cp1 := line.Cross(p1.Sub(l1))
	cp2 := line.Cross(p2.Sub(l1))
	return !scalar.IsLessThan(cp1.Dot(cp2), 0)
}

// pointsOnSameSideOfLine2 is the 2D orientation test. A point on the line
// counts as either side.
func pointsOnSameSideOfLine2[T scalar.Float](p1, p2, l1, l2 linalg.Vector2[T]) bool {
	o1 := (l1.X-p1.X)*(l2.Y-p1.Y) - (l1.Y-p1.Y)*(l2.X-p1.X)
	o2 := (l1.X-p2.X)*(l2.Y-p2.Y) - (l1.Y-p2.Y)*(l2.X-p2.X)
	if scalar.IsZero(o1) || scalar.IsZero(o2) {
		return true
	}
	return scalar.IsNegative(o1) == scalar.IsNegative(o2)
}

func pointInTriangle2[T scalar.Float](p, a, b, c linalg.Vector2[T]) bool {
	return pointsOnSameSideOfLine2(p, a, b, c) &&
		pointsOnSameSideOfLine2(p, b, c, a) &&
		pointsOnSameSideOfLine2(p, c, a, b)
}

func pointInTriangle3[T scalar.Float](p, a, b, c linalg.Vector3[T]) bool {
	return pointsOnSameSideOfLine3(p, a, b, c) &&
		pointsOnSameSideOfLine3(p, b, a, c) &&
		pointsOnSameSideOfLine3(p, c, b, a)
}

// pointInQuadrilateral3 assumes p lies in the plane of the convex
// quadrilateral abcd.
func pointInQuadrilateral3[T scalar.Float](p, a, b, c, d linalg.Vector3[T]) bool {
	return pointsOnSameSideOfLine3(p, c, a, b) &&
		pointsOnSameSideOfLine3(p, a, b, c) &&
		pointsOnSameSideOfLine3(p, a, c, d) &&
		pointsOnSameSideOfLine3(p, c, d, a)
}
