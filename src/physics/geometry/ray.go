package geometry

import (
	"sort"

	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

// Ray starts at Origin and runs along Direction. Queries that measure
// along the ray expect a unit direction; Ray2D and Ray3D embed it.
type Ray[V linalg.Vector[V, T], T scalar.Float] struct {
	Origin, Direction V
}

// Point returns Origin + Direction·t.
func (r Ray[V, T]) Point(t T) V {
	return r.Origin.Add(r.Direction.Scale(t))
}

// OrbIntersection returns the points where r enters and leaves orb, nearest
// first. An origin inside the orb yields only the exit point. Direction
// needs not be unit length but must not be zero.
func (r Ray[V, T]) OrbIntersection(orb Orb[V, T]) (Intersections, V, V) {
	var none V
	a := r.Direction.Dot(r.Direction)
	scalar.Assert(scalar.IsNotZero(a), "Ray.OrbIntersection", "zero direction")

	oc := r.Origin.Sub(orb.Center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - orb.Radius*orb.Radius
	disc := b*b - a*c
	if scalar.IsNegative(disc) {
		return NoIntersection, none, none
	}
	if scalar.IsZero(disc) {
		t := -b / a
		if scalar.IsNegative(t) {
			return NoIntersection, none, none
		}
		return OneIntersection, r.Point(t), none
	}

	sq := scalar.Sqrt(disc)
	t1 := (-b - sq) / a
	t2 := (-b + sq) / a
	switch {
	case scalar.IsNegative(t2):
		return NoIntersection, none, none
	case scalar.IsNegative(t1):
		return OneIntersection, r.Point(t2), none
	}
	return TwoIntersections, r.Point(t1), r.Point(t2)
}

func (r Ray[V, T]) IntersectsOrb(orb Orb[V, T]) bool {
	n, _, _ := r.OrbIntersection(orb)
	return n != NoIntersection
}

func (r Ray[V, T]) Equal(o Ray[V, T]) bool {
	return r.Origin.Equal(o.Origin) && r.Direction.Equal(o.Direction)
}

func (r Ray[V, T]) String() string {
	return "R(" + r.Origin.String() + ", " + r.Direction.String() + ")"
}

// boundaryHits gathers the distinct points where a ray meets the edges of a
// polygon.
type boundaryHits[V linalg.Vector[V, T], T scalar.Float] struct {
	origin   V
	points   []V
	infinite bool
}

func (h *boundaryHits[V, T]) add(n Intersections, p V) {
	switch n {
	case NoIntersection:
		return
	case InfiniteIntersections:
		h.infinite = true
	}
	for _, q := range h.points {
		if q.Equal(p) {
			return
		}
	}
	h.points = append(h.points, p)
}

// result reports the two hits nearest to the origin.
func (h *boundaryHits[V, T]) result() (Intersections, V, V) {
	var none V
	sort.Slice(h.points, func(i, j int) bool {
		return h.points[i].Distance(h.origin) < h.points[j].Distance(h.origin)
	})
	switch {
	case len(h.points) == 0:
		return NoIntersection, none, none
	case h.infinite && len(h.points) == 1:
		return InfiniteIntersections, h.points[0], none
	case h.infinite:
		return InfiniteIntersections, h.points[0], h.points[1]
	case len(h.points) == 1:
		return OneIntersection, h.points[0], none
	}
	return TwoIntersections, h.points[0], h.points[1]
}
