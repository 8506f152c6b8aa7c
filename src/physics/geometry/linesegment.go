package geometry

import (
	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

// LineSegment joins A and B. Neither endpoint is privileged unless a method
// says otherwise. The dimension-specific LineSegment2D and LineSegment3D
// embed it.
type LineSegment[V linalg.Vector[V, T], T scalar.Float] struct {
	A, B V
}

func (s LineSegment[V, T]) Length() T {
	return s.A.Distance(s.B)
}

func (s LineSegment[V, T]) Center() V {
	return s.A.Lerp(0.5, s.B)
}

// Lerp returns the point at parameter t, A at 0 and B at 1.
func (s LineSegment[V, T]) Lerp(t T) V {
	return s.B.Lerp(t, s.A)
}

// ClosestPoint returns the point of s nearest to p.
func (s LineSegment[V, T]) ClosestPoint(p V) V {
	ab := s.B.Sub(s.A)
	sq := ab.SquaredLength()
	if scalar.IsZero(sq) {
		return s.A
	}
	t := scalar.Clamp(p.Sub(s.A).Dot(ab)/sq, 0, 1)
	return s.A.Add(ab.Scale(t))
}

func (s LineSegment[V, T]) MinDistanceToPoint(p V) T {
	return s.ClosestPoint(p).Distance(p)
}

func (s LineSegment[V, T]) MaxDistanceToPoint(p V) T {
	return max(s.A.Distance(p), s.B.Distance(p))
}

// ClosestPoints returns the pair of points, one on s and one on o, that
// are nearest to each other.
func (s LineSegment[V, T]) ClosestPoints(o LineSegment[V, T]) (V, V) {
	d1 := s.B.Sub(s.A)
	d2 := o.B.Sub(o.A)
	r := s.A.Sub(o.A)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var u, v T
	switch {
	case scalar.IsZero(a) && scalar.IsZero(e):
		return s.A, o.A
	case scalar.IsZero(a):
		v = scalar.Clamp(f/e, 0, 1)
	default:
		c := d1.Dot(r)
		if scalar.IsZero(e) {
			u = scalar.Clamp(-c/a, 0, 1)
			break
		}
		b := d1.Dot(d2)
		denom := a*e - b*b
		if scalar.IsNotZero(denom) {
			u = scalar.Clamp((b*f-c*e)/denom, 0, 1)
		}
		v = (b*u + f) / e
		if v < 0 {
			v = 0
			u = scalar.Clamp(-c/a, 0, 1)
		} else if v > 1 {
			v = 1
			u = scalar.Clamp((b-c)/a, 0, 1)
		}
	}
	return s.A.Add(d1.Scale(u)), o.A.Add(d2.Scale(v))
}

func (s LineSegment[V, T]) MinDistance(o LineSegment[V, T]) T {
	p, q := s.ClosestPoints(o)
	return p.Distance(q)
}

// MaxDistance is the distance between the farthest pair of endpoints.
func (s LineSegment[V, T]) MaxDistance(o LineSegment[V, T]) T {
	return max(s.A.Distance(o.A), s.A.Distance(o.B), s.B.Distance(o.A), s.B.Distance(o.B))
}

// Intersects reports whether the segments share at least one point.
func (s LineSegment[V, T]) Intersects(o LineSegment[V, T]) bool {
	return scalar.IsZero(s.MinDistance(o))
}

// IntersectsOrb reports whether any point of s lies in orb.
func (s LineSegment[V, T]) IntersectsOrb(orb Orb[V, T]) bool {
	return scalar.IsLessOrEquals(s.MinDistanceToPoint(orb.Center), orb.Radius)
}

// Equal compares endpoints in order.
func (s LineSegment[V, T]) Equal(o LineSegment[V, T]) bool {
	return s.A.Equal(o.A) && s.B.Equal(o.B)
}

func (s LineSegment[V, T]) String() string {
	return "LS(" + s.A.String() + ", " + s.B.String() + ")"
}
