package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

func TestLineSegmentLerp(t *testing.T) {
	s := NewLineSegment3D(v3(1, 2, 3), v3(-4, 0, 8))

	require.True(t, s.Lerp(0).Equal(s.A))
	require.True(t, s.Lerp(1).Equal(s.B))
	require.True(t, s.Lerp(0.5).Equal(s.Center()))
	require.True(t, s.Lerp(0.2).Equal(v3(0, 1.6, 4)), s.Lerp(0.2).String())
}

func TestLineSegmentDistances(t *testing.T) {
	s := NewLineSegment2D(v2(0, 0), v2(1, 0))
	o := NewLineSegment2D(v2(0, 1), v2(1, 1))

	require.InDelta(t, 1.0, s.Length(), 1e-12)
	require.InDelta(t, 1.0, s.MinDistance(o.LineSegment), 1e-12)
	require.InDelta(t, math.Sqrt2, s.MaxDistance(o.LineSegment), 1e-12)
	require.InDelta(t, 2.0, s.MinDistanceToPoint(v2(3, 0)), 1e-12)
	require.InDelta(t, 0.5, s.MinDistanceToPoint(v2(0.3, -0.5)), 1e-12)
	require.InDelta(t, 3.0, s.MaxDistanceToPoint(v2(3, 0)), 1e-12)
	require.True(t, s.ClosestPoint(v2(0.3, -0.5)).Equal(v2(0.3, 0)))
}

func TestLineSegmentClosestPoints3D(t *testing.T) {
	s := NewLineSegment3D(v3(-1, 0, 0), v3(1, 0, 0))
	o := NewLineSegment3D(v3(0, -1, 2), v3(0, 1, 2))

	p, q := s.ClosestPoints(o.LineSegment)
	require.True(t, p.Equal(v3(0, 0, 0)), p.String())
	require.True(t, q.Equal(v3(0, 0, 2)), q.String())
	require.InDelta(t, 2.0, s.MinDistance(o.LineSegment), 1e-12)
	require.False(t, s.Intersects(o.LineSegment))
	require.True(t, s.Intersects(NewLineSegment3D(v3(0, -1, 0), v3(0, 1, 0)).LineSegment))
}

func TestLineSegment2DIntersection(t *testing.T) {
	tests := []struct {
		name  string
		s, o  LineSegment2D[float64]
		want  Intersections
		point linalg.Vector2[float64]
	}{
		{"crossing", NewLineSegment2D(v2(0, 0), v2(2, 2)), NewLineSegment2D(v2(0, 2), v2(2, 0)), OneIntersection, v2(1, 1)},
		{"touching", NewLineSegment2D(v2(0, 0), v2(1, 0)), NewLineSegment2D(v2(1, 0), v2(1, 5)), OneIntersection, v2(1, 0)},
		{"collinear end to end", NewLineSegment2D(v2(0, 0), v2(1, 0)), NewLineSegment2D(v2(1, 0), v2(2, 0)), OneIntersection, v2(1, 0)},
		{"overlapping", NewLineSegment2D(v2(0, 0), v2(2, 0)), NewLineSegment2D(v2(1, 0), v2(3, 0)), InfiniteIntersections, v2(1, 0)},
		{"collinear apart", NewLineSegment2D(v2(0, 0), v2(1, 0)), NewLineSegment2D(v2(2, 0), v2(3, 0)), NoIntersection, v2(0, 0)},
		{"parallel", NewLineSegment2D(v2(0, 0), v2(1, 0)), NewLineSegment2D(v2(0, 1), v2(1, 1)), NoIntersection, v2(0, 0)},
		{"short", NewLineSegment2D(v2(0, 0), v2(1, 1)), NewLineSegment2D(v2(3, 0), v2(2, 1)), NoIntersection, v2(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, p := tt.s.Intersection(tt.o)
			require.Equal(t, tt.want, n)
			if n != NoIntersection {
				require.True(t, p.Equal(tt.point), p.String())
			}
			require.Equal(t, n != NoIntersection, tt.o.Intersects(tt.s))
		})
	}
}

func TestLineSegment2DAgainstShapes(t *testing.T) {
	tri := NewTriangle2D(v2(0, 0), v2(4, 0), v2(0, 4))
	require.True(t, NewLineSegment2D(v2(-1, 1), v2(1, 1)).IntersectsTriangle(tri))
	require.True(t, NewLineSegment2D(v2(0.5, 0.5), v2(1, 1)).IntersectsTriangle(tri), "inside")
	require.False(t, NewLineSegment2D(v2(3, 3), v2(5, 3)).IntersectsTriangle(tri))

	sq := UnitSquare[float64]()
	require.True(t, NewLineSegment2D(v2(-1, 0), v2(0, 0)).IntersectsQuadrilateral(sq))
	require.True(t, NewLineSegment2D(v2(0.1, 0), v2(0.2, 0)).IntersectsQuadrilateral(sq), "inside")
	require.False(t, NewLineSegment2D(v2(1, 1), v2(2, 2)).IntersectsQuadrilateral(sq))
}

func TestLineSegment2DTransforms(t *testing.T) {
	s := NewLineSegment2D(v2(1, 0), v2(2, 0))

	r := s.Rotate(scalar.Degrees(90.0))
	require.True(t, r.Equal(NewLineSegment2D(v2(0, 1), v2(0, 2)).LineSegment), r.String())

	r = s.RotateWithPivot(scalar.Degrees(180.0), v2(1, 0))
	require.True(t, r.Equal(NewLineSegment2D(v2(1, 0), v2(0, 0)).LineSegment), r.String())

	require.True(t, s.Translate(v2(0, 3)).Equal(NewLineSegment2D(v2(1, 3), v2(2, 3)).LineSegment))
	require.True(t, s.Scale(v2(2, 1)).Equal(NewLineSegment2D(v2(2, 0), v2(4, 0)).LineSegment))
	require.True(t, s.ScaleWithPivot(v2(2, 1), v2(1, 0)).Equal(NewLineSegment2D(v2(1, 0), v2(3, 0)).LineSegment))

	m := linalg.NewTransformationMatrix3x3(v2(0, 1), scalar.Degrees(90.0), v2(1, 1))
	moved := s.Transform(m)
	require.True(t, moved.Equal(NewLineSegment2D(v2(0, 2), v2(0, 3)).LineSegment), moved.String())

	require.True(t, s.Normal().Equal(v2(0, 1)))
	require.True(t, s.Equal(NewLineSegment2D(v2(1, 0), v2(2, 0)).LineSegment), "receiver untouched")
}

func TestLineSegment3DPlane(t *testing.T) {
	p := groundPlane()
	tests := []struct {
		name string
		s    LineSegment3D[float64]
		want bool
	}{
		{"straddling", NewLineSegment3D(v3(0, 0, -1), v3(0, 0, 1)), true},
		{"above", NewLineSegment3D(v3(0, 0, 1), v3(0, 0, 2)), false},
		{"below", NewLineSegment3D(v3(0, 0, -1), v3(3, 0, -2)), false},
		{"touching", NewLineSegment3D(v3(0, 0, 0), v3(0, 0, 1)), true},
		{"lying", NewLineSegment3D(v3(0, 0, 0), v3(1, 1, 0)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.s.IntersectsPlane(p))
			n, _ := tt.s.PlaneIntersection(p)
			require.Equal(t, tt.want, n != NoIntersection)
		})
	}

	n, x := NewLineSegment3D(v3(1, 1, -1), v3(3, 1, 3)).PlaneIntersection(p)
	require.Equal(t, OneIntersection, n)
	require.True(t, x.Equal(v3(1.5, 1, 0)), x.String())

	s := NewLineSegment3D(v3(0, 0, 2), v3(4, 0, -3))
	require.InDelta(t, 3.0, s.MaxDistanceToPlane(p), 1e-12)
	require.InDelta(t, 2.0, s.MinDistanceToPlane(p), 1e-12)
	require.Equal(t, BothSides, s.SpaceRelation(p))
	require.Equal(t, Contained, s.ProjectToPlane(p).SpaceRelation(p))
	require.True(t, s.ProjectToPlane(p).Equal(NewLineSegment3D(v3(0, 0, 0), v3(4, 0, 0)).LineSegment))
}

// The tolerance applies to the product of the endpoint distances, so a
// short crossing can vanish in single precision.
func TestLineSegment3DPlaneNearMiss(t *testing.T) {
	require.True(t, NewLineSegment3D(v3(0, 0, 1e-4), v3(0, 0, -1e-4)).IntersectsPlane(groundPlane()))

	ground32 := PlaneFromPoints(toV3[float32](v3(0, 0, 0)), toV3[float32](v3(1, 0, 0)), toV3[float32](v3(0, 1, 0)))
	short := NewLineSegment3D(toV3[float32](v3(0, 0, 1e-4)), toV3[float32](v3(0, 0, -1e-4)))
	require.False(t, short.IntersectsPlane(ground32))
	long := NewLineSegment3D(toV3[float32](v3(0, 0, 1e-2)), toV3[float32](v3(0, 0, -1e-2)))
	require.True(t, long.IntersectsPlane(ground32))
}

func TestLineSegment3DTriangleAndQuadrilateral(t *testing.T) {
	tri := NewTriangle3D(v3(0, 0, 0), v3(2, 0, 0), v3(0, 2, 0))
	tests := []struct {
		name string
		s    LineSegment3D[float64]
		want bool
	}{
		{"piercing", NewLineSegment3D(v3(0.5, 0.5, -1), v3(0.5, 0.5, 1)), true},
		{"piercing outside", NewLineSegment3D(v3(3, 3, -1), v3(3, 3, 1)), false},
		{"short", NewLineSegment3D(v3(0.5, 0.5, 1), v3(0.5, 0.5, 2)), false},
		{"coplanar crossing", NewLineSegment3D(v3(-1, 0.5, 0), v3(3, 0.5, 0)), true},
		{"coplanar inside", NewLineSegment3D(v3(0.2, 0.2, 0), v3(0.4, 0.2, 0)), true},
		{"coplanar outside", NewLineSegment3D(v3(3, 3, 0), v3(4, 3, 0)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.s.IntersectsTriangle(tri))
		})
	}

	a, b, c, d := v3(0, 0, 1), v3(1, 0, 1), v3(1, 1, 1), v3(0, 1, 1)
	require.True(t, NewLineSegment3D(v3(0.9, 0.9, 0), v3(0.9, 0.9, 2)).IntersectsQuadrilateral(a, b, c, d))
	require.False(t, NewLineSegment3D(v3(1.1, 0.9, 0), v3(1.1, 0.9, 2)).IntersectsQuadrilateral(a, b, c, d))
}

func TestLineSegment3DHexahedron(t *testing.T) {
	box := HexahedronFromBox(v3(0, 0, 0), v3(1, 1, 1))

	require.True(t, NewLineSegment3D(v3(-1, 0.5, 0.5), v3(2, 0.5, 0.5)).IntersectsHexahedron(box))
	require.True(t, NewLineSegment3D(v3(0.2, 0.2, 0.2), v3(0.8, 0.8, 0.8)).IntersectsHexahedron(box), "inside")
	require.False(t, NewLineSegment3D(v3(2, 2, 2), v3(3, 3, 3)).IntersectsHexahedron(box))
}

func TestLineSegment3DTransform(t *testing.T) {
	s := NewLineSegment3D(v3(1, 0, 0), v3(2, 0, 0))
	q := linalg.QuaternionFromAxisAngle(linalg.UnitVector3Z[float64](), scalar.Degrees(90.0))

	r := s.Transform(q)
	require.True(t, r.Equal(NewLineSegment3D(v3(0, 1, 0), v3(0, 2, 0)).LineSegment), r.String())

	r = s.TransformFromPivot(q, v3(1, 0, 0))
	require.True(t, r.Equal(NewLineSegment3D(v3(1, 0, 0), v3(1, 1, 0)).LineSegment), r.String())

	r = s.Transform(linalg.NewTranslationMatrix4x4(0.0, 0.0, 5.0))
	require.True(t, r.Equal(NewLineSegment3D(v3(1, 0, 5), v3(2, 0, 5)).LineSegment), r.String())
}

func TestLineSegmentOrb(t *testing.T) {
	orb := NewOrb3D(v3(0, 2, 0), 1.0)

	require.False(t, NewLineSegment3D(v3(-1, 0, 0), v3(1, 0, 0)).IntersectsOrb(orb))
	require.True(t, NewLineSegment3D(v3(-1, 1, 0), v3(1, 1, 0)).IntersectsOrb(orb))
	require.True(t, NewLineSegment3D(v3(0, 1.5, 0), v3(0, 2, 0)).IntersectsOrb(orb))
}

func TestLineSegmentString(t *testing.T) {
	require.Equal(t, "LS(V2(0, 0), V2(1, 0))", UnitLine2D[float64]().String())
	require.Equal(t, "LS(V3(0, 0, 0), V3(0, 0, 0))", LineZero3D[float32]().String())
}
