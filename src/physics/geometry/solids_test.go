package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

func TestTriangleMeasures(t *testing.T) {
	t2 := NewTriangle2D(v2(0, 0), v2(2, 0), v2(0, 2))
	require.InDelta(t, 2.0, t2.Area(), 1e-12)
	require.InDelta(t, 4+2*math.Sqrt2, t2.Perimeter(), 1e-12)
	require.True(t, t2.Centroid().Equal(v2(2.0/3, 2.0/3)))

	t3 := NewTriangle3D(v3(0, 0, 1), v3(2, 0, 1), v3(0, 2, 1))
	require.InDelta(t, 2.0, t3.Area(), 1e-12)
	require.True(t, t3.Plane().Normalize().Equal(NewPlane(0.0, 0.0, 1.0, -1.0)), t3.Plane().String())
	require.Equal(t, "T(V2(0, 0), V2(2, 0), V2(0, 2))", t2.String())
}

func TestTriangleContains(t *testing.T) {
	t2 := NewTriangle2D(v2(0, 0), v2(2, 0), v2(0, 2))
	require.True(t, t2.Contains(v2(0.5, 0.5)))
	require.True(t, t2.Contains(v2(1, 1)), "edge")
	require.True(t, t2.Contains(v2(0, 0)), "vertex")
	require.False(t, t2.Contains(v2(1.5, 1.5)))
	require.False(t, t2.Contains(v2(-0.1, 0.5)))

	t3 := NewTriangle3D(v3(0, 0, 1), v3(2, 0, 1), v3(0, 2, 1))
	require.True(t, t3.Contains(v3(0.5, 0.5, 1)))
	require.False(t, t3.Contains(v3(0.5, 0.5, 1.5)), "off the plane")
	require.False(t, t3.Contains(v3(1.5, 1.5, 1)))
}

func TestOrb(t *testing.T) {
	o := NewOrb3D(v3(1, 1, 1), 2.0)

	require.True(t, o.Contains(v3(1, 1, 3)), "surface")
	require.True(t, o.Contains(v3(2, 2, 2)))
	require.False(t, o.Contains(v3(3, 3, 3)))
	require.True(t, o.Intersects(NewOrb3D(v3(5, 1, 1), 2.0)), "touching")
	require.False(t, o.Intersects(NewOrb3D(v3(5, 1, 1), 1.5)))
	require.True(t, NewOrb2D(v2(0, 0), 1.0).Equal(NewOrb2D(v2(0, 0), 1.0)))
	require.Equal(t, "O(V2(0, 0.5), 1.5)", NewOrb2D(v2(0, 0.5), 1.5).String())
}

func TestHexahedronPlanesFaceOutwards(t *testing.T) {
	boxes := []Hexahedron[float64]{
		HexahedronFromBox(v3(0, 0, 0), v3(1, 1, 1)),
		HexahedronFromBox(v3(-3, 2, -1), v3(4, 5, 0)),
		HexahedronFromBox(v3(0, 0, 0), v3(1, 1, 1)).Transform(
			linalg.QuaternionFromEuler(scalar.Radians(0.3), scalar.Radians(-1.1), scalar.Radians(2.0))),
	}
	for _, h := range boxes {
		t.Run(h.String(), func(t *testing.T) {
			center := linalg.ZeroVector3[float64]()
			for _, v := range h.Vertices() {
				center = center.Add(v)
			}
			center = center.Scale(1.0 / 8)

			planes := h.Planes()
			require.Len(t, planes, 6)
			for _, p := range planes {
				require.True(t, scalar.IsNegative(p.SignedDistance(center)), p.String())
			}
			require.True(t, h.Contains(center))
		})
	}
}

func TestHexahedronContains(t *testing.T) {
	box := HexahedronFromBox(v3(0, 0, 0), v3(2, 1, 1))
	tests := []struct {
		name string
		p    linalg.Vector3[float64]
		want bool
	}{
		{"inside", v3(1, 0.5, 0.5), true},
		{"face", v3(2, 0.5, 0.5), true},
		{"corner", v3(0, 0, 0), true},
		{"beyond x", v3(2.1, 0.5, 0.5), false},
		{"below", v3(1, 0.5, -0.1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, box.Contains(tt.p))
		})
	}
}

func TestHexahedronSpaceRelation(t *testing.T) {
	box := HexahedronFromBox(v3(0, 0, 0), v3(1, 1, 1))
	up := linalg.UnitVector3Z[float64]()

	require.Equal(t, NegativeSide, box.SpaceRelation(PlaneFromNormal(up, v3(0, 0, 5))))
	require.Equal(t, NegativeSide, box.SpaceRelation(PlaneFromNormal(up, v3(0, 0, 1))), "touching")
	require.Equal(t, PositiveSide, box.SpaceRelation(PlaneFromNormal(up, v3(0, 0, -5))))
	require.Equal(t, BothSides, box.SpaceRelation(PlaneFromNormal(up, v3(0, 0, 0.5))))
}

func TestHexahedronTransform(t *testing.T) {
	box := HexahedronFromBox(v3(0, 0, 0), v3(1, 1, 1))
	moved := box.Transform(linalg.NewTranslationMatrix4x4(10.0, 0.0, 0.0))

	require.True(t, moved.Contains(v3(10.5, 0.5, 0.5)))
	require.False(t, moved.Contains(v3(0.5, 0.5, 0.5)))
	require.True(t, moved.A.Equal(box.A.Add(v3(10, 0, 0))))
}
