package geometry

import (
	"testing"
)

var (
	benchBoolResult          bool
	benchIntersectionsResult Intersections
)

func BenchmarkLineSegment3DIntersectsHexahedron(b *testing.B) {
	box := HexahedronFromBox(v3(0, 0, 0), v3(1, 1, 1))
	s := NewLineSegment3D(v3(2, 2, 2), v3(3, 3, 3))
	for i := 0; i < b.N; i++ {
		benchBoolResult = s.IntersectsHexahedron(box)
	}
}

func BenchmarkHexahedronContains(b *testing.B) {
	box := HexahedronFromBox(v3(0, 0, 0), v3(1, 1, 1))
	p := v3(0.5, 0.25, 0.75)
	for i := 0; i < b.N; i++ {
		benchBoolResult = box.Contains(p)
	}
}

func BenchmarkQuadrilateralContains(b *testing.B) {
	p := v2(1, 1)
	for i := 0; i < b.N; i++ {
		benchBoolResult = dart.Contains(p)
	}
}

func BenchmarkRay2DQuadrilateralIntersection(b *testing.B) {
	r := NewRay2D(v2(-1, 0), v2(1, 0))
	q := UnitSquare[float64]()
	for i := 0; i < b.N; i++ {
		benchIntersectionsResult, _, _ = r.QuadrilateralIntersection(q)
	}
}

func BenchmarkRay3DTriangleIntersection(b *testing.B) {
	r := NewRay3D(v3(0.5, 0.5, 3), v3(0, 0, -1))
	tri := NewTriangle3D(v3(0, 0, 0), v3(2, 0, 0), v3(0, 2, 0))
	for i := 0; i < b.N; i++ {
		benchIntersectionsResult, _, _ = r.TriangleIntersection(tri)
	}
}
