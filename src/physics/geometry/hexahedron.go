package geometry

import (
	"strings"

	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

// Hexahedron is a convex volume with faces ABCD and EFGH joined by the edges
// AE, BH, CG and DF.
type Hexahedron[T scalar.Float] struct {
	A, B, C, D, E, F, G, H linalg.Vector3[T]
}

func NewHexahedron[T scalar.Float](a, b, c, d, e, f, g, h linalg.Vector3[T]) Hexahedron[T] {
	return Hexahedron[T]{A: a, B: b, C: c, D: d, E: e, F: f, G: g, H: h}
}

// HexahedronFromBox builds the axis aligned box spanned by lo and hi.
// ABCD is the top face at hi.Z.
func HexahedronFromBox[T scalar.Float](lo, hi linalg.Vector3[T]) Hexahedron[T] {
	return NewHexahedron(
		linalg.NewVector3(lo.X, lo.Y, hi.Z),
		linalg.NewVector3(hi.X, lo.Y, hi.Z),
		linalg.NewVector3(hi.X, hi.Y, hi.Z),
		linalg.NewVector3(lo.X, hi.Y, hi.Z),
		linalg.NewVector3(lo.X, lo.Y, lo.Z),
		linalg.NewVector3(lo.X, hi.Y, lo.Z),
		linalg.NewVector3(hi.X, hi.Y, lo.Z),
		linalg.NewVector3(hi.X, lo.Y, lo.Z),
	)
}

// Faces lists ABCD, EFGH, ABHE, BCGH, ADFE and CDFG.
func (h Hexahedron[T]) Faces() [6][4]linalg.Vector3[T] {
	return [6][4]linalg.Vector3[T]{
		{h.A, h.B, h.C, h.D},
		{h.E, h.F, h.G, h.H},
		{h.A, h.B, h.H, h.E},
		{h.B, h.C, h.G, h.H},
		{h.A, h.D, h.F, h.E},
		{h.C, h.D, h.F, h.G},
	}
}

// Planes returns the face planes oriented outwards.
func (h Hexahedron[T]) Planes() []Plane[T] {
	faces := h.Faces()
	interior := [6]linalg.Vector3[T]{h.E, h.A, h.C, h.A, h.C, h.A}
	planes := make([]Plane[T], 0, 6)
	for i, f := range faces {
		p := PlaneFromPoints(f[0], f[1], f[2])
		if scalar.IsPositive(p.SignedDistance(interior[i])) {
			p = p.Flip()
		}
		planes = append(planes, p)
	}
	return planes
}

// Contains includes the boundary.
func (h Hexahedron[T]) Contains(p linalg.Vector3[T]) bool {
	return IsPointInsidePlanes(h.Planes(), p, 0)
}

func (h Hexahedron[T]) Vertices() []linalg.Vector3[T] {
	return []linalg.Vector3[T]{h.A, h.B, h.C, h.D, h.E, h.F, h.G, h.H}
}

// SpaceRelation places the whole volume relative to p.
func (h Hexahedron[T]) SpaceRelation(p Plane[T]) SpaceRelation {
	return SpaceRelationOfPoints(p, h.Vertices()...)
}

// Transform applies t to every vertex, around the origin.
func (h Hexahedron[T]) Transform(t linalg.Transformer3[T]) Hexahedron[T] {
	v := h.Vertices()
	linalg.TransformPoints3(t, v)
	return NewHexahedron(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
}

func (h Hexahedron[T]) String() string {
	var sb strings.Builder
	sb.WriteString("H(")
	for i, v := range h.Vertices() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
