package interop

import (
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
	"geomq/src/physics/geometry"
)

func ToSdfxV2[T scalar.Float](v linalg.Vector2[T]) v2.Vec {
	return v2.Vec{X: float64(v.X), Y: float64(v.Y)}
}

func FromSdfxV2[T scalar.Float](v v2.Vec) linalg.Vector2[T] {
	return linalg.NewVector2(T(v.X), T(v.Y))
}

func ToSdfxV3[T scalar.Float](v linalg.Vector3[T]) v3.Vec {
	return v3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func FromSdfxV3[T scalar.Float](v v3.Vec) linalg.Vector3[T] {
	return linalg.NewVector3(T(v.X), T(v.Y), T(v.Z))
}

// HexahedronFromSdfxBox builds the box spanned by two sdfx corners, the
// min/max pair sdfx bounding boxes carry.
func HexahedronFromSdfxBox[T scalar.Float](lo, hi v3.Vec) geometry.Hexahedron[T] {
	return geometry.HexahedronFromBox(FromSdfxV3[T](lo), FromSdfxV3[T](hi))
}
