package interop

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"

	"geomq/src/math/linalg"
	"geomq/src/math/scalar"
)

func ToR3[T scalar.Float](v linalg.Vector3[T]) r3.Vector {
	return r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func FromR3[T scalar.Float](v r3.Vector) linalg.Vector3[T] {
	return linalg.NewVector3(T(v.X), T(v.Y), T(v.Z))
}

// ToS1 converts an angle; s1.Angle is in radians too.
func ToS1[T scalar.Float](a scalar.Angle[T]) s1.Angle {
	return s1.Angle(a.Radians())
}

func FromS1[T scalar.Float](a s1.Angle) scalar.Angle[T] {
	return scalar.Radians(T(a.Radians()))
}
