package scalar

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the precision parameter shared by every geometric type.
type Float interface {
	constraints.Float
}

const (
	// Epsilon32 and Epsilon64 are the tolerances used for single and double
	// precision respectively.
	Epsilon32 = 1e-6
	Epsilon64 = 1e-12
)

// Named literals. They are untyped so they convert exactly to either precision.
const (
	Zero    = 0.0
	One     = 1.0
	Two     = 2.0
	Three   = 3.0
	Four    = 4.0
	Half    = 0.5
	Quarter = 0.25

	Pi           = math.Pi
	TwoPi        = 2 * math.Pi
	HalfPi       = math.Pi / 2
	QuarterPi    = math.Pi / 4
	ThirdPi      = math.Pi / 3
	ThreeHalfsPi = 3 * math.Pi / 2
	InversePi    = 1 / math.Pi

	DegreesPerRadian = 180 / math.Pi
	RadiansPerDegree = math.Pi / 180
)

// Epsilon returns the tolerance for the precision of T.
func Epsilon[T Float]() T {
	var v T
	if unsafe.Sizeof(v) == 4 {
		return T(Epsilon32)
	}
	return T(Epsilon64)
}

// MaxValue returns the largest finite value representable by T.
func MaxValue[T Float]() T {
	var v T
	if unsafe.Sizeof(v) == 4 {
		return T(math.MaxFloat32)
	}
	f := math.MaxFloat64
	return T(f)
}
