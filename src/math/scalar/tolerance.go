package scalar

import "math"

// AreEqual reports whether a and b differ by less than the tolerance.
func AreEqual[T Float](a, b T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < Epsilon[T]()
}

func AreNotEqual[T Float](a, b T) bool {
	return !AreEqual(a, b)
}

func IsZero[T Float](a T) bool {
	return AreEqual(a, 0)
}

func IsNotZero[T Float](a T) bool {
	return !IsZero(a)
}

// IsNegative is true only for values below -Epsilon.
func IsNegative[T Float](a T) bool {
	return a < -Epsilon[T]()
}

// IsPositive is true only for values above Epsilon.
func IsPositive[T Float](a T) bool {
	return a > Epsilon[T]()
}

func IsGreaterThan[T Float](a, b T) bool {
	return a > b && !AreEqual(a, b)
}

func IsLessThan[T Float](a, b T) bool {
	return a < b && !AreEqual(a, b)
}

func IsGreaterOrEquals[T Float](a, b T) bool {
	return a > b || AreEqual(a, b)
}

func IsLessOrEquals[T Float](a, b T) bool {
	return a < b || AreEqual(a, b)
}

// IsNegligible reports whether a is zero relative to the magnitude m of the
// quantities it was computed from. Magnitudes below one fall back to IsZero.
func IsNegligible[T Float](a, m T) bool {
	return Abs(a) < Epsilon[T]()*max(T(One), Abs(m))
}

// Div divides a by b, panicking with a PreconditionError when b is
// zero under the tolerance.
func Div[T Float](a, b T) T {
	Assert(IsNotZero(b), "scalar.Div", "division by zero")
	return a / b
}

// Clamp limits v to [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

func Sin[T Float](v T) T {
	return T(math.Sin(float64(v)))
}

func Cos[T Float](v T) T {
	return T(math.Cos(float64(v)))
}

// Acos clamps its argument to [-1, 1] so that rounding noise never yields NaN.
func Acos[T Float](v T) T {
	return T(math.Acos(float64(Clamp(v, -1, 1))))
}

func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

func Mod[T Float](x, y T) T {
	return T(math.Mod(float64(x), float64(y)))
}

func Trunc[T Float](v T) T {
	return T(math.Trunc(float64(v)))
}

// Format renders v in the shortest form that round-trips for its precision.
func Format[T Float](v T) string {
	return formatFloat(v)
}
