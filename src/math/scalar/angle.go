package scalar

// Angle is a unit-aware angle. The value is kept in radians; the notation is
// picked when the angle is created or read, never by a build switch.
type Angle[T Float] struct {
	rad T
}

// Radians builds an angle from radians.
func Radians[T Float](v T) Angle[T] {
	return Angle[T]{rad: v}
}

// Degrees builds an angle from degrees.
func Degrees[T Float](v T) Angle[T] {
	return Angle[T]{rad: v * RadiansPerDegree}
}

func (a Angle[T]) Radians() T {
	return a.rad
}

func (a Angle[T]) Degrees() T {
	return a.rad * DegreesPerRadian
}

func (a Angle[T]) Add(b Angle[T]) Angle[T] {
	return Angle[T]{rad: a.rad + b.rad}
}

func (a Angle[T]) Sub(b Angle[T]) Angle[T] {
	return Angle[T]{rad: a.rad - b.rad}
}

func (a Angle[T]) Neg() Angle[T] {
	return Angle[T]{rad: -a.rad}
}

func (a Angle[T]) Scale(s T) Angle[T] {
	return Angle[T]{rad: a.rad * s}
}

// Complement returns a full revolution minus a.
func (a Angle[T]) Complement() Angle[T] {
	return Angle[T]{rad: TwoPi - a.rad}
}

// Truncate drops complete revolutions, keeping the sign.
func (a Angle[T]) Truncate() Angle[T] {
	return Angle[T]{rad: Mod(a.rad, T(TwoPi))}
}

// CountRevolutions returns how many revolutions a spans, fractional part included.
func (a Angle[T]) CountRevolutions() T {
	return a.rad / TwoPi
}

// CountCompleteRevolutions returns the integral part of CountRevolutions.
func (a Angle[T]) CountCompleteRevolutions() T {
	return Trunc(a.CountRevolutions())
}

func (a Angle[T]) Equal(b Angle[T]) bool {
	return AreEqual(a.rad, b.rad)
}

func (a Angle[T]) String() string {
	return formatFloat(a.rad) + "rad"
}
