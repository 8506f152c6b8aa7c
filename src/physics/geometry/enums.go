package geometry

// Intersections counts the points two primitives share.
type Intersections int

const (
	NoIntersection Intersections = iota
	OneIntersection
	TwoIntersections
	InfiniteIntersections
)

func (i Intersections) String() string {
	switch i {
	case NoIntersection:
		return "None"
	case OneIntersection:
		return "One"
	case TwoIntersections:
		return "Two"
	case InfiniteIntersections:
		return "Infinite"
	}
	return "Intersections(?)"
}

// SpaceRelation places a set of points relative to a plane.
type SpaceRelation int

const (
	Contained SpaceRelation = iota
	PositiveSide
	NegativeSide
	BothSides
)

func (r SpaceRelation) String() string {
	switch r {
	case Contained:
		return "Contained"
	case PositiveSide:
		return "PositiveSide"
	case NegativeSide:
		return "NegativeSide"
	case BothSides:
		return "BothSides"
	}
	return "SpaceRelation(?)"
}
