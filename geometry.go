package sweepline

import "math"

// Epsilon is the tolerance used by the status tree comparator and by the
// sweep engine when deciding whether a candidate crossing lies strictly in
// the future of the sweep line. The geometric predicates below are exact
// (no tolerance applied): orientation sign noise is handled by the callers
// that consult it, not by fuzzing the cross product itself.
const Epsilon = 1e-9

// Point is a point in the plane in double precision. Equality is bitwise on
// the represented value; callers that need a tolerant comparison use
// nearlyEqual explicitly.
type Point struct {
	X, Y float64
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Segment is a closed line segment from Ini to End. Normalize establishes
// Ini.X <= End.X; callers that build a Segment directly (e.g. to describe
// an intersection artifact) are not required to normalize it.
type Segment struct {
	Ini, End Point
}

// Normalize returns s with Ini and End swapped if necessary so that
// Ini.X <= End.X, breaking ties on Y so a vertical segment has a
// deterministic orientation too.
func (s Segment) Normalize() Segment {
	if s.Ini.X > s.End.X || (s.IsVertical() && s.Ini.Y > s.End.Y) {
		s.Ini, s.End = s.End, s.Ini
	}
	return s
}

// IsVertical reports whether the segment's endpoints share an X coordinate.
func (s Segment) IsVertical() bool {
	return s.Ini.X == s.End.X
}

// IsDegenerate reports whether the segment's endpoints coincide, i.e. it
// represents a point rather than a proper segment. Intersection artifacts
// use this shape for point intersections (Ini == End).
func (s Segment) IsDegenerate() bool {
	return s.Ini == s.End
}

// Orientation is the sign of the cross product that determines whether p
// lies on, to the clockwise side of, or to the counter-clockwise side of
// the directed segment s.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// OrientationOf computes the orientation of p relative to the directed
// segment s. No epsilon is applied: exact zero maps to Collinear, and the
// algorithm tolerates sign noise by cross-checking endpoints rather than by
// fuzzing this predicate.
func OrientationOf(p Point, s Segment) Orientation {
	val := (s.End.Y-s.Ini.Y)*(p.X-s.End.X) - (s.End.X-s.Ini.X)*(p.Y-s.End.Y)
	switch {
	case val == 0:
		return Collinear
	case val > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// CollinearPointOnSegment reports whether p, assumed collinear with s,
// lies within s's axis-aligned bounding box (inclusive).
func CollinearPointOnSegment(p Point, s Segment) bool {
	xMin, xMax := math.Min(s.Ini.X, s.End.X), math.Max(s.Ini.X, s.End.X)
	yMin, yMax := math.Min(s.Ini.Y, s.End.Y), math.Max(s.Ini.Y, s.End.Y)
	return xMin <= p.X && p.X <= xMax && yMin <= p.Y && p.Y <= yMax
}

// ErrParallelLines is returned by IntersectionPoint when the two segments'
// supporting lines are parallel (or identical). SegmentsIntersection always
// checks orientation before calling IntersectionPoint, so a caller going
// through the public kernel API never observes this error; it exists so the
// precondition is explicit and independently testable.
var ErrParallelLines = newDomainError("sweepline: segments are parallel, intersection_point precondition violated")

// domainError is a trivial string-backed error, kept as its own type (not a
// plain errors.New) so precondition violations are distinguishable from
// ordinary errors via errors.Is without exporting a struct with exported
// fields nobody needs.
type domainError string

func newDomainError(s string) error { return domainError(s) }

func (e domainError) Error() string { return string(e) }

// IntersectionPoint solves the two line equations supporting s1 and s2 by
// Cramer's rule and returns the unique point where the (infinite) lines
// cross. The caller must ensure the lines are not parallel; ErrParallelLines
// is returned otherwise instead of dividing by zero.
func IntersectionPoint(s1, s2 Segment) (Point, error) {
	a1 := s1.End.Y - s1.Ini.Y
	b1 := s1.Ini.X - s1.End.X
	c1 := a1*s1.Ini.X + b1*s1.Ini.Y

	a2 := s2.End.Y - s2.Ini.Y
	b2 := s2.Ini.X - s2.End.X
	c2 := a2*s2.Ini.X + b2*s2.Ini.Y

	determinant := a1*b2 - a2*b1
	if determinant == 0 {
		return Point{}, ErrParallelLines
	}

	return Point{
		X: (b2*c1 - b1*c2) / determinant,
		Y: (a1*c2 - a2*c1) / determinant,
	}, nil
}

// SegmentsIntersection reports the geometric relationship between s1 and
// s2: a degenerate Segment (Ini == End) at the crossing point for a proper
// crossing, a Segment describing the overlap for collinear, overlapping
// segments, or ok == false when the segments do not meet at all.
func SegmentsIntersection(s1, s2 Segment) (Segment, bool) {
	o1 := OrientationOf(s2.Ini, s1)
	o2 := OrientationOf(s2.End, s1)
	o3 := OrientationOf(s1.Ini, s2)
	o4 := OrientationOf(s1.End, s2)

	if o1 != o2 && o3 != o4 {
		p, err := IntersectionPoint(s1, s2)
		if err != nil {
			// o1 != o2 and o3 != o4 imply the lines are not parallel, so
			// this branch is unreachable; treat it defensively as "no
			// intersection" rather than propagating an impossible error.
			return Segment{}, false
		}
		return Segment{Ini: p, End: p}, true
	}

	s2IniOnS1 := o1 == Collinear && CollinearPointOnSegment(s2.Ini, s1)
	s2EndOnS1 := o2 == Collinear && CollinearPointOnSegment(s2.End, s1)
	s1IniOnS2 := o3 == Collinear && CollinearPointOnSegment(s1.Ini, s2)
	s1EndOnS2 := o4 == Collinear && CollinearPointOnSegment(s1.End, s2)

	switch {
	case s2IniOnS1 && s2EndOnS1:
		return s2, true
	case s1IniOnS2 && s1EndOnS2:
		return s1, true
	case s2IniOnS1 && s1IniOnS2:
		return Segment{Ini: s2.Ini, End: s1.Ini}, true
	case s2IniOnS1 && s1EndOnS2:
		return Segment{Ini: s2.Ini, End: s1.End}, true
	case s2EndOnS1 && s1IniOnS2:
		return Segment{Ini: s2.End, End: s1.Ini}, true
	case s2EndOnS1 && s1EndOnS2:
		return Segment{Ini: s2.End, End: s1.End}, true
	default:
		return Segment{}, false
	}
}

// toGrid snaps p to the nearest multiple of gridSize in each axis, used by
// oracle-comparison tooling to compare the sweep engine's output against the
// reference solver's up to a coarse grid.
func (p Point) toGrid(gridSize float64) Point {
	return Point{
		X: math.Round(p.X/gridSize) * gridSize,
		Y: math.Round(p.Y/gridSize) * gridSize,
	}
}

// ToGrid snaps both endpoints of s to gridSize.
func (s Segment) ToGrid(gridSize float64) Segment {
	return Segment{Ini: s.Ini.toGrid(gridSize), End: s.End.toGrid(gridSize)}
}
