// Package line provides infinite lines and line segments built on vector.Vec3.
package line

import (
	"fmt"

	"uniformity/internal/geometry/vector"
)

// Linear is anything with an anchor point and a unit direction.
// Both Line and Segment implement it.
type Linear interface {
	Point() vector.Vec3
	Direction() vector.Vec3
}

// Line is an infinite line through a point.
type Line struct {
	point     vector.Vec3
	direction vector.Vec3
}

// New creates a line through point along direction. The direction is
// normalized; a zero direction fails with vector.ErrNormalization and a
// non-finite one with vector.ErrNonFinite.
func New(point, direction vector.Vec3) (Line, error) {
	dir, err := direction.Normalize()
	if err != nil {
		return Line{}, fmt.Errorf("line direction: %w", err)
	}
	return Line{point: point, direction: dir}, nil
}

// Point returns the anchor point.
func (l Line) Point() vector.Vec3 { return l.point }

// Direction returns the unit direction.
func (l Line) Direction() vector.Vec3 { return l.direction }

// String returns "Line(point=(x, y, z), direction=(x, y, z))".
func (l Line) String() string {
	return fmt.Sprintf("Line(point=%v, direction=%v)", l.point, l.direction)
}

// Segment is the part of a line between two endpoints.
// Its anchor point is Start and its direction points from Start to End.
type Segment struct {
	line       Line
	start, end vector.Vec3
}

// NewSegment creates the segment from start to end. Coincident endpoints
// fail with vector.ErrNormalization; endpoints whose difference overflows
// fail with vector.ErrNonFinite.
func NewSegment(start, end vector.Vec3) (Segment, error) {
	l, err := New(start, end.Sub(start))
	if err != nil {
		return Segment{}, err
	}
	return Segment{line: l, start: start, end: end}, nil
}

// Start returns the first endpoint.
func (s Segment) Start() vector.Vec3 { return s.start }

// End returns the second endpoint.
func (s Segment) End() vector.Vec3 { return s.end }

// Point returns the anchor point, which is Start.
func (s Segment) Point() vector.Vec3 { return s.line.Point() }

// Direction returns the unit direction from Start to End.
func (s Segment) Direction() vector.Vec3 { return s.line.Direction() }

// AsLine returns the infinite line the segment lies on.
func (s Segment) AsLine() Line { return s.line }

// String returns "Segment(start=(x, y, z), end=(x, y, z))".
func (s Segment) String() string {
	return fmt.Sprintf("Segment(start=%v, end=%v)", s.start, s.end)
}

var (
	_ Linear = Line{}
	_ Linear = Segment{}
)
