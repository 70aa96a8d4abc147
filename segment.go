package intersect

import (
	"fmt"
)

// Segment is a closed line segment between two points. Its endpoints are kept in canonical order: left to right, or bottom to top for vertical segments. A segment whose endpoints coincide is a valid, zero-length (vertical) segment.
type Segment struct {
	a, b Point
}

// NewSegment returns the segment between P and Q in canonical order. NewSegment(p, q) and NewSegment(q, p) are equal.
func NewSegment(p, q Point) Segment {
	if q.X < p.X || p.X == q.X && q.Y < p.Y {
		p, q = q, p
	}
	return Segment{p, q}
}

// Seg returns the segment between (x1,y1) and (x2,y2).
func Seg(x1, y1, x2, y2 int32) Segment {
	return NewSegment(Point{x1, y1}, Point{x2, y2})
}

// Left returns the left endpoint, or the bottom endpoint if the segment is vertical.
func (s Segment) Left() Point {
	return s.a
}

// Right returns the right endpoint, or the top endpoint if the segment is vertical.
func (s Segment) Right() Point {
	return s.b
}

// Vertical returns true if both endpoints have the same x-coordinate, this includes zero-length segments.
func (s Segment) Vertical() bool {
	return s.a.X == s.b.X
}

// Bounds returns the bounding box.
func (s Segment) Bounds() Rect {
	return Rect{s.a.X, min32(s.a.Y, s.b.Y), s.b.X, max32(s.a.Y, s.b.Y)}
}

// Intersects returns true if S and T have at least one point in common. This includes proper crossings, touching endpoints or interiors, and collinear overlaps.
func (s Segment) Intersects(t Segment) bool {
	if !s.Bounds().Touches(t.Bounds()) {
		return false
	}

	// both endpoints of one segment must not lie strictly on the same side of the other
	sa, sb := Orientation(s.a, s.b, t.a), Orientation(s.a, s.b, t.b)
	ta, tb := Orientation(t.a, t.b, s.a), Orientation(t.a, t.b, s.b)
	return sa*sb <= 0 && ta*tb <= 0
}

func (s Segment) String() string {
	return fmt.Sprintf("%v−%v", s.a, s.b)
}
