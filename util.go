package intersect

import (
	"fmt"
)

// MaxCoordinate is the largest absolute coordinate value supported. Within this bound all cross products fit in an int64.
const MaxCoordinate = 1000000000

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a < b {
		return b
	}
	return a
}

func inBound(v int64) bool {
	return -MaxCoordinate <= v && v <= MaxCoordinate
}

////////////////////////////////////////////////////////////////

// Point is an integer coordinate in 2D space.
type Point struct {
	X, Y int32
}

// Pt returns the point (x,y).
func Pt(x, y int32) Point {
	return Point{x, y}
}

// Equals returns true if P and Q have the same coordinates.
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// InBound returns true if both coordinates are within ±MaxCoordinate.
func (p Point) InBound() bool {
	return inBound(int64(p.X)) && inBound(int64(p.Y))
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cross returns twice the signed area of the triangle O-A-B, ie. the cross product of OA and OB. It is positive when B lies to the left of the directed line OA, negative when it lies to the right, and zero when O, A and B are collinear. Coordinates must not exceed MaxCoordinate in absolute value, otherwise the result overflows.
func Cross(o, a, b Point) int64 {
	ax, ay := int64(a.X)-int64(o.X), int64(a.Y)-int64(o.Y)
	bx, by := int64(b.X)-int64(o.X), int64(b.Y)-int64(o.Y)
	return ax*by - bx*ay
}

// Orientation returns the sign of Cross(o, a, b): +1 for a left turn, -1 for a right turn and 0 when collinear.
func Orientation(o, a, b Point) int {
	if det := Cross(o, a, b); 0 < det {
		return 1
	} else if det < 0 {
		return -1
	}
	return 0
}

////////////////////////////////////////////////////////////////

// Rect is a closed axis-aligned box with corners (X0,Y0) and (X1,Y1), where X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 int32
}

// Touches returns true if R and Q overlap or touch at their boundary.
func (r Rect) Touches(q Rect) bool {
	return max32(r.X0, q.X0) <= min32(r.X1, q.X1) && max32(r.Y0, q.Y0) <= min32(r.Y1, q.Y1)
}

// And returns the overlapping region of R and Q. The result is only meaningful if R touches Q.
func (r Rect) And(q Rect) Rect {
	return Rect{max32(r.X0, q.X0), max32(r.Y0, q.Y0), min32(r.X1, q.X1), min32(r.Y1, q.Y1)}
}

// Add returns the smallest rectangle containing both R and Q.
func (r Rect) Add(q Rect) Rect {
	return Rect{min32(r.X0, q.X0), min32(r.Y0, q.Y0), max32(r.X1, q.X1), max32(r.Y1, q.Y1)}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d; %d]--[%d; %d]", r.X0, r.Y0, r.X1, r.Y1)
}
