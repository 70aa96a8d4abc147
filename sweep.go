package intersect

import (
	"cmp"
	"fmt"
	"slices"
)

type sweepEvent struct {
	seg   int   // segment index
	x     int32 // position of the sweep line
	start bool  // left-endpoint, otherwise right-endpoint
}

func (e sweepEvent) String() string {
	kind := "end"
	if e.start {
		kind = "start"
	}
	return fmt.Sprintf("%s(%d@%d)", kind, e.seg, e.x)
}

func compareEvents(a, b sweepEvent) int {
	if c := cmp.Compare(a.x, b.x); c != 0 {
		return c // sort left to right
	} else if a.start != b.start {
		if a.start {
			return -1 // handle left-endpoints before right-endpoints
		}
		return 1
	}
	return 0
}

// sweepEvents returns the left- and right-endpoint events of all segments, sorted left to right.
func sweepEvents(segs []Segment) []sweepEvent {
	events := make([]sweepEvent, 0, 2*len(segs))
	for i, s := range segs {
		events = append(events,
			sweepEvent{seg: i, x: s.Left().X, start: true},
			sweepEvent{seg: i, x: s.Right().X, start: false},
		)
	}
	slices.SortFunc(events, compareEvents)
	return events
}

// yOrder orders segments from bottom to top at the position of the sweep line. Both segments must cross the sweep line, and the ordering is only a strict weak ordering as long as no two segments in the sweep status cross each other, which holds because the sweep stops at the first intersection found. The y-position is never computed explicitly, instead the left-endpoint of the segment that starts last is tested against the line of the other.
type yOrder []Segment

// Less returns true if segment i lies below segment j.
func (segs yOrder) Less(i, j int) bool {
	a, b := segs[i], segs[j]
	switch {
	case a.Vertical() && b.Vertical():
		// both lie on the sweep line
		return a.Right().Y < b.Left().Y
	case b.Vertical():
		return 0 < Cross(a.Left(), a.Right(), b.Left())
	case a.Vertical():
		return Cross(b.Left(), b.Right(), a.Left()) < 0
	case b.Left().X < a.Left().X:
		// a starts right of b
		return Cross(b.Left(), b.Right(), a.Left()) < 0
	default:
		return 0 < Cross(a.Left(), a.Right(), b.Left())
	}
}

// FindIntersection returns the indices of two intersecting segments, or false if no two segments intersect. Touching endpoints and collinear overlaps count as intersections. The segments are swept from left to right and the sweep stops at the first pair it finds; the first index is the segment that was already in the sweep status and the second is the segment whose endpoint was being handled. All coordinates must be within ±MaxCoordinate.
//
// The complexity is O(n log n) for n segments.
func FindIntersection(segs []Segment) (int, int, bool) {
	status := newSweepStatus(yOrder(segs))
	for _, event := range sweepEvents(segs) {
		cur := segs[event.seg]
		if event.start {
			// add segment to sweep status, check with its future neighbors first
			lower, upper := status.Neighbors(event.seg)
			if upper != nil && segs[upper.seg].Intersects(cur) {
				return upper.seg, event.seg, true
			}
			if lower != nil && segs[lower.seg].Intersects(cur) {
				return lower.seg, event.seg, true
			}
			status.Insert(event.seg)
		} else {
			// remove segment from sweep status
			n := status.Node(event.seg)
			lower, upper := n.Prev(), n.Next()
			if lower != nil && segs[lower.seg].Intersects(cur) {
				return lower.seg, event.seg, true
			}
			if upper != nil && segs[upper.seg].Intersects(cur) {
				return upper.seg, event.seg, true
			}
			status.Remove(n)
		}
	}
	return -1, -1, false
}

// Pair is a pair of indices into a segment list.
type Pair struct {
	A, B int
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.A, p.B)
}

// Find is like FindIntersection but returns the intersecting segments as a pair.
func Find(segs []Segment) (Pair, bool) {
	a, b, ok := FindIntersection(segs)
	return Pair{a, b}, ok
}
