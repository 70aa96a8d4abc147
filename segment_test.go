package intersect

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestNewSegment(t *testing.T) {
	var tts = []struct {
		p, q        Point
		left, right Point
		vertical    bool
	}{
		{Point{0, 0}, Point{2, 1}, Point{0, 0}, Point{2, 1}, false},
		{Point{2, 1}, Point{0, 0}, Point{0, 0}, Point{2, 1}, false},
		{Point{0, 5}, Point{3, -1}, Point{0, 5}, Point{3, -1}, false},
		{Point{3, -1}, Point{0, 5}, Point{0, 5}, Point{3, -1}, false},
		{Point{5, 10}, Point{5, 0}, Point{5, 0}, Point{5, 10}, true},
		{Point{5, 0}, Point{5, 10}, Point{5, 0}, Point{5, 10}, true},
		{Point{1, 1}, Point{1, 1}, Point{1, 1}, Point{1, 1}, true}, // zero-length
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			s := NewSegment(tt.p, tt.q)
			test.T(t, s.Left(), tt.left)
			test.T(t, s.Right(), tt.right)
			test.T(t, s.Vertical(), tt.vertical)
			test.T(t, NewSegment(tt.q, tt.p), s)
			test.T(t, NewSegment(s.Left(), s.Right()), s)
		})
	}
}

func TestSegmentBounds(t *testing.T) {
	test.T(t, Seg(0, 5, 3, -1).Bounds(), Rect{0, -1, 3, 5})
	test.T(t, Seg(5, 10, 5, 0).Bounds(), Rect{5, 0, 5, 10})
	test.T(t, Seg(1, 1, 1, 1).Bounds(), Rect{1, 1, 1, 1})
	test.String(t, Seg(2, 2, 0, 0).String(), "(0,0)−(2,2)")
}

func TestSegmentIntersects(t *testing.T) {
	var tts = []struct {
		a, b       Segment
		intersects bool
	}{
		// crossing
		{Seg(0, 0, 2, 2), Seg(0, 2, 2, 0), true},
		{Seg(5, 0, 5, 10), Seg(0, 5, 10, 5), true},
		{Seg(0, 0, 10, 1), Seg(3, -5, 4, 5), true},

		// touching
		{Seg(0, 0, 2, 2), Seg(2, 2, 4, 0), true},
		{Seg(0, 0, 4, 0), Seg(2, 0, 2, 3), true},
		{Seg(0, 0, 4, 0), Seg(4, 0, 4, -3), true},
		{Seg(0, 0, 0, 4), Seg(0, 4, 0, 6), true},

		// collinear
		{Seg(0, 0, 4, 0), Seg(2, 0, 6, 0), true},
		{Seg(0, 0, 4, 4), Seg(1, 1, 2, 2), true},
		{Seg(0, 0, 0, 4), Seg(0, 1, 0, 6), true},
		{Seg(0, 0, 4, 0), Seg(5, 0, 6, 0), false},
		{Seg(0, 0, 2, 2), Seg(3, 3, 4, 4), false},
		{Seg(0, 0, 0, 2), Seg(0, 3, 0, 4), false},

		// disjoint
		{Seg(0, 0, 1, 0), Seg(2, 5, 3, 5), false},
		{Seg(0, 0, 4, 4), Seg(1, 0, 5, 4), false},
		{Seg(0, 0, 4, 0), Seg(1, 1, 3, 1), false},
		{Seg(0, 0, 4, 4), Seg(3, 0, 4, 2), false}, // bounding boxes overlap
		{Seg(0, 0, 4, 4), Seg(2, 0, 2, 1), false},

		// zero-length
		{Seg(1, 1, 1, 1), Seg(0, 0, 2, 2), true},
		{Seg(1, 1, 1, 1), Seg(0, 2, 2, 0), true},
		{Seg(1, 1, 1, 1), Seg(1, 1, 1, 1), true},
		{Seg(1, 1, 1, 1), Seg(0, 0, 2, 0), false},
		{Seg(1, 1, 1, 1), Seg(0, 0, 4, 3), false},
		{Seg(1, 1, 1, 1), Seg(2, 2, 2, 2), false},
		{Seg(0, 0, 0, 0), Seg(0, 0, 5, 7), true},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, tt.a.Intersects(tt.b), tt.intersects)
			test.T(t, tt.b.Intersects(tt.a), tt.intersects)
		})
	}
}
