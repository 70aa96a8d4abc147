package intersect

import "math/rand/v2"

// RandomSegments returns n segments with coordinates in [0,max]. A small max gives many degenerate cases such as shared endpoints, vertical, zero-length and collinear segments.
func RandomSegments(r *rand.Rand, n int, max int32) []Segment {
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Seg(r.Int32N(max+1), r.Int32N(max+1), r.Int32N(max+1), r.Int32N(max+1))
	}
	return segs
}

// bruteForce tests all pairs of segments.
func bruteForce(segs []Segment) (int, int, bool) {
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if segs[i].Intersects(segs[j]) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}
