package intersect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseGeoJSON(t *testing.T) {
	var tts = []struct {
		in   string
		segs []Segment
	}{
		{`{"type":"LineString","coordinates":[[0,0],[2,2],[4,0]]}`, []Segment{Seg(0, 0, 2, 2), Seg(2, 2, 4, 0)}},
		{`{"type":"MultiLineString","coordinates":[[[0,0],[2,2]],[[0,2],[2,0]]]}`, []Segment{Seg(0, 0, 2, 2), Seg(0, 2, 2, 0)}},
		{`{"type":"Point","coordinates":[1,1]}`, []Segment{Seg(1, 1, 1, 1)}},
		{`{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[0,0]]]}`, []Segment{Seg(0, 0, 4, 0), Seg(4, 0, 4, 4), Seg(4, 4, 0, 0)}},
		{`{"type":"Feature","geometry":{"type":"LineString","coordinates":[[5,0],[5,10]]},"properties":{}}`, []Segment{Seg(5, 0, 5, 10)}},
		{`{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,5],[10,5]]},"properties":{}},
			{"type":"Feature","geometry":{"type":"MultiPoint","coordinates":[[3,3],[4,4]]},"properties":{}}
		]}`, []Segment{Seg(0, 5, 10, 5), Seg(3, 3, 3, 3), Seg(4, 4, 4, 4)}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			segs, err := ParseGeoJSON([]byte(tt.in))
			test.Error(t, err)
			test.T(t, segs, tt.segs)
		})
	}
}

func TestParseGeoJSONError(t *testing.T) {
	var tts = []struct {
		in  string
		err error
	}{
		{`not json`, ErrFormat},
		{`{"type":"LineString","coordinates":[[0,0],[2.5,2]]}`, ErrFormat},
		{`{"type":"LineString","coordinates":[[0,0],[2000000000,2]]}`, ErrBound},
		{`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[0.1,0]},"properties":{}}]}`, ErrFormat},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := ParseGeoJSON([]byte(tt.in))
			test.That(t, errors.Is(err, tt.err), "expected", tt.err, "got", err)
		})
	}
}

func TestGeoJSONIntersection(t *testing.T) {
	segs, err := ParseGeoJSON([]byte(`{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[4,4],[8,0]]},"properties":{}},
		{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,6],[8,6]]},"properties":{}}
	]}`))
	test.Error(t, err)
	_, ok := Find(segs)
	test.That(t, ok, "consecutive segments of a line string touch")

	_, ok = Find(segs[1:])
	test.That(t, !ok)
}
