package intersect

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ParseGeoJSON returns the segments of a GeoJSON FeatureCollection, Feature or geometry. Line strings and polygon rings contribute one segment per pair of consecutive positions while points become zero-length segments. All coordinates must be integers within ±MaxCoordinate.
func ParseGeoJSON(b []byte) ([]Segment, error) {
	var object struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &object); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	var segs []Segment
	switch object.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		for i, f := range fc.Features {
			if segs, err = appendGeometry(segs, f.Geometry); err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if segs, err = appendGeometry(segs, f.Geometry); err != nil {
			return nil, err
		}
	default:
		g, err := geojson.UnmarshalGeometry(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if segs, err = appendGeometry(segs, g.Geometry()); err != nil {
			return nil, err
		}
	}
	return segs, nil
}

func fromOrbPoint(p orb.Point) (Point, error) {
	for _, f := range p {
		if math.Trunc(f) != f {
			return Point{}, fmt.Errorf("%w: non-integer coordinate %v", ErrFormat, f)
		} else if MaxCoordinate < math.Abs(f) {
			return Point{}, fmt.Errorf("%w: %v", ErrBound, f)
		}
	}
	return Point{int32(p[0]), int32(p[1])}, nil
}

func appendLineString(segs []Segment, ls []orb.Point) ([]Segment, error) {
	if len(ls) == 0 {
		return segs, nil
	}
	prev, err := fromOrbPoint(ls[0])
	if err != nil {
		return nil, err
	}
	for _, p := range ls[1:] {
		cur, err := fromOrbPoint(p)
		if err != nil {
			return nil, err
		}
		segs = append(segs, NewSegment(prev, cur))
		prev = cur
	}
	return segs, nil
}

func appendGeometry(segs []Segment, g orb.Geometry) ([]Segment, error) {
	var err error
	switch g := g.(type) {
	case nil:
		// feature without geometry
	case orb.Point:
		p, err := fromOrbPoint(g)
		if err != nil {
			return nil, err
		}
		segs = append(segs, NewSegment(p, p))
	case orb.MultiPoint:
		for _, q := range g {
			if segs, err = appendGeometry(segs, q); err != nil {
				return nil, err
			}
		}
	case orb.LineString:
		return appendLineString(segs, g)
	case orb.MultiLineString:
		for _, ls := range g {
			if segs, err = appendLineString(segs, ls); err != nil {
				return nil, err
			}
		}
	case orb.Polygon:
		for _, ring := range g {
			if segs, err = appendLineString(segs, ring); err != nil {
				return nil, err
			}
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			if segs, err = appendGeometry(segs, poly); err != nil {
				return nil, err
			}
		}
	case orb.Collection:
		for _, h := range g {
			if segs, err = appendGeometry(segs, h); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: unsupported geometry %s", ErrFormat, g.GeoJSONType())
	}
	return segs, nil
}
