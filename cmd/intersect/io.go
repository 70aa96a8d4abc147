package main

import (
	"fmt"
	"io"

	"github.com/tdewolff/intersect"
)

func readSegments(r io.Reader, format string) ([]intersect.Segment, error) {
	switch format {
	case "", "text":
		return intersect.ParseSegments(r)
	case "geojson", "json":
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return intersect.ParseGeoJSON(b)
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

// writeResult prints NO, or YES followed by the 1-based indices of the pair on the next line.
func writeResult(w io.Writer, pair intersect.Pair, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(w, "NO")
		return err
	}
	_, err := fmt.Fprintf(w, "YES\n%d %d\n", pair.A+1, pair.B+1)
	return err
}
