package intersect

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	plotSegmentColor = color.RGBA{128, 128, 128, 255}
	plotPairColor    = color.RGBA{220, 20, 60, 255}
	plotOverlapColor = color.RGBA{220, 20, 60, 64}
)

func segmentXYs(s Segment) plotter.XYs {
	a, b := s.Left(), s.Right()
	return plotter.XYs{
		{X: float64(a.X), Y: float64(a.Y)},
		{X: float64(b.X), Y: float64(b.Y)},
	}
}

// Plot returns a plot of all segments. If pair is not nil, its segments are highlighted together with the region where their bounding boxes overlap, which contains the intersection.
func Plot(segs []Segment, pair *Pair) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	if pair == nil {
		p.Title.Text = fmt.Sprintf("%d segments, no intersection", len(segs))
	} else {
		p.Title.Text = fmt.Sprintf("%d segments, %v intersects %v", len(segs), segs[pair.A], segs[pair.B])
	}

	for i, s := range segs {
		if pair != nil && (i == pair.A || i == pair.B) {
			continue // drawn on top
		}
		line, err := plotter.NewLine(segmentXYs(s))
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		line.LineStyle.Color = plotSegmentColor
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
	}

	if pair != nil {
		a, b := segs[pair.A], segs[pair.B]
		r := a.Bounds().And(b.Bounds())
		overlap, err := plotter.NewPolygon(plotter.XYs{
			{X: float64(r.X0), Y: float64(r.Y0)},
			{X: float64(r.X1), Y: float64(r.Y0)},
			{X: float64(r.X1), Y: float64(r.Y1)},
			{X: float64(r.X0), Y: float64(r.Y1)},
		})
		if err != nil {
			return nil, err
		}
		overlap.Color = plotOverlapColor
		overlap.LineStyle.Width = 0
		p.Add(overlap)

		for _, i := range []int{pair.A, pair.B} {
			line, err := plotter.NewLine(segmentXYs(segs[i]))
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			line.LineStyle.Color = plotPairColor
			line.LineStyle.Width = vg.Points(2)
			p.Add(line)
		}
	}
	return p, nil
}
