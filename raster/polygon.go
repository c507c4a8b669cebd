package raster

import (
	"math"
	"sort"

	"github.com/plotters-go/plotters"
)

// FillPolygon scan-fills the polygon described by the given vertices,
// using the even-odd (parity) rule. For every integer scan row inside
// the polygon's vertical extent, each non-horizontal edge crossing that
// row contributes one intersection; the sorted intersections are filled
// pairwise. Horizontal edges are skipped, which is what makes the parity
// rule work without special cases.
//
// Fewer than three vertices, or a zero-alpha style, is a no-op.
func FillPolygon(b plotters.DrawingBackend, vertices []plotters.BackendCoord, style plotters.ShapeStyle) error {
	if style.Invisible() || len(vertices) < 3 {
		return nil
	}

	pts := make([]plotters.Point, len(vertices))
	for i, v := range vertices {
		pts[i] = plotters.Pt(float64(v.X), float64(v.Y))
	}
	return fillPolygonF(b, pts, style)
}

// fillPolygonF is the float-coordinate scan fill shared with the path
// stroker, which produces non-integer outline vertices.
func fillPolygonF(b plotters.DrawingBackend, pts []plotters.Point, style plotters.ShapeStyle) error {
	if style.Invisible() || len(pts) < 3 {
		return nil
	}

	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	var xs []float64
	for y := int(math.Ceil(minY)); y <= int(math.Floor(maxY)); y++ {
		fy := float64(y)
		xs = xs[:0]
		for i := range pts {
			a := pts[i]
			c := pts[(i+1)%len(pts)]
			if a.Y == c.Y {
				continue // horizontal edge
			}
			lo, hi := a, c
			if lo.Y > hi.Y {
				lo, hi = hi, lo
			}
			// Half-open span [lo.Y, hi.Y) so a vertex shared by two
			// edges is counted once.
			if fy < lo.Y || fy >= hi.Y {
				continue
			}
			t := (fy - lo.Y) / (hi.Y - lo.Y)
			xs = append(xs, lo.X+t*(hi.X-lo.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i]))
			x1 := int(math.Floor(xs[i+1]))
			for x := x0; x <= x1; x++ {
				if err := b.DrawPixel(x, y, style.Color); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
