package raster

import (
	"math"

	"github.com/plotters-go/plotters"
)

// DrawPath strokes a polyline with the style's stroke width. Widths of
// one pixel or less route each segment through the anti-aliased line
// primitive; wider strokes are polygonized into a closed outline and
// scan-filled. A single point degenerates to a direct pixel draw.
//
// A zero-alpha style or an empty point list is a no-op.
func DrawPath(b plotters.DrawingBackend, points []plotters.BackendCoord, style plotters.ShapeStyle) error {
	if style.Invisible() || len(points) == 0 {
		return nil
	}
	if len(points) == 1 {
		return b.DrawPixel(points[0].X, points[0].Y, style.Color)
	}
	if style.StrokeWidth <= 1 {
		for i := 0; i+1 < len(points); i++ {
			if err := DrawLine(b, points[i], points[i+1], style); err != nil {
				return err
			}
		}
		return nil
	}

	outline := PolygonizePath(points, float64(style.StrokeWidth))
	return fillPolygonF(b, outline, style)
}

// PolygonizePath converts a polyline plus a stroke width into a closed
// fillable outline. Each segment is offset perpendicular to its
// direction by half the width on both sides; consecutive offset segments
// are joined by intersecting them (a miter join). The outer offsets run
// forward and the inner offsets are reversed, producing a single closed
// polygon.
//
// Coincident consecutive points are dropped first; if fewer than two
// distinct points remain, the result is empty.
func PolygonizePath(points []plotters.BackendCoord, width float64) []plotters.Point {
	pts := dedupe(points)
	if len(pts) < 2 || width <= 0 {
		return nil
	}
	half := width / 2

	left := offsetSide(pts, half)
	right := offsetSide(pts, -half)

	outline := make([]plotters.Point, 0, len(left)+len(right))
	outline = append(outline, left...)
	for i := len(right) - 1; i >= 0; i-- {
		outline = append(outline, right[i])
	}
	return outline
}

// offsetSide computes one side of the stroke outline: segment endpoints
// shifted by d along each segment's perpendicular, with interior
// vertices replaced by the intersection of the two adjacent offset
// lines. Near-parallel joins fall back to the incoming segment's
// endpoint, which caps the miter instead of letting it run away.
func offsetSide(pts []plotters.Point, d float64) []plotters.Point {
	n := len(pts)
	out := make([]plotters.Point, 0, n)

	normal := func(i int) plotters.Point {
		return pts[i+1].Sub(pts[i]).Normalize().Perp().Mul(d)
	}

	out = append(out, pts[0].Add(normal(0)))
	for i := 1; i < n-1; i++ {
		nPrev := normal(i - 1)
		nNext := normal(i)
		a0 := pts[i-1].Add(nPrev)
		a1 := pts[i].Add(nPrev)
		b0 := pts[i].Add(nNext)
		b1 := pts[i+1].Add(nNext)
		if p, ok := intersectLines(a0, a1, b0, b1); ok {
			out = append(out, p)
		} else {
			out = append(out, a1)
		}
	}
	out = append(out, pts[n-1].Add(normal(n-2)))
	return out
}

// intersectLines returns the intersection of the infinite lines through
// (a0, a1) and (b0, b1). ok is false when the lines are (nearly)
// parallel.
func intersectLines(a0, a1, b0, b1 plotters.Point) (plotters.Point, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	denom := da.X*db.Y - da.Y*db.X
	if math.Abs(denom) < 1e-10 {
		return plotters.Point{}, false
	}
	t := ((b0.X-a0.X)*db.Y - (b0.Y-a0.Y)*db.X) / denom
	return a0.Add(da.Mul(t)), true
}

// dedupe converts backend coordinates to float points, dropping
// consecutive duplicates (they produce zero-length segments with no
// defined perpendicular).
func dedupe(points []plotters.BackendCoord) []plotters.Point {
	out := make([]plotters.Point, 0, len(points))
	for _, p := range points {
		fp := plotters.Pt(float64(p.X), float64(p.Y))
		if len(out) > 0 && out[len(out)-1] == fp {
			continue
		}
		out = append(out, fp)
	}
	return out
}
