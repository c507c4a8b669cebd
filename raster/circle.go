package raster

import (
	"math"

	"github.com/plotters-go/plotters"
)

// DrawCircle draws a circle centered at the given coordinate. When the
// style is filled, the interior is painted with horizontal spans for the
// middle rows and vertical spans for the top and bottom caps, so every
// interior pixel is covered exactly once. Otherwise only the boundary is
// drawn, with edge pixels blended by the fractional part of the analytic
// half-chord length.
//
// A zero radius or a zero-alpha style is a no-op.
func DrawCircle(b plotters.DrawingBackend, center plotters.BackendCoord, radius int, style plotters.ShapeStyle) error {
	if style.Invisible() || radius <= 0 {
		return nil
	}
	if style.Filled {
		return fillCircle(b, center, radius, style.Color)
	}
	return strokeCircle(b, center, radius, style.Color)
}

// fillCircle paints the disk interior. Rows with |dy| <= r/sqrt(2) are
// filled with full horizontal spans; the remaining caps are closed with
// vertical spans per column, which keeps the span endpoints where the
// boundary is closest to axis-aligned.
func fillCircle(b plotters.DrawingBackend, center plotters.BackendCoord, radius int, c plotters.RGBA) error {
	r := float64(radius)
	k := int(r / math.Sqrt2)

	for dy := -k; dy <= k; dy++ {
		h := int(math.Sqrt(r*r - float64(dy*dy)))
		y := center.Y + dy
		for x := center.X - h; x <= center.X+h; x++ {
			if err := b.DrawPixel(x, y, c); err != nil {
				return err
			}
		}
	}
	for dx := -k; dx <= k; dx++ {
		h := int(math.Sqrt(r*r - float64(dx*dx)))
		x := center.X + dx
		for y := center.Y - h; y < center.Y-k; y++ {
			if err := b.DrawPixel(x, y, c); err != nil {
				return err
			}
		}
		for y := center.Y + k + 1; y <= center.Y+h; y++ {
			if err := b.DrawPixel(x, y, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// strokeCircle draws the anti-aliased boundary. For each scan row the
// analytic half-chord h = sqrt(r*r - dy*dy) lands between two pixel
// columns; the inner one is blended at frac(h) and one extra pixel
// outside it at (1 - frac(h)) to soften the edge. The same is done per
// column for the top and bottom arcs. The coverage split is a visual
// approximation, not exact area coverage.
func strokeCircle(b plotters.DrawingBackend, center plotters.BackendCoord, radius int, c plotters.RGBA) error {
	r := float64(radius)
	k := int(r / math.Sqrt2)

	for dy := -k; dy <= k; dy++ {
		h := math.Sqrt(r*r - float64(dy*dy))
		y := center.Y + dy
		if err := edgePair(b, center.X, y, h, true, c); err != nil {
			return err
		}
	}
	for dx := -k; dx <= k; dx++ {
		h := math.Sqrt(r*r - float64(dx*dx))
		x := center.X + dx
		if err := edgePair(b, x, center.Y, h, false, c); err != nil {
			return err
		}
	}
	return nil
}

// edgePair blends the two boundary pixels on both sides of the center
// along one axis. horizontal selects whether the offset h applies to the
// x axis (scan rows) or the y axis (scan columns).
func edgePair(b plotters.DrawingBackend, cx, cy int, h float64, horizontal bool, c plotters.RGBA) error {
	base := math.Floor(h)
	frac := h - base
	inner := c.WithAlpha(c.A * frac)
	outer := c.WithAlpha(c.A * (1 - frac))

	offsets := [4]struct {
		d     int
		color plotters.RGBA
	}{
		{int(base), inner},
		{int(base) + 1, outer},
		{-int(base), inner},
		{-int(base) - 1, outer},
	}
	for _, o := range offsets {
		var x, y int
		if horizontal {
			x, y = cx+o.d, cy
		} else {
			x, y = cx, cy+o.d
		}
		if o.color.A <= 0 {
			continue
		}
		if err := b.DrawPixel(x, y, o.color); err != nil {
			return err
		}
	}
	return nil
}
