package raster

import (
	"math"

	"github.com/plotters-go/plotters"
)

// DrawLine draws a 1-pixel-wide anti-aliased line between two backend
// coordinates. The algorithm steps along the dominant axis and splits
// each step's coverage between the two pixels straddling the exact line
// position, Xiaolin Wu style. Axis-aligned lines take a fast path with
// no blending.
//
// A style with zero alpha is a no-op. Errors from the backend are
// returned unchanged.
func DrawLine(b plotters.DrawingBackend, from, to plotters.BackendCoord, style plotters.ShapeStyle) error {
	if style.Invisible() {
		return nil
	}
	c := style.Color

	// Axis-aligned fast paths: full coverage on every pixel.
	if from.X == to.X {
		y0, y1 := order(from.Y, to.Y)
		for y := y0; y <= y1; y++ {
			if err := b.DrawPixel(from.X, y, c); err != nil {
				return err
			}
		}
		return nil
	}
	if from.Y == to.Y {
		x0, x1 := order(from.X, to.X)
		for x := x0; x <= x1; x++ {
			if err := b.DrawPixel(x, from.Y, c); err != nil {
				return err
			}
		}
		return nil
	}

	steep := abs(to.Y-from.Y) > abs(to.X-from.X)
	x0, y0 := float64(from.X), float64(from.Y)
	x1, y1 := float64(to.X), float64(to.Y)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	grad := (y1 - y0) / (x1 - x0)
	y := y0
	for x := int(x0); x <= int(x1); x++ {
		iy := math.Floor(y)
		frac := y - iy

		if err := plot(b, x, int(iy), steep, c.WithAlpha(c.A*(1-frac))); err != nil {
			return err
		}
		if frac > 0 {
			if err := plot(b, x, int(iy)+1, steep, c.WithAlpha(c.A*frac)); err != nil {
				return err
			}
		}
		y += grad
	}
	return nil
}

// plot writes one pixel, undoing the axis swap for steep lines.
func plot(b plotters.DrawingBackend, x, y int, steep bool, c plotters.RGBA) error {
	if steep {
		x, y = y, x
	}
	return b.DrawPixel(x, y, c)
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
