package raster

import (
	"github.com/plotters-go/plotters"
)

// DrawRect draws an axis-aligned rectangle between two corner points.
// The corners are normalized first, so any opposite pair may be passed.
// A filled style paints every pixel in the closed range
// [left, right] x [top, bottom]; otherwise only the four boundary
// segments are drawn.
//
// A zero-alpha style is a no-op.
func DrawRect(b plotters.DrawingBackend, p0, p1 plotters.BackendCoord, style plotters.ShapeStyle) error {
	if style.Invisible() {
		return nil
	}

	left, right := order(p0.X, p1.X)
	top, bottom := order(p0.Y, p1.Y)
	ul := plotters.Coord(left, top)
	br := plotters.Coord(right, bottom)

	if !style.Filled {
		edges := [4][2]plotters.BackendCoord{
			{ul, plotters.Coord(br.X, ul.Y)},
			{plotters.Coord(br.X, ul.Y), br},
			{br, plotters.Coord(ul.X, br.Y)},
			{plotters.Coord(ul.X, br.Y), ul},
		}
		for _, e := range edges {
			if err := DrawLine(b, e[0], e[1], style); err != nil {
				return err
			}
		}
		return nil
	}

	// Scan along the shorter axis so the fill issues as few spans as
	// possible.
	if right-left < bottom-top {
		for x := left; x <= right; x++ {
			if err := DrawLine(b, plotters.Coord(x, top), plotters.Coord(x, bottom), style); err != nil {
				return err
			}
		}
		return nil
	}
	for y := top; y <= bottom; y++ {
		if err := DrawLine(b, plotters.Coord(left, y), plotters.Coord(right, y), style); err != nil {
			return err
		}
	}
	return nil
}
