package coord

import (
	"github.com/plotters-go/plotters"
)

// Cartesian2D combines two single-axis ranges with a pixel region into a
// 2-D transform. The X axis runs left to right; the Y axis runs bottom
// to top, so the Y range's pixel limits are reversed relative to screen
// coordinates.
type Cartesian2D[X, Y any] struct {
	X    Ranged[X]
	Y    Ranged[Y]
	Area plotters.DrawingArea
}

// NewCartesian2D builds a 2-D coordinate over the given pixel region.
func NewCartesian2D[X, Y any](x Ranged[X], y Ranged[Y], area plotters.DrawingArea) Cartesian2D[X, Y] {
	return Cartesian2D[X, Y]{X: x, Y: y, Area: area}
}

// XPixels returns the pixel limits used for the X axis.
func (c Cartesian2D[X, Y]) XPixels() PixelRange {
	return Pixels(c.Area.X0, c.Area.X1)
}

// YPixels returns the pixel limits used for the Y axis. Start is the
// bottom edge so that increasing domain values move up the screen.
func (c Cartesian2D[X, Y]) YPixels() PixelRange {
	return Pixels(c.Area.Y1, c.Area.Y0)
}

// Map converts a domain point to a backend pixel coordinate.
func (c Cartesian2D[X, Y]) Map(x X, y Y) plotters.BackendCoord {
	return plotters.Coord(
		c.X.Map(x, c.XPixels()),
		c.Y.Map(y, c.YPixels()),
	)
}

// DualCoord binds two independent Y ranges to the same X range and the
// same pixel region, letting two series with different units share one
// plot area. The primary Y axis is conventionally drawn on the left and
// the secondary on the right.
type DualCoord[X, Y1, Y2 any] struct {
	Primary   Cartesian2D[X, Y1]
	Secondary Cartesian2D[X, Y2]
}

// NewDualCoord builds a dual coordinate over a shared X range.
func NewDualCoord[X, Y1, Y2 any](x Ranged[X], y1 Ranged[Y1], y2 Ranged[Y2], area plotters.DrawingArea) DualCoord[X, Y1, Y2] {
	return DualCoord[X, Y1, Y2]{
		Primary:   NewCartesian2D(x, y1, area),
		Secondary: NewCartesian2D(x, y2, area),
	}
}

// Map converts a domain point on the primary Y axis.
func (c DualCoord[X, Y1, Y2]) Map(x X, y Y1) plotters.BackendCoord {
	return c.Primary.Map(x, y)
}

// MapSecondary converts a domain point on the secondary Y axis.
func (c DualCoord[X, Y1, Y2]) MapSecondary(x X, y Y2) plotters.BackendCoord {
	return c.Secondary.Map(x, y)
}
