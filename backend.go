package plotters

// BackendCoord is an integer pixel coordinate on a drawing surface.
type BackendCoord struct {
	X, Y int
}

// Coord is a convenience function to create a BackendCoord.
func Coord(x, y int) BackendCoord {
	return BackendCoord{X: x, Y: y}
}

// DrawingBackend is the pixel-drawing capability the rasterizer consumes.
// A backend is any surface that can blend a single pixel; everything else
// (lines, circles, polygons) is built on top of it by package raster.
//
// DrawPixel blends the given color into the pixel at (x, y), honoring the
// color's alpha. It returns an error when the surface rejects the
// coordinate (for example an out-of-bounds write on a strict canvas);
// the rasterizer propagates such errors unchanged.
type DrawingBackend interface {
	DrawPixel(x, y int, c RGBA) error
}

// LineBackend is optionally implemented by backends that have a faster
// native line primitive (vector surfaces, hardware blitters). When a
// backend implements it, callers may route straight-line segments through
// DrawLine instead of the rasterizer's per-pixel algorithm.
type LineBackend interface {
	DrawLine(from, to BackendCoord, style ShapeStyle) error
}
