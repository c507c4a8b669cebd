package chart

import (
	"github.com/plotters-go/plotters"
	"github.com/plotters-go/plotters/coord"
	"github.com/plotters-go/plotters/raster"
)

// Histogram draws bars over a segmented X coordinate: each bucket's bar
// occupies their full step-width pixel span rather than being centered
// on a point.
type Histogram[T comparable] struct {
	surf Surface
	area plotters.DrawingArea
	x    coord.Segmented[T]
	y    coord.Ranged[float64]

	// Gap is the number of pixels left empty on each side of every bar.
	Gap int
}

// NewHistogram creates a histogram over a segmented X range and a
// numeric Y range.
func NewHistogram[T comparable](surf Surface, area plotters.DrawingArea, x coord.Segmented[T], y coord.Ranged[float64]) *Histogram[T] {
	return &Histogram[T]{surf: surf, area: area, x: x, y: y, Gap: 1}
}

// xPixels returns the histogram's horizontal pixel limits.
func (h *Histogram[T]) xPixels() coord.PixelRange {
	return coord.Pixels(h.area.X0, h.area.X1)
}

// yPixels returns the vertical pixel limits, bottom to top.
func (h *Histogram[T]) yPixels() coord.PixelRange {
	return coord.Pixels(h.area.Y1-1, h.area.Y0)
}

// Draw renders one bar per bucket value. Buckets absent from values draw
// nothing; heights at or below the Y domain start produce empty bars.
func (h *Histogram[T]) Draw(values map[T]float64, style plotters.ShapeStyle) error {
	yStart, _ := h.y.Domain()
	base := h.y.Map(yStart, h.yPixels())

	for i := 0; i < h.x.Size(); i++ {
		bucket, ok := h.x.FromIndex(i)
		if !ok {
			continue
		}
		v, ok := values[bucket]
		if !ok {
			continue
		}
		from, to, ok := h.x.SpanOf(bucket, h.xPixels())
		if !ok {
			continue
		}
		top := h.y.Map(v, h.yPixels())
		if top == base {
			continue
		}
		if err := raster.DrawRect(h.surf,
			plotters.Coord(from+h.Gap, top),
			plotters.Coord(to-1-h.Gap, base),
			style); err != nil {
			return err
		}
	}
	return nil
}
