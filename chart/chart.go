// Package chart layers a thin chart-building API over the coordinate
// and rasterizer packages: axis meshes with tick labels, captions, and
// line, scatter and bar series. It is orchestration only; all pixel
// work happens in package raster and all value mapping in package
// coord.
package chart

import (
	"fmt"
	"image/draw"

	"github.com/plotters-go/plotters"
	"github.com/plotters-go/plotters/coord"
	"github.com/plotters-go/plotters/font"
	"github.com/plotters-go/plotters/raster"
)

// Surface is what a chart renders onto: the single-pixel blending
// capability for the rasterizer plus draw.Image for label compositing.
// Pixmap satisfies both.
type Surface interface {
	plotters.DrawingBackend
	draw.Image
}

// Sample is one data point of a 2-D series.
type Sample[X, Y any] struct {
	X X
	Y Y
}

// Chart draws series into a pixel region through a 2-D coordinate.
type Chart[X, Y any] struct {
	surf  Surface
	coord coord.Cartesian2D[X, Y]
}

// New creates a chart over the given surface, pixel region and axis
// ranges.
func New[X, Y any](surf Surface, area plotters.DrawingArea, x coord.Ranged[X], y coord.Ranged[Y]) *Chart[X, Y] {
	return &Chart[X, Y]{
		surf:  surf,
		coord: coord.NewCartesian2D(x, y, area),
	}
}

// Coord returns the chart's coordinate transform.
func (c *Chart[X, Y]) Coord() coord.Cartesian2D[X, Y] {
	return c.coord
}

// MeshConfig controls mesh and axis rendering.
type MeshConfig[X, Y any] struct {
	// MaxXTicks and MaxYTicks bound the number of key points requested
	// per axis. Zero means a default of 10.
	MaxXTicks int
	MaxYTicks int

	// GridStyle draws the interior grid lines. An invisible style skips
	// them.
	GridStyle plotters.ShapeStyle

	// AxisStyle draws the left and bottom axis lines.
	AxisStyle plotters.ShapeStyle

	// Label draws tick labels. A nil face skips labels.
	Label font.Style

	// FormatX and FormatY convert tick values to label text. Nil
	// formatters fall back to fmt.Sprint.
	FormatX func(X) string
	FormatY func(Y) string
}

// DefaultMesh returns a light-gray mesh with black axes and labels in
// the bundled font.
func DefaultMesh[X, Y any]() MeshConfig[X, Y] {
	return MeshConfig[X, Y]{
		MaxXTicks: 10,
		MaxYTicks: 10,
		GridStyle: plotters.Stroked(plotters.RGB(0.9, 0.9, 0.9), 1),
		AxisStyle: plotters.Stroked(plotters.Black, 1),
		Label:     font.NewStyle(font.Default(12), plotters.Black),
	}
}

// drawLine routes a segment through the surface's native line primitive
// when it has one, falling back to the per-pixel rasterizer.
func drawLine(s Surface, from, to plotters.BackendCoord, style plotters.ShapeStyle) error {
	if lb, ok := s.(plotters.LineBackend); ok {
		return lb.DrawLine(from, to, style)
	}
	return raster.DrawLine(s, from, to, style)
}

// DrawMesh renders grid lines at each axis key point, the axis lines,
// and tick labels along the bottom and left edges.
func (c *Chart[X, Y]) DrawMesh(cfg MeshConfig[X, Y]) error {
	area := c.coord.Area
	maxX, maxY := cfg.MaxXTicks, cfg.MaxYTicks
	if maxX <= 0 {
		maxX = 10
	}
	if maxY <= 0 {
		maxY = 10
	}
	fmtX := cfg.FormatX
	if fmtX == nil {
		fmtX = func(v X) string { return fmt.Sprint(v) }
	}
	fmtY := cfg.FormatY
	if fmtY == nil {
		fmtY = func(v Y) string { return fmt.Sprint(v) }
	}

	xTicks := c.coord.X.KeyPoints(maxX)
	yTicks := c.coord.Y.KeyPoints(maxY)
	plotters.Logger().Debug("chart: mesh ticks",
		"x", len(xTicks), "y", len(yTicks))

	for _, xv := range xTicks {
		px := c.coord.X.Map(xv, c.coord.XPixels())
		if err := drawLine(c.surf,
			plotters.Coord(px, area.Y0),
			plotters.Coord(px, area.Y1-1),
			cfg.GridStyle); err != nil {
			return err
		}
		if cfg.Label.Face != nil {
			font.DrawAnchored(c.surf, fmtX(xv),
				float64(px), float64(area.Y1)+4, 0.5, 0, cfg.Label)
		}
	}
	for _, yv := range yTicks {
		py := c.coord.Y.Map(yv, c.coord.YPixels())
		if err := drawLine(c.surf,
			plotters.Coord(area.X0, py),
			plotters.Coord(area.X1-1, py),
			cfg.GridStyle); err != nil {
			return err
		}
		if cfg.Label.Face != nil {
			font.DrawAnchored(c.surf, fmtY(yv),
				float64(area.X0)-4, float64(py), 1, 0.5, cfg.Label)
		}
	}

	// Axis lines last so grid lines never overdraw them.
	if err := drawLine(c.surf,
		plotters.Coord(area.X0, area.Y0),
		plotters.Coord(area.X0, area.Y1-1),
		cfg.AxisStyle); err != nil {
		return err
	}
	return drawLine(c.surf,
		plotters.Coord(area.X0, area.Y1-1),
		plotters.Coord(area.X1-1, area.Y1-1),
		cfg.AxisStyle)
}

// Caption draws a centered title above the plot area.
func (c *Chart[X, Y]) Caption(title string, style font.Style) {
	area := c.coord.Area
	font.DrawAnchored(c.surf, title,
		float64(area.X0+area.X1)/2, float64(area.Y0)-6, 0.5, 1, style)
}

// DrawLineSeries draws the samples as a connected polyline. The style's
// stroke width selects between the hairline and polygonized paths.
func (c *Chart[X, Y]) DrawLineSeries(samples []Sample[X, Y], style plotters.ShapeStyle) error {
	if len(samples) == 0 {
		return nil
	}
	points := make([]plotters.BackendCoord, len(samples))
	for i, s := range samples {
		points[i] = c.coord.Map(s.X, s.Y)
	}
	return raster.DrawPath(c.surf, points, style)
}

// DrawScatter draws one circle per sample.
func (c *Chart[X, Y]) DrawScatter(samples []Sample[X, Y], radius int, style plotters.ShapeStyle) error {
	for _, s := range samples {
		if err := raster.DrawCircle(c.surf, c.coord.Map(s.X, s.Y), radius, style); err != nil {
			return err
		}
	}
	return nil
}
