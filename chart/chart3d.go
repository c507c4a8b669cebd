package chart

import (
	"sort"

	"github.com/plotters-go/plotters"
	"github.com/plotters-go/plotters/coord"
	"github.com/plotters-go/plotters/raster"
)

// Sample3 is one data point of a 3-D series.
type Sample3[X, Y, Z any] struct {
	X X
	Y Y
	Z Z
}

// Chart3D draws series through a projected 3-D coordinate. Elements are
// ordered back to front by projected depth before drawing; there is no
// depth buffer.
type Chart3D[X, Y, Z any] struct {
	surf  Surface
	coord *coord.Cartesian3D[X, Y, Z]
}

// New3D creates a 3-D chart over the given surface, region and axis
// ranges, with the default view projection.
func New3D[X, Y, Z any](surf Surface, area plotters.DrawingArea, x coord.Ranged[X], y coord.Ranged[Y], z coord.Ranged[Z]) *Chart3D[X, Y, Z] {
	c3 := coord.NewCartesian3D(x, y, z, area)
	return &Chart3D[X, Y, Z]{surf: surf, coord: &c3}
}

// Coord returns the chart's coordinate transform, for adjusting the
// view projection.
func (c *Chart3D[X, Y, Z]) Coord() *coord.Cartesian3D[X, Y, Z] {
	return c.coord
}

// DrawAxes draws the three axis lines from the domain origin corner.
func (c *Chart3D[X, Y, Z]) DrawAxes(style plotters.ShapeStyle) error {
	x0, x1 := c.coord.X.Domain()
	y0, y1 := c.coord.Y.Domain()
	z0, z1 := c.coord.Z.Domain()

	origin := c.coord.Map(x0, y0, z0)
	ends := []plotters.BackendCoord{
		c.coord.Map(x1, y0, z0),
		c.coord.Map(x0, y1, z0),
		c.coord.Map(x0, y0, z1),
	}
	for _, end := range ends {
		if err := raster.DrawLine(c.surf, origin, end, style); err != nil {
			return err
		}
	}
	return nil
}

// DrawScatter draws one circle per sample, farthest first, so nearer
// points overpaint farther ones.
func (c *Chart3D[X, Y, Z]) DrawScatter(samples []Sample3[X, Y, Z], radius int, style plotters.ShapeStyle) error {
	type projected struct {
		pos   plotters.BackendCoord
		depth float64
	}
	pts := make([]projected, len(samples))
	for i, s := range samples {
		pts[i] = projected{
			pos:   c.coord.Map(s.X, s.Y, s.Z),
			depth: c.coord.Depth(s.X, s.Y, s.Z),
		}
	}
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].depth > pts[j].depth
	})
	for _, p := range pts {
		if err := raster.DrawCircle(c.surf, p.pos, radius, style); err != nil {
			return err
		}
	}
	return nil
}
