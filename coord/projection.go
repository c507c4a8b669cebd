package coord

import (
	"math"

	"github.com/plotters-go/plotters"
)

// ProjectionMatrix is the 3-D-to-2-D linear transform applied before
// 2-D rasterization. It is a 4x4 homogeneous matrix built from yaw,
// pitch and scale; changing any parameter means rebuilding the matrix.
type ProjectionMatrix [4][4]float64

// IdentityProjection returns the identity transform.
func IdentityProjection() ProjectionMatrix {
	var m ProjectionMatrix
	m[0][0], m[1][1], m[2][2], m[3][3] = 1, 1, 1, 1
	return m
}

// NewProjection builds the transform scale * Rx(pitch) * Ry(yaw): the
// scene is first rotated around the vertical axis by yaw, then tilted
// toward the viewer by pitch, then scaled uniformly.
func NewProjection(yaw, pitch, scale float64) ProjectionMatrix {
	sy, cy := math.Sin(yaw), math.Cos(yaw)
	sp, cp := math.Sin(pitch), math.Cos(pitch)

	rotYaw := ProjectionMatrix{
		{cy, 0, sy, 0},
		{0, 1, 0, 0},
		{-sy, 0, cy, 0},
		{0, 0, 0, 1},
	}
	rotPitch := ProjectionMatrix{
		{1, 0, 0, 0},
		{0, cp, -sp, 0},
		{0, sp, cp, 0},
		{0, 0, 0, 1},
	}
	scaled := IdentityProjection()
	scaled[0][0], scaled[1][1], scaled[2][2] = scale, scale, scale

	return scaled.mul(rotPitch).mul(rotYaw)
}

// mul returns the matrix product m * o.
func (m ProjectionMatrix) mul(o ProjectionMatrix) ProjectionMatrix {
	var out ProjectionMatrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				out[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return out
}

// Apply transforms a 3-D point, returning the projected screen offsets
// and a depth value. Larger depth means farther from the viewer.
func (m ProjectionMatrix) Apply(x, y, z float64) (px, py, depth float64) {
	w := m[3][0]*x + m[3][1]*y + m[3][2]*z + m[3][3]
	if w == 0 {
		w = 1
	}
	px = (m[0][0]*x + m[0][1]*y + m[0][2]*z + m[0][3]) / w
	py = (m[1][0]*x + m[1][1]*y + m[1][2]*z + m[1][3]) / w
	depth = (m[2][0]*x + m[2][1]*y + m[2][2]*z + m[2][3]) / w
	return px, py, depth
}

// Cartesian3D combines three single-axis ranges, a projection and a
// pixel region into a pixel-space transform. Each axis is first mapped
// into a cube centered on the origin, the projection reduces the cube
// point to a 2-D offset plus depth, and the offset is translated to the
// region's center. Depth is used purely for back-to-front draw ordering
// of series elements; there is no depth buffer.
type Cartesian3D[X, Y, Z any] struct {
	X    Ranged[X]
	Y    Ranged[Y]
	Z    Ranged[Z]
	Area plotters.DrawingArea

	proj ProjectionMatrix
}

// NewCartesian3D builds a 3-D coordinate with the default view: a
// gentle yaw and pitch that shows all three axes, scaled to fit the
// region.
func NewCartesian3D[X, Y, Z any](x Ranged[X], y Ranged[Y], z Ranged[Z], area plotters.DrawingArea) Cartesian3D[X, Y, Z] {
	c := Cartesian3D[X, Y, Z]{X: x, Y: y, Z: z, Area: area}
	c.SetView(math.Pi/6, math.Pi/12, 0.7)
	return c
}

// SetView rebuilds the projection from yaw, pitch and scale.
func (c *Cartesian3D[X, Y, Z]) SetView(yaw, pitch, scale float64) {
	c.proj = NewProjection(yaw, pitch, scale)
}

// SetProjection installs a prebuilt projection matrix.
func (c *Cartesian3D[X, Y, Z]) SetProjection(m ProjectionMatrix) {
	c.proj = m
}

// Projection returns the current projection matrix.
func (c *Cartesian3D[X, Y, Z]) Projection() ProjectionMatrix {
	return c.proj
}

// cubeSide returns the pixel extent of the centered cube each axis maps
// into: the smaller side of the region, so the projected cube fits.
func (c *Cartesian3D[X, Y, Z]) cubeSide() int {
	s := c.Area.Width()
	if h := c.Area.Height(); h < s {
		s = h
	}
	return s
}

// project maps cube coordinates through the projection and translates
// them to the region center.
func (c *Cartesian3D[X, Y, Z]) project(cx, cy, cz float64) (plotters.BackendCoord, float64) {
	px, py, depth := c.proj.Apply(cx, cy, cz)
	midX := (c.Area.X0 + c.Area.X1) / 2
	midY := (c.Area.Y0 + c.Area.Y1) / 2
	return plotters.Coord(midX+int(math.Round(px)), midY+int(math.Round(py))), depth
}

// Map converts a 3-D domain point to a backend pixel coordinate.
func (c *Cartesian3D[X, Y, Z]) Map(x X, y Y, z Z) plotters.BackendCoord {
	p, _ := c.project(c.cube(x, y, z))
	return p
}

// Depth returns the projected depth of a domain point, for painter's
// algorithm ordering: draw larger depths first.
func (c *Cartesian3D[X, Y, Z]) Depth(x X, y Y, z Z) float64 {
	_, depth := c.project(c.cube(x, y, z))
	return depth
}

// cube maps a domain point into the centered pixel cube. The Y axis is
// reversed so increasing domain values move up the screen.
func (c *Cartesian3D[X, Y, Z]) cube(x X, y Y, z Z) (float64, float64, float64) {
	s := c.cubeSide()
	half := s / 2
	cx := c.X.Map(x, Pixels(-half, half))
	cy := c.Y.Map(y, Pixels(half, -half))
	cz := c.Z.Map(z, Pixels(-half, half))
	return float64(cx), float64(cy), float64(cz)
}
