package coord

import (
	"math"
	"testing"

	"github.com/plotters-go/plotters"
)

func TestIdentityProjectionPassthrough(t *testing.T) {
	m := IdentityProjection()
	px, py, depth := m.Apply(3, -4, 7)
	if px != 3 || py != -4 || depth != 7 {
		t.Errorf("Apply(3, -4, 7) = (%v, %v, %v)", px, py, depth)
	}
}

func TestNewProjectionZeroAnglesIsScale(t *testing.T) {
	m := NewProjection(0, 0, 0.5)
	px, py, depth := m.Apply(10, 20, 30)
	if !close(px, 5) || !close(py, 10) || !close(depth, 15) {
		t.Errorf("Apply = (%v, %v, %v), want (5, 10, 15)", px, py, depth)
	}
}

func TestNewProjectionYawMovesDepthIntoX(t *testing.T) {
	// A quarter turn around the vertical axis maps +z onto +x.
	m := NewProjection(math.Pi/2, 0, 1)
	px, py, depth := m.Apply(0, 0, 1)
	if !close(px, 1) || !close(py, 0) || !close(depth, 0) {
		t.Errorf("Apply(0, 0, 1) = (%v, %v, %v), want (1, 0, 0)", px, py, depth)
	}
}

func TestNewProjectionPitchMovesDepthIntoY(t *testing.T) {
	m := NewProjection(0, math.Pi/2, 1)
	px, py, depth := m.Apply(0, 0, 1)
	if !close(px, 0) || !close(py, -1) || !close(depth, 0) {
		t.Errorf("Apply(0, 0, 1) = (%v, %v, %v), want (0, -1, 0)", px, py, depth)
	}
}

func close(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestCartesian3D(area plotters.DrawingArea) Cartesian3D[float64, float64, float64] {
	return NewCartesian3D[float64, float64, float64](
		NewF64Range(0, 1),
		NewF64Range(0, 1),
		NewF64Range(0, 1),
		area,
	)
}

func TestCartesian3DCenterMapsToAreaCenter(t *testing.T) {
	c := newTestCartesian3D(plotters.NewDrawingArea(200, 100))
	if got := c.Map(0.5, 0.5, 0.5); got != plotters.Coord(100, 50) {
		t.Errorf("Map(center) = %v, want (100, 50)", got)
	}
}

func TestCartesian3DIdentityView(t *testing.T) {
	c := newTestCartesian3D(plotters.NewDrawingArea(100, 100))
	c.SetProjection(IdentityProjection())

	// With the identity view the cube maps straight onto the region:
	// x right, y up, z ignored in screen position.
	if got := c.Map(0, 0, 0.5); got != plotters.Coord(0, 100) {
		t.Errorf("Map(0, 0) = %v, want bottom left (0, 100)", got)
	}
	if got := c.Map(1, 1, 0.5); got != plotters.Coord(100, 0) {
		t.Errorf("Map(1, 1) = %v, want top right (100, 0)", got)
	}
}

func TestCartesian3DDepthOrdersAlongZ(t *testing.T) {
	c := newTestCartesian3D(plotters.NewDrawingArea(100, 100))
	c.SetProjection(IdentityProjection())
	near := c.Depth(0.5, 0.5, 0)
	far := c.Depth(0.5, 0.5, 1)
	if far <= near {
		t.Errorf("depth should grow along z: near %v, far %v", near, far)
	}
}

func TestCartesian3DViewChangesMapping(t *testing.T) {
	c := newTestCartesian3D(plotters.NewDrawingArea(100, 100))
	before := c.Map(1, 0, 0)
	c.SetView(math.Pi/3, math.Pi/8, 0.7)
	after := c.Map(1, 0, 0)
	if before == after {
		t.Errorf("changing the view should move projected points: both %v", before)
	}
}
