package raster

import (
	"errors"
	"math"
	"testing"

	"github.com/plotters-go/plotters"
)

func TestDrawCircleNoops(t *testing.T) {
	g := newGridBackend()
	if err := DrawCircle(g, plotters.Coord(5, 5), 0, plotters.Solid(plotters.Black)); err != nil {
		t.Fatal(err)
	}
	if err := DrawCircle(g, plotters.Coord(5, 5), 3, plotters.Solid(plotters.Transparent)); err != nil {
		t.Fatal(err)
	}
	if g.calls != 0 {
		t.Errorf("no-op cases touched %d pixels", g.calls)
	}
}

func TestDrawCircleFilled(t *testing.T) {
	const r = 5
	center := plotters.Coord(20, 20)
	g := newGridBackend()
	if err := DrawCircle(g, center, r, plotters.Solid(plotters.Black)); err != nil {
		t.Fatal(err)
	}

	// Every interior pixel is covered exactly once; the horizontal rows
	// and the cap columns must not overlap.
	for p, n := range g.writes {
		if n != 1 {
			t.Errorf("pixel %v written %d times", p, n)
		}
	}
	for _, p := range [][2]int{{20, 20}, {25, 20}, {15, 20}, {20, 25}, {20, 15}} {
		if g.writes[p] == 0 {
			t.Errorf("pixel %v inside the disk not painted", p)
		}
	}
	for _, p := range [][2]int{{26, 20}, {24, 24}, {14, 14}} {
		if g.writes[p] != 0 {
			t.Errorf("pixel %v outside the disk painted", p)
		}
	}
}

func TestDrawCircleFilledSymmetric(t *testing.T) {
	center := plotters.Coord(30, 30)
	g := newGridBackend()
	if err := DrawCircle(g, center, 7, plotters.Solid(plotters.Black)); err != nil {
		t.Fatal(err)
	}
	for p := range g.writes {
		dx, dy := p[0]-center.X, p[1]-center.Y
		for _, m := range [][2]int{{-dx, dy}, {dx, -dy}, {dy, dx}} {
			q := [2]int{center.X + m[0], center.Y + m[1]}
			if g.writes[q] == 0 {
				t.Fatalf("pixel %v painted but reflection %v is not", p, q)
			}
		}
	}
}

func TestDrawCircleStroke(t *testing.T) {
	const r = 5
	center := plotters.Coord(20, 20)
	g := newGridBackend()
	if err := DrawCircle(g, center, r, plotters.Stroked(plotters.Black, 1)); err != nil {
		t.Fatal(err)
	}

	if g.painted() == 0 {
		t.Fatal("stroke painted nothing")
	}
	// The outline touches only pixels near the boundary.
	for p := range g.writes {
		dx, dy := float64(p[0]-center.X), float64(p[1]-center.Y)
		d := math.Hypot(dx, dy)
		if d < r-1.5 || d > r+1.5 {
			t.Errorf("pixel %v at distance %.2f is not on the boundary", p, d)
		}
	}
	if g.writes[[2]int{20, 20}] != 0 {
		t.Errorf("stroke painted the center")
	}
}

func TestDrawCircleStrokeBlendsEdges(t *testing.T) {
	center := plotters.Coord(20, 20)
	g := newGridBackend()
	if err := DrawCircle(g, center, 3, plotters.Stroked(plotters.Black, 1)); err != nil {
		t.Fatal(err)
	}
	// On the row one above center the half-chord is sqrt(8): the inner
	// pixel takes the fractional coverage and the outer the remainder.
	frac := math.Sqrt(8) - 2
	if a := g.alpha[[2]int{22, 19}]; math.Abs(a-frac) > 1e-9 {
		t.Errorf("inner edge alpha = %v, want %v", a, frac)
	}
	if a := g.alpha[[2]int{23, 19}]; math.Abs(a-(1-frac)) > 1e-9 {
		t.Errorf("outer edge alpha = %v, want %v", a, 1-frac)
	}
}

func TestDrawCirclePropagatesBackendError(t *testing.T) {
	b := &failBackend{remaining: 3}
	err := DrawCircle(b, plotters.Coord(10, 10), 5, plotters.Solid(plotters.Black))
	if !errors.Is(err, errBackend) {
		t.Errorf("got %v, want backend error", err)
	}
}
