package raster

import (
	"errors"

	"github.com/plotters-go/plotters"
)

// gridBackend records every DrawPixel call, accumulating alpha per pixel,
// for asserting exact pixel sets and coverage.
type gridBackend struct {
	alpha  map[[2]int]float64
	writes map[[2]int]int
	calls  int
}

func newGridBackend() *gridBackend {
	return &gridBackend{
		alpha:  make(map[[2]int]float64),
		writes: make(map[[2]int]int),
	}
}

func (g *gridBackend) DrawPixel(x, y int, c plotters.RGBA) error {
	g.calls++
	g.alpha[[2]int{x, y}] += c.A
	g.writes[[2]int{x, y}]++
	return nil
}

func (g *gridBackend) painted() int {
	return len(g.writes)
}

var errBackend = errors.New("backend failed")

// failBackend returns errBackend after a fixed number of successful calls.
type failBackend struct {
	remaining int
}

func (f *failBackend) DrawPixel(x, y int, c plotters.RGBA) error {
	if f.remaining <= 0 {
		return errBackend
	}
	f.remaining--
	return nil
}
