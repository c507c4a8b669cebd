package plotters

import "fmt"

// DrawingArea is a rectangular pixel region, half-open on both axes:
// it covers the pixels in [X0, X1) x [Y0, Y1). Areas are plain values;
// split operations return new areas that partition the parent's pixel
// set exactly, with no overlap and no gaps.
type DrawingArea struct {
	X0, Y0 int
	X1, Y1 int
}

// NewDrawingArea creates an area covering a width x height pixel region
// anchored at the origin.
func NewDrawingArea(width, height int) DrawingArea {
	return DrawingArea{X0: 0, Y0: 0, X1: width, Y1: height}
}

// Width returns the pixel width of the area.
func (a DrawingArea) Width() int {
	return a.X1 - a.X0
}

// Height returns the pixel height of the area.
func (a DrawingArea) Height() int {
	return a.Y1 - a.Y0
}

// XRange returns the horizontal pixel limits as (start, end).
func (a DrawingArea) XRange() (int, int) {
	return a.X0, a.X1
}

// YRange returns the vertical pixel limits as (start, end).
func (a DrawingArea) YRange() (int, int) {
	return a.Y0, a.Y1
}

// Contains reports whether the pixel (x, y) lies inside the area.
func (a DrawingArea) Contains(x, y int) bool {
	return x >= a.X0 && x < a.X1 && y >= a.Y0 && y < a.Y1
}

// String implements fmt.Stringer.
func (a DrawingArea) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", a.X0, a.X1, a.Y0, a.Y1)
}

// SplitVertically splits the area into top and bottom parts at the given
// pixel offset from the top edge. The offset is clamped to the area's
// height.
func (a DrawingArea) SplitVertically(offset int) (top, bottom DrawingArea) {
	y := a.Y0 + clampInt(offset, 0, a.Height())
	top = DrawingArea{X0: a.X0, Y0: a.Y0, X1: a.X1, Y1: y}
	bottom = DrawingArea{X0: a.X0, Y0: y, X1: a.X1, Y1: a.Y1}
	return top, bottom
}

// SplitHorizontally splits the area into left and right parts at the
// given pixel offset from the left edge. The offset is clamped to the
// area's width.
func (a DrawingArea) SplitHorizontally(offset int) (left, right DrawingArea) {
	x := a.X0 + clampInt(offset, 0, a.Width())
	left = DrawingArea{X0: a.X0, Y0: a.Y0, X1: x, Y1: a.Y1}
	right = DrawingArea{X0: x, Y0: a.Y0, X1: a.X1, Y1: a.Y1}
	return left, right
}

// SplitEvenly splits the area into a rows x cols grid, returned in
// row-major order. Remainder pixels go to the last row and column so the
// grid tiles the parent exactly.
func (a DrawingArea) SplitEvenly(rows, cols int) []DrawingArea {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	cellW := a.Width() / cols
	cellH := a.Height() / rows

	out := make([]DrawingArea, 0, rows*cols)
	for r := 0; r < rows; r++ {
		y0 := a.Y0 + r*cellH
		y1 := y0 + cellH
		if r == rows-1 {
			y1 = a.Y1
		}
		for c := 0; c < cols; c++ {
			x0 := a.X0 + c*cellW
			x1 := x0 + cellW
			if c == cols-1 {
				x1 = a.X1
			}
			out = append(out, DrawingArea{X0: x0, Y0: y0, X1: x1, Y1: y1})
		}
	}
	return out
}

// SplitByBreakpoints splits the area by absolute pixel breakpoints along
// both axes, producing (len(xBreaks)+1) * (len(yBreaks)+1) sub-areas in
// row-major order. Breakpoints are relative to the area's origin and are
// clamped to its bounds; they must be in increasing order.
func (a DrawingArea) SplitByBreakpoints(xBreaks, yBreaks []int) []DrawingArea {
	xs := breakEdges(a.X0, a.X1, xBreaks)
	ys := breakEdges(a.Y0, a.Y1, yBreaks)

	out := make([]DrawingArea, 0, (len(xs)-1)*(len(ys)-1))
	for yi := 0; yi+1 < len(ys); yi++ {
		for xi := 0; xi+1 < len(xs); xi++ {
			out = append(out, DrawingArea{
				X0: xs[xi], Y0: ys[yi],
				X1: xs[xi+1], Y1: ys[yi+1],
			})
		}
	}
	return out
}

// breakEdges converts relative breakpoints into a sorted list of absolute
// cell edges spanning [lo, hi].
func breakEdges(lo, hi int, breaks []int) []int {
	edges := make([]int, 0, len(breaks)+2)
	edges = append(edges, lo)
	for _, b := range breaks {
		edges = append(edges, clampInt(lo+b, lo, hi))
	}
	edges = append(edges, hi)
	return edges
}

// Shrink returns the inset sub-rectangle at the given relative origin
// with the given size, clamped to the parent's bounds.
func (a DrawingArea) Shrink(originX, originY, width, height int) DrawingArea {
	x0 := clampInt(a.X0+originX, a.X0, a.X1)
	y0 := clampInt(a.Y0+originY, a.Y0, a.Y1)
	x1 := clampInt(x0+width, x0, a.X1)
	y1 := clampInt(y0+height, y0, a.Y1)
	return DrawingArea{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Margin returns the area inset by the given margins on each side.
// Margins that exceed the area collapse it to an empty region.
func (a DrawingArea) Margin(top, bottom, left, right int) DrawingArea {
	x0 := clampInt(a.X0+left, a.X0, a.X1)
	y0 := clampInt(a.Y0+top, a.Y0, a.Y1)
	x1 := clampInt(a.X1-right, x0, a.X1)
	y1 := clampInt(a.Y1-bottom, y0, a.Y1)
	return DrawingArea{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
