package plotters

// ShapeStyle describes how a primitive is drawn: its color (with alpha),
// whether shapes are filled, and the stroke width for outlines.
// ShapeStyle is a plain value; the WithX methods return copies.
type ShapeStyle struct {
	// Color is the draw color including alpha. A zero-alpha color makes
	// every rasterizer primitive a no-op.
	Color RGBA

	// Filled selects filled rendering for closed shapes
	// (circle, rectangle, polygon).
	Filled bool

	// StrokeWidth is the outline width in pixels. Default: 1
	StrokeWidth int
}

// Solid returns a filled style in the given color.
func Solid(c RGBA) ShapeStyle {
	return ShapeStyle{Color: c, Filled: true, StrokeWidth: 1}
}

// Stroked returns an outline style in the given color and width.
func Stroked(c RGBA, width int) ShapeStyle {
	return ShapeStyle{Color: c, Filled: false, StrokeWidth: width}
}

// WithColor returns a copy of the style with the given color.
func (s ShapeStyle) WithColor(c RGBA) ShapeStyle {
	s.Color = c
	return s
}

// WithStrokeWidth returns a copy of the style with the given stroke width.
func (s ShapeStyle) WithStrokeWidth(w int) ShapeStyle {
	s.StrokeWidth = w
	return s
}

// WithFilled returns a copy of the style with the given fill flag.
func (s ShapeStyle) WithFilled(filled bool) ShapeStyle {
	s.Filled = filled
	return s
}

// Invisible reports whether drawing with this style touches no pixels.
func (s ShapeStyle) Invisible() bool {
	return s.Color.A <= 0
}
