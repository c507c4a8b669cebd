// Package font parses fonts and draws axis labels and captions. It is a
// thin collaborator around golang.org/x/image/font: the chart core only
// needs string metrics and a way to composite glyphs onto a pixel
// surface, not a full shaping pipeline.
package font

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/plotters-go/plotters"
)

// Face is a parsed font at a specific size. Face is safe for concurrent
// use once created.
type Face struct {
	face xfont.Face
	size float64
}

// NewFace parses TTF or OTF font data at the given size in points.
func NewFace(data []byte, size float64) (*Face, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: failed to create face: %w", err)
	}
	return &Face{face: face, size: size}, nil
}

var (
	defaultOnce sync.Once
	defaultFont *opentype.Font
)

// Default returns a face of the bundled Go Regular font at the given
// size. The bundled font always parses, so Default never fails.
func Default(size float64) *Face {
	defaultOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			panic("font: bundled goregular failed to parse: " + err.Error())
		}
		defaultFont = f
	})
	face, err := opentype.NewFace(defaultFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		panic("font: bundled goregular face: " + err.Error())
	}
	return &Face{face: face, size: size}
}

// Size returns the face's size in points.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics holds the face-level vertical metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of the
	// font (positive).
	Descent float64
	// Height is the recommended line height.
	Height float64
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}
}

// Advance returns the total advance width of the text in pixels.
func (f *Face) Advance(text string) float64 {
	return fixedToFloat(xfont.MeasureString(f.face, text))
}

// Style pairs a face with a color, the way ShapeStyle pairs geometry
// with one.
type Style struct {
	Face  *Face
	Color plotters.RGBA
}

// NewStyle creates a text style.
func NewStyle(face *Face, c plotters.RGBA) Style {
	return Style{Face: face, Color: c}
}

// Draw renders text onto dst with (x, y) at the baseline origin.
func Draw(dst draw.Image, text string, x, y float64, style Style) {
	if style.Face == nil || style.Color.A <= 0 {
		return
	}
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(style.Color.Color()),
		Face: style.Face.face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(text)
}

// DrawAnchored renders text positioned so that the anchor point (ax, ay)
// of its bounding box sits at (x, y). (0, 0) anchors the top-left,
// (0.5, 0.5) the center, (1, 1) the bottom-right.
func DrawAnchored(dst draw.Image, text string, x, y, ax, ay float64, style Style) {
	if style.Face == nil {
		return
	}
	w := style.Face.Advance(text)
	m := style.Face.Metrics()
	h := m.Ascent + m.Descent
	Draw(dst, text, x-ax*w, y-ay*h+m.Ascent, style)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
