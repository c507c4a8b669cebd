package plotters

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is an ordered set of series colors. Pick wraps around, so a
// palette can color any number of series.
type Palette struct {
	colors []RGBA
}

// NewPalette creates a palette from the given colors.
// An empty color list falls back to the default palette.
func NewPalette(colors ...RGBA) Palette {
	if len(colors) == 0 {
		return Palette99()
	}
	return Palette{colors: colors}
}

// Pick returns the color for series index i, wrapping around.
func (p Palette) Pick(i int) RGBA {
	if len(p.colors) == 0 {
		return Black
	}
	if i < 0 {
		i = -i
	}
	return p.colors[i%len(p.colors)]
}

// Len returns the number of distinct colors in the palette.
func (p Palette) Len() int {
	return len(p.colors)
}

// Palette99 returns the default categorical palette, a set of
// well-separated hues tuned for chart series.
func Palette99() Palette {
	return Palette{colors: []RGBA{
		Hex("e6194B"),
		Hex("3cb44b"),
		Hex("ffe119"),
		Hex("4363d8"),
		Hex("f58231"),
		Hex("911eb4"),
		Hex("42d4f4"),
		Hex("f032e6"),
		Hex("bfef45"),
		Hex("fabed4"),
		Hex("469990"),
		Hex("dcbeff"),
		Hex("9A6324"),
		Hex("fffac8"),
		Hex("800000"),
		Hex("aaffc3"),
		Hex("808000"),
		Hex("ffd8b1"),
		Hex("000075"),
		Hex("a9a9a9"),
	}}
}

// PaletteHCL returns a categorical palette of n colors with evenly spaced
// hues at fixed chroma and luminance, generated in HCL space so the colors
// are perceptually equidistant.
func PaletteHCL(n int) Palette {
	if n <= 0 {
		return Palette{}
	}
	colors := make([]RGBA, n)
	for i := range colors {
		h := float64(i) * 360.0 / float64(n)
		c := colorful.Hcl(h, 0.6, 0.6).Clamped()
		colors[i] = RGB(c.R, c.G, c.B)
	}
	return Palette{colors: colors}
}

// Colormap maps a value in [0, 1] to a color along a continuous ramp.
// Values outside [0, 1] are clamped to the endpoints.
type Colormap struct {
	stops []colorful.Color
}

// NewColormap builds a colormap from at least two color stops, spaced
// evenly along [0, 1]. Interpolation happens in CIE-Lab space, which
// avoids the muddy midpoints RGB blending produces.
func NewColormap(stops ...RGBA) Colormap {
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		cs[i] = colorful.Color{R: s.R, G: s.G, B: s.B}
	}
	return Colormap{stops: cs}
}

// At returns the color at position t along the ramp.
func (m Colormap) At(t float64) RGBA {
	if len(m.stops) == 0 {
		return Black
	}
	if len(m.stops) == 1 || t <= 0 {
		c := m.stops[0]
		return RGB(c.R, c.G, c.B)
	}
	if t >= 1 {
		c := m.stops[len(m.stops)-1]
		return RGB(c.R, c.G, c.B)
	}
	scaled := t * float64(len(m.stops)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	c := m.stops[i].BlendLab(m.stops[i+1], frac).Clamped()
	return RGB(c.R, c.G, c.B)
}

// ViridisMap returns a perceptually uniform dark-blue-to-yellow colormap
// commonly used for heat scales.
func ViridisMap() Colormap {
	return NewColormap(
		Hex("440154"),
		Hex("414487"),
		Hex("2a788e"),
		Hex("22a884"),
		Hex("7ad151"),
		Hex("fde725"),
	)
}
