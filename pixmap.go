package plotters

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
)

// Pixmap represents a rectangular pixel buffer. It implements the
// DrawingBackend capability, so the rasterizer can paint into it directly,
// and the image.Image interface, so encoders can consume it as-is.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel, replacing what was there.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// DrawPixel implements the DrawingBackend capability. The color is
// alpha-blended over the existing pixel: a fully opaque color replaces
// it, a zero-alpha color leaves it untouched. Out-of-bounds coordinates
// are silently clipped; DrawPixel never fails on a Pixmap.
func (p *Pixmap) DrawPixel(x, y int, c RGBA) error {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return nil
	}
	if c.A <= 0 {
		return nil
	}
	if c.A >= 1 {
		p.SetPixel(x, y, c)
		return nil
	}
	bg := p.GetPixel(x, y)
	p.SetPixel(x, y, blendOver(c, bg))
	return nil
}

// blendOver composites src over dst using straight (non-premultiplied)
// alpha.
func blendOver(src, dst RGBA) RGBA {
	outA := src.A + dst.A*(1-src.A)
	if outA <= 0 {
		return Transparent
	}
	return RGBA{
		R: (src.R*src.A + dst.R*dst.A*(1-src.A)) / outA,
		G: (src.G*src.A + dst.G*dst.A*(1-src.A)) / outA,
		B: (src.B*src.A + dst.B*dst.A*(1-src.A)) / outA,
		A: outA,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}

	return pm
}

// Scaled returns a copy of the pixmap resampled to the given dimensions
// with a Lanczos kernel. Rendering at 2-4x and scaling down gives
// supersampled anti-aliasing for final output.
func (p *Pixmap) Scaled(width, height int) *Pixmap {
	img := imaging.Resize(p.ToImage(), width, height, imaging.Lanczos)
	return FromImage(img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	img := p.ToImage()
	return png.Encode(f, img)
}

// SaveGIF encodes a sequence of equally sized frames as an animated GIF.
// delay is the per-frame delay in hundredths of a second.
func SaveGIF(path string, frames []*Pixmap, delay int) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	anim := &gif.GIF{}
	for _, frame := range frames {
		img := frame.ToImage()
		pal := image.NewPaletted(img.Bounds(), palettedColors())
		for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
			for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
				pal.Set(x, y, img.At(x, y))
			}
		}
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(f, anim)
}

// palettedColors returns the 216-color web-safe palette plus grayscale,
// used for GIF quantization.
func palettedColors() color.Palette {
	var pal color.Palette
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				pal = append(pal, color.NRGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				})
			}
		}
	}
	for v := 0; v < 40; v++ {
		gray := uint8(v * 255 / 39)
		pal = append(pal, color.NRGBA{R: gray, G: gray, B: gray, A: 255})
	}
	return pal
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Set implements the draw.Image interface, so text and image drawing
// code from the standard library can composite straight into a Pixmap.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
