package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/ltdc/draw"
)

// Image is a drawable image that can be cleared and filled.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// RGB565Image is a 16-bits per pixel 5-6-5-bit RGB image stored as native words, the
// layout LTDC layers scan.
type RGB565Image struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels, row-major.
	Pix []uint16

	// Stride is the Pix stride (in words) between vertically adjacent pixels.
	Stride int
}

// NewRGB565Image returns a new image with the given bounds.
func NewRGB565Image(r image.Rectangle) *RGB565Image {
	w, h := r.Dx(), r.Dy()
	return &RGB565Image{
		Rect:   r,
		Pix:    make([]uint16, w*h),
		Stride: w,
	}
}

func (p *RGB565Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

// PixOffset returns the index of the word holding the pixel at (x, y).
func (p *RGB565Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return RGB565{p.Pix[p.PixOffset(x, y)]}
}

// RGB565At returns the packed value at (x, y), or zero outside the bounds.
func (p *RGB565Image) RGB565At(x, y int) uint16 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return 0
	}
	return p.Pix[p.PixOffset(x, y)]
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = Pack(c)
}

func (p *RGB565Image) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0
	}
}

func (p *RGB565Image) Fill(c color.Color) {
	value := Pack(c)
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// RGBA expands the image to 8-bit RGBA, as used by image encoders and windowing
// toolkits.
func (p *RGB565Image) RGBA() *image.RGBA {
	out := image.NewRGBA(p.Rect)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			r, g, b := Expand(p.Pix[p.PixOffset(x, y)])
			i := out.PixOffset(x, y)
			out.Pix[i+0] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = 0xff
		}
	}
	return out
}

// Expand unpacks a 5-6-5 word to 8-bit channels by replicating the high bits.
func Expand(v uint16) (r, g, b uint8) {
	r = uint8(v>>8) & 0xf8
	g = uint8(v>>3) & 0xfc
	b = uint8(v << 3)
	return r | r>>5, g | g>>6, b | b>>5
}

// Interface checks.
var (
	_ Image = (*RGB565Image)(nil)
)
