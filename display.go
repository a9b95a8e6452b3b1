package ltdc

import (
	"image"
	"image/color"
	"iter"
	"log"

	"tinygo.org/x/drivers"

	"github.com/BeatGlow/ltdc/draw"
	"github.com/BeatGlow/ltdc/pixel"
)

// Pixel is a point with a color. The point may lie anywhere, including outside
// of the panel.
type Pixel struct {
	Point image.Point
	Color color.Color
}

// Display is the drawing surface of one layer. It clips everything outside of
// the active area and converts colors to the packed 5-6-5 format.
//
// Display implements [image/draw.Image] and the TinyGo [drivers.Displayer].
type Display struct {
	c      *Controller
	layer  Layer
	width  int
	height int
}

// NewDisplay returns the drawing surface for a bound layer.
func NewDisplay(c *Controller, l Layer) (*Display, error) {
	if !c.Bound(l) {
		return nil, ErrLayerNotBound
	}
	return &Display{
		c:      c,
		layer:  l,
		width:  c.config.ActiveWidth,
		height: c.config.ActiveHeight,
	}, nil
}

// Controller returns the controller this display draws through.
func (d *Display) Controller() *Controller {
	return d.c
}

// Layer returns the layer this display draws on.
func (d *Display) Layer() Layer {
	return d.layer
}

func (d *Display) in(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

// Draw writes every in-range pixel and silently drops the others. It never
// fails; the error exists to match drawing interfaces that can.
func (d *Display) Draw(pixels iter.Seq[Pixel]) error {
	for p := range pixels {
		if d.in(p.Point.X, p.Point.Y) {
			d.c.DrawPixel(d.layer, p.Point.X, p.Point.Y, pixel.Pack(p.Color))
		}
	}
	return nil
}

// Size is the logical drawable area (width, height).
func (d *Display) Size() (x, y int16) {
	return int16(d.width), int16(d.height)
}

// Bounds is the display bounding box.
func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// ColorModel used by the display.
func (d *Display) ColorModel() color.Model {
	return pixel.RGB565Model
}

// At returns the color of the pixel at (x, y).
func (d *Display) At(x, y int) color.Color {
	if !d.in(x, y) {
		return color.Transparent
	}
	return pixel.RGB565{V: d.c.Pixel(d.layer, x, y)}
}

// Set the pixel color at (x, y).
func (d *Display) Set(x, y int, c color.Color) {
	if d.in(x, y) {
		d.c.DrawPixel(d.layer, x, y, pixel.Pack(c))
	}
}

// SetPixel sets the pixel color at (x, y).
func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.in(int(x), int(y)) {
		d.c.DrawPixel(d.layer, int(x), int(y), pixel.PackRGB(c.R, c.G, c.B))
	}
}

// Display is a no-op: the controller scans the framebuffer continuously.
func (d *Display) Display() error {
	return nil
}

// Clear the display to black.
func (d *Display) Clear() {
	d.fill(0)
}

// Fill the display with a single color. A failing fill engine is logged; the
// drawing interfaces have no way to report it.
func (d *Display) Fill(c color.Color) {
	d.fill(pixel.Pack(c))
}

func (d *Display) fill(raw uint16) {
	if err := d.c.Fill(d.layer, raw); err != nil {
		log.Printf("ltdc: fill %s with %#04x: %v", d.layer, raw, err)
	}
}

// Interface checks.
var (
	_ draw.Image        = (*Display)(nil)
	_ drivers.Displayer = (*Display)(nil)
)
