package pixel

import "image/color"

// RGB565Model converts any color to RGB565.
var RGB565Model color.Model = color.ModelFunc(rgb565Model)

// Well known packed values.
const (
	Black uint16 = 0x0000
	Red   uint16 = 0xf800
	Green uint16 = 0x07e0
	Blue  uint16 = 0x001f
	White uint16 = 0xffff
)

// RGB565 represents a 16-bit 5-6-5 RGB color.
type RGB565 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c RGB565) RGBA() (r, g, b, a uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	red := (c.V & 0xf800) >> 8
	grn := (c.V & 0x07e0) >> 3
	blu := (c.V & 0x001f) << 3
	// Duplicate the high bits in the low bits.
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	// Duplicate the whole value in the high byte.
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return uint32(red), uint32(grn), uint32(blu), 0xffff
}

// Components returns the raw 5-bit red, 6-bit green and 5-bit blue channels.
func (c RGB565) Components() (r, g, b uint8) {
	return uint8(c.V >> 11), uint8(c.V>>5) & 0x3f, uint8(c.V) & 0x1f
}

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	return RGB565{Pack(c)}
}

// Pack converts c to its packed 5-6-5 word. Channels are truncated, so the
// packing of an RGB565 value is the value itself.
func Pack(c color.Color) uint16 {
	switch c := c.(type) {
	case RGB565:
		return c.V
	case color.RGBA:
		// Fast path for TinyGo style colors.
		return PackRGB(c.R, c.G, c.B)
	default:
		r, g, b, _ := c.RGBA()
		r = r & 0xf800
		g = (g & 0xfc00) >> 5
		b = (b & 0xf800) >> 11
		return uint16(r | g | b)
	}
}

// PackRGB packs 8-bit channels.
func PackRGB(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}
