// Package draw has generic drawing primitives for any [image/draw.Image].
//
// Primitives do not clip; they rely on the destination discarding points outside
// of its bounds, which every image in this module does.
package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Filler is an image that fills itself faster than point by point, such as a
// display with a fill engine.
type Filler interface {
	Fill(color.Color)
}

// Fill paints all of dst with c.
func Fill(dst Image, c color.Color) {
	if f, ok := dst.(Filler); ok {
		f.Fill(c)
		return
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Copy places src on dst with the top left corner of src at pt. Transparent
// parts of src replace what is on dst.
func Copy(dst Image, pt image.Point, src image.Image) {
	sr := src.Bounds()
	draw.Draw(dst, sr.Sub(sr.Min).Add(pt), src, sr.Min, draw.Src)
}

// Blend places src over dst with the top left corner of src at pt.
func Blend(dst Image, pt image.Point, src image.Image) {
	sr := src.Bounds()
	draw.Draw(dst, sr.Sub(sr.Min).Add(pt), src, sr.Min, draw.Over)
}
