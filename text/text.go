// Package text draws strings on a display.
//
// Faces come from golang.org/x/image/font: the built in 7x13 bitmap face and
// Go Regular rendered by freetype at any size. TinyGo drawing code can use
// [WriteTiny], which goes through the [drivers.Displayer] interface instead.
package text

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/BeatGlow/ltdc/draw"
)

// Default is a 7x13 pixel bitmap face.
var Default font.Face = basicfont.Face7x13

// Tiny is the font used by WriteTiny.
var Tiny tinyfont.Fonter = &proggy.TinySZ8pt7b

var parseGoRegular = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// GoRegular returns the Go Regular face at size points (at 72 DPI, so points
// are pixels).
func GoRegular(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("text: invalid font size %g", size)
	}
	f, err := parseGoRegular()
	if err != nil {
		return nil, fmt.Errorf("text: parse Go Regular: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Draw writes s in color c with the baseline of the first glyph at dot. It
// returns the dot after the last glyph.
func Draw(dst draw.Image, face font.Face, dot image.Point, c color.Color, s string) image.Point {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(s)
	return image.Pt(d.Dot.X.Round(), d.Dot.Y.Round())
}

// Bounds is the rectangle Draw would paint for s at dot.
func Bounds(face font.Face, dot image.Point, s string) image.Rectangle {
	b, _ := font.BoundString(face, s)
	return image.Rect(
		b.Min.X.Floor(), b.Min.Y.Floor(),
		b.Max.X.Ceil(), b.Max.Y.Ceil(),
	).Add(dot)
}

// WriteTiny writes s with the Tiny font, baseline at (x, y).
func WriteTiny(d drivers.Displayer, x, y int16, c color.RGBA, s string) {
	tinyfont.WriteLine(d, Tiny, x, y, s, c)
}
