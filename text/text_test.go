package text

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/ltdc/pixel"
)

func testLit(m *pixel.RGB565Image) (n int, bounds image.Rectangle) {
	r := m.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if m.RGB565At(x, y) != pixel.Black {
				n++
				bounds = bounds.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return
}

func TestDraw(t *testing.T) {
	m := pixel.NewRGB565Image(image.Rect(0, 0, 480, 272))
	dot := image.Pt(20, 30)

	end := Draw(m, Default, dot, color.White, "hello")
	if end.Y != dot.Y || end.X != dot.X+5*7 {
		t.Errorf("expected dot to advance to %s, got %s", image.Pt(dot.X+35, dot.Y), end)
	}

	n, lit := testLit(m)
	if n == 0 {
		t.Fatal("expected text to be drawn")
	}
	if want := Bounds(Default, dot, "hello"); !lit.In(want) {
		t.Errorf("expected drawn pixels %s inside %s", lit, want)
	}
}

func TestDrawClipped(t *testing.T) {
	m := pixel.NewRGB565Image(image.Rect(0, 0, 32, 16))
	Draw(m, Default, image.Pt(20, 12), color.White, "clipped")
	if n, _ := testLit(m); n == 0 {
		t.Error("expected the visible part to be drawn")
	}
}

func TestGoRegular(t *testing.T) {
	if _, err := GoRegular(0); err == nil {
		t.Error("expected an error for size 0")
	}

	face, err := GoRegular(20)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	if h := face.Metrics().Height.Ceil(); h < 18 || h > 30 {
		t.Errorf("expected line height near 20, got %d", h)
	}

	m := pixel.NewRGB565Image(image.Rect(0, 0, 480, 272))
	dot := image.Pt(20, 60)
	Draw(m, face, dot, color.RGBA{R: 0xff, A: 0xff}, "Hello, panel")
	n, lit := testLit(m)
	if n == 0 {
		t.Fatal("expected text to be drawn")
	}
	// Anti-aliased edges may round into the next pixel.
	if want := Bounds(face, dot, "Hello, panel").Inset(-1); !lit.In(want) {
		t.Errorf("expected drawn pixels %s inside %s", lit, want)
	}
}

type testDisplayer struct {
	pixels map[image.Point]color.RGBA
}

func (d *testDisplayer) Size() (x, y int16) { return 128, 64 }

func (d *testDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.pixels[image.Pt(int(x), int(y))] = c
}

func (d *testDisplayer) Display() error { return nil }

func TestWriteTiny(t *testing.T) {
	d := &testDisplayer{pixels: make(map[image.Point]color.RGBA)}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	WriteTiny(d, 10, 20, white, "hi")
	if len(d.pixels) == 0 {
		t.Fatal("expected text to be drawn")
	}
	for p, c := range d.pixels {
		if c != white {
			t.Errorf("%s: expected %v, got %v", p, white, c)
		}
		if p.Y > 24 || p.X < 8 {
			t.Errorf("unexpected pixel at %s", p)
		}
	}
}
