package draw

import (
	"image"
	"image/color"
	"testing"
)

var testInk = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func testCanvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 16, 16))
}

func testCount(t *testing.T, m *image.RGBA) int {
	t.Helper()
	var n int
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			if m.RGBAAt(x, y) == testInk {
				n++
			}
		}
	}
	return n
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		a, b image.Point
		want int
	}{
		{"point", image.Pt(3, 3), image.Pt(3, 3), 1},
		{"horizontal", image.Pt(0, 2), image.Pt(9, 2), 10},
		{"vertical", image.Pt(4, 9), image.Pt(4, 0), 10},
		{"diagonal", image.Pt(0, 0), image.Pt(7, 7), 8},
		{"anti-diagonal", image.Pt(0, 7), image.Pt(7, 0), 8},
		{"shallow", image.Pt(0, 0), image.Pt(9, 3), 10},
		{"steep", image.Pt(0, 0), image.Pt(3, 9), 10},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			m := testCanvas()
			Line(m, test.a, test.b, testInk)
			if n := testCount(it, m); n != test.want {
				it.Errorf("expected %d pixels, got %d", test.want, n)
			}
			if m.RGBAAt(test.a.X, test.a.Y) != testInk || m.RGBAAt(test.b.X, test.b.Y) != testInk {
				it.Errorf("expected end points %s and %s to be set", test.a, test.b)
			}
		})
	}
}

func TestRectangle(t *testing.T) {
	m := testCanvas()
	Rectangle(m, image.Rect(2, 3, 7, 9), testInk)

	// 5x6 outline: 2*5 + 2*(6-2)
	if n := testCount(t, m); n != 18 {
		t.Errorf("expected 18 pixels, got %d", n)
	}
	for _, p := range []image.Point{{X: 2, Y: 3}, {X: 6, Y: 3}, {X: 2, Y: 8}, {X: 6, Y: 8}} {
		if m.RGBAAt(p.X, p.Y) != testInk {
			t.Errorf("expected corner %s to be set", p)
		}
	}
	if m.RGBAAt(4, 5) == testInk {
		t.Error("expected interior to be empty")
	}
}

func TestBox(t *testing.T) {
	m := testCanvas()
	Box(m, image.Rect(1, 1, 5, 4), testInk)
	if n := testCount(t, m); n != 12 {
		t.Errorf("expected 12 pixels, got %d", n)
	}
}

func TestBoxClipped(t *testing.T) {
	m := testCanvas()
	Box(m, image.Rect(-4, -4, 4, 4), testInk)
	if n := testCount(t, m); n != 16 {
		t.Errorf("expected 16 visible pixels, got %d", n)
	}
}

func TestCircle(t *testing.T) {
	m := testCanvas()
	Circle(m, image.Pt(8, 8), 4, testInk)
	for _, p := range []image.Point{{X: 8, Y: 4}, {X: 8, Y: 12}, {X: 4, Y: 8}, {X: 12, Y: 8}} {
		if m.RGBAAt(p.X, p.Y) != testInk {
			t.Errorf("expected %s on the circle", p)
		}
	}
	if m.RGBAAt(8, 8) == testInk {
		t.Error("expected the center to be empty")
	}

	m = testCanvas()
	FilledCircle(m, image.Pt(8, 8), 4, testInk)
	if m.RGBAAt(8, 8) != testInk || m.RGBAAt(10, 10) != testInk {
		t.Error("expected the disc to be filled")
	}
	if m.RGBAAt(12, 12) == testInk {
		t.Error("expected the bounding box corner to be empty")
	}
}

func TestRoundedBox(t *testing.T) {
	m := testCanvas()
	RoundedBox(m, image.Rect(2, 2, 14, 14), 3, testInk)
	if m.RGBAAt(2, 2) == testInk || m.RGBAAt(13, 13) == testInk {
		t.Error("expected the corners to be rounded off")
	}
	for _, p := range []image.Point{{X: 8, Y: 2}, {X: 2, Y: 8}, {X: 13, Y: 8}, {X: 8, Y: 13}, {X: 8, Y: 8}} {
		if m.RGBAAt(p.X, p.Y) != testInk {
			t.Errorf("expected %s to be filled", p)
		}
	}
	if n := testCount(t, m); n >= 12*12 || n < 12*12-4*4 {
		t.Errorf("unexpected pixel count %d", n)
	}
}

func TestRoundedRectangle(t *testing.T) {
	m := testCanvas()
	RoundedRectangle(m, image.Rect(2, 2, 14, 14), 3, testInk)
	if m.RGBAAt(2, 2) == testInk {
		t.Error("expected the corner to be rounded off")
	}
	if m.RGBAAt(8, 8) == testInk {
		t.Error("expected the interior to be empty")
	}
	for _, p := range []image.Point{{X: 8, Y: 2}, {X: 2, Y: 8}, {X: 13, Y: 8}, {X: 8, Y: 13}} {
		if m.RGBAAt(p.X, p.Y) != testInk {
			t.Errorf("expected %s on the outline", p)
		}
	}

	// An oversized radius turns into a circle-ish outline instead of overlapping corners.
	m = testCanvas()
	RoundedRectangle(m, image.Rect(0, 0, 9, 9), 100, testInk)
	if m.RGBAAt(4, 0) != testInk || m.RGBAAt(0, 0) == testInk {
		t.Error("expected the radius to be clamped")
	}
}
