package draw

import (
	"image"
	"image/color"
)

// Corners of a rounded shape.
const (
	topLeft = 1 << iota
	topRight
	bottomRight
	bottomLeft

	allCorners = topLeft | topRight | bottomRight | bottomLeft
)

// Line draws a line between two points, both included.
func Line(dst Image, a, b image.Point, c color.Color) {
	var (
		dx = abs(b.X - a.X)
		dy = -abs(b.Y - a.Y)
		sx = sign(b.X - a.X)
		sy = sign(b.Y - a.Y)
		e  = dx + dy
	)
	for {
		dst.Set(a.X, a.Y, c)
		if a == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for end := x + w; x < end; x++ {
		dst.Set(x, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for end := y + h; y < end; y++ {
		dst.Set(x, y, c)
	}
}

// Rectangle draws the outline of rect; Max is exclusive.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// RoundedRectangle draws the outline of rect with corners of the given radius.
func RoundedRectangle(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect, radius = rounded(rect, radius)
	if rect.Empty() {
		return
	}
	var (
		r = radius
		w = rect.Dx()
		h = rect.Dy()
		// Corner centers.
		left   = rect.Min.X + r
		right  = rect.Max.X - 1 - r
		top    = rect.Min.Y + r
		bottom = rect.Max.Y - 1 - r
	)
	HorizontalLine(dst, left, rect.Min.Y, w-2*r, c)
	HorizontalLine(dst, left, rect.Max.Y-1, w-2*r, c)
	VerticalLine(dst, rect.Min.X, top, h-2*r, c)
	VerticalLine(dst, rect.Max.X-1, top, h-2*r, c)
	arc(r, func(x, y int) {
		corner(dst, image.Pt(left, top), x, y, topLeft, c)
		corner(dst, image.Pt(right, top), x, y, topRight, c)
		corner(dst, image.Pt(right, bottom), x, y, bottomRight, c)
		corner(dst, image.Pt(left, bottom), x, y, bottomLeft, c)
	})
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	w := rect.Dx()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, w, c)
	}
}

// RoundedBox draws a filled rectangle with corners of the given radius.
func RoundedBox(dst Image, rect image.Rectangle, radius int, c color.Color) {
	rect, radius = rounded(rect, radius)
	if rect.Empty() {
		return
	}
	var (
		r      = radius
		left   = rect.Min.X + r
		right  = rect.Max.X - 1 - r
		top    = rect.Min.Y + r
		bottom = rect.Max.Y - 1 - r
		span   = right - left + 1
	)
	Box(dst, image.Rect(rect.Min.X, top, rect.Max.X, bottom+1), c)
	arc(r, func(x, y int) {
		HorizontalLine(dst, left-x, top-y, span+2*x, c)
		HorizontalLine(dst, left-y, top-x, span+2*y, c)
		HorizontalLine(dst, left-x, bottom+y, span+2*x, c)
		HorizontalLine(dst, left-y, bottom+x, span+2*y, c)
	})
}

// Circle draws a circle outline around center.
func Circle(dst Image, center image.Point, radius int, c color.Color) {
	arc(radius, func(x, y int) {
		corner(dst, center, x, y, allCorners, c)
	})
}

// FilledCircle draws a filled circle around center.
func FilledCircle(dst Image, center image.Point, radius int, c color.Color) {
	arc(radius, func(x, y int) {
		HorizontalLine(dst, center.X-x, center.Y-y, 2*x+1, c)
		HorizontalLine(dst, center.X-x, center.Y+y, 2*x+1, c)
		HorizontalLine(dst, center.X-y, center.Y-x, 2*y+1, c)
		HorizontalLine(dst, center.X-y, center.Y+x, 2*y+1, c)
	})
}

// rounded clamps the radius so that opposite corners do not overlap.
func rounded(rect image.Rectangle, radius int) (image.Rectangle, int) {
	rect = rect.Canon()
	radius = max(0, min(radius, (rect.Dx()-1)/2, (rect.Dy()-1)/2))
	return rect, radius
}

// arc walks one octant of a circle of radius r with the midpoint algorithm,
// from (0, r) until x passes y.
func arc(r int, plot func(x, y int)) {
	if r < 0 {
		return
	}
	x, y, d := 0, r, 1-r
	for x <= y {
		plot(x, y)
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
}

// corner mirrors an octant point into the selected quadrants around p.
func corner(dst Image, p image.Point, x, y, quadrants int, c color.Color) {
	if quadrants&topLeft != 0 {
		dst.Set(p.X-x, p.Y-y, c)
		dst.Set(p.X-y, p.Y-x, c)
	}
	if quadrants&topRight != 0 {
		dst.Set(p.X+x, p.Y-y, c)
		dst.Set(p.X+y, p.Y-x, c)
	}
	if quadrants&bottomRight != 0 {
		dst.Set(p.X+x, p.Y+y, c)
		dst.Set(p.X+y, p.Y+x, c)
	}
	if quadrants&bottomLeft != 0 {
		dst.Set(p.X-x, p.Y+y, c)
		dst.Set(p.X-y, p.Y+x, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
