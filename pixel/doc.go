// Package pixel implements the RGB 5-6-5 color model used by LTDC framebuffers.
//
// The types in this package are compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces, so any drawing code written against
// the standard library can target a packed 16-bit framebuffer.
package pixel
