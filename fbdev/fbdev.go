// Package fbdev runs the panel on a Linux framebuffer device.
//
// The framebuffer device takes the place of the display controller: its video
// memory is the layer 1 framebuffer, panning the display commits the layer and
// blanking switches it off. Only 16 bits per pixel devices with a 5-6-5 layout
// are supported.
package fbdev

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BeatGlow/ltdc"
)

var debug = os.Getenv("LTDC_DEBUG") != ""

// Errors
var (
	ErrNotSupported  = errors.New("fbdev: not supported")
	ErrMode          = errors.New("fbdev: video mode does not match the panel")
	ErrForeignMemory = errors.New("fbdev: framebuffer is not in video memory")
)

// From <linux/fb.h>
const (
	fbBlankUnblank   = 0
	fbBlankPowerdown = 4
)

// fixScreenInfo is struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

func (info *fixScreenInfo) name() string {
	if i := bytes.IndexByte(info.ID[:], 0); i >= 0 {
		return string(info.ID[:i])
	}
	return string(info.ID[:])
}

type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo is struct fb_var_screeninfo.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func (info *varScreenInfo) String() string {
	return fmt.Sprintf("%dx%d %dbpp r%d/%d g%d/%d b%d/%d a%d/%d",
		info.Xres, info.Yres, info.BitsPerPixel,
		info.Red.Offset, info.Red.Length,
		info.Green.Offset, info.Green.Length,
		info.Blue.Offset, info.Blue.Length,
		info.Alpha.Offset, info.Alpha.Length)
}

// parsePixelFormat maps the device color layout to a layer pixel format.
func parsePixelFormat(info *varScreenInfo) (ltdc.PixelFormat, error) {
	if info == nil {
		return 0, errors.New("fbdev: invalid screen info")
	}

	switch info.BitsPerPixel {
	case 16:
		if info.Blue.Offset == 0 &&
			info.Blue.Length == 5 &&
			info.Green.Offset == 5 &&
			info.Green.Length == 6 &&
			info.Red.Offset == 11 &&
			info.Red.Length == 5 &&
			info.Alpha.Length == 0 {
			return ltdc.RGB565, nil
		}

	case 24:
		if info.Blue.Offset == 0 &&
			info.Blue.Length == 8 &&
			info.Green.Offset == 8 &&
			info.Green.Length == 8 &&
			info.Red.Offset == 16 &&
			info.Red.Length == 8 &&
			info.Alpha.Length == 0 {
			return ltdc.RGB888, nil
		}

	case 32:
		if info.Blue.Offset == 0 &&
			info.Blue.Length == 8 &&
			info.Green.Offset == 8 &&
			info.Green.Length == 8 &&
			info.Red.Offset == 16 &&
			info.Red.Length == 8 {
			return ltdc.ARGB8888, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ltdc.ErrPixelFormat, info)
}
