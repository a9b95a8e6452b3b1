package ltdc

import (
	"fmt"
	"unsafe"
)

// Framebuffer is address-stable pixel memory that a layer scans. It holds
// packed 16-bit words, row-major, with x varying fastest.
//
// A Framebuffer is moved into a [Controller] by [Controller.ConfigLayer]; from
// then on all pixel access goes through the controller.
type Framebuffer struct {
	pix    []uint16
	width  int
	height int
	stride int
	bound  bool
}

// NewFramebuffer allocates a framebuffer of width by height pixels.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("ltdc: invalid framebuffer size %dx%d", width, height))
	}
	return &Framebuffer{
		pix:    make([]uint16, width*height),
		width:  width,
		height: height,
		stride: width,
	}
}

// WrapFramebuffer adopts memory owned by something else, such as memory mapped
// video RAM. The memory must stay at the same address for as long as the
// framebuffer is bound. Stride is in words.
func WrapFramebuffer(pix []uint16, width, height, stride int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 || stride < width {
		return nil, fmt.Errorf("ltdc: invalid framebuffer geometry %dx%d with stride %d", width, height, stride)
	}
	if need := stride*(height-1) + width; len(pix) < need {
		return nil, fmt.Errorf("ltdc: framebuffer memory holds %d words, need %d", len(pix), need)
	}
	return &Framebuffer{
		pix:    pix,
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Addr is the base address of the pixel memory.
func (fb *Framebuffer) Addr() uintptr {
	if len(fb.pix) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&fb.pix[0]))
}

// Stride is the number of words between vertically adjacent pixels.
func (fb *Framebuffer) Stride() int {
	return fb.stride
}

// Width in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height in lines.
func (fb *Framebuffer) Height() int {
	return fb.height
}

func (fb *Framebuffer) String() string {
	return fmt.Sprintf("framebuffer %dx%d at %#x", fb.width, fb.height, fb.Addr())
}

func (fb *Framebuffer) binding(format PixelFormat) Binding {
	return Binding{
		Addr:   fb.Addr(),
		Stride: fb.stride,
		Width:  fb.width,
		Height: fb.height,
		Format: format,
		mem:    fb.pix,
	}
}

// Binding is the framebuffer description a [Hardware] backend receives when a
// layer is configured.
type Binding struct {
	// Addr is the framebuffer base address.
	Addr uintptr

	// Stride is the distance between lines, in words.
	Stride int

	// Width and Height of the scanned window.
	Width  int
	Height int

	// Format of the stored pixels.
	Format PixelFormat

	mem []uint16
}

// Memory is the scan-out view of the framebuffer: what a DMA engine reading
// from Addr sees. Only hardware backends read it.
func (b Binding) Memory() []uint16 {
	return b.mem
}

// LineBytes is the length of one visible line in bytes.
func (b Binding) LineBytes() int {
	return b.Width * b.Format.BytesPerPixel()
}

// PitchBytes is the distance between lines in bytes.
func (b Binding) PitchBytes() int {
	return b.Stride * 2
}
