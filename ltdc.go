// Package ltdc drives a fixed-timing RGB panel scanned by an LTDC style timing
// generator.
//
// The driver owns the framebuffer, programs the timing generator and layer
// registers once at startup (configure layer, enable layer, reload) and then
// exposes a [Display] that accepts colored points from any drawing code and
// clips the ones that fall outside of the panel.
//
// Register access goes through the [Hardware] interface. Backends live in the
// sim (simulated peripheral), fbdev (Linux framebuffer devices) and mmio (bare
// metal STM32F7) packages.
package ltdc

import (
	"errors"
	"fmt"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("LTDC_DEBUG") != ""
}

// Errors
var (
	ErrInitialized      = errors.New("ltdc: hardware is already initialized")
	ErrNoHardware       = errors.New("ltdc: no hardware")
	ErrPixelFormat      = errors.New("ltdc: unsupported pixel format")
	ErrLayer            = errors.New("ltdc: invalid layer")
	ErrLayerBound       = errors.New("ltdc: layer is already bound")
	ErrLayerNotBound    = errors.New("ltdc: layer is not bound")
	ErrNotConfigured    = errors.New("ltdc: no layer is configured")
	ErrFramebufferBound = errors.New("ltdc: framebuffer is already bound to a layer")
	ErrFramebufferSize  = errors.New("ltdc: framebuffer does not match the active area")
	ErrFramebufferTaken = errors.New("ltdc: framebuffer was already taken")
	ErrInvalidTiming    = errors.New("ltdc: invalid display timing")
)

// Layer is a compositing layer of the display controller.
type Layer uint8

// Supported layers.
const (
	L1 Layer = iota
	L2

	numLayers = 2
)

func (l Layer) String() string {
	switch l {
	case L1:
		return "L1"
	case L2:
		return "L2"
	default:
		return fmt.Sprintf("Layer(%d)", uint8(l))
	}
}

// Valid reports if the layer exists on the controller.
func (l Layer) Valid() bool {
	return l < numLayers
}

// PixelFormat is a layer pixel format, numbered like the LTDC LxPFCR register.
type PixelFormat uint8

// Pixel formats.
const (
	ARGB8888 PixelFormat = iota
	RGB888
	RGB565
	ARGB1555
	ARGB4444
	L8
	AL44
	AL88
)

func (f PixelFormat) String() string {
	switch f {
	case ARGB8888:
		return "ARGB8888"
	case RGB888:
		return "RGB888"
	case RGB565:
		return "RGB565"
	case ARGB1555:
		return "ARGB1555"
	case ARGB4444:
		return "ARGB4444"
	case L8:
		return "L8"
	case AL44:
		return "AL44"
	case AL88:
		return "AL88"
	default:
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
}

// BytesPerPixel is the storage size of one pixel.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case ARGB8888:
		return 4
	case RGB888:
		return 3
	case RGB565, ARGB1555, ARGB4444, AL88:
		return 2
	case L8, AL44:
		return 1
	default:
		return 0
	}
}

// Supported reports if the driver can scan this format. Only packed 5-6-5 is.
func (f PixelFormat) Supported() bool {
	return f == RGB565
}

// ReloadMode selects when pending layer configuration is applied.
type ReloadMode uint8

// Reload modes.
const (
	// ReloadImmediate applies the shadow registers right away.
	ReloadImmediate ReloadMode = iota

	// ReloadVerticalBlank applies the shadow registers during the next vertical blanking period.
	ReloadVerticalBlank
)

func (m ReloadMode) String() string {
	if m == ReloadVerticalBlank {
		return "vertical blank"
	}
	return "immediate"
}

// State is the driver state. It only ever moves forward.
type State uint8

// Driver states.
const (
	Unconfigured State = iota // timing set, no layer bound
	Configured                // a layer is bound
	Enabled                   // a bound layer is enabled
	Presenting                // reload issued, hardware scans the buffer
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Configured:
		return "configured"
	case Enabled:
		return "enabled"
	case Presenting:
		return "presenting"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
