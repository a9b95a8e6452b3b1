// Package regs has the LTDC register map and encodes display and layer
// configuration into register values.
package regs

import "github.com/BeatGlow/ltdc"

// Peripheral base addresses (STM32F7).
const (
	LTDCBase  = 0x4001_6800
	DMA2DBase = 0x4002_b000
	RCCBase   = 0x4002_3800
)

// Global register offsets.
const (
	SSCR  = 0x08 // Synchronization Size Configuration
	BPCR  = 0x0c // Back Porch Configuration
	AWCR  = 0x10 // Active Width Configuration
	TWCR  = 0x14 // Total Width Configuration
	GCR   = 0x18 // Global Control
	SRCR  = 0x24 // Shadow Reload Configuration
	BCCR  = 0x2c // Background Color Configuration
	IER   = 0x34 // Interrupt Enable
	ISR   = 0x38 // Interrupt Status
	ICR   = 0x3c // Interrupt Clear
	LIPCR = 0x40 // Line Interrupt Position Configuration
	CPSR  = 0x44 // Current Position Status
	CDSR  = 0x48 // Current Display Status

	// Size of the register file in bytes.
	Size = 0x200
)

// Layer register offsets, relative to the layer block.
const (
	LxCR     = 0x00 // Control
	LxWHPCR  = 0x04 // Window Horizontal Position Configuration
	LxWVPCR  = 0x08 // Window Vertical Position Configuration
	LxCKCR   = 0x0c // Color Keying Configuration
	LxPFCR   = 0x10 // Pixel Format Configuration
	LxCACR   = 0x14 // Constant Alpha Configuration
	LxDCCR   = 0x18 // Default Color Configuration
	LxBFCR   = 0x1c // Blending Factors Configuration
	LxCFBAR  = 0x28 // Color Frame Buffer Address
	LxCFBLR  = 0x2c // Color Frame Buffer Length
	LxCFBLNR = 0x30 // Color Frame Buffer Line Number
	LxCLUTWR = 0x40 // CLUT Write

	// LayerSize is the size of a layer block in bytes.
	LayerSize = 0x80
)

// GCR bits.
const (
	GCRLTDCEN = 1 << 0
	GCRDEN    = 1 << 16
	GCRPCPOL  = 1 << 28
	GCRDEPOL  = 1 << 29
	GCRVSPOL  = 1 << 30
	GCRHSPOL  = 1 << 31
)

// SRCR bits.
const (
	SRCRIMR = 1 << 0 // immediate reload
	SRCRVBR = 1 << 1 // vertical blanking reload
)

// LxCR bits.
const (
	LxCRLEN = 1 << 0
)

// Blending factors.
const (
	BF1ConstantAlpha = 4 << 8
	BF2ConstantAlpha = 5
)

// DMA2D register offsets and modes.
const (
	DMA2DCR     = 0x00
	DMA2DOPFCCR = 0x34
	DMA2DOCOLR  = 0x38
	DMA2DOMAR   = 0x3c
	DMA2DOOR    = 0x40
	DMA2DNLR    = 0x44

	DMA2DCRStart      = 1 << 0
	DMA2DModeRegToMem = 3 << 16
	DMA2DOutputRGB565 = 2
)

// RCC registers and bits.
const (
	RCCCR          = 0x00
	RCCAHB1ENR     = 0x30
	RCCAPB2ENR     = 0x44
	RCCPLLSAICFGR  = 0x88
	RCCDCKCFGR1    = 0x8c
	RCCAHB1DMA2DEN = 1 << 23
	RCCAPB2LTDCEN  = 1 << 26
	RCCCRPLLSAION  = 1 << 28
	RCCCRPLLSAIRDY = 1 << 29

	PLLSAINPos    = 6
	PLLSAIRPos    = 28
	PLLSAIDIVRPos = 16
)

// GPIO port registers.
const (
	GPIOBase    = 0x4002_0000
	GPIOSize    = 0x400
	GPIOMODER   = 0x00
	GPIOOSPEEDR = 0x08
	GPIOAFRL    = 0x20
	GPIOAFRH    = 0x24

	ModeAlternate = 2
	SpeedVeryHigh = 3
)

// Layer returns the offset of the register block of l.
func Layer(l ltdc.Layer) uint32 {
	return 0x84 + uint32(l)*LayerSize
}

// Timing are the timing generator register values.
type Timing struct {
	SSCR, BPCR, AWCR, TWCR, GCR uint32
}

func field(hi, lo int) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

// EncodeTiming computes the accumulated timing register values. Every
// register holds the last pixel clock (or line) of a phase, counted from the
// start of the sync pulse.
func EncodeTiming(c ltdc.DisplayConfig) Timing {
	var (
		hsync = c.HSync - 1
		vsync = c.VSync - 1
		ahbp  = hsync + c.HBackPorch
		avbp  = vsync + c.VBackPorch
		aaw   = ahbp + c.ActiveWidth
		aah   = avbp + c.ActiveHeight
		totw  = aaw + c.HFrontPorch
		toth  = aah + c.VFrontPorch
		gcr   uint32
	)
	if c.HSyncPol {
		gcr |= GCRHSPOL
	}
	if c.VSyncPol {
		gcr |= GCRVSPOL
	}
	if c.NoDataEnablePol {
		gcr |= GCRDEPOL
	}
	if c.PixelClockPol {
		gcr |= GCRPCPOL
	}
	return Timing{
		SSCR: field(hsync, vsync),
		BPCR: field(ahbp, avbp),
		AWCR: field(aaw, aah),
		TWCR: field(totw, toth),
		GCR:  gcr,
	}
}

// Window are the layer register values for a full-screen layer.
type Window struct {
	WHPCR, WVPCR, PFCR, CFBAR, CFBLR, CFBLNR, CACR, BFCR uint32
}

// EncodeWindow computes the layer registers placing b at the top left of the
// active area.
func EncodeWindow(c ltdc.DisplayConfig, b ltdc.Binding) Window {
	var (
		ahbp = c.HSync - 1 + c.HBackPorch
		avbp = c.VSync - 1 + c.VBackPorch
	)
	return Window{
		WHPCR:  field(ahbp+b.Width, ahbp+1),
		WVPCR:  field(avbp+b.Height, avbp+1),
		PFCR:   uint32(b.Format),
		CFBAR:  uint32(b.Addr),
		CFBLR:  field(b.PitchBytes(), b.LineBytes()+3),
		CFBLNR: uint32(b.Height),
		CACR:   0xff,
		BFCR:   BF1ConstantAlpha | BF2ConstantAlpha,
	}
}

// Split returns the high and low halves of a two-field register.
func Split(v uint32) (hi, lo int) {
	return int(v>>16) & 0x1fff, int(v & 0x1fff)
}
