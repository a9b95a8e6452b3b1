// Package sim simulates an LTDC display controller and its DMA2D fill engine.
//
// The simulation keeps a register file like the real peripheral: timing
// registers take effect when written, layer registers are written to a shadow
// copy and only become active on reload. [LTDC.Scan] performs one scan-out of
// the active layers into a frame image, reading framebuffer memory the way the
// controller's DMA does.
package sim

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/ltdc"
	"github.com/BeatGlow/ltdc/internal/regs"
	"github.com/BeatGlow/ltdc/pixel"
)

var debug = os.Getenv("LTDC_DEBUG") != ""

// Errors
var (
	ErrNotInitialized = errors.New("sim: timing generator is not initialized")
)

// ISR bits.
const (
	isrLIF  = 1 << 0 // line
	isrRRIF = 1 << 3 // register reload
)

const numLayers = 2

// LTDC is a simulated LTDC + DMA2D pair. It implements [ltdc.Hardware] and
// [ltdc.Filler].
type LTDC struct {
	active [regs.Size / 4]uint32
	shadow [regs.Size / 4]uint32

	// Memory seen at each layer's CFBAR.
	activeMem [numLayers][]uint16
	shadowMem [numLayers][]uint16

	dma2d [0x50 / 4]uint32

	config      ltdc.DisplayConfig
	initialized bool
	frame       *pixel.RGB565Image
	frames      uint64
	reloads     int
	fills       int
}

// New returns a powered down controller.
func New() *LTDC {
	return new(LTDC)
}

func (s *LTDC) String() string {
	if !s.initialized {
		return "simulated LTDC (off)"
	}
	return fmt.Sprintf("simulated LTDC %s", s.config)
}

// Register returns the active value of the register at offset.
func (s *LTDC) Register(offset uint32) uint32 {
	return s.active[offset/4]
}

// ShadowRegister returns the pending value of the register at offset.
func (s *LTDC) ShadowRegister(offset uint32) uint32 {
	return s.shadow[offset/4]
}

// DMA2DRegister returns the value of the DMA2D register at offset.
func (s *LTDC) DMA2DRegister(offset uint32) uint32 {
	return s.dma2d[offset/4]
}

// PixelClock is the configured pixel clock, zero before Init.
func (s *LTDC) PixelClock() physic.Frequency {
	if !s.initialized {
		return 0
	}
	return s.config.PixelClock()
}

// Frames is the number of frames scanned so far.
func (s *LTDC) Frames() uint64 {
	return s.frames
}

// Reloads is the number of shadow reloads applied so far.
func (s *LTDC) Reloads() int {
	return s.reloads
}

// Fills is the number of DMA2D transfers run so far.
func (s *LTDC) Fills() int {
	return s.fills
}

func (s *LTDC) write(offset, value uint32) {
	s.active[offset/4] = value
	s.shadow[offset/4] = value
}

func (s *LTDC) writeLayer(l ltdc.Layer, offset, value uint32) {
	s.shadow[(regs.Layer(l)+offset)/4] = value
}

func (s *LTDC) layer(l ltdc.Layer, offset uint32) uint32 {
	return s.active[(regs.Layer(l)+offset)/4]
}

// Init implements [ltdc.Hardware].
func (s *LTDC) Init(config ltdc.DisplayConfig, format ltdc.PixelFormat) error {
	if s.initialized {
		return ltdc.ErrInitialized
	}
	if !format.Supported() {
		return fmt.Errorf("sim: %w: %s", ltdc.ErrPixelFormat, format)
	}

	t := regs.EncodeTiming(config)
	s.write(regs.SSCR, t.SSCR)
	s.write(regs.BPCR, t.BPCR)
	s.write(regs.AWCR, t.AWCR)
	s.write(regs.TWCR, t.TWCR)
	s.write(regs.BCCR, 0)
	s.write(regs.GCR, t.GCR|regs.GCRLTDCEN)

	s.config = config
	s.initialized = true
	s.frame = pixel.NewRGB565Image(image.Rect(0, 0, config.ActiveWidth, config.ActiveHeight))
	if debug {
		log.Printf("sim: SSCR=%#08x BPCR=%#08x AWCR=%#08x TWCR=%#08x GCR=%#08x",
			t.SSCR, t.BPCR, t.AWCR, t.TWCR, s.active[regs.GCR/4])
	}
	return nil
}

// ConfigLayer implements [ltdc.Hardware].
func (s *LTDC) ConfigLayer(l ltdc.Layer, b ltdc.Binding) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !l.Valid() {
		return ltdc.ErrLayer
	}
	if !b.Format.Supported() {
		return fmt.Errorf("sim: %w: %s", ltdc.ErrPixelFormat, b.Format)
	}

	w := regs.EncodeWindow(s.config, b)
	s.writeLayer(l, regs.LxWHPCR, w.WHPCR)
	s.writeLayer(l, regs.LxWVPCR, w.WVPCR)
	s.writeLayer(l, regs.LxPFCR, w.PFCR)
	s.writeLayer(l, regs.LxCACR, w.CACR)
	s.writeLayer(l, regs.LxBFCR, w.BFCR)
	s.writeLayer(l, regs.LxCFBAR, w.CFBAR)
	s.writeLayer(l, regs.LxCFBLR, w.CFBLR)
	s.writeLayer(l, regs.LxCFBLNR, w.CFBLNR)
	s.shadowMem[l] = b.Memory()
	return nil
}

// EnableLayer implements [ltdc.Hardware].
func (s *LTDC) EnableLayer(l ltdc.Layer, enable bool) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !l.Valid() {
		return ltdc.ErrLayer
	}
	offset := (regs.Layer(l) + regs.LxCR) / 4
	if enable {
		s.shadow[offset] |= regs.LxCRLEN
	} else {
		s.shadow[offset] &^= regs.LxCRLEN
	}
	return nil
}

// Reload implements [ltdc.Hardware]. An immediate reload is applied right
// away, a vertical blanking reload at the start of the next Scan.
func (s *LTDC) Reload(mode ltdc.ReloadMode) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	switch mode {
	case ltdc.ReloadImmediate:
		s.active[regs.SRCR/4] = regs.SRCRIMR
		s.apply()
	case ltdc.ReloadVerticalBlank:
		s.active[regs.SRCR/4] = regs.SRCRVBR
	default:
		return fmt.Errorf("sim: invalid reload mode %d", mode)
	}
	return nil
}

// apply copies the shadow layer registers to the active set, then clears SRCR
// like the hardware does once the reload is done.
func (s *LTDC) apply() {
	for l := ltdc.L1; l < numLayers; l++ {
		base := regs.Layer(l) / 4
		copy(s.active[base:base+regs.LayerSize/4], s.shadow[base:base+regs.LayerSize/4])
		s.activeMem[l] = s.shadowMem[l]
	}
	s.active[regs.SRCR/4] = 0
	s.active[regs.ISR/4] |= isrRRIF
	s.reloads++
}

// Scan runs one frame: it applies a pending vertical blanking reload and
// composes the enabled layers over the background color. The returned image is
// reused by the next Scan.
func (s *LTDC) Scan() *pixel.RGB565Image {
	if !s.initialized {
		return pixel.NewRGB565Image(image.Rectangle{})
	}
	if s.active[regs.SRCR/4]&regs.SRCRVBR != 0 {
		s.apply()
	}

	s.frame.Fill(pixel.RGB565{V: pixel.PackRGB(
		uint8(s.active[regs.BCCR/4]>>16),
		uint8(s.active[regs.BCCR/4]>>8),
		uint8(s.active[regs.BCCR/4]),
	)})

	if s.active[regs.GCR/4]&regs.GCRLTDCEN != 0 {
		for l := ltdc.L1; l < numLayers; l++ {
			s.scanLayer(l)
		}
	}
	s.frames++
	s.active[regs.ISR/4] |= isrLIF
	return s.frame
}

func (s *LTDC) scanLayer(l ltdc.Layer) {
	if s.layer(l, regs.LxCR)&regs.LxCRLEN == 0 || s.activeMem[l] == nil {
		return
	}
	if ltdc.PixelFormat(s.layer(l, regs.LxPFCR)) != ltdc.RGB565 {
		return
	}

	var (
		ahbp, avbp    = regs.Split(s.active[regs.BPCR/4])
		hStop, hStart = regs.Split(s.layer(l, regs.LxWHPCR))
		vStop, vStart = regs.Split(s.layer(l, regs.LxWVPCR))
		pitch, length = regs.Split(s.layer(l, regs.LxCFBLR))
		lines         = int(s.layer(l, regs.LxCFBLNR))
		mem           = s.activeMem[l]
		stride        = pitch / 2
		width         = (length - 3) / 2
		x0            = hStart - ahbp - 1
		y0            = vStart - avbp - 1
	)
	if w := hStop - hStart + 1; w < width {
		width = w
	}
	if h := vStop - vStart + 1; h < lines {
		lines = h
	}
	for y := 0; y < lines; y++ {
		off := y * stride
		if off+width > len(mem) {
			break
		}
		for x := 0; x < width; x++ {
			s.frame.Set(x0+x, y0+y, pixel.RGB565{V: mem[off+x]})
		}
	}
}

// Fill implements [ltdc.Filler] with a DMA2D register-to-memory transfer.
func (s *LTDC) Fill(b ltdc.Binding, value uint16) error {
	if b.Format != ltdc.RGB565 {
		return fmt.Errorf("sim: %w: %s", ltdc.ErrPixelFormat, b.Format)
	}
	s.dma2d[regs.DMA2DOPFCCR/4] = regs.DMA2DOutputRGB565
	s.dma2d[regs.DMA2DOCOLR/4] = uint32(value)
	s.dma2d[regs.DMA2DOMAR/4] = uint32(b.Addr)
	s.dma2d[regs.DMA2DOOR/4] = uint32(b.Stride - b.Width)
	s.dma2d[regs.DMA2DNLR/4] = uint32(b.Width)<<16 | uint32(b.Height)
	s.dma2d[regs.DMA2DCR/4] = regs.DMA2DModeRegToMem | regs.DMA2DCRStart

	mem := b.Memory()
	for y := 0; y < b.Height; y++ {
		line := mem[y*b.Stride : y*b.Stride+b.Width]
		for x := range line {
			line[x] = value
		}
	}

	// Transfer complete.
	s.dma2d[regs.DMA2DCR/4] &^= regs.DMA2DCRStart
	s.fills++
	return nil
}

// Interface checks.
var (
	_ ltdc.Hardware = (*LTDC)(nil)
	_ ltdc.Filler   = (*LTDC)(nil)
)
