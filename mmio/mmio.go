//go:build tinygo && stm32f7

package mmio

import (
	"fmt"
	"runtime/volatile"
	"unsafe"

	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/ltdc"
	"github.com/BeatGlow/ltdc/internal/regs"
)

func reg(base uintptr, offset uint32) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(base + uintptr(offset)))
}

func ltdcReg(offset uint32) *volatile.Register32 { return reg(regs.LTDCBase, offset) }
func dma2dReg(offset uint32) *volatile.Register32 { return reg(regs.DMA2DBase, offset) }
func rccReg(offset uint32) *volatile.Register32 { return reg(regs.RCCBase, offset) }

// LTDC is the on-chip display controller. It implements [ltdc.Hardware] and
// [ltdc.Filler].
type LTDC struct {
	input       physic.Frequency
	pins        []Pin
	config      ltdc.DisplayConfig
	pll         PLLSAI
	initialized bool
}

// New returns the controller. Input is the PLL input clock (HSE divided by
// PLLM), pins are routed to the LTDC during Init.
func New(input physic.Frequency, pins []Pin) *LTDC {
	return &LTDC{
		input: input,
		pins:  pins,
	}
}

// PixelClock is the pixel clock generated by PLLSAI, zero before Init.
func (d *LTDC) PixelClock() physic.Frequency {
	if !d.initialized {
		return 0
	}
	return d.pll.Frequency(d.input)
}

// Init implements [ltdc.Hardware].
func (d *LTDC) Init(config ltdc.DisplayConfig, format ltdc.PixelFormat) error {
	if d.initialized {
		return ltdc.ErrInitialized
	}
	if !format.Supported() {
		return fmt.Errorf("mmio: %w: %s", ltdc.ErrPixelFormat, format)
	}
	pll, err := FindPLLSAI(d.input, config.PixelClock())
	if err != nil {
		return err
	}

	d.routePins()
	d.startPixelClock(pll)

	// Peripheral clocks.
	rccReg(regs.RCCAPB2ENR).SetBits(regs.RCCAPB2LTDCEN)
	rccReg(regs.RCCAHB1ENR).SetBits(regs.RCCAHB1DMA2DEN)

	t := regs.EncodeTiming(config)
	ltdcReg(regs.SSCR).Set(t.SSCR)
	ltdcReg(regs.BPCR).Set(t.BPCR)
	ltdcReg(regs.AWCR).Set(t.AWCR)
	ltdcReg(regs.TWCR).Set(t.TWCR)
	ltdcReg(regs.BCCR).Set(0)
	ltdcReg(regs.GCR).Set(t.GCR | regs.GCRLTDCEN)

	d.config = config
	d.pll = pll
	d.initialized = true
	return nil
}

func (d *LTDC) routePins() {
	for _, p := range d.pins {
		var (
			base = uintptr(regs.GPIOBase) + p.port()*regs.GPIOSize
			pos  = uint8(p.Num) * 2
			afr  = uint32(regs.GPIOAFRL)
			afp  = uint8(p.Num) * 4
		)
		if p.Num >= 8 {
			afr = regs.GPIOAFRH
			afp = uint8(p.Num-8) * 4
		}
		rccReg(regs.RCCAHB1ENR).SetBits(1 << p.port())
		reg(base, afr).ReplaceBits(uint32(p.AF), 0xf, afp)
		reg(base, regs.GPIOOSPEEDR).ReplaceBits(regs.SpeedVeryHigh, 0x3, pos)
		reg(base, regs.GPIOMODER).ReplaceBits(regs.ModeAlternate, 0x3, pos)
	}
}

func (d *LTDC) startPixelClock(pll PLLSAI) {
	cr := rccReg(regs.RCCCR)
	cr.ClearBits(regs.RCCCRPLLSAION)
	for cr.HasBits(regs.RCCCRPLLSAIRDY) {
	}
	cfgr := rccReg(regs.RCCPLLSAICFGR)
	cfgr.ReplaceBits(uint32(pll.N), 0x1ff, regs.PLLSAINPos)
	cfgr.ReplaceBits(uint32(pll.R), 0x7, regs.PLLSAIRPos)
	rccReg(regs.RCCDCKCFGR1).ReplaceBits(pll.divr(), 0x3, regs.PLLSAIDIVRPos)
	cr.SetBits(regs.RCCCRPLLSAION)
	for !cr.HasBits(regs.RCCCRPLLSAIRDY) {
	}
}

// ConfigLayer implements [ltdc.Hardware].
func (d *LTDC) ConfigLayer(l ltdc.Layer, b ltdc.Binding) error {
	if !l.Valid() {
		return ltdc.ErrLayer
	}
	var (
		w    = regs.EncodeWindow(d.config, b)
		base = regs.LTDCBase + uintptr(regs.Layer(l))
	)
	reg(base, regs.LxWHPCR).Set(w.WHPCR)
	reg(base, regs.LxWVPCR).Set(w.WVPCR)
	reg(base, regs.LxPFCR).Set(w.PFCR)
	reg(base, regs.LxCACR).Set(w.CACR)
	reg(base, regs.LxBFCR).Set(w.BFCR)
	reg(base, regs.LxCFBAR).Set(w.CFBAR)
	reg(base, regs.LxCFBLR).Set(w.CFBLR)
	reg(base, regs.LxCFBLNR).Set(w.CFBLNR)
	return nil
}

// EnableLayer implements [ltdc.Hardware].
func (d *LTDC) EnableLayer(l ltdc.Layer, enable bool) error {
	if !l.Valid() {
		return ltdc.ErrLayer
	}
	cr := reg(regs.LTDCBase+uintptr(regs.Layer(l)), regs.LxCR)
	if enable {
		cr.SetBits(regs.LxCRLEN)
	} else {
		cr.ClearBits(regs.LxCRLEN)
	}
	return nil
}

// Reload implements [ltdc.Hardware]. An immediate reload waits for the
// hardware to acknowledge it.
func (d *LTDC) Reload(mode ltdc.ReloadMode) error {
	srcr := ltdcReg(regs.SRCR)
	switch mode {
	case ltdc.ReloadImmediate:
		srcr.Set(regs.SRCRIMR)
		for srcr.HasBits(regs.SRCRIMR) {
		}
	case ltdc.ReloadVerticalBlank:
		srcr.Set(regs.SRCRVBR)
	default:
		return fmt.Errorf("mmio: invalid reload mode %d", mode)
	}
	return nil
}

// Fill implements [ltdc.Filler] with a DMA2D register-to-memory transfer.
func (d *LTDC) Fill(b ltdc.Binding, value uint16) error {
	if b.Format != ltdc.RGB565 {
		return fmt.Errorf("mmio: %w: %s", ltdc.ErrPixelFormat, b.Format)
	}
	dma2dReg(regs.DMA2DOPFCCR).Set(regs.DMA2DOutputRGB565)
	dma2dReg(regs.DMA2DOCOLR).Set(uint32(value))
	dma2dReg(regs.DMA2DOMAR).Set(uint32(b.Addr))
	dma2dReg(regs.DMA2DOOR).Set(uint32(b.Stride - b.Width))
	dma2dReg(regs.DMA2DNLR).Set(uint32(b.Width)<<16 | uint32(b.Height))

	cr := dma2dReg(regs.DMA2DCR)
	cr.Set(regs.DMA2DModeRegToMem | regs.DMA2DCRStart)
	for cr.HasBits(regs.DMA2DCRStart) {
	}
	return nil
}

var (
	_ ltdc.Hardware = (*LTDC)(nil)
	_ ltdc.Filler   = (*LTDC)(nil)
)
