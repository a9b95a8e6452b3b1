package ltdc

import (
	"fmt"
	"log"
)

type layerState uint8

const (
	layerUnbound layerState = iota
	layerBound
	layerEnabled
	layerDisabled
)

type layer struct {
	fb     *Framebuffer
	format PixelFormat
	state  layerState
}

// Controller owns the display controller configuration and every framebuffer
// bound to one of its layers.
//
// The only supported call sequence is ConfigLayer, EnableLayer, Reload. After
// that, pixels are written with DrawPixel. A Controller is not safe for
// concurrent use; callers that draw from more than one goroutine must serialize
// access themselves.
type Controller struct {
	hw     Hardware
	config DisplayConfig
	format PixelFormat
	layers [numLayers]layer
	state  State

	// Framebuffers replaced on a layer, still scanned until the next reload.
	retired []*Framebuffer
}

// New initializes the timing generator. The hardware may only be initialized
// once for the lifetime of the process.
func New(hw Hardware, config DisplayConfig, format PixelFormat) (*Controller, error) {
	if hw == nil {
		return nil, ErrNoHardware
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if !format.Supported() {
		return nil, fmt.Errorf("%w: %s", ErrPixelFormat, format)
	}
	if err := hw.Init(config, format); err != nil {
		return nil, fmt.Errorf("ltdc: init %s: %w", config, err)
	}
	if debug {
		log.Printf("ltdc: timing generator running at %s, pixel clock %s", config, config.PixelClock())
	}
	return &Controller{
		hw:     hw,
		config: config,
		format: format,
	}, nil
}

// Config returns the timing configuration.
func (c *Controller) Config() DisplayConfig {
	return c.config
}

// State returns the driver state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) advance(s State) {
	if s > c.state {
		c.state = s
	}
}

// ConfigLayer binds fb to layer. A layer can only be bound once; to bind a
// different framebuffer, disable the layer first. The previous framebuffer is
// released by the next successful reload; until then the hardware may still be
// scanning it and it cannot be bound elsewhere.
func (c *Controller) ConfigLayer(l Layer, fb *Framebuffer, format PixelFormat) error {
	if !l.Valid() {
		return ErrLayer
	}
	if fb == nil {
		return fmt.Errorf("ltdc: %s: no framebuffer", l)
	}
	if !format.Supported() {
		return fmt.Errorf("%w: %s", ErrPixelFormat, format)
	}

	ls := &c.layers[l]
	if ls.state != layerUnbound && ls.state != layerDisabled {
		return fmt.Errorf("%w: %s", ErrLayerBound, l)
	}
	if fb.bound && fb != ls.fb {
		return ErrFramebufferBound
	}
	if fb.width != c.config.ActiveWidth || fb.height != c.config.ActiveHeight {
		return fmt.Errorf("%w: %dx%d, active area is %dx%d", ErrFramebufferSize,
			fb.width, fb.height, c.config.ActiveWidth, c.config.ActiveHeight)
	}

	b := fb.binding(format)
	if err := c.hw.ConfigLayer(l, b); err != nil {
		return fmt.Errorf("ltdc: configure %s: %w", l, err)
	}
	if debug {
		log.Printf("ltdc: %s bound to %s (%s, stride %d)", l, fb, format, fb.stride)
	}

	if ls.fb != nil && ls.fb != fb {
		c.retired = append(c.retired, ls.fb)
	}
	fb.bound = true
	*ls = layer{
		fb:     fb,
		format: format,
		state:  layerBound,
	}
	c.advance(Configured)
	return nil
}

// EnableLayer marks a bound layer active. It shows up after the next reload.
func (c *Controller) EnableLayer(l Layer) error {
	if !l.Valid() {
		return ErrLayer
	}
	ls := &c.layers[l]
	if ls.state == layerUnbound {
		return fmt.Errorf("%w: %s", ErrLayerNotBound, l)
	}
	if ls.state == layerEnabled {
		return nil
	}
	if err := c.hw.EnableLayer(l, true); err != nil {
		return fmt.Errorf("ltdc: enable %s: %w", l, err)
	}
	ls.state = layerEnabled
	c.advance(Enabled)
	return nil
}

// DisableLayer removes a layer from composition after the next reload, and
// allows it to be bound again. The driver state does not move back.
func (c *Controller) DisableLayer(l Layer) error {
	if !l.Valid() {
		return ErrLayer
	}
	ls := &c.layers[l]
	if ls.state == layerUnbound {
		return fmt.Errorf("%w: %s", ErrLayerNotBound, l)
	}
	if err := c.hw.EnableLayer(l, false); err != nil {
		return fmt.Errorf("ltdc: disable %s: %w", l, err)
	}
	ls.state = layerDisabled
	return nil
}

// Reload commits all pending layer configuration immediately.
func (c *Controller) Reload() error {
	return c.ReloadAt(ReloadImmediate)
}

// ReloadAt commits all pending layer configuration using mode. Reloading
// without configuration changes leaves the presented frame as it is.
//
// Framebuffers replaced by a rebind are released once the reload is accepted.
// With ReloadVerticalBlank the switch happens at the next blanking period, so
// a released framebuffer may be scanned for the rest of the current frame.
func (c *Controller) ReloadAt(mode ReloadMode) error {
	if c.state == Unconfigured {
		return ErrNotConfigured
	}
	if err := c.hw.Reload(mode); err != nil {
		return fmt.Errorf("ltdc: reload: %w", err)
	}
	if debug {
		log.Printf("ltdc: reload (%s)", mode)
	}
	for _, fb := range c.retired {
		fb.bound = false
	}
	c.retired = nil
	if c.state >= Enabled {
		c.advance(Presenting)
	}
	return nil
}

// DrawPixel stores raw at (x, y) of the framebuffer bound to l. It is a single
// unchecked store: the layer must be bound and (x, y) must be inside the active
// area.
func (c *Controller) DrawPixel(l Layer, x, y int, raw uint16) {
	fb := c.layers[l].fb
	fb.pix[y*fb.stride+x] = raw
}

// Pixel loads the raw value at (x, y) of the framebuffer bound to l. The same
// preconditions as for DrawPixel apply.
func (c *Controller) Pixel(l Layer, x, y int) uint16 {
	fb := c.layers[l].fb
	return fb.pix[y*fb.stride+x]
}

// Fill sets every pixel of the framebuffer bound to l to raw.
func (c *Controller) Fill(l Layer, raw uint16) error {
	if !l.Valid() {
		return ErrLayer
	}
	ls := &c.layers[l]
	if ls.fb == nil {
		return fmt.Errorf("%w: %s", ErrLayerNotBound, l)
	}
	if f, ok := c.hw.(Filler); ok {
		return f.Fill(ls.fb.binding(ls.format), raw)
	}
	fb := ls.fb
	for y := 0; y < fb.height; y++ {
		line := fb.pix[y*fb.stride : y*fb.stride+fb.width]
		for x := range line {
			line[x] = raw
		}
	}
	return nil
}

// Bound reports if a framebuffer is bound to l.
func (c *Controller) Bound(l Layer) bool {
	return l.Valid() && c.layers[l].fb != nil
}
