package ltdc

import (
	"fmt"
	"image"
	"image/color"
	"iter"
	"log"
	"sync/atomic"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"

	"github.com/BeatGlow/ltdc/draw"
)

// DISCO panel geometry.
const (
	DiscoWidth  = 480
	DiscoHeight = 272
)

// DiscoConfig is the timing of the 4.3" 480x272 RGB panel on the STM32F7
// discovery board.
var DiscoConfig = DisplayConfig{
	ActiveWidth:  DiscoWidth,
	ActiveHeight: DiscoHeight,
	HBackPorch:   13,
	HFrontPorch:  30,
	HSync:        41,
	VBackPorch:   2,
	VFrontPorch:  2,
	VSync:        10,
	FrameRate:    60 * physic.Hertz,
}

var (
	discoFramebuffer [DiscoWidth * DiscoHeight]uint16
	discoTaken       atomic.Bool
)

// TakeFramebuffer hands out the statically allocated DISCO framebuffer. It
// succeeds once per process.
func TakeFramebuffer() (*Framebuffer, error) {
	if !discoTaken.CompareAndSwap(false, true) {
		return nil, ErrFramebufferTaken
	}
	return &Framebuffer{
		pix:    discoFramebuffer[:],
		width:  DiscoWidth,
		height: DiscoHeight,
		stride: DiscoWidth,
	}, nil
}

// Config is the panel configuration for [Open].
type Config struct {
	// Timing of the panel, the zero value selects DiscoConfig.
	Timing DisplayConfig

	// Framebuffer for layer 1, nil takes the static framebuffer.
	Framebuffer *Framebuffer

	// DisplayOn pin (LCD_DISP), optional.
	DisplayOn gpio.PinOut

	// Backlight pin, optional.
	Backlight gpio.PinOut
}

// Disco is a started panel: one RGB565 layer, presenting.
type Disco struct {
	display   *Display
	displayOn gpio.PinOut
	backlight gpio.PinOut
}

// Open starts the panel. It is the only startup path: the display is held off,
// the timing generator is initialized, the framebuffer is bound to layer 1,
// enabled and reloaded, and then the display and backlight are switched on.
//
// Errors are configuration failures; there is nothing to retry.
func Open(hw Hardware, config *Config) (*Disco, error) {
	if config == nil {
		config = new(Config)
	}
	timing := config.Timing
	if timing == (DisplayConfig{}) {
		timing = DiscoConfig
	}

	d := &Disco{
		displayOn: config.DisplayOn,
		backlight: config.Backlight,
	}
	if err := d.out(d.displayOn, gpio.Low); err != nil {
		return nil, err
	}

	c, err := New(hw, timing, RGB565)
	if err != nil {
		return nil, err
	}

	fb := config.Framebuffer
	if fb == nil {
		if fb, err = TakeFramebuffer(); err != nil {
			return nil, err
		}
	}
	if err = c.ConfigLayer(L1, fb, RGB565); err != nil {
		return nil, err
	}
	if err = c.EnableLayer(L1); err != nil {
		return nil, err
	}
	if err = c.Reload(); err != nil {
		return nil, err
	}

	if d.display, err = NewDisplay(c, L1); err != nil {
		return nil, err
	}
	if err = d.out(d.displayOn, gpio.High); err != nil {
		return nil, err
	}
	if d.backlight == nil {
		log.Println("ltdc: no backlight control")
	} else if err = d.out(d.backlight, gpio.High); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Disco) out(pin gpio.PinOut, level gpio.Level) error {
	if pin == nil || pin == gpio.INVALID {
		return nil
	}
	if err := pin.Out(level); err != nil {
		return fmt.Errorf("ltdc: set %s %s: %w", pin, level, err)
	}
	return nil
}

func (d *Disco) String() string {
	return fmt.Sprintf("LTDC %dx%d %s", d.display.width, d.display.height, d.display.c.State())
}

// Show toggles the display on or off. The layer keeps scanning either way.
func (d *Disco) Show(show bool) error {
	return d.out(d.displayOn, gpio.Level(show))
}

// Close switches the display and backlight off. The timing generator keeps
// running; only a hardware reset stops it.
func (d *Disco) Close() error {
	if err := d.out(d.backlight, gpio.Low); err != nil {
		_ = d.Show(false)
		return err
	}
	return d.Show(false)
}

// Surface returns the drawing surface of layer 1.
func (d *Disco) Surface() *Display { return d.display }

// Controller returns the controller driving the panel.
func (d *Disco) Controller() *Controller { return d.display.c }

// Layer returns the layer the panel draws on.
func (d *Disco) Layer() Layer { return d.display.layer }

// Draw writes every in-range pixel, see [Display.Draw].
func (d *Disco) Draw(pixels iter.Seq[Pixel]) error { return d.display.Draw(pixels) }

func (d *Disco) Size() (x, y int16) { return d.display.Size() }
func (d *Disco) Bounds() image.Rectangle { return d.display.Bounds() }
func (d *Disco) ColorModel() color.Model { return d.display.ColorModel() }
func (d *Disco) At(x, y int) color.Color { return d.display.At(x, y) }
func (d *Disco) Set(x, y int, c color.Color) { d.display.Set(x, y, c) }
func (d *Disco) SetPixel(x, y int16, c color.RGBA) { d.display.SetPixel(x, y, c) }
func (d *Disco) Display() error { return d.display.Display() }
func (d *Disco) Clear() { d.display.Clear() }
func (d *Disco) Fill(c color.Color) { d.display.Fill(c) }

var (
	_ draw.Image        = (*Disco)(nil)
	_ draw.Filler       = (*Disco)(nil)
	_ drivers.Displayer = (*Disco)(nil)
)
