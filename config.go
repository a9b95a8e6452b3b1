package ltdc

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// DisplayConfig describes the resolution and sync timing of one panel. All
// horizontal values are in pixel clocks, all vertical values in lines.
type DisplayConfig struct {
	// ActiveWidth is the visible width in pixels.
	ActiveWidth int

	// ActiveHeight is the visible height in lines.
	ActiveHeight int

	HBackPorch  int
	HFrontPorch int
	HSync       int
	VBackPorch  int
	VFrontPorch int
	VSync       int

	// FrameRate is the target refresh rate.
	FrameRate physic.Frequency

	// Polarities, false is active low.
	HSyncPol        bool
	VSyncPol        bool
	NoDataEnablePol bool
	PixelClockPol   bool
}

// Limits of the accumulated width and height register fields (12 and 11 bits).
const (
	MaxTotalWidth  = 1 << 12
	MaxTotalHeight = 1 << 11
)

// Validate checks that all geometry is strictly positive and that the totals
// fit the timing registers.
func (c DisplayConfig) Validate() error {
	for _, field := range []struct {
		name  string
		value int
	}{
		{"active width", c.ActiveWidth},
		{"active height", c.ActiveHeight},
		{"horizontal back porch", c.HBackPorch},
		{"horizontal front porch", c.HFrontPorch},
		{"horizontal sync", c.HSync},
		{"vertical back porch", c.VBackPorch},
		{"vertical front porch", c.VFrontPorch},
		{"vertical sync", c.VSync},
	} {
		if field.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidTiming, field.name, field.value)
		}
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate must be positive, got %s", ErrInvalidTiming, c.FrameRate)
	}
	if w := c.TotalWidth(); w > MaxTotalWidth {
		return fmt.Errorf("%w: total width %d exceeds %d", ErrInvalidTiming, w, MaxTotalWidth)
	}
	if h := c.TotalHeight(); h > MaxTotalHeight {
		return fmt.Errorf("%w: total height %d exceeds %d", ErrInvalidTiming, h, MaxTotalHeight)
	}
	return nil
}

// TotalWidth is the number of pixel clocks per line, blanking included.
func (c DisplayConfig) TotalWidth() int {
	return c.HSync + c.HBackPorch + c.ActiveWidth + c.HFrontPorch
}

// TotalHeight is the number of lines per frame, blanking included.
func (c DisplayConfig) TotalHeight() int {
	return c.VSync + c.VBackPorch + c.ActiveHeight + c.VFrontPorch
}

// PixelClock is the pixel clock needed to reach the frame rate.
func (c DisplayConfig) PixelClock() physic.Frequency {
	return physic.Frequency(c.TotalWidth()*c.TotalHeight()) * c.FrameRate
}

func (c DisplayConfig) String() string {
	return fmt.Sprintf("%dx%d@%s", c.ActiveWidth, c.ActiveHeight, c.FrameRate)
}
