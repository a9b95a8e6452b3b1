package ltdc

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestDiscoConfig(t *testing.T) {
	c := DiscoConfig
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.ActiveWidth != 480 || c.ActiveHeight != 272 {
		t.Errorf("expected 480x272, got %dx%d", c.ActiveWidth, c.ActiveHeight)
	}
	if v := c.TotalWidth(); v != 564 {
		t.Errorf("expected total width 564, got %d", v)
	}
	if v := c.TotalHeight(); v != 286 {
		t.Errorf("expected total height 286, got %d", v)
	}
	if v, want := c.PixelClock(), 9678240*physic.Hertz; v != want {
		t.Errorf("expected pixel clock %s, got %s", want, v)
	}
}

func TestDisplayConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*DisplayConfig)
	}{
		{"zero width", func(c *DisplayConfig) { c.ActiveWidth = 0 }},
		{"negative height", func(c *DisplayConfig) { c.ActiveHeight = -1 }},
		{"no hsync", func(c *DisplayConfig) { c.HSync = 0 }},
		{"no vertical back porch", func(c *DisplayConfig) { c.VBackPorch = 0 }},
		{"no frame rate", func(c *DisplayConfig) { c.FrameRate = 0 }},
		{"too wide", func(c *DisplayConfig) { c.ActiveWidth = 40000 }},
		{"too high", func(c *DisplayConfig) { c.ActiveHeight = MaxTotalHeight }},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			c := DiscoConfig
			test.modify(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidTiming) {
				it.Errorf("expected ErrInvalidTiming, got %v", err)
			}
		})
	}

	c := DiscoConfig
	c.ActiveWidth = MaxTotalWidth - c.HSync - c.HBackPorch - c.HFrontPorch
	if err := c.Validate(); err != nil {
		t.Errorf("expected widest timing to be valid, got %v", err)
	}

	if DiscoConfig.ActiveWidth != 480 {
		t.Error("validation cases must not modify the preset")
	}
}
