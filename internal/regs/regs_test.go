package regs

import (
	"testing"

	"github.com/BeatGlow/ltdc"
)

func TestEncodeTiming(t *testing.T) {
	v := EncodeTiming(ltdc.DiscoConfig)
	for _, test := range []struct {
		name      string
		got, want uint32
	}{
		{"SSCR", v.SSCR, 0x0028_0009},
		{"BPCR", v.BPCR, 0x0035_000b},
		{"AWCR", v.AWCR, 0x0215_011b},
		{"TWCR", v.TWCR, 0x0233_011d},
		{"GCR", v.GCR, 0},
	} {
		if test.got != test.want {
			t.Errorf("%s: expected %#08x, got %#08x", test.name, test.want, test.got)
		}
	}
}

func TestEncodeTimingPolarity(t *testing.T) {
	c := ltdc.DiscoConfig
	c.HSyncPol = true
	c.PixelClockPol = true
	if v := EncodeTiming(c).GCR; v != GCRHSPOL|GCRPCPOL {
		t.Errorf("expected GCR %#08x, got %#08x", uint32(GCRHSPOL|GCRPCPOL), v)
	}
}

func TestEncodeWindow(t *testing.T) {
	b := ltdc.Binding{
		Addr:   0xc000_0000,
		Stride: 480,
		Width:  480,
		Height: 272,
		Format: ltdc.RGB565,
	}

	w := EncodeWindow(ltdc.DiscoConfig, b)
	if hi, lo := Split(w.WHPCR); hi != 533 || lo != 54 {
		t.Errorf("WHPCR: expected 533/54, got %d/%d", hi, lo)
	}
	if hi, lo := Split(w.WVPCR); hi != 283 || lo != 12 {
		t.Errorf("WVPCR: expected 283/12, got %d/%d", hi, lo)
	}
	if hi, lo := Split(w.CFBLR); hi != 960 || lo != 963 {
		t.Errorf("CFBLR: expected 960/963, got %d/%d", hi, lo)
	}
	if w.CFBLNR != 272 {
		t.Errorf("CFBLNR: expected 272, got %d", w.CFBLNR)
	}
	if w.PFCR != uint32(ltdc.RGB565) {
		t.Errorf("PFCR: expected %d, got %d", ltdc.RGB565, w.PFCR)
	}
	if w.CFBAR != 0xc000_0000 {
		t.Errorf("CFBAR: expected 0xc0000000, got %#08x", w.CFBAR)
	}
}

func TestLayer(t *testing.T) {
	if v := Layer(ltdc.L1); v != 0x84 {
		t.Errorf("expected L1 at 0x84, got %#x", v)
	}
	if v := Layer(ltdc.L2); v != 0x104 {
		t.Errorf("expected L2 at 0x104, got %#x", v)
	}
}
