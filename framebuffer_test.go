package ltdc

import (
	"testing"
	"unsafe"
)

func TestNewFramebuffer(t *testing.T) {
	fb := NewFramebuffer(DiscoWidth, DiscoHeight)
	if v := len(fb.pix); v != DiscoWidth*DiscoHeight {
		t.Errorf("expected %d words, got %d", DiscoWidth*DiscoHeight, v)
	}
	if fb.Width() != DiscoWidth || fb.Height() != DiscoHeight || fb.Stride() != DiscoWidth {
		t.Errorf("unexpected geometry %dx%d stride %d", fb.Width(), fb.Height(), fb.Stride())
	}
	if fb.Addr() == 0 {
		t.Error("expected a base address")
	}
	if v := NewFramebuffer(0, 0).Addr(); v != 0 {
		t.Errorf("expected empty framebuffer to have no address, got %#x", v)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected negative size to panic")
		}
	}()
	NewFramebuffer(-1, 10)
}

func TestWrapFramebuffer(t *testing.T) {
	mem := make([]uint16, 512*272)
	fb, err := WrapFramebuffer(mem, 480, 272, 512)
	if err != nil {
		t.Fatal(err)
	}
	if v, want := fb.Addr(), uintptr(unsafe.Pointer(&mem[0])); v != want {
		t.Errorf("expected address %#x, got %#x", want, v)
	}

	b := fb.binding(RGB565)
	if v := b.LineBytes(); v != 960 {
		t.Errorf("expected line length 960, got %d", v)
	}
	if v := b.PitchBytes(); v != 1024 {
		t.Errorf("expected pitch 1024, got %d", v)
	}
	if v := len(b.Memory()); v != len(mem) {
		t.Errorf("expected memory view of %d words, got %d", len(mem), v)
	}

	for _, test := range []struct {
		name                  string
		words                 int
		width, height, stride int
	}{
		{"zero width", 100, 0, 10, 10},
		{"zero height", 100, 10, 0, 10},
		{"short stride", 100, 10, 10, 9},
		{"short memory", 99, 10, 10, 10},
	} {
		if _, err := WrapFramebuffer(make([]uint16, test.words), test.width, test.height, test.stride); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}

	// The last line does not need padding.
	if _, err := WrapFramebuffer(make([]uint16, 512*271+480), 480, 272, 512); err != nil {
		t.Errorf("expected unpadded last line to be accepted, got %v", err)
	}
}

func TestTakeFramebufferGeometry(t *testing.T) {
	if v := len(discoFramebuffer); v != DiscoWidth*DiscoHeight {
		t.Errorf("expected static framebuffer of %d words, got %d", DiscoWidth*DiscoHeight, v)
	}
}
