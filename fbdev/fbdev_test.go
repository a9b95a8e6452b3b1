package fbdev

import (
	"errors"
	"testing"

	"github.com/BeatGlow/ltdc"
)

func TestParsePixelFormat(t *testing.T) {
	tests := []struct {
		name string
		info varScreenInfo
		want ltdc.PixelFormat
		err  bool
	}{
		{
			name: "rgb565",
			info: varScreenInfo{
				BitsPerPixel: 16,
				Red:          bitField{Offset: 11, Length: 5},
				Green:        bitField{Offset: 5, Length: 6},
				Blue:         bitField{Offset: 0, Length: 5},
			},
			want: ltdc.RGB565,
		},
		{
			name: "bgr565",
			info: varScreenInfo{
				BitsPerPixel: 16,
				Red:          bitField{Offset: 0, Length: 5},
				Green:        bitField{Offset: 5, Length: 6},
				Blue:         bitField{Offset: 11, Length: 5},
			},
			err: true,
		},
		{
			name: "rgb555",
			info: varScreenInfo{
				BitsPerPixel: 16,
				Red:          bitField{Offset: 10, Length: 5},
				Green:        bitField{Offset: 5, Length: 5},
				Blue:         bitField{Offset: 0, Length: 5},
			},
			err: true,
		},
		{
			name: "rgb888",
			info: varScreenInfo{
				BitsPerPixel: 24,
				Red:          bitField{Offset: 16, Length: 8},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 0, Length: 8},
			},
			want: ltdc.RGB888,
		},
		{
			name: "argb8888",
			info: varScreenInfo{
				BitsPerPixel: 32,
				Red:          bitField{Offset: 16, Length: 8},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 0, Length: 8},
				Alpha:        bitField{Offset: 24, Length: 8},
			},
			want: ltdc.ARGB8888,
		},
		{
			name: "mono",
			info: varScreenInfo{BitsPerPixel: 1},
			err:  true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			v, err := parsePixelFormat(&test.info)
			if test.err {
				if !errors.Is(err, ltdc.ErrPixelFormat) {
					it.Errorf("expected %v, got %v", ltdc.ErrPixelFormat, err)
				}
				return
			}
			if err != nil {
				it.Fatal(err)
			}
			if v != test.want {
				it.Errorf("expected %s, got %s", test.want, v)
			}
		})
	}

	if _, err := parsePixelFormat(nil); err == nil {
		t.Error("expected an error for missing screen info")
	}
}

func TestFixScreenInfoName(t *testing.T) {
	var info fixScreenInfo
	copy(info.ID[:], "stm32-ltdc")
	if v := info.name(); v != "stm32-ltdc" {
		t.Errorf("expected %q, got %q", "stm32-ltdc", v)
	}
	copy(info.ID[:], "0123456789abcdef")
	if v := info.name(); v != "0123456789abcdef" {
		t.Errorf("expected %q, got %q", "0123456789abcdef", v)
	}
}
