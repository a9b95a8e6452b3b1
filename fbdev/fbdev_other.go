//go:build !linux

package fbdev

import "github.com/BeatGlow/ltdc"

// Device is unavailable on this platform.
type Device struct{}

// Open is not supported on this platform.
func Open(_ string) (*Device, error) {
	return nil, ErrNotSupported
}

func (dev *Device) Framebuffer() (*ltdc.Framebuffer, error) { return nil, ErrNotSupported }
func (dev *Device) Init(ltdc.DisplayConfig, ltdc.PixelFormat) error { return ErrNotSupported }
func (dev *Device) ConfigLayer(ltdc.Layer, ltdc.Binding) error { return ErrNotSupported }
func (dev *Device) EnableLayer(ltdc.Layer, bool) error { return ErrNotSupported }
func (dev *Device) Reload(ltdc.ReloadMode) error { return ErrNotSupported }
func (dev *Device) Close() error { return ErrNotSupported }
