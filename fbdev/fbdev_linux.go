package fbdev

import (
	"errors"
	"fmt"
	"log"
	"os"
	"syscall"
	"unsafe"

	"github.com/BeatGlow/ltdc"
	"github.com/BeatGlow/ltdc/internal/ioctl"
)

var (
	fbioGetVScreenInfo = ioctl.Encode(ioctl.None, 0, 'F', 0x00)
	fbioGetFScreenInfo = ioctl.Encode(ioctl.None, 0, 'F', 0x02)
	fbioPanDisplay     = ioctl.Encode(ioctl.None, 0, 'F', 0x06)
	fbioBlank          = ioctl.Encode(ioctl.None, 0, 'F', 0x11)
	fbioWaitForVSync   = ioctl.Pointer(ioctl.Write, new(uint32), 'F', 0x20)
)

// Device is an open framebuffer device. It implements [ltdc.Hardware].
type Device struct {
	f           *os.File
	fd          uintptr
	info        fixScreenInfo
	screenInfo  varScreenInfo
	format      ltdc.PixelFormat
	mem         []byte
	initialized bool
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (*Device, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	dev := &Device{
		f:  f,
		fd: f.Fd(),
	}
	if err = ioctl.Do(dev.fd, fbioGetFScreenInfo, unsafe.Pointer(&dev.info)); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Request virtual screen info.
	if err = ioctl.Do(dev.fd, fbioGetVScreenInfo, unsafe.Pointer(&dev.screenInfo)); err != nil {
		_ = f.Close()
		return nil, err
	}
	if dev.format, err = parsePixelFormat(&dev.screenInfo); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map pixel buffer.
	if dev.mem, err = syscall.Mmap(int(dev.fd), 0, int(dev.info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED); err != nil {
		_ = f.Close()
		return nil, err
	}

	if debug {
		log.Printf("fbdev: %s %q %s, %d bytes per line", name, dev.info.name(), &dev.screenInfo, dev.info.LineLength)
	}
	return dev, nil
}

func (dev *Device) String() string {
	return fmt.Sprintf("fbdev %q %s", dev.info.name(), &dev.screenInfo)
}

// Framebuffer wraps the video memory of the device.
func (dev *Device) Framebuffer() (*ltdc.Framebuffer, error) {
	if dev.format != ltdc.RGB565 {
		return nil, fmt.Errorf("%w: %s", ltdc.ErrPixelFormat, dev.format)
	}
	if len(dev.mem) < 2 {
		return nil, ErrNotSupported
	}
	words := unsafe.Slice((*uint16)(unsafe.Pointer(&dev.mem[0])), len(dev.mem)/2)
	return ltdc.WrapFramebuffer(words,
		int(dev.screenInfo.Xres),
		int(dev.screenInfo.Yres),
		int(dev.info.LineLength)/2)
}

// Init checks that the device runs the requested mode. The video timing itself
// belongs to the kernel driver.
func (dev *Device) Init(config ltdc.DisplayConfig, format ltdc.PixelFormat) error {
	if dev.initialized {
		return ltdc.ErrInitialized
	}
	if format != dev.format {
		return fmt.Errorf("%w: device is %s, want %s", ltdc.ErrPixelFormat, dev.format, format)
	}
	if int(dev.screenInfo.Xres) != config.ActiveWidth || int(dev.screenInfo.Yres) != config.ActiveHeight {
		return fmt.Errorf("%w: device is %dx%d, panel is %dx%d", ErrMode,
			dev.screenInfo.Xres, dev.screenInfo.Yres, config.ActiveWidth, config.ActiveHeight)
	}
	dev.initialized = true
	return nil
}

// ConfigLayer accepts layer 1 over the device's own video memory.
func (dev *Device) ConfigLayer(l ltdc.Layer, b ltdc.Binding) error {
	if l != ltdc.L1 {
		return fmt.Errorf("%w: fbdev has only %s", ltdc.ErrLayer, ltdc.L1)
	}
	if len(dev.mem) == 0 || b.Addr != uintptr(unsafe.Pointer(&dev.mem[0])) {
		return ErrForeignMemory
	}
	return nil
}

// EnableLayer unblanks or powers down the display.
func (dev *Device) EnableLayer(l ltdc.Layer, enable bool) error {
	if l != ltdc.L1 {
		return fmt.Errorf("%w: fbdev has only %s", ltdc.ErrLayer, ltdc.L1)
	}
	mode := uintptr(fbBlankPowerdown)
	if enable {
		mode = fbBlankUnblank
	}
	if err := ioctl.Call(dev.fd, fbioBlank, mode); err != nil && !unsupported(err) {
		return err
	}
	return nil
}

// Reload pans the display to the start of video memory, waiting for vertical
// sync first in ReloadVerticalBlank mode.
func (dev *Device) Reload(mode ltdc.ReloadMode) error {
	if mode == ltdc.ReloadVerticalBlank {
		var crtc uint32
		if err := ioctl.Do(dev.fd, fbioWaitForVSync, unsafe.Pointer(&crtc)); err != nil && !unsupported(err) {
			return err
		}
	}
	info := dev.screenInfo
	info.Xoffset, info.Yoffset = 0, 0
	if err := ioctl.Do(dev.fd, fbioPanDisplay, unsafe.Pointer(&info)); err != nil && !unsupported(err) {
		return err
	}
	return nil
}

// unsupported errors are returned by drivers that lack an optional request.
func unsupported(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}

// Close the framebuffer device. The framebuffer must not be used afterwards.
func (dev *Device) Close() error {
	if err := syscall.Munmap(dev.mem); err != nil {
		return err
	}
	dev.mem = nil
	return dev.f.Close()
}

var _ ltdc.Hardware = (*Device)(nil)
