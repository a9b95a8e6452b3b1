package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/ltdc"
	"github.com/BeatGlow/ltdc/draw"
	"github.com/BeatGlow/ltdc/fbdev"
	"github.com/BeatGlow/ltdc/sim"
	"github.com/BeatGlow/ltdc/text"
)

func main() {
	backendFlag := flag.String("backend", "sim", "Display backend (sim or fbdev)")
	deviceFlag := flag.String("device", "/dev/fb0", "Framebuffer device for the fbdev backend")
	dispPinFlag := flag.String("disp", "", "Display enable GPIO pin (LCD_DISP)")
	blPinFlag := flag.String("bl", "", "Backlight GPIO pin")
	framesFlag := flag.Int("frames", 1, "Number of frames to draw, 0 runs until interrupted")
	textFlag := flag.String("text", "hello", "Text to show")
	pngFlag := flag.String("png", "", "Write the last frame to this PNG file")
	vblankFlag := flag.Bool("vblank", false, "Reload layer configuration during vertical blanking")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		config = &ltdc.Config{
			Framebuffer: ltdc.NewFramebuffer(ltdc.DiscoWidth, ltdc.DiscoHeight),
			DisplayOn:   gpioreg.ByName(*dispPinFlag),
			Backlight:   gpioreg.ByName(*blPinFlag),
		}
		hw     ltdc.Hardware
		scan   func() image.Image
		closer io.Closer
		err    error
	)
	switch *backendFlag {
	case "sim":
		s := sim.New()
		hw = s
		scan = func() image.Image { return s.Scan() }
	case "fbdev":
		var dev *fbdev.Device
		if dev, err = fbdev.Open(*deviceFlag); err != nil {
			fatal(err)
		}
		if config.Framebuffer, err = dev.Framebuffer(); err != nil {
			_ = dev.Close()
			fatal(err)
		}
		hw, closer = dev, dev
	default:
		fatal(fmt.Errorf("unsupported backend %q", *backendFlag))
	}
	if closer != nil {
		defer closer.Close()
	}
	fmt.Printf("using backend: %s\n", hw)

	output, err := ltdc.Open(hw, config)
	if err != nil {
		fatal(err)
	}
	defer output.Close()
	fmt.Printf("using display: %s, pixel clock %s\n", output, output.Controller().Config().PixelClock())

	face, err := text.GoRegular(20)
	if err != nil {
		fatal(err)
	}
	defer face.Close()

	var (
		r      = output.Bounds()
		ticker = time.NewTicker(50 * time.Millisecond)
		white  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	)
	defer ticker.Stop()

	output.Clear()
	draw.Rectangle(output, r, white)

	if *framesFlag == 0 {
		fmt.Println("hit control-c to stop...")
	}
	for offset := 0; *framesFlag == 0 || offset < *framesFlag; offset++ {
		// Draw gradient inside box
		for y := 1; y < r.Max.Y-1; y++ {
			for x := 1; x < r.Max.X-1; x++ {
				output.Set(x, y, color.RGBA{
					R: uint8(x + y + offset),
					G: uint8(x - y + offset),
					B: uint8(x + y - offset),
					A: 0xff,
				})
			}
		}
		draw.RoundedBox(output, image.Rect(10, 8, 250, 40), 6, color.Black)
		text.Draw(output, face, image.Pt(20, 30), white, *textFlag)
		text.WriteTiny(output, 20, int16(r.Max.Y-10), white, fmt.Sprintf("frame %d", offset))

		if *vblankFlag {
			err = output.Controller().ReloadAt(ltdc.ReloadVerticalBlank)
		} else {
			err = output.Controller().Reload()
		}
		if err != nil {
			fatal(err)
		}
		if scan != nil {
			scan()
		}
		if err = output.Display(); err != nil {
			fatal(err)
		}

		if *framesFlag == 0 || offset+1 < *framesFlag {
			<-ticker.C
		}
	}

	if *pngFlag != "" {
		var frame image.Image = output
		if scan != nil {
			frame = scan()
		}
		if err = writePNG(*pngFlag, frame); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", *pngFlag)
	}
}

func writePNG(name string, m image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = png.Encode(f, m); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
