// Command ltdc-sim shows the scan-out of a simulated panel in a window.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"github.com/BeatGlow/ltdc"
	"github.com/BeatGlow/ltdc/draw"
	"github.com/BeatGlow/ltdc/sim"
	"github.com/BeatGlow/ltdc/text"
)

type game struct {
	lcd    *sim.LTDC
	output *ltdc.Disco
	face   font.Face
	screen *ebiten.Image
	text   string
	ball   image.Point
	dir    image.Point
}

func (g *game) Update() error {
	var (
		r      = g.output.Bounds()
		radius = 12
		bg     = color.RGBA{R: 0x10, G: 0x20, B: 0x40, A: 0xff}
	)
	draw.FilledCircle(g.output, g.ball, radius, bg)

	g.ball = g.ball.Add(g.dir)
	if g.ball.X-radius <= 0 || g.ball.X+radius >= r.Max.X-1 {
		g.dir.X = -g.dir.X
	}
	if g.ball.Y-radius <= 0 || g.ball.Y+radius >= r.Max.Y-1 {
		g.dir.Y = -g.dir.Y
	}

	draw.FilledCircle(g.output, g.ball, radius, color.RGBA{R: 0xff, G: 0xa0, A: 0xff})
	text.Draw(g.output, g.face, image.Pt(20, 30), color.White, g.text)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.lcd.Scan()
	g.screen.WritePixels(frame.RGBA().Pix)
	screen.DrawImage(g.screen, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return ltdc.DiscoWidth, ltdc.DiscoHeight
}

func main() {
	scaleFlag := flag.Int("scale", 2, "Window scale")
	textFlag := flag.String("text", "hello", "Text to show")
	flag.Parse()

	lcd := sim.New()
	output, err := ltdc.Open(lcd, &ltdc.Config{
		Framebuffer: ltdc.NewFramebuffer(ltdc.DiscoWidth, ltdc.DiscoHeight),
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using display: %s, pixel clock %s\n", output, lcd.PixelClock())

	face, err := text.GoRegular(20)
	if err != nil {
		fatal(err)
	}

	output.Fill(color.RGBA{R: 0x10, G: 0x20, B: 0x40, A: 0xff})
	draw.Rectangle(output, output.Bounds(), color.White)

	ebiten.SetWindowSize(ltdc.DiscoWidth * *scaleFlag, ltdc.DiscoHeight * *scaleFlag)
	ebiten.SetWindowTitle(fmt.Sprintf("LTDC %dx%d", ltdc.DiscoWidth, ltdc.DiscoHeight))
	if err = ebiten.RunGame(&game{
		lcd:    lcd,
		output: output,
		face:   face,
		screen: ebiten.NewImage(ltdc.DiscoWidth, ltdc.DiscoHeight),
		text:   *textFlag,
		ball:   image.Pt(ltdc.DiscoWidth/2, ltdc.DiscoHeight/2),
		dir:    image.Pt(3, 2),
	}); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
