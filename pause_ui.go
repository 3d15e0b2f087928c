package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const pauseTextScale = 6

var (
	skyColor   = colornames.Skyblue
	pauseShade = color.NRGBA{A: 160}
)

var pauseFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// drawPauseOverlay dims the frame and writes a centred label.
func drawPauseOverlay(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), pauseShade, false)

	const label = "PAUSED"
	w, h := ebtext.Measure(label, pauseFace, 0)

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(pauseTextScale, pauseTextScale)
	op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())/2)
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, label, pauseFace, op)
}
