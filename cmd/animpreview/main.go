// Command animpreview plays the animation component of a prefab in a small
// window.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mozaorun/ecs/component"
	"github.com/milk9111/mozaorun/ecs/render"
	"github.com/milk9111/mozaorun/prefabs"
)

const previewSize = 512

type previewGame struct {
	anim  component.Animation
	ticks int
}

func (g *previewGame) Update() error {
	g.ticks++
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(g.anim.Frames) == 0 {
		return
	}
	img := render.ImageOrPlaceholder(g.anim.Frames[frameAt(g.anim, float64(g.ticks)/float64(ebiten.TPS()))])
	fw := img.Bounds().Dx()
	fh := img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(previewSize-fw)/2, float64(previewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

// frameAt is the frame index shown after t seconds.
func frameAt(anim component.Animation, t float64) int {
	n := len(anim.Frames)
	if n <= 1 || anim.TimePerFrame <= 0 {
		return 0
	}
	i := int(t / anim.TimePerFrame)
	if anim.Loop {
		return i % n
	}
	if i >= n {
		return n - 1
	}
	return i
}

func loadAnimation(lib *render.AnimationLibrary, prefab string) error {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return fmt.Errorf("load %s: %w", prefab, err)
	}
	raw, ok := spec.Components["animation"]
	if !ok {
		return fmt.Errorf("%s has no animation component", prefab)
	}
	as, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation in %s: %w", prefab, err)
	}
	if len(as.Frames) == 0 {
		return fmt.Errorf("%s animation has no frames", prefab)
	}
	lib.Register(prefab, component.Animation{
		Frames:       as.Frames,
		TimePerFrame: as.TimePerFrame,
		Loop:         as.Loop,
		Playing:      true,
	})
	return nil
}

func main() {
	prefab := flag.String("prefab", "coin.yaml", "prefab whose animation to play")
	flag.Parse()

	lib := render.NewAnimationLibrary()
	if err := loadAnimation(lib, *prefab); err != nil {
		log.Fatal(err)
	}
	anim, _ := lib.Get(*prefab)

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle(fmt.Sprintf("animpreview: %s", *prefab))
	if err := ebiten.RunGame(&previewGame{anim: anim}); err != nil {
		log.Fatal(err)
	}
}
