package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite references its image by asset key; the render system resolves and
// caches Image lazily so simulation code never touches the GPU.
type Sprite struct {
	Key   string
	Image *ebiten.Image
	// AnchorX/AnchorY are normalized, (0,0) bottom-left, (0.5,0.5) centre.
	AnchorX float64
	AnchorY float64
}

var SpriteComponent = NewComponent[Sprite]()
