package system

import (
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
)

// TilingSystem moves background and ground tiles that have scrolled fully
// behind the camera two tile widths forward.
type TilingSystem struct{}

func NewTilingSystem() *TilingSystem {
	return &TilingSystem{}
}

func (s *TilingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	camRect, ok := CurrentCameraRect(w)
	if !ok {
		return
	}

	ecs.ForEach3(w, component.TileComponent.Kind(), component.TransformComponent.Kind(), component.SizeComponent.Kind(), func(e ecs.Entity, _ *component.Tile, t *component.Transform, size *component.Size) {
		tw, _ := size.Scaled(*t)
		t.X = RecycleTileX(t.X, tw, camRect.MinX())
	})
}

// RecycleTileX returns the new left edge for a tile of width tw whose left
// edge is at x, given the camera's left edge.
func RecycleTileX(x, tw, cameraMinX float64) float64 {
	if x+tw < cameraMinX {
		return x + tw*2
	}
	return x
}
