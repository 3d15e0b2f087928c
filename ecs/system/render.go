package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
	"github.com/milk9111/mozaorun/ecs/render"
)

// RenderSystem draws sprites from a camera's point of view. World Y grows
// upward, so the view is flipped onto the screen.
type RenderSystem struct {
	camEntity ecs.Entity
	ScreenW   float64
	ScreenH   float64
}

func NewRenderSystem(screenW, screenH float64) *RenderSystem {
	return &RenderSystem{ScreenW: screenW, ScreenH: screenH}
}

// View maps world coordinates to screen pixels for a camera centred on
// (camX, camY).
type View struct {
	CamX, CamY float64
	ScreenW    float64
	ScreenH    float64
}

func (v View) ToScreen(x, y float64) (float64, float64) {
	return x - (v.CamX - v.ScreenW/2), (v.CamY + v.ScreenH/2) - y
}

func (r *RenderSystem) view(w *ecs.World) View {
	v := View{CamX: r.ScreenW / 2, CamY: r.ScreenH / 2, ScreenW: r.ScreenW, ScreenH: r.ScreenH}
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		v.CamX = camTransform.X
		v.CamY = camTransform.Y
	}
	return v
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	v := r.view(w)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		if e == r.camEntity {
			continue
		}

		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Key == "" {
			continue
		}
		if s.Image == nil {
			s.Image = render.ImageOrPlaceholder(s.Key)
		}

		imgW := float64(s.Image.Bounds().Dx())
		imgH := float64(s.Image.Bounds().Dy())
		if imgW == 0 || imgH == 0 {
			continue
		}

		// Stretch the image to the entity's footprint.
		dw, dh := imgW, imgH
		if size, ok := ecs.Get(w, e, component.SizeComponent.Kind()); ok {
			dw, dh = size.Scaled(*t)
		}

		op := &ebiten.DrawImageOptions{}
		// Anchor is measured from the bottom-left, the image from the top-left.
		op.GeoM.Translate(-s.AnchorX*imgW, -(1-s.AnchorY)*imgH)
		op.GeoM.Scale(dw/imgW, dh/imgH)
		op.GeoM.Rotate(-t.Rotation)
		sx, sy := v.ToScreen(t.X, t.Y)
		op.GeoM.Translate(sx, sy)
		op.Filter = ebiten.FilterLinear

		screen.DrawImage(s.Image, op)
	}
}
