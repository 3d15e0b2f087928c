package system

import (
	"github.com/milk9111/mozaorun/common"
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
)

// CameraSystem scrolls the camera along X at its configured speed.
type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	t.X += cam.ScrollSpeed * FrameDelta(w)
	if err := ecs.Add(w, cs.camEntity, component.TransformComponent.Kind(), t); err != nil {
		panic("camera system: update transform: " + err.Error())
	}
}

// PlayableRect is the part of a screenW x screenH frame that stays visible on
// every supported device: full width, height cut to the widest aspect ratio
// and centred vertically.
func PlayableRect(screenW, screenH, aspectRatio float64) common.Rect {
	if aspectRatio <= 0 {
		return common.Rect{Width: screenW, Height: screenH}
	}
	h := screenW / aspectRatio
	return common.Rect{
		X:      0,
		Y:      (screenH - h) / 2,
		Width:  screenW,
		Height: h,
	}
}

// CameraRect is the visible world rectangle for a camera centred on (cx, cy).
func CameraRect(cx, cy float64, cam component.Camera) common.Rect {
	return common.Rect{
		X:      cx - cam.PlayableW/2,
		Y:      cy - cam.PlayableH/2,
		Width:  cam.PlayableW,
		Height: cam.PlayableH,
	}
}

// CurrentCameraRect looks up the camera entity and returns its visible rect.
func CurrentCameraRect(w *ecs.World) (common.Rect, bool) {
	if w == nil {
		return common.Rect{}, false
	}
	e, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	return CameraRect(t.X, t.Y, *cam), true
}
