package system

import (
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	dt := FrameDelta(w)
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if !anim.Playing || len(anim.Frames) == 0 {
			return
		}

		if anim.TimePerFrame > 0 {
			anim.Elapsed += dt
			for anim.Elapsed >= anim.TimePerFrame {
				anim.Elapsed -= anim.TimePerFrame
				anim.Frame++
				if anim.Frame >= len(anim.Frames) {
					if anim.Loop {
						anim.Frame = 0
					} else {
						anim.Frame = len(anim.Frames) - 1
						anim.Playing = false
						break
					}
				}
			}
		}

		key := anim.Frames[anim.Frame]
		if sprite.Key != key {
			sprite.Key = key
			// Render resolves the new key.
			sprite.Image = nil
		}
	})
}
