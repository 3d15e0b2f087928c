package system

import (
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
)

// LifetimeSystem counts down Lifetime components and destroys entities once
// their time is up.
type LifetimeSystem struct{}

func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

func (s *LifetimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := FrameDelta(w)
	ecs.ForEach(w, component.LifetimeComponent.Kind(), func(e ecs.Entity, lt *component.Lifetime) {
		if lt == nil {
			return
		}

		lt.Remaining -= dt
		if lt.Remaining > 0 {
			return
		}

		ecs.DestroyEntity(w, e)
	})
}
