package system

import (
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
)

// ClockSystem turns the timestamp written into the FrameClock singleton into
// a frame delta. The first frame after creation has a delta of zero.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.FrameClockComponent.Kind(), func(e ecs.Entity, clock *component.FrameClock) {
		if !clock.Started {
			clock.Delta = 0
			clock.Started = true
		} else {
			clock.Delta = clock.Now - clock.Last
			// Timestamps that run backwards never move the scene in reverse.
			if clock.Delta < 0 {
				clock.Delta = 0
			}
		}
		clock.Last = clock.Now
		clock.Frame++
	})
}

// FrameDelta is the current frame's delta in seconds, or zero when the world
// has no clock.
func FrameDelta(w *ecs.World) float64 {
	e, ok := ecs.First(w, component.FrameClockComponent.Kind())
	if !ok {
		return 0
	}
	clock, ok := ecs.Get(w, e, component.FrameClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.Delta
}
