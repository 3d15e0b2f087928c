package system

import (
	"github.com/milk9111/mozaorun/common"
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
)

// PlayerSystem advances the player each frame. The steps run in a fixed
// order: horizontal move and roll, gravity, then the ground clamp.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	speed := 0.0
	if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
			speed = cam.ScrollSpeed
		}
	}
	dx := speed * FrameDelta(w)

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform) {
		MovePlayer(p, t, dx)
		ApplyGravity(p, t)
		ClampToGround(p, t)
	})
}

// MovePlayer advances the player horizontally by dx and rolls it clockwise
// in proportion to the distance covered.
func MovePlayer(p *component.Player, t *component.Transform, dx float64) {
	t.X += dx
	if p.RollDistance > 0 {
		t.Rotation -= common.DegreesToRadians(p.RollDegrees) * dx / p.RollDistance
	}
}

// ApplyGravity integrates one frame of gravity. Velocity is per frame and
// negative upward.
func ApplyGravity(p *component.Player, t *component.Transform) {
	p.VelocityY += p.Gravity
	t.Y -= p.VelocityY
}

func ClampToGround(p *component.Player, t *component.Transform) {
	if t.Y < p.RestingY {
		t.Y = p.RestingY
		p.VelocityY = 0
		p.OnGround = true
	}
}

// Jump applies the jump impulse if the player is grounded and reports
// whether it did.
func Jump(p *component.Player) bool {
	if p == nil || !p.OnGround {
		return false
	}
	p.OnGround = false
	p.VelocityY = p.JumpImpulse
	return true
}

// ReleaseJump caps upward velocity at the cutoff so short presses give
// short jumps.
func ReleaseJump(p *component.Player) {
	if p == nil {
		return
	}
	if p.VelocityY < p.JumpCutoff {
		p.VelocityY = p.JumpCutoff
	}
}
