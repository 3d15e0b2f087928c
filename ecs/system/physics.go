package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/mozaorun/ecs"
	"github.com/milk9111/mozaorun/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeProp
)

// PhysicsSystem mirrors physics bodies into a cp space and turns cp contact
// begins into ContactEvents on the world event queue. Positions are driven by
// the scene, so every shape is a sensor and the space has no gravity.
// Category and contact mask map onto the shape filter, which means cp only
// reports pairs where each side's category is in the other's mask.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	w        *ecs.World
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
	// x, y is where a static shape was built; static shapes are rebuilt
	// when their entity moves.
	x, y float64
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}
	if ps.entities == nil {
		ps.entities = make(map[ecs.Entity]*bodyInfo)
	}
	ps.w = w

	ps.ensureHandlers()
	ps.syncEntities(w)

	dt := FrameDelta(w)
	if dt <= 0 {
		return
	}
	ps.space.Step(dt)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeProp)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys.w == nil {
			return true
		}
		a, b := arb.Shapes()
		sys.w.Events().Push(ecs.Event{
			Type: component.ContactEventType,
			Data: component.ContactEvent{
				A: component.Category(a.Filter.Categories),
				B: component.Category(b.Filter.Categories),
			},
		})
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		cx, cy := bodyCenter(*transform, *bodyComp)

		info := ps.entities[e]
		if info != nil {
			if !info.static {
				info.body.SetPosition(cp.Vector{X: cx, Y: cy})
				info.body.SetVelocity(0, 0)
				info.body.SetAngle(transform.Rotation)
				continue
			}
			if info.x == cx && info.y == cy {
				continue
			}
			ps.removeInfo(info)
			delete(ps.entities, e)
		}

		info = ps.createBodyInfo(cx, cy, transform.Rotation, *bodyComp, ecs.Has(w, e, component.PlayerTagComponent.Kind()))
		info.shape.UserData = e
		ps.entities[e] = info

		bodyComp.Body = info.body
		bodyComp.CPShape = info.shape
	}
}

// bodyCenter returns the collider centre for a transform.
func bodyCenter(t component.Transform, b component.PhysicsBody) (float64, float64) {
	if !b.AnchorBottomLeft {
		return t.X, t.Y
	}
	w, h := b.Width, b.Height
	if b.Shape == component.ShapeCircle {
		w, h = b.Radius*2, b.Radius*2
	}
	return t.X + w/2, t.Y + h/2
}

func (ps *PhysicsSystem) createBodyInfo(cx, cy, angle float64, bodyComp component.PhysicsBody, isPlayer bool) *bodyInfo {
	width, height, radius := bodyComp.Width, bodyComp.Height, bodyComp.Radius
	if bodyComp.Shape == component.ShapeCircle && radius <= 0 {
		radius = 1
	}
	if bodyComp.Shape == component.ShapeRect && (width <= 0 || height <= 0) {
		width, height = 1, 1
	}

	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(bodyComp.Category), uint(bodyComp.ContactMask))
	collisionType := collisionTypeProp
	if isPlayer {
		collisionType = collisionTypePlayer
	}

	if !bodyComp.Dynamic {
		var shape *cp.Shape
		if bodyComp.Shape == component.ShapeCircle {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: cx, Y: cy})
		} else {
			bb := cp.BB{L: cx - width/2, B: cy - height/2, R: cx + width/2, T: cy + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetSensor(true)
		shape.SetFilter(filter)
		shape.SetCollisionType(collisionType)
		ps.space.AddShape(shape)

		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true, x: cx, y: cy}
	}

	mass := 1.0
	var moment float64
	if bodyComp.Shape == component.ShapeCircle {
		moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	} else {
		moment = cp.MomentForBox(mass, width, height)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: cx, Y: cy})
	body.SetAngle(angle)

	var shape *cp.Shape
	if bodyComp.Shape == component.ShapeCircle {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetSensor(true)
	shape.SetFilter(filter)
	shape.SetCollisionType(collisionType)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape}
}

func (ps *PhysicsSystem) removeInfo(info *bodyInfo) {
	if info.shape != nil {
		ps.space.RemoveShape(info.shape)
	}
	if info.body != nil && !info.static {
		ps.space.RemoveBody(info.body)
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeInfo(info)
		delete(ps.entities, e)
	}
}

// Bodies is the number of entities currently mirrored in the space.
func (ps *PhysicsSystem) Bodies() int {
	return len(ps.entities)
}
