package ecs

import "github.com/milk9111/mozaorun/ecs/component"

// World owns entities, their components and the frame event queue.
type World struct {
	generations []generation
	alive       []bool
	free        []entityID
	count       int

	stores map[component.ComponentID]componentStore
	events EventQueue
}

// KindID is satisfied by every component.ComponentKind regardless of its
// type parameter, so untyped queries can mix kinds.
type KindID interface {
	ID() component.ComponentID
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new entity, reusing freed ids with a bumped generation.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
		id = entityID(len(w.generations))
	}
	w.alive[id-1] = true
	w.count++
	return makeEntity(id, w.generations[id-1])
}

// DestroyEntity removes every component of e and invalidates the handle.
// It reports whether e was alive.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, s := range w.stores {
		s.remove(id)
	}
	w.alive[id-1] = false
	w.generations[id-1]++
	w.free = append(w.free, id)
	w.count--
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if id == 0 || int(id) > len(w.generations) {
		return false
	}
	return w.alive[id-1] && w.generations[id-1] == e.generation()
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.count)
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.generations[i]))
		}
	}
	return out
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return CreateEntity(w)
}

// DestroyEntity marks an entity as dead.
func (w *World) DestroyEntity(e Entity) bool {
	return DestroyEntity(w, e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) entityFor(id entityID) Entity {
	return makeEntity(id, w.generations[id-1])
}

func (w *World) storeFor(id component.ComponentID) componentStore {
	if w == nil || w.stores == nil {
		return nil
	}
	return w.stores[id]
}
