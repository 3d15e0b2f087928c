package ecs

import "github.com/milk9111/mozaorun/ecs/component"

func typedStore[T any](w *World, kind component.ComponentKind[T], create bool) *store[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*store[T])
		return typed
	}
	if !create {
		return nil
	}
	s := &store[T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add attaches or replaces the component of the given kind on e.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	typedStore(w, kind, true).set(e.id(), value)
	return nil
}

// Remove detaches the component of the given kind, reporting whether it existed.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return typedStore(w, kind, false).remove(e.id())
}

// Has reports whether e carries the component kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return typedStore(w, kind, false).has(e.id())
}

// Get returns the stored pointer, so mutations are visible without a write back.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	return typedStore(w, kind, false).get(e.id())
}

// First returns the first live entity carrying the component kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	return w.First(kind)
}
