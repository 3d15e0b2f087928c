package ecs

import "github.com/milk9111/mozaorun/ecs/component"

// snapshot copies the dense id list so callbacks may add, remove or destroy
// while iterating.
func snapshot(ids []entityID) []entityID {
	if len(ids) == 0 {
		return nil
	}
	return append([]entityID(nil), ids...)
}

// ForEach calls fn for every live entity carrying kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := typedStore(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	for _, id := range snapshot(s.dense) {
		v, ok := s.get(id)
		if !ok {
			continue
		}
		fn(w.entityFor(id), v)
	}
}

// ForEach2 calls fn for every entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := typedStore(w, ka, false)
	sb := typedStore(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, id := range snapshot(sa.dense) {
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		if !okA || !okB {
			continue
		}
		fn(w.entityFor(id), a, b)
	}
}

// ForEach3 calls fn for every entity carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := typedStore(w, ka, false)
	sb := typedStore(w, kb, false)
	sc := typedStore(w, kc, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, id := range snapshot(sa.dense) {
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		c, okC := sc.get(id)
		if !okA || !okB || !okC {
			continue
		}
		fn(w.entityFor(id), a, b, c)
	}
}

// ForEach4 calls fn for every entity carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa := typedStore(w, ka, false)
	sb := typedStore(w, kb, false)
	sc := typedStore(w, kc, false)
	sd := typedStore(w, kd, false)
	if sa == nil || sb == nil || sc == nil || sd == nil || fn == nil {
		return
	}
	for _, id := range snapshot(sa.dense) {
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		c, okC := sc.get(id)
		d, okD := sd.get(id)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(w.entityFor(id), a, b, c, d)
	}
}

// Query returns the entities carrying every listed kind, iterating the
// smallest store.
func (w *World) Query(kinds ...KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		s := w.storeFor(k.ID())
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.len())
outer:
	for _, id := range smallest.entityIDs() {
		for _, s := range stores {
			if !s.has(id) {
				continue outer
			}
		}
		out = append(out, w.entityFor(id))
	}
	return out
}

// First returns the first entity carrying kind.
func (w *World) First(kind KindID) (Entity, bool) {
	s := w.storeFor(kind.ID())
	if s == nil {
		return 0, false
	}
	ids := s.entityIDs()
	if len(ids) == 0 {
		return 0, false
	}
	return w.entityFor(ids[0]), true
}
