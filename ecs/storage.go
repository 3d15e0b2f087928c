package ecs

// componentStore is the type-erased view of a store used by entity
// destruction and multi-kind queries.
type componentStore interface {
	has(id entityID) bool
	remove(id entityID) bool
	entityIDs() []entityID
	len() int
}

// store is a sparse set of *T keyed by entity id. Dense slices keep
// iteration cache friendly; sparse maps id -> dense index + 1.
type store[T any] struct {
	dense  []entityID
	values []*T
	sparse []int
}

func (s *store[T]) has(id entityID) bool {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return false
	}
	return s.sparse[id-1] > 0
}

func (s *store[T]) get(id entityID) (*T, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.values[s.sparse[id-1]-1], true
}

func (s *store[T]) set(id entityID, v *T) {
	if id == 0 {
		return
	}
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, 0)
	}
	if idx := s.sparse[id-1]; idx > 0 {
		s.values[idx-1] = v
		return
	}
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense)
}

func (s *store[T]) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1] - 1
	last := len(s.dense) - 1
	lastID := s.dense[last]

	s.dense[idx] = s.dense[last]
	s.values[idx] = s.values[last]
	s.sparse[lastID-1] = idx + 1

	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.sparse[id-1] = 0
	return true
}

func (s *store[T]) entityIDs() []entityID {
	if s == nil {
		return nil
	}
	return s.dense
}

func (s *store[T]) len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}
