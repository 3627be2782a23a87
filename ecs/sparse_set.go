package ecs

// SparseSet stores one value per entity slot. Dense iteration follows
// insertion order until a Remove swaps the last element into the hole.
type SparseSet[T any] struct {
	denseEntities []Entity
	denseValues   []T
	sparse        []int
}

func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

// Has reports whether e (including its generation) has a value.
func (s *SparseSet[T]) Has(e Entity) bool {
	idx, ok := s.index(e)
	return ok && s.denseEntities[idx] == e
}

// Get returns the value for e and whether it was present.
func (s *SparseSet[T]) Get(e Entity) (T, bool) {
	var zero T
	if !s.Has(e) {
		return zero, false
	}
	return s.denseValues[s.sparse[e.id()-1]], true
}

// Set inserts or replaces the value for e.
func (s *SparseSet[T]) Set(e Entity, v T) {
	if s == nil || !e.Valid() {
		return
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.sparse[id-1]; idx >= 0 {
		// slot reuse: a newer generation replaces the stale entry in place
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Remove deletes the value for e if present.
func (s *SparseSet[T]) Remove(e Entity) bool {
	if !s.Has(e) {
		return false
	}
	id := int(e.id())
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	lastEntity := s.denseEntities[last]

	s.denseEntities[idx] = lastEntity
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEntity.id()-1] = idx

	var zero T
	s.denseValues[last] = zero
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

// Clear drops every value but keeps capacity.
func (s *SparseSet[T]) Clear() {
	if s == nil {
		return
	}
	clear(s.denseValues)
	s.denseEntities = s.denseEntities[:0]
	s.denseValues = s.denseValues[:0]
	for i := range s.sparse {
		s.sparse[i] = -1
	}
}

// Entities returns the dense entity list. Callers must not mutate it.
func (s *SparseSet[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Values returns the dense value list. Callers must not mutate it.
func (s *SparseSet[T]) Values() []T {
	if s == nil {
		return nil
	}
	return s.denseValues
}

func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

func (s *SparseSet[T]) index(e Entity) (int, bool) {
	if s == nil || !e.Valid() || int(e.id()) > len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[e.id()-1]
	return idx, idx >= 0 && idx < len(s.denseEntities)
}
