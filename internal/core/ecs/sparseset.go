package ecs

// absent marks a sparse slot with no dense entry.
const absent int32 = -1

// SparseSet maps entity IDs to values of type T with O(1) add, lookup, and
// swap-remove. The sparse array is indexed by entity index and holds the
// position of that entity's value in the dense arrays, or -1. The dense
// arrays stay hole-free: removal moves the last entry into the vacated slot,
// so iteration order is not stable across removals.
type SparseSet[T any] struct {
	sparse        []int32
	dense         []T
	denseEntities []EntityID
}

func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

// Add inserts a value for the given entity. Returns false without mutating
// anything if the entity already has an entry.
func (s *SparseSet[T]) Add(id EntityID, value T) bool {
	idx := id.Index()
	if uint32(len(s.sparse)) > idx {
		if denseIdx := s.sparse[idx]; denseIdx != absent {
			if s.denseEntities[denseIdx] == id {
				return false
			}
			// Stale occupant from a recycled index; evict it so the
			// sparse/dense invariant holds for the new entry.
			s.Remove(s.denseEntities[denseIdx])
		}
	}
	for uint32(len(s.sparse)) <= idx {
		s.sparse = append(s.sparse, absent)
	}
	s.sparse[idx] = int32(len(s.dense))
	s.dense = append(s.dense, value)
	s.denseEntities = append(s.denseEntities, id)
	return true
}

// Get returns a pointer to the entity's value. The entity must be present:
// this is the hot path and performs no presence check, so callers pair it
// with Contains.
func (s *SparseSet[T]) Get(id EntityID) *T {
	return &s.dense[s.sparse[id.Index()]]
}

// Remove deletes the entity's value by swapping the last dense entry into
// its slot. Returns false if the entity has no entry. Trailing absent slots
// are trimmed from the sparse array so it stays bounded by the highest live
// index rather than the highest index ever seen.
func (s *SparseSet[T]) Remove(id EntityID) bool {
	if !s.Contains(id) {
		return false
	}
	idx := id.Index()
	denseIdx := s.sparse[idx]
	last := len(s.dense) - 1

	s.dense[denseIdx] = s.dense[last]
	s.denseEntities[denseIdx] = s.denseEntities[last]
	s.sparse[s.denseEntities[denseIdx].Index()] = denseIdx

	s.dense = s.dense[:last]
	s.denseEntities = s.denseEntities[:last]
	s.sparse[idx] = absent

	for len(s.sparse) > 0 && s.sparse[len(s.sparse)-1] == absent {
		s.sparse = s.sparse[:len(s.sparse)-1]
	}
	return true
}

// Contains reports whether the entity has an entry. The generation is
// checked too, so a stale handle for a recycled index reports false.
func (s *SparseSet[T]) Contains(id EntityID) bool {
	idx := id.Index()
	if uint32(len(s.sparse)) <= idx {
		return false
	}
	denseIdx := s.sparse[idx]
	return denseIdx != absent && s.denseEntities[denseIdx] == id
}

func (s *SparseSet[T]) Len() int {
	return len(s.dense)
}

// IDs returns the dense entity list. The slice is shared with internal
// storage; callers iterate it but must not mutate the set while doing so.
func (s *SparseSet[T]) IDs() []EntityID {
	return s.denseEntities
}

// Values returns the dense value list, parallel to IDs.
func (s *SparseSet[T]) Values() []T {
	return s.dense
}

// Each calls fn for every stored entry. fn must not add or remove entries.
func (s *SparseSet[T]) Each(fn func(EntityID, *T)) {
	for i := range s.dense {
		fn(s.denseEntities[i], &s.dense[i])
	}
}

// Clear drops all entries.
func (s *SparseSet[T]) Clear() {
	s.sparse = s.sparse[:0]
	s.dense = s.dense[:0]
	s.denseEntities = s.denseEntities[:0]
}
