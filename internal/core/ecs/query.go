package ecs

// Each2 iterates over entities that have both component A and B.
// It walks the smaller store's dense list and probes the larger one.
func Each2[A, B any](sa *SparseSet[A], sb *SparseSet[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for _, id := range sa.denseEntities {
			if sb.Contains(id) {
				fn(id, sa.Get(id), sb.Get(id))
			}
		}
		return
	}
	for _, id := range sb.denseEntities {
		if sa.Contains(id) {
			fn(id, sa.Get(id), sb.Get(id))
		}
	}
}

// Each3 iterates over entities that have components A, B, and C, walking the
// smallest store's dense list.
func Each3[A, B, C any](sa *SparseSet[A], sb *SparseSet[B], sc *SparseSet[C], fn func(EntityID, *A, *B, *C)) {
	ids := sa.denseEntities
	if sb.Len() < len(ids) {
		ids = sb.denseEntities
	}
	if sc.Len() < len(ids) {
		ids = sc.denseEntities
	}
	for _, id := range ids {
		if sa.Contains(id) && sb.Contains(id) && sc.Contains(id) {
			fn(id, sa.Get(id), sb.Get(id), sc.Get(id))
		}
	}
}
