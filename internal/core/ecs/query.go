package ecs

// Each2 iterates over entities that have both component A and B.
// It walks the smaller store in entity order and looks each id up in the larger one.
func Each2[A, B any](sa *PtrComponentStore[A], sb *PtrComponentStore[B], fn func(EntityID, *A, *B)) {
	if sa.Len() <= sb.Len() {
		for _, id := range sa.IDs() {
			if b, ok := sb.data[id]; ok {
				fn(id, sa.data[id], b)
			}
		}
		return
	}
	for _, id := range sb.IDs() {
		if a, ok := sa.data[id]; ok {
			fn(id, a, sb.data[id])
		}
	}
}

// Each3 iterates over entities that have components A, B, and C.
func Each3[A, B, C any](sa *PtrComponentStore[A], sb *PtrComponentStore[B], sc *PtrComponentStore[C], fn func(EntityID, *A, *B, *C)) {
	Each2(sa, sb, func(id EntityID, a *A, b *B) {
		if c, ok := sc.data[id]; ok {
			fn(id, a, b, c)
		}
	})
}
