package ecs

import "sort"

// PtrComponentStore is a generic typed map store for ECS components.
// Pure generics, no reflect.
type PtrComponentStore[T any] struct {
	data map[EntityID]*T
}

func NewPtrComponentStore[T any]() *PtrComponentStore[T] {
	return &PtrComponentStore[T]{
		data: make(map[EntityID]*T, 8),
	}
}

func (s *PtrComponentStore[T]) Set(id EntityID, c *T) {
	s.data[id] = c
}

func (s *PtrComponentStore[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *PtrComponentStore[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *PtrComponentStore[T]) Len() int {
	return len(s.data)
}

// IDs returns the entity ids holding this component in ascending order.
func (s *PtrComponentStore[T]) IDs() []EntityID {
	ids := make([]EntityID, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Each visits every component in ascending entity order so systems behave
// the same on every run.
func (s *PtrComponentStore[T]) Each(fn func(EntityID, *T)) {
	for _, id := range s.IDs() {
		fn(id, s.data[id])
	}
}

// Clone returns a deep copy of the store. Components are copied by value.
func (s *PtrComponentStore[T]) Clone() *PtrComponentStore[T] {
	out := &PtrComponentStore[T]{data: make(map[EntityID]*T, len(s.data))}
	for id, c := range s.data {
		v := *c
		out.data[id] = &v
	}
	return out
}
