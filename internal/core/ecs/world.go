package ecs

import "errors"

// ErrSealed is returned when an entity is created after Seal.
var ErrSealed = errors.New("ecs: world is sealed")

// World is the top-level ECS container. Entities are created while the
// world is open; Seal freezes the entity set before the first frame.
type World struct {
	pool   *EntityPool
	sealed bool
}

func NewWorld() *World {
	return &World{
		pool: NewEntityPool(),
	}
}

func (w *World) CreateEntity() (EntityID, error) {
	if w.sealed {
		return 0, ErrSealed
	}
	return w.pool.Create(), nil
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Seal stops further entity creation.
func (w *World) Seal()            { w.sealed = true }
func (w *World) Sealed() bool     { return w.sealed }
func (w *World) EntityCount() int { return w.pool.Len() }
