package ecs

import "fmt"

// EntityID encodes a 32-bit index in the lower bits and a 32-bit generation
// in the upper bits. Index 0 is reserved so the zero value means "no entity".
type EntityID uint64

func NewEntityID(index uint32, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsZero() bool       { return id == 0 }

func (id EntityID) String() string {
	return fmt.Sprintf("e%d.%d", id.Index(), id.Generation())
}

// EntityPool hands out entity ids. The simulation only creates entities
// while the world is being built, so ids are never recycled.
type EntityPool struct {
	generation uint32
	nextIndex  uint32
	alive      []EntityID
}

func NewEntityPool() *EntityPool {
	return &EntityPool{
		nextIndex: 1,
		alive:     make([]EntityID, 0, 16),
	}
}

func (p *EntityPool) Create() EntityID {
	id := NewEntityID(p.nextIndex, p.generation)
	p.nextIndex++
	p.alive = append(p.alive, id)
	return id
}

func (p *EntityPool) Alive(id EntityID) bool {
	idx := id.Index()
	return idx != 0 && idx < p.nextIndex && id.Generation() == p.generation
}

func (p *EntityPool) Len() int {
	return len(p.alive)
}
