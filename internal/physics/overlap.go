package physics

import (
	"sort"

	"github.com/l1jgo/pong/internal/core/ecs"
)

// Pair is an unordered entity pair stored with A < B.
type Pair struct {
	A ecs.EntityID
	B ecs.EntityID
}

func MakePair(a, b ecs.EntityID) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Other returns the partner of id in the pair, or zero if id is not in it.
func (p Pair) Other(id ecs.EntityID) ecs.EntityID {
	switch id {
	case p.A:
		return p.B
	case p.B:
		return p.A
	}
	return 0
}

// OverlapSet is the set of entity pairs that touched during a frame,
// including sensor overlaps that had no physical effect.
type OverlapSet struct {
	pairs map[Pair]struct{}
}

func NewOverlapSet() *OverlapSet {
	return &OverlapSet{pairs: make(map[Pair]struct{}, 8)}
}

func (o *OverlapSet) Add(a, b ecs.EntityID) {
	o.pairs[MakePair(a, b)] = struct{}{}
}

func (o *OverlapSet) Has(a, b ecs.EntityID) bool {
	_, ok := o.pairs[MakePair(a, b)]
	return ok
}

func (o *OverlapSet) Len() int { return len(o.pairs) }

func (o *OverlapSet) Clear() { clear(o.pairs) }

// Pairs returns every pair sorted by (A, B).
func (o *OverlapSet) Pairs() []Pair {
	out := make([]Pair, 0, len(o.pairs))
	for p := range o.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// Partners returns the entities overlapping id, in ascending order.
func (o *OverlapSet) Partners(id ecs.EntityID) []ecs.EntityID {
	var out []ecs.EntityID
	for _, p := range o.Pairs() {
		if other := p.Other(id); other != 0 {
			out = append(out, other)
		}
	}
	return out
}
