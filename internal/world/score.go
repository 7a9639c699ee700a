package world

import "github.com/l1jgo/pong/internal/component"

// Score is the per-match point table. Only the reaction stage increments
// it; everything else reads it or watches it.
type Score struct {
	points   [2]int
	watchers []func(component.Player, int)
}

func NewScore() *Score {
	return &Score{}
}

func (s *Score) Get(p component.Player) int { return s.points[p] }

// Snapshot returns the points indexed by player.
func (s *Score) Snapshot() [2]int { return s.points }

// Watch registers fn to be called after every change with the player and
// their new total.
func (s *Score) Watch(fn func(component.Player, int)) {
	s.watchers = append(s.watchers, fn)
}

// Increment adds one point to p and notifies watchers.
func (s *Score) Increment(p component.Player) int {
	s.points[p]++
	n := s.points[p]
	for _, fn := range s.watchers {
		fn(p, n)
	}
	return n
}
