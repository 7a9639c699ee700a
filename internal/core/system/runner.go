package system

import (
	"sort"
	"time"
)

// Runner executes systems in phase order each frame. Systems sharing a
// phase keep their registration order.
type Runner struct {
	systems []System
	sorted  bool
	frames  uint64
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 8),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Tick runs one full frame. Every system sees the completed writes of all
// systems in earlier phases.
func (r *Runner) Tick(dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(dt)
	}
	r.frames++
}

// TickPhase runs only the systems of one phase. Used by tests that need to
// stop the pipeline between stages.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() == phase {
			s.Update(dt)
		}
	}
}

// Frames returns the number of completed Tick calls.
func (r *Runner) Frames() uint64 { return r.frames }

// Phases lists the phase of every registered system in execution order.
func (r *Runner) Phases() []Phase {
	r.ensureSorted()
	out := make([]Phase, len(r.systems))
	for i, s := range r.systems {
		out[i] = s.Phase()
	}
	return out
}

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
