package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput   Phase = iota // 0: input -> paddle motion
	PhasePhysics              // 1: integrate ball, collect overlaps
	PhaseDetect               // 2: overlaps -> game events (read only)
	PhaseReact                // 3: drain events, mutate score/ball
	PhaseCleanup              // 4: drop leftovers, clear input edges
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePhysics:
		return "physics"
	case PhaseDetect:
		return "detect"
	case PhaseReact:
		return "react"
	case PhaseCleanup:
		return "cleanup"
	default:
		return "unknown"
	}
}

// System is the interface every ECS system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
