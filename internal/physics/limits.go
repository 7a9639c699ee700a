package physics

import "github.com/l1jgo/pong/internal/vmath"

// Limits bound the ball speed. A stalled or runaway ball is rescaled, never
// reported as an error.
type Limits struct {
	MinSpeed float64
	MaxSpeed float64
}

// ClampSpeed rescales v into [MinSpeed, MaxSpeed]. A zero vector is
// launched along +x at MinSpeed.
func (l Limits) ClampSpeed(v vmath.Vec2) vmath.Vec2 {
	speed := v.Len()
	switch {
	case speed == 0:
		return vmath.Vec2{X: l.MinSpeed}
	case speed < l.MinSpeed:
		return v.Scale(l.MinSpeed / speed)
	case l.MaxSpeed > 0 && speed > l.MaxSpeed:
		return v.Scale(l.MaxSpeed / speed)
	}
	return v
}
