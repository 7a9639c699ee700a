package component

import (
	"github.com/l1jgo/pong/internal/input"
	"github.com/l1jgo/pong/internal/vmath"
)

// Paddle is a kinematic, player-controlled bat.
type Paddle struct {
	Owner Player
	Up    input.Key
	Down  input.Key
	Speed float64 // field units per second

	// Velocity is the motion applied during the current frame. The
	// physics stage reads it to reflect the ball relative to the paddle.
	Velocity vmath.Vec2
}
