package component

import "github.com/l1jgo/pong/internal/vmath"

// Ball is the single dynamic body.
type Ball struct {
	Velocity    vmath.Vec2
	Restitution float64
	Radius      float64
	Tint        Color
}
