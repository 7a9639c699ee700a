package component

import "github.com/l1jgo/pong/internal/vmath"

// Player identifies one of the two participants. It doubles as the owner
// tag on paddles and goals, the score key, the tint key and the serve
// direction key.
type Player uint8

const (
	Player1 Player = iota // left side, defends the left goal
	Player2               // right side, defends the right goal
)

// Players lists both participants in a fixed order.
var Players = [2]Player{Player1, Player2}

func (p Player) String() string {
	if p == Player1 {
		return "player1"
	}
	return "player2"
}

// Opponent returns the other participant.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// ServeDirection is the unit direction of p's serve: toward the opponent's
// side.
func (p Player) ServeDirection() vmath.Vec2 {
	if p == Player1 {
		return vmath.Vec2{X: 1}
	}
	return vmath.Vec2{X: -1}
}

// StartVelocity is p's canonical launch velocity at the given speed.
func (p Player) StartVelocity(speed float64) vmath.Vec2 {
	return p.ServeDirection().Scale(speed)
}

// Color is the tint associated with p.
func (p Player) Color() Color {
	if p == Player1 {
		return Red
	}
	return Green
}
