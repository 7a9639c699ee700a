package component

import "github.com/l1jgo/pong/internal/vmath"

// Position is the center of an entity in field units. Y grows downward.
type Position struct {
	X float64
	Y float64
}

func (p Position) Vec() vmath.Vec2 { return vmath.Vec2{X: p.X, Y: p.Y} }

func (p *Position) Set(v vmath.Vec2) {
	p.X, p.Y = v.X, v.Y
}
