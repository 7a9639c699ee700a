package world

import (
	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/core/ecs"
	"github.com/l1jgo/pong/internal/physics"
	"github.com/l1jgo/pong/internal/vmath"
)

// BallView is a read-only copy of the ball.
type BallView struct {
	ID       ecs.EntityID
	Position vmath.Vec2
	Ball     component.Ball
}

// PaddleView is a read-only copy of one paddle.
type PaddleView struct {
	ID     ecs.EntityID
	Box    vmath.AABB
	Paddle component.Paddle
}

// BorderView is a read-only copy of one wall or goal.
type BorderView struct {
	ID     ecs.EntityID
	Box    vmath.AABB
	Border component.Border
	Body   component.Body
}

// Snapshot is a deep copy of everything outside readers (renderer, tests)
// look at. Take it between frames, never inside a stage.
type Snapshot struct {
	Field    Field
	Ball     BallView
	Paddles  []PaddleView
	Borders  []BorderView
	Score    [2]int
	Overlaps []physics.Pair
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Field:    s.Field,
		Score:    s.Score.Snapshot(),
		Overlaps: s.Overlaps.Pairs(),
	}
	if b, p := s.Ball(); b != nil && p != nil {
		snap.Ball = BallView{ID: s.BallID, Position: p.Vec(), Ball: *b}
	}
	s.Paddles.Each(func(id ecs.EntityID, p *component.Paddle) {
		box, _ := s.Box(id)
		snap.Paddles = append(snap.Paddles, PaddleView{ID: id, Box: box, Paddle: *p})
	})
	s.Borders.Each(func(id ecs.EntityID, b *component.Border) {
		box, _ := s.Box(id)
		body, _ := s.Bodies.Get(id)
		snap.Borders = append(snap.Borders, BorderView{ID: id, Box: box, Border: *b, Body: *body})
	})
	return snap
}

// Paddle returns the view of p's paddle.
func (s Snapshot) Paddle(p component.Player) (PaddleView, bool) {
	for _, v := range s.Paddles {
		if v.Paddle.Owner == p {
			return v, true
		}
	}
	return PaddleView{}, false
}
