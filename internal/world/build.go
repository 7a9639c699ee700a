package world

import (
	"fmt"
	"math"

	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/config"
	"github.com/l1jgo/pong/internal/core/ecs"
	"github.com/l1jgo/pong/internal/data"
	"github.com/l1jgo/pong/internal/input"
	"github.com/l1jgo/pong/internal/vmath"
)

// Build creates the full entity set of a match: two paddles at their
// x-offsets and vertical center, the ball at field center serving from
// Player1, two solid walls and one goal sensor per player. The world is
// sealed afterwards. Any error here is a configuration error.
func Build(court *data.Court, cfg *config.Config) (*State, error) {
	if err := court.Validate(); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	keys, err := cfg.Controls.Bindings()
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	if err := checkStep(court, cfg); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}

	s := NewState(Field{MaxX: court.Width, MaxY: court.Height})
	center := s.Field.Center()
	b := builder{s: s}

	// Top and bottom walls sit on the field edge.
	wallHalfW := court.Width/2 + court.GoalThickness
	wallHalfH := court.WallThickness / 2
	for _, y := range []float64{s.Field.MinY, s.Field.MaxY} {
		b.spawn(vmath.V(center.X, y),
			component.BoxBody(component.BodyFixed, wallHalfW, wallHalfH, court.WallRestitution),
			func(id ecs.EntityID) { s.Borders.Set(id, &component.Border{Kind: component.BorderSolid}) })
	}

	// Each goal sits on its owner's side and reaches past the walls.
	goalHalfW := court.GoalThickness / 2
	goalHalfH := court.Height/2 + court.WallThickness
	goals := []struct {
		owner component.Player
		x     float64
	}{
		{component.Player1, s.Field.MinX},
		{component.Player2, s.Field.MaxX},
	}
	for _, g := range goals {
		owner := g.owner
		b.spawn(vmath.V(g.x, center.Y),
			component.BoxBody(component.BodySensor, goalHalfW, goalHalfH, 0),
			func(id ecs.EntityID) { s.Borders.Set(id, &component.Border{Kind: component.BorderGoal, Owner: owner}) })
	}

	paddles := []struct {
		owner    component.Player
		x        float64
		up, down input.Key
	}{
		{component.Player1, s.Field.MinX + court.PaddleOffset, keys.Player1Up, keys.Player1Down},
		{component.Player2, s.Field.MaxX - court.PaddleOffset, keys.Player2Up, keys.Player2Down},
	}
	for _, p := range paddles {
		paddle := &component.Paddle{Owner: p.owner, Up: p.up, Down: p.down, Speed: cfg.Paddle.Speed}
		b.spawn(vmath.V(p.x, center.Y),
			component.BoxBody(component.BodyKinematic, court.PaddleWidth/2, court.PaddleHeight/2, court.PaddleRestitution),
			func(id ecs.EntityID) { s.Paddles.Set(id, paddle) })
	}

	ball := &component.Ball{
		Velocity:    component.Player1.StartVelocity(cfg.Ball.LaunchSpeed),
		Restitution: court.BallRestitution,
		Radius:      court.BallRadius,
		Tint:        component.White,
	}
	s.BallID = b.spawn(center,
		component.CircleBody(court.BallRadius, court.BallRestitution),
		func(id ecs.EntityID) { s.Balls.Set(id, ball) })

	if b.err != nil {
		return nil, fmt.Errorf("build world: %w", b.err)
	}
	if err := s.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	s.ECS.Seal()
	return s, nil
}

// checkStep rejects a physics step long enough for the ball, at max speed,
// to cross the thinnest wall, goal or paddle in one sub-step.
func checkStep(court *data.Court, cfg *config.Config) error {
	thinnest := math.Min(court.PaddleWidth, math.Min(court.WallThickness, court.GoalThickness))
	band := thinnest/2 + court.BallRadius
	travel := cfg.Physics.MaxSpeed * cfg.Physics.Step.Seconds()
	if travel >= band {
		return fmt.Errorf("%w: physics.step moves the ball %.1f units at max speed, contact band is %.1f",
			config.ErrInvalid, travel, band)
	}
	return nil
}

type builder struct {
	s   *State
	err error
}

func (b *builder) spawn(at vmath.Vec2, body component.Body, attach func(ecs.EntityID)) ecs.EntityID {
	if b.err != nil {
		return 0
	}
	id, err := b.s.ECS.CreateEntity()
	if err != nil {
		b.err = err
		return 0
	}
	b.s.Positions.Set(id, &component.Position{X: at.X, Y: at.Y})
	b.s.Bodies.Set(id, &body)
	attach(id)
	return id
}
