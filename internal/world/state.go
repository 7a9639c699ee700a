package world

import (
	"fmt"

	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/core/ecs"
	"github.com/l1jgo/pong/internal/physics"
	"github.com/l1jgo/pong/internal/vmath"
)

// Field is the playable rectangle. Y grows downward.
type Field struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (f Field) Width() float64  { return f.MaxX - f.MinX }
func (f Field) Height() float64 { return f.MaxY - f.MinY }

func (f Field) Center() vmath.Vec2 {
	return vmath.Vec2{X: (f.MinX + f.MaxX) / 2, Y: (f.MinY + f.MaxY) / 2}
}

// ClampPaddleY keeps a paddle of the given half height inside the field.
func (f Field) ClampPaddleY(y, halfH float64) float64 {
	return vmath.Clamp(y, f.MinY+halfH, f.MaxY-halfH)
}

// State holds every entity and component of one match plus the
// process-wide score. Owned by the game loop goroutine; stages take turns
// writing it in phase order, so there are no locks.
type State struct {
	ECS *ecs.World

	Positions *ecs.PtrComponentStore[component.Position]
	Bodies    *ecs.PtrComponentStore[component.Body]
	Paddles   *ecs.PtrComponentStore[component.Paddle]
	Balls     *ecs.PtrComponentStore[component.Ball]
	Borders   *ecs.PtrComponentStore[component.Border]

	Field  Field
	BallID ecs.EntityID
	Score  *Score

	// Overlaps is the physics output of the current frame.
	Overlaps *physics.OverlapSet
}

func NewState(field Field) *State {
	return &State{
		ECS:       ecs.NewWorld(),
		Positions: ecs.NewPtrComponentStore[component.Position](),
		Bodies:    ecs.NewPtrComponentStore[component.Body](),
		Paddles:   ecs.NewPtrComponentStore[component.Paddle](),
		Balls:     ecs.NewPtrComponentStore[component.Ball](),
		Borders:   ecs.NewPtrComponentStore[component.Border](),
		Field:     field,
		Score:     NewScore(),
		Overlaps:  physics.NewOverlapSet(),
	}
}

// Ball returns the single ball and its position.
func (s *State) Ball() (*component.Ball, *component.Position) {
	b, _ := s.Balls.Get(s.BallID)
	p, _ := s.Positions.Get(s.BallID)
	return b, p
}

// Box returns the collider box of a box-shaped entity at its position.
func (s *State) Box(id ecs.EntityID) (vmath.AABB, bool) {
	body, ok := s.Bodies.Get(id)
	if !ok || body.Shape != component.ShapeBox {
		return vmath.AABB{}, false
	}
	pos, ok := s.Positions.Get(id)
	if !ok {
		return vmath.AABB{}, false
	}
	return vmath.AABB{Center: pos.Vec(), HalfW: body.HalfW, HalfH: body.HalfH}, true
}

// CheckInvariants verifies the entity set the stages rely on: one ball,
// two solid walls and exactly one goal per player on that player's side.
func (s *State) CheckInvariants() error {
	if s.Balls.Len() != 1 {
		return fmt.Errorf("want exactly one ball, have %d", s.Balls.Len())
	}
	if _, ok := s.Balls.Get(s.BallID); !ok {
		return fmt.Errorf("ball id %s has no ball component", s.BallID)
	}

	solid := 0
	goals := map[component.Player]int{}
	center := s.Field.Center()
	var err error
	s.Borders.Each(func(id ecs.EntityID, b *component.Border) {
		if err != nil {
			return
		}
		body, ok := s.Bodies.Get(id)
		if !ok {
			err = fmt.Errorf("border %s has no body", id)
			return
		}
		if !b.IsGoal() {
			if body.Kind != component.BodyFixed || !body.Responds {
				err = fmt.Errorf("wall %s must be a fixed responding body", id)
			}
			solid++
			return
		}
		if body.Kind != component.BodySensor || body.Responds {
			err = fmt.Errorf("goal %s must be a non-responding sensor", id)
			return
		}
		pos, _ := s.Positions.Get(id)
		if (pos.X < center.X) != (b.Owner == component.Player1) {
			err = fmt.Errorf("goal %s of %s is not on its defending side", id, b.Owner)
			return
		}
		goals[b.Owner]++
	})
	if err != nil {
		return err
	}
	if solid != 2 {
		return fmt.Errorf("want two solid walls, have %d", solid)
	}
	for _, p := range component.Players {
		if goals[p] != 1 {
			return fmt.Errorf("want one goal for %s, have %d", p, goals[p])
		}
	}

	owners := map[component.Player]int{}
	s.Paddles.Each(func(_ ecs.EntityID, p *component.Paddle) { owners[p.Owner]++ })
	for _, p := range component.Players {
		if owners[p] != 1 {
			return fmt.Errorf("want one paddle for %s, have %d", p, owners[p])
		}
	}
	return nil
}
