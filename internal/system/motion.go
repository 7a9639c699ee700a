package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/core/ecs"
	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/input"
	"github.com/l1jgo/pong/internal/vmath"
	"github.com/l1jgo/pong/internal/world"
)

// PaddleMotionSystem moves paddles from held keys. Paddles are kinematic:
// their position is set directly and clamped to the field, no forces.
// Phase 0 (Input).
type PaddleMotionSystem struct {
	world  *world.State
	input  input.Device
	pinned map[ecs.EntityID]bool
	log    *zap.Logger
}

func NewPaddleMotionSystem(ws *world.State, dev input.Device, log *zap.Logger) *PaddleMotionSystem {
	return &PaddleMotionSystem{
		world:  ws,
		input:  dev,
		pinned: make(map[ecs.EntityID]bool, 2),
		log:    log,
	}
}

func (s *PaddleMotionSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *PaddleMotionSystem) Update(dt time.Duration) {
	sec := dt.Seconds()
	ecs.Each3(s.world.Paddles, s.world.Positions, s.world.Bodies,
		func(id ecs.EntityID, p *component.Paddle, pos *component.Position, body *component.Body) {
			dir := s.direction(p)
			want := pos.Y + dir*p.Speed*sec
			y := s.world.Field.ClampPaddleY(want, body.HalfH)
			s.notePinned(id, p.Owner, y != want)
			p.Velocity = vmath.Vec2{}
			if sec > 0 {
				p.Velocity.Y = (y - pos.Y) / sec
			}
			pos.Y = y
		})
}

// direction is -1 for up, +1 for down, 0 for none or both.
func (s *PaddleMotionSystem) direction(p *component.Paddle) float64 {
	dir := 0.0
	if s.input.Held(p.Up) {
		dir--
	}
	if s.input.Held(p.Down) {
		dir++
	}
	return dir
}

// notePinned logs when a paddle starts or stops pushing against a field
// edge.
func (s *PaddleMotionSystem) notePinned(id ecs.EntityID, owner component.Player, pinned bool) {
	if s.pinned[id] == pinned {
		return
	}
	s.pinned[id] = pinned
	if pinned {
		s.log.Debug("paddle at field edge", zap.Stringer("owner", owner))
	}
}
