package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/core/ecs"
	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/physics"
	"github.com/l1jgo/pong/internal/world"
)

// PhysicsSystem mirrors the world into a physics space, advances it and
// publishes the frame's overlap set. It runs zero or more fixed sub-steps
// per frame from an accumulator capped at maxSubsteps; leftover time past
// the cap is dropped instead of caught up. Phase 1 (Physics).
type PhysicsSystem struct {
	world       *world.State
	space       *physics.Space
	step        time.Duration
	maxSubsteps int
	acc         time.Duration
	log         *zap.Logger
}

func NewPhysicsSystem(ws *world.State, limits physics.Limits, step time.Duration, maxSubsteps int, log *zap.Logger) *PhysicsSystem {
	if maxSubsteps < 1 {
		maxSubsteps = 1
	}
	return &PhysicsSystem{
		world:       ws,
		space:       newSpace(ws, limits),
		step:        step,
		maxSubsteps: maxSubsteps,
		log:         log,
	}
}

// newSpace adds one physics body per world body. The world is sealed, so
// the set never changes afterwards.
func newSpace(ws *world.State, limits physics.Limits) *physics.Space {
	space := physics.NewSpace(limits)
	ws.Bodies.Each(func(id ecs.EntityID, body *component.Body) {
		pos, ok := ws.Positions.Get(id)
		if !ok {
			return
		}
		if body.Kind == component.BodyDynamic {
			space.AddBall(id, pos.Vec(), body.Radius, body.Restitution)
			return
		}
		box, ok := ws.Box(id)
		if !ok {
			return
		}
		switch body.Kind {
		case component.BodyKinematic:
			space.AddKinematic(id, box, body.Restitution)
		case component.BodyFixed, component.BodySensor:
			space.AddStatic(id, box, body.Restitution, !body.Responds)
		}
	})
	return space
}

func (s *PhysicsSystem) Phase() coresys.Phase { return coresys.PhasePhysics }

func (s *PhysicsSystem) Update(dt time.Duration) {
	s.world.Overlaps.Clear()

	steps := s.plan(dt)
	if steps == 0 {
		return
	}

	b, pos := s.world.Ball()
	if b == nil || pos == nil {
		return
	}
	s.space.SetBall(pos.Vec(), b.Velocity)
	ecs.Each2(s.world.Paddles, s.world.Positions, func(id ecs.EntityID, p *component.Paddle, at *component.Position) {
		s.space.MoveKinematic(id, at.Vec(), p.Velocity)
	})

	contacts := 0
	for i := 0; i < steps; i++ {
		contacts += s.space.Step(s.step.Seconds(), s.world.Overlaps)
	}

	at, vel := s.space.Ball()
	pos.Set(at)
	b.Velocity = vel
	if contacts > 0 {
		s.log.Debug("ball bounced",
			zap.Int("contacts", contacts),
			zap.Float64("speed", vel.Len()))
	}
}

// plan returns how many sub-steps to run this frame.
func (s *PhysicsSystem) plan(dt time.Duration) int {
	s.acc += dt
	n := int(s.acc / s.step)
	if n > s.maxSubsteps {
		s.log.Debug("physics behind, dropping time",
			zap.Duration("dropped", s.acc-time.Duration(s.maxSubsteps)*s.step))
		s.acc = 0
		return s.maxSubsteps
	}
	s.acc -= time.Duration(n) * s.step
	return n
}
