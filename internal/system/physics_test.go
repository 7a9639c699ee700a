package system

import (
	"math"
	"testing"
	"time"

	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/physics"
	"github.com/l1jgo/pong/internal/vmath"
)

func newTestPhysics(step time.Duration, maxSubsteps int) *PhysicsSystem {
	return &PhysicsSystem{step: step, maxSubsteps: maxSubsteps, log: nopLog()}
}

func TestPhysicsPlan(t *testing.T) {
	step := time.Second / 120

	s := newTestPhysics(step, 8)
	if n := s.plan(frame); n != 2 {
		t.Errorf("one frame ran %d sub-steps, want 2", n)
	}

	// Half a step carries over into the next frame.
	s = newTestPhysics(step, 8)
	if n := s.plan(step / 2); n != 0 {
		t.Errorf("half step ran %d sub-steps", n)
	}
	if n := s.plan(step / 2); n != 1 {
		t.Errorf("accumulated step ran %d sub-steps, want 1", n)
	}

	// A long stall is capped and the excess is dropped.
	s = newTestPhysics(step, 8)
	if n := s.plan(time.Second); n != 8 {
		t.Errorf("stall ran %d sub-steps, want 8", n)
	}
	if s.acc != 0 {
		t.Errorf("accumulator kept %v after the cap", s.acc)
	}
}

func newWorldPhysics(t *testing.T) (*PhysicsSystem, func() (vmath.Vec2, vmath.Vec2)) {
	t.Helper()
	ws, cfg := newTestWorld(t)
	limits := physics.Limits{MinSpeed: cfg.Physics.MinSpeed, MaxSpeed: cfg.Physics.MaxSpeed}
	s := NewPhysicsSystem(ws, limits, cfg.Physics.Step, cfg.Physics.MaxSubsteps, nopLog())
	ball := func() (vmath.Vec2, vmath.Vec2) {
		b, pos := ws.Ball()
		return pos.Vec(), b.Velocity
	}
	return s, ball
}

func TestPhysicsMovesBallAndClearsOverlaps(t *testing.T) {
	s, ball := newWorldPhysics(t)
	ws := s.world

	ws.Overlaps.Add(1, 2)
	s.Update(frame)

	if ws.Overlaps.Len() != 0 {
		t.Errorf("stale overlaps survived: %v", ws.Overlaps.Pairs())
	}
	at, _ := ball()
	want := 640 + 100*2*s.step.Seconds()
	if math.Abs(at.X-want) > 1e-6 || math.Abs(at.Y-360) > 1e-6 {
		t.Errorf("ball at %v, want x=%.4f", at, want)
	}
}

func TestPhysicsPicksUpTeleportedBall(t *testing.T) {
	s, ball := newWorldPhysics(t)
	ws := s.world

	b, pos := ws.Ball()
	pos.Set(vmath.V(640, 30))
	b.Velocity = vmath.V(0, -300)
	s.Update(frame)

	wall := false
	for _, id := range ws.Overlaps.Partners(ws.BallID) {
		if border, ok := ws.Borders.Get(id); ok && !border.IsGoal() {
			wall = true
		}
	}
	if !wall {
		t.Fatalf("top wall contact missing: %v", ws.Overlaps.Pairs())
	}
	if _, vel := ball(); vel.Y <= 0 {
		t.Errorf("ball not reflected off the top wall: %v", vel)
	}
}

func TestPhysicsUsesPaddlePosition(t *testing.T) {
	s, ball := newWorldPhysics(t)
	ws := s.world

	// Paddle moved up out of the ball's path by the motion stage.
	id := paddleOf(ws, component.Player1)
	pos, _ := ws.Positions.Get(id)
	pos.Y = 100
	b, bpos := ws.Ball()
	bpos.Set(vmath.V(52, 360))
	b.Velocity = vmath.V(-300, 0)

	s.Update(frame)
	if ws.Overlaps.Has(ws.BallID, id) {
		t.Error("ball hit the paddle at its build position")
	}
	if _, vel := ball(); vel.X >= 0 {
		t.Errorf("ball bounced off nothing: %v", vel)
	}
}
