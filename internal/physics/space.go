package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/l1jgo/pong/internal/core/ecs"
	"github.com/l1jgo/pong/internal/vmath"
)

const (
	collisionBall cp.CollisionType = iota + 1
	collisionSolid
	collisionSensor
)

type shapeInfo struct {
	id          ecs.EntityID
	restitution float64
}

type kinematicBody struct {
	body *cp.Body
	at   vmath.Vec2
	vel  vmath.Vec2
}

// Space adapts a chipmunk space to the court: one dynamic ball, static
// walls, sensor goals and kinematic paddles. There is no gravity and no
// friction. Every pair the ball touches during Step is recorded in the
// OverlapSet passed to it, sensor overlaps included.
type Space struct {
	space     *cp.Space
	limits    Limits
	ball      *cp.Body
	kinematic map[ecs.EntityID]*kinematicBody
	order     []ecs.EntityID
	shapes    map[*cp.Shape]shapeInfo

	// valid only inside Step
	out      *OverlapSet
	contacts int
}

func NewSpace(limits Limits) *Space {
	s := &Space{
		space:     cp.NewSpace(),
		limits:    limits,
		kinematic: make(map[ecs.EntityID]*kinematicBody, 2),
		shapes:    make(map[*cp.Shape]shapeInfo, 8),
	}
	s.space.SetGravity(cp.Vector{})
	s.installHandlers()
	return s
}

func (s *Space) installHandlers() {
	solid := s.space.NewCollisionHandler(collisionBall, collisionSolid)
	solid.BeginFunc = func(_ *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		s.contacts++
		return true
	}
	// Restitution combines by max.
	solid.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		a, b := s.record(arb)
		arb.SetRestitution(math.Max(a.restitution, b.restitution))
		return true
	}

	sensor := s.space.NewCollisionHandler(collisionBall, collisionSensor)
	sensor.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		s.record(arb)
		return true
	}
}

func (s *Space) record(arb *cp.Arbiter) (shapeInfo, shapeInfo) {
	sa, sb := arb.Shapes()
	a, b := s.shapes[sa], s.shapes[sb]
	if s.out != nil {
		s.out.Add(a.id, b.id)
	}
	return a, b
}

// AddBall adds the dynamic ball. It has unit mass and never rotates.
func (s *Space) AddBall(id ecs.EntityID, at vmath.Vec2, radius, restitution float64) {
	body := s.space.AddBody(cp.NewBody(1, math.Inf(1)))
	body.SetPosition(toCP(at))
	shape := s.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	s.configure(shape, collisionBall, id, restitution)
	s.ball = body
}

// AddStatic adds a fixed box. A sensor box reports overlap and never
// pushes the ball.
func (s *Space) AddStatic(id ecs.EntityID, box vmath.AABB, restitution float64, sensor bool) {
	shape := s.space.AddShape(cp.NewBox2(s.space.StaticBody, toBB(box), 0))
	kind := collisionSolid
	if sensor {
		shape.SetSensor(true)
		kind = collisionSensor
	}
	s.configure(shape, kind, id, restitution)
}

// AddKinematic adds a box moved only by MoveKinematic.
func (s *Space) AddKinematic(id ecs.EntityID, box vmath.AABB, restitution float64) {
	body := s.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(toCP(box.Center))
	shape := s.space.AddShape(cp.NewBox(body, box.HalfW*2, box.HalfH*2, 0))
	s.configure(shape, collisionSolid, id, restitution)
	s.kinematic[id] = &kinematicBody{body: body, at: box.Center}
	s.order = append(s.order, id)
}

func (s *Space) configure(shape *cp.Shape, kind cp.CollisionType, id ecs.EntityID, restitution float64) {
	shape.SetCollisionType(kind)
	shape.SetElasticity(restitution)
	shape.SetFriction(0)
	s.shapes[shape] = shapeInfo{id: id, restitution: restitution}
}

// MoveKinematic sets where a kinematic body sits during the following
// steps and the surface velocity the ball sees when it hits it.
func (s *Space) MoveKinematic(id ecs.EntityID, at, vel vmath.Vec2) bool {
	k, ok := s.kinematic[id]
	if !ok {
		return false
	}
	k.at, k.vel = at, vel
	return true
}

// SetBall teleports the ball.
func (s *Space) SetBall(at, vel vmath.Vec2) {
	s.ball.SetPosition(toCP(at))
	s.ball.SetVelocity(vel.X, vel.Y)
}

// Ball returns the ball's position and velocity.
func (s *Space) Ball() (at, vel vmath.Vec2) {
	return fromCP(s.ball.Position()), fromCP(s.ball.Velocity())
}

// Step advances the space by dt seconds and returns how many new solid
// contacts the ball made. The ball speed is clamped before and after.
func (s *Space) Step(dt float64, out *OverlapSet) int {
	s.out, s.contacts = out, 0
	defer func() { s.out = nil }()

	// Chipmunk integrates kinematic bodies by their velocity before it
	// looks for contacts, so wind each one back a step to land on its spot.
	for _, id := range s.order {
		k := s.kinematic[id]
		k.body.SetVelocity(k.vel.X, k.vel.Y)
		k.body.SetPosition(toCP(k.at.Sub(k.vel.Scale(dt))))
	}

	s.clampBall()
	s.space.Step(dt)
	s.clampBall()
	return s.contacts
}

func (s *Space) clampBall() {
	v := s.limits.ClampSpeed(fromCP(s.ball.Velocity()))
	s.ball.SetVelocity(v.X, v.Y)
}

func toCP(v vmath.Vec2) cp.Vector   { return cp.Vector{X: v.X, Y: v.Y} }
func fromCP(v cp.Vector) vmath.Vec2 { return vmath.Vec2{X: v.X, Y: v.Y} }

func toBB(b vmath.AABB) cp.BB {
	lo, hi := b.Min(), b.Max()
	return cp.BB{L: lo.X, B: lo.Y, R: hi.X, T: hi.Y}
}
