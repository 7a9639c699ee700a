package world

import (
	"errors"
	"testing"
	"time"

	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/config"
	"github.com/l1jgo/pong/internal/core/ecs"
	"github.com/l1jgo/pong/internal/data"
	"github.com/l1jgo/pong/internal/vmath"
)

func buildDefault(t *testing.T) *State {
	t.Helper()
	ws, err := Build(data.DefaultCourt(), config.Defaults())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ws
}

func TestBuildEntitySet(t *testing.T) {
	ws := buildDefault(t)

	if n := ws.ECS.EntityCount(); n != 7 {
		t.Errorf("entity count = %d, want 7", n)
	}
	if !ws.ECS.Sealed() {
		t.Error("world not sealed after build")
	}
	if _, err := ws.ECS.CreateEntity(); !errors.Is(err, ecs.ErrSealed) {
		t.Errorf("CreateEntity after build: %v, want ErrSealed", err)
	}

	snap := ws.Snapshot()
	want := map[component.Player]vmath.Vec2{
		component.Player1: vmath.V(20, 360),
		component.Player2: vmath.V(1260, 360),
	}
	for p, at := range want {
		v, ok := snap.Paddle(p)
		if !ok {
			t.Fatalf("no paddle for %s", p)
		}
		if !v.Box.Center.Approx(at) {
			t.Errorf("%s paddle at %v, want %v", p, v.Box.Center, at)
		}
		if v.Box.HalfW != 5 || v.Box.HalfH != 75 {
			t.Errorf("%s paddle half extents = %v,%v", p, v.Box.HalfW, v.Box.HalfH)
		}
	}

	if !snap.Ball.Position.Approx(vmath.V(640, 360)) {
		t.Errorf("ball at %v", snap.Ball.Position)
	}
	if !snap.Ball.Ball.Velocity.Approx(vmath.V(100, 0)) {
		t.Errorf("ball velocity = %v, want Player1 serve", snap.Ball.Ball.Velocity)
	}
	if snap.Ball.Ball.Tint != component.White {
		t.Errorf("ball tint = %v", snap.Ball.Ball.Tint)
	}
	if snap.Score != [2]int{} {
		t.Errorf("score = %v", snap.Score)
	}
}

func TestBuildGoalsOnDefendingSide(t *testing.T) {
	ws := buildDefault(t)
	goals := 0
	for _, b := range ws.Snapshot().Borders {
		if !b.Border.IsGoal() {
			if b.Body.Kind != component.BodyFixed || !b.Body.Responds {
				t.Errorf("wall %s: %+v", b.ID, b.Body)
			}
			continue
		}
		goals++
		if b.Body.Kind != component.BodySensor || b.Body.Responds {
			t.Errorf("goal %s: %+v", b.ID, b.Body)
		}
		left := b.Box.Center.X < ws.Field.Center().X
		if left != (b.Border.Owner == component.Player1) {
			t.Errorf("goal of %s at x=%v", b.Border.Owner, b.Box.Center.X)
		}
	}
	if goals != 2 {
		t.Errorf("goals = %d", goals)
	}
}

func TestBuildRejectsBadConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Controls.Reset = cfg.Controls.Player1Up
	if _, err := Build(data.DefaultCourt(), cfg); !errors.Is(err, config.ErrDuplicateBinding) {
		t.Errorf("duplicate binding: %v", err)
	}

	court := data.DefaultCourt()
	court.BallRadius = 0
	if _, err := Build(court, config.Defaults()); !errors.Is(err, data.ErrInvalidCourt) {
		t.Errorf("bad court: %v", err)
	}
}

func TestBuildRejectsLongStep(t *testing.T) {
	cfg := config.Defaults()
	cfg.Physics.Step = 50 * time.Millisecond
	if _, err := Build(data.DefaultCourt(), cfg); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("step crossing the paddle band: %v", err)
	}
}

func TestCheckInvariantsCatchesMissingGoal(t *testing.T) {
	ws := buildDefault(t)
	var goal ecs.EntityID
	ws.Borders.Each(func(id ecs.EntityID, b *component.Border) {
		if b.IsGoal() && b.Owner == component.Player2 {
			goal = id
		}
	})
	b, _ := ws.Borders.Get(goal)
	b.Owner = component.Player1
	if err := ws.CheckInvariants(); err == nil {
		t.Fatal("misplaced goal not reported")
	}
}

func TestScoreWatch(t *testing.T) {
	s := NewScore()
	var got []int
	s.Watch(func(p component.Player, n int) {
		if p != component.Player2 {
			t.Errorf("watcher got %s", p)
		}
		got = append(got, n)
	})
	s.Increment(component.Player2)
	s.Increment(component.Player2)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("watcher saw %v", got)
	}
	if s.Snapshot() != [2]int{0, 2} {
		t.Errorf("snapshot = %v", s.Snapshot())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	ws := buildDefault(t)
	snap := ws.Snapshot()
	ball, pos := ws.Ball()
	ball.Velocity = vmath.V(-1, -1)
	pos.X = 1
	if snap.Ball.Position.X != 640 || !snap.Ball.Ball.Velocity.Approx(vmath.V(100, 0)) {
		t.Error("snapshot aliases live state")
	}
}
