package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/core/event"
	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/world"
)

// ReactionSystem drains the frame's events and applies one mutation per
// event. Points land before any reset, and at most one reset is applied
// per frame (a goal serve beats a manual one). Phase 3 (React).
type ReactionSystem struct {
	world       *world.State
	events      event.Drainer[event.GameEvent]
	launchSpeed float64
	batch       []event.GameEvent
	log         *zap.Logger
}

func NewReactionSystem(ws *world.State, events event.Drainer[event.GameEvent], launchSpeed float64, log *zap.Logger) *ReactionSystem {
	return &ReactionSystem{
		world:       ws,
		events:      events,
		launchSpeed: launchSpeed,
		batch:       make([]event.GameEvent, 0, 8),
		log:         log,
	}
}

func (s *ReactionSystem) Phase() coresys.Phase { return coresys.PhaseReact }

func (s *ReactionSystem) Update(_ time.Duration) {
	s.batch = s.batch[:0]
	s.events.Drain(func(ev event.GameEvent) {
		s.batch = append(s.batch, ev)
	})
	if len(s.batch) == 0 {
		return
	}

	var reset *event.GameEvent
	for i := range s.batch {
		ev := &s.batch[i]
		switch ev.Kind {
		case event.KindGoalScored:
			points := s.world.Score.Increment(ev.By)
			s.log.Info("goal",
				zap.Stringer("by", ev.By),
				zap.Int("points", points),
				zap.Int("player1", s.world.Score.Get(component.Player1)),
				zap.Int("player2", s.world.Score.Get(component.Player2)))
		case event.KindResetRequested:
			if reset == nil || (reset.Cause == event.ResetManual && ev.Cause == event.ResetGoal) {
				reset = ev
			}
		}
	}

	for _, ev := range s.batch {
		if ev.Kind == event.KindPaddleHit {
			s.tint(ev.By)
		}
	}

	if reset != nil {
		ResetBall(s.world, reset.By, s.launchSpeed)
		s.log.Debug("ball reset",
			zap.Stringer("cause", reset.Cause),
			zap.Stringer("server", reset.By))
	}
}

func (s *ReactionSystem) tint(by component.Player) {
	if b, _ := s.world.Ball(); b != nil {
		b.Tint = by.Color()
	}
}

// ResetBall puts the ball at field center moving along server's serve
// direction at speed, whatever its previous state.
func ResetBall(ws *world.State, server component.Player, speed float64) {
	b, pos := ws.Ball()
	if b == nil || pos == nil {
		return
	}
	pos.Set(ws.Field.Center())
	b.Velocity = server.StartVelocity(speed)
}
