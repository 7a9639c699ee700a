package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/core/event"
	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/input"
	"github.com/l1jgo/pong/internal/world"
)

// DetectionSystem turns the frame's overlaps and the reset key into game
// events. It only reads world state and only writes to the event emitter.
// Phase 2 (Detect).
type DetectionSystem struct {
	world    *world.State
	input    input.Device
	resetKey input.Key
	events   event.Emitter[event.GameEvent]
	log      *zap.Logger
}

func NewDetectionSystem(ws *world.State, dev input.Device, resetKey input.Key, events event.Emitter[event.GameEvent], log *zap.Logger) *DetectionSystem {
	return &DetectionSystem{
		world:    ws,
		input:    dev,
		resetKey: resetKey,
		events:   events,
		log:      log,
	}
}

func (s *DetectionSystem) Phase() coresys.Phase { return coresys.PhaseDetect }

func (s *DetectionSystem) Update(_ time.Duration) {
	for _, ev := range s.Detect() {
		s.log.Debug("event", zap.Stringer("event", ev))
		s.events.Emit(ev)
	}
}

// Detect computes this frame's events in a fixed order: goals, paddle
// hits, then the manual reset.
//
// A goal is attributed to the opponent of the goal's owner, so an own goal
// cannot be expressed. Overlaps that do not involve the ball are ignored.
func (s *DetectionSystem) Detect() []event.GameEvent {
	var goals, hits []event.GameEvent

	for _, other := range s.world.Overlaps.Partners(s.world.BallID) {
		if b, ok := s.world.Borders.Get(other); ok && b.IsGoal() {
			scorer := b.Owner.Opponent()
			goals = append(goals,
				event.GoalScored(scorer),
				event.ResetRequested(event.ResetGoal, scorer))
			continue
		}
		if p, ok := s.world.Paddles.Get(other); ok {
			hits = append(hits, event.PaddleHit(p.Owner))
		}
	}

	out := append(goals, hits...)
	if s.resetKey != input.KeyNone && s.input.JustPressed(s.resetKey) {
		out = append(out, event.ResetRequested(event.ResetManual, ManualServer))
	}
	return out
}

// ManualServer serves after a reset-key press.
const ManualServer = component.Player1
