package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/core/event"
	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/input"
)

// CleanupSystem closes the frame: events nobody drained are dropped so
// they cannot leak into the next frame, and input press edges are cleared
// once the frame has seen them. Phase 4 (Cleanup).
type CleanupSystem struct {
	events *event.Queue[event.GameEvent]
	latch  input.Latch
	log    *zap.Logger
}

// NewCleanupSystem accepts a nil latch for devices without edge state.
func NewCleanupSystem(events *event.Queue[event.GameEvent], latch input.Latch, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{events: events, latch: latch, log: log}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	if n := s.events.Discard(); n > 0 {
		s.log.Warn("dropped undrained events", zap.Int("count", n))
	}
	if s.latch != nil {
		s.latch.EndFrame()
	}
}
