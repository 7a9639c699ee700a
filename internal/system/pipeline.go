package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/config"
	"github.com/l1jgo/pong/internal/core/event"
	coresys "github.com/l1jgo/pong/internal/core/system"
	"github.com/l1jgo/pong/internal/input"
	"github.com/l1jgo/pong/internal/physics"
	"github.com/l1jgo/pong/internal/world"
)

// NewPipeline registers the frame stages in order: paddle motion, physics,
// detection, reaction, cleanup. If dev also implements input.Latch its
// press edges are cleared at frame end.
func NewPipeline(ws *world.State, cfg *config.Config, dev input.Device, log *zap.Logger) (*coresys.Runner, error) {
	keys, err := cfg.Controls.Bindings()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	queue := event.NewQueue[event.GameEvent](8)
	limits := physics.Limits{
		MinSpeed: cfg.Physics.MinSpeed,
		MaxSpeed: cfg.Physics.MaxSpeed,
	}
	latch, _ := dev.(input.Latch)

	runner := coresys.NewRunner()
	runner.Register(NewPaddleMotionSystem(ws, dev, log))
	runner.Register(NewPhysicsSystem(ws, limits, cfg.Physics.Step, cfg.Physics.MaxSubsteps, log))
	runner.Register(NewDetectionSystem(ws, dev, keys.Reset, queue, log))
	runner.Register(NewReactionSystem(ws, queue, cfg.Ball.LaunchSpeed, log))
	runner.Register(NewCleanupSystem(queue, latch, log))
	return runner, nil
}
