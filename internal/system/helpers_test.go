package system

import (
	"testing"

	"go.uber.org/zap"

	"github.com/l1jgo/pong/internal/component"
	"github.com/l1jgo/pong/internal/config"
	"github.com/l1jgo/pong/internal/core/ecs"
	"github.com/l1jgo/pong/internal/data"
	"github.com/l1jgo/pong/internal/world"
)

const frame = 16666666 // time.Second / 60, in ns

func newTestWorld(t *testing.T) (*world.State, *config.Config) {
	t.Helper()
	cfg := config.Defaults()
	ws, err := world.Build(data.DefaultCourt(), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ws, cfg
}

func goalOf(ws *world.State, owner component.Player) ecs.EntityID {
	var id ecs.EntityID
	ws.Borders.Each(func(e ecs.EntityID, b *component.Border) {
		if b.IsGoal() && b.Owner == owner {
			id = e
		}
	})
	return id
}

func paddleOf(ws *world.State, owner component.Player) ecs.EntityID {
	var id ecs.EntityID
	ws.Paddles.Each(func(e ecs.EntityID, p *component.Paddle) {
		if p.Owner == owner {
			id = e
		}
	})
	return id
}

func nopLog() *zap.Logger { return zap.NewNop() }
