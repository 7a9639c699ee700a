package event

import (
	"fmt"

	"github.com/l1jgo/pong/internal/component"
)

// Kind tags a GameEvent variant.
type Kind uint8

const (
	KindGoalScored Kind = iota
	KindPaddleHit
	KindResetRequested
)

func (k Kind) String() string {
	switch k {
	case KindGoalScored:
		return "goal_scored"
	case KindPaddleHit:
		return "paddle_hit"
	case KindResetRequested:
		return "reset_requested"
	default:
		return "unknown"
	}
}

// ResetCause says what asked for a ball reset.
type ResetCause uint8

const (
	ResetGoal ResetCause = iota
	ResetManual
)

func (c ResetCause) String() string {
	if c == ResetManual {
		return "manual"
	}
	return "goal"
}

// GameEvent is a same-frame message from Detection to Reaction.
//
//	GoalScored:     By is the player credited with the point
//	PaddleHit:      By owns the paddle the ball touched
//	ResetRequested: By serves the relaunched ball, Cause says why
type GameEvent struct {
	Kind  Kind
	By    component.Player
	Cause ResetCause
}

func GoalScored(by component.Player) GameEvent {
	return GameEvent{Kind: KindGoalScored, By: by}
}

func PaddleHit(by component.Player) GameEvent {
	return GameEvent{Kind: KindPaddleHit, By: by}
}

func ResetRequested(cause ResetCause, server component.Player) GameEvent {
	return GameEvent{Kind: KindResetRequested, By: server, Cause: cause}
}

func (e GameEvent) String() string {
	if e.Kind == KindResetRequested {
		return fmt.Sprintf("%s{cause: %s, server: %s}", e.Kind, e.Cause, e.By)
	}
	return fmt.Sprintf("%s{by: %s}", e.Kind, e.By)
}
