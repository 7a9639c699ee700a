package event

import (
	"testing"

	"github.com/l1jgo/pong/internal/component"
)

func TestQueueDrainsOnce(t *testing.T) {
	q := NewQueue[GameEvent](2)
	q.Emit(GoalScored(component.Player2))
	q.Emit(ResetRequested(ResetGoal, component.Player2))

	var got []GameEvent
	if n := q.Drain(func(ev GameEvent) { got = append(got, ev) }); n != 2 {
		t.Fatalf("first drain delivered %d events, want 2", n)
	}
	if got[0].Kind != KindGoalScored || got[1].Kind != KindResetRequested {
		t.Errorf("drain order = %v", got)
	}
	if n := q.Drain(func(GameEvent) { t.Error("event delivered twice") }); n != 0 {
		t.Errorf("second drain delivered %d events", n)
	}
}

func TestQueueEmitDuringDrain(t *testing.T) {
	q := NewQueue[int](1)
	q.Emit(1)
	q.Drain(func(v int) { q.Emit(v + 1) })
	if q.Len() != 1 {
		t.Fatalf("Len = %d, want 1", q.Len())
	}
	var got int
	q.Drain(func(v int) { got = v })
	if got != 2 {
		t.Errorf("re-emitted value = %d, want 2", got)
	}
}

func TestQueueDiscard(t *testing.T) {
	q := NewQueue[GameEvent](4)
	q.Emit(PaddleHit(component.Player1))
	if n := q.Discard(); n != 1 {
		t.Errorf("Discard = %d, want 1", n)
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after Discard")
	}
}

func TestGameEventString(t *testing.T) {
	tests := []struct {
		ev   GameEvent
		want string
	}{
		{GoalScored(component.Player2), "goal_scored{by: player2}"},
		{PaddleHit(component.Player1), "paddle_hit{by: player1}"},
		{ResetRequested(ResetManual, component.Player1), "reset_requested{cause: manual, server: player1}"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
