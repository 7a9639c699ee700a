package event

// Emitter is the write side of a Queue. Detection holds only this.
type Emitter[T any] interface {
	Emit(ev T)
}

// Drainer is the read side of a Queue. Reaction holds only this.
type Drainer[T any] interface {
	Drain(fn func(T)) int
}

// Queue is a per-frame, drain-once event queue. Events emitted during a
// frame are handed out exactly once by Drain; whatever is still pending at
// frame end is dropped by Discard, so nothing crosses a frame boundary.
// Accessed only from the game loop goroutine.
type Queue[T any] struct {
	pending []T
	spare   []T
}

func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{
		pending: make([]T, 0, capacity),
		spare:   make([]T, 0, capacity),
	}
}

func (q *Queue[T]) Emit(ev T) {
	q.pending = append(q.pending, ev)
}

// Drain passes every pending event to fn once and empties the queue.
// Events emitted by fn are kept for a later Drain in the same frame.
func (q *Queue[T]) Drain(fn func(T)) int {
	batch := q.pending
	q.pending = q.spare[:0]
	for _, ev := range batch {
		fn(ev)
	}
	var zero T
	for i := range batch {
		batch[i] = zero
	}
	q.spare = batch[:0]
	return len(batch)
}

// Discard drops pending events and returns how many were dropped.
func (q *Queue[T]) Discard() int {
	n := len(q.pending)
	var zero T
	for i := range q.pending {
		q.pending[i] = zero
	}
	q.pending = q.pending[:0]
	return n
}

func (q *Queue[T]) Len() int { return len(q.pending) }
