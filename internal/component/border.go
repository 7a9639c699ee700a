package component

// BorderKind separates walls that reflect the ball from goal sensors.
type BorderKind uint8

const (
	BorderSolid BorderKind = iota
	BorderGoal
)

// Border marks a field edge. Owner is meaningful only for goals: it is the
// player defending that goal.
type Border struct {
	Kind  BorderKind
	Owner Player
}

func (b Border) IsGoal() bool { return b.Kind == BorderGoal }
