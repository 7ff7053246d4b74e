package task

import "github.com/xeruf/mostr-go/internal/event"

// State is the symbolic state a task's current state event maps to.
type State int

const (
	Open State = iota
	Done
	Closed
	Active
)

func (s State) String() string {
	switch s {
	case Open:
		return "Open"
	case Done:
		return "Done"
	case Closed:
		return "Closed"
	case Active:
		return "Active"
	default:
		return "Open"
	}
}

func stateForKind(k event.Kind) (State, bool) {
	switch k {
	case event.KindStateOpen:
		return Open, true
	case event.KindStateDone:
		return Done, true
	case event.KindStateClosed:
		return Closed, true
	case event.KindStateActive:
		return Active, true
	default:
		return Open, false
	}
}

// StateEvent is one entry of a task's state history: the symbolic state,
// the creation time of the event that asserted it, and its free-form
// content.
type StateEvent struct {
	State State
	CreatedAt int64
	ID event.ID
	Content string
}

// CurrentState is the derived "current state" of a task: its symbolic
// state plus a human label, which is the state event's content when
// non-empty, or the symbolic state's own name otherwise.
type CurrentState struct {
	State State
	CreatedAt int64
	Content string
}

// Label is the string matched against the view layer's state-name filter.
func (c CurrentState) Label() string {
	if c.Content != "" {
		return c.Content
	}
	return c.State.String()
}
