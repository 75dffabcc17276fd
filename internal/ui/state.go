package ui

import "fmt"

// State is the visual state of an interactive element.
type State int

const (
	Idle State = iota
	Hovered
	Selected
)

// States lists every state in declaration order.
var States = []State{Idle, Hovered, Selected}

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovered:
		return "hovered"
	case Selected:
		return "selected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState maps "idle", "hovered" or "selected" to its State.
func ParseState(name string) (State, error) {
	for _, s := range States {
		if s.String() == name {
			return s, nil
		}
	}
	return Idle, fmt.Errorf("%w: %q", ErrUnknownState, name)
}
