package ui

import (
	"fmt"

	"spatial-keyboard/internal/logger"
	"spatial-keyboard/internal/picking"
	"spatial-keyboard/internal/pointer"
)

// Interactive is a pick candidate with a state machine. Candidates that do not implement
// it (obstacles) can be picked but never change state.
type Interactive interface {
	picking.Candidate
	State() State
	SetState(State) error
}

// Update drives every interactive candidate from this frame's pick result.
//
// The hit element becomes Selected when select is held and it was already Hovered, or when
// touch is active; it becomes Hovered when neither signal is active. With select held on an
// element that is not yet Hovered nothing happens, so a press has to land on a hovered
// element first. Every other interactive candidate is forced to Idle.
func Update(hit picking.Intersection, ok bool, in pointer.Snapshot, candidates []picking.Candidate, log *logger.Logger) {
	if ok {
		if el, isUI := hit.Object.(Interactive); isUI {
			switch {
			case (in.Select && el.State() == Hovered) || in.Touch:
				transition(el, Selected, log)
			case !in.Select && !in.Touch:
				transition(el, Hovered, log)
			}
		}
	}

	for _, c := range candidates {
		if ok && c == hit.Object {
			continue
		}
		if el, isUI := c.(Interactive); isUI {
			transition(el, Idle, log)
		}
	}
}

// transition isolates one element: an error or panic in its callback or attribute
// application is logged and the pass moves on.
func transition(el Interactive, s State, log *logger.Logger) {
	defer func() {
		if p := recover(); p != nil {
			log.Errorf("ui: %s on %s: panic: %v", s, describe(el), p)
		}
	}()
	if err := el.SetState(s); err != nil {
		log.Warnf("ui: %v", err)
	}
}

func describe(el Interactive) string {
	if n := el.Object(); n != nil {
		return fmt.Sprintf("%q (id %d)", n.Name, n.ID)
	}
	return "<detached element>"
}
