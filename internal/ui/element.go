package ui

import (
	"errors"
	"fmt"

	"spatial-keyboard/internal/scene"
)

// ErrUnknownState is returned when an element is asked to enter a state it never registered.
var ErrUnknownState = errors.New("ui: unknown state")

// Attributes is the look of one state. The renderer decides how to draw them; the state
// machine only decides which set applies and when.
type Attributes struct {
	Offset        float32
	Background    Color
	HasBackground bool
}

// Applier pushes attributes onto an element's visual node.
type Applier interface {
	ApplyAttributes(n *scene.Node, a Attributes) error
}

// NodeApplier applies attributes directly to the scene node: background becomes the node
// colour and offset its push along the parent Z axis.
type NodeApplier struct{}

func (NodeApplier) ApplyAttributes(n *scene.Node, a Attributes) error {
	if n == nil {
		return errors.New("ui: apply attributes to nil node")
	}
	n.Offset = a.Offset
	if a.HasBackground {
		n.Color = a.Background
	}
	return nil
}

// Info is optional metadata carried by keyboard keys: a control command or a literal glyph.
type Info struct {
	Command string
	Input   string
}

// StateDef is what happens on entering a state: apply Attributes, after running OnSet.
type StateDef struct {
	Attributes Attributes
	OnSet      func()
}

// Element is an interactive UI unit (panel, key) driven through Idle, Hovered and Selected
// by pick results. Its identity is its scene node.
type Element struct {
	Info Info

	node    *scene.Node
	current State
	states  map[State]StateDef
	applier Applier
}

// NewElement wraps node. A nil applier uses NodeApplier.
func NewElement(node *scene.Node, applier Applier) *Element {
	if applier == nil {
		applier = NodeApplier{}
	}
	return &Element{node: node, current: Idle, states: make(map[State]StateDef), applier: applier}
}

// Object returns the element's root node; picking resolves every sub-part hit to it.
func (e *Element) Object() *scene.Node {
	return e.node
}

// ID is the stable identity of the element.
func (e *Element) ID() int64 {
	if e.node == nil {
		return 0
	}
	return e.node.ID
}

// State returns the current state.
func (e *Element) State() State {
	return e.current
}

// SetupState registers (or replaces) a state. Registering the state the element is already
// in applies its attributes right away without calling onSet, so new elements start with
// their idle look.
func (e *Element) SetupState(s State, attrs Attributes, onSet func()) error {
	e.states[s] = StateDef{Attributes: attrs, OnSet: onSet}
	if s != e.current {
		return nil
	}
	if err := e.applier.ApplyAttributes(e.node, attrs); err != nil {
		return fmt.Errorf("ui: setup %s on %d: %w", s, e.ID(), err)
	}
	return nil
}

// SetState enters s. Re-entering the current state is a no-op, so a held selection does not
// fire onSet every frame. On a real transition onSet runs exactly once, then the attributes
// are applied; an attribute failure is returned but the transition stands.
func (e *Element) SetState(s State) error {
	def, ok := e.states[s]
	if !ok {
		return fmt.Errorf("%w: %s on element %d", ErrUnknownState, s, e.ID())
	}
	if s == e.current {
		return nil
	}
	e.current = s
	if def.OnSet != nil {
		def.OnSet()
	}
	if err := e.applier.ApplyAttributes(e.node, def.Attributes); err != nil {
		return fmt.Errorf("ui: apply %s to %d: %w", s, e.ID(), err)
	}
	return nil
}
