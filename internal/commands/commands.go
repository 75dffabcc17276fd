package commands

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCommand is returned by Execute for names nothing registered.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a named control action bound to a keyboard key (e.g. "backspace").
type Command struct {
	Name string
	Run  func() error
}

// Registry holds commands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds or replaces the command called name.
func (r *Registry) Register(name string, run func() error) {
	r.cmds[name] = &Command{Name: name, Run: run}
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.cmds[name]
	return ok
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Execute runs the command called name.
// Returns ErrUnknownCommand (wrapped with the name) if it is not registered, or the error from Run.
func (r *Registry) Execute(name string) error {
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if cmd.Run == nil {
		return nil
	}
	return cmd.Run()
}
