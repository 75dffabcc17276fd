package keyboard

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyLayout is returned for layouts without any panel or key.
var ErrEmptyLayout = errors.New("keyboard: layout has no keys")

//go:embed layouts/eng.yaml
var defaultLayout []byte

// KeyDef is one key of a layout. In YAML a key is either a bare glyph ("q") or a map
// with a command: {command: backspace, label: del, width: 1.5}.
type KeyDef struct {
	Input   string  `yaml:"input,omitempty"`
	Command string  `yaml:"command,omitempty"`
	Label   string  `yaml:"label,omitempty"`
	Width   float32 `yaml:"width,omitempty"` // in standard key widths; 0 means 1
}

// UnmarshalYAML accepts the scalar shorthand.
func (k *KeyDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*k = KeyDef{Input: value.Value}
		return nil
	}
	type plain KeyDef
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*k = KeyDef(p)
	return nil
}

// Units returns the key width in standard key widths.
func (k KeyDef) Units() float32 {
	if k.Width <= 0 {
		return 1
	}
	return k.Width
}

// PanelDef is one panel variant (letters, symbols...): rows of keys, top row first.
type PanelDef struct {
	Name string     `yaml:"name"`
	Rows [][]KeyDef `yaml:"rows"`
}

// Layout is a full keyboard definition. Sizes are in metres.
type Layout struct {
	Name    string     `yaml:"name"`
	KeySize float32    `yaml:"key_size"`
	Gap     float32    `yaml:"gap"`
	Padding float32    `yaml:"padding"`
	Panels  []PanelDef `yaml:"panels"`
}

// DefaultLayout returns the built-in English layout (letters and symbols panels).
func DefaultLayout() *Layout {
	l, err := ParseLayout(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("keyboard: embedded layout: %v", err))
	}
	return l
}

// LoadLayout reads a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// ParseLayout decodes and validates a YAML layout, filling in default sizes.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("keyboard: parse layout: %w", err)
	}
	if l.KeySize <= 0 {
		l.KeySize = 0.09
	}
	if l.Gap < 0 {
		l.Gap = 0
	}
	if l.Padding <= 0 {
		l.Padding = 0.02
	}
	keys := 0
	for pi, p := range l.Panels {
		if p.Name == "" {
			l.Panels[pi].Name = fmt.Sprintf("panel%d", pi+1)
		}
		for ri, row := range p.Rows {
			for ki, k := range row {
				if k.Input == "" && k.Command == "" {
					return nil, fmt.Errorf("keyboard: panel %q row %d key %d: needs input or command", l.Panels[pi].Name, ri+1, ki+1)
				}
				keys++
			}
		}
	}
	if keys == 0 {
		return nil, ErrEmptyLayout
	}
	return &l, nil
}
