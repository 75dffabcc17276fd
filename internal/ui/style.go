package ui

import (
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA colour. It is the same type raylib uses for rl.Color.
type Color = color.RGBA

// Rule is a single stylesheet rule: a class, an optional state, and raw property values.
// ".key:hovered" targets class "key" in state Hovered; ".key" targets every state.
type Rule struct {
	Class    string
	State    State
	AnyState bool
	Props    map[string]string
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// Attributes resolves the attributes of class in state s: rules without a state apply
// first, state rules on top, each group in file order.
func (sh *Stylesheet) Attributes(class string, s State) Attributes {
	merged := make(map[string]string)
	if sh == nil {
		return ResolveProps(merged)
	}
	for _, pass := range []bool{true, false} {
		for _, r := range sh.Rules {
			if r.Class != class || r.AnyState != pass {
				continue
			}
			if !r.AnyState && r.State != s {
				continue
			}
			for k, v := range r.Props {
				merged[k] = v
			}
		}
	}
	return ResolveProps(merged)
}

// ParseHexColor parses #RGB or #RRGGBB into a Color (alpha 255). Returns black and false on parse error.
func ParseHexColor(s string) (Color, bool) {
	black := Color{A: 255}
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return black, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return black, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return black, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}

// ParseLength parses a world-space length such as "-0.009". Accepts an optional "m" suffix.
func ParseLength(s string) (float32, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "m")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// ResolveProps builds Attributes from a merged property map. Unknown properties are ignored.
func ResolveProps(props map[string]string) Attributes {
	var out Attributes
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
				out.HasBackground = true
			}
		case "offset":
			if n, ok := ParseLength(v); ok {
				out.Offset = n
			}
		}
	}
	return out
}
