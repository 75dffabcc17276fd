package app

import (
	"fmt"
	"strings"

	"spatial-keyboard/internal/ui"
)

// Status describes the last frame for the debug overlay, e.g.
// "pointer | key:h hovered 1.02m | letters lower".
func (s *Session) Status() string {
	var b strings.Builder
	b.WriteString(s.lastSnap.Modality.String())
	b.WriteString(" | ")
	if !s.lastOK {
		b.WriteString("no target")
	} else {
		n := s.last.Object.Object()
		b.WriteString(n.Name)
		if el, ok := s.last.Object.(ui.Interactive); ok {
			b.WriteString(" ")
			b.WriteString(el.State().String())
		}
		fmt.Fprintf(&b, " %.2fm", s.last.Distance)
	}
	kcase := "lower"
	if s.Keyboard.Upper() {
		kcase = "upper"
	}
	fmt.Fprintf(&b, " | %s %s", s.Keyboard.PanelName(), kcase)
	return b.String()
}
