package keyboard

import (
	"errors"
	"strings"
	"testing"

	"spatial-keyboard/internal/logger"
	"spatial-keyboard/internal/scene"
	"spatial-keyboard/internal/ui"
)

type rig struct {
	g    *scene.Graph
	kb   *Keyboard
	buf  *Buffer
	ctrl *Controller
	log  *logger.Logger
}

func newRig(t *testing.T) *rig {
	t.Helper()
	g := scene.New()
	kb, err := New(g, DefaultLayout(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Add(kb.Root)
	r := &rig{g: g, kb: kb, buf: NewBuffer(), log: logger.New("")}
	r.ctrl = NewController(kb, r.buf, r.log)
	if err := kb.Setup(nil, r.ctrl.OnKeySelected); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return r
}

// press runs one full hover-then-select cycle on the key for name.
func (r *rig) press(t *testing.T, name string) {
	t.Helper()
	k, err := r.kb.KeyFor(name)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []ui.State{ui.Hovered, ui.Selected, ui.Idle} {
		if err := k.SetState(s); err != nil {
			t.Fatalf("SetState(%s): %v", s, err)
		}
	}
}

func TestTypeAndBackspace(t *testing.T) {
	r := newRig(t)
	for _, k := range []string{"a", "b", "c", CmdBackspace} {
		r.press(t, k)
	}
	if got := r.buf.Content(); got != "ab" {
		t.Errorf("buffer = %q, want %q", got, "ab")
	}
}

func TestBackspaceOnEmpty(t *testing.T) {
	r := newRig(t)
	r.press(t, CmdBackspace)
	if got := r.buf.Content(); got != "" {
		t.Errorf("buffer = %q, want empty", got)
	}
}

func TestSpaceAndEnter(t *testing.T) {
	r := newRig(t)
	for _, k := range []string{"h", CmdSpace, "i", CmdEnter} {
		r.press(t, k)
	}
	if got := r.buf.Content(); got != "h i\n" {
		t.Errorf("buffer = %q", got)
	}
}

func TestShiftUppercasesLetters(t *testing.T) {
	r := newRig(t)
	r.press(t, "h")
	r.press(t, CmdShift)
	if !r.kb.Upper() {
		t.Fatal("case flag not toggled")
	}
	k, _ := r.kb.KeyFor("h")
	if k.Label() != "H" {
		t.Errorf("label = %q, want H", k.Label())
	}
	r.press(t, "h")
	r.press(t, CmdShift)
	r.press(t, "h")
	if got := r.buf.Content(); got != "hHh" {
		t.Errorf("buffer = %q, want hHh", got)
	}
}

func TestShiftLeavesCommandLabels(t *testing.T) {
	r := newRig(t)
	r.kb.ToggleCase()
	k, _ := r.kb.KeyFor(CmdSpace)
	if k.Label() != "space" {
		t.Errorf("space label = %q", k.Label())
	}
	sym, _ := r.kb.KeyFor("@")
	if sym.Info.Input != "@" {
		t.Errorf("symbol input = %q after shift", sym.Info.Input)
	}
}

func TestSwitchRotatesPanels(t *testing.T) {
	r := newRig(t)
	n := r.kb.PanelCount()
	if n != 2 {
		t.Fatalf("PanelCount() = %d, want 2", n)
	}
	start := r.kb.PanelName()
	h, _ := r.kb.KeyFor("h")
	one, _ := r.kb.KeyFor("1")

	r.kb.SetNextPanel()
	if r.kb.PanelName() == start {
		t.Error("panel did not change")
	}
	if r.g.IsLiveMember(h.Object()) || !r.g.IsLiveMember(one.Object()) {
		t.Error("switch did not swap which keys are live")
	}
	for i := 1; i < n; i++ {
		r.kb.SetNextPanel()
	}
	if r.kb.PanelName() != start {
		t.Errorf("after %d switches panel = %q, want %q", n, r.kb.PanelName(), start)
	}
}

func TestSwitchKeyDispatch(t *testing.T) {
	r := newRig(t)
	r.press(t, CmdSwitch)
	if r.kb.PanelIndex() != 1 {
		t.Errorf("PanelIndex() = %d after switch key", r.kb.PanelIndex())
	}
}

func TestUnknownCommandIsLogged(t *testing.T) {
	r := newRig(t)
	k, _ := r.kb.KeyFor("q")
	k.Info = ui.Info{Command: "tab"}
	r.ctrl.OnKeySelected(k)
	if r.buf.Content() != "" {
		t.Errorf("unknown command changed buffer to %q", r.buf.Content())
	}
	lines := r.log.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "unknown command: tab") {
		t.Errorf("log = %v", lines)
	}
}

func TestHeldSelectionTypesOnce(t *testing.T) {
	r := newRig(t)
	k, _ := r.kb.KeyFor("z")
	_ = k.SetState(ui.Hovered)
	for i := 0; i < 5; i++ {
		_ = k.SetState(ui.Selected)
	}
	if r.buf.Content() != "z" {
		t.Errorf("buffer = %q, want a single z", r.buf.Content())
	}
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout([]byte(`
panels:
  - rows:
      - [a, {command: enter, width: 2}]
`))
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if l.Panels[0].Name != "panel1" || l.KeySize != 0.09 {
		t.Errorf("defaults not applied: %+v", l)
	}
	row := l.Panels[0].Rows[0]
	if row[0].Input != "a" || row[1].Command != "enter" || row[1].Units() != 2 || row[0].Units() != 1 {
		t.Errorf("row = %+v", row)
	}

	if _, err := ParseLayout([]byte("panels: []")); !errors.Is(err, ErrEmptyLayout) {
		t.Errorf("empty layout err = %v", err)
	}
	if _, err := ParseLayout([]byte("panels:\n  - rows:\n      - [{label: x}]\n")); err == nil {
		t.Error("key without input or command accepted")
	}
}

func TestKeysFitInsideBackground(t *testing.T) {
	r := newRig(t)
	half := r.kb.Root.Size.X / 2
	for _, k := range r.kb.Keys() {
		n := k.Object()
		if n.Position.X-n.Size.X/2 < -half-1e-5 || n.Position.X+n.Size.X/2 > half+1e-5 {
			t.Errorf("key %s spills outside keyboard width", n.Name)
		}
	}
}
