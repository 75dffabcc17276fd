package keyboard

import (
	"fmt"
	"image/color"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"spatial-keyboard/internal/geom"
	"spatial-keyboard/internal/scene"
	"spatial-keyboard/internal/ui"
)

// keyDepth is how far keys float in front of the keyboard background.
const keyDepth = 0.01

// Key is one keyboard key: an interactive element plus its layout definition.
type Key struct {
	*ui.Element
	Def   KeyDef
	Panel int

	label *scene.Node
}

// Label returns the text currently shown on the key.
func (k *Key) Label() string {
	return k.label.Label
}

type panel struct {
	name string
	node *scene.Node
	keys []*Key
}

// Keyboard is the on-screen keyboard: one scene node per panel variant, only the current one
// attached under Root. Keys of detached panels stay in the candidate set but are no longer
// live scene members, so picking skips them.
type Keyboard struct {
	Root *scene.Node

	layout  *Layout
	panels  []*panel
	keys    []*Key
	current int
	upper   bool
	caser   cases.Caser
}

// New builds the keyboard nodes for layout in g. The returned keyboard is detached; add Root to the scene.
func New(g *scene.Graph, layout *Layout, applier ui.Applier) (*Keyboard, error) {
	if layout == nil {
		layout = DefaultLayout()
	}
	kb := &Keyboard{
		Root:   g.NewNode("keyboard"),
		layout: layout,
		caser:  cases.Upper(language.Und),
	}
	var width, height float32
	for pi, def := range layout.Panels {
		p, w, h := kb.buildPanel(g, pi, def, applier)
		kb.panels = append(kb.panels, p)
		width = max(width, w)
		height = max(height, h)
	}
	if len(kb.keys) == 0 {
		return nil, ErrEmptyLayout
	}
	kb.Root.Size = geom.V3(width+2*layout.Padding, height+2*layout.Padding, 0)
	kb.Root.Add(kb.panels[0].node)
	return kb, nil
}

// buildPanel lays rows out top to bottom, each row centred horizontally.
func (kb *Keyboard) buildPanel(g *scene.Graph, index int, def PanelDef, applier ui.Applier) (*panel, float32, float32) {
	l := kb.layout
	pitch := l.KeySize + l.Gap
	p := &panel{name: def.Name, node: g.NewNode("panel:" + def.Name)}

	var maxRow float32
	for _, row := range def.Rows {
		maxRow = max(maxRow, rowWidth(row, l))
	}
	height := float32(len(def.Rows))*pitch - l.Gap
	top := height/2 - l.KeySize/2

	for ri, row := range def.Rows {
		x := -rowWidth(row, l) / 2
		y := top - float32(ri)*pitch
		for _, kd := range row {
			w := kd.Units()*pitch - l.Gap
			key := kb.newKey(g, kd, index, applier)
			key.Object().Position = geom.V3(x+w/2, y, keyDepth)
			key.Object().Size = geom.V3(w, l.KeySize, 0)
			key.label.Size = geom.V3(w*0.6, l.KeySize*0.5, 0)
			p.node.Add(key.Object())
			p.keys = append(p.keys, key)
			x += w + l.Gap
		}
	}
	return p, maxRow, height
}

func rowWidth(row []KeyDef, l *Layout) float32 {
	var units float32
	for _, k := range row {
		units += k.Units()
	}
	return units*(l.KeySize+l.Gap) - l.Gap
}

func (kb *Keyboard) newKey(g *scene.Graph, kd KeyDef, panelIndex int, applier ui.Applier) *Key {
	name := kd.Input
	if kd.Command != "" {
		name = kd.Command
	}
	node := g.NewNode("key:" + name)
	label := g.NewNode("key-label")
	label.Position = geom.V3(0, 0, 0.001)
	label.Color = color.RGBA{}
	node.Add(label)

	key := &Key{Element: ui.NewElement(node, applier), Def: kd, Panel: panelIndex, label: label}
	key.Info = ui.Info{Command: kd.Command, Input: kd.Input}
	kb.refreshKey(key)
	kb.keys = append(kb.keys, key)
	return key
}

// refreshKey recomputes a key's emitted glyph and label from the case flag.
func (kb *Keyboard) refreshKey(k *Key) {
	if k.Def.Input != "" {
		k.Info.Input = k.Def.Input
		if kb.upper {
			k.Info.Input = kb.caser.String(k.Def.Input)
		}
	}
	switch {
	case k.Def.Label != "":
		k.label.Label = k.Def.Label
	default:
		k.label.Label = k.Info.Input
	}
}

// Keys returns every key of every panel, in layout order.
func (kb *Keyboard) Keys() []*Key {
	return kb.keys
}

// Setup registers the idle, hovered and selected states on every key from sheet (class "key").
// onSelected runs when a key enters Selected.
func (kb *Keyboard) Setup(sheet *ui.Stylesheet, onSelected func(*Key)) error {
	if sheet == nil {
		sheet = ui.DefaultStylesheet()
	}
	if bg := sheet.Attributes("keyboard", ui.Idle); bg.HasBackground {
		kb.Root.Color = bg.Background
	}
	for _, k := range kb.keys {
		k := k
		for _, s := range []ui.State{ui.Idle, ui.Hovered} {
			if err := k.SetupState(s, sheet.Attributes("key", s), nil); err != nil {
				return err
			}
		}
		err := k.SetupState(ui.Selected, sheet.Attributes("key", ui.Selected), func() {
			if onSelected != nil {
				onSelected(k)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// PanelIndex returns the index of the visible panel.
func (kb *Keyboard) PanelIndex() int {
	return kb.current
}

// PanelName returns the name of the visible panel.
func (kb *Keyboard) PanelName() string {
	return kb.panels[kb.current].name
}

// PanelCount returns the number of panel variants.
func (kb *Keyboard) PanelCount() int {
	return len(kb.panels)
}

// SetNextPanel shows the next panel variant, wrapping around after the last.
func (kb *Keyboard) SetNextPanel() {
	if len(kb.panels) < 2 {
		return
	}
	kb.Root.Remove(kb.panels[kb.current].node)
	kb.current = (kb.current + 1) % len(kb.panels)
	kb.Root.Add(kb.panels[kb.current].node)
}

// Upper reports whether the keyboard is in upper case.
func (kb *Keyboard) Upper() bool {
	return kb.upper
}

// ToggleCase flips the case flag and updates every key's glyph and label.
func (kb *Keyboard) ToggleCase() {
	kb.upper = !kb.upper
	for _, k := range kb.keys {
		kb.refreshKey(k)
	}
}

// KeyFor returns the first key (any panel) emitting input in lower case or carrying command.
func (kb *Keyboard) KeyFor(inputOrCommand string) (*Key, error) {
	for _, k := range kb.keys {
		if k.Def.Input == inputOrCommand || (k.Def.Command != "" && k.Def.Command == inputOrCommand) {
			return k, nil
		}
	}
	return nil, fmt.Errorf("keyboard: no key for %q", inputOrCommand)
}
