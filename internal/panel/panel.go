package panel

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"spatial-keyboard/internal/geom"
	"spatial-keyboard/internal/scene"
)

// Options sizes the text panel. Sizes are in metres.
type Options struct {
	Width    float32
	Height   float32
	Title    string
	Columns  int // wrap width of the text field in cells
	MaxLines int // lines kept visible; older lines scroll off the top
}

// DefaultOptions matches the demo panel: 1 x 0.5 m with a title strip.
func DefaultOptions() Options {
	return Options{
		Width:    1,
		Height:   0.5,
		Title:    "Type some text on the keyboard",
		Columns:  40,
		MaxLines: 8,
	}
}

// TextPanel shows a title and the typed text. Its field mirrors a text source; Refresh
// re-lays the text out and must run once per frame before picking and drawing.
type TextPanel struct {
	Root  *scene.Node
	Title *scene.Node
	Field *scene.Node

	opts    Options
	content string
	dirty   bool
	lines   []string
}

// New builds the panel nodes in g. The panel is detached; add Root to the scene.
func New(g *scene.Graph, opts Options) *TextPanel {
	if opts.Columns <= 0 {
		opts.Columns = DefaultOptions().Columns
	}
	if opts.MaxLines <= 0 {
		opts.MaxLines = DefaultOptions().MaxLines
	}
	p := &TextPanel{opts: opts, dirty: true}
	p.Root = g.NewNode("text-panel")
	p.Root.Size = geom.V3(opts.Width, opts.Height, 0)

	titleH := opts.Height * 0.2
	p.Title = g.NewNode("title")
	p.Title.Size = geom.V3(opts.Width, titleH, 0)
	p.Title.Position = geom.V3(0, opts.Height/2-titleH/2, 0.001)
	p.Title.Hidden = true
	p.Title.Label = opts.Title

	p.Field = g.NewNode("text-field")
	p.Field.Size = geom.V3(opts.Width, opts.Height-titleH, 0)
	p.Field.Position = geom.V3(0, -titleH/2, 0.001)
	p.Field.Hidden = true

	p.Root.Add(p.Title, p.Field)
	return p
}

// SetText records new field content; layout happens on the next Refresh.
func (p *TextPanel) SetText(s string) {
	if s == p.content {
		return
	}
	p.content = s
	p.dirty = true
}

// Refresh wraps the content to the panel width and updates the field label.
func (p *TextPanel) Refresh() {
	if !p.dirty {
		return
	}
	p.dirty = false
	p.lines = Wrap(p.content, p.opts.Columns)
	visible := p.lines
	if len(visible) > p.opts.MaxLines {
		visible = visible[len(visible)-p.opts.MaxLines:]
	}
	p.Field.Label = strings.Join(visible, "\n")
}

// Lines returns the wrapped lines from the last Refresh.
func (p *TextPanel) Lines() []string {
	return p.lines
}

// Wrap splits s on newlines and wraps each paragraph to cols display cells.
// An empty string yields a single empty line.
func Wrap(s string, cols int) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		out = append(out, strings.Split(runewidth.Wrap(para, cols), "\n")...)
	}
	return out
}
