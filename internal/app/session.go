// Package app owns one keyboard UI instance and runs its per-frame update.
package app

import (
	"fmt"

	"spatial-keyboard/internal/geom"
	"spatial-keyboard/internal/keyboard"
	"spatial-keyboard/internal/logger"
	"spatial-keyboard/internal/panel"
	"spatial-keyboard/internal/picking"
	"spatial-keyboard/internal/pointer"
	"spatial-keyboard/internal/scene"
	"spatial-keyboard/internal/ui"
)

// Placement of the demo UI in front of a standing user (metres, radians).
var (
	PanelPosition    = geom.V3(0, 1.4, -1.2)
	PanelRotation    = geom.V3(-0.15, 0, 0)
	KeyboardPosition = geom.V3(0, 0.88, -1)
	KeyboardRotation = geom.V3(-0.55, 0, 0)
)

const roomSize = 6

// Options configures NewSession. Zero values select the built-in layout and stylesheet.
type Options struct {
	Layout     *keyboard.Layout
	Stylesheet *ui.Stylesheet
	Panel      panel.Options
	Applier    ui.Applier
	Log        *logger.Logger
	// NoRoom leaves out the room obstacle.
	NoRoom bool
}

// DefaultOptions returns options for the demo scene.
func DefaultOptions() Options {
	return Options{Panel: panel.DefaultOptions()}
}

// Session is one UI instance: its scene, candidate set, text buffer and keyboard.
// Nothing in it is global, so several sessions can live side by side.
type Session struct {
	Graph      *scene.Graph
	Candidates *picking.Set
	Buffer     *keyboard.Buffer
	Keyboard   *keyboard.Keyboard
	Controller *keyboard.Controller
	Panel      *panel.TextPanel
	Room       *scene.Node
	Input      *pointer.Adapter
	Log        *logger.Logger

	// Loop holds the host collaborators called by Frame. NewSession sets Layout to the text panel.
	Loop Loop

	frames   uint64
	last     picking.Intersection
	lastOK   bool
	lastSnap pointer.Snapshot
}

// NewSession builds the text panel, the keyboard and the room, and registers every key
// as a pick candidate. The room goes last: on an exact tie the first candidate wins,
// so a key flush with a wall still gets the hit.
func NewSession(opts Options) (*Session, error) {
	sheet := opts.Stylesheet
	if sheet == nil {
		sheet = ui.DefaultStylesheet()
	}
	layout := opts.Layout
	if layout == nil {
		layout = keyboard.DefaultLayout()
	}
	if opts.Panel == (panel.Options{}) {
		opts.Panel = panel.DefaultOptions()
	}

	s := &Session{
		Graph:      scene.New(),
		Candidates: picking.NewSet(),
		Buffer:     keyboard.NewBuffer(),
		Input:      pointer.NewAdapter(),
		Log:        opts.Log,
	}

	s.Panel = panel.New(s.Graph, opts.Panel)
	s.Panel.Root.Position = PanelPosition
	s.Panel.Root.Rotation = PanelRotation
	if a := sheet.Attributes("panel", ui.Idle); a.HasBackground {
		s.Panel.Root.Color = a.Background
	}
	s.Buffer.OnChange(s.Panel.SetText)

	kb, err := keyboard.New(s.Graph, layout, opts.Applier)
	if err != nil {
		return nil, fmt.Errorf("app: build keyboard: %w", err)
	}
	kb.Root.Position = KeyboardPosition
	kb.Root.Rotation = KeyboardRotation
	s.Keyboard = kb
	s.Controller = keyboard.NewController(kb, s.Buffer, s.Log)
	if err := kb.Setup(sheet, s.Controller.OnKeySelected); err != nil {
		return nil, fmt.Errorf("app: setup keys: %w", err)
	}

	s.Graph.Add(s.Panel.Root, kb.Root)
	for _, k := range kb.Keys() {
		s.Candidates.Add(k)
	}
	if !opts.NoRoom {
		s.Room = buildRoom(s.Graph, sheet)
		s.Graph.Add(s.Room)
		s.Candidates.Add(picking.Obstacle(s.Room))
	}
	s.Loop.Layout = s.Panel

	s.Log.Infof("app: session ready: %d keys in %d panels, %d candidates",
		len(kb.Keys()), kb.PanelCount(), s.Candidates.Len())
	return s, nil
}

// buildRoom makes the walls, floor and ceiling of a cube around the user as thin quads, so a
// ray cast from inside hits the far wall instead of starting in a solid box.
func buildRoom(g *scene.Graph, sheet *ui.Stylesheet) *scene.Node {
	room := g.NewNode("room")
	room.Position = geom.V3(0, roomSize/2, 0)
	const h = roomSize / 2
	walls := []struct {
		name string
		pos  geom.Vec3
		size geom.Vec3
	}{
		{"floor", geom.V3(0, -h, 0), geom.V3(roomSize, 0, roomSize)},
		{"ceiling", geom.V3(0, h, 0), geom.V3(roomSize, 0, roomSize)},
		{"wall-front", geom.V3(0, 0, -h), geom.V3(roomSize, roomSize, 0)},
		{"wall-back", geom.V3(0, 0, h), geom.V3(roomSize, roomSize, 0)},
		{"wall-left", geom.V3(-h, 0, 0), geom.V3(0, roomSize, roomSize)},
		{"wall-right", geom.V3(h, 0, 0), geom.V3(0, roomSize, roomSize)},
	}
	a := sheet.Attributes("room", ui.Idle)
	for _, w := range walls {
		n := g.NewNode(w.name)
		n.Position = w.pos
		n.Size = w.size
		if a.HasBackground {
			n.Color = a.Background
		}
		room.Add(n)
	}
	return room
}

// Target returns the last frame's pick result.
func (s *Session) Target() (picking.Intersection, bool) {
	return s.last, s.lastOK
}

// Snapshot returns the last frame's normalized input.
func (s *Session) Snapshot() pointer.Snapshot {
	return s.lastSnap
}

// PointerDot returns where the controller ray hit last frame, for drawing the VR pointer dot.
func (s *Session) PointerDot() (geom.Vec3, bool) {
	if !s.lastOK || s.lastSnap.Modality != pointer.Controller {
		return geom.Vec3{}, false
	}
	return s.last.Point, true
}

// Frames returns the number of frames run so far.
func (s *Session) Frames() uint64 {
	return s.frames
}

// Text returns the typed text.
func (s *Session) Text() string {
	return s.Buffer.Content()
}
