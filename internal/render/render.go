// Package render draws a session's scene graph with raylib: node boxes, the room grid,
// text labels and the controller pointer.
package render

import (
	"image/color"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spatial-keyboard/internal/app"
	"spatial-keyboard/internal/geom"
	"spatial-keyboard/internal/graphics"
	"spatial-keyboard/internal/pointer"
	"spatial-keyboard/internal/scene"
)

// minThickness keeps flat UI quads drawable (a zero scale breaks normals).
const minThickness = 0.002

const (
	roomDivisions = 10
	dotRadius     = 0.008
	textMargin    = 0.03 // metres from the field's top-left corner
	keyTextHeight = 0.04
	titleHeight   = 0.045
	fieldHeight   = 0.035
	lineSpacing   = 1.25
)

var (
	pointerColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	rayColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}
	textColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Renderer implements app.Renderer for a raylib window.
type Renderer struct {
	View *graphics.View
	// Font is used for labels; a zero texture ID selects raylib's default font.
	Font rl.Font

	boxes *boxes
	room  *scene.Node
}

// New returns a renderer drawing through view's camera.
func New(view *graphics.View) *Renderer {
	return &Renderer{View: view, boxes: newBoxes()}
}

// Render draws the scene in 3D, then the labels as a 2D overlay.
func (r *Renderer) Render(s *app.Session) {
	r.room = s.Room
	eye := r.View.Position()
	r.boxes.setView([3]float32{eye.X, eye.Y, eye.Z}, [3]float32{0.5, 1, 0.5})

	rl.BeginMode3D(r.View.Camera)
	r.drawNode(s.Graph.Root, rl.MatrixIdentity(), false)
	if s.Snapshot().Modality == pointer.Controller {
		r.drawPointer(s)
	}
	rl.EndMode3D()

	r.drawLabels(s)
}

// nodeMatrix composes the node's rotation (Z, then Y, then X) and its translation,
// matching geom.Vec3.RotateEuler so drawn boxes line up with hit tests.
func nodeMatrix(n *scene.Node) rl.Matrix {
	rot := rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixRotateZ(n.Rotation.Z), rl.MatrixRotateY(n.Rotation.Y)), rl.MatrixRotateX(n.Rotation.X))
	trans := rl.MatrixTranslate(n.Position.X, n.Position.Y, n.Position.Z+n.Offset)
	return rl.MatrixMultiply(rot, trans)
}

func (r *Renderer) drawNode(n *scene.Node, parent rl.Matrix, inRoom bool) {
	world := rl.MatrixMultiply(nodeMatrix(n), parent)
	inRoom = inRoom || (r.room != nil && n == r.room)
	if !n.Hidden && n.Color.A > 0 && (n.Size.X != 0 || n.Size.Y != 0 || n.Size.Z != 0) {
		if inRoom {
			r.drawWall(n, world)
		} else {
			scale := rl.MatrixScale(max(n.Size.X, minThickness), max(n.Size.Y, minThickness), max(n.Size.Z, minThickness))
			r.boxes.draw(rl.MatrixMultiply(scale, world), n.Color, false)
		}
	}
	for _, c := range n.Children() {
		r.drawNode(c, world, inRoom)
	}
}

// drawWall draws a room surface as a line grid; the floor also gets a lit solid fill.
func (r *Renderer) drawWall(n *scene.Node, world rl.Matrix) {
	if n.Size.Y == 0 {
		fill := n.Color
		fill.R, fill.G, fill.B = fill.R/2, fill.G/2, fill.B/2
		scale := rl.MatrixScale(n.Size.X, minThickness, n.Size.Z)
		if n.Position.Y < 0 {
			r.boxes.draw(rl.MatrixMultiply(scale, world), fill, true)
		}
	}
	drawGrid(n.Size, world, n.Color)
}

// drawGrid draws roomDivisions lines each way across the flat box of the given size.
func drawGrid(size geom.Vec3, world rl.Matrix, c color.RGBA) {
	// The zero axis is the wall's normal; u and v span the wall.
	u, v := geom.V3(size.X, 0, 0), geom.V3(0, size.Y, 0)
	switch {
	case size.X == 0:
		u = geom.V3(0, 0, size.Z)
	case size.Y == 0:
		v = geom.V3(0, 0, size.Z)
	}
	corner := u.Scale(-0.5).Add(v.Scale(-0.5))
	var start, end rl.Vector3
	for i := 0; i <= roomDivisions; i++ {
		f := float32(i) / roomDivisions
		a := corner.Add(u.Scale(f))
		start = toWorld(a, world)
		end = toWorld(a.Add(v), world)
		rl.DrawLine3D(start, end, c)
		b := corner.Add(v.Scale(f))
		start = toWorld(b, world)
		end = toWorld(b.Add(u), world)
		rl.DrawLine3D(start, end, c)
	}
}

func toWorld(p geom.Vec3, world rl.Matrix) rl.Vector3 {
	return rl.Vector3Transform(rl.NewVector3(p.X, p.Y, p.Z), world)
}

// drawPointer draws the controller ray and, when it hits something, the pointer dot.
func (r *Renderer) drawPointer(s *app.Session) {
	ray := s.Snapshot().Ray
	end := ray.At(1)
	if dot, ok := s.PointerDot(); ok {
		end = dot
		rl.DrawSphere(rl.NewVector3(dot.X, dot.Y, dot.Z), dotRadius, pointerColor)
	}
	rl.DrawLine3D(
		rl.NewVector3(ray.Origin.X, ray.Origin.Y, ray.Origin.Z),
		rl.NewVector3(end.X, end.Y, end.Z),
		rayColor,
	)
}

// drawLabels projects every live label into screen space. Keys and the title are centred;
// the text field is anchored at its top-left corner and grows downwards.
func (r *Renderer) drawLabels(s *app.Session) {
	font := r.Font
	if font.Texture.ID == 0 {
		font = rl.GetFontDefault()
	}
	s.Graph.Root.Walk(func(n *scene.Node) bool {
		if n.Label == "" {
			return true
		}
		switch n {
		case s.Panel.Field:
			r.drawField(font, n)
		case s.Panel.Title:
			r.drawCentred(font, n, titleHeight)
		default:
			r.drawCentred(font, n, keyTextHeight)
		}
		return true
	})
}

// pixels converts a height in metres at n's position to screen pixels.
func (r *Renderer) pixels(n *scene.Node, metres float32) float32 {
	a := rl.GetWorldToScreen(vec(n.WorldPoint(geom.Vec3{})), r.View.Camera)
	b := rl.GetWorldToScreen(vec(n.WorldPoint(geom.V3(0, metres, 0))), r.View.Camera)
	return rl.Vector2Distance(a, b)
}

func (r *Renderer) drawCentred(font rl.Font, n *scene.Node, height float32) {
	size := r.pixels(n, height)
	if size < 4 {
		return
	}
	centre := rl.GetWorldToScreen(vec(n.WorldPoint(geom.Vec3{})), r.View.Camera)
	m := rl.MeasureTextEx(font, n.Label, size, 1)
	rl.DrawTextEx(font, n.Label, rl.NewVector2(centre.X-m.X/2, centre.Y-m.Y/2), size, 1, textColor)
}

func (r *Renderer) drawField(font rl.Font, n *scene.Node) {
	size := r.pixels(n, fieldHeight)
	if size < 4 {
		return
	}
	corner := geom.V3(-n.Size.X/2+textMargin, n.Size.Y/2-textMargin, 0)
	pos := rl.GetWorldToScreen(vec(n.WorldPoint(corner)), r.View.Camera)
	for i, line := range strings.Split(n.Label, "\n") {
		y := pos.Y + float32(i)*size*lineSpacing
		rl.DrawTextEx(font, line, rl.NewVector2(pos.X, y), size, 1, textColor)
	}
}

func vec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}
