package graphics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"spatial-keyboard/internal/geom"
	"spatial-keyboard/internal/pointer"
)

const (
	lookSpeed = 0.004 // radians per pixel of right-drag
	maxPitch  = 1.4
)

// View is a standing first-person camera. Dragging with the right mouse button looks
// around; the left button is left to the keyboard. It is the frame loop's Controls and
// the camera half of its RaySource.
type View struct {
	Camera rl.Camera3D
	// XR is the emulated controller; nil when emulation is off.
	XR *Controller

	yaw, pitch float32
}

// NewView returns a camera at standing eye height looking towards -Z, with a 60 degree
// vertical field of view.
func NewView() *View {
	v := &View{}
	v.Camera.Position = rl.NewVector3(0, 1.6, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = 60
	v.Camera.Projection = rl.CameraPerspective
	v.pitch = -0.25
	v.aim()
	return v
}

func (v *View) aim() {
	dir := geom.V3(0, 0, -1).RotateX(v.pitch).RotateY(v.yaw)
	p := v.Camera.Position
	v.Camera.Target = rl.NewVector3(p.X+dir.X, p.Y+dir.Y, p.Z+dir.Z)
}

// Update applies right-drag look and advances the emulated controller.
func (v *View) Update() {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		v.yaw -= d.X * lookSpeed
		v.pitch -= d.Y * lookSpeed
		v.pitch = math32.Max(-maxPitch, math32.Min(maxPitch, v.pitch))
		v.aim()
	}
	if v.XR != nil {
		v.XR.Update(v.Position())
	}
}

// Position is the eye position in world space.
func (v *View) Position() geom.Vec3 {
	p := v.Camera.Position
	return geom.V3(p.X, p.Y, p.Z)
}

// FromCamera unprojects a normalized pointer position through the camera.
func (v *View) FromCamera(p pointer.NDC) geom.Ray {
	w, h := Size()
	x, y := p.ToScreen(w, h)
	r := rl.GetScreenToWorldRay(rl.NewVector2(x, y), v.Camera)
	return geom.NewRay(
		geom.V3(r.Position.X, r.Position.Y, r.Position.Z),
		geom.V3(r.Direction.X, r.Direction.Y, r.Direction.Z),
	)
}

// FromController returns the emulated controller's ray, if emulation is on and a pad is connected.
func (v *View) FromController(i int) (geom.Ray, bool) {
	if v.XR == nil {
		return geom.Ray{}, false
	}
	return v.XR.Ray(i)
}
