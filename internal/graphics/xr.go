package graphics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"spatial-keyboard/internal/geom"
)

const (
	stickDeadZone = 0.15
	stickSpeed    = 0.03 // radians per frame at full deflection
)

// handOffset places the emulated right hand relative to the eye.
var handOffset = geom.V3(0.2, -0.35, -0.15)

// Controller emulates a tracked VR controller with a gamepad: the left stick aims the
// hand ray and the right trigger is the select button. Presenting is toggled with the
// pad's middle button, standing in for entering an immersive session.
type Controller struct {
	Pad int32

	presenting bool
	origin     geom.Vec3
	yaw, pitch float32
}

// NewController returns an emulated controller driven by gamepad pad.
func NewController(pad int32) *Controller {
	return &Controller{Pad: pad, pitch: -0.45}
}

// Update follows the eye and reads the stick. Call once per frame.
func (c *Controller) Update(eye geom.Vec3) {
	if !rl.IsGamepadAvailable(c.Pad) {
		c.presenting = false
		return
	}
	if rl.IsGamepadButtonPressed(c.Pad, rl.GamepadButtonMiddle) {
		c.presenting = !c.presenting
	}
	c.origin = eye.Add(handOffset)
	x := rl.GetGamepadAxisMovement(c.Pad, rl.GamepadAxisLeftX)
	y := rl.GetGamepadAxisMovement(c.Pad, rl.GamepadAxisLeftY)
	if math32.Abs(x) > stickDeadZone {
		c.yaw -= x * stickSpeed
	}
	if math32.Abs(y) > stickDeadZone {
		c.pitch -= y * stickSpeed
		c.pitch = math32.Max(-maxPitch, math32.Min(maxPitch, c.pitch))
	}
}

// Presenting reports whether the emulated immersive session is active.
func (c *Controller) Presenting() bool {
	return c != nil && c.presenting
}

// TriggerDown reports whether the select trigger is held.
func (c *Controller) TriggerDown() bool {
	if !c.Presenting() {
		return false
	}
	return rl.IsGamepadButtonDown(c.Pad, rl.GamepadButtonRightTrigger2)
}

// Ray returns the pointing ray of controller i. Only controller 0 is emulated.
func (c *Controller) Ray(i int) (geom.Ray, bool) {
	if i != 0 || !c.Presenting() {
		return geom.Ray{}, false
	}
	dir := geom.V3(0, 0, -1).RotateX(c.pitch).RotateY(c.yaw)
	return geom.NewRay(c.origin, dir), true
}
