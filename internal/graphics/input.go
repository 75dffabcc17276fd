package graphics

import (
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spatial-keyboard/internal/pointer"
)

// Input polls raylib once per frame into a pointer.Raw.
type Input struct {
	// Touch enables touch polling. Desktop raylib reports the held mouse button as a touch
	// point, which would skip the hover phase, so it is only on for mobile targets.
	Touch bool
	XR    *Controller
}

// NewInput returns an input poller for the current platform.
func NewInput(xr *Controller) *Input {
	return &Input{Touch: runtime.GOOS == "android", XR: xr}
}

// Poll reads this frame's mouse, touch and controller state.
func (in *Input) Poll() pointer.Raw {
	w, h := Size()
	pos := rl.GetMousePosition()
	delta := rl.GetMouseDelta()

	raw := pointer.Raw{
		MouseMoved: delta.X != 0 || delta.Y != 0,
		Mouse:      pointer.FromScreen(pos.X, pos.Y, w, h),
		MouseDown:  rl.IsMouseButtonDown(rl.MouseButtonLeft),
		MouseLeft:  !rl.IsCursorOnScreen(),
	}
	if in.Touch {
		if n := int(rl.GetTouchPointCount()); n > 0 {
			t := rl.GetTouchPosition(0)
			raw.TouchCount = n
			raw.Touch = pointer.FromScreen(t.X, t.Y, w, h)
		}
	}
	if in.XR != nil {
		raw.XRPresenting = in.XR.Presenting()
		raw.TriggerDown = in.XR.TriggerDown()
	}
	return raw
}
