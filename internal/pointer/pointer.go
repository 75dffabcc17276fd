package pointer

import "spatial-keyboard/internal/geom"

// NDC is a screen position normalized to [-1, 1] on both axes, +Y up.
type NDC struct {
	X, Y float32
}

// FromScreen converts a pixel position to NDC for a surface of the given size.
func FromScreen(x, y, width, height float32) NDC {
	if width <= 0 || height <= 0 {
		return NDC{}
	}
	return NDC{X: x/width*2 - 1, Y: -(y/height)*2 + 1}
}

// ToScreen is the inverse of FromScreen.
func (p NDC) ToScreen(width, height float32) (x, y float32) {
	return (p.X + 1) / 2 * width, (1 - p.Y) / 2 * height
}

// Raw is the host's input state for one frame, polled once before the update pass.
type Raw struct {
	MouseMoved bool
	Mouse      NDC
	MouseDown  bool
	// MouseLeft is set when the cursor has left the tracking surface.
	MouseLeft bool

	TouchCount int
	Touch      NDC

	XRPresenting bool
	TriggerDown  bool
}

// Modality says which input produced a frame's ray.
type Modality int

const (
	None Modality = iota
	Pointer
	Controller
)

func (m Modality) String() string {
	switch m {
	case Pointer:
		return "pointer"
	case Controller:
		return "controller"
	default:
		return "none"
	}
}

// Snapshot is the normalized input for one frame: at most one ray plus the select and touch signals.
type Snapshot struct {
	Ray      geom.Ray
	HasRay   bool
	Modality Modality
	Select   bool
	Touch    bool
}

// RaySource builds rays from the camera or a tracked controller. Implemented by the renderer host.
type RaySource interface {
	FromCamera(p NDC) geom.Ray
	// FromController returns the pointing ray of controller i, false if its pose is unknown this frame.
	FromController(i int) (geom.Ray, bool)
}

// Adapter turns per-frame Raw input into a Snapshot. It remembers the 2D pointer between
// frames: a mouse move or touch start sets it, a touch end or leaving the surface clears it.
type Adapter struct {
	pointer  NDC
	valid    bool
	touching bool
}

// NewAdapter returns an adapter with no known pointer position.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Pointer returns the last known 2D pointer position and whether it is currently valid.
func (a *Adapter) Pointer() (NDC, bool) {
	return a.pointer, a.valid
}

// Next consumes one frame of raw input. The controller wins while an immersive session is
// presenting; otherwise the 2D pointer is used when it has valid coordinates.
func (a *Adapter) Next(raw Raw, rays RaySource) Snapshot {
	touching := raw.TouchCount > 0
	switch {
	case touching:
		a.pointer = raw.Touch
		a.valid = true
	case a.touching:
		// Touch just ended: the pointer is gone until the next mouse move.
		a.valid = false
	case raw.MouseLeft:
		a.valid = false
	case raw.MouseMoved:
		a.pointer = raw.Mouse
		a.valid = true
	}
	a.touching = touching

	snap := Snapshot{
		Select: raw.MouseDown || raw.TriggerDown,
		Touch:  touching,
	}
	if rays == nil {
		return snap
	}
	if raw.XRPresenting {
		if r, ok := rays.FromController(0); ok && r.Valid() {
			snap.Ray, snap.HasRay, snap.Modality = r, true, Controller
		}
		return snap
	}
	if a.valid {
		if r := rays.FromCamera(a.pointer); r.Valid() {
			snap.Ray, snap.HasRay, snap.Modality = r, true, Pointer
		}
	}
	return snap
}
