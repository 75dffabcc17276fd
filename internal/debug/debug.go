package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spatial-keyboard/internal/app"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws the optional HUD overlays. All overlays are off by default.
type Debug struct {
	ShowFPS    bool
	ShowTarget bool

	font        rl.Font // optional; zero texture ID = raylib default font
	frameCount  uint32
	lastFpsText string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the font used for the overlay.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Draw renders the enabled overlays: FPS at the top-right in green and, under it, the
// session's pick target and keyboard state. Call after Session.Frame, inside the drawing block.
func (d *Debug) Draw(s *app.Session) {
	d.frameCount++
	if d.ShowFPS && (d.lastFpsText == "" || d.frameCount%updateInterval == 0) {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}

	y := float32(padding)
	if d.ShowFPS {
		d.drawRight(d.lastFpsText, y, rl.Green)
		y += lineHeight
	}
	if d.ShowTarget && s != nil {
		d.drawRight(s.Status(), y, rl.RayWhite)
	}
}

func (d *Debug) drawRight(text string, y float32, c rl.Color) {
	if text == "" {
		return
	}
	screenW := float32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
		rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, y), fontSize, 1, c)
		return
	}
	w := float32(rl.MeasureText(text, fontSize))
	rl.DrawText(text, int32(screenW-w-padding), int32(y), fontSize, c)
}
