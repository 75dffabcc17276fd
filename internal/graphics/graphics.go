package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background is the clear colour behind the room.
var Background = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}

// Window describes the host window.
type Window struct {
	Title  string
	Width  int32
	Height int32
	FPS    int32
}

// DefaultWindow is a resizable 1280x720 window at 60 FPS.
func DefaultWindow() Window {
	return Window{Title: "spatial keyboard", Width: 1280, Height: 720, FPS: 60}
}

// Run opens the window and calls frame once per display refresh between BeginDrawing and
// EndDrawing, after clearing to Background. The window is resizable; the camera projection
// follows the current size every frame. Returns when the window is closed.
func Run(w Window, frame func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // close via the window button
	if w.FPS > 0 {
		rl.SetTargetFPS(w.FPS)
	}

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(Background)
		frame()
		rl.EndDrawing()
	}
}

// Size returns the current drawable size in pixels.
func Size() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}
