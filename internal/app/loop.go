package app

import (
	"spatial-keyboard/internal/picking"
	"spatial-keyboard/internal/pointer"
	"spatial-keyboard/internal/ui"
)

// LayoutRefresher recomputes layout-dependent geometry (text wrapping, sizes) before picking.
type LayoutRefresher interface {
	Refresh()
}

// Controls updates the camera or view from user input.
type Controls interface {
	Update()
}

// Renderer draws the session's scene.
type Renderer interface {
	Render(s *Session)
}

// Loop groups the per-frame collaborators supplied by the host. Nil members are skipped.
type Loop struct {
	Layout   LayoutRefresher
	Controls Controls
	Renderer Renderer
	Rays     pointer.RaySource
}

// Frame runs one frame: refresh layout, update controls, render, then pick and update
// element states. Rendering comes before picking, so state changes become visible one frame later.
func (s *Session) Frame(raw pointer.Raw) {
	s.frames++
	if s.Loop.Layout != nil {
		s.Loop.Layout.Refresh()
	}
	if s.Loop.Controls != nil {
		s.Loop.Controls.Update()
	}
	if s.Loop.Renderer != nil {
		s.Loop.Renderer.Render(s)
	}
	s.Step(raw)
}

// Step is the input half of Frame: pointer adapter, picking and the state update pass.
func (s *Session) Step(raw pointer.Raw) {
	snap := s.Input.Next(raw, s.Loop.Rays)
	var hit picking.Intersection
	ok := false
	if snap.HasRay {
		hit, ok = picking.Pick(snap.Ray, s.Candidates, s.Graph, s.Graph, s.Log)
	}
	ui.Update(hit, ok, snap, s.Candidates.Items(), s.Log)
	s.last, s.lastOK, s.lastSnap = hit, ok, snap
}
