package app

import (
	"os"
	"path/filepath"
	"testing"

	"spatial-keyboard/internal/config"
	"spatial-keyboard/internal/logger"
	"spatial-keyboard/internal/ui"
)

func TestOptionsFromPrefs(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "tiny.yaml")
	style := filepath.Join(dir, "look.css")
	if err := os.WriteFile(layout, []byte("name: tiny\npanels:\n  - rows: [[a, b]]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(style, []byte(".key:hovered { background: #ff0000 }"), 0644); err != nil {
		t.Fatal(err)
	}

	p := config.Default()
	p.LayoutPath, p.StylePath, p.WrapColumns = layout, style, 12
	opts, err := OptionsFromPrefs(p, logger.New(""))
	if err != nil {
		t.Fatalf("OptionsFromPrefs: %v", err)
	}
	if opts.Layout == nil || opts.Layout.Name != "tiny" {
		t.Errorf("layout = %+v", opts.Layout)
	}
	if a := opts.Stylesheet.Attributes("key", ui.Hovered); !a.HasBackground || a.Background.R != 0xff {
		t.Errorf("hovered attributes = %+v", a)
	}
	if opts.Panel.Columns != 12 {
		t.Errorf("columns = %d", opts.Panel.Columns)
	}

	s, err := NewSession(opts)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(s.Keyboard.Keys()); n != 2 {
		t.Errorf("keys = %d, want 2", n)
	}
}

func TestOptionsFromPrefsErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		set  func(*config.Prefs)
	}{
		{"layout", func(p *config.Prefs) { p.LayoutPath = "/nonexistent/layout.yaml" }},
		{"style", func(p *config.Prefs) { p.StylePath = "/nonexistent/style.css" }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			p := config.Default()
			tt.set(&p)
			if _, err := OptionsFromPrefs(p, nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDefaultOptionsUseBuiltins(t *testing.T) {
	opts, err := OptionsFromPrefs(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Layout != nil || opts.Stylesheet != nil {
		t.Error("default prefs should leave the built-in layout and stylesheet")
	}
}
