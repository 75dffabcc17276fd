package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadMissingIsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", p)
	}
}

func TestSaveLoadKeepsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "keyboard.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"show_fps": true, "layout_path": "de.yaml"}`), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.ShowFPS || p.LayoutPath != "de.yaml" {
		t.Errorf("Load() = %+v", p)
	}
	if p.LogPath != Default().LogPath || p.WrapColumns != 40 {
		t.Errorf("defaults lost for unset fields: %+v", p)
	}

	p.XREmulation = true
	out := filepath.Join(t.TempDir(), "nested", "out.json")
	if err := Save(out, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := Load(out)
	if err != nil || again != p {
		t.Errorf("Load(Save(p)) = %+v, %v; want %+v", again, err, p)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	_ = os.WriteFile(path, []byte("{not json"), 0644)
	p, err := Load(path)
	if err == nil {
		t.Error("expected an error for invalid JSON")
	}
	if p != Default() {
		t.Errorf("invalid file gave %+v, want defaults", p)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvShowFPS:     "1",
		EnvXREmulation: "maybe",
		EnvLayout:      "layouts/fr.yaml",
		EnvLog:         "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	p, err := ApplyEnv(Default(), lookup)
	if err == nil {
		t.Error("malformed boolean not reported")
	}
	if !p.ShowFPS || p.XREmulation || p.LayoutPath != "layouts/fr.yaml" {
		t.Errorf("ApplyEnv() = %+v", p)
	}
	if p.LogPath != Default().LogPath {
		t.Errorf("empty variable overrode log path: %q", p.LogPath)
	}
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	fs := pflag.NewFlagSet("keyboard", pflag.ContinueOnError)
	f := NewFlags(fs)
	if err := fs.Parse([]string{"--show-target", "--layout=fr.yaml", "--config", "other.json"}); err != nil {
		t.Fatal(err)
	}
	base := Default()
	base.ShowFPS = true
	base.StylePath = "keep.css"
	p := f.Apply(base)
	if !p.ShowTarget || p.LayoutPath != "fr.yaml" {
		t.Errorf("set flags not applied: %+v", p)
	}
	if !p.ShowFPS || p.StylePath != "keep.css" {
		t.Errorf("unset flags overrode prefs: %+v", p)
	}
	if f.ConfigPath != "other.json" || f.EnvPath != ".env" {
		t.Errorf("paths = %q, %q", f.ConfigPath, f.EnvPath)
	}
}
