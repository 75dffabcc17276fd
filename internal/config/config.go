package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
)

// DefaultPath is the prefs file, relative to the process working directory.
const DefaultPath = "config/keyboard.json"

// Prefs holds host preferences. Empty paths select the built-in layout and stylesheet.
type Prefs struct {
	ShowFPS     bool   `json:"show_fps"`
	ShowTarget  bool   `json:"show_target"`
	XREmulation bool   `json:"xr_emulation"`
	LayoutPath  string `json:"layout_path,omitempty"`
	StylePath   string `json:"style_path,omitempty"`
	FontPath    string `json:"font_path,omitempty"`
	LogPath     string `json:"log_path"`
	WrapColumns int    `json:"wrap_columns"`
}

// Default returns default preferences (overlays off, built-in layout, log to logs/keyboard.txt).
func Default() Prefs {
	return Prefs{
		ShowFPS:     false,
		ShowTarget:  false,
		XREmulation: false,
		LogPath:     "logs/keyboard.txt",
		WrapColumns: 40,
	}
}

// Load reads preferences from path. A missing file yields Default() and no error;
// an unreadable or invalid file yields Default() and the error so the host can log it.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if p.WrapColumns <= 0 {
		p.WrapColumns = Default().WrapColumns
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Environment variables read by ApplyEnv.
const (
	EnvShowFPS     = "KEYBOARD_SHOW_FPS"
	EnvShowTarget  = "KEYBOARD_SHOW_TARGET"
	EnvXREmulation = "KEYBOARD_XR_EMULATION"
	EnvLayout      = "KEYBOARD_LAYOUT"
	EnvStyle       = "KEYBOARD_STYLE"
	EnvFont        = "KEYBOARD_FONT"
	EnvLog         = "KEYBOARD_LOG"
)

// ApplyEnv overrides p with any KEYBOARD_* variables set in the environment (lookup is
// os.LookupEnv in production). Malformed booleans are reported and leave the field alone.
func ApplyEnv(p Prefs, lookup func(string) (string, bool)) (Prefs, error) {
	var firstErr error
	setBool := func(key string, dst *bool) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("config: %s: %w", key, err)
			}
			return
		}
		*dst = b
	}
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	setBool(EnvShowFPS, &p.ShowFPS)
	setBool(EnvShowTarget, &p.ShowTarget)
	setBool(EnvXREmulation, &p.XREmulation)
	setString(EnvLayout, &p.LayoutPath)
	setString(EnvStyle, &p.StylePath)
	setString(EnvFont, &p.FontPath)
	setString(EnvLog, &p.LogPath)
	return p, firstErr
}

// Flags holds the command-line overrides. Only flags the user actually set override Prefs.
type Flags struct {
	fs          *pflag.FlagSet
	ConfigPath  string
	EnvPath     string
	showFPS     bool
	showTarget  bool
	xrEmulation bool
	layout      string
	style       string
	font        string
	logPath     string
}

// NewFlags registers the keyboard flags on fs.
func NewFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", DefaultPath, "preferences file (JSON)")
	fs.StringVar(&f.EnvPath, "env", ".env", "dotenv file read before the environment overrides")
	fs.BoolVar(&f.showFPS, "show-fps", false, "draw the FPS counter")
	fs.BoolVar(&f.showTarget, "show-target", false, "draw the current pick target")
	fs.BoolVar(&f.xrEmulation, "xr-emulation", false, "emulate a VR controller with gamepad 0")
	fs.StringVar(&f.layout, "layout", "", "keyboard layout file (YAML); empty uses the built-in layout")
	fs.StringVar(&f.style, "style", "", "state stylesheet (CSS); empty uses the built-in stylesheet")
	fs.StringVar(&f.font, "font", "", "HUD font file or family name under assets/fonts")
	fs.StringVar(&f.logPath, "log", "", "log file; empty keeps the configured path")
	return f
}

// Apply overrides p with every flag that was set on the command line.
func (f *Flags) Apply(p Prefs) Prefs {
	changed := f.fs.Changed
	if changed("show-fps") {
		p.ShowFPS = f.showFPS
	}
	if changed("show-target") {
		p.ShowTarget = f.showTarget
	}
	if changed("xr-emulation") {
		p.XREmulation = f.xrEmulation
	}
	if changed("layout") {
		p.LayoutPath = f.layout
	}
	if changed("style") {
		p.StylePath = f.style
	}
	if changed("font") {
		p.FontPath = f.font
	}
	if changed("log") && f.logPath != "" {
		p.LogPath = f.logPath
	}
	return p
}
