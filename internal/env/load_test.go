package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	vars, err := Parse(strings.NewReader(`
# comment
KEYBOARD_SHOW_FPS=true
export KEYBOARD_LAYOUT="layouts/de.yaml"
KEYBOARD_LOG='logs/a b.txt'
=novalue
broken line
EMPTY=
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := map[string]string{
		"KEYBOARD_SHOW_FPS": "true",
		"KEYBOARD_LAYOUT":   "layouts/de.yaml",
		"KEYBOARD_LOG":      "logs/a b.txt",
		"EMPTY":             "",
	}
	if len(vars) != len(want) {
		t.Fatalf("Parse() = %v, want %v", vars, want)
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("%s = %q, want %q", k, vars[k], v)
		}
	}
}

func TestLoadKeepsExistingEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("KB_TEST_A=file\nKB_TEST_B=file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("KB_TEST_A", "process")
	t.Setenv("KB_TEST_B", "")
	os.Unsetenv("KB_TEST_B")

	if _, err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("KB_TEST_A"); got != "process" {
		t.Errorf("KB_TEST_A = %q, file overrode the environment", got)
	}
	if got := os.Getenv("KB_TEST_B"); got != "file" {
		t.Errorf("KB_TEST_B = %q, want file", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	vars, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil || vars != nil {
		t.Errorf("Load(missing) = %v, %v", vars, err)
	}
}
