package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
}

func TestLevelsAndStamp(t *testing.T) {
	l := New("")
	l.Now = fixedClock
	l.Infof("picked %s", "h")
	l.Warnf("unknown command %q", "tab")

	got := l.Lines()
	want := []string{
		`[2026-10-19 09:30:00] INFO picked h`,
		`[2026-10-19 09:30:00] WARN unknown command "tab"`,
	}
	if len(got) != len(want) {
		t.Fatalf("Lines() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFileAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kb.txt")
	l := New(path)
	l.Now = fixedClock
	l.Errorf("boom")
	l.Log("plain")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if n := strings.Count(string(data), "\n"); n != 2 {
		t.Errorf("file has %d lines, want 2", n)
	}
	if !strings.Contains(string(data), "ERROR boom") {
		t.Errorf("file missing error line: %q", data)
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	var l *Logger
	l.Warnf("ignored %d", 1)
	if l.Lines() != nil {
		t.Error("nil logger returned lines")
	}
}
