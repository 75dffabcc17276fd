package keyboard

import "testing"

func TestBufferObserversSeeWholeValues(t *testing.T) {
	b := NewBuffer()
	var seen []string
	b.OnChange(func(s string) { seen = append(seen, s) })

	b.Append("a")
	b.Append("b")
	b.Append("")
	b.Backspace()
	b.Set("reset")

	want := []string{"a", "ab", "a", "reset"}
	if len(seen) != len(want) {
		t.Fatalf("observer saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("change %d = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestBackspaceRunes(t *testing.T) {
	tests := []struct {
		in, want string
		changed  bool
	}{
		{"", "", false},
		{"a", "", true},
		{"héé", "hé", true},
		{"x✓", "x", true},
	}
	for _, tt := range tests {
		b := NewBuffer()
		b.Set(tt.in)
		if got := b.Backspace(); got != tt.changed {
			t.Errorf("Backspace(%q) = %v, want %v", tt.in, got, tt.changed)
		}
		if b.Content() != tt.want {
			t.Errorf("Backspace(%q) left %q, want %q", tt.in, b.Content(), tt.want)
		}
	}
}
