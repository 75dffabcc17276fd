package keyboard

import "unicode/utf8"

// Buffer is the typed text. It is only changed through Set, Append and Backspace, and every
// change replaces the whole value, so observers always see a complete string.
type Buffer struct {
	content   string
	observers []func(string)
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Content returns the current text.
func (b *Buffer) Content() string {
	return b.content
}

// OnChange registers fn to be called with the new content after every change.
func (b *Buffer) OnChange(fn func(string)) {
	if fn != nil {
		b.observers = append(b.observers, fn)
	}
}

// Set replaces the content and notifies observers.
func (b *Buffer) Set(content string) {
	b.content = content
	for _, fn := range b.observers {
		fn(content)
	}
}

// Append adds s to the end of the content.
func (b *Buffer) Append(s string) {
	if s == "" {
		return
	}
	b.Set(b.content + s)
}

// Backspace removes the last character (rune). Returns false, and changes nothing, on an empty buffer.
func (b *Buffer) Backspace() bool {
	if b.content == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(b.content)
	b.Set(b.content[:len(b.content)-size])
	return true
}
