package shell

import (
	"time"

	"github.com/rivo/uniseg"
)

// DefaultBlinkInterval is the caret blink period.
const DefaultBlinkInterval = 500 * time.Millisecond

// Key is a key the line editor intercepts instead of treating as text.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyTab
	KeyEnter
)

// Navigator is the history the editor recalls from on Up and Down.
type Navigator interface {
	Navigate(dir Direction) string
}

// LineEditor is the live input buffer. Up and Down replace the whole
// buffer from history rather than moving the caret; Tab is reserved.
type LineEditor struct {
	buf          []rune
	pos          int
	caretVisible bool
}

// NewLineEditor creates an empty editor with a visible caret.
func NewLineEditor() *LineEditor {
	return &LineEditor{caretVisible: true}
}

// Text returns the buffer contents.
func (e *LineEditor) Text() string {
	return string(e.buf)
}

// SetText replaces the buffer and moves the caret to the end.
func (e *LineEditor) SetText(s string) {
	e.buf = []rune(s)
	e.pos = len(e.buf)
}

// Clear empties the buffer.
func (e *LineEditor) Clear() {
	e.buf = e.buf[:0]
	e.pos = 0
}

// Insert types s at the caret.
func (e *LineEditor) Insert(s string) {
	r := []rune(s)
	if len(r) == 0 {
		return
	}
	out := make([]rune, 0, len(e.buf)+len(r))
	out = append(out, e.buf[:e.pos]...)
	out = append(out, r...)
	out = append(out, e.buf[e.pos:]...)
	e.buf = out
	e.pos += len(r)
}

// Backspace deletes the rune before the caret.
func (e *LineEditor) Backspace() {
	if e.pos == 0 {
		return
	}
	e.buf = append(e.buf[:e.pos-1], e.buf[e.pos:]...)
	e.pos--
}

// Delete deletes the rune under the caret.
func (e *LineEditor) Delete() {
	if e.pos >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.pos], e.buf[e.pos+1:]...)
}

// Left moves the caret one rune left.
func (e *LineEditor) Left() {
	if e.pos > 0 {
		e.pos--
	}
}

// Right moves the caret one rune right.
func (e *LineEditor) Right() {
	if e.pos < len(e.buf) {
		e.pos++
	}
}

// Home moves the caret to the start of the line.
func (e *LineEditor) Home() { e.pos = 0 }

// End moves the caret to the end of the line.
func (e *LineEditor) End() { e.pos = len(e.buf) }

// Pos returns the caret position in runes.
func (e *LineEditor) Pos() int {
	return e.pos
}

// CaretColumn returns the display column of the caret, accounting for wide
// and combining characters.
func (e *LineEditor) CaretColumn() int {
	return uniseg.StringWidth(string(e.buf[:e.pos]))
}

// HandleKey applies an intercepted key. Up only replaces the buffer when
// history had something to recall, so an empty history leaves typed text
// alone; Down always replaces it. It reports whether the key was Enter, in
// which case the caller should Submit.
func (e *LineEditor) HandleKey(k Key, history Navigator) (submit bool) {
	switch k {
	case KeyUp:
		if prev := history.Navigate(Up); prev != "" {
			e.SetText(prev)
		}
	case KeyDown:
		e.SetText(history.Navigate(Down))
	case KeyTab:
		// completion is not implemented
	case KeyEnter:
		return true
	}
	return false
}

// Submit returns the buffer and clears it. Empty lines are submitted too.
func (e *LineEditor) Submit() string {
	s := e.Text()
	e.Clear()
	return s
}

// ToggleCaret flips caret visibility; hosts call it every blink interval.
func (e *LineEditor) ToggleCaret() {
	e.caretVisible = !e.caretVisible
}

// CaretVisible reports whether the caret is currently drawn.
func (e *LineEditor) CaretVisible() bool {
	return e.caretVisible
}
