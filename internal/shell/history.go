package shell

import (
	"strings"
)

// Direction is a history browsing direction.
type Direction int

const (
	// Up walks backward in time, toward the oldest entry.
	Up Direction = iota
	// Down walks forward in time, toward the live buffer.
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// History is the append-only log of submitted commands with a browsing
// cursor. Index -1 means "not browsing"; index k refers to the entry k
// positions back from the newest.
type History struct {
	entries []string
	index   int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{index: -1}
}

// Push records a submitted command. Blank submissions are not recorded.
// The cursor is reset either way.
func (h *History) Push(cmd string) {
	h.index = -1
	if strings.TrimSpace(cmd) == "" {
		return
	}
	h.entries = append(h.entries, cmd)
}

// Navigate moves the cursor and returns the text the line should show.
// Up stops at the oldest entry and keeps returning it; Down past the newest
// entry returns "" and keeps returning it.
func (h *History) Navigate(dir Direction) string {
	n := len(h.entries)
	if n == 0 {
		return ""
	}

	switch dir {
	case Up:
		if h.index < n-1 {
			h.index++
		}
	case Down:
		if h.index > -1 {
			h.index--
		}
	}

	if h.index < 0 {
		return ""
	}
	return h.entries[n-1-h.index]
}

// Reset stops browsing without touching the entries.
func (h *History) Reset() {
	h.index = -1
}

// Index returns the cursor, -1 when not browsing.
func (h *History) Index() int {
	return h.index
}

// Len returns the number of recorded commands.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded commands, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
