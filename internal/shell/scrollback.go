package shell

// LogEntry is one submitted command and its output.
type LogEntry struct {
	Command string
	Output  Result
}

// Scrollback is the append-only session log, oldest first.
type Scrollback struct {
	entries []LogEntry
}

// NewScrollback creates a log, optionally seeded with entries.
func NewScrollback(seed ...LogEntry) *Scrollback {
	return &Scrollback{entries: append([]LogEntry(nil), seed...)}
}

// Append adds an entry at the end.
func (s *Scrollback) Append(command string, output Result) {
	s.entries = append(s.entries, LogEntry{Command: command, Output: output})
}

// Clear removes every entry. Nothing is re-seeded.
func (s *Scrollback) Clear() {
	s.entries = nil
}

// Len returns the number of entries.
func (s *Scrollback) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the log, oldest first.
func (s *Scrollback) Entries() []LogEntry {
	return append([]LogEntry(nil), s.entries...)
}

// Last returns the newest entry.
func (s *Scrollback) Last() (LogEntry, bool) {
	if len(s.entries) == 0 {
		return LogEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}
