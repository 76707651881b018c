package termui

import (
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// themeSaver runs theme writes one at a time, off the update loop. A write
// scheduled before a newer switch is dropped, so the saved theme is always
// the last one selected.
type themeSaver struct {
	save   func(name string) error
	mu     sync.Mutex
	latest atomic.Uint64
}

func newThemeSaver(save func(string) error) *themeSaver {
	if save == nil {
		return nil
	}
	return &themeSaver{save: save}
}

// cmd returns the command persisting name. It yields nil when a newer switch
// superseded it before it ran.
func (s *themeSaver) cmd(name string) tea.Cmd {
	if s == nil {
		return nil
	}
	seq := s.latest.Add(1)
	return func() tea.Msg {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.latest.Load() != seq {
			return nil
		}
		return themeSavedMsg{name: name, err: s.save(name)}
	}
}
