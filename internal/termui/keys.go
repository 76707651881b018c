package termui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Submit      key.Binding
	HistoryUp   key.Binding
	HistoryDown key.Binding
	Complete    key.Binding
	Left        key.Binding
	Right       key.Binding
	Home        key.Binding
	End         key.Binding
	Backspace   key.Binding
	Delete      key.Binding
	ClearLine   key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	CloseView   key.Binding
	Quit        key.Binding
	SkipBoot    key.Binding
	QuickAction key.Binding
}

var keys = keyMap{
	Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	HistoryUp:   key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous command")),
	HistoryDown: key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next command")),
	Complete:    key.NewBinding(key.WithKeys("tab")),
	Left:        key.NewBinding(key.WithKeys("left", "ctrl+b")),
	Right:       key.NewBinding(key.WithKeys("right", "ctrl+f")),
	Home:        key.NewBinding(key.WithKeys("home", "ctrl+a")),
	End:         key.NewBinding(key.WithKeys("end", "ctrl+e")),
	Backspace:   key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
	Delete:      key.NewBinding(key.WithKeys("delete")),
	ClearLine:   key.NewBinding(key.WithKeys("ctrl+u")),
	PageUp:      key.NewBinding(key.WithKeys("pgup", "shift+up"), key.WithHelp("pgup", "scroll up")),
	PageDown:    key.NewBinding(key.WithKeys("pgdown", "shift+down"), key.WithHelp("pgdown", "scroll down")),
	CloseView:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	SkipBoot:    key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "skip")),
	QuickAction: key.NewBinding(
		key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
		key.WithHelp("alt+1…9", "quick action"),
	),
}
