// Package termui is the full-screen terminal front end of the portfolio
// shell.
package termui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joeycumines/termfolio/internal/shell"
)

// Theme is a named palette.
type Theme struct {
	Name string
	// MarkdownStyle is the glamour standard style used for documents.
	MarkdownStyle string

	Text      lipgloss.Color
	Prompt    lipgloss.Color
	Command   lipgloss.Color
	Highlight lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color
	Directory lipgloss.Color
	Border    lipgloss.Color
	Button    lipgloss.Color
	ButtonFg  lipgloss.Color
}

var themes = map[string]Theme{
	"dark": {
		Name: "dark", MarkdownStyle: "dark",
		Text: "252", Prompt: "10", Command: "14", Highlight: "11",
		Success: "10", Warning: "11", Danger: "9", Muted: "244",
		Directory: "12", Border: "28", Button: "22", ButtonFg: "120",
	},
	"light": {
		Name: "light", MarkdownStyle: "light",
		Text: "235", Prompt: "28", Command: "25", Highlight: "130",
		Success: "28", Warning: "130", Danger: "124", Muted: "245",
		Directory: "25", Border: "250", Button: "254", ButtonFg: "236",
	},
	"hacker": {
		Name: "hacker", MarkdownStyle: "dark",
		Text: "46", Prompt: "46", Command: "118", Highlight: "154",
		Success: "46", Warning: "190", Danger: "196", Muted: "28",
		Directory: "82", Border: "34", Button: "22", ButtonFg: "46",
	},
	"synth": {
		Name: "synth", MarkdownStyle: "dracula",
		Text: "225", Prompt: "213", Command: "51", Highlight: "219",
		Success: "87", Warning: "221", Danger: "204", Muted: "97",
		Directory: "177", Border: "129", Button: "54", ButtonFg: "219",
	},
}

// DefaultTheme is used when a configured theme is unknown.
const DefaultTheme = "dark"

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// Tone returns the style of a result line.
func (t Theme) Tone(tone shell.Tone) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch tone {
	case shell.ToneHighlight:
		return s.Foreground(t.Highlight).Bold(true)
	case shell.ToneCommand:
		return s.Foreground(t.Command)
	case shell.ToneSuccess:
		return s.Foreground(t.Success)
	case shell.ToneWarning:
		return s.Foreground(t.Warning)
	case shell.ToneDanger:
		return s.Foreground(t.Danger)
	case shell.ToneMuted:
		return s.Foreground(t.Muted)
	case shell.ToneDirectory:
		return s.Foreground(t.Directory).Bold(true)
	default:
		return s.Foreground(t.Text)
	}
}
