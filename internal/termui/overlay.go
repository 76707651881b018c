package termui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var room = []string{
	`  _____________________________________  `,
	` |\                                   /| `,
	` | \      ____           _______     / | `,
	` |  \    |    |   __    |  ===  |   /  | `,
	` |   \   |____|  |  |   |_______|  /   | `,
	` |    |__________|__|_____________|    | `,
	` |    |   ___                     |    | `,
	` |    |  [___]   .---.    _||_    |    | `,
	` |    |  |   |  (  o  )  |____|   |    | `,
	` |   /    ~~~    '---'             \   | `,
	` |  /                               \  | `,
	` |_/_________________________________\_| `,
}

// roomExplorer renders the secondary view: a static room in place of the
// interactive scene, closed with esc.
func (m *Model) roomExplorer() string {
	t := m.theme
	body := strings.Join([]string{
		lipgloss.NewStyle().Foreground(t.Highlight).Bold(true).Render("ROOM EXPLORER"),
		"",
		lipgloss.NewStyle().Foreground(t.Success).Render(strings.Join(room, "\n")),
		"",
		lipgloss.NewStyle().Foreground(t.Muted).Render("esc: back to terminal"),
	}, "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
