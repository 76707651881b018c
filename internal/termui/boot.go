package termui

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	biosLines = []string{
		"BIOS v3.14.15",
		"Initializing system...",
		"Loading kernel...",
		"Mounting file systems...",
		"Starting network services...",
		"Launching terminal interface...",
	}
	hardwareLines = []string{
		"CPU: Quantum Core i9 @ 5.2GHz",
		"RAM: 64GB DDR5 Cybernetic Memory",
		"GPU: NeoForce RTX 9090 Ti",
		"STORAGE: 2TB NVMe Quantum Drive",
	}
	biosText = []rune(strings.Join(biosLines, "\n"))
)

const (
	bootTypeDelay = 15 * time.Millisecond
	bootStepDelay = 150 * time.Millisecond
	bootSettle    = 500 * time.Millisecond
	bootMaxStep   = 10
	bootBarWidth  = 60
)

type (
	bootTypeMsg struct{ gen int }
	bootStepMsg struct{ gen int }
	bootDoneMsg struct{ gen int }
)

// bootSequence is the animated start-up screen shown before the terminal.
// Ticks carry the generation that scheduled them so a skipped or restarted
// sequence ignores the old ones.
type bootSequence struct {
	gen     int
	active  bool
	typed   int
	percent int
	bar     progress.Model
}

// resetBoot starts a new boot generation. The caller schedules bootTicks.
func (m *Model) resetBoot() {
	m.boot = bootSequence{
		gen:    m.boot.gen + 1,
		active: true,
		bar: progress.New(
			progress.WithSolidFill(string(m.theme.Success)),
			progress.WithWidth(bootBarWidth),
		),
	}
}

func (m *Model) bootTicks() tea.Cmd {
	return tea.Batch(m.typeTick(), m.stepTick())
}

func (m *Model) typeTick() tea.Cmd {
	gen := m.boot.gen
	return tea.Tick(bootTypeDelay, func(time.Time) tea.Msg { return bootTypeMsg{gen: gen} })
}

func (m *Model) stepTick() tea.Cmd {
	gen := m.boot.gen
	return tea.Tick(bootStepDelay, func(time.Time) tea.Msg { return bootStepMsg{gen: gen} })
}

func (m *Model) bootCurrent(gen int) bool {
	return m.boot.active && gen == m.boot.gen
}

func (m *Model) updateBoot(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case bootTypeMsg:
		if !m.bootCurrent(msg.gen) || m.boot.typed >= len(biosText) {
			return nil
		}
		m.boot.typed++
		return m.typeTick()

	case bootStepMsg:
		if !m.bootCurrent(msg.gen) {
			return nil
		}
		m.boot.percent = min(m.boot.percent+rand.IntN(bootMaxStep)+1, 100)
		if m.boot.percent < 100 {
			return m.stepTick()
		}
		gen := m.boot.gen
		return tea.Tick(bootSettle, func(time.Time) tea.Msg { return bootDoneMsg{gen: gen} })

	case bootDoneMsg:
		if m.bootCurrent(msg.gen) {
			m.finishBoot()
		}
	}
	return nil
}

func (m *Model) finishBoot() {
	m.boot.active = false
	m.refresh()
	m.viewport.GotoBottom()
}

func (m *Model) bootView() string {
	typed := string(biosText[:m.boot.typed])
	if m.boot.typed < len(biosText) {
		typed += "█"
	}
	lines := strings.Split(typed, "\n")
	for len(lines) < len(biosLines) {
		lines = append(lines, "")
	}

	bar := m.boot.bar
	bar.Width = min(bootBarWidth, max(m.width-4, 10))

	text := lipgloss.NewStyle().Foreground(m.theme.Success)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	body := lipgloss.JoinVertical(lipgloss.Left,
		text.Render(strings.Join(lines, "\n")),
		"",
		muted.Render("System boot progress:"),
		bar.ViewAs(float64(m.boot.percent)/100),
		"",
		muted.Render(strings.Join(hardwareLines, "\n")),
		"",
		muted.Render("enter: skip"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
