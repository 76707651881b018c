package termui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rivo/uniseg"

	"github.com/joeycumines/termfolio/internal/shell"
	"github.com/joeycumines/termfolio/internal/termui/scrollbar"
)

// Options configures a Model.
type Options struct {
	// Session is the shell the model drives. Required.
	Session *shell.Session
	// NewSession builds the replacement session on reboot. When nil, reboot
	// only clears the screen.
	NewSession func() *shell.Session
	// PersistTheme is called (off the update loop) after a theme switch.
	// Writes are serialized and only the latest switch is saved.
	PersistTheme func(name string) error

	Prompt        string
	Theme         string
	MarkdownStyle string
	BlinkInterval time.Duration
	ScrollDelay   time.Duration
	Mouse         bool
	Boot          bool
	Logger        *slog.Logger
}

type (
	blinkMsg  struct{}
	scrollMsg struct{ seq int }

	themeSavedMsg struct {
		name string
		err  error
	}
)

// Model is the bubbletea model of the terminal.
type Model struct {
	session    *shell.Session
	newSession func() *shell.Session
	saver      *themeSaver
	logger     *slog.Logger

	editor   *shell.LineEditor
	viewport viewport.Model
	zones    *zone.Manager
	theme    Theme
	renderer *Renderer

	prompt        string
	markdownStyle string
	blinkInterval time.Duration
	scrollDelay   time.Duration
	mouse         bool
	bootEnabled   bool

	boot          bootSequence
	width, height int
	ready         bool
	overlay       bool
	scrollSeq     int
	quitting      bool
}

var _ tea.Model = (*Model)(nil)

// New creates a model for the given options.
func New(opts Options) *Model {
	if opts.Session == nil {
		panic("termui: nil session")
	}
	theme, ok := ThemeByName(opts.Theme)
	if !ok {
		theme, _ = ThemeByName(DefaultTheme)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "guest@portfolio:~$"
	}
	blink := opts.BlinkInterval
	if blink <= 0 {
		blink = shell.DefaultBlinkInterval
	}
	m := &Model{
		session:       opts.Session,
		newSession:    opts.NewSession,
		saver:         newThemeSaver(opts.PersistTheme),
		logger:        logger,
		editor:        shell.NewLineEditor(),
		zones:         zone.New(),
		theme:         theme,
		prompt:        prompt,
		markdownStyle: opts.MarkdownStyle,
		blinkInterval: blink,
		scrollDelay:   opts.ScrollDelay,
		mouse:         opts.Mouse,
		bootEnabled:   opts.Boot,
		width:         80,
		height:        24,
	}
	m.viewport = viewport.New(m.width-1, m.height)
	m.renderer = NewRenderer(theme, m.width-1, m.markdownStyle)
	if m.bootEnabled {
		m.resetBoot()
	}
	return m
}

// Init starts the caret blink and, when enabled, the boot sequence.
func (m *Model) Init() tea.Cmd {
	if m.boot.active {
		return tea.Batch(m.blink(), m.bootTicks())
	}
	return m.blink()
}

// Close releases the zone manager.
func (m *Model) Close() {
	m.zones.Close()
}

// Session returns the session currently driven by the model.
func (m *Model) Session() *shell.Session { return m.session }

// Theme returns the active theme.
func (m *Model) Theme() Theme { return m.theme }

// Overlay reports whether the room explorer is open.
func (m *Model) Overlay() bool { return m.overlay }

// Booting reports whether the boot sequence is on screen.
func (m *Model) Booting() bool { return m.boot.active }

// Input returns the current line editor text.
func (m *Model) Input() string { return m.editor.Text() }

func (m *Model) blink() tea.Cmd {
	return tea.Tick(m.blinkInterval, func(time.Time) tea.Msg { return blinkMsg{} })
}

func (m *Model) scrollToBottom() tea.Cmd {
	m.scrollSeq++
	seq := m.scrollSeq
	if m.scrollDelay <= 0 {
		return func() tea.Msg { return scrollMsg{seq: seq} }
	}
	return tea.Tick(m.scrollDelay, func(time.Time) tea.Msg { return scrollMsg{seq: seq} })
}

// Update handles a message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.renderer = NewRenderer(m.theme, m.width-1, m.markdownStyle)
		m.ready = true
		m.refresh()
		m.viewport.GotoBottom()
		return m, nil

	case blinkMsg:
		m.editor.ToggleCaret()
		return m, m.blink()

	case scrollMsg:
		if msg.seq == m.scrollSeq {
			m.viewport.GotoBottom()
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Warn("failed to persist theme", "theme", msg.name, "error", msg.err)
		}
		return m, nil

	case bootTypeMsg, bootStepMsg, bootDoneMsg:
		return m, m.updateBoot(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.boot.active {
		if key.Matches(msg, keys.SkipBoot) {
			m.finishBoot()
		}
		return m, nil
	}
	if m.overlay {
		if key.Matches(msg, keys.CloseView) {
			m.overlay = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Submit):
		if m.editor.HandleKey(shell.KeyEnter, m.session) {
			return m, m.submit(m.editor.Submit())
		}
	case key.Matches(msg, keys.HistoryUp):
		m.editor.HandleKey(shell.KeyUp, m.session)
	case key.Matches(msg, keys.HistoryDown):
		m.editor.HandleKey(shell.KeyDown, m.session)
	case key.Matches(msg, keys.Complete):
		m.editor.HandleKey(shell.KeyTab, m.session)
	case key.Matches(msg, keys.QuickAction):
		s := msg.String()
		return m, m.activate(int(s[len(s)-1]-'1'))
	case key.Matches(msg, keys.Left):
		m.editor.Left()
	case key.Matches(msg, keys.Right):
		m.editor.Right()
	case key.Matches(msg, keys.Home):
		m.editor.Home()
	case key.Matches(msg, keys.End):
		m.editor.End()
	case key.Matches(msg, keys.Backspace):
		m.editor.Backspace()
	case key.Matches(msg, keys.Delete):
		m.editor.Delete()
	case key.Matches(msg, keys.ClearLine):
		m.editor.Clear()
	case key.Matches(msg, keys.PageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, keys.PageDown):
		m.viewport.HalfPageDown()
	case msg.Type == tea.KeySpace:
		m.editor.Insert(" ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.editor.Insert(string(msg.Runes))
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay || m.boot.active {
		return m, nil
	}
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		for i := range m.session.QuickActions() {
			if m.zones.Get(m.zoneID(i)).InBounds(msg) {
				return m, m.activate(i)
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// activate runs the i-th quick action. Home resets the context without
// running anything.
func (m *Model) activate(i int) tea.Cmd {
	actions := m.session.QuickActions()
	if i < 0 || i >= len(actions) {
		return nil
	}
	a := actions[i]
	if a.IsHome() {
		m.session.ResetContext()
		m.refresh()
		return nil
	}
	return m.submit(a.Command)
}

func (m *Model) submit(raw string) tea.Cmd {
	out := m.session.Submit(raw)
	var cmds []tea.Cmd
	for _, e := range out.Effects {
		switch e.Kind {
		case shell.EffectSetTheme:
			cmds = append(cmds, m.setTheme(e.Value))
		case shell.EffectLaunchSecondaryView:
			m.overlay = true
		case shell.EffectReboot:
			cmds = append(cmds, m.reboot())
		}
	}
	m.refresh()
	cmds = append(cmds, m.scrollToBottom())
	return tea.Batch(cmds...)
}

func (m *Model) setTheme(name string) tea.Cmd {
	theme, ok := ThemeByName(name)
	if !ok {
		m.logger.Warn("unknown theme", "theme", name)
		return nil
	}
	m.theme = theme
	m.renderer = NewRenderer(theme, m.width-1, m.markdownStyle)
	return m.saver.cmd(name)
}

func (m *Model) reboot() tea.Cmd {
	m.editor.Clear()
	m.overlay = false
	if m.newSession == nil {
		m.session.Clear()
		m.session.ResetContext()
	} else {
		m.logger.Info("rebooting", "session", m.session.ID())
		m.session = m.newSession()
	}
	if !m.bootEnabled {
		return nil
	}
	m.resetBoot()
	return m.bootTicks()
}

func (m *Model) zoneID(i int) string {
	return fmt.Sprintf("quick-action-%d", i)
}

func (m *Model) actionBar() string {
	return m.renderer.QuickActionBar(m.session.QuickActions(), func(i int, s string) string {
		return m.zones.Mark(m.zoneID(i), s)
	})
}

// refresh re-renders the log into the viewport and resizes it around the
// input line and the quick-action bar.
func (m *Model) refresh() {
	entries := m.session.Entries()
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, m.renderer.Entry(m.prompt, e))
	}
	barHeight := lipgloss.Height(m.actionBar())
	m.viewport.Width = max(m.width-1, 1)
	m.viewport.Height = max(m.height-barHeight-2, 1)
	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (m *Model) inputLine() string {
	text := []rune(m.editor.Text())
	pos := m.editor.Pos()
	before := string(text[:pos])
	under, after := " ", ""
	if pos < len(text) {
		// a caret covers one grapheme cluster
		rest := string(text[pos:])
		g := uniseg.NewGraphemes(rest)
		g.Next()
		under = g.Str()
		after = rest[len(under):]
	}
	caret := lipgloss.NewStyle().Foreground(m.theme.Text)
	if m.editor.CaretVisible() {
		caret = caret.Reverse(true)
	}
	plain := lipgloss.NewStyle().Foreground(m.theme.Text)
	return lipgloss.NewStyle().Foreground(m.theme.Prompt).Bold(true).Render(m.prompt) + " " +
		plain.Render(before) + caret.Render(under) + plain.Render(after)
}

// View renders the terminal.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	if m.boot.active {
		return m.bootView()
	}
	if m.overlay {
		return m.roomExplorer()
	}
	bar := scrollbar.New(
		scrollbar.WithViewport(m.viewport),
		scrollbar.WithStyles(
			lipgloss.NewStyle().Foreground(m.theme.Highlight),
			lipgloss.NewStyle().Foreground(m.theme.Border),
		),
	)
	main := lipgloss.JoinHorizontal(lipgloss.Top, m.viewport.View(), bar.View())
	rule := lipgloss.NewStyle().Foreground(m.theme.Border).Render(strings.Repeat("─", max(m.width, 1)))
	return m.zones.Scan(strings.Join([]string{
		main,
		m.inputLine(),
		rule,
		m.actionBar(),
	}, "\n"))
}
