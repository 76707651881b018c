package termui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/joeycumines/termfolio/internal/shell"
)

// Renderer turns log entries into styled text for one theme and width.
type Renderer struct {
	theme         Theme
	width         int
	markdownStyle string
	markdown      *glamour.TermRenderer
}

// NewRenderer creates a renderer. An empty markdownStyle uses the theme's.
func NewRenderer(theme Theme, width int, markdownStyle string) *Renderer {
	return &Renderer{theme: theme, width: max(width, 20), markdownStyle: markdownStyle}
}

func (r *Renderer) markdownRenderer() (*glamour.TermRenderer, error) {
	if r.markdown != nil {
		return r.markdown, nil
	}
	style := r.markdownStyle
	if style == "" {
		style = r.theme.MarkdownStyle
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(r.width-4),
	)
	if err != nil {
		return nil, err
	}
	r.markdown = md
	return md, nil
}

// Entry renders one log entry with its prompt line.
func (r *Renderer) Entry(prompt string, e shell.LogEntry) string {
	body := r.Result(e.Output)
	if e.Command == "" && e.Output.Kind != shell.KindEmpty {
		return body
	}
	line := lipgloss.NewStyle().Foreground(r.theme.Prompt).Bold(true).Render(prompt) + " " +
		lipgloss.NewStyle().Foreground(r.theme.Text).Render(e.Command)
	if body == "" {
		return line
	}
	return line + "\n" + body
}

// Result renders a command result.
func (r *Renderer) Result(res shell.Result) string {
	switch res.Kind {
	case shell.KindEmpty:
		return ""
	case shell.KindText:
		return r.lines(res.Lines)
	case shell.KindList:
		return r.join(r.title(res.Title), r.list(res.Lines))
	case shell.KindGroups:
		return r.join(r.title(res.Title), r.groups(res.Groups))
	case shell.KindCards:
		return r.join(r.title(res.Title), r.cards(res.Cards))
	case shell.KindTable:
		return r.box(r.join(r.title(res.Title), r.table(res.Rows)))
	case shell.KindMarkdown:
		return r.markdownDoc(res)
	case shell.KindWidget:
		return r.widget(res)
	case shell.KindError:
		msg := ""
		if res.Err != nil {
			msg = r.theme.Tone(shell.ToneDanger).Render(res.Err.Message)
		}
		return r.join(msg, r.lines(res.Lines))
	default:
		return shell.PlainText(res)
	}
}

func (r *Renderer) join(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) title(s string) string {
	if s == "" {
		return ""
	}
	return r.theme.Tone(shell.ToneHighlight).Render(s)
}

func (r *Renderer) lines(lines []shell.Line) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, r.theme.Tone(l.Tone).Render(l.Text))
	}
	return strings.Join(out, "\n")
}

// list lays items out in as many columns as fit the width.
func (r *Renderer) list(items []shell.Line) string {
	if len(items) == 0 {
		return ""
	}
	colWidth := 0
	for _, it := range items {
		colWidth = max(colWidth, lipgloss.Width(it.Text))
	}
	colWidth += 4
	cols := min(max(r.width/colWidth, 1), 3)

	var rows []string
	for i := 0; i < len(items); i += cols {
		cells := make([]string, 0, cols)
		for _, it := range items[i:min(i+cols, len(items))] {
			cells = append(cells, r.theme.Tone(it.Tone).Width(colWidth).Render(it.Text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) groups(groups []shell.Group) string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		heading := r.theme.Tone(shell.ToneWarning).Bold(true).Render(g.Title)
		out = append(out, r.join(heading, r.list(g.Items)))
	}
	return strings.Join(out, "\n\n")
}

func (r *Renderer) box(s string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.Border).
		Padding(0, 1).
		Render(s)
}

func (r *Renderer) cards(cards []shell.Card) string {
	tag := lipgloss.NewStyle().Foreground(r.theme.ButtonFg).Background(r.theme.Button).Padding(0, 1)
	width := min(r.width-2, 72)

	out := make([]string, 0, len(cards))
	for _, c := range cards {
		parts := []string{
			r.theme.Tone(shell.ToneSuccess).Bold(true).Render(c.Title),
			r.theme.Tone(shell.ToneNormal).Width(width - 4).Render(c.Description),
		}
		if len(c.Tags) > 0 {
			tags := make([]string, 0, len(c.Tags))
			for _, t := range c.Tags {
				tags = append(tags, tag.Render(t))
			}
			parts = append(parts, strings.Join(tags, " "))
		}
		for _, l := range c.Links {
			parts = append(parts, r.theme.Tone(shell.ToneMuted).Render(l.Key+": ")+r.theme.Tone(shell.ToneCommand).Render(l.Value))
		}
		out = append(out, r.box(lipgloss.NewStyle().Width(width-4).Render(r.join(parts...))))
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) table(rows []shell.Row) string {
	keyWidth := 0
	for _, row := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(row.Key))
	}
	key := r.theme.Tone(shell.ToneCommand).Width(keyWidth + 2)
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, key.Render(row.Key)+r.theme.Tone(shell.ToneNormal).Render(row.Value))
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) markdownDoc(res shell.Result) string {
	md, err := r.markdownRenderer()
	if err == nil {
		var out string
		if out, err = md.Render(res.Markdown); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	// fall back to the source
	return r.theme.Tone(shell.ToneNormal).Render(res.Markdown)
}

func (r *Renderer) widget(res shell.Result) string {
	switch res.Widget {
	case "interactive-resume":
		sections := make([]string, 0, len(res.Groups))
		for _, g := range res.Groups {
			sections = append(sections, r.box(r.join(
				r.theme.Tone(shell.ToneHighlight).Render(g.Title),
				r.lines(g.Items),
			)))
		}
		return r.join(r.title(res.Title), strings.Join(sections, "\n"))
	case "matrix":
		return r.lines(res.Lines)
	default:
		return r.join(r.title(res.Title), r.lines(res.Lines), r.groups(res.Groups))
	}
}

// QuickActionBar renders the buttons, each wrapped by mark so the model can
// hit-test clicks.
func (r *Renderer) QuickActionBar(actions []shell.QuickAction, mark func(i int, s string) string) string {
	button := lipgloss.NewStyle().
		Foreground(r.theme.ButtonFg).
		Background(r.theme.Button).
		Padding(0, 1).
		MarginRight(1)
	home := button.Foreground(r.theme.Highlight)

	var (
		rows []string
		row  []string
		used int
	)
	for i, a := range actions {
		style := button
		if a.IsHome() {
			style = home
		}
		label := a.Label
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, a.Label)
		}
		cell := mark(i, style.Render(label))
		w := lipgloss.Width(cell)
		if len(row) > 0 && used+w > r.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, cell)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
