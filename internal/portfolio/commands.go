package portfolio

import (
	"math/rand/v2"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joeycumines/termfolio/internal/shell"
)

// Themes are the accepted theme names.
var Themes = []string{"dark", "light", "hacker", "synth"}

const (
	// SecondaryView is the executable that opens the room explorer.
	SecondaryView = ".hidden/room-explorer.exe"

	matrixRows = 10
	matrixCols = 40
)

// Option configures the command set.
type Option func(*commands)

// WithRand sets the random source of the matrix effect.
func WithRand(r *rand.Rand) Option {
	return func(c *commands) { c.rand = r }
}

type commands struct {
	catalog *Catalog
	rand    *rand.Rand
	reg     *shell.Registry
}

// Register adds the portfolio command set to reg.
func Register(reg *shell.Registry, catalog *Catalog, opts ...Option) {
	c := &commands{
		catalog: catalog,
		reg:     reg,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	reg.Register(shell.NewCommand("help", "Show available commands", "help", c.help))
	reg.Register(shell.NewCommand("whoami", "Learn about me", "whoami", c.whoami))
	reg.Register(shell.NewCommand("skills", "My tech stack", "skills", c.skills))
	reg.Register(shell.NewCommand("projects", "Portfolio list", "projects", c.projects))
	reg.Register(shell.NewCommand("contact", "Reach out", "contact", c.contact))
	reg.Register(shell.NewCommand("clear", "Clears terminal", "clear", c.clear))
	reg.Register(shell.NewCommand("theme", "Switch UI mode", "theme [name]", c.theme))
	reg.Register(shell.NewCommand("ls", "List projects", "ls projects/", c.ls))
	reg.Register(shell.NewCommand("cat", "View resume", "cat resume.txt", c.cat))
	reg.Register(shell.NewCommand("interactive-resume", "Visual resume", "interactive-resume", c.interactiveResume), "resume")
	reg.Register(shell.NewCommand("matrix", "Matrix animation", "matrix", c.matrix))
	reg.Register(shell.NewCommand("reboot", "Reload portfolio", "reboot", c.reboot))

	reg.Register(shell.NewHiddenCommand("sudo", "sudo [command]", c.sudo))
	reg.Register(shell.NewHiddenCommand("run", "run [file]", c.run), "./")
	reg.Register(shell.NewHiddenCommand("./"+SecondaryView, "./"+SecondaryView, c.launch), "./room-explorer.exe")
	reg.Register(shell.NewHiddenCommand("grep", "grep [pattern] [file]", c.grep))
	reg.Register(shell.NewHiddenCommand("find", "find [path] -name [pattern]", c.find))
	reg.Register(shell.NewHiddenCommand("file", "file [filename]", c.file))
}

func (c *commands) help([]string) shell.Result {
	var rows []shell.Row
	for _, cmd := range c.reg.Visible() {
		if cmd.Name() == "help" {
			continue
		}
		rows = append(rows, shell.Row{Key: cmd.Usage(), Value: cmd.Description()})
	}
	return shell.Table("Available commands:", rows...)
}

func (c *commands) whoami([]string) shell.Result {
	var lines []shell.Line
	for _, l := range strings.Split(strings.TrimRight(c.catalog.Profile.Avatar, "\n"), "\n") {
		if l != "" {
			lines = append(lines, shell.Line{Text: l, Tone: shell.ToneMuted})
		}
	}
	lines = append(lines, shell.Line{Text: c.catalog.Profile.Tagline, Tone: shell.ToneHighlight})
	for _, l := range c.catalog.Profile.Bio {
		lines = append(lines, shell.Line{Text: l})
	}
	return shell.Lines(lines...)
}

func (c *commands) skills([]string) shell.Result {
	groups := make([]shell.Group, 0, len(Categories))
	for _, category := range Categories {
		skills := c.catalog.SkillsIn(category)
		if len(skills) == 0 {
			continue
		}
		g := shell.Group{Title: titleCase(category)}
		for _, s := range skills {
			g.Items = append(g.Items, shell.Line{Text: s.Name, Tone: shell.ToneSuccess})
		}
		groups = append(groups, g)
	}
	return shell.Groups("Skills", groups...)
}

func (c *commands) projects(args []string) shell.Result {
	if len(args) == 0 {
		return c.projectCards()
	}
	return c.ls(args)
}

func (c *commands) projectCards() shell.Result {
	cards := make([]shell.Card, 0, len(c.catalog.Projects))
	for _, p := range c.catalog.Projects {
		card := shell.Card{
			Title:       p.Name,
			Description: p.Description,
			Tags:        p.Technologies,
		}
		if p.GitHub != "" {
			card.Links = append(card.Links, shell.Row{Key: "GitHub", Value: p.GitHub})
		}
		if p.Link != "" {
			card.Links = append(card.Links, shell.Row{Key: "Live Demo", Value: p.Link})
		}
		cards = append(cards, card)
	}
	return shell.Cards("Projects", cards...)
}

func (c *commands) contact([]string) shell.Result {
	rows := make([]shell.Row, 0, len(c.catalog.Contacts))
	for _, ct := range c.catalog.Contacts {
		rows = append(rows, shell.Row{Key: ct.Label, Value: ct.Value})
	}
	r := shell.Table("Contact", rows...)
	r.Widget = "contact"
	return r
}

func (c *commands) clear([]string) shell.Result {
	return shell.Empty().WithEffect(shell.ClearRequested())
}

func (c *commands) theme(args []string) shell.Result {
	if len(args) == 0 {
		return shell.Fail(shell.ErrUsage, "theme", "Usage: theme [%s]", strings.Join(Themes, "|"))
	}
	name := strings.ToLower(args[0])
	if !slices.Contains(Themes, name) {
		return shell.Fail(shell.ErrUsage, "theme", "Invalid theme. Available themes: %s", strings.Join(Themes, ", "))
	}
	return shell.Text(shell.ToneCommand, "Theme switched to "+name).WithEffect(shell.SetTheme(name))
}

func (c *commands) interactiveResume([]string) shell.Result {
	resume := c.catalog.Resume
	var groups []shell.Group

	if len(resume.Skills) > 0 {
		g := shell.Group{Title: "Skills"}
		for _, s := range resume.Skills {
			g.Items = append(g.Items, shell.Line{Text: s.Label + ": " + s.Values})
		}
		groups = append(groups, g)
	}
	for _, section := range []struct {
		title string
		items []ResumeItem
	}{
		{"Experience", resume.Experience},
		{"Education", resume.Education},
	} {
		if len(section.items) == 0 {
			continue
		}
		g := shell.Group{Title: section.title}
		for _, item := range section.items {
			g.Items = append(g.Items, shell.Line{Text: resumeHeading(item), Tone: shell.ToneHighlight})
			if item.Period != "" {
				g.Items = append(g.Items, shell.Line{Text: item.Period, Tone: shell.ToneMuted})
			}
			if item.Description != "" {
				g.Items = append(g.Items, shell.Line{Text: item.Description})
			}
		}
		groups = append(groups, g)
	}

	return shell.Widget("interactive-resume", c.catalog.Profile.Name, groups...)
}

// titleCase upper-cases the first letter of a category. Casers are not safe
// for concurrent use, so each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func resumeHeading(item ResumeItem) string {
	if item.Organization == "" {
		return item.Title
	}
	return item.Title + " @ " + item.Organization
}

func (c *commands) matrix([]string) shell.Result {
	lines := make([]shell.Line, 0, matrixRows+2)
	lines = append(lines, shell.Line{Text: "Initializing Matrix protocol...", Tone: shell.ToneSuccess})
	for range matrixRows {
		row := make([]byte, matrixCols)
		for i := range row {
			// printable ASCII, '!' through '~'
			row[i] = byte(33 + c.rand.IntN(94))
		}
		lines = append(lines, shell.Line{Text: string(row), Tone: shell.ToneSuccess})
	}
	lines = append(lines, shell.Line{Text: "Matrix initialized. Press any key to exit.", Tone: shell.ToneSuccess})

	r := shell.Lines(lines...)
	r.Kind = shell.KindWidget
	r.Widget = "matrix"
	return r
}

func (c *commands) reboot([]string) shell.Result {
	return shell.Text(shell.ToneWarning, "Rebooting system...").WithEffect(shell.RebootRequested())
}

var tux = []string{
	"   .--.",
	"  |o_o |",
	"  |:_/ |",
	" //   \\ \\",
	"(|     | )",
	"/'\\_   _/`\\",
	"\\___)=(___/",
}

func (c *commands) sudo(args []string) shell.Result {
	if strings.Join(args, " ") == "rm -rf /" {
		lines := make([]shell.Line, 0, len(tux)+1)
		for _, l := range tux {
			lines = append(lines, shell.Line{Text: l, Tone: shell.ToneDanger})
		}
		lines = append(lines, shell.Line{Text: "Just kidding! That would be a terrible idea.", Tone: shell.ToneDanger})
		return shell.Fail(shell.ErrPermissionDenied, "sudo", "WARNING: SYSTEM DESTRUCTION INITIATED").WithLines(lines...)
	}
	return shell.Fail(shell.ErrPermissionDenied, "sudo", "Permission denied: Are you sure you're a sudoer?")
}

func (c *commands) run(args []string) shell.Result {
	if len(args) == 0 {
		return shell.Fail(shell.ErrUsage, "run", "Usage: run [file]")
	}
	switch strings.ToLower(args[0]) {
	case SecondaryView, "room-explorer.exe", "./" + SecondaryView, "./room-explorer.exe":
		return c.launch(nil)
	}
	return shell.Fail(shell.ErrNotFound, args[0], "Error: Cannot execute %s. File not found or permission denied.", args[0])
}

func (c *commands) launch([]string) shell.Result {
	return shell.Lines(
		shell.Line{Text: "Launching Room Explorer...", Tone: shell.ToneSuccess},
		shell.Line{Text: "Use mouse to look around and scroll to zoom in/out.", Tone: shell.ToneWarning},
	).WithEffect(shell.LaunchSecondaryView())
}
