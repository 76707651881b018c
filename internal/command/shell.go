package command

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/joeycumines/termfolio/internal/config"
	"github.com/joeycumines/termfolio/internal/shell"
	"github.com/joeycumines/termfolio/internal/termui"
)

// ShellCommand starts the interactive shell: the full-screen UI on a
// terminal, a line-mode REPL otherwise.
type ShellCommand struct {
	*BaseCommand
	env *Env

	lineMode bool
	theme    string
	noMouse  bool
	noBoot   bool

	// isTerminal is replaced in tests.
	isTerminal func(r io.Reader, w io.Writer) bool
}

// NewShellCommand creates a new shell command.
func NewShellCommand(env *Env) *ShellCommand {
	return &ShellCommand{
		BaseCommand: NewBaseCommand(
			"shell",
			"Start the interactive portfolio shell",
			"shell [options]",
		),
		env:        env,
		isTerminal: isTerminal,
	}
}

// SetupFlags configures the flags for the shell command.
func (c *ShellCommand) SetupFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.lineMode, "line", false, "Read commands line by line instead of starting the full-screen UI")
	fs.StringVar(&c.theme, "theme", "", "Theme for this run (dark, light, hacker, synth)")
	fs.BoolVar(&c.noMouse, "no-mouse", false, "Disable mouse support")
	fs.BoolVar(&c.noBoot, "no-boot", false, "Skip the boot sequence")
}

// Execute runs the shell until the user quits or input ends.
func (c *ShellCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
		return fmt.Errorf("unexpected arguments")
	}
	if c.lineMode || !c.isTerminal(c.env.stdin(), stdout) {
		return c.runLines(stdout)
	}
	return c.runUI()
}

func (c *ShellCommand) runUI() error {
	s := c.env.Settings
	logger := c.env.logger()
	if c.env.LogsToStderr {
		logger = slog.New(slog.DiscardHandler)
	}
	theme := s.Theme
	if c.theme != "" {
		theme = c.theme
	}

	opts := termui.Options{
		Session:       c.env.newSession(logger),
		NewSession:    func() *shell.Session { return c.env.newSession(logger) },
		Prompt:        c.env.prompt(),
		Theme:         theme,
		MarkdownStyle: s.MarkdownStyle,
		BlinkInterval: s.BlinkInterval,
		ScrollDelay:   s.ScrollDelay,
		Mouse:         s.Mouse && !c.noMouse,
		Boot:          s.Boot && !c.noBoot,
		Logger:        logger,
	}
	if path := c.env.ConfigPath; path != "" {
		opts.PersistTheme = func(name string) error {
			return config.SetKeyInFile(path, config.KeyTheme, name)
		}
	}
	return termui.Run(c.env.ctx(), opts)
}

// runLines is the REPL used when stdin or stdout is not a terminal.
func (c *ShellCommand) runLines(stdout io.Writer) error {
	ctx := c.env.ctx()
	prompt := c.env.prompt()
	session := c.env.NewSession()

	for _, e := range session.Entries() {
		_, _ = fmt.Fprint(stdout, shell.PlainText(e.Output))
	}

	scanner := bufio.NewScanner(c.env.stdin())
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		out := session.Submit(scanner.Text())
		_, _ = fmt.Fprint(stdout, shell.PlainEntry(prompt, out.Entry))
		for _, e := range out.Effects {
			if e.Kind == shell.EffectReboot {
				session = c.env.NewSession()
				for _, entry := range session.Entries() {
					_, _ = fmt.Fprint(stdout, shell.PlainText(entry.Output))
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func isTerminal(r io.Reader, w io.Writer) bool {
	in, ok := r.(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return false
	}
	out, ok := w.(*os.File)
	return ok && term.IsTerminal(int(out.Fd()))
}
