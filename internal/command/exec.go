package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/joeycumines/termfolio/internal/shell"
)

// ExitError reports a failure whose message was already written. main exits
// with Code without printing anything else.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExecCommand runs one shell command and prints its plain-text output.
type ExecCommand struct {
	*BaseCommand
	env *Env
}

// NewExecCommand creates a new exec command.
func NewExecCommand(env *Env) *ExecCommand {
	return &ExecCommand{
		BaseCommand: NewBaseCommand(
			"exec",
			"Run a single portfolio command and print its output",
			"exec <command> [args...]",
		),
		env: env,
	}
}

// Execute runs the command line formed by args. Failed commands print to
// stderr and exit 1.
func (c *ExecCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		_, _ = fmt.Fprintf(stderr, "Usage: termfolio %s\n", c.Usage())
		return fmt.Errorf("no command given")
	}
	out := c.env.NewSession().Submit(strings.Join(args, " "))
	text := shell.PlainText(out.Entry.Output)
	if out.Entry.Output.IsError() {
		_, _ = fmt.Fprint(stderr, text)
		return &ExitError{Code: 1}
	}
	_, _ = fmt.Fprint(stdout, text)
	return nil
}
