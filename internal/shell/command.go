package shell

// Command is a shell verb. Execute must be a pure function of its arguments
// and the read-only data the command was built with.
type Command interface {
	// Name returns the verb the command is registered under.
	Name() string

	// Description returns a short description of the command.
	Description() string

	// Usage returns the usage string for the command.
	Usage() string

	// Hidden reports whether help should leave the command out.
	Hidden() bool

	// Execute runs the command with the arguments following the verb.
	Execute(args []string) Result
}

// BaseCommand provides the descriptive half of Command for embedding.
type BaseCommand struct {
	name        string
	description string
	usage       string
	hidden      bool
}

// NewBaseCommand creates a new BaseCommand.
func NewBaseCommand(name, description, usage string) *BaseCommand {
	return &BaseCommand{
		name:        name,
		description: description,
		usage:       usage,
	}
}

// Name returns the command name.
func (c *BaseCommand) Name() string {
	return c.name
}

// Description returns the command description.
func (c *BaseCommand) Description() string {
	return c.description
}

// Usage returns the command usage.
func (c *BaseCommand) Usage() string {
	return c.usage
}

// Hidden reports whether the command is an easter egg.
func (c *BaseCommand) Hidden() bool {
	return c.hidden
}

// SetHidden marks the command as hidden from help.
func (c *BaseCommand) SetHidden(hidden bool) {
	c.hidden = hidden
}

// FuncCommand adapts a plain function to Command.
type FuncCommand struct {
	*BaseCommand
	fn func(args []string) Result
}

// NewCommand creates a command backed by fn.
func NewCommand(name, description, usage string, fn func(args []string) Result) *FuncCommand {
	return &FuncCommand{
		BaseCommand: NewBaseCommand(name, description, usage),
		fn:          fn,
	}
}

// NewHiddenCommand creates a command backed by fn that help does not list.
func NewHiddenCommand(name, usage string, fn func(args []string) Result) *FuncCommand {
	c := NewCommand(name, "", usage, fn)
	c.SetHidden(true)
	return c
}

// Execute calls the wrapped function.
func (c *FuncCommand) Execute(args []string) Result {
	return c.fn(args)
}
