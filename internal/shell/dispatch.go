package shell

import (
	"fmt"
	"log/slog"
)

// Dispatcher resolves parsed commands against a registry and invokes them.
// Dispatch never panics and never returns a Go error.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher. A nil logger discards.
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// Registry returns the registry the dispatcher reads from.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch runs one parsed command. An empty command yields an empty result.
func (d *Dispatcher) Dispatch(p ParsedCommand) Result {
	if p.Empty() {
		return Empty()
	}

	cmd, err := d.registry.Get(p.Name)
	if err != nil {
		return UnknownCommand(p.Name)
	}

	return d.invoke(cmd, p)
}

// DispatchLine parses and dispatches a raw line.
func (d *Dispatcher) DispatchLine(raw string) Result {
	return d.Dispatch(Parse(raw))
}

func (d *Dispatcher) invoke(cmd Command, p ParsedCommand) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("command panicked",
				slog.String("command", p.Name),
				slog.String("panic", fmt.Sprint(r)),
			)
			result = Fail(ErrUsage, p.Name, "Usage: %s", cmd.Usage())
		}
	}()
	// handlers get their own copy of the arguments
	return cmd.Execute(append([]string(nil), p.Args...))
}

// UnknownCommand is the standard result for an unregistered verb.
func UnknownCommand(name string) Result {
	return Fail(ErrUnknownCommand, name, "Command not found: %s. Type 'help' for available commands.", name)
}
