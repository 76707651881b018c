package shell

import (
	"fmt"
	"strings"
)

// Registry maps verbs to commands. It is filled once at startup and only
// read afterwards.
type Registry struct {
	commands map[string]Command
	// order keeps primary names in registration order for help output.
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command under its name and any aliases. Names are
// lowercased. Registering a name twice replaces the earlier command.
func (r *Registry) Register(cmd Command, aliases ...string) {
	name := strings.ToLower(cmd.Name())
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
	for _, alias := range aliases {
		r.commands[strings.ToLower(alias)] = cmd
	}
}

// Get returns the command registered under name.
func (r *Registry) Get(name string) (Command, error) {
	if cmd, exists := r.commands[strings.ToLower(name)]; exists {
		return cmd, nil
	}
	return nil, fmt.Errorf("command not found: %s", name)
}

// Has reports whether name resolves to a command.
func (r *Registry) Has(name string) bool {
	_, exists := r.commands[strings.ToLower(name)]
	return exists
}

// List returns every primary command name in registration order.
func (r *Registry) List() []string {
	return append([]string(nil), r.order...)
}

// Visible returns the commands help should list, in registration order.
func (r *Registry) Visible() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		if cmd := r.commands[name]; !cmd.Hidden() {
			out = append(out, cmd)
		}
	}
	return out
}
