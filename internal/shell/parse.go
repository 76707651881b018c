package shell

import (
	"strings"
)

// ParsedCommand is a raw command line split into a verb and its arguments.
type ParsedCommand struct {
	// Raw is the line exactly as submitted.
	Raw string
	// Name is the lowercased verb, or "" for an empty submission.
	Name string
	// Args preserves the case of the original input.
	Args []string
}

// Parse trims the raw line and splits it on runs of whitespace. Only the verb
// is lowercased; arguments such as file paths keep their case. There is no
// quoting or escaping.
func Parse(raw string) ParsedCommand {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ParsedCommand{Raw: raw}
	}
	return ParsedCommand{
		Raw:  raw,
		Name: strings.ToLower(fields[0]),
		Args: fields[1:],
	}
}

// Arg returns the i-th argument, or "" if there are not that many.
func (p ParsedCommand) Arg(i int) string {
	if i < 0 || i >= len(p.Args) {
		return ""
	}
	return p.Args[i]
}

// Empty reports whether the submission contained no command at all.
func (p ParsedCommand) Empty() bool {
	return p.Name == ""
}
