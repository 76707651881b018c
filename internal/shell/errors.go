package shell

import (
	"fmt"
)

// ErrorKind classifies a failed command. All kinds are recovered inside the
// dispatcher and surface as ordinary results.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	// ErrUnknownCommand means the verb is not registered.
	ErrUnknownCommand
	// ErrUsage means a known command got missing or invalid arguments.
	ErrUsage
	// ErrNotFound means a referenced project, file or directory does not exist.
	ErrNotFound
	// ErrPermissionDenied is the themed refusal for disallowed input.
	ErrPermissionDenied
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrUnknownCommand:
		return "unknown-command"
	case ErrUsage:
		return "usage"
	case ErrNotFound:
		return "not-found"
	case ErrPermissionDenied:
		return "permission-denied"
	default:
		return fmt.Sprintf("error-kind(%d)", int(k))
	}
}

// Error is the failure carried by a KindError result.
type Error struct {
	Kind ErrorKind
	// Subject is what the failure is about: the command name, the missing
	// file or project slug.
	Subject string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
