package command

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/joeycumines/termfolio/internal/config"
	"github.com/joeycumines/termfolio/internal/portfolio"
	"github.com/joeycumines/termfolio/internal/shell"
)

// Env is the state shared by the commands of one process.
type Env struct {
	Context    context.Context
	Config     *config.Config
	ConfigPath string
	Settings   config.Settings
	Catalog    *portfolio.Catalog
	Logger     *slog.Logger
	// LogsToStderr is set when Logger writes to stderr, which the
	// full-screen UI cannot share.
	LogsToStderr bool
	Stdin        io.Reader
	Version      string
}

func (e *Env) ctx() context.Context {
	if e.Context == nil {
		return context.Background()
	}
	return e.Context
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

func (e *Env) stdin() io.Reader {
	if e.Stdin == nil {
		return os.Stdin
	}
	return e.Stdin
}

func (e *Env) catalog() *portfolio.Catalog {
	if e.Catalog == nil {
		return portfolio.DefaultCatalog()
	}
	return e.Catalog
}

// NewSession starts a fresh shell over the catalog.
func (e *Env) NewSession() *shell.Session {
	return e.newSession(e.logger())
}

func (e *Env) newSession(logger *slog.Logger) *shell.Session {
	return portfolio.NewSession(e.catalog(), shell.WithLogger(logger))
}

func (e *Env) prompt() string {
	if e.Settings.Prompt == "" {
		return "guest@portfolio:~$"
	}
	return e.Settings.Prompt
}
