package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joeycumines/termfolio/internal/command"
	"github.com/joeycumines/termfolio/internal/config"
	"github.com/joeycumines/termfolio/internal/logging"
	"github.com/joeycumines/termfolio/internal/portfolio"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	var exitErr *command.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		os.Exit(exitErr.Code)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, configPath, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings := config.Resolve(cfg)

	logger, closer, err := logging.New(settings.Log, stderr)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	catalog, err := portfolio.LoadCatalog(settings.ContentFile)
	if err != nil {
		return err
	}

	env := &command.Env{
		Context:      ctx,
		Config:       cfg,
		ConfigPath:   configPath,
		Settings:     settings,
		Catalog:      catalog,
		Logger:       logger,
		LogsToStderr: settings.Log.File == "",
		Stdin:        stdin,
		Version:      version,
	}

	registry := command.NewRegistry()
	help := command.NewHelpCommand(registry)
	registry.Register(help)
	registry.Register(command.NewVersionCommand(version))
	registry.Register(command.NewConfigCommand(env))
	registry.Register(command.NewShellCommand(env))
	registry.Register(command.NewExecCommand(env))
	registry.Register(command.NewMCPCommand(env))

	if len(args) == 0 {
		args = []string{"shell"}
	}
	if args[0] == "-h" || args[0] == "--help" {
		return help.Execute(nil, stdout, stderr)
	}

	err = registry.Run(args, stdout, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}
