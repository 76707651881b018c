package command

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"reflect"
	"strings"
	"testing"
)

type flagCommand struct {
	*BaseCommand
	loud bool
	args []string
}

func (c *flagCommand) SetupFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.loud, "loud", false, "Shout")
}

func (c *flagCommand) Execute(args []string, stdout, stderr io.Writer) error {
	c.args = args
	return nil
}

func TestRegistryGetAndList(t *testing.T) {
	r := NewRegistry()
	r.Register(NewVersionCommand("1.0.0"))
	r.Register(NewHelpCommand(r))

	if got := r.List(); !reflect.DeepEqual(got, []string{"help", "version"}) {
		t.Errorf("List() = %v", got)
	}
	if _, err := r.Get("version"); err != nil {
		t.Errorf("Get(version) error: %v", err)
	}
	_, err := r.Get("nope")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Get(nope) error = %v, want ErrUnknownCommand", err)
	}
}

func TestRegistryRun(t *testing.T) {
	r := NewRegistry()
	cmd := &flagCommand{BaseCommand: NewBaseCommand("greet", "Greets", "greet [--loud] name")}
	r.Register(cmd)

	var stdout, stderr bytes.Buffer
	if err := r.Run([]string{"greet", "--loud", "world"}, &stdout, &stderr); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !cmd.loud {
		t.Error("flag was not parsed")
	}
	if !reflect.DeepEqual(cmd.args, []string{"world"}) {
		t.Errorf("args = %v", cmd.args)
	}
}

func TestRegistryRunErrors(t *testing.T) {
	r := NewRegistry()
	r.Register(&flagCommand{BaseCommand: NewBaseCommand("greet", "Greets", "greet")})

	var stdout, stderr bytes.Buffer
	if err := r.Run(nil, &stdout, &stderr); err == nil {
		t.Error("expected error for empty args")
	}

	stderr.Reset()
	err := r.Run([]string{"nope"}, &stdout, &stderr)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Run(nope) error = %v", err)
	}
	if !strings.Contains(stderr.String(), "Unknown command: nope") {
		t.Errorf("stderr = %q", stderr.String())
	}

	stderr.Reset()
	if err := r.Run([]string{"greet", "--bogus"}, &stdout, &stderr); err == nil {
		t.Error("expected flag parse error")
	}
	if !strings.Contains(stderr.String(), "Usage: termfolio greet") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
