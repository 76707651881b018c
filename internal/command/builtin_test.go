package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joeycumines/termfolio/internal/config"
)

func TestHelpCommand(t *testing.T) {
	r := NewRegistry()
	r.Register(NewVersionCommand("1.0.0"))
	r.Register(NewConfigCommand(&Env{}))
	help := NewHelpCommand(r)
	r.Register(help)

	t.Run("general", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if err := help.Execute(nil, &stdout, &stderr); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, part := range []string{"termfolio", "Usage: termfolio <command>", "Available commands:", "version", "Display version information"} {
			if !strings.Contains(stdout.String(), part) {
				t.Errorf("output missing %q:\n%s", part, stdout.String())
			}
		}
	})

	t.Run("command with flags", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if err := help.Execute([]string{"config"}, &stdout, &stderr); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out := stdout.String()
		if !strings.Contains(out, "Command: config") || !strings.Contains(out, "Flags:") || !strings.Contains(out, "-all") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		if err := help.Execute([]string{"nope"}, &stdout, &stderr); err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(stderr.String(), "Unknown command: nope") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	var stdout, stderr bytes.Buffer
	if err := cmd.Execute(nil, &stdout, &stderr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stdout.String(); got != "termfolio version 1.2.3\n" {
		t.Errorf("output = %q", got)
	}
	if err := cmd.Execute([]string{"extra"}, &stdout, &stderr); err == nil {
		t.Error("expected error for extra arguments")
	}
}

func TestConfigCommand(t *testing.T) {
	unsetenv(t, "TERMFOLIO_THEME")
	path := filepath.Join(t.TempDir(), "config")
	cfg := config.NewConfig()
	cfg.SetGlobalOption("prompt", "me$")
	cfg.SetSectionOption("mcp", "name", "folio")
	env := &Env{Config: cfg, ConfigPath: path}

	run := func(t *testing.T, all bool, args ...string) (string, string, error) {
		t.Helper()
		cmd := NewConfigCommand(env)
		cmd.showAll = all
		var stdout, stderr bytes.Buffer
		err := cmd.Execute(args, &stdout, &stderr)
		return stdout.String(), stderr.String(), err
	}

	t.Run("usage", func(t *testing.T) {
		out, _, err := run(t, false)
		if err != nil || !strings.Contains(out, "Configuration management:") {
			t.Errorf("out = %q, err = %v", out, err)
		}
	})

	t.Run("all", func(t *testing.T) {
		out, _, err := run(t, true)
		if err != nil {
			t.Fatal(err)
		}
		for _, part := range []string{"prompt: me$", "[mcp]", "name: folio"} {
			if !strings.Contains(out, part) {
				t.Errorf("output missing %q:\n%s", part, out)
			}
		}
	})

	t.Run("get", func(t *testing.T) {
		out, _, _ := run(t, false, "prompt")
		if out != "prompt: me$\n" {
			t.Errorf("out = %q", out)
		}
		out, _, _ = run(t, false, "theme")
		if out != "theme: dark\n" {
			t.Errorf("out = %q", out)
		}
		out, _, _ = run(t, false, "missing")
		if !strings.Contains(out, "not found") {
			t.Errorf("out = %q", out)
		}
	})

	t.Run("set", func(t *testing.T) {
		out, _, err := run(t, false, "theme", "synth")
		if err != nil {
			t.Fatal(err)
		}
		if out != "Set configuration: theme = synth\n" {
			t.Errorf("out = %q", out)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "theme synth") {
			t.Errorf("file = %q", data)
		}
		if v, _ := cfg.GetGlobalOption("theme"); v != "synth" {
			t.Errorf("theme = %q", v)
		}
	})

	t.Run("set invalid", func(t *testing.T) {
		_, errOut, err := run(t, false, "theme", "solarized")
		if err == nil || !strings.Contains(errOut, "Invalid configuration") {
			t.Errorf("err = %v, stderr = %q", err, errOut)
		}
	})

	t.Run("validate", func(t *testing.T) {
		out, _, _ := run(t, false, "validate")
		if out != "Configuration is valid.\n" {
			t.Errorf("out = %q", out)
		}
		cfg.SetGlobalOption("bogus", "1")
		defer delete(cfg.Global, "bogus")
		out, _, _ = run(t, false, "validate")
		if !strings.Contains(out, "1 issue(s)") || !strings.Contains(out, "bogus") {
			t.Errorf("out = %q", out)
		}
	})

	t.Run("schema", func(t *testing.T) {
		out, _, _ := run(t, false, "schema")
		if !strings.Contains(out, "caret.blink-interval") {
			t.Errorf("out = %q", out)
		}
	})

	t.Run("too many args", func(t *testing.T) {
		if _, _, err := run(t, false, "a", "b", "c"); err == nil {
			t.Error("expected error")
		}
	})
}

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}
