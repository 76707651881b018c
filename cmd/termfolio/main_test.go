package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setup(t *testing.T, configContent string) string {
	t.Helper()
	for _, k := range []string{"TERMFOLIO_THEME", "TERMFOLIO_LOG_LEVEL", "TERMFOLIO_LOG_FILE", "TERMFOLIO_CONTENT"} {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "config")
	if configContent != "" {
		if err := os.WriteFile(path, []byte(configContent), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("TERMFOLIO_CONFIG", path)
	return path
}

func runArgs(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	setup(t, "")
	out, _, err := runArgs(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "termfolio version "+version+"\n" {
		t.Errorf("out = %q", out)
	}
}

func TestExecUsesConfiguredContent(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "content.yaml")
	yaml := `profile:
  name: Test Person
  tagline: Tester
  bio: Tests things.
`
	if err := os.WriteFile(content, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	setup(t, "content.file "+content+"\n")

	out, _, err := runArgs(t, "", "exec", "whoami")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Tester") {
		t.Errorf("out = %q", out)
	}
}

func TestDefaultsToShell(t *testing.T) {
	setup(t, "prompt visitor$\n")
	out, _, err := runArgs(t, "help\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "visitor$ help\n") || !strings.Contains(out, "Available commands:") {
		t.Errorf("out = %q", out)
	}
}

func TestConfigSetPersists(t *testing.T) {
	path := setup(t, "# comment\n")
	if _, _, err := runArgs(t, "", "config", "theme", "hacker"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# comment\ntheme hacker\n" {
		t.Errorf("file = %q", data)
	}
	out, _, _ := runArgs(t, "", "config", "theme")
	if out != "theme: hacker\n" {
		t.Errorf("out = %q", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	setup(t, "")
	_, errOut, err := runArgs(t, "", "frobnicate")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "Unknown command: frobnicate") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestHelpFlag(t *testing.T) {
	setup(t, "")
	out, _, err := runArgs(t, "", "--help")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"shell", "exec", "mcp", "config", "version"} {
		if !strings.Contains(out, name) {
			t.Errorf("help missing %q:\n%s", name, out)
		}
	}
	if _, _, err := runArgs(t, "", "shell", "-h"); err != nil {
		t.Errorf("shell -h: %v", err)
	}
}
