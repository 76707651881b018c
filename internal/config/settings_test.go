package config

import (
	"strings"
	"testing"
	"time"
)

func TestResolveDefaults(t *testing.T) {
	// an empty env var still counts as set
	for _, k := range []string{"TERMFOLIO_THEME", "TERMFOLIO_LOG_LEVEL", "TERMFOLIO_LOG_FILE", "TERMFOLIO_CONTENT"} {
		unsetenv(t, k)
	}

	s := Resolve(NewConfig())
	if s.Prompt != "guest@portfolio:~$" {
		t.Errorf("Prompt = %q", s.Prompt)
	}
	if s.Theme != "dark" {
		t.Errorf("Theme = %q", s.Theme)
	}
	if s.BlinkInterval != 500*time.Millisecond {
		t.Errorf("BlinkInterval = %v", s.BlinkInterval)
	}
	if s.ScrollDelay != 100*time.Millisecond {
		t.Errorf("ScrollDelay = %v", s.ScrollDelay)
	}
	if !s.Mouse {
		t.Error("Mouse = false")
	}
	if !s.Boot {
		t.Error("Boot = false")
	}
	if s.Log.Level != "info" || s.Log.MaxSizeMB != 10 || s.Log.MaxFiles != 5 || s.Log.File != "" {
		t.Errorf("Log = %+v", s.Log)
	}
	if s.MCPName != "termfolio" {
		t.Errorf("MCPName = %q", s.MCPName)
	}
}

func TestResolveFromFileAndEnv(t *testing.T) {
	for _, k := range []string{"TERMFOLIO_LOG_FILE", "TERMFOLIO_CONTENT", "TERMFOLIO_LOG_LEVEL"} {
		unsetenv(t, k)
	}
	config, err := LoadFromReader(strings.NewReader(`theme light
caret.blink-interval 1s
scroll.delay -5ms
mouse off
boot no
log.max-files lots
[mcp]
name cv`))
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("TERMFOLIO_THEME", "HACKER")

	s := Resolve(config)
	if s.Theme != "hacker" {
		t.Errorf("env should win, Theme = %q", s.Theme)
	}
	if s.BlinkInterval != time.Second {
		t.Errorf("BlinkInterval = %v", s.BlinkInterval)
	}
	if s.ScrollDelay != 100*time.Millisecond {
		t.Errorf("non-positive durations fall back, ScrollDelay = %v", s.ScrollDelay)
	}
	if s.Mouse {
		t.Error("Mouse = true")
	}
	if s.Boot {
		t.Error("Boot = true")
	}
	if s.Log.MaxFiles != 5 {
		t.Errorf("invalid ints fall back, MaxFiles = %d", s.Log.MaxFiles)
	}
	if s.MCPName != "cv" {
		t.Errorf("MCPName = %q", s.MCPName)
	}
}

func TestFormatHelp(t *testing.T) {
	help := DefaultSchema().FormatHelp()
	for _, want := range []string{
		"Global Options:",
		"theme",
		"one of: dark|light|hacker|synth",
		"env: TERMFOLIO_THEME",
		"[mcp] Options:",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}

func TestValidateOption(t *testing.T) {
	s := DefaultSchema()
	for _, tc := range []struct {
		section, key, value string
		wantErr             bool
	}{
		{"", KeyTheme, "synth", false},
		{"", KeyTheme, "SYNTH", false},
		{"", KeyTheme, "solarized", true},
		{"", KeyBlinkInterval, "250ms", false},
		{"", KeyBlinkInterval, "soon", true},
		{"", KeyMouse, "off", false},
		{"", KeyBoot, "sometimes", true},
		{"", KeyLogMaxFiles, "many", true},
		{"", "nope", "x", true},
		{SectionMCP, KeyMCPName, "portfolio", false},
		{SectionMCP, "nope", "x", true},
	} {
		err := s.ValidateOption(tc.section, tc.key, tc.value)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidateOption(%q, %q, %q) = %v, wantErr %v", tc.section, tc.key, tc.value, err, tc.wantErr)
		}
	}
}
