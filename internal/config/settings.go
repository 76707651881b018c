package config

import (
	"strconv"
	"strings"
	"time"
)

// Settings are the typed, fully resolved options.
type Settings struct {
	Prompt        string
	Theme         string
	BlinkInterval time.Duration
	ScrollDelay   time.Duration
	Mouse         bool
	Boot          bool
	ContentFile   string
	MarkdownStyle string
	Log           LogSettings
	MCPName       string
}

// LogSettings configure the logger.
type LogSettings struct {
	File      string
	Level     string
	MaxSizeMB int
	MaxFiles  int
}

// Resolve returns the settings for c, applying env overrides and defaults.
// Invalid values fall back to the default; they were already reported as
// warnings when the file was loaded.
func Resolve(c *Config) Settings {
	s := DefaultSchema()
	str := func(key string) string {
		v := s.Resolve(c, key)
		if opt := s.Lookup("", key); opt != nil && validateValue(opt, v) != nil {
			return opt.Default
		}
		return v
	}
	dur := func(key string) time.Duration {
		d, err := time.ParseDuration(str(key))
		if err != nil || d <= 0 {
			d, _ = time.ParseDuration(s.Lookup("", key).Default)
		}
		return d
	}
	num := func(key string) int {
		n, err := strconv.Atoi(str(key))
		if err != nil || n < 0 {
			n, _ = strconv.Atoi(s.Lookup("", key).Default)
		}
		return n
	}
	flag := func(key string) bool {
		b, err := parseBool(str(key))
		if err != nil {
			b, _ = parseBool(s.Lookup("", key).Default)
		}
		return b
	}

	return Settings{
		Prompt:        str(KeyPrompt),
		Theme:         strings.ToLower(str(KeyTheme)),
		BlinkInterval: dur(KeyBlinkInterval),
		ScrollDelay:   dur(KeyScrollDelay),
		Mouse:         flag(KeyMouse),
		Boot:          flag(KeyBoot),
		ContentFile:   str(KeyContentFile),
		MarkdownStyle: str(KeyMarkdownStyle),
		Log: LogSettings{
			File:      str(KeyLogFile),
			Level:     strings.ToLower(str(KeyLogLevel)),
			MaxSizeMB: num(KeyLogMaxSizeMB),
			MaxFiles:  num(KeyLogMaxFiles),
		},
		MCPName: s.ResolveSection(c, SectionMCP, KeyMCPName),
	}
}
