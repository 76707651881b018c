package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetKeyInFile(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		key     string
		value   string
		want    string
	}{
		{"empty file", "", "theme", "synth", "theme synth"},
		{"append keeps trailing newline", "prompt $\n", "theme", "light", "prompt $\ntheme light\n"},
		{"replace in place", "# mine\ntheme dark\nmouse off\n", "theme", "hacker", "# mine\ntheme hacker\nmouse off\n"},
		{"insert before section", "prompt $\n[mcp]\nname x\n", "theme", "synth", "prompt $\ntheme synth\n[mcp]\nname x\n"},
		{"section keys untouched", "[mcp]\ntheme dark\n", "theme", "light", "theme light\n[mcp]\ntheme dark\n"},
		{"valueless key", "theme dark\n", "content.file", "", "theme dark\ncontent.file\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "sub", "config")
			if tt.initial != "" {
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(path, []byte(tt.initial), 0644); err != nil {
					t.Fatal(err)
				}
			}

			if err := SetKeyInFile(path, tt.key, tt.value); err != nil {
				t.Fatalf("SetKeyInFile returned error: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, string(data))
			}
		})
	}
}

func TestSetKeyInFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if err := SetKeyInFile(path, KeyTheme, "synth"); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := cfg.GetGlobalOption(KeyTheme); !ok || v != "synth" {
		t.Fatalf("expected theme=synth after round-trip, got %q exists=%v", v, ok)
	}
}
