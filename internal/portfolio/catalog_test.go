package portfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()
	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Projects, 4)
	assert.Len(t, c.Skills, 18)
	assert.Equal(t, "Developer | Creative Coder | Automation Enthusiast", c.Profile.Tagline)
	assert.Contains(t, c.Profile.Avatar, "| o _ o |")

	p, ok := c.Project("Monero_Miner")
	require.True(t, ok)
	assert.Equal(t, "monero_miner", p.Name)
	assert.Equal(t, "Monero Miner", p.Label())

	var names []string
	for _, s := range c.SkillsIn("devops") {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Docker", "AWS", "Git"}, names)
}

func TestParseCatalogValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed", "projects: [", "failed to parse catalog"},
		{"missing project name", "projects:\n  - description: x\n", "missing name"},
		{"nested project name", "projects:\n  - name: a/b\n", "single path segment"},
		{"duplicate project", "projects:\n  - name: a\n  - name: A\n", "duplicate name"},
		{"bad category", "skills:\n  - {name: Go, category: systems}\n", `unknown category "systems"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseCatalog([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, c.Projects, 4)

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects:\n  - name: only\n    title: Only One\nskills:\n  - {name: Go, category: backend}\n"), 0o644))
	c, err = LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Projects, 1)
	assert.Equal(t, "Only One", c.Projects[0].Label())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read content file")
}
