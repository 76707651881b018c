package storage

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "config")

	require.NoError(t, AtomicWriteFile(path, []byte("theme dark\n"), 0o644))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme dark\n", string(got))

	require.NoError(t, AtomicWriteFile(path, []byte("theme synth\n"), 0o600))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme synth\n", string(got))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestAtomicWriteFileRenameFailure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// a non-empty directory cannot be replaced by a file
	target := filepath.Join(dir, "target")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o755))

	err := AtomicWriteFile(target, []byte("x"), 0o644)
	require.Error(t, err)

	var renameErr *RenameError
	require.True(t, errors.As(err, &renameErr))
	_, statErr := os.Stat(renameErr.TempPath)
	assert.True(t, os.IsNotExist(statErr), "temp file is cleaned up")
}
