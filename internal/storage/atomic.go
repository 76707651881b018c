// Package storage writes preference files without leaving partial content
// behind.
package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// RenameError is returned when the final rename fails. TempPath is already
// removed by the time the caller sees it.
type RenameError struct {
	Err      error
	TempPath string
}

func (e *RenameError) Error() string { return fmt.Sprintf("failed to replace file: %v", e.Err) }
func (e *RenameError) Unwrap() error { return e.Err }

// AtomicWriteFile writes data to a temporary file next to filename and
// renames it into place, so readers see either the old or the new content.
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// same directory, so the rename stays on one filesystem
	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	var success bool
	defer func() {
		if !success {
			if err := os.Remove(tempFile.Name()); err != nil && !os.IsNotExist(err) {
				slog.Warn("failed to remove temporary file", "path", tempFile.Name(), "error", err)
			}
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file %q: %w", tempFile.Name(), err)
	}
	if err := os.Chmod(tempFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := replaceFile(tempFile.Name(), filename); err != nil {
		return &RenameError{Err: err, TempPath: tempFile.Name()}
	}
	success = true
	return nil
}
