package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/termfolio/internal/config"
)

func TestRotatingFileWriter(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "termfolio.log")
	w, err := newRotatingFileWriter(path, 10, 2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	for _, chunk := range []string{"aaaaaa", "bbbbbb", "cccccc", "dddddd"} {
		n, err := w.Write([]byte(chunk))
		require.NoError(t, err)
		assert.Equal(t, len(chunk), n)
	}

	read := func(p string) string {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		return string(data)
	}
	assert.Equal(t, "dddddd", read(path))
	assert.Equal(t, "cccccc", read(path+".1"))
	assert.Equal(t, "bbbbbb", read(path+".2"))
	_, err = os.Stat(path + ".3")
	assert.True(t, os.IsNotExist(err), "backups beyond maxFiles are deleted")
}

func TestRotatingFileWriterNoBackups(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "x.log")
	w, err := newRotatingFileWriter(path, 4, 0)
	require.NoError(t, err)
	_, err = w.Write([]byte("1234"))
	require.NoError(t, err)
	_, err = w.Write([]byte("5678"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5678", string(data))
	_, err = os.Stat(path + ".1")
	assert.True(t, os.IsNotExist(err))

	_, err = w.Write([]byte("late"))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestRotatingFileWriterAppends(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "x.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))
	w, err := NewRotatingFileWriter(path, 0, -1)
	require.NoError(t, err)
	_, err = w.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\nnew\n", string(data))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text fallback", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger, closer, err := New(config.LogSettings{Level: "warn"}, &buf)
		require.NoError(t, err)
		defer closer.Close()
		logger.Info("hidden")
		logger.Warn("shown", "k", "v")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown k=v")
	})

	t.Run("discard", func(t *testing.T) {
		t.Parallel()
		logger, closer, err := New(config.LogSettings{}, nil)
		require.NoError(t, err)
		assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
		assert.NoError(t, closer.Close())
	})

	t.Run("json file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.log")
		logger, closer, err := New(config.LogSettings{File: path, Level: "debug", MaxSizeMB: 1, MaxFiles: 1}, &bytes.Buffer{})
		require.NoError(t, err)
		logger.Debug("dispatched", "command", "help")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &rec))
		assert.Equal(t, "dispatched", rec["msg"])
		assert.Equal(t, "help", rec["command"])
	})

	t.Run("bad level", func(t *testing.T) {
		t.Parallel()
		_, _, err := New(config.LogSettings{Level: "chatty"}, nil)
		assert.Error(t, err)
	})
}
