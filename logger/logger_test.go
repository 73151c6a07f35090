package logger

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("reading the level from the environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		Init()
		require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("falling back to info", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")
		Init()
		require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

		t.Setenv("LOG_LEVEL", "")
		Init()
		require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("appending to a log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "santorini.log")
		t.Setenv("LOG_FILE", path)
		t.Setenv("NO_COLOR", "1")
		Init()

		log.Info().Msg("hello")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "hello")
	})

	t.Run("warning when the log file cannot be opened", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "santorini.log")
		t.Setenv("LOG_FILE", path)
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("NO_COLOR", "1")

		r, w, err := os.Pipe()
		require.NoError(t, err)
		stderr := os.Stderr
		os.Stderr = w
		Init()
		os.Stderr = stderr
		log.Logger = log.Output(io.Discard)
		require.NoError(t, w.Close())

		out, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Contains(t, string(out), "cannot open log file", "Open failure should be logged")
		require.Contains(t, string(out), path)
		require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel(), "Level should still be set")
		require.NoFileExists(t, path)
	})
}
