package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(map[string]string{
		"LOG_LEVEL":       "error",
		"LOG_FORMAT":      "Console",
		"LOG_FILE":        "/var/log/storefront.log",
		"LOG_FILE_MAX_MB": "10",
	})

	assert.Equal(t, zerolog.ErrorLevel, opts.Level)
	assert.True(t, opts.Console)
	assert.Equal(t, "/var/log/storefront.log", opts.File)
	assert.Equal(t, 10, opts.MaxSizeMB)
	assert.Equal(t, 3, opts.MaxBackups)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(Options{Level: zerolog.WarnLevel}, &buf)
	defer closer.Close()

	logger.Info().Msg("quiet")
	logger.Warn().Str("component", "capture").Msg("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, `"component":"capture"`)
}

func TestNew_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	var buf bytes.Buffer
	logger, closer := New(Options{Level: zerolog.InfoLevel, File: path, MaxSizeMB: 1}, &buf)
	logger.Info().Msg("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}
