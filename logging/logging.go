// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rpupo63/storefront-site-backend/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how logs are written
type Options struct {
	Level      zerolog.Level
	Console    bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// OptionsFromConfig reads LOG_LEVEL, LOG_FORMAT and the LOG_FILE* keys
func OptionsFromConfig(c map[string]string) Options {
	return Options{
		Level:      ParseLevel(config.GetString(c, "LOG_LEVEL", "info")),
		Console:    strings.EqualFold(config.GetString(c, "LOG_FORMAT", "json"), "console"),
		File:       config.GetString(c, "LOG_FILE", ""),
		MaxSizeMB:  config.GetInt(c, "LOG_FILE_MAX_MB", 100),
		MaxBackups: config.GetInt(c, "LOG_FILE_MAX_BACKUPS", 3),
		MaxAgeDays: config.GetInt(c, "LOG_FILE_MAX_AGE_DAYS", 28),
	}
}

// ParseLevel maps a level name to zerolog, defaulting to info
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// New builds a logger writing to stdout (and the rotating file when set).
// The returned closer flushes the file writer; it is a no-op without one.
func New(opts Options, stdout io.Writer) (zerolog.Logger, io.Closer) {
	var console io.Writer = stdout
	if opts.Console {
		console = zerolog.ConsoleWriter{Out: stdout, TimeFormat: time.RFC3339}
	}

	writers := []io.Writer{console}
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		writers = append(writers, rotating)
		closer = rotating
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(opts.Level).
		With().
		Timestamp().
		Logger()
	return logger, closer
}

// Setup replaces the global logger and returns the closer from New
func Setup(c map[string]string) io.Closer {
	logger, closer := New(OptionsFromConfig(c), os.Stdout)
	zerolog.SetGlobalLevel(logger.GetLevel())
	log.Logger = logger
	return closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
