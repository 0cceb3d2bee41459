// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps a config level name to a zerolog level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return lvl, nil
}

// Console routes the global logger to w in human-readable form.
// Used by one-shot commands, which write logs to stderr.
func Console(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	return err
}

// File routes the global logger to a JSON log file, since the TUI owns the
// terminal. The returned closer must be called on exit.
func File(path, level string) (io.Closer, error) {
	lvl, lvlErr := ParseLevel(level)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600) //nolint:gosec // path from config
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, lvlErr
}

// Discard silences the global logger.
func Discard() {
	log.Logger = zerolog.New(io.Discard)
}
