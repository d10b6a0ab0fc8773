package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// NewLogger returns a logger that writes JSON lines to the given file.
// An empty path disables logging entirely; the terminal screen owns
// stdout and stderr, so there is no stream fallback.
//
// The level is one of: trace, debug, info, warn, error, fatal, panic.
func NewLogger(level, file string) (zerolog.Logger, func(), error) {
	closer := func() {}

	if file == "" {
		return zerolog.Nop(), closer, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level: %w", err)
	}

	if dir := filepath.Dir(file); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, closer, err
	}
	closer = func() { _ = f.Close() }

	logger := zerolog.New(f).With().Timestamp().Logger().Level(lvl)
	return logger, closer, nil
}
