// Package logging builds the logrus logger. The terminal belongs to the picker
// UI, so log lines go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New returns a logger at level writing to file. When file is empty or cannot
// be opened the logger discards output; the returned closer is always safe to
// call.
func New(level, file string) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	lvl := logrus.WarnLevel
	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			logger.SetOutput(io.Discard)
			return logger, nopCloser{}, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}
	logger.SetLevel(lvl)

	if file == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	f, err := openLogFile(file)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, err
	}
	logger.SetOutput(f)
	return logger, f, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
