// Package logging attaches a zerolog logger to the context shared across
// the application. Production builds log to a rotated file under the XDG
// data directory; tests supply an in-memory writer instead.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lexiconlabs/tiebreak/internal/storage"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Config defines how the logger is created.
type Config struct {
	// Writer, when set, takes precedence over file logging. Tests pass a
	// buffer here.
	Writer io.Writer
	Level  zerolog.Level
}

// New creates a context with a logger attached. For production, pass a
// filesystem and leave Writer nil to log to the rotated file; for tests,
// pass a Writer.
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	var writer io.Writer

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile, err := storage.New(fs).LogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger attached to ctx, or a disabled logger if none
// exists.
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
