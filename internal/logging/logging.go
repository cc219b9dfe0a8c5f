// Package logging wraps zerolog behind the narrow archive.Logger interface
// the core package accepts, so CLI commands can pass a real logger without
// the core ever importing zerolog itself.
package logging

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/kUrOSH1R0oo/Seclume-Linux/internal/archive"
)

// ZerologAdapter implements archive.Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// New creates an adapter writing to os.Stderr with a timestamp, at the
// given zerolog level.
func New(level zerolog.Level) *ZerologAdapter {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
	return &ZerologAdapter{logger: zl}
}

// Log implements archive.Logger. BASIC maps to zerolog's Info level, DEBUG
// to zerolog's Debug level; the adapter itself does no filtering beyond
// what the underlying zerolog.Logger's level already does.
func (a *ZerologAdapter) Log(level archive.Level, format string, args ...any) {
	var event *zerolog.Event
	switch level {
	case archive.LevelDebug:
		event = a.logger.Debug()
	default:
		event = a.logger.Info()
	}
	event.Msgf(format, args...)
}

// LevelFromFlags mirrors the teacher CLI's --verbose/--quiet precedence:
// quiet wins over verbose, verbose wins over the default info level.
func LevelFromFlags(verbose, quiet bool) zerolog.Level {
	switch {
	case quiet:
		return zerolog.ErrorLevel
	case verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}
