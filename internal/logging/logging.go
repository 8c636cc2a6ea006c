// Package logging constructs the process-wide zerolog.Logger from the
// LOG_LEVEL environment variable, following the dependency-injection
// shape used throughout the example pack (a constructed zerolog.Logger
// value passed into components) rather than a package-level global.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a console-writer logger whose level is read from LOG_LEVEL
// (default INFO), per spec.md §6.
func New() zerolog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func parseLevel(raw string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "":
		return zerolog.InfoLevel
	default:
		return zerolog.InfoLevel
	}
}
