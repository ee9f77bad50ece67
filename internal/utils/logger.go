package utils

import (
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/logfmt"
)

// NewLogger returns a logfmt logger writing to output at the named level.
// An empty or unknown level name logs at info, and debug forces debug.
func NewLogger(level string, debug bool, output io.Writer) *log.Logger {
	return &log.Logger{
		Handler: logfmt.New(output),
		Level:   LogLevel(level, debug),
	}
}

// LogLevel resolves a configured level name.
func LogLevel(name string, debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}

	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
