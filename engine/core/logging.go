package core

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the engine wide structured logger. Each engine owns one and
// hands it to systems through engine.Context.
type Logger struct {
	*log.Logger
}

type LoggerOptions struct {
	Level        log.Level
	Prefix       string
	ReportCaller bool
}

func NewLogger(w io.Writer, opts LoggerOptions) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    opts.ReportCaller,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          opts.Prefix,
		Level:           opts.Level,
	})
	return &Logger{l}
}

// NewDiscardLogger returns a logger that drops everything. Handy in tests.
func NewDiscardLogger() *Logger {
	return NewLogger(io.Discard, LoggerOptions{Level: log.FatalLevel})
}

// ParseLogLevel maps "debug", "info", "warn", "error" and "fatal" to a level.
func ParseLogLevel(level string) (log.Level, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
	return lvl, nil
}
