package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrorLog appends engine errors to a dated file in a log directory. Every
// run is bracketed by STARTING RUN / ENDING RUN entries tagged with a run
// ID, and every entry carries the file and line of the code that logged it.
type ErrorLog struct {
	mu       sync.Mutex
	path     string
	runID    uuid.UUID
	file     *os.File
	out      *errWriter
	logger   *log.Logger
	fallback *Logger
	closed   bool
}

// errWriter remembers the first failed write so a broken stream can be
// detected; log.Logger swallows writer errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err != nil && e.err == nil {
		e.err = err
	}
	return n, err
}

// ErrorLogFilename returns the file name used for runs started at t.
func ErrorLogFilename(t time.Time) string {
	return fmt.Sprintf("EngineOfEvilCore(%s).log", t.Format("2006-01-02"))
}

// OpenErrorLog opens, or creates, the error log for the day of now inside
// dir. Problems with the log itself are reported to fallback, which may be
// nil.
func OpenErrorLog(dir string, now time.Time, fallback *Logger) (*ErrorLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create error log directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, ErrorLogFilename(now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize error output log: %w", err)
	}

	out := &errWriter{w: f}
	runID := uuid.New()
	l := log.NewWithOptions(out, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
		Level:           log.InfoLevel,
	}).With("run", runID.String())

	el := &ErrorLog{
		path:     path,
		runID:    runID,
		file:     f,
		out:      out,
		logger:   l,
		fallback: fallback,
	}

	el.mu.Lock()
	defer el.mu.Unlock()
	el.logger.Info("STARTING RUN")
	if err := el.verifyWrite(); err != nil {
		return nil, err
	}
	return el, nil
}

func (el *ErrorLog) Path() string {
	return el.path
}

func (el *ErrorLog) RunID() uuid.UUID {
	return el.runID
}

// LogError records msg and optional key/value pairs, attributed to the
// caller of LogError.
func (el *ErrorLog) LogError(msg string, keyvals ...interface{}) error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.closed {
		return ErrErrorLogClosed
	}
	el.logger.Helper()
	el.logger.Error(msg, keyvals...)
	return el.verifyWrite()
}

// Check logs err when it is not nil and reports whether it did.
func (el *ErrorLog) Check(err error) bool {
	if err == nil {
		return false
	}

	el.mu.Lock()
	defer el.mu.Unlock()

	if el.closed {
		return true
	}
	el.logger.Helper()
	el.logger.Error(err.Error())
	_ = el.verifyWrite()
	return true
}

// Close writes the ENDING RUN entry and closes the file. Closing twice is
// a no-op.
func (el *ErrorLog) Close() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.closed {
		return nil
	}
	el.logger.Info("ENDING RUN")
	el.closed = true
	if err := el.out.err; err != nil {
		_ = el.file.Close()
		return fmt.Errorf("%w: %w", ErrErrorLogCorrupted, err)
	}
	return el.file.Close()
}

// verifyWrite closes the log when the stream went bad. Callers hold mu.
func (el *ErrorLog) verifyWrite() error {
	if el.out.err == nil {
		return nil
	}
	el.closed = true
	_ = el.file.Close()
	if el.fallback != nil {
		el.fallback.Error("log output stream corrupted, log closed", "path", el.path, "err", el.out.err)
	}
	return fmt.Errorf("%w: %w", ErrErrorLogCorrupted, el.out.err)
}
