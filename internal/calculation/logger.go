package calculation

import (
	"io"
	"log"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// WriterLogger writes leveled lines to an io.Writer, dropping anything below Min.
type WriterLogger struct {
	Min Level
	l   *log.Logger
}

// NewWriterLogger creates a WriterLogger with the given minimum level.
func NewWriterLogger(w io.Writer, minLevel Level) *WriterLogger {
	return &WriterLogger{Min: minLevel, l: log.New(w, "", log.LstdFlags)}
}

func (w *WriterLogger) logf(lvl Level, tag, format string, args ...any) {
	if lvl < w.Min {
		return
	}
	w.l.Printf(tag+" "+format, args...)
}

func (w *WriterLogger) Debugf(format string, args ...any) { w.logf(LevelDebug, "DEBUG", format, args...) }
func (w *WriterLogger) Infof(format string, args ...any)  { w.logf(LevelInfo, "INFO", format, args...) }
func (w *WriterLogger) Warnf(format string, args ...any)  { w.logf(LevelWarn, "WARN", format, args...) }
func (w *WriterLogger) Errorf(format string, args ...any) { w.logf(LevelError, "ERROR", format, args...) }
