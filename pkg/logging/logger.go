package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level controls which messages a leveled logger emits
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel parses a level name (case-insensitive)
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger provides leveled logging capabilities
// This abstraction allows swapping logging implementations
type Logger interface {
	// Error logs an error message
	Error(args ...interface{})

	// Errorf logs a formatted error message
	Errorf(format string, args ...interface{})

	// Warn logs a warning message
	Warn(args ...interface{})

	// Warnf logs a formatted warning message
	Warnf(format string, args ...interface{})

	// Info logs an informational message
	Info(args ...interface{})

	// Infof logs a formatted informational message
	Infof(format string, args ...interface{})

	// Debug logs a debug message
	Debug(args ...interface{})

	// Debugf logs a formatted debug message
	Debugf(format string, args ...interface{})
}

// defaultLogger implements Logger using Go's standard log package
// Messages below the configured minimum level are discarded
type defaultLogger struct {
	min         Level
	errorLogger *log.Logger
	warnLogger  *log.Logger
	infoLogger  *log.Logger
	debugLogger *log.Logger
}

// New creates a leveled logger writing errors and warnings to stderr and
// informational and debug messages to stdout
func New(min Level) Logger {
	return NewWithWriters(os.Stdout, os.Stderr, min)
}

// NewWithWriters creates a leveled logger with explicit output streams
func NewWithWriters(out, errOut io.Writer, min Level) Logger {
	return &defaultLogger{
		min:         min,
		errorLogger: log.New(errOut, "[ERROR] ", log.LstdFlags),
		warnLogger:  log.New(errOut, "[WARN] ", log.LstdFlags),
		infoLogger:  log.New(out, "[INFO] ", log.LstdFlags),
		debugLogger: log.New(out, "[DEBUG] ", log.LstdFlags),
	}
}

func (l *defaultLogger) Error(args ...interface{}) {
	l.errorLogger.Output(2, fmt.Sprint(args...))
}

func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	l.errorLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *defaultLogger) Warn(args ...interface{}) {
	if l.min > LevelWarn {
		return
	}
	l.warnLogger.Output(2, fmt.Sprint(args...))
}

func (l *defaultLogger) Warnf(format string, args ...interface{}) {
	if l.min > LevelWarn {
		return
	}
	l.warnLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *defaultLogger) Info(args ...interface{}) {
	if l.min > LevelInfo {
		return
	}
	l.infoLogger.Output(2, fmt.Sprint(args...))
}

func (l *defaultLogger) Infof(format string, args ...interface{}) {
	if l.min > LevelInfo {
		return
	}
	l.infoLogger.Output(2, fmt.Sprintf(format, args...))
}

func (l *defaultLogger) Debug(args ...interface{}) {
	if l.min > LevelDebug {
		return
	}
	l.debugLogger.Output(2, fmt.Sprint(args...))
}

func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	if l.min > LevelDebug {
		return
	}
	l.debugLogger.Output(2, fmt.Sprintf(format, args...))
}

// nopLogger discards everything. It is the default sink for components
// whose diagnostics must never affect behavior
type nopLogger struct{}

// NewNop creates a logger that discards all messages
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Error(args ...interface{})                 {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Warn(args ...interface{})                  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Info(args ...interface{})                  {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Debug(args ...interface{})                 {}
func (nopLogger) Debugf(format string, args ...interface{}) {}
