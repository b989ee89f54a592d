// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/pkgup/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors will gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	level    *slog.LevelVar
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance.
func New() *Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		level:  level,
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination.
// It preserves the current JSON mode and level settings.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose lowers the log level to Debug when enabled.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
}

// rebuild swaps the underlying handler. Callers must hold l.mu.
func (l *Logger) rebuild() {
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, &slog.HandlerOptions{Level: l.level}))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, &slog.HandlerOptions{Level: l.level}))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	// Collect messages by traversing the error chain programmatically
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			// zerr error: get raw message without chain
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			// Standard error: append full Error() and stop
			messages = append(messages, current.Error())
			break
		}
	}

	l.logger.Error(formatErrorChain(messages))
}

// formatErrorChain renders the collected messages hierarchically, with the
// root error first and its causes indented below.
func formatErrorChain(messages []string) string {
	var formatted []string

	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formatted = append(formatted, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formatted = append(formatted, "       "+line)
			}
			continue
		}
		if i == 1 {
			formatted = append(formatted, "", "  Caused by:")
		}
		formatted = append(formatted, "    → "+lines[0])
		for _, line := range lines[1:] {
			formatted = append(formatted, "      "+line)
		}
	}

	return strings.Join(formatted, "\n")
}

var _ ports.Logger = (*Logger)(nil)
