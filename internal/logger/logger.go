// Package logger builds the diagnostic logger. Entries go to a small
// rotating file so that nothing leaks into the output the shell evaluates.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates a logger writing to path, rotated by lumberjack.
// If the log directory cannot be created, it returns a logger that discards
// all output.
func New(path string, verbose bool) *slog.Logger {
	if path == "" {
		return Discard()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return Discard()
	}

	logWriter := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // MB
		MaxBackups: 1,
		MaxAge:     0,
		Compress:   false,
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
