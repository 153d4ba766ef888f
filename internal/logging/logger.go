// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// log is the process logger. Until a formatter is installed it is a
	// plain diagnostic logger on stderr.
	log = newDiagnosticLogger(os.Stderr)

	// mu protects log.
	mu sync.RWMutex
)

// newDiagnosticLogger builds the logger funkylog uses for its own
// failures. It writes straight to w with zerolog's console writer so it
// never re-enters a Formatter.
func newDiagnosticLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).With().Timestamp().Str("component", "funkylog").Logger()
}

// Diagnostics returns a logger for funkylog's own messages (config
// loading, collector failures) that bypasses the installed formatter.
func Diagnostics() zerolog.Logger {
	return newDiagnosticLogger(os.Stderr)
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the process logger without touching the install guard.
// Tests use it to capture output.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// With creates a child context of the process logger.
//
//	dbLogger := logging.With().Str("module", "db").Logger()
func With() zerolog.Context {
	mu.RLock()
	defer mu.RUnlock()
	return log.With()
}

// Trace starts a new message with trace level.
func Trace() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Trace()
}

// Debug starts a new message with debug level.
func Debug() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Debug()
}

// Info starts a new message with info level.
//
//	logging.Info().Msg("Server starting")
func Info() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Info()
}

// Warn starts a new message with warning level.
func Warn() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Warn()
}

// Error starts a new message with error level.
func Error() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Error()
}

// Err starts a new message with error level and adds the error.
//
//	logging.Err(err).Msg("Operation failed")
func Err(err error) *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Err(err)
}

// NewTestLogger creates a logger that renders through a fresh Formatter
// into w, with every level enabled and forwarding disabled.
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Str("module", "db").Msg("test")
func NewTestLogger(w io.Writer) zerolog.Logger {
	f := NewFormatter(WithColumns(&ColumnTracker{}))
	filter := DefaultFilter()
	filter.SetLevel(zerolog.TraceLevel)
	return zerolog.New(NewConsoleWriter(w, f, WithFilter(filter))).With().Timestamp().Logger()
}
