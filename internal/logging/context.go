// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Context keys for logging.
type contextKey string

const (
	// loggerKey is the context key for storing a logger instance.
	loggerKey contextKey = "logger"

	// moduleKey is the context key for the module name.
	moduleKey contextKey = "module"
)

// Module creates a child of the process logger tagged with a module.
// Records from it are aligned under the module and forwarded to the
// collector.
//
//	dbLogger := logging.Module("db::pool")
//	dbLogger.Warn().Msg("pool exhausted")
func Module(name string) zerolog.Logger {
	return With().Str(DefaultModuleField, name).Logger()
}

// ContextWithModule returns a context that tags records logged through
// Ctx with module.
func ContextWithModule(ctx context.Context, module string) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

// ModuleFromContext returns the module stored in ctx, or "".
func ModuleFromContext(ctx context.Context) string {
	if m, ok := ctx.Value(moduleKey).(string); ok {
		return m
	}
	return ""
}

// ContextWithLogger stores a logger in the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext retrieves a logger from context.
// Returns the process logger if no logger is stored in context.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns the context's logger with the context's module applied.
//
//	ctx = logging.ContextWithModule(ctx, "http::client")
//	logging.Ctx(ctx).Info().Msg("request sent")
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := LoggerFromContext(ctx)
	if module := ModuleFromContext(ctx); module != "" {
		logger = logger.With().Str(DefaultModuleField, module).Logger()
	}
	return &logger
}
