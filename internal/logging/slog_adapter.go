// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// SlogHandler implements slog.Handler on top of a ConsoleWriter, so
// libraries that log through slog (sutureslog, for one) render the same
// way as zerolog callers.
//
// The module comes from a "module" attribute. Without one, and when source
// lookup is on, it is the package path of the calling function.
//
//	handler := logging.NewSlogHandler(writer, true)
//	slog.SetDefault(slog.New(handler))
type SlogHandler struct {
	writer    *ConsoleWriter
	attrs     []slog.Attr
	groups    []string
	module    string
	addSource bool
}

// NewSlogHandler creates a slog.Handler writing through w.
func NewSlogHandler(w *ConsoleWriter, addSource bool) *SlogHandler {
	return &SlogHandler{
		writer:    w,
		addSource: addSource,
	}
}

// NewSlogLogger creates an slog.Logger writing through w with source
// lookup enabled.
func NewSlogLogger(w *ConsoleWriter) *slog.Logger {
	return slog.New(NewSlogHandler(w, true))
}

// Enabled reports whether any filter term lets records at level through.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := h.writer.Filter().MinLevel()
	return minLevel != zerolog.Disabled && slogToZerologLevel(level) >= minLevel
}

// Handle converts the record and hands it to the writer.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	fields := make(map[string]interface{})
	module := h.module

	for _, attr := range h.attrs {
		addAttr(fields, attr, h.groups)
	}
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == h.writer.moduleField && len(h.groups) == 0 {
			module = attr.Value.String()
			return true
		}
		addAttr(fields, attr, h.groups)
		return true
	})

	if module == "" && h.addSource && record.PC != 0 {
		module = moduleFromPC(record.PC)
	}

	rec := Record{
		Level:   slogToZerologLevel(record.Level),
		Module:  module,
		Message: record.Message,
		Time:    record.Time,
	}
	if len(fields) > 0 {
		rec.Message = h.writer.appendFields(rec.Message, fields)
	}
	return h.writer.Handle(rec)
}

// WithAttrs returns a new Handler with the given attributes. A top-level
// module attribute becomes the handler's module.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(clone.attrs, h.attrs)

	for _, attr := range attrs {
		if attr.Key == h.writer.moduleField && len(h.groups) == 0 {
			clone.module = attr.Value.String()
			continue
		}
		clone.attrs = append(clone.attrs, attr)
	}
	return &clone
}

// WithGroup returns a new Handler with the given group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name

	clone := *h
	clone.groups = newGroups
	return &clone
}

// addAttr flattens a slog attribute into fields, joining groups with dots.
func addAttr(fields map[string]interface{}, attr slog.Attr, groups []string) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	switch attr.Value.Kind() {
	case slog.KindString:
		fields[key] = attr.Value.String()
	case slog.KindInt64:
		fields[key] = json.Number(strconv.FormatInt(attr.Value.Int64(), 10))
	case slog.KindUint64:
		fields[key] = json.Number(strconv.FormatUint(attr.Value.Uint64(), 10))
	case slog.KindFloat64:
		fields[key] = json.Number(strconv.FormatFloat(attr.Value.Float64(), 'g', -1, 64))
	case slog.KindBool:
		fields[key] = attr.Value.Bool()
	case slog.KindDuration:
		fields[key] = attr.Value.Duration().String()
	case slog.KindTime:
		fields[key] = attr.Value.Time().Format(time.RFC3339)
	case slog.KindGroup:
		nested := groups
		if attr.Key != "" {
			nested = append(append([]string(nil), groups...), attr.Key)
		}
		for _, ga := range attr.Value.Group() {
			addAttr(fields, ga, nested)
		}
	default:
		if err, ok := attr.Value.Any().(error); ok {
			fields[key] = err.Error()
			return
		}
		fields[key] = attr.Value.Any()
	}
}

// moduleFromPC returns the package path of the function at pc.
func moduleFromPC(pc uintptr) string {
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	return packagePath(frame.Function)
}

// packagePath strips the function and receiver from a fully qualified
// function name: "github.com/a/b/pkg.(*T).M" becomes "github.com/a/b/pkg".
func packagePath(function string) string {
	if function == "" {
		return ""
	}
	lastSlash := strings.LastIndexByte(function, '/')
	dot := strings.IndexByte(function[lastSlash+1:], '.')
	if dot < 0 {
		return function
	}
	return function[:lastSlash+1+dot]
}

// slogToZerologLevel converts slog.Level to zerolog.Level.
func slogToZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelDebug:
		return zerolog.TraceLevel
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
