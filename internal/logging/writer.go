// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/funkylog/internal/metrics"
)

// DefaultModuleField is the zerolog field that carries the module name.
const DefaultModuleField = "module"

// ConsoleWriter is a zerolog.LevelWriter that decodes each JSON event,
// applies the Filter and renders the record with a Formatter.
//
//	w := logging.NewConsoleWriter(os.Stderr, logging.NewFormatter())
//	logger := zerolog.New(w)
//	logger.Info().Str("module", "db").Msg("connected")
//
// Fields other than level, message, time and module are appended to the
// message as sorted key=value pairs. Credential-like values are masked.
type ConsoleWriter struct {
	out         *lockedWriter
	formatter   *Formatter
	filter      Filter
	moduleField string
	redact      bool
}

// WriterOption configures a ConsoleWriter.
type WriterOption func(*ConsoleWriter)

// WithFilter sets the filter applied before formatting.
func WithFilter(f Filter) WriterOption {
	return func(w *ConsoleWriter) {
		w.filter = f.clone()
	}
}

// WithModuleField changes the field the module is read from.
func WithModuleField(name string) WriterOption {
	return func(w *ConsoleWriter) {
		if name != "" {
			w.moduleField = name
		}
	}
}

// WithRedaction toggles masking of credential-like field values.
func WithRedaction(enabled bool) WriterOption {
	return func(w *ConsoleWriter) {
		w.redact = enabled
	}
}

// NewConsoleWriter writes formatted blocks to out. Blocks from concurrent
// callers never interleave.
func NewConsoleWriter(out io.Writer, f *Formatter, opts ...WriterOption) *ConsoleWriter {
	if f == nil {
		f = NewFormatter()
	}
	w := &ConsoleWriter{
		out:         &lockedWriter{w: out},
		formatter:   f,
		filter:      DefaultFilter(),
		moduleField: DefaultModuleField,
		redact:      true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Filter returns a copy of the writer's filter.
func (w *ConsoleWriter) Filter() Filter {
	return w.filter.clone()
}

// Formatter returns the writer's formatter.
func (w *ConsoleWriter) Formatter() *Formatter {
	return w.formatter
}

// Write implements io.Writer.
func (w *ConsoleWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (w *ConsoleWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	rec, err := w.decode(level, p)
	if err != nil {
		return 0, err
	}
	if err := w.Handle(rec); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Handle filters and formats an already decoded record.
func (w *ConsoleWriter) Handle(rec Record) error {
	if !w.filter.Enabled(rec.Module, rec.Level) {
		metrics.RecordFiltered(CollectorLevelName(rec.Level))
		return nil
	}
	return w.formatter.Format(rec, w.out)
}

// Enabled reports whether a record would pass the filter.
func (w *ConsoleWriter) Enabled(module string, level zerolog.Level) bool {
	return w.filter.Enabled(module, level)
}

func (w *ConsoleWriter) decode(level zerolog.Level, p []byte) (Record, error) {
	var evt map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	if err := dec.Decode(&evt); err != nil {
		return Record{}, fmt.Errorf("decode log event: %w", err)
	}

	rec := Record{Level: level, Time: time.Now()}

	if v, ok := evt[zerolog.LevelFieldName].(string); ok {
		if l, err := zerolog.ParseLevel(v); err == nil {
			rec.Level = l
		}
	}
	delete(evt, zerolog.LevelFieldName)

	if v, ok := evt[zerolog.MessageFieldName].(string); ok {
		rec.Message = v
	}
	delete(evt, zerolog.MessageFieldName)

	if v, ok := evt[zerolog.TimestampFieldName].(string); ok {
		if t, err := time.Parse(zerolog.TimeFieldFormat, v); err == nil {
			rec.Time = t
		}
	}
	delete(evt, zerolog.TimestampFieldName)

	if v, ok := evt[w.moduleField].(string); ok {
		rec.Module = v
	}
	delete(evt, w.moduleField)

	if len(evt) > 0 {
		rec.Message = w.appendFields(rec.Message, evt)
	}
	return rec, nil
}

func (w *ConsoleWriter) appendFields(msg string, fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(msg)
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(w.fieldValue(k, fields[k]))
	}
	return b.String()
}

func (w *ConsoleWriter) fieldValue(key string, v interface{}) string {
	var s string
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		s = val
		if w.redact {
			s = SanitizeValue(key, s)
		}
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			return strconv.Quote(s)
		}
		return s
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}

// lockedWriter serialises writes so each block lands contiguously.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
