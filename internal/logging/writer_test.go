// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func newTestWriter(t *testing.T, buf *bytes.Buffer, opts ...WriterOption) (*ConsoleWriter, *recordingForwarder) {
	t.Helper()
	fwd := &recordingForwarder{}
	f, _ := newTestFormatter(t, WithForwarder(fwd))
	base := []WriterOption{WithFilter(ParseFilter("trace"))}
	return NewConsoleWriter(buf, f, append(base, opts...)...), fwd
}

func TestConsoleWriter_ZerologEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		log  func(zerolog.Logger)
		want string
	}{
		{
			name: "module record",
			log:  func(l zerolog.Logger) { l.Info().Str("module", "one::deep").Msg("such information") },
			want: "LOG [0:00:00.000 one::deep] such information\n",
		},
		{
			name: "extra fields sorted",
			log:  func(l zerolog.Logger) { l.Debug().Str("module", "db").Int("rows", 3).Bool("cached", true).Msg("query") },
			want: "DBG [0:00:00.000 db] query cached=true rows=3\n",
		},
		{
			name: "error field",
			log:  func(l zerolog.Logger) { l.Error().Err(errors.New("boom")).Msg("failed") },
			want: "ERR [0:00:00.000] failed error=boom\n",
		},
		{
			name: "quoted value",
			log:  func(l zerolog.Logger) { l.Warn().Str("path", "a b").Msg("odd") },
			want: "WRN [0:00:00.000] odd path=\"a b\"\n",
		},
		{
			name: "credential masked",
			log:  func(l zerolog.Logger) { l.Info().Str("password", "hunter2-very-long-secret").Msg("login") },
			want: "LOG [0:00:00.000] login password=hunt...cret\n",
		},
		{
			name: "email masked",
			log:  func(l zerolog.Logger) { l.Info().Str("user", "john.doe@example.com").Msg("login") },
			want: "LOG [0:00:00.000] login user=jo***@example.com\n",
		},
		{
			name: "nested object",
			log:  func(l zerolog.Logger) { l.Trace().Dict("d", zerolog.Dict().Int("a", 1)).Msg("x") },
			want: "TRC [0:00:00.000] x d={\"a\":1}\n",
		},
		{
			name: "timestamp dropped",
			log: func(l zerolog.Logger) {
				ts := l.With().Timestamp().Logger()
				ts.Info().Msg("t")
			},
			want: "LOG [0:00:00.000] t\n",
		},
		{
			name: "no level is info",
			log:  func(l zerolog.Logger) { l.Log().Msg("bare") },
			want: "LOG [0:00:00.000] bare\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w, _ := newTestWriter(t, &buf)
			tt.log(zerolog.New(w))

			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConsoleWriter_ForwardsModuleRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w, fwd := newTestWriter(t, &buf)
	logger := zerolog.New(w)

	logger.Info().Str("module", "one::deep").Msg("such information")
	logger.Info().Msg("no module")

	if fwd.count() != 1 {
		t.Fatalf("forwarded %d events, want 1", fwd.count())
	}
	if fwd.events[0].name != "one::deep" {
		t.Errorf("forwarded name = %q", fwd.events[0].name)
	}
}

func TestConsoleWriter_Filter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w, fwd := newTestWriter(t, &buf, WithFilter(ParseFilter("error,db=debug")))
	logger := zerolog.New(w)

	logger.Info().Msg("dropped")
	logger.Debug().Str("module", "http").Msg("dropped")
	logger.Debug().Str("module", "db::pool").Msg("kept")
	logger.Error().Msg("kept too")

	want := "DBG [0:00:00.000 db::pool] kept\nERR [0:00:00.000] kept too\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if fwd.count() != 1 {
		t.Errorf("filtered records must not be forwarded, got %d events", fwd.count())
	}
}

func TestConsoleWriter_DefaultFilterDropsInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f, _ := newTestFormatter(t)
	w := NewConsoleWriter(&buf, f)

	logger := zerolog.New(w)
	logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("default filter let info through: %q", buf.String())
	}
}

func TestConsoleWriter_ModuleField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w, _ := newTestWriter(t, &buf, WithModuleField("component"))

	logger := zerolog.New(w)
	logger.Info().Str("component", "sync").Str("module", "other").Msg("x")

	want := "LOG [0:00:00.000 sync] x module=other\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConsoleWriter_RedactionDisabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w, _ := newTestWriter(t, &buf, WithRedaction(false))

	logger := zerolog.New(w)
	logger.Info().Str("token", "abcdefghijklmnop").Msg("x")

	want := "LOG [0:00:00.000] x token=abcdefghijklmnop\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestConsoleWriter_RawWrites(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w, _ := newTestWriter(t, &buf)

	p := []byte(`{"level":"warn","module":"raw","message":"hello"}`)
	n, err := w.Write(p)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len(p) {
		t.Errorf("Write() = %d, want %d", n, len(p))
	}
	if got, want := buf.String(), "WRN [0:00:00.000 raw] hello\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	if _, err := w.Write([]byte("not json")); err == nil {
		t.Error("expected decode error for invalid JSON")
	}
}

func TestConsoleWriter_WriteErrorPropagates(t *testing.T) {
	t.Parallel()

	sinkErr := errors.New("broken pipe")
	f, _ := newTestFormatter(t)
	w := NewConsoleWriter(failingWriter{err: sinkErr}, f, WithFilter(ParseFilter("trace")))

	_, err := w.WriteLevel(zerolog.InfoLevel, []byte(`{"level":"info","message":"x"}`))
	if !errors.Is(err, sinkErr) {
		t.Errorf("WriteLevel() error = %v, want %v", err, sinkErr)
	}
}

func TestConsoleWriter_FilterIsIsolated(t *testing.T) {
	t.Parallel()

	f, _ := newTestFormatter(t)
	shared := ParseFilter("error,db=error")
	w := NewConsoleWriter(&bytes.Buffer{}, f, WithFilter(shared))

	shared.Parse("db=trace")
	if w.Enabled("db", zerolog.DebugLevel) {
		t.Error("parsing into the filter passed to WithFilter changed the writer")
	}

	got := w.Filter()
	got.Parse("db=trace")
	if w.Enabled("db", zerolog.DebugLevel) {
		t.Error("parsing into the filter returned by Filter() changed the writer")
	}
}
