// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/tomtom215/funkylog/internal/forward"
)

// resetInstall clears the install guard and restores every global the
// install touches once the test finishes. Tests using it must not run in
// parallel.
func resetInstall(t *testing.T) {
	t.Helper()
	prevZlog := zlog.Logger
	prevLogger := Logger()
	prevSlog := slog.Default()
	installed.Store(false)

	t.Cleanup(func() {
		_ = Close()
		installed.Store(false)
		zlog.Logger = prevZlog
		SetLogger(prevLogger)
		slog.SetDefault(prevSlog)
	})
}

func TestTryInitWithEnv_OnlyOnce(t *testing.T) {
	resetInstall(t)
	t.Setenv("FUNKYLOG_TEST_ONCE", "")

	if err := TryInitWithEnv("FUNKYLOG_TEST_ONCE"); err != nil {
		t.Fatalf("first TryInitWithEnv() error = %v", err)
	}
	if !Installed() {
		t.Fatal("Installed() = false after successful init")
	}

	err := TryInitWithEnv("FUNKYLOG_TEST_ONCE")
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second TryInitWithEnv() error = %v, want ErrAlreadyInitialized", err)
	}
}

func TestTryInitWithEnv_Directive(t *testing.T) {
	resetInstall(t)
	t.Setenv("FUNKYLOG_TEST_DIRECTIVE", "debug,db=trace")

	if err := TryInitWithEnv("FUNKYLOG_TEST_DIRECTIVE"); err != nil {
		t.Fatalf("TryInitWithEnv() error = %v", err)
	}
	if got := zlog.Logger.GetLevel(); got != zerolog.TraceLevel {
		t.Errorf("installed logger level = %v, want trace", got)
	}
}

func TestTryInitWithEnv_DefaultFilter(t *testing.T) {
	resetInstall(t)
	t.Setenv("FUNKYLOG_TEST_DEFAULT", "")

	if err := TryInitWithEnv("FUNKYLOG_TEST_DEFAULT"); err != nil {
		t.Fatalf("TryInitWithEnv() error = %v", err)
	}
	if got := zlog.Logger.GetLevel(); got != zerolog.ErrorLevel {
		t.Errorf("installed logger level = %v, want error", got)
	}
}

func TestTryInstall_LeavesGlobalLevel(t *testing.T) {
	resetInstall(t)
	before := zerolog.GlobalLevel()

	var buf bytes.Buffer
	if err := testBuilder(&buf).Parse("error").TryInstall(); err != nil {
		t.Fatalf("TryInstall() error = %v", err)
	}

	if got := zerolog.GlobalLevel(); got != before {
		t.Errorf("global level = %v after install, want %v", got, before)
	}

	var diag bytes.Buffer
	d := newDiagnosticLogger(&diag)
	d.Warn().Msg("collector unreachable")
	if diag.Len() == 0 {
		t.Error("diagnostics logger was silenced by the install")
	}
}

func TestInit_PanicsWhenInstalled(t *testing.T) {
	resetInstall(t)
	installed.Store(true)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrAlreadyInitialized) {
			t.Errorf("Init() panic = %v, want ErrAlreadyInitialized", r)
		}
	}()
	Init()
}

func testBuilder(buf *bytes.Buffer) *Builder {
	now := newFakeNow()
	return newBuilder().
		Output(buf).
		ErrorOutput(buf).
		Parse("info").
		Color(ColorNever).
		Clock(NewClock(now.Now)).
		Columns(&ColumnTracker{})
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, writer := testBuilder(&buf).Build()

	logger.Debug().Str("module", "db").Msg("hidden")
	logger.Info().Str("module", "db").Msg("shown")

	if got := buf.String(); got != "LOG [0:00:00.000 db] shown\n" {
		t.Errorf("output = %q", got)
	}
	if writer.Filter().MinLevel() != zerolog.InfoLevel {
		t.Errorf("writer filter min level = %v, want info", writer.Filter().MinLevel())
	}
}

func TestBuilder_Options(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fwd := &recordingForwarder{}
	logger, _ := testBuilder(&buf).
		Forwarder(fwd).
		ModuleField("component").
		Redact(false).
		AlignModules(true).
		ReportInterval(time.Minute).
		Build()

	logger.Warn().Str("component", "cache").Str("password", "hunter2").Msg("evicted")

	out := buf.String()
	if !strings.Contains(out, " cache] evicted") {
		t.Errorf("module field not honoured: %q", out)
	}
	if !strings.Contains(out, "password=hunter2") {
		t.Errorf("redaction not disabled: %q", out)
	}
	if fwd.count() != 1 {
		t.Errorf("forwarded %d events, want 1", fwd.count())
	}
}

func TestBuilder_TryInstall(t *testing.T) {
	resetInstall(t)

	var buf bytes.Buffer
	if err := testBuilder(&buf).Parse("trace").TryInstall(); err != nil {
		t.Fatalf("TryInstall() error = %v", err)
	}

	zlog.Info().Str("module", "zl").Msg("from zerolog")
	slog.Info("from slog", "module", "sl")
	pkg := Module("pkg")
	pkg.Warn().Msg("from package")

	out := buf.String()
	for _, want := range []string{
		" zl] from zerolog\n",
		" sl] from slog\n",
		" pkg] from package\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	if err := testBuilder(&buf).TryInstall(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second TryInstall() error = %v, want ErrAlreadyInitialized", err)
	}
}

func TestNewBuilderWithCollector_ConstructionError(t *testing.T) {
	t.Parallel()

	cfg := forward.DefaultConfig()
	cfg.Address = "not-an-address"

	_, err := NewBuilderWithCollector(cfg)
	var cerr *forward.CollectorConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *forward.CollectorConstructionError", err)
	}
	if cerr.Kind != forward.KindDogStatsD {
		t.Errorf("Kind = %q, want %q", cerr.Kind, forward.KindDogStatsD)
	}
}

func TestNewBuilderWithCollector_None(t *testing.T) {
	t.Parallel()

	cfg := forward.DefaultConfig()
	cfg.Kind = forward.KindNone

	b, err := NewBuilderWithCollector(cfg)
	if err != nil {
		t.Fatalf("NewBuilderWithCollector() error = %v", err)
	}
	if b.forwarder == nil {
		t.Error("expected a forwarder even for the none kind")
	}
	_ = closeForwarder(b.forwarder)
}

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"Always", ColorAlways, false},
		{"never", ColorNever, false},
		{"off", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownColorMode) {
			t.Errorf("ParseColorMode(%q) error = %v, want ErrUnknownColorMode", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuilder_FilterIsIsolated(t *testing.T) {
	t.Parallel()

	t.Run("parse after build", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		b := testBuilder(&buf).Parse("error,db=error")
		_, writer := b.Build()

		b.Parse("db=trace")
		if writer.Enabled("db", zerolog.DebugLevel) {
			t.Error("Builder.Parse changed an already built writer")
		}
	})

	t.Run("parse after Filter", func(t *testing.T) {
		t.Parallel()

		f := ParseFilter("error,db=error")
		var buf bytes.Buffer
		testBuilder(&buf).Filter(f).Parse("db=trace")

		if f.LevelFor("db") != zerolog.ErrorLevel {
			t.Errorf("caller's filter db threshold = %v, want error", f.LevelFor("db"))
		}
	})
}
