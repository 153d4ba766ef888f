// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package funkylog

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/funkylog/internal/forward"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		directive string
		module    string
		level     zerolog.Level
		want      bool
	}{
		{"", "db", zerolog.ErrorLevel, true},
		{"", "db", zerolog.WarnLevel, false},
		{"warn,db=debug", "db", zerolog.DebugLevel, true},
		{"warn,db=debug", "http", zerolog.InfoLevel, false},
		{"off", "db", zerolog.ErrorLevel, false},
	}

	for _, tt := range tests {
		f := ParseFilter(tt.directive)
		if got := f.Enabled(tt.module, tt.level); got != tt.want {
			t.Errorf("ParseFilter(%q).Enabled(%q, %v) = %v, want %v",
				tt.directive, tt.module, tt.level, got, tt.want)
		}
	}
}

func TestNewBuilderWithCollector(t *testing.T) {
	t.Parallel()

	cfg := DefaultCollectorConfig()
	cfg.Kind = "carrier-pigeon"

	_, err := NewBuilderWithCollector(cfg)
	var cerr *CollectorConstructionError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *CollectorConstructionError", err)
	}
	if !errors.Is(err, forward.ErrUnknownKind) {
		t.Errorf("error = %v, want ErrUnknownKind", err)
	}
}

func TestBuilderWithoutCollector(t *testing.T) {
	t.Parallel()

	cfg := DefaultCollectorConfig()
	cfg.Kind = forward.KindNone

	b, err := NewBuilderWithCollector(cfg)
	if err != nil {
		t.Fatalf("NewBuilderWithCollector() error = %v", err)
	}

	var buf bytes.Buffer
	logger, _ := b.Output(&buf).Color(ColorNever).Filter(ParseFilter("info")).Build()
	logger.Info().Str("module", "api").Msg("line one\nline two")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	header := lines[0][:strings.Index(lines[0], "]")+1]
	if !strings.HasPrefix(header, "LOG [") || !strings.HasSuffix(header, " api]") {
		t.Errorf("unexpected header %q", header)
	}
	if want := strings.Repeat(" ", len(header)+1) + "line two"; lines[1] != want {
		t.Errorf("continuation = %q, want %q", lines[1], want)
	}
}

func TestRootAPIConfiguresBuilder(t *testing.T) {
	t.Parallel()

	policy, err := ParsePolicy("drop")
	if err != nil {
		t.Fatalf("ParsePolicy() error = %v", err)
	}
	if policy != PolicyDrop {
		t.Errorf("ParsePolicy(drop) = %v, want %v", policy, PolicyDrop)
	}
	if _, err := ParsePolicy("retry"); err == nil {
		t.Error("ParsePolicy(retry) should fail")
	}

	color, err := ParseColorMode("never")
	if err != nil {
		t.Fatalf("ParseColorMode() error = %v", err)
	}

	cfg := DefaultCollectorConfig()
	cfg.Kind = CollectorNone
	cfg.Policy = policy

	b, err := NewBuilderWithCollector(cfg)
	if err != nil {
		t.Fatalf("NewBuilderWithCollector() error = %v", err)
	}

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	logger, _ := b.Output(&buf).
		Color(color).
		Parse("info").
		AlignModules(true).
		Clock(NewClock(func() time.Time { return start })).
		Columns(&ColumnTracker{}).
		Build()

	logger.Info().Str("module", "api").Msg("ready")

	if got, want := buf.String(), "LOG [0:00:00.000 api] ready\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
