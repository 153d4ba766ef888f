// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/tomtom215/funkylog/internal/forward"
)

// DefaultEnvVar holds the filter directive read by TryInit.
const DefaultEnvVar = "FUNKYLOG"

var (
	// installed guards the one-time process install.
	installed atomic.Bool

	installedMu        sync.Mutex
	installedForwarder EventForwarder
)

// ColorMode selects when output is colored.
type ColorMode int

const (
	// ColorAuto colors when the output is a terminal that supports it.
	ColorAuto ColorMode = iota
	// ColorAlways forces ANSI colors.
	ColorAlways
	// ColorNever disables colors.
	ColorNever
)

// ParseColorMode parses auto, always or never. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "true", "on":
		return ColorAlways, nil
	case "never", "false", "off":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
	}
}

// Builder assembles a formatter, writer and forwarder before they are
// installed. The zero value is not usable; call NewBuilder.
type Builder struct {
	output         io.Writer
	errOutput      io.Writer
	filter         Filter
	forwarder      EventForwarder
	align          bool
	color          ColorMode
	moduleField    string
	redact         bool
	clock          *Clock
	columns        *ColumnTracker
	reportInterval time.Duration
}

// NewBuilder returns a builder with the default filter, stderr output and
// a DogStatsD forwarder on the local agent. A collector that cannot be
// constructed fails here with *forward.CollectorConstructionError.
func NewBuilder() (*Builder, error) {
	return NewBuilderWithCollector(forward.DefaultConfig())
}

// NewBuilderWithCollector is NewBuilder with an explicit collector config.
func NewBuilderWithCollector(cfg forward.Config) (*Builder, error) {
	fwd, err := forward.New(cfg, Diagnostics())
	if err != nil {
		return nil, err
	}
	b := newBuilder()
	b.forwarder = fwd
	b.reportInterval = cfg.ReportInterval
	return b, nil
}

func newBuilder() *Builder {
	return &Builder{
		output:         os.Stderr,
		errOutput:      os.Stderr,
		filter:         DefaultFilter(),
		moduleField:    DefaultModuleField,
		redact:         true,
		columns:        DefaultColumns,
		reportInterval: 10 * time.Second,
	}
}

// Output sets the console destination.
func (b *Builder) Output(w io.Writer) *Builder {
	if w != nil {
		b.output = w
	}
	return b
}

// ErrorOutput sets where forwarding failures are reported.
func (b *Builder) ErrorOutput(w io.Writer) *Builder {
	if w != nil {
		b.errOutput = w
	}
	return b
}

// Filter replaces the filter with a copy of f.
func (b *Builder) Filter(f Filter) *Builder {
	b.filter = f.clone()
	return b
}

// Parse applies a filter directive on top of the current filter.
func (b *Builder) Parse(directive string) *Builder {
	b.filter.Parse(directive)
	return b
}

// Forwarder replaces the event forwarder. Nil disables forwarding.
func (b *Builder) Forwarder(fwd EventForwarder) *Builder {
	b.forwarder = fwd
	return b
}

// AlignModules pads module names to the widest seen.
func (b *Builder) AlignModules(align bool) *Builder {
	b.align = align
	return b
}

// Color sets the color mode.
func (b *Builder) Color(mode ColorMode) *Builder {
	b.color = mode
	return b
}

// ModuleField sets the zerolog field carrying the module.
func (b *Builder) ModuleField(name string) *Builder {
	if name != "" {
		b.moduleField = name
	}
	return b
}

// Redact toggles masking of credential-like field values.
func (b *Builder) Redact(enabled bool) *Builder {
	b.redact = enabled
	return b
}

// Clock sets the elapsed time source. The default starts at Build.
func (b *Builder) Clock(c *Clock) *Builder {
	b.clock = c
	return b
}

// Columns sets the module column tracker.
func (b *Builder) Columns(c *ColumnTracker) *Builder {
	if c != nil {
		b.columns = c
	}
	return b
}

// ReportInterval sets the spacing between reported forwarding failures.
func (b *Builder) ReportInterval(d time.Duration) *Builder {
	b.reportInterval = d
	return b
}

func (b *Builder) renderer() *lipgloss.Renderer {
	switch b.color {
	case ColorAlways:
		r := lipgloss.NewRenderer(b.output)
		r.SetColorProfile(termenv.ANSI)
		return r
	case ColorNever:
		r := lipgloss.NewRenderer(b.output)
		r.SetColorProfile(termenv.Ascii)
		return r
	default:
		return lipgloss.NewRenderer(b.output)
	}
}

// ConfiguredForwarder returns the forwarder records will be sent to, or
// nil when forwarding is disabled.
func (b *Builder) ConfiguredForwarder() EventForwarder {
	return b.forwarder
}

// CloseForwarder closes the builder's forwarder. Use it when a built
// logger is discarded without being installed.
func (b *Builder) CloseForwarder() error {
	return closeForwarder(b.forwarder)
}

// Build returns a zerolog logger writing through a new formatter, and the
// writer it uses. Nothing global is touched.
func (b *Builder) Build() (zerolog.Logger, *ConsoleWriter) {
	opts := []Option{
		WithForwarder(b.forwarder),
		WithColumns(b.columns),
		WithAlignModules(b.align),
		WithRenderer(b.renderer()),
		WithErrorOutput(b.errOutput),
		WithReportInterval(b.reportInterval),
	}
	if b.clock != nil {
		opts = append(opts, WithClock(b.clock))
	}

	writer := NewConsoleWriter(b.output, NewFormatter(opts...),
		WithFilter(b.filter),
		WithModuleField(b.moduleField),
		WithRedaction(b.redact),
	)

	logger := zerolog.New(writer).Level(b.filter.MinLevel()).With().Timestamp().Logger()
	return logger, writer
}

// TryInstall builds the logger and installs it as the process logger: the
// zerolog/log global, this package's logger and the slog default. Only the
// first install in a process succeeds; later ones return
// ErrAlreadyInitialized. The zerolog global level is not changed; the
// installed logger carries the filter minimum as its own level.
func (b *Builder) TryInstall() error {
	if !installed.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}

	logger, writer := b.Build()
	zlog.Logger = logger
	SetLogger(logger)
	slog.SetDefault(NewSlogLogger(writer))

	installedMu.Lock()
	installedForwarder = b.forwarder
	installedMu.Unlock()
	return nil
}

// TryInitWithEnv installs a logger whose filter is read from the
// environment variable name. An unset or empty variable keeps the
// default filter.
func TryInitWithEnv(name string) error {
	if installed.Load() {
		return ErrAlreadyInitialized
	}

	b, err := NewBuilder()
	if err != nil {
		return err
	}
	if directive := os.Getenv(name); directive != "" {
		b.Parse(directive)
	}
	if err := b.TryInstall(); err != nil {
		_ = b.CloseForwarder()
		return err
	}
	return nil
}

// TryInit is TryInitWithEnv(DefaultEnvVar).
func TryInit() error {
	return TryInitWithEnv(DefaultEnvVar)
}

// InitWithEnv is TryInitWithEnv but panics on error.
func InitWithEnv(name string) {
	if err := TryInitWithEnv(name); err != nil {
		panic(err)
	}
}

// Init is TryInit but panics on error.
func Init() {
	if err := TryInit(); err != nil {
		panic(err)
	}
}

// Installed reports whether a logger has been installed.
func Installed() bool {
	return installed.Load()
}

// Close flushes and closes the installed forwarder. The console logger
// keeps working; records are no longer forwarded.
func Close() error {
	installedMu.Lock()
	fwd := installedForwarder
	installedForwarder = nil
	installedMu.Unlock()
	return closeForwarder(fwd)
}

func closeForwarder(fwd EventForwarder) error {
	if c, ok := fwd.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
