// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/funkylog/internal/forward"
	"github.com/tomtom215/funkylog/internal/metrics"
)

// EventForwarder sends a copy of a record to an events collector.
// *forward.Forwarder implements it.
type EventForwarder interface {
	Forward(ctx context.Context, name, text string, tags []string) error
}

// failurePolicy is implemented by forwarders that carry their own policy.
type failurePolicy interface {
	Policy() forward.Policy
	Debug() bool
}

// Formatter renders records as console blocks:
//
//	LOG [0:00:01.234 db::pool] connection opened
//	WRN [0:00:02.001] first line
//	                  second line
//
// The header is the level code and the bracketed elapsed time and module.
// Continuation lines are indented by the header's display width plus one.
// A Formatter is safe for concurrent use; it writes each block with a
// single Write call.
type Formatter struct {
	clock     *Clock
	forwarder EventForwarder
	columns   *ColumnTracker
	align     bool
	renderer  *lipgloss.Renderer
	errLog    zerolog.Logger
	reports   *rate.Limiter
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock sets the elapsed time source.
func WithClock(c *Clock) Option {
	return func(f *Formatter) {
		if c != nil {
			f.clock = c
		}
	}
}

// WithForwarder sets the event forwarder. Nil disables forwarding.
func WithForwarder(fwd EventForwarder) Option {
	return func(f *Formatter) {
		f.forwarder = fwd
	}
}

// WithColumns sets the tracker used for module alignment.
func WithColumns(c *ColumnTracker) Option {
	return func(f *Formatter) {
		if c != nil {
			f.columns = c
		}
	}
}

// WithAlignModules pads the module field to the widest module seen so far.
func WithAlignModules(align bool) Option {
	return func(f *Formatter) {
		f.align = align
	}
}

// WithRenderer sets the lipgloss renderer used for colors.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(f *Formatter) {
		if r != nil {
			f.renderer = r
		}
	}
}

// WithColorProfile forces a color profile. termenv.Ascii disables color.
func WithColorProfile(p termenv.Profile) Option {
	return func(f *Formatter) {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(p)
		f.renderer = r
	}
}

// WithErrorOutput sets where forwarding failures are reported.
func WithErrorOutput(w io.Writer) Option {
	return func(f *Formatter) {
		f.errLog = newDiagnosticLogger(w)
	}
}

// WithReportInterval sets the minimum spacing between reported forwarding
// failures. Zero reports every failure.
func WithReportInterval(d time.Duration) Option {
	return func(f *Formatter) {
		f.reports = newReportLimiter(d)
	}
}

// NewFormatter returns a formatter whose clock starts now. Without options
// it writes uncolored output, does not forward, aligns nothing and reports
// forwarding failures on stderr at most once every ten seconds.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		columns: DefaultColumns,
		errLog:  newDiagnosticLogger(os.Stderr),
		reports: newReportLimiter(10 * time.Second),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.clock == nil {
		f.clock = NewClock(nil)
	}
	if f.renderer == nil {
		f.renderer = lipgloss.NewRenderer(io.Discard)
		f.renderer.SetColorProfile(termenv.Ascii)
	}
	return f
}

func newReportLimiter(every time.Duration) *rate.Limiter {
	if every <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(every), 1)
}

// Clock returns the formatter's clock.
func (f *Formatter) Clock() *Clock {
	return f.clock
}

// Format renders rec and writes it to dst in one Write call. A record with
// a module is forwarded exactly once before the write; forwarding failures
// never prevent the write. Write errors are returned.
func (f *Formatter) Format(rec Record, dst io.Writer) error {
	ts := RenderElapsed(f.clock.Elapsed())
	header := f.Header(rec.Level, ts, rec.Module)

	if rec.Module != "" {
		f.forward(rec)
	}

	indent := lipgloss.Width(header) + 1
	buf := make([]byte, 0, len(header)+len(rec.Message)+2+strings.Count(rec.Message, "\n")*indent)
	buf = append(buf, header...)
	buf = append(buf, ' ')
	buf = appendIndented(buf, rec.Message, indent)
	buf = append(buf, '\n')

	n, err := dst.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		metrics.RecordConsoleWriteError()
		return fmt.Errorf("write log record: %w", err)
	}

	metrics.RecordFormatted(CollectorLevelName(rec.Level))
	return nil
}

// Header renders "{code} [{elapsed} {module}]", or "{code} [{elapsed}]"
// when module is empty.
func (f *Formatter) Header(level zerolog.Level, elapsed, module string) string {
	style := StyleFor(level)
	code := f.renderer.NewStyle().Foreground(style.Color).Render(style.Code)

	var b strings.Builder
	b.Grow(len(code) + len(elapsed) + len(module) + 8)
	b.WriteString(code)
	b.WriteString(" [")
	b.WriteString(elapsed)
	if module != "" {
		b.WriteByte(' ')
		b.WriteString(f.renderer.NewStyle().Bold(true).Render(module))
		if f.align {
			width := lipgloss.Width(module)
			widest := f.columns.Observe(width)
			metrics.SetModuleColumnWidth(widest)
			if pad := widest - width; pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// appendIndented appends msg with every newline followed by indent spaces.
func appendIndented(dst []byte, msg string, indent int) []byte {
	for {
		i := strings.IndexByte(msg, '\n')
		if i < 0 {
			return append(dst, msg...)
		}
		dst = append(dst, msg[:i+1]...)
		for j := 0; j < indent; j++ {
			dst = append(dst, ' ')
		}
		msg = msg[i+1:]
	}
}

func (f *Formatter) forward(rec Record) {
	if f.forwarder == nil {
		return
	}
	tags := forward.Tags(CollectorLevelName(rec.Level), rec.Module)
	text := truncateString(rec.Message, MaxEventText-3)
	if err := f.forwarder.Forward(context.Background(), rec.Module, text, tags); err != nil {
		f.handleForwardError(err)
	}
}

func (f *Formatter) handleForwardError(err error) {
	policy, debug := forward.PolicyReport, false
	if p, ok := f.forwarder.(failurePolicy); ok {
		policy, debug = p.Policy(), p.Debug()
	}

	switch policy {
	case forward.PolicyDrop:
		return
	case forward.PolicyPanicInDebug:
		if debug {
			panic(err)
		}
	}

	if f.reports.Allow() {
		f.errLog.Warn().Err(err).Msg("event forwarding failed")
	}
}
