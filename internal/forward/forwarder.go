// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package forward

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/funkylog/internal/metrics"
)

// Forwarder sends events through a Sink with a timeout and a circuit breaker.
// It is safe for concurrent use.
type Forwarder struct {
	sink           Sink
	timeout        time.Duration
	policy         Policy
	debug          bool
	reportInterval time.Duration
	breaker        *gobreaker.CircuitBreaker[struct{}]
	logger         zerolog.Logger
	closed         atomic.Bool
}

// New builds the sink named by cfg.Kind and wraps it in a Forwarder.
// An unusable configuration fails here with *CollectorConstructionError.
func New(cfg Config, logger zerolog.Logger) (*Forwarder, error) {
	kind := strings.ToLower(strings.TrimSpace(cfg.Kind))
	if kind == "" {
		kind = KindDogStatsD
	}

	var (
		sink    Sink
		err     error
		address string
	)
	switch kind {
	case KindDogStatsD:
		address = cfg.Address
		if address == "" {
			address = DefaultStatsdAddress
		}
		sink, err = NewStatsdSink(address, cfg.Namespace)
	case KindNATS:
		address = cfg.NATS.URL
		sink, err = newNATSSink(cfg, logger)
	case KindGoChannel:
		sink = NewGoChannelSink(cfg.Topic, cfg.Namespace, logger)
	case KindNone:
		sink = NopSink{}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
	if err != nil {
		return nil, &CollectorConstructionError{Kind: kind, Address: address, Err: err}
	}

	return NewForwarder(sink, cfg, logger), nil
}

// NewForwarder wraps an existing sink. Only the timeout, policy, debug,
// report interval and breaker fields of cfg are used.
func NewForwarder(sink Sink, cfg Config, logger zerolog.Logger) *Forwarder {
	if sink == nil {
		sink = NopSink{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Breaker.Name == "" {
		cfg.Breaker.Name = "funkylog-forwarder"
	}
	return &Forwarder{
		sink:           sink,
		timeout:        cfg.Timeout,
		policy:         cfg.Policy,
		debug:          cfg.Debug,
		reportInterval: cfg.ReportInterval,
		breaker:        newCircuitBreaker(cfg.Breaker, logger),
		logger:         logger,
	}
}

// Forward sends one event. It makes a single attempt, never panics and
// never blocks longer than the configured timeout. Failures are returned as
// *SendError.
func (f *Forwarder) Forward(ctx context.Context, name, text string, tags []string) error {
	start := time.Now()
	result := metrics.ResultOK
	defer func() {
		metrics.RecordEventForward(result, time.Since(start))
	}()

	if f.closed.Load() {
		result = metrics.ResultError
		return &SendError{Name: name, Err: ErrClosed}
	}

	_, err := f.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, f.send(ctx, name, text, tags)
	})
	if err == nil {
		return nil
	}

	sendErr := &SendError{Name: name, Err: err}
	var panicErr *PanicError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		sendErr.BreakerOpen = true
		result = metrics.ResultBreakerOpen
	case errors.Is(err, context.DeadlineExceeded):
		sendErr.TimedOut = true
		result = metrics.ResultTimeout
	case errors.As(err, &panicErr):
		result = metrics.ResultPanic
	default:
		result = metrics.ResultError
	}
	return sendErr
}

// send runs the sink on its own goroutine so a sink that ignores ctx
// still cannot hold the caller past the timeout.
func (f *Forwarder) send(ctx context.Context, name, text string, tags []string) error {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- &PanicError{Value: r}
			}
		}()
		done <- f.sink.Event(ctx, name, text, tags)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("send event: %w", ctx.Err())
	}
}

// Policy returns the failure policy.
func (f *Forwarder) Policy() Policy {
	return f.policy
}

// Debug reports whether PolicyPanicInDebug panics.
func (f *Forwarder) Debug() bool {
	return f.debug
}

// ReportInterval is the minimum spacing between reported failures.
func (f *Forwarder) ReportInterval() time.Duration {
	return f.reportInterval
}

// BreakerState returns the circuit breaker state name.
func (f *Forwarder) BreakerState() string {
	return f.breaker.State().String()
}

// Sink returns the wrapped sink.
func (f *Forwarder) Sink() Sink {
	return f.sink
}

// Close closes the sink. Later forwards fail with ErrClosed.
func (f *Forwarder) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := f.sink.Close(); err != nil {
		return fmt.Errorf("close sink: %w", err)
	}
	return nil
}
