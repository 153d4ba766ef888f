// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package forward

import (
	"errors"
	"fmt"
)

// ErrNATSNotEnabled is returned when the NATS sink is requested without the nats build tag.
var ErrNATSNotEnabled = errors.New("NATS event forwarding not enabled (build with -tags nats)")

// ErrUnknownKind is returned when the collector kind is not recognised.
var ErrUnknownKind = errors.New("unknown collector kind")

// ErrInvalidAddress is returned when a collector address cannot be used.
var ErrInvalidAddress = errors.New("invalid collector address")

// ErrNilPublisher is returned when a publisher sink is built around a nil publisher.
var ErrNilPublisher = errors.New("publisher cannot be nil")

// ErrClosed is returned by sends after Close.
var ErrClosed = errors.New("forwarder is closed")

// CollectorConstructionError reports that a collector could not be built from
// its configuration. It is returned at initialization time, never on first use.
type CollectorConstructionError struct {
	Kind    string
	Address string
	Err     error
}

func (e *CollectorConstructionError) Error() string {
	if e.Address == "" {
		return fmt.Sprintf("construct %s collector: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("construct %s collector at %q: %v", e.Kind, e.Address, e.Err)
}

func (e *CollectorConstructionError) Unwrap() error {
	return e.Err
}

// SendError reports a failed forward of a single event.
type SendError struct {
	// Name is the event name, the module of the record.
	Name string
	Err  error
	// TimedOut is set when the send exceeded the forwarder timeout.
	TimedOut bool
	// BreakerOpen is set when the circuit breaker rejected the send.
	BreakerOpen bool
}

func (e *SendError) Error() string {
	switch {
	case e.BreakerOpen:
		return fmt.Sprintf("forward event %q: circuit breaker open: %v", e.Name, e.Err)
	case e.TimedOut:
		return fmt.Sprintf("forward event %q: timed out: %v", e.Name, e.Err)
	default:
		return fmt.Sprintf("forward event %q: %v", e.Name, e.Err)
	}
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from a panicking sink.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("sink panicked: %v", e.Value)
}
