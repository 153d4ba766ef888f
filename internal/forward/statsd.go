// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package forward

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/DataDog/datadog-go/v5/statsd"
)

// DefaultStatsdAddress is the local DogStatsD agent.
const DefaultStatsdAddress = "127.0.0.1:8125"

// StatsdSink sends events to a DogStatsD agent.
type StatsdSink struct {
	client statsd.ClientInterface
}

// NewStatsdSink connects a DogStatsD client to addr. The address is
// validated eagerly so a bad endpoint fails here and not on first send.
func NewStatsdSink(addr, namespace string) (*StatsdSink, error) {
	if err := validateStatsdAddress(addr); err != nil {
		return nil, err
	}

	opts := []statsd.Option{statsd.WithoutTelemetry()}
	if namespace != "" {
		opts = append(opts, statsd.WithNamespace(namespace))
	}

	client, err := statsd.New(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("create statsd client: %w", err)
	}
	return &StatsdSink{client: client}, nil
}

// NewStatsdSinkWithClient wraps an existing client.
func NewStatsdSinkWithClient(client statsd.ClientInterface) *StatsdSink {
	return &StatsdSink{client: client}
}

// Event sends a DogStatsD event titled name.
func (s *StatsdSink) Event(ctx context.Context, name, text string, tags []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.client.Event(&statsd.Event{
		Title:     name,
		Text:      text,
		Tags:      tags,
		AlertType: alertType(tagValue(tags, "level")),
	})
}

// Close flushes and closes the client.
func (s *StatsdSink) Close() error {
	return s.client.Close()
}

func alertType(level string) statsd.EventAlertType {
	switch level {
	case "error":
		return statsd.Error
	case "warning":
		return statsd.Warning
	default:
		return statsd.Info
	}
}

func validateStatsdAddress(addr string) error {
	if path, ok := strings.CutPrefix(addr, "unix://"); ok {
		if path == "" {
			return fmt.Errorf("%w: empty socket path", ErrInvalidAddress)
		}
		return nil
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidAddress)
	}
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("%w: port %q out of range", ErrInvalidAddress, port)
	}
	return nil
}
