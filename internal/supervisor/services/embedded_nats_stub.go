// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

//go:build !nats

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/funkylog/internal/forward"
)

// EmbeddedNATSConfig configures the in-process NATS collector.
type EmbeddedNATSConfig struct {
	Host         string
	Port         int
	ReadyTimeout time.Duration
}

// EmbeddedNATS is a stub when NATS support is not compiled in.
// Build with -tags=nats to enable it.
type EmbeddedNATS struct{}

// StartEmbeddedNATS returns forward.ErrNATSNotEnabled.
func StartEmbeddedNATS(EmbeddedNATSConfig, zerolog.Logger) (*EmbeddedNATS, error) {
	return nil, forward.ErrNATSNotEnabled
}

// ClientURL returns "".
func (e *EmbeddedNATS) ClientURL() string { return "" }

// Running always returns false for the stub.
func (e *EmbeddedNATS) Running() bool { return false }

// Serve waits for ctx.
func (e *EmbeddedNATS) Serve(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// String implements fmt.Stringer.
func (e *EmbeddedNATS) String() string { return "embedded-nats" }
