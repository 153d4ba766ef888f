// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

//go:build !nats

package forward

import "github.com/rs/zerolog"

// NewNATSSink is a stub when built without the nats tag.
func NewNATSSink(NATSConfig, string, string, zerolog.Logger) (*PublisherSink, error) {
	return nil, ErrNATSNotEnabled
}

func newNATSSink(Config, zerolog.Logger) (Sink, error) {
	return nil, ErrNATSNotEnabled
}
