// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

//go:build nats

package forward

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// NewNATSSink connects a Watermill NATS publisher and wraps it in a
// PublisherSink. Core NATS is used; events are fire-and-forget so no
// JetStream stream is required on the server.
func NewNATSSink(cfg NATSConfig, topic, namespace string, logger zerolog.Logger) (*PublisherSink, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: empty NATS URL", ErrInvalidAddress)
	}
	defaults := DefaultNATSConfig()
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaults.ConnectTimeout
	}
	if cfg.ReconnectWait <= 0 {
		cfg.ReconnectWait = defaults.ReconnectWait
	}
	if cfg.ReconnectBuffer == 0 {
		cfg.ReconnectBuffer = defaults.ReconnectBuffer
	}

	wmLogger := newWatermillLogger(logger)

	natsOpts := []natsgo.Option{
		natsgo.Name("funkylog"),
		natsgo.Timeout(cfg.ConnectTimeout),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.ReconnectBufSize(cfg.ReconnectBuffer),
		natsgo.DisconnectErrHandler(func(nc *natsgo.Conn, err error) {
			if err != nil {
				wmLogger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			wmLogger.Info("NATS reconnected", watermill.LogFields{
				"url": nc.ConnectedUrl(),
			})
		}),
		natsgo.ErrorHandler(func(nc *natsgo.Conn, sub *natsgo.Subscription, err error) {
			fields := watermill.LogFields{}
			if sub != nil {
				fields["subject"] = sub.Subject
			}
			wmLogger.Error("NATS error", err, fields)
		}),
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         cfg.URL,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			Disabled: true,
		},
	}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill NATS publisher: %w", err)
	}

	return NewPublisherSink(pub, topic, namespace)
}

func newNATSSink(cfg Config, logger zerolog.Logger) (Sink, error) {
	return NewNATSSink(cfg.NATS, cfg.Topic, cfg.Namespace, logger)
}
