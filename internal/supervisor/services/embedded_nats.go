// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

//go:build nats

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/rs/zerolog"
)

// EmbeddedNATSConfig configures the in-process NATS collector.
type EmbeddedNATSConfig struct {
	Host string
	// Port 0 picks a random free port.
	Port         int
	ReadyTimeout time.Duration
}

// EmbeddedNATS runs a core NATS server inside the process so the nats
// collector kind works without external infrastructure. JetStream is not
// enabled; forwarded events are fire-and-forget.
type EmbeddedNATS struct {
	server    *server.Server
	clientURL string
}

// StartEmbeddedNATS starts the server and waits until it accepts clients.
// It is started eagerly so the collector can connect before the
// supervisor tree runs.
func StartEmbeddedNATS(cfg EmbeddedNATSConfig, logger zerolog.Logger) (*EmbeddedNATS, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	port := cfg.Port
	if port == 0 {
		port = server.RANDOM_PORT
	}
	if cfg.ReadyTimeout <= 0 {
		cfg.ReadyTimeout = 10 * time.Second
	}

	ns, err := server.NewServer(&server.Options{
		ServerName: "funkylog-collector",
		Host:       cfg.Host,
		Port:       port,
		NoSigs:     true,
		MaxPayload: 1024 * 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("create NATS server: %w", err)
	}
	ns.SetLoggerV2(&natsLogger{log: logger.With().Str("component", "nats-server").Logger()}, false, false, false)

	go ns.Start()

	if !ns.ReadyForConnections(cfg.ReadyTimeout) {
		ns.Shutdown()
		return nil, fmt.Errorf("NATS server not ready within %v", cfg.ReadyTimeout)
	}

	return &EmbeddedNATS{server: ns, clientURL: ns.ClientURL()}, nil
}

// ClientURL returns the connection URL for clients.
func (e *EmbeddedNATS) ClientURL() string {
	return e.clientURL
}

// Running reports server health.
func (e *EmbeddedNATS) Running() bool {
	return e.server.Running()
}

// Serve implements suture.Service. It holds the server until ctx is
// canceled, then shuts it down.
func (e *EmbeddedNATS) Serve(ctx context.Context) error {
	<-ctx.Done()
	e.server.Shutdown()
	e.server.WaitForShutdown()
	return ctx.Err()
}

// String implements fmt.Stringer.
func (e *EmbeddedNATS) String() string {
	return "embedded-nats"
}

// natsLogger adapts zerolog to the NATS server logger.
type natsLogger struct {
	log zerolog.Logger
}

func (l *natsLogger) Noticef(format string, v ...interface{}) { l.log.Info().Msgf(format, v...) }
func (l *natsLogger) Warnf(format string, v ...interface{})   { l.log.Warn().Msgf(format, v...) }
func (l *natsLogger) Fatalf(format string, v ...interface{})  { l.log.Error().Msgf(format, v...) }
func (l *natsLogger) Errorf(format string, v ...interface{})  { l.log.Error().Msgf(format, v...) }
func (l *natsLogger) Debugf(format string, v ...interface{})  { l.log.Debug().Msgf(format, v...) }
func (l *natsLogger) Tracef(format string, v ...interface{})  { l.log.Trace().Msgf(format, v...) }
