// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/funkylog"
	"github.com/tomtom215/funkylog/internal/config"
	"github.com/tomtom215/funkylog/internal/forward"
	"github.com/tomtom215/funkylog/internal/logging"
	"github.com/tomtom215/funkylog/internal/supervisor"
	"github.com/tomtom215/funkylog/internal/supervisor/services"
)

const demoModule = "funkylog_demo"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "funkylog-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	diag := logging.Diagnostics()

	var natsServer *services.EmbeddedNATS
	if cfg.Demo.EmbeddedNATS {
		natsServer, err = services.StartEmbeddedNATS(services.EmbeddedNATSConfig{}, diag)
		if err != nil {
			return fmt.Errorf("start embedded NATS: %w", err)
		}
		cfg.Collector.NATS.URL = natsServer.ClientURL()
	}

	b, err := cfg.NewBuilder()
	if err != nil {
		return err
	}
	if err := b.TryInstall(); err != nil {
		_ = b.CloseForwarder()
		return err
	}
	defer func() {
		if err := funkylog.Close(); err != nil {
			diag.Warn().Err(err).Msg("closing collector")
		}
	}()

	writeExample()
	if cfg.Demo.Once {
		return nil
	}

	return serve(cfg, b.ConfiguredForwarder(), natsServer)
}

// writeExample writes one record per level, a multi-line record and a
// record from a nested module.
func writeExample() {
	log := funkylog.Module(demoModule)
	log.Info().Msg("such information")
	log.Warn().Msg("o_O")
	log.Error().Msg("boom")
	log.Debug().Msg("deboogging")
	log.Info().Msg("a message\nspanning\nthree lines")
	deep()
}

func deep() {
	log := funkylog.Module(demoModule + "::one")
	log.Trace().Msg("one level deep!")
}

func serve(cfg *config.Config, fwd logging.EventForwarder, natsServer *services.EmbeddedNATS) error {
	tree, err := supervisor.NewSupervisorTree(slog.Default(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}

	if natsServer != nil {
		tree.AddCollectorService(natsServer)
	}
	if src := eventSource(fwd); src != nil {
		tree.AddCollectorService(services.NewEventTailService(src, logging.Diagnostics()))
	}

	if cfg.Metrics.Enabled() {
		srv := services.NewMetricsServer(cfg.Metrics.Addr, cfg.Metrics.RateLimit, cfg.Metrics.RateWindow)
		tree.AddTelemetryService(services.NewHTTPServerService("metrics-server", srv, 5*time.Second))
		log := logging.Module(demoModule)
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("serving metrics")
	}

	tree.AddWorkloadService(services.NewEmitterService(cfg.Demo.Interval, []services.Emission{
		{Module: demoModule, Level: zerolog.InfoLevel, Message: "such information"},
		{Module: demoModule, Level: zerolog.WarnLevel, Message: "o_O"},
		{Module: demoModule, Level: zerolog.ErrorLevel, Message: "boom"},
		{Module: demoModule, Level: zerolog.DebugLevel, Message: "deboogging"},
		{Module: demoModule + "::one", Level: zerolog.TraceLevel, Message: "one level deep!"},
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	diag := logging.Diagnostics()
	for _, svc := range unstopped {
		diag.Warn().Str("service", svc.Name).Msg("service failed to stop")
	}
	return nil
}

// eventSource returns the forwarder's sink when forwarded events can be
// read back, as with the gochannel collector.
func eventSource(fwd logging.EventForwarder) services.EventSource {
	f, ok := fwd.(*forward.Forwarder)
	if !ok {
		return nil
	}
	src, ok := f.Sink().(*forward.PublisherSink)
	if !ok || !src.CanSubscribe() {
		return nil
	}
	return src
}
