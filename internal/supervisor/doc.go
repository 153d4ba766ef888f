// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

/*
Package supervisor runs the long-lived services of a funkylog process under
suture v4.

# Overview

The tree has three layers so a failure in one never restarts another:

	RootSupervisor ("funkylog")
	├── CollectorSupervisor ("collector-layer")
	│   ├── EmbeddedNATS (collector.kind=nats with an embedded server, build tag: nats)
	│   └── EventTailService (collector.kind=gochannel)
	├── TelemetrySupervisor ("telemetry-layer")
	│   └── HTTPServerService serving /metrics (metrics.addr set)
	└── WorkloadSupervisor ("workload-layer")
	    └── EmitterService

# Logging

Supervisor events go through a *slog.Logger via sutureslog. Once the
funkylog logger is installed slog.Default() renders them in the console
format, with the module taken from the logging call site.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(slog.Default(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	srv := services.NewMetricsServer(cfg.Metrics.Addr, cfg.Metrics.RateLimit, cfg.Metrics.RateWindow)
	tree.AddTelemetryService(services.NewHTTPServerService("metrics-server", srv, 5*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tree.Serve(ctx)
*/
package supervisor
