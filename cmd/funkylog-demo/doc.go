// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

/*
Command funkylog-demo installs the funkylog console logger and writes a few
records at every level, including a multi-line message and a record from a
nested module.

	FUNKYLOG=trace FUNKYLOG_DEMO_ONCE=true funkylog-demo

Unless demo.once is set it keeps emitting records under a suture supervision tree
until SIGINT or SIGTERM, and serves /metrics when metrics.addr is set:

	FUNKYLOG=info,funkylog_demo::one=trace \
	FUNKYLOG_METRICS_ADDR=127.0.0.1:9102 \
	FUNKYLOG_COLLECTOR_KIND=gochannel \
	FUNKYLOG_DEMO_INTERVAL=2s \
	funkylog-demo

With collector.kind=gochannel every forwarded event is echoed on stderr by
an event tail. Built with -tags nats, demo.embedded_nats (FUNKYLOG_DEMO_EMBEDDED_NATS)
starts an in-process NATS server for collector.kind=nats.

Configuration is read by internal/config: defaults, then funkylog.yaml (or
the file in FUNKYLOG_CONFIG), then FUNKYLOG_* environment variables.
*/
package main
