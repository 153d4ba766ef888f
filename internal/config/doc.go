// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

/*
Package config loads the funkylog configuration.

# Configuration Sources

Load layers three sources with Koanf v2, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: the path in FUNKYLOG_CONFIG, or the first of
    DefaultConfigPaths that exists
 3. Environment variables prefixed FUNKYLOG_

The filter directive itself is not part of the file. It is read at install
time from the variable named by logging.env_var (FUNKYLOG by default) and
falls back to logging.filter.

# Environment Variables

Logging (LoggingConfig):
  - FUNKYLOG_ENV_VAR: variable holding the filter directive (default: FUNKYLOG)
  - FUNKYLOG_FILTER: directive used when that variable is unset (default: error)
  - FUNKYLOG_ALIGN_MODULES: pad module names to the widest seen (default: false)
  - FUNKYLOG_COLOR: auto, always or never (default: auto)
  - FUNKYLOG_MODULE_FIELD: zerolog field carrying the module (default: module)
  - FUNKYLOG_REDACT: mask credential-like fields (default: true)

Collector (CollectorConfig):
  - FUNKYLOG_COLLECTOR_KIND: dogstatsd, nats, gochannel or none (default: dogstatsd)
  - FUNKYLOG_COLLECTOR_ADDRESS: DogStatsD agent (default: 127.0.0.1:8125)
  - FUNKYLOG_COLLECTOR_NAMESPACE: metric namespace and topic prefix
  - FUNKYLOG_COLLECTOR_TOPIC: Watermill topic (default: funkylog.events)
  - FUNKYLOG_COLLECTOR_TIMEOUT: bound on one forward (default: 250ms)
  - FUNKYLOG_COLLECTOR_POLICY: report, drop or panic-in-debug (default: report)
  - FUNKYLOG_COLLECTOR_DEBUG: enable panic-in-debug panics (default: false)
  - FUNKYLOG_COLLECTOR_REPORT_INTERVAL: spacing of failure reports (default: 10s)
  - FUNKYLOG_BREAKER_*: MAX_REQUESTS, INTERVAL, TIMEOUT, FAILURE_THRESHOLD
  - FUNKYLOG_NATS_*: URL, CONNECT_TIMEOUT, MAX_RECONNECTS, RECONNECT_WAIT,
    RECONNECT_BUFFER

Metrics (MetricsConfig):
  - FUNKYLOG_METRICS_ADDR: serve /metrics on this address (default: disabled)
  - FUNKYLOG_METRICS_RATE_LIMIT: requests per window per client (default: 60)
  - FUNKYLOG_METRICS_RATE_WINDOW: rate limit window (default: 1m)

Demo binary (DemoConfig):
  - FUNKYLOG_DEMO_ONCE: write the example records and exit (default: false)
  - FUNKYLOG_DEMO_INTERVAL: delay between emitted batches (default: 2s)
  - FUNKYLOG_DEMO_EMBEDDED_NATS: start an in-process NATS server, needs
    collector.kind=nats (default: false)

# Example YAML

	logging:
	  filter: warn,db=debug
	  align_modules: true
	collector:
	  kind: nats
	  topic: app.logs
	  nats:
	    url: nats://nats.internal:4222
	metrics:
	  addr: 127.0.0.1:9102

# Validation

Load validates struct tags through internal/validation, then cross-field
rules in Validate. Messages name the koanf key of the offending field.
*/
package config
