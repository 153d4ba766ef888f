// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

/*
Package metrics provides Prometheus instrumentation for the log pipeline.

Collectors are registered on the default registry at package init via
promauto, so importing the package is enough to expose them on /metrics.

# Available Metrics

Formatting:
  - funkylog_records_formatted_total: Records written to the console (counter)
    Labels: level (trace, debug, info, warning, error)
  - funkylog_records_filtered_total: Records dropped by the filter directive (counter)
    Labels: level
  - funkylog_console_write_errors_total: Failed console writes (counter)
  - funkylog_module_column_width: Widest module name seen (gauge)

Forwarding:
  - funkylog_events_forwarded_total: Forward attempts by outcome (counter)
    Labels: result (ok, error, timeout, breaker_open, panic)
  - funkylog_event_forward_duration_seconds: Time spent per forward attempt (histogram)
  - funkylog_forwarder_breaker_state: Circuit breaker state (gauge)
    Values: 0=closed, 1=half-open, 2=open

# Metrics Endpoint

	mux.Handle("/metrics", metrics.Handler())
*/
package metrics
