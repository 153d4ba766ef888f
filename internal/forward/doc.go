// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

/*
Package forward sends a copy of module-tagged log records to an external
events collector.

Every record that carries a module becomes one event named after the
module, with the message as its text and two tags:

	level:<trace|debug|info|warning|error>
	module:<module>

Delivery is best effort. A Forwarder never retries, never blocks longer than
its timeout, and recovers panics raised by the sink it wraps. Failures come
back as *SendError and are handled according to the configured Policy.

# Sinks

A Sink is the transport:

  - StatsdSink: DogStatsD events via github.com/DataDog/datadog-go/v5/statsd
  - PublisherSink: any Watermill message.Publisher, payload encoded as JSON
  - NopSink: discards everything

The NATS publisher is only compiled with the nats build tag:

	go build -tags nats ./...

Without the tag, New returns a *CollectorConstructionError wrapping
ErrNATSNotEnabled for kind "nats".

# Resilience

Each Forwarder wraps its sink with:

  - a per-call timeout (250ms by default), enforced even when the sink ignores ctx
  - a circuit breaker (sony/gobreaker/v2) that fails fast after repeated failures
  - Prometheus metrics (funkylog_events_forwarded_total, funkylog_event_forward_duration_seconds)

# Usage

	fwd, err := forward.New(forward.Config{
	    Kind:    forward.KindDogStatsD,
	    Address: "127.0.0.1:8125",
	    Timeout: 250 * time.Millisecond,
	}, logger)
	if err != nil {
	    return err // *forward.CollectorConstructionError
	}
	defer fwd.Close()

	err = fwd.Forward(ctx, "db::pool", "connection reset", []string{"level:warning", "module:db::pool"})
*/
package forward
