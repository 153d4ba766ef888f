// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

/*
Package services provides suture.Service implementations for funkylog
processes.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps any ListenAndServe/Shutdown server with graceful shutdown
  - NewMetricsServer builds the chi router it usually runs: /metrics,
    /healthz, per-IP rate limiting via httprate

Emitter (EmitterService):
  - Writes a fixed set of module records on every tick

Event Tail (EventTailService):
  - Subscribes to a GoChannel collector and prints each forwarded event
    on the diagnostic logger

Embedded NATS (EmbeddedNATS):
  - Runs a core NATS server in process for the nats collector kind
  - Build tag: nats

Every service returns ctx.Err() once its context is canceled.
*/
package services
