// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

// Package middleware holds the chi middleware used by the metrics server.
//
// RequestID tags each request with an X-Request-ID (generated with
// google/uuid when the client sends none). RequestLogging writes one debug
// line per request through the funkylog console logger, carrying the
// request ID as an extra field.
package middleware
