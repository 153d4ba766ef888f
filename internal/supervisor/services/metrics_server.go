// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package services

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/funkylog/internal/metrics"
	"github.com/tomtom215/funkylog/internal/middleware"
)

// NewMetricsRouter serves /metrics and /healthz. A positive limit rate
// limits each client IP to limit requests per window.
func NewMetricsRouter(limit int, window time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogging("http::metrics"))
	if limit > 0 && window > 0 {
		r.Use(httprate.LimitByIP(limit, window))
	}

	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}

// NewMetricsServer returns an *http.Server for NewMetricsRouter on addr.
func NewMetricsServer(addr string, limit int, window time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewMetricsRouter(limit, window),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
