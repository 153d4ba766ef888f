// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/funkylog/internal/logging"
)

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTPServer under suture. ListenAndServe runs on
// its own goroutine; cancelling the Serve context triggers Shutdown bounded
// by the shutdown timeout.
//
//	server := services.NewMetricsServer("127.0.0.1:9102", 60, time.Minute)
//	tree.AddTelemetryService(services.NewHTTPServerService("metrics-server", server, 5*time.Second))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
}

// NewHTTPServerService wraps server. An empty name becomes "http-server";
// a non-positive shutdownTimeout becomes 10 seconds.
func NewHTTPServerService(name string, server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	if name == "" {
		name = "http-server"
	}
	return &HTTPServerService{server: server, shutdownTimeout: shutdownTimeout, name: name}
}

// Serve implements suture.Service. http.ErrServerClosed counts as a clean
// exit; cancellation returns ctx.Err() after a successful Shutdown.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	log := logging.Module("supervisor::" + h.name)

	done := make(chan error, 1)
	go func() {
		err := h.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()
	if srv, ok := h.server.(*http.Server); ok {
		log.Info().Str("addr", srv.Addr).Msg("listening")
	}

	select {
	case err := <-done:
		if err != nil {
			log.Error().Err(err).Msg("server exited")
			return fmt.Errorf("%s failed: %w", h.name, err)
		}
		return nil

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown incomplete")
			return fmt.Errorf("%s shutdown failed: %w", h.name, err)
		}
		<-done
		log.Debug().Msg("stopped")
		return ctx.Err()
	}
}

// String names the service in suture events.
func (h *HTTPServerService) String() string {
	return h.name
}
