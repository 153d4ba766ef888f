// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

//go:build nats

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	natsgo "github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

func TestEmbeddedNATS_Lifecycle(t *testing.T) {
	var logs lockedBuffer
	srv, err := StartEmbeddedNATS(EmbeddedNATSConfig{}, zerolog.New(&logs))
	if err != nil {
		t.Fatalf("StartEmbeddedNATS() error = %v", err)
	}
	if srv.ClientURL() == "" {
		t.Fatal("ClientURL() should not be empty")
	}

	nc, err := natsgo.Connect(srv.ClientURL())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	nc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("embedded server did not stop")
	}
	if srv.Running() {
		t.Error("server should not be running after Serve returns")
	}
}
