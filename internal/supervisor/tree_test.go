// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package supervisor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/funkylog/internal/logging"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("creates hierarchical supervisor tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}

		if tree.Root() == nil {
			t.Error("root supervisor should not be nil")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(nil, TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}

		if tree.config != DefaultTreeConfig() {
			t.Errorf("expected defaults, got %+v", tree.config)
		}
		if tree.logger == nil {
			t.Error("nil logger should fall back to slog.Default()")
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	t.Run("tree starts and stops gracefully", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   100 * time.Millisecond,
			ShutdownTimeout:  time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}

		svcs := []*mockService{
			newMockService("mock-collector"),
			newMockService("mock-telemetry"),
			newMockService("mock-workload"),
		}
		tree.AddCollectorService(svcs[0])
		tree.AddTelemetryService(svcs[1])
		tree.AddWorkloadService(svcs[2])

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			errCh <- tree.Serve(ctx)
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("tree did not shut down in time")
		}

		for _, svc := range svcs {
			if svc.starts() < 1 {
				t.Errorf("%s was not started", svc)
			}
			if svc.stops() != svc.starts() {
				t.Errorf("%s: %d starts, %d stops", svc, svc.starts(), svc.stops())
			}
		}
	})

	t.Run("ServeBackground returns channel", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		errCh := tree.ServeBackground(ctx)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(time.Second):
			t.Error("did not receive from error channel")
		}

		report, err := tree.UnstoppedServiceReport()
		if err != nil {
			t.Errorf("UnstoppedServiceReport() error = %v", err)
		}
		if len(report) != 0 {
			t.Errorf("expected no unstopped services, got %v", report)
		}
	})
}

func TestSupervisorTreeFailureHandling(t *testing.T) {
	t.Run("failing service in one layer is restarted", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 10,
			FailureBackoff:   10 * time.Millisecond,
			ShutdownTimeout:  time.Second,
		})

		failingSvc := newMockService("failing")
		failingSvc.setFailCount(2)

		stableSvc := newMockService("stable")

		tree.AddWorkloadService(failingSvc)
		tree.AddTelemetryService(stableSvc)

		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		go func() { _ = tree.Serve(ctx) }()
		time.Sleep(200 * time.Millisecond)

		if failingSvc.starts() < 3 {
			t.Errorf("expected at least 3 starts for failing service, got %d", failingSvc.starts())
		}
		if stableSvc.starts() != 1 {
			t.Errorf("stable service should start once, got %d", stableSvc.starts())
		}
	})

	t.Run("removed workload service is stopped", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

		svc := newMockService("emitter")
		token := tree.AddWorkloadService(svc)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		errCh := tree.ServeBackground(ctx)

		time.Sleep(50 * time.Millisecond)
		if err := tree.RemoveWorkloadService(token); err != nil {
			t.Fatalf("RemoveWorkloadService() error = %v", err)
		}
		time.Sleep(50 * time.Millisecond)

		if svc.stops() < 1 {
			t.Error("removed service should have stopped")
		}
		cancel()
		<-errCh
	})
}

func TestSupervisorEventsUseConsoleFormat(t *testing.T) {
	var buf lockedBuffer
	writer := logging.NewConsoleWriter(&buf, logging.NewFormatter(),
		logging.WithFilter(logging.ParseFilter("info")))
	logger := slog.New(logging.NewSlogHandler(writer, false)).With("module", "supervisor")

	tree, _ := NewSupervisorTree(logger, TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	svc := newMockService("crashy")
	svc.setError(errors.New("boom"))
	tree.AddWorkloadService(svc)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	<-tree.ServeBackground(ctx)

	out := buf.String()
	header := regexp.MustCompile(`(?m)^(LOG|WRN|ERR) \[\d+:\d{2}:\d{2}\.\d{3} supervisor\] `)
	if !header.MatchString(out) {
		t.Fatalf("expected console headers for module supervisor, got %q", out)
	}
	if !strings.Contains(out, "crashy") {
		t.Errorf("expected the failing service to be named, got %q", out)
	}
}

// lockedBuffer is a bytes.Buffer safe for the supervisor's goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestDefaultTreeConfig(t *testing.T) {
	config := DefaultTreeConfig()

	if config.FailureThreshold != 5.0 {
		t.Errorf("expected FailureThreshold 5.0, got %f", config.FailureThreshold)
	}
	if config.FailureDecay != 30.0 {
		t.Errorf("expected FailureDecay 30.0, got %f", config.FailureDecay)
	}
	if config.FailureBackoff != 15*time.Second {
		t.Errorf("expected FailureBackoff 15s, got %v", config.FailureBackoff)
	}
	if config.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected ShutdownTimeout 10s, got %v", config.ShutdownTimeout)
	}
}
