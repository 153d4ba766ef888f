// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// getGaugeValue extracts the value from a Prometheus gauge
func getGaugeValue(gauge prometheus.Gauge) float64 {
	var m io_prometheus_client.Metric
	if err := gauge.Write(&m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

func TestRecordFormatted(t *testing.T) {
	levels := []string{"trace", "debug", "info", "warning", "error"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			before := testutil.ToFloat64(RecordsFormatted.WithLabelValues(level))
			RecordFormatted(level)
			after := testutil.ToFloat64(RecordsFormatted.WithLabelValues(level))
			if after != before+1 {
				t.Errorf("expected counter to increase by 1, got %v -> %v", before, after)
			}
		})
	}
}

func TestRecordFiltered(t *testing.T) {
	before := testutil.ToFloat64(RecordsFiltered.WithLabelValues("debug"))
	RecordFiltered("debug")
	RecordFiltered("debug")
	after := testutil.ToFloat64(RecordsFiltered.WithLabelValues("debug"))
	if after != before+2 {
		t.Errorf("expected counter to increase by 2, got %v -> %v", before, after)
	}
}

func TestRecordConsoleWriteError(t *testing.T) {
	before := testutil.ToFloat64(ConsoleWriteErrors)
	RecordConsoleWriteError()
	if got := testutil.ToFloat64(ConsoleWriteErrors); got != before+1 {
		t.Errorf("expected %v, got %v", before+1, got)
	}
}

func TestRecordEventForward(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		duration time.Duration
	}{
		{"successful forward", ResultOK, 200 * time.Microsecond},
		{"failed forward", ResultError, 3 * time.Millisecond},
		{"timed out forward", ResultTimeout, 250 * time.Millisecond},
		{"breaker rejected", ResultBreakerOpen, 0},
		{"sink panicked", ResultPanic, time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(EventsForwarded.WithLabelValues(tt.result))
			RecordEventForward(tt.result, tt.duration)
			after := testutil.ToFloat64(EventsForwarded.WithLabelValues(tt.result))
			if after != before+1 {
				t.Errorf("expected %s counter to increase by 1, got %v -> %v", tt.result, before, after)
			}
		})
	}
}

func TestGauges(t *testing.T) {
	SetModuleColumnWidth(17)
	if got := getGaugeValue(ModuleColumnWidth); got != 17 {
		t.Errorf("module column width = %v, want 17", got)
	}

	SetBreakerState(2)
	if got := getGaugeValue(ForwarderBreakerState); got != 2 {
		t.Errorf("breaker state = %v, want 2", got)
	}
	SetBreakerState(0)
}

func TestHandler(t *testing.T) {
	RecordFormatted("info")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "funkylog_records_formatted_total") {
		t.Error("expected scrape output to contain funkylog_records_formatted_total")
	}
}
