// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Forward outcomes used as the result label.
const (
	ResultOK          = "ok"
	ResultError       = "error"
	ResultTimeout     = "timeout"
	ResultBreakerOpen = "breaker_open"
	ResultPanic       = "panic"
)

var (
	// Formatting Metrics
	RecordsFormatted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funkylog_records_formatted_total",
			Help: "Total number of records written to the console",
		},
		[]string{"level"},
	)

	RecordsFiltered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funkylog_records_filtered_total",
			Help: "Total number of records dropped by the filter directive",
		},
		[]string{"level"},
	)

	ConsoleWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "funkylog_console_write_errors_total",
			Help: "Total number of failed console writes",
		},
	)

	ModuleColumnWidth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "funkylog_module_column_width",
			Help: "Widest module name observed by the column tracker",
		},
	)

	// Forwarding Metrics
	EventsForwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funkylog_events_forwarded_total",
			Help: "Total number of event forward attempts by outcome",
		},
		[]string{"result"},
	)

	EventForwardDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "funkylog_event_forward_duration_seconds",
			Help:    "Duration of a single event forward attempt in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	ForwarderBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "funkylog_forwarder_breaker_state",
			Help: "Forwarder circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// RecordFormatted counts a record written to the console.
func RecordFormatted(level string) {
	RecordsFormatted.WithLabelValues(level).Inc()
}

// RecordFiltered counts a record dropped by the filter.
func RecordFiltered(level string) {
	RecordsFiltered.WithLabelValues(level).Inc()
}

// RecordConsoleWriteError counts a failed console write.
func RecordConsoleWriteError() {
	ConsoleWriteErrors.Inc()
}

// SetModuleColumnWidth publishes the widest module name seen.
func SetModuleColumnWidth(width int) {
	ModuleColumnWidth.Set(float64(width))
}

// RecordEventForward records the outcome and duration of one forward attempt.
func RecordEventForward(result string, duration time.Duration) {
	EventsForwarded.WithLabelValues(result).Inc()
	EventForwardDuration.Observe(duration.Seconds())
}

// SetBreakerState publishes the forwarder breaker state.
func SetBreakerState(state int) {
	ForwarderBreakerState.Set(float64(state))
}

// Handler returns the Prometheus scrape handler for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
