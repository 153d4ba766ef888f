// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package config

import (
	"time"
)

// Config holds all funkylog configuration.
type Config struct {
	Logging   LoggingConfig   `koanf:"logging"`
	Collector CollectorConfig `koanf:"collector"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Demo      DemoConfig      `koanf:"demo"`
}

// LoggingConfig controls the console formatter.
type LoggingConfig struct {
	EnvVar       string `koanf:"env_var" validate:"required"`
	Filter       string `koanf:"filter" validate:"filterdirective"`
	AlignModules bool   `koanf:"align_modules"`
	Color        string `koanf:"color" validate:"omitempty,oneof=auto always never"`
	ModuleField  string `koanf:"module_field" validate:"required"`
	Redact       bool   `koanf:"redact"`
}

// CollectorConfig selects where module records are forwarded.
type CollectorConfig struct {
	Kind           string        `koanf:"kind" validate:"oneof=dogstatsd nats gochannel none"`
	Address        string        `koanf:"address" validate:"omitempty,collectoraddr"`
	Namespace      string        `koanf:"namespace" validate:"max=64"`
	Topic          string        `koanf:"topic" validate:"required,max=255"`
	Timeout        time.Duration `koanf:"timeout" validate:"gt=0"`
	Policy         string        `koanf:"policy" validate:"oneof=report drop panic-in-debug"`
	Debug          bool          `koanf:"debug"`
	ReportInterval time.Duration `koanf:"report_interval" validate:"gte=0"`
	Breaker        BreakerConfig `koanf:"breaker"`
	NATS           NATSConfig    `koanf:"nats"`
}

// BreakerConfig tunes the forwarder circuit breaker.
type BreakerConfig struct {
	MaxRequests      uint32        `koanf:"max_requests" validate:"gte=1"`
	Interval         time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout          time.Duration `koanf:"timeout" validate:"gt=0"`
	FailureThreshold uint32        `koanf:"failure_threshold" validate:"gte=1"`
}

// NATSConfig configures the NATS collector.
type NATSConfig struct {
	URL             string        `koanf:"url" validate:"omitempty,url"`
	ConnectTimeout  time.Duration `koanf:"connect_timeout" validate:"gt=0"`
	MaxReconnects   int           `koanf:"max_reconnects" validate:"gte=-1"`
	ReconnectWait   time.Duration `koanf:"reconnect_wait" validate:"gte=0"`
	ReconnectBuffer int           `koanf:"reconnect_buffer" validate:"gte=0"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Addr enables the /metrics endpoint when set.
	Addr       string        `koanf:"addr" validate:"omitempty,hostname_port"`
	RateLimit  int           `koanf:"rate_limit" validate:"gte=0"`
	RateWindow time.Duration `koanf:"rate_window" validate:"gte=0"`
}

// Enabled reports whether the metrics endpoint should be served.
func (m MetricsConfig) Enabled() bool {
	return m.Addr != ""
}

// DemoConfig drives cmd/funkylog-demo.
type DemoConfig struct {
	// Once writes the example records and exits without starting the tree.
	Once bool `koanf:"once"`
	// Interval is the delay between emitted batches.
	Interval time.Duration `koanf:"interval" validate:"gt=0"`
	// EmbeddedNATS starts an in-process NATS server for collector.kind=nats.
	EmbeddedNATS bool `koanf:"embedded_nats"`
}
