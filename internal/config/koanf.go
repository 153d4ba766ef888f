// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/funkylog/internal/forward"
	"github.com/tomtom215/funkylog/internal/logging"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"funkylog.yaml",
	"funkylog.yml",
	"/etc/funkylog/config.yaml",
	"/etc/funkylog/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "FUNKYLOG_CONFIG"

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "FUNKYLOG_"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	fwd := forward.DefaultConfig()
	return &Config{
		Logging: LoggingConfig{
			EnvVar:       logging.DefaultEnvVar,
			Filter:       "error",
			AlignModules: false,
			Color:        "auto",
			ModuleField:  logging.DefaultModuleField,
			Redact:       true,
		},
		Collector: CollectorConfig{
			Kind:           fwd.Kind,
			Address:        fwd.Address,
			Namespace:      "",
			Topic:          fwd.Topic,
			Timeout:        fwd.Timeout,
			Policy:         fwd.Policy.String(),
			Debug:          false,
			ReportInterval: fwd.ReportInterval,
			Breaker: BreakerConfig{
				MaxRequests:      fwd.Breaker.MaxRequests,
				Interval:         fwd.Breaker.Interval,
				Timeout:          fwd.Breaker.Timeout,
				FailureThreshold: fwd.Breaker.FailureThreshold,
			},
			NATS: NATSConfig{
				URL:             fwd.NATS.URL,
				ConnectTimeout:  fwd.NATS.ConnectTimeout,
				MaxReconnects:   fwd.NATS.MaxReconnects,
				ReconnectWait:   fwd.NATS.ReconnectWait,
				ReconnectBuffer: fwd.NATS.ReconnectBuffer,
			},
		},
		Metrics: MetricsConfig{
			Addr:       "", // Disabled by default
			RateLimit:  60,
			RateWindow: time.Minute,
		},
		Demo: DemoConfig{
			Once:         false,
			Interval:     2 * time.Second,
			EmbeddedNATS: false,
		},
	}
}

// Default returns the built-in configuration without reading any source.
func Default() *Config {
	return defaultConfig()
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: FUNKYLOG_ prefixed overrides
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile is Load with an explicit config file path. An empty path skips
// the file layer.
func LoadFile(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// FUNKYLOG_COLLECTOR_TIMEOUT -> collector.timeout
	// FUNKYLOG_NATS_URL -> collector.nats.url
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lower-cased variable names, without the prefix, to
// koanf paths.
var envMappings = map[string]string{
	// Logging mappings
	"env_var":       "logging.env_var",
	"filter":        "logging.filter",
	"align_modules": "logging.align_modules",
	"color":         "logging.color",
	"module_field":  "logging.module_field",
	"redact":        "logging.redact",

	// Collector mappings
	"collector_kind":            "collector.kind",
	"collector_address":         "collector.address",
	"collector_namespace":       "collector.namespace",
	"collector_topic":           "collector.topic",
	"collector_timeout":         "collector.timeout",
	"collector_policy":          "collector.policy",
	"collector_debug":           "collector.debug",
	"collector_report_interval": "collector.report_interval",

	// Circuit breaker mappings
	"breaker_max_requests":      "collector.breaker.max_requests",
	"breaker_interval":          "collector.breaker.interval",
	"breaker_timeout":           "collector.breaker.timeout",
	"breaker_failure_threshold": "collector.breaker.failure_threshold",

	// NATS mappings
	"nats_url":              "collector.nats.url",
	"nats_connect_timeout":  "collector.nats.connect_timeout",
	"nats_max_reconnects":   "collector.nats.max_reconnects",
	"nats_reconnect_wait":   "collector.nats.reconnect_wait",
	"nats_reconnect_buffer": "collector.nats.reconnect_buffer",

	// Metrics mappings
	"metrics_addr":        "metrics.addr",
	"metrics_rate_limit":  "metrics.rate_limit",
	"metrics_rate_window": "metrics.rate_window",

	// Demo binary mappings
	"demo_once":          "demo.once",
	"demo_interval":      "demo.interval",
	"demo_embedded_nats": "demo.embedded_nats",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - FUNKYLOG_ALIGN_MODULES -> logging.align_modules
//   - FUNKYLOG_COLLECTOR_KIND -> collector.kind
//   - FUNKYLOG_BREAKER_TIMEOUT -> collector.breaker.timeout
//   - FUNKYLOG_DEMO_ONCE -> demo.once
//
// Unmapped keys (including FUNKYLOG_CONFIG) return "" and are skipped.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envMappings[key]
}
