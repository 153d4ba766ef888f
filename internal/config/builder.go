// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package config

import (
	"fmt"
	"os"

	"github.com/tomtom215/funkylog/internal/forward"
	"github.com/tomtom215/funkylog/internal/logging"
)

// ForwardConfig converts the collector section for forward.New.
func (c *Config) ForwardConfig() (forward.Config, error) {
	policy, err := forward.ParsePolicy(c.Collector.Policy)
	if err != nil {
		return forward.Config{}, err
	}

	col := c.Collector
	return forward.Config{
		Kind:           col.Kind,
		Address:        col.Address,
		Namespace:      col.Namespace,
		Topic:          col.Topic,
		Timeout:        col.Timeout,
		Policy:         policy,
		Debug:          col.Debug,
		ReportInterval: col.ReportInterval,
		Breaker: forward.BreakerConfig{
			Name:             "funkylog-forwarder",
			MaxRequests:      col.Breaker.MaxRequests,
			Interval:         col.Breaker.Interval,
			Timeout:          col.Breaker.Timeout,
			FailureThreshold: col.Breaker.FailureThreshold,
		},
		NATS: forward.NATSConfig{
			URL:             col.NATS.URL,
			ConnectTimeout:  col.NATS.ConnectTimeout,
			MaxReconnects:   col.NATS.MaxReconnects,
			ReconnectWait:   col.NATS.ReconnectWait,
			ReconnectBuffer: col.NATS.ReconnectBuffer,
		},
	}, nil
}

// Directive returns the filter directive to install: the value of the
// configured environment variable, or logging.filter when it is unset.
func (c *Config) Directive() string {
	if v := os.Getenv(c.Logging.EnvVar); v != "" {
		return v
	}
	return c.Logging.Filter
}

// NewBuilder returns a logging builder with every configured option
// applied. The collector is constructed here, so an unreachable or
// malformed collector fails with *forward.CollectorConstructionError.
func (c *Config) NewBuilder() (*logging.Builder, error) {
	fwdCfg, err := c.ForwardConfig()
	if err != nil {
		return nil, err
	}
	color, err := logging.ParseColorMode(c.Logging.Color)
	if err != nil {
		return nil, err
	}

	b, err := logging.NewBuilderWithCollector(fwdCfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return b.
		Filter(logging.ParseFilter(c.Directive())).
		AlignModules(c.Logging.AlignModules).
		Color(color).
		ModuleField(c.Logging.ModuleField).
		Redact(c.Logging.Redact), nil
}

// Install builds the logger and installs it process wide. It returns
// logging.ErrAlreadyInitialized when a logger is already installed.
func (c *Config) Install() error {
	if logging.Installed() {
		return logging.ErrAlreadyInitialized
	}
	b, err := c.NewBuilder()
	if err != nil {
		return err
	}
	if err := b.TryInstall(); err != nil {
		_ = b.CloseForwarder()
		return err
	}
	return nil
}
