// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/funkylog/internal/forward"
	"github.com/tomtom215/funkylog/internal/validation"
)

// Validate checks struct tags, then the rules that span fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateCollector(); err != nil {
		return err
	}

	if err := c.validateMetrics(); err != nil {
		return err
	}

	return c.validateDemo()
}

// validateCollector checks the settings the selected collector kind needs.
func (c *Config) validateCollector() error {
	switch c.Collector.Kind {
	case forward.KindDogStatsD:
		if c.Collector.Address == "" {
			return fmt.Errorf("collector.address is required when collector.kind=%s", forward.KindDogStatsD)
		}
	case forward.KindNATS:
		if c.Collector.NATS.URL == "" {
			return fmt.Errorf("collector.nats.url is required when collector.kind=%s", forward.KindNATS)
		}
		if !strings.HasPrefix(c.Collector.NATS.URL, "nats://") && !strings.HasPrefix(c.Collector.NATS.URL, "tls://") {
			return fmt.Errorf("collector.nats.url must use the nats:// or tls:// scheme, got %q", c.Collector.NATS.URL)
		}
	}

	if c.Collector.Breaker.Interval > 0 && c.Collector.Breaker.Interval < c.Collector.Timeout {
		return fmt.Errorf("collector.breaker.interval (%v) must not be shorter than collector.timeout (%v)",
			c.Collector.Breaker.Interval, c.Collector.Timeout)
	}
	return nil
}

// validateMetrics checks the rate limit only when the endpoint is served.
func (c *Config) validateMetrics() error {
	if !c.Metrics.Enabled() || c.Metrics.RateLimit == 0 {
		return nil
	}
	if c.Metrics.RateWindow <= 0 {
		return fmt.Errorf("metrics.rate_window must be positive when metrics.rate_limit is set")
	}
	return nil
}

// validateDemo rejects an embedded NATS server nothing would publish to.
func (c *Config) validateDemo() error {
	if c.Demo.EmbeddedNATS && c.Collector.Kind != forward.KindNATS {
		return fmt.Errorf("demo.embedded_nats requires collector.kind=%s, got %q", forward.KindNATS, c.Collector.Kind)
	}
	return nil
}
