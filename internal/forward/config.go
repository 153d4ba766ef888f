// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package forward

import (
	"fmt"
	"strings"
	"time"
)

// Collector kinds accepted by New.
const (
	KindDogStatsD = "dogstatsd"
	KindNATS      = "nats"
	KindGoChannel = "gochannel"
	KindNone      = "none"
)

// DefaultTimeout bounds a single forward attempt.
const DefaultTimeout = 250 * time.Millisecond

// Policy decides what happens to a failed forward.
type Policy int

const (
	// PolicyReport reports the failure on the error stream, throttled,
	// and lets the console write continue.
	PolicyReport Policy = iota
	// PolicyDrop counts the failure in metrics only.
	PolicyDrop
	// PolicyPanicInDebug panics when the forwarder runs in debug mode and
	// behaves like PolicyReport otherwise.
	PolicyPanicInDebug
)

func (p Policy) String() string {
	switch p {
	case PolicyReport:
		return "report"
	case PolicyDrop:
		return "drop"
	case PolicyPanicInDebug:
		return "panic-in-debug"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses report, drop or panic-in-debug. Empty means report.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "report":
		return PolicyReport, nil
	case "drop":
		return PolicyDrop, nil
	case "panic-in-debug", "panic_in_debug":
		return PolicyPanicInDebug, nil
	default:
		return PolicyReport, fmt.Errorf("unknown failure policy %q", s)
	}
}

// NATSConfig configures the NATS publisher.
type NATSConfig struct {
	// URL is the NATS server connection URL.
	URL string
	// ConnectTimeout bounds the initial dial.
	ConnectTimeout time.Duration
	// MaxReconnects caps reconnection attempts (-1 for unlimited).
	MaxReconnects int
	// ReconnectWait is the delay between reconnection attempts.
	ReconnectWait time.Duration
	// ReconnectBuffer is the bytes buffered while reconnecting.
	ReconnectBuffer int
}

// DefaultNATSConfig returns production defaults for the NATS publisher.
func DefaultNATSConfig() NATSConfig {
	return NATSConfig{
		URL:             "nats://127.0.0.1:4222",
		ConnectTimeout:  2 * time.Second,
		MaxReconnects:   -1,
		ReconnectWait:   2 * time.Second,
		ReconnectBuffer: 1024 * 1024,
	}
}

// Config describes the collector and how failures are treated.
type Config struct {
	// Kind is one of dogstatsd, nats, gochannel or none.
	Kind string
	// Address is the DogStatsD agent address (host:port or unix://path).
	Address string
	// Namespace overrides the DogStatsD namespace and prefixes Watermill topics.
	Namespace string
	// Topic is the Watermill topic for nats and gochannel kinds.
	Topic string
	// Timeout bounds a single forward attempt.
	Timeout time.Duration
	// Policy decides what happens to failed forwards.
	Policy Policy
	// Debug enables PolicyPanicInDebug panics.
	Debug bool
	// ReportInterval is the minimum spacing between reported failures.
	ReportInterval time.Duration

	Breaker BreakerConfig
	NATS    NATSConfig
}

// DefaultConfig forwards to a local DogStatsD agent.
func DefaultConfig() Config {
	return Config{
		Kind:           KindDogStatsD,
		Address:        DefaultStatsdAddress,
		Topic:          DefaultTopic,
		Timeout:        DefaultTimeout,
		Policy:         PolicyReport,
		ReportInterval: 10 * time.Second,
		Breaker:        DefaultBreakerConfig("funkylog-forwarder"),
		NATS:           DefaultNATSConfig(),
	}
}
