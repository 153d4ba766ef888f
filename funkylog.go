// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

// Package funkylog installs a colorized console logger for zerolog, the
// zerolog/log global and log/slog, and forwards every record that names a
// module to an event collector.
//
// Each record is one header followed by the message:
//
//	LOG [0:00:01.234 one::deep] such information
//
// The header holds a three-letter level code, the time elapsed since the
// logger was installed and the module. Continuation lines of a multi-line
// message are indented to the width of the header.
//
// Typical use:
//
//	func main() {
//		funkylog.Init()
//		defer funkylog.Close()
//
//		log := funkylog.Module("db::pool")
//		log.Warn().Msg("pool exhausted")
//	}
//
// The filter directive is read from the FUNKYLOG environment variable,
// for example FUNKYLOG=info,db=trace.
package funkylog

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/funkylog/internal/forward"
	"github.com/tomtom215/funkylog/internal/logging"
)

// DefaultEnvVar is the environment variable Init reads the filter from.
const DefaultEnvVar = logging.DefaultEnvVar

// ErrAlreadyInitialized is returned when a logger is already installed.
var ErrAlreadyInitialized = logging.ErrAlreadyInitialized

type (
	// Builder configures a logger before it is installed.
	Builder = logging.Builder
	// Filter decides which records reach the console.
	Filter = logging.Filter
	// ColorMode selects when output is colored.
	ColorMode = logging.ColorMode
	// CollectorConfig selects and tunes the event collector.
	CollectorConfig = forward.Config
	// CollectorConstructionError reports a collector that could not be built.
	CollectorConstructionError = forward.CollectorConstructionError
	// Policy decides what happens to a failed forward.
	Policy = forward.Policy
	// EventForwarder receives every record that carries a module.
	EventForwarder = logging.EventForwarder
	// Clock measures the elapsed time shown in each header.
	Clock = logging.Clock
	// ColumnTracker remembers the widest module name for alignment.
	ColumnTracker = logging.ColumnTracker
)

// Color modes.
const (
	ColorAuto   = logging.ColorAuto
	ColorAlways = logging.ColorAlways
	ColorNever  = logging.ColorNever
)

// Failure policies.
const (
	PolicyReport       = forward.PolicyReport
	PolicyDrop         = forward.PolicyDrop
	PolicyPanicInDebug = forward.PolicyPanicInDebug
)

// Collector kinds for CollectorConfig.Kind.
const (
	CollectorDogStatsD = forward.KindDogStatsD
	CollectorNATS      = forward.KindNATS
	CollectorGoChannel = forward.KindGoChannel
	CollectorNone      = forward.KindNone
)

// ParsePolicy parses report, drop or panic-in-debug. Empty means report.
func ParsePolicy(s string) (Policy, error) { return forward.ParsePolicy(s) }

// ParseColorMode parses auto, always or never.
func ParseColorMode(s string) (ColorMode, error) { return logging.ParseColorMode(s) }

// NewClock starts an elapsed clock. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock { return logging.NewClock(now) }

// Init installs the logger with the filter from FUNKYLOG. It panics when a
// logger is already installed or the collector cannot be built.
func Init() { logging.Init() }

// TryInit is Init returning an error instead of panicking.
func TryInit() error { return logging.TryInit() }

// InitWithEnv is Init reading the filter from the named variable.
func InitWithEnv(name string) { logging.InitWithEnv(name) }

// TryInitWithEnv is InitWithEnv returning an error instead of panicking.
func TryInitWithEnv(name string) error { return logging.TryInitWithEnv(name) }

// NewBuilder returns a builder forwarding to the local DogStatsD agent.
func NewBuilder() (*Builder, error) { return logging.NewBuilder() }

// NewBuilderWithCollector returns a builder forwarding to cfg.
func NewBuilderWithCollector(cfg CollectorConfig) (*Builder, error) {
	return logging.NewBuilderWithCollector(cfg)
}

// DefaultCollectorConfig returns the DogStatsD collector defaults.
func DefaultCollectorConfig() CollectorConfig { return forward.DefaultConfig() }

// ParseFilter builds a filter from a directive such as "warn,db=debug".
func ParseFilter(directive string) Filter { return logging.ParseFilter(directive) }

// Module returns a child of the installed logger tagged with name.
func Module(name string) zerolog.Logger { return logging.Module(name) }

// Installed reports whether a logger has been installed.
func Installed() bool { return logging.Installed() }

// Close flushes and closes the installed collector.
func Close() error { return logging.Close() }
