// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is built once with the custom tags the
// configuration needs and reports failures with the koanf key of the
// offending field, so a message points at the line to fix in the YAML file
// or the environment variable to change.
//
// # Custom Tags
//
//   - filterdirective: a comma separated filter directive such as
//     "warn,db=debug,http". Every level name must be known.
//   - collectoraddr: host:port with a numeric port, or unix://path.
//
// # Quick Start
//
//	type CollectorConfig struct {
//	    Kind    string        `koanf:"kind" validate:"oneof=dogstatsd nats gochannel none"`
//	    Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
//	}
//
//	if verr := validation.ValidateStruct(&cfg); verr != nil {
//	    return fmt.Errorf("invalid configuration: %w", verr)
//	}
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use.
package validation
