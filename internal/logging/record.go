// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"time"

	"github.com/rs/zerolog"
)

// Record is one log call as seen by the formatter.
type Record struct {
	Level zerolog.Level
	// Module is empty when the record was emitted without module context.
	Module string
	// Message may contain newlines.
	Message string
	Time    time.Time
}
