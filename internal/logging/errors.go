// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import "errors"

// ErrAlreadyInitialized is returned when a logger was already installed
// for this process.
var ErrAlreadyInitialized = errors.New("funkylog: logger already initialized")

// ErrUnknownColorMode is returned for color modes other than auto, always and never.
var ErrUnknownColorMode = errors.New("unknown color mode")
