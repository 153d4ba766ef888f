// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import "sync/atomic"

// ColumnTracker remembers the widest module name seen so far.
// The value only ever grows and is updated without locks.
type ColumnTracker struct {
	width atomic.Int64
}

// DefaultColumns is the process-wide tracker shared by formatters that
// do not bring their own.
var DefaultColumns = &ColumnTracker{}

// Observe raises the tracked width to w if w is larger and returns the
// width after the update.
func (c *ColumnTracker) Observe(w int) int {
	next := int64(w)
	for {
		cur := c.width.Load()
		if next <= cur {
			return int(cur)
		}
		if c.width.CompareAndSwap(cur, next) {
			return w
		}
	}
}

// Current returns the widest width observed.
func (c *ColumnTracker) Current() int {
	return int(c.width.Load())
}
