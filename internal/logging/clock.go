// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock measures wall time elapsed since a formatter was built.
// Each formatter owns its own Clock so instances are independent.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock captures the start instant from now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{start: now(), now: now}
}

// Start returns the captured start instant.
func (c *Clock) Start() time.Time {
	return c.start
}

// Elapsed returns the time since start according to the clock's time source.
func (c *Clock) Elapsed() time.Duration {
	return c.ElapsedAt(c.now())
}

// ElapsedAt returns t minus start. A t before start (a clock stepping
// backwards) yields the magnitude of the delta instead of a negative value.
func (c *Clock) ElapsedAt(t time.Time) time.Duration {
	d := t.Sub(c.start)
	if d < 0 {
		return -d
	}
	return d
}

// RenderElapsed formats d as H:MM:SS.mmm. Hours are unpadded and uncapped,
// milliseconds are truncated.
func RenderElapsed(d time.Duration) string {
	return string(appendElapsed(make([]byte, 0, 16), d))
}

func appendElapsed(dst []byte, d time.Duration) []byte {
	if d < 0 {
		d = -d
	}
	ms := int64(d / time.Millisecond)
	hours := ms / 3_600_000
	minutes := ms / 60_000 % 60
	seconds := ms / 1000 % 60
	millis := ms % 1000

	dst = strconv.AppendInt(dst, hours, 10)
	dst = append(dst, ':')
	dst = appendPadded(dst, minutes, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, seconds, 2)
	dst = append(dst, '.')
	return appendPadded(dst, millis, 3)
}

func appendPadded(dst []byte, v int64, width int) []byte {
	s := strconv.FormatInt(v, 10)
	for i := len(s); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}

// ParseElapsed is the inverse of RenderElapsed.
func ParseElapsed(s string) (time.Duration, error) {
	h, rest, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("elapsed %q: missing hours separator", s)
	}
	m, rest, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, fmt.Errorf("elapsed %q: missing minutes separator", s)
	}
	sec, ms, ok := strings.Cut(rest, ".")
	if !ok {
		return 0, fmt.Errorf("elapsed %q: missing milliseconds separator", s)
	}
	if len(m) != 2 || len(sec) != 2 || len(ms) != 3 {
		return 0, fmt.Errorf("elapsed %q: malformed field width", s)
	}

	var parts [4]int64
	for i, field := range []string{h, m, sec, ms} {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("elapsed %q: invalid field %q", s, field)
		}
		parts[i] = v
	}
	if parts[1] > 59 || parts[2] > 59 {
		return 0, fmt.Errorf("elapsed %q: minutes and seconds must be below 60", s)
	}

	return time.Duration(parts[0])*time.Hour +
		time.Duration(parts[1])*time.Minute +
		time.Duration(parts[2])*time.Second +
		time.Duration(parts[3])*time.Millisecond, nil
}
