// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package forward

import (
	"context"
	"strings"
)

// Sink delivers one named event to a collector.
type Sink interface {
	Event(ctx context.Context, name, text string, tags []string) error
	Close() error
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) Event(context.Context, string, string, []string) error { return nil }
func (NopSink) Close() error                                          { return nil }

// SinkFunc adapts a function to the Sink interface. Close is a no-op.
type SinkFunc func(ctx context.Context, name, text string, tags []string) error

func (f SinkFunc) Event(ctx context.Context, name, text string, tags []string) error {
	return f(ctx, name, text, tags)
}

func (SinkFunc) Close() error { return nil }

// Tags builds the tag set for a record: level first, then module.
func Tags(level, module string) []string {
	return []string{"level:" + level, "module:" + module}
}

// tagValue returns the value of the first tag with the given key.
func tagValue(tags []string, key string) string {
	for _, t := range tags {
		if v, ok := strings.CutPrefix(t, key+":"); ok {
			return v
		}
	}
	return ""
}
