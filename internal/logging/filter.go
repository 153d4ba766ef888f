// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"slices"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultFilterLevel applies when no directive names a default level.
const DefaultFilterLevel = zerolog.ErrorLevel

// Filter decides which records reach the console, per module.
//
// A directive is a comma separated list of terms:
//
//	warn                 default threshold
//	db=debug             threshold for module db and its children
//	http::client         module name alone enables every level for it
//	noisy=off            silence a module
//
// The longest matching module prefix wins. Unknown level names are ignored.
// Copies are independent: parsing into one never changes another.
type Filter struct {
	level   zerolog.Level
	modules []moduleLevel
}

type moduleLevel struct {
	module string
	level  zerolog.Level
}

// DefaultFilter returns a filter that lets errors through and nothing else.
func DefaultFilter() Filter {
	return Filter{level: DefaultFilterLevel}
}

// ParseFilter parses directive on top of DefaultFilter.
func ParseFilter(directive string) Filter {
	f := DefaultFilter()
	f.Parse(directive)
	return f
}

// Parse applies the terms of directive to f. Later terms override earlier
// ones for the same module.
func (f *Filter) Parse(directive string) {
	// Module terms may be shared with copies of f.
	f.modules = slices.Clone(f.modules)
	for _, term := range strings.Split(directive, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		name, lvl, hasLevel := strings.Cut(term, "=")
		name = strings.TrimSpace(name)
		if !hasLevel {
			if level, ok := parseLevel(name); ok {
				f.level = level
				continue
			}
			f.setModule(name, zerolog.TraceLevel)
			continue
		}

		level, ok := parseLevel(lvl)
		if !ok {
			continue
		}
		if name == "" {
			f.level = level
			continue
		}
		f.setModule(name, level)
	}
}

func (f *Filter) setModule(module string, level zerolog.Level) {
	for i := range f.modules {
		if f.modules[i].module == module {
			f.modules[i].level = level
			return
		}
	}
	f.modules = append(f.modules, moduleLevel{module: module, level: level})
	sort.SliceStable(f.modules, func(i, j int) bool {
		return len(f.modules[i].module) > len(f.modules[j].module)
	})
}

// clone returns a copy that shares no module terms with f.
func (f Filter) clone() Filter {
	f.modules = slices.Clone(f.modules)
	return f
}

// SetLevel replaces the default threshold.
func (f *Filter) SetLevel(level zerolog.Level) {
	f.level = level
}

// LevelFor returns the threshold that applies to module.
func (f Filter) LevelFor(module string) zerolog.Level {
	if module != "" {
		for _, m := range f.modules {
			if moduleMatches(module, m.module) {
				return m.level
			}
		}
	}
	return f.level
}

// Enabled reports whether a record at level from module passes the filter.
func (f Filter) Enabled(module string, level zerolog.Level) bool {
	threshold := f.LevelFor(module)
	if threshold == zerolog.Disabled {
		return false
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return level >= threshold
}

// MinLevel returns the most verbose threshold across all terms. Loggers
// use it as their level so filtered events are never built.
func (f Filter) MinLevel() zerolog.Level {
	lowest := f.level
	for _, m := range f.modules {
		if lowest == zerolog.Disabled || (m.level != zerolog.Disabled && m.level < lowest) {
			lowest = m.level
		}
	}
	return lowest
}

// String renders the filter back into directive form.
func (f Filter) String() string {
	var b strings.Builder
	b.WriteString(levelDirectiveName(f.level))
	for i := len(f.modules) - 1; i >= 0; i-- {
		b.WriteByte(',')
		b.WriteString(f.modules[i].module)
		b.WriteByte('=')
		b.WriteString(levelDirectiveName(f.modules[i].level))
	}
	return b.String()
}

func levelDirectiveName(level zerolog.Level) string {
	if level == zerolog.Disabled {
		return "off"
	}
	return level.String()
}

// moduleMatches reports whether module is prefix or a child of prefix.
// Children are separated by "::", "/" or ".".
func moduleMatches(module, prefix string) bool {
	if !strings.HasPrefix(module, prefix) {
		return false
	}
	rest := module[len(prefix):]
	return rest == "" ||
		strings.HasPrefix(rest, "::") ||
		strings.HasPrefix(rest, "/") ||
		strings.HasPrefix(rest, ".")
}
