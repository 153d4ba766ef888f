// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package logging

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// LevelStyle is the console presentation of a severity level.
type LevelStyle struct {
	// Code is the fixed three-letter display code (TRC, DBG, LOG, WRN, ERR).
	Code string
	// Color is the terminal color the code is painted with.
	Color lipgloss.Color
}

// ANSI palette indexes, matching the classic purple/blue/green/yellow/red set.
const (
	colorPurple = lipgloss.Color("5")
	colorBlue   = lipgloss.Color("4")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorRed    = lipgloss.Color("1")
)

var levelStyles = [...]LevelStyle{
	{Code: "TRC", Color: colorPurple},
	{Code: "DBG", Color: colorBlue},
	{Code: "LOG", Color: colorGreen},
	{Code: "WRN", Color: colorYellow},
	{Code: "ERR", Color: colorRed},
}

// presentIndex folds zerolog's wider level range onto the five presented levels.
// Fatal and Panic present as errors; NoLevel and anything unknown present as info.
func presentIndex(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 0
	case zerolog.DebugLevel:
		return 1
	case zerolog.WarnLevel:
		return 3
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return 4
	default:
		return 2
	}
}

// StyleFor returns the display code and color for a level.
func StyleFor(level zerolog.Level) LevelStyle {
	return levelStyles[presentIndex(level)]
}

// DisplayCode returns the three-letter console code for a level.
func DisplayCode(level zerolog.Level) string {
	return StyleFor(level).Code
}

// DisplayColor returns the console color for a level.
func DisplayColor(level zerolog.Level) lipgloss.Color {
	return StyleFor(level).Color
}

// collectorNames uses the collector's vocabulary: warn is "warning".
var collectorNames = [...]string{"trace", "debug", "info", "warning", "error"}

// CollectorLevelName returns the level name used in forwarded event tags.
func CollectorLevelName(level zerolog.Level) string {
	return collectorNames[presentIndex(level)]
}

// parseLevel converts a level name to zerolog.Level.
// The boolean is false when the name is not recognised.
func parseLevel(level string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "off", "disabled":
		return zerolog.Disabled, true
	default:
		return zerolog.NoLevel, false
	}
}
