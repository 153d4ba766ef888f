// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

// Package logging renders zerolog and slog records as colorized, aligned
// console blocks and forwards module-tagged records to an events collector.
//
// # Overview
//
// Each record becomes one block:
//
//	LOG [0:00:01.234 one::deep] such information
//	ERR [0:00:01.240] first line
//	                  second line
//
// The header holds a three-letter level code (TRC, DBG, LOG, WRN, ERR)
// in the level's color, the time elapsed since the formatter was built
// (H:MM:SS.mmm) and the module when there is one. Lines after the first
// are indented by the header's display width plus one.
//
// Records that carry a module are also sent to the collector as an event
// named after the module, tagged level:<name> and module:<module>. See
// package forward.
//
// # Quick Start
//
//	import "github.com/tomtom215/funkylog/internal/logging"
//
//	// Read the filter from $FUNKYLOG and install once at startup
//	if err := logging.TryInit(); err != nil {
//	    panic(err)
//	}
//	defer logging.Close()
//
//	log := logging.Module("db::pool")
//	log.Warn().Msg("pool exhausted")
//	logging.Info().Msg("no module, not forwarded")
//
// # Filter Directive
//
// The directive is a comma separated list of terms:
//
//	FUNKYLOG=warn                   default threshold
//	FUNKYLOG=info,db=trace          per-module threshold
//	FUNKYLOG=error,http::client     a bare module enables every level
//	FUNKYLOG=debug,noisy=off        silence a module
//
// When the variable is unset only errors are shown.
//
// # Customising
//
//	b, err := logging.NewBuilder()
//	if err != nil {
//	    return err // *forward.CollectorConstructionError
//	}
//	b.Output(os.Stdout).Parse("debug").AlignModules(true).Color(logging.ColorAlways)
//	if err := b.TryInstall(); err != nil {
//	    return err // logging.ErrAlreadyInitialized
//	}
//
// # slog
//
// TryInstall also installs a slog.Handler backed by the same writer, so
// slog.Info("msg", "module", "db") renders identically. Without a module
// attribute the calling package path is used as the module.
//
// # Thread Safety
//
// Formatting runs on the caller's goroutine. The module column tracker is
// lock-free, each block is written with one locked Write, and the install
// guard is a single atomic compare-and-swap.
package logging
