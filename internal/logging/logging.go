// SPDX-License-Identifier: MIT

// Package logging builds the slog loggers used by the filmcalc command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// silent is above every standard level.
const silent = slog.Level(100)

// New returns a logger writing to w at level in the given format
// ("text" or "json", case-insensitive; empty means text).
func New(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("logging: unknown format %q (want text or json)", format)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: silent}))
}

// LevelFromString converts debug, info, warn/warning or error
// (case-insensitive) to a slog.Level. Anything else is info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromVerbosity maps CLI flags to a level: quiet silences everything,
// otherwise 0 → configured base, 1 → info, 2+ → debug. The more verbose of
// base and the flag wins.
func LevelFromVerbosity(base slog.Level, verbosity int, quiet bool) slog.Level {
	if quiet {
		return silent
	}
	switch {
	case verbosity >= 2:
		return min(base, slog.LevelDebug)
	case verbosity == 1:
		return min(base, slog.LevelInfo)
	default:
		return base
	}
}
