// Copyright (c) 2026 Pharmav2 Dashboard
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides a singleton structured logger backed by zerolog.
//
// Initialise once at startup with Init, then retrieve anywhere with Get.
// Logs are written to the XDG state directory so terminal output stays clean
// for the interactive screens.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/naimlawani01/pharmav2-dashboard/internal/xdg"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Defaults to "info" when empty or unrecognised.
	Level string
	// Output overrides the default log-file writer. Used in tests.
	Output io.Writer
}

var (
	instance    zerolog.Logger
	once        sync.Once
	initialized bool
)

// Init initialises the singleton logger. Safe to call multiple times; only
// the first call has any effect.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = openLogFile()
		}

		lvl, err := zerolog.ParseLevel(opts.Level)
		if err != nil || opts.Level == "" {
			lvl = zerolog.InfoLevel
		}

		instance = zerolog.New(out).
			Level(lvl).
			With().
			Timestamp().
			Logger()

		initialized = true
	})
	return instance
}

// Get returns the singleton logger. A zero-value no-op logger is returned
// when Init has not run, so library code can log unconditionally.
func Get() zerolog.Logger {
	if !initialized {
		return zerolog.Nop()
	}
	return instance
}

// Reset tears down the singleton so that the next Init call rebuilds it.
// Intended for use in tests only.
func Reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
	initialized = false
}

// openLogFile opens (or creates) the log file under the state dir.
// Falls back to discarding logs when the directory is unavailable.
func openLogFile() io.Writer {
	dir, err := xdg.StateDir()
	if err != nil {
		return io.Discard
	}
	f, err := os.OpenFile(filepath.Join(dir, "pharmactl.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard
	}
	return f
}
