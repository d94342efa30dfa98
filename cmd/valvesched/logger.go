// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds an isolated zerolog.Logger; the global logger is left alone.
func newLogger(level zerolog.Level, format string, w io.Writer) zerolog.Logger {
	out := w
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
