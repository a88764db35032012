// SPDX-License-Identifier: MIT

// Package logger builds the slog logger used by the mtx command.
package logger

import (
	"io"
	"log/slog"
	"time"
)

// New returns a text logger writing to w. With debug off the level is Info,
// which hides the reader's stage records; with debug on it is Debug and each
// record carries its source location. Timestamps are UTC RFC3339Nano.
func New(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = io.Discard
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
