// SPDX-License-Identifier: MIT

// Package mtx: functional configuration for readers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults first.
//
// Design goals:
//   - Deterministic behavior: options never change what a valid file decodes to,
//     except WithSeparator, which changes the accepted dialect.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package mtx

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator is the single field separator of the exchange format.
	DefaultSeparator byte = ' '

	// DefaultMaxLineBytes bounds the length of one input line.
	DefaultMaxLineBytes = 1 << 20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger        = "mtx: WithLogger: logger must be non-nil"
	panicMaxLineInvalid   = "mtx: WithMaxLineBytes: limit must be positive"
	panicSeparatorInvalid = "mtx: WithSeparator: separator must not be a line terminator"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger       *slog.Logger // stage transitions at Debug level
	maxLineBytes int          // DefaultMaxLineBytes
	separator    byte         // DefaultSeparator
}

// WithLogger routes stage-transition and failure records to l at Debug level.
// Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithMaxLineBytes sets the longest accepted input line. Longer lines fail
// the read with ErrLineTooLong. Panics when n <= 0.
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic(panicMaxLineInvalid)
	}

	return func(o *Options) { o.maxLineBytes = n }
}

// WithSeparator replaces the field separator for banner, size and data lines
// (e.g. '\t' for tab-separated dialects). Panics on '\n' or '\r'.
func WithSeparator(sep byte) Option {
	if sep == '\n' || sep == '\r' {
		panic(panicSeparatorInvalid)
	}

	return func(o *Options) { o.separator = sep }
}

// defaultOptions returns the zero-configuration Options.
func defaultOptions() Options {
	return Options{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxLineBytes: DefaultMaxLineBytes,
		separator:    DefaultSeparator,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
