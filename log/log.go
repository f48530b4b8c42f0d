// Package log wraps github.com/rs/zerolog for the one place in this
// module that wants runtime visibility: the sparse codec's diagnostic
// encode path. The cryptographic core (field, ntt64, prf, rs) never
// imports this package, since a log call that branches on secret data
// would itself become a timing side channel.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing structured JSON to w. Passing nil
// defaults to os.Stderr.
func New(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// NewConsole returns a human-readable console logger, useful for local
// tooling rather than production log aggregation.
func NewConsole(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
}
