// Package log wires the global warning system into zerolog.
//
// Warnings raised through the errors package (for example a broken majority
// tie) are non-fatal; this file routes them to a structured zerolog sink so
// they carry the same machine-readable fields as errors.

package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/foldwise/foldwise/pkg/errors"
)

// UseZerologWarnings installs a zerolog-backed handler for library warnings.
// Every warning raised via errors.Warn is emitted as a WARN-level zerolog
// event on w. Warning types implementing zerolog.LogObjectMarshaler are
// embedded as structured fields.
//
// Returns the logger so callers can share it for their own events.
func UseZerologWarnings(w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event = event.EmbedObject(marshaler)
		}
		event.Msg(warning.Error())
	})
	return logger
}

// ResetWarnings removes a previously installed zerolog warning handler,
// restoring the default stderr handler.
func ResetWarnings() {
	errors.SetZerologWarnFunc(nil)
}
