package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Setup configures a console zerolog logger writing to w (stderr if nil).
// Verbose enables debug level.
func Setup(verbose bool, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}

	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}
