// Package logger provides the configurable logger shared across eqlath
// components.
//
// The root logger uses github.com/rs/zerolog with a console writer. Under
// `go test` the logger defaults to a no-op unless the EQLATH_DEBUG
// environment variable is set, so propagation traces never pollute test
// output.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if os.Getenv("EQLATH_DEBUG") == "" && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows an eqlath user to override the global logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the configured global logger.
func Logger() zerolog.Logger {
	return logger
}
