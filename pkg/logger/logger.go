// pkg/logger/logger.go
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Log is the process-wide logger. Handlers and services use the zerolog
// global (zerolog/log); both write to the same console output.
var Log zerolog.Logger

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}

	Log = zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Caller().
		Logger()
}

// SetLevel adjusts the global log level from the server mode: "debug" turns
// on debug logging, anything else (including "release") stays at info unless
// it parses as an explicit zerolog level.
func SetLevel(mode string) {
	level := zerolog.InfoLevel
	switch mode {
	case "debug":
		level = zerolog.DebugLevel
	case "release", "":
	default:
		if parsed, err := zerolog.ParseLevel(mode); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
	Log = Log.Level(level)
}
