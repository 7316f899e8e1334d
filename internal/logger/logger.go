package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init routes the global logger to a console writer on stderr, keeping
// stdout free for the tables.
func Init(debug bool) {
	InitWithWriter(os.Stderr, debug)
}

func InitWithWriter(w io.Writer, debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// Get returns the global logger annotated with the caller
func Get() zerolog.Logger {
	return log.With().Caller().Logger()
}
