// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Init sets the global level from LOG_LEVEL (info by default) and writes
// human readable logs to stderr, also appending to LOG_FILE when set.
func Init() {
	zerolog.TimeFieldFormat = milliTimeFormat

	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: milliTimeFormat,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
	logFile := os.Getenv("LOG_FILE")
	var ferr error
	if logFile != "" {
		var f *os.File
		f, ferr = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if ferr == nil {
			output = io.MultiWriter(output, f)
		}
	}

	log.Logger = log.Output(output)

	if ferr != nil {
		log.Warn().Err(ferr).Str("file", logFile).Msg("cannot open log file, logging to stderr only")
	}

	log.Debug().Str("level", level.String()).Msg("logger initialized")
}
