package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/gostonefire/searchtable/internal/config"
)

func level() zerolog.Level {
	switch config.Config.LogLevel {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New - Returns a console logger on stderr with the configured level
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level()).With().Timestamp().Logger()
}
