package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
)

const serviceName = "toDoBoard"

func Init(debug bool) zerolog.Logger {
	return New(os.Stdout, debug)
}

// New - логгер с укороченным caller'ом; в debug пишет человекочитаемо.
func New(out io.Writer, debug bool) zerolog.Logger {
	zerolog.TimestampFieldName = "Log time"
	zerolog.LevelFieldName = "lvl"
	zerolog.CallerFieldName = "call"
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}

	if debug {
		return zerolog.
			New(zerolog.ConsoleWriter{Out: out}).
			Level(zerolog.DebugLevel).
			With().
			Timestamp().
			Caller().
			Str("service", serviceName).
			Logger()
	}

	return zerolog.
		New(out).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
