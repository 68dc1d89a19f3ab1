// Package logger builds the application's zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/muhammad-hassn/portfolio/config"
)

// New returns the root logger for the service. Development gets a
// human-readable console writer on stderr, everything else JSON on stdout.
func New(app config.AppConfig) zerolog.Logger {
	var w io.Writer = os.Stdout
	if app.Environment == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(app, w)
}

func NewWithWriter(app config.AppConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(app.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", app.ServiceName).
		Str("env", app.Environment).
		Logger()
}
