package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. Development gets human readable
// console output, everything else JSON lines.
func NewLogger(cfg *Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.IsDev() {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
