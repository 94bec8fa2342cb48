package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/saeidalz13/seabattle-engine/internal/config"
)

// New returns a human readable logger in dev and a JSON logger in prod.
// An unknown level falls back to info.
func New(w io.Writer, stage, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if stage == config.StageProd {
		return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	}

	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}
