package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide zerolog logger for the configured
// level. Unknown levels fall back to info.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
