package util

import (
	"os"
	"strings"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. Logs go to stderr so stdout stays
// reserved for command results; every line carries a fresh invocation id.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).With().Timestamp().Str("run", xid.New().String()).Logger().Level(lvl)
}
