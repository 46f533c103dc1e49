// Package logging builds the zerolog logger shared by the CLI and the library.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/blackwell-systems/libraryctl/internal/util"
)

// New returns a logger at the given level writing to w. Human-readable
// console output is used when pretty is set, JSON lines otherwise.
func New(level string, w io.Writer, pretty bool) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Stderr is New writing to os.Stderr, pretty when stderr is a terminal.
func Stderr(level string) (zerolog.Logger, error) {
	return New(level, os.Stderr, util.IsTerminal(os.Stderr))
}

// ParseLevel maps a level name to a zerolog level; empty means warn.
func ParseLevel(level string) (zerolog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", level)
	}
	return lvl, nil
}
