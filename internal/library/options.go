package library

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/blackwell-systems/libraryctl/internal/ledger"
)

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used for catalog and lending events.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Library) {
		l.log = log
	}
}

// WithClock replaces time.Now as the source of loan issue dates.
func WithClock(now func() time.Time) Option {
	return func(l *Library) {
		l.ledgerOpts = append(l.ledgerOpts, ledger.WithClock(now))
	}
}
