package ledger

import "time"

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces time.Now as the source of issue dates.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}
