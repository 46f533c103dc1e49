// Package ident assigns numeric identifiers to entries of append-only
// collections.
package ident

import (
	"errors"
	"math"
)

// ErrOverflow is returned when the next identifier does not fit in a uint32.
var ErrOverflow = errors.New("identifier overflow")

// Next returns the identifier for an entry appended to a collection that
// currently holds size entries.
func Next(size int) (uint32, error) {
	if size < 0 || uint64(size) >= math.MaxUint32 {
		return 0, ErrOverflow
	}
	return uint32(size) + 1, nil
}
