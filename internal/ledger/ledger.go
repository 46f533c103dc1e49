// Package ledger tracks the active loans of a library, keyed by reader.
//
// A reader appears in the ledger only while holding at least one book. Borrow
// and Return are separate operations; Process keeps the combined
// borrow-or-return entry point where a held book is returned and an unheld
// one is issued.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blackwell-systems/libraryctl/internal/ident"
)

// ReturnOnly is the sentinel day count telling Process to return a held book
// and never issue a new loan.
const ReturnOnly uint64 = math.MaxUint64

// maxLoanDays bounds the day count before date arithmetic; anything larger
// lands past year 9999 from any realistic issue date.
const maxLoanDays = 4_000_000

var (
	ErrAlreadyBorrowed = errors.New("book already borrowed by reader")
	ErrReturnOnly      = errors.New("return-only day count cannot issue a loan")
	ErrDateOverflow    = errors.New("return date out of range")
)

// Ledger maps reader IDs to the reports they currently hold, in issue order.
type Ledger struct {
	entries map[uint32][]Report
	now     func() time.Time
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		entries: make(map[uint32][]Report),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Borrow issues bookID to readerID for the given number of days.
// The ledger is left untouched on error.
func (l *Ledger) Borrow(readerID, bookID uint32, days uint64) (Report, error) {
	if days == ReturnOnly {
		return Report{}, ErrReturnOnly
	}

	held := l.entries[readerID]
	if indexOf(held, bookID) >= 0 {
		return Report{}, fmt.Errorf("reader %d, book %d: %w", readerID, bookID, ErrAlreadyBorrowed)
	}

	id, err := ident.Next(len(held))
	if err != nil {
		return Report{}, fmt.Errorf("assigning report id for reader %d: %w", readerID, err)
	}

	issued := l.now()
	due, err := addDays(issued, days)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		ID:         id,
		ReaderID:   readerID,
		BookID:     bookID,
		IssueDate:  issued,
		ReturnDate: due,
	}
	l.entries[readerID] = append(held, r)
	return r, nil
}

// Return removes the first report of readerID for bookID. The reader's entry
// is dropped once its last report is returned.
func (l *Ledger) Return(readerID, bookID uint32) Outcome {
	held, ok := l.entries[readerID]
	if !ok {
		return NoMatchingLoan
	}
	i := indexOf(held, bookID)
	if i < 0 {
		return NoMatchingLoan
	}

	if len(held) == 1 {
		delete(l.entries, readerID)
		return Returned
	}
	rest := make([]Report, 0, len(held)-1)
	rest = append(rest, held[:i]...)
	rest = append(rest, held[i+1:]...)
	l.entries[readerID] = rest
	return Returned
}

// Process returns bookID if readerID holds it and otherwise issues it for
// days. With days == ReturnOnly nothing is ever issued.
func (l *Ledger) Process(readerID, bookID uint32, days uint64) (Outcome, error) {
	if l.Holds(readerID, bookID) {
		return l.Return(readerID, bookID), nil
	}
	if days == ReturnOnly {
		return NoMatchingLoan, nil
	}
	if _, err := l.Borrow(readerID, bookID, days); err != nil {
		return NoMatchingLoan, err
	}
	return Borrowed, nil
}

// Holds reports whether readerID currently has bookID.
func (l *Ledger) Holds(readerID, bookID uint32) bool {
	return indexOf(l.entries[readerID], bookID) >= 0
}

// Loans returns a copy of the reports held by readerID, oldest first.
func (l *Ledger) Loans(readerID uint32) []Report {
	held := l.entries[readerID]
	if len(held) == 0 {
		return nil
	}
	out := make([]Report, len(held))
	copy(out, held)
	return out
}

// Holders returns the IDs of readers holding bookID, ascending.
// This scans every reader's reports.
func (l *Ledger) Holders(bookID uint32) []uint32 {
	var out []uint32
	for readerID, held := range l.entries {
		if indexOf(held, bookID) >= 0 {
			out = append(out, readerID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Readers returns the IDs of readers with at least one loan, ascending.
func (l *Ledger) Readers() []uint32 {
	out := make([]uint32, 0, len(l.entries))
	for readerID := range l.entries {
		out = append(out, readerID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of readers with at least one loan.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Snapshot returns a deep copy of the ledger.
func (l *Ledger) Snapshot() map[uint32][]Report {
	out := make(map[uint32][]Report, len(l.entries))
	for readerID := range l.entries {
		out[readerID] = l.Loans(readerID)
	}
	return out
}

func indexOf(reports []Report, bookID uint32) int {
	for i := range reports {
		if reports[i].BookID == bookID {
			return i
		}
	}
	return -1
}

func addDays(t time.Time, days uint64) (time.Time, error) {
	if days > maxLoanDays {
		return time.Time{}, fmt.Errorf("%d days: %w", days, ErrDateOverflow)
	}
	due := t.AddDate(0, 0, int(days))
	if due.Year() > 9999 {
		return time.Time{}, fmt.Errorf("%d days: %w", days, ErrDateOverflow)
	}
	return due, nil
}
