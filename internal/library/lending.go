package library

import (
	"github.com/rs/zerolog"

	"github.com/blackwell-systems/libraryctl/internal/ledger"
)

// Borrow lends a book to a reader for days. Reader and book IDs are not
// required to exist in the catalog; unknown ones are logged and accepted.
func (l *Library) Borrow(readerID, bookID uint32, days uint64) (ledger.Report, error) {
	l.checkRefs(readerID, bookID)
	r, err := l.loans.Borrow(readerID, bookID, days)
	if err != nil {
		l.entryLog(zerolog.WarnLevel, readerID, bookID).Err(err).Msg("borrow refused")
		return ledger.Report{}, err
	}
	l.entryLog(zerolog.InfoLevel, readerID, bookID).
		Uint32("report_id", r.ID).
		Time("return_date", r.ReturnDate).
		Msg("book borrowed")
	return r, nil
}

// Return takes a book back from a reader.
func (l *Library) Return(readerID, bookID uint32) ledger.Outcome {
	out := l.loans.Return(readerID, bookID)
	l.entryLog(zerolog.InfoLevel, readerID, bookID).
		Stringer("outcome", out).
		Msg("return processed")
	return out
}

// ProcessEntry returns the book if the reader holds it and lends it
// otherwise. Pass ledger.ReturnOnly as days to never lend.
func (l *Library) ProcessEntry(readerID, bookID uint32, days uint64) (ledger.Outcome, error) {
	if days != ledger.ReturnOnly && !l.loans.Holds(readerID, bookID) {
		l.checkRefs(readerID, bookID)
	}
	out, err := l.loans.Process(readerID, bookID, days)
	if err != nil {
		l.entryLog(zerolog.WarnLevel, readerID, bookID).Err(err).Msg("entry refused")
		return out, err
	}
	l.entryLog(zerolog.InfoLevel, readerID, bookID).
		Stringer("outcome", out).
		Msg("entry processed")
	return out, nil
}

// Loans returns the reports a reader currently holds.
func (l *Library) Loans(readerID uint32) []ledger.Report {
	return l.loans.Loans(readerID)
}

// Holders returns the readers currently holding a book.
func (l *Library) Holders(bookID uint32) []uint32 {
	return l.loans.Holders(bookID)
}

func (l *Library) checkRefs(readerID, bookID uint32) {
	if _, ok := l.Reader(readerID); !ok {
		l.log.Warn().Uint32("reader_id", readerID).Msg("loan references unknown reader")
	}
	if _, ok := l.BookByID(bookID); !ok {
		l.log.Warn().Uint32("book_id", bookID).Msg("loan references unknown book")
	}
}

func (l *Library) entryLog(level zerolog.Level, readerID, bookID uint32) *zerolog.Event {
	return l.log.WithLevel(level).
		Uint32("reader_id", readerID).
		Uint32("book_id", bookID)
}
