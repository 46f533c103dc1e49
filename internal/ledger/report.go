package ledger

import "time"

// Report is one active loan: a reader holding a book until ReturnDate.
// ID is only unique among the reports a reader currently holds.
type Report struct {
	ID         uint32    `yaml:"id" json:"id"`
	ReaderID   uint32    `yaml:"reader_id" json:"reader_id"`
	BookID     uint32    `yaml:"book_id" json:"book_id"`
	IssueDate  time.Time `yaml:"issue_date" json:"issue_date"`
	ReturnDate time.Time `yaml:"return_date" json:"return_date"`
}

// Outcome reports what a lending operation did.
type Outcome uint8

const (
	// NoMatchingLoan means a return found nothing to return; the ledger is unchanged.
	NoMatchingLoan Outcome = iota
	Borrowed
	Returned
)

func (o Outcome) String() string {
	switch o {
	case Borrowed:
		return "borrowed"
	case Returned:
		return "returned"
	case NoMatchingLoan:
		return "no-matching-loan"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
