package library

import (
	"sort"

	"github.com/google/uuid"

	"github.com/blackwell-systems/libraryctl/internal/catalog"
	"github.com/blackwell-systems/libraryctl/internal/ledger"
)

// State is a detached copy of everything a Library holds.
type State struct {
	Name     string                     `yaml:"name" json:"name"`
	Instance uuid.UUID                  `yaml:"instance" json:"instance"`
	Staff    []catalog.Staff            `yaml:"staff" json:"staff"`
	Readers  []catalog.Reader           `yaml:"readers" json:"readers"`
	Books    []catalog.Book             `yaml:"books" json:"books"`
	Loans    map[uint32][]ledger.Report `yaml:"loans" json:"loans"`
}

// Snapshot returns the full library state. Books are ordered by ID, then name.
func (l *Library) Snapshot() State {
	return State{
		Name:     l.name,
		Instance: l.instance,
		Staff:    l.Staff(),
		Readers:  l.Readers(),
		Books:    l.sortedBooks(),
		Loans:    l.loans.Snapshot(),
	}
}

// LoanCount returns the total number of active reports.
func (s State) LoanCount() int {
	n := 0
	for _, reports := range s.Loans {
		n += len(reports)
	}
	return n
}

// LoanReaders returns the reader IDs in Loans, ascending.
func (s State) LoanReaders() []uint32 {
	out := make([]uint32, 0, len(s.Loans))
	for id := range s.Loans {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (l *Library) sortedBooks() []catalog.Book {
	out := make([]catalog.Book, 0, len(l.books))
	for _, b := range l.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}
