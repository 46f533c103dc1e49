// Package library is the aggregate that owns the catalog and the lending
// ledger. It is the only entry point for mutating either.
//
// A Library has a single owner and is not safe for concurrent use.
package library

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/libraryctl/internal/catalog"
	"github.com/blackwell-systems/libraryctl/internal/ident"
	"github.com/blackwell-systems/libraryctl/internal/ledger"
)

// Library holds staff, readers, books keyed by name, and active loans.
type Library struct {
	name     string
	instance uuid.UUID

	staff   []catalog.Staff
	readers []catalog.Reader
	books   map[string]catalog.Book
	loans   *ledger.Ledger

	log        zerolog.Logger
	ledgerOpts []ledger.Option
}

// New creates an empty library.
func New(name string, opts ...Option) *Library {
	l := &Library{
		name:     name,
		instance: uuid.New(),
		books:    make(map[string]catalog.Book),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.loans = ledger.New(l.ledgerOpts...)
	l.log = l.log.With().
		Str("library", name).
		Str("instance", l.instance.String()).
		Logger()
	return l
}

// Name returns the library's name.
func (l *Library) Name() string { return l.name }

// InstanceID identifies this in-memory library in logs and dumps.
func (l *Library) InstanceID() uuid.UUID { return l.instance }

// AddStaff appends a staff member.
func (l *Library) AddStaff(name string) (catalog.Staff, error) {
	id, err := ident.Next(len(l.staff))
	if err != nil {
		return catalog.Staff{}, fmt.Errorf("adding staff %q: %w", name, err)
	}
	s := catalog.Staff{ID: id, Name: name}
	l.staff = append(l.staff, s)
	l.log.Debug().Uint32("staff_id", id).Str("name", name).Msg("staff added")
	return s, nil
}

// AddReader appends a reader.
func (l *Library) AddReader(name, email, phone string) (catalog.Reader, error) {
	id, err := ident.Next(len(l.readers))
	if err != nil {
		return catalog.Reader{}, fmt.Errorf("adding reader %q: %w", name, err)
	}
	r := catalog.Reader{ID: id, Name: name, Email: email, PhoneNumber: phone}
	l.readers = append(l.readers, r)
	l.log.Debug().Uint32("reader_id", id).Str("name", name).Msg("reader added")
	return r, nil
}

// AddBook stores a book under its name. A book already stored under the same
// name is replaced, and the new book's ID is still derived from the catalog
// size before insertion.
func (l *Library) AddBook(
	name, author string,
	price decimal.Decimal,
	category catalog.Category,
	isbn string,
	publisher catalog.Publisher,
) (catalog.Book, error) {
	id, err := ident.Next(len(l.books))
	if err != nil {
		return catalog.Book{}, fmt.Errorf("adding book %q: %w", name, err)
	}
	b := catalog.Book{
		ID:        id,
		Name:      name,
		Author:    author,
		Price:     price,
		Category:  category,
		ISBN:      isbn,
		Publisher: publisher,
	}
	if prev, ok := l.books[name]; ok {
		l.log.Warn().
			Str("name", name).
			Uint32("replaced_id", prev.ID).
			Uint32("book_id", id).
			Msg("book name already in catalog, replacing")
	}
	l.books[name] = b
	l.log.Debug().Uint32("book_id", id).Str("name", name).Msg("book added")
	return b, nil
}

// Staff returns a copy of the staff list in insertion order.
func (l *Library) Staff() []catalog.Staff {
	return append([]catalog.Staff(nil), l.staff...)
}

// Readers returns a copy of the reader list in insertion order.
func (l *Library) Readers() []catalog.Reader {
	return append([]catalog.Reader(nil), l.readers...)
}

// Book looks a book up by name.
func (l *Library) Book(name string) (catalog.Book, bool) {
	b, ok := l.books[name]
	return b, ok
}

// BookByID returns the first book with the given ID. Replaced entries can
// leave two books sharing an ID; the lowest name wins.
func (l *Library) BookByID(id uint32) (catalog.Book, bool) {
	for _, b := range l.sortedBooks() {
		if b.ID == id {
			return b, true
		}
	}
	return catalog.Book{}, false
}

// Reader returns the reader with the given ID.
func (l *Library) Reader(id uint32) (catalog.Reader, bool) {
	for _, r := range l.readers {
		if r.ID == id {
			return r, true
		}
	}
	return catalog.Reader{}, false
}

// BookCount returns the number of books in the catalog.
func (l *Library) BookCount() int { return len(l.books) }
