package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/libraryctl/internal/catalog"
	"github.com/blackwell-systems/libraryctl/internal/library"
)

// Build creates a library from the document.
func (d *Document) Build(opts ...library.Option) (*library.Library, error) {
	lib := library.New(d.Name, opts...)
	if err := d.Apply(lib); err != nil {
		return nil, err
	}
	return lib, nil
}

// Apply adds staff, readers, books and loans to lib, in that order.
// The document must have passed Validate.
func (d *Document) Apply(lib *library.Library) error {
	for _, name := range d.Staff {
		if _, err := lib.AddStaff(name); err != nil {
			return err
		}
	}
	for _, r := range d.Readers {
		if _, err := lib.AddReader(r.Name, r.Email, r.Phone); err != nil {
			return err
		}
	}

	pubs := make(map[uint32]catalog.Publisher, len(d.Publishers))
	for _, p := range d.Publishers {
		pubs[p.ID] = catalog.NewPublisher(p.ID, p.Name, p.Year)
	}
	for i, b := range d.Books {
		price, err := decimal.NewFromString(b.Price)
		if err != nil {
			return fmt.Errorf("books[%d] %q: price: %w", i, b.Name, err)
		}
		category, err := catalog.ParseCategory(b.Category)
		if err != nil {
			return fmt.Errorf("books[%d] %q: %w", i, b.Name, err)
		}
		pub, ok := pubs[b.Publisher]
		if !ok {
			return fmt.Errorf("books[%d] %q: publisher %d: %w", i, b.Name, b.Publisher, errUnknownPublisher)
		}
		if _, err := lib.AddBook(b.Name, b.Author, price, category, b.ISBN, pub); err != nil {
			return err
		}
	}

	for i, ln := range d.Loans {
		if _, err := lib.Borrow(ln.Reader, ln.Book, ln.Days); err != nil {
			return fmt.Errorf("loans[%d]: %w", i, err)
		}
	}
	return nil
}
