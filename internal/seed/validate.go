package seed

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"github.com/blackwell-systems/libraryctl/internal/catalog"
	"github.com/blackwell-systems/libraryctl/internal/ledger"
)

var errUnknownPublisher = errors.New("unknown publisher")

// Validate checks every entry and the references between them.
func (d Document) Validate() error {
	if err := validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required.Error("library name is required")),
		validation.Field(&d.Staff, validation.Each(validation.Required.Error("staff name is required"))),
		validation.Field(&d.Readers),
		validation.Field(&d.Publishers),
		validation.Field(&d.Books),
		validation.Field(&d.Loans),
	); err != nil {
		return err
	}

	pubs := make(map[uint32]bool, len(d.Publishers))
	for _, p := range d.Publishers {
		pubs[p.ID] = true
	}
	for i, b := range d.Books {
		if !pubs[b.Publisher] {
			return fmt.Errorf("books[%d] %q: publisher %d: %w", i, b.Name, b.Publisher, errUnknownPublisher)
		}
	}
	return nil
}

func (r Reader) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("reader name is required")),
		validation.Field(&r.Email, validation.Required, is.Email.Error("invalid email format")),
		validation.Field(&r.Phone, validation.Length(0, 32)),
	)
}

func (p Publisher) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required.Error("publisher id must be positive")),
		validation.Field(&p.Name, validation.Required.Error("publisher name is required")),
	)
}

func (b Book) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required.Error("book name is required")),
		validation.Field(&b.Price, validation.Required, validation.By(nonNegativeDecimal)),
		validation.Field(&b.Category, validation.Required, validation.By(knownCategory)),
		validation.Field(&b.Publisher, validation.Required.Error("publisher reference is required")),
	)
}

func (l Loan) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Reader, validation.Required.Error("reader id must be positive")),
		validation.Field(&l.Book, validation.Required.Error("book id must be positive")),
		validation.Field(&l.Days, validation.Max(ledger.ReturnOnly-1).Error("loan length must be a day count")),
	)
}

func nonNegativeDecimal(value interface{}) error {
	s, _ := value.(string)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return errors.New("must be a decimal number")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func knownCategory(value interface{}) error {
	s, _ := value.(string)
	if _, err := catalog.ParseCategory(s); err != nil {
		return errors.New("must be one of science-fiction, romance, thriller, autobiography, biography")
	}
	return nil
}
