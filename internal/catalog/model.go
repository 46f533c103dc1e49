package catalog

import "github.com/shopspring/decimal"

// Publisher is the imprint a book was published under. Books hold their own
// copy; there is no shared publisher record.
type Publisher struct {
	ID                uint32 `yaml:"id" json:"id"`
	Name              string `yaml:"name" json:"name"`
	YearOfPublication uint16 `yaml:"year_of_publication" json:"year_of_publication"`
}

// NewPublisher builds a Publisher.
func NewPublisher(id uint32, name string, year uint16) Publisher {
	return Publisher{ID: id, Name: name, YearOfPublication: year}
}

// Book is one catalog entry. Name is the catalog key.
type Book struct {
	ID        uint32          `yaml:"id" json:"id"`
	Name      string          `yaml:"name" json:"name"`
	Author    string          `yaml:"author" json:"author"`
	Price     decimal.Decimal `yaml:"price" json:"price"`
	Category  Category        `yaml:"category" json:"category"`
	ISBN      string          `yaml:"isbn" json:"isbn"`
	Publisher Publisher       `yaml:"publisher" json:"publisher"`
}

// Reader is a library member allowed to borrow books.
type Reader struct {
	ID          uint32 `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Email       string `yaml:"email" json:"email"`
	PhoneNumber string `yaml:"phone_number" json:"phone_number"`
}

// Staff is a library employee.
type Staff struct {
	ID   uint32 `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}
