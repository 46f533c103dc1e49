package seed

// Document is a YAML description of a library to build.
type Document struct {
	Name       string      `yaml:"name"`
	Staff      []string    `yaml:"staff,omitempty"`
	Readers    []Reader    `yaml:"readers,omitempty"`
	Publishers []Publisher `yaml:"publishers,omitempty"`
	Books      []Book      `yaml:"books,omitempty"`
	Loans      []Loan      `yaml:"loans,omitempty"`
}

// Reader is one reader entry.
type Reader struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone,omitempty"`
}

// Publisher is referenced from books by ID.
type Publisher struct {
	ID   uint32 `yaml:"id"`
	Name string `yaml:"name"`
	Year uint16 `yaml:"year,omitempty"`
}

// Book is one catalog entry. Price is kept as text so it parses as an exact
// decimal.
type Book struct {
	Name      string `yaml:"name"`
	Author    string `yaml:"author,omitempty"`
	Price     string `yaml:"price"`
	Category  string `yaml:"category"`
	ISBN      string `yaml:"isbn,omitempty"`
	Publisher uint32 `yaml:"publisher"`
}

// Loan borrows a book for a reader once the catalog is built.
type Loan struct {
	Reader uint32 `yaml:"reader"`
	Book   uint32 `yaml:"book"`
	Days   uint64 `yaml:"days"`
}
