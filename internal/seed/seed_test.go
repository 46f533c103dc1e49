package seed_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/libraryctl/internal/catalog"
	"github.com/blackwell-systems/libraryctl/internal/ledger"
	"github.com/blackwell-systems/libraryctl/internal/library"
	"github.com/blackwell-systems/libraryctl/internal/seed"
)

var sampleYAML = []byte(`
name: Branch Library
staff: [Ada, Grace]
readers:
  - name: Constance
    email: constance@example.com
    phone: "555-0100"
  - name: Michele
    email: michele@example.com
publishers:
  - id: 7
    name: Penguin
    year: 1999
books:
  - name: Dune
    author: Frank Herbert
    price: "19.99"
    category: science-fiction
    isbn: "9780441013593"
    publisher: 7
  - name: Rebecca
    author: Daphne du Maurier
    price: "12.50"
    category: Romance
    publisher: 7
loans:
  - {reader: 2, book: 1, days: 14}
`)

func TestParse_Valid(t *testing.T) {
	doc, err := seed.Parse(sampleYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Name != "Branch Library" {
		t.Errorf("Name = %q", doc.Name)
	}
	if len(doc.Staff) != 2 || len(doc.Readers) != 2 || len(doc.Books) != 2 || len(doc.Loans) != 1 {
		t.Errorf("unexpected counts: %+v", doc)
	}
	if doc.Books[1].Category != "Romance" {
		t.Errorf("Books[1].Category = %q", doc.Books[1].Category)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := seed.Parse([]byte("name: Branch\nstaff: [unterminated\n"))
	if err == nil || !strings.Contains(err.Error(), "parsing seed YAML") {
		t.Errorf("Parse error = %v, want a YAML parse error", err)
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := seed.Parse(nil)
	if err == nil || !strings.Contains(err.Error(), "library name is required") {
		t.Errorf("Parse(nil) error = %v", err)
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "bad email",
			yaml: "name: L\nreaders:\n  - {name: A, email: not-an-email}\n",
			want: "invalid email format",
		},
		{
			name: "missing reader name",
			yaml: "name: L\nreaders:\n  - {email: a@example.com}\n",
			want: "reader name is required",
		},
		{
			name: "blank staff",
			yaml: "name: L\nstaff: [\"\"]\n",
			want: "staff name is required",
		},
		{
			name: "bad price",
			yaml: "name: L\npublishers: [{id: 1, name: P}]\nbooks:\n  - {name: B, price: abc, category: romance, publisher: 1}\n",
			want: "must be a decimal number",
		},
		{
			name: "negative price",
			yaml: "name: L\npublishers: [{id: 1, name: P}]\nbooks:\n  - {name: B, price: \"-1\", category: romance, publisher: 1}\n",
			want: "must not be negative",
		},
		{
			name: "unknown category",
			yaml: "name: L\npublishers: [{id: 1, name: P}]\nbooks:\n  - {name: B, price: \"1\", category: poetry, publisher: 1}\n",
			want: "must be one of",
		},
		{
			name: "unknown publisher",
			yaml: "name: L\npublishers: [{id: 1, name: P}]\nbooks:\n  - {name: B, price: \"1\", category: romance, publisher: 2}\n",
			want: "unknown publisher",
		},
		{
			name: "zero reader in loan",
			yaml: "name: L\nloans:\n  - {reader: 0, book: 1, days: 3}\n",
			want: "reader id must be positive",
		},
		{
			name: "sentinel days in loan",
			yaml: "name: L\nloans:\n  - {reader: 1, book: 1, days: 18446744073709551615}\n",
			want: "loan length must be a day count",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(c.yaml))
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("error = %q, want it to mention %q", err, c.want)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yml")
	if err := os.WriteFile(path, sampleYAML, 0600); err != nil {
		t.Fatal(err)
	}
	doc, err := seed.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Name != "Branch Library" {
		t.Errorf("Name = %q", doc.Name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := seed.Load("/no/such/seed.yml"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoad_EmptyPathUsesDemo(t *testing.T) {
	doc, err := seed.Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if doc.Name != "Library" || len(doc.Staff) != 3 || len(doc.Readers) != 3 || len(doc.Books) != 2 {
		t.Errorf("demo document = %+v", doc)
	}
}

func TestBuild(t *testing.T) {
	doc, err := seed.Parse(sampleYAML)
	if err != nil {
		t.Fatal(err)
	}
	issued := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	lib, err := doc.Build(library.WithClock(func() time.Time { return issued }))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	st := lib.Snapshot()
	if st.Name != "Branch Library" {
		t.Errorf("Name = %q", st.Name)
	}
	if len(st.Staff) != 2 || st.Staff[1].ID != 2 {
		t.Errorf("staff = %+v", st.Staff)
	}
	dune, ok := lib.Book("Dune")
	if !ok {
		t.Fatal("Dune not in catalog")
	}
	if dune.Category != catalog.ScienceFiction || dune.Price.String() != "19.99" {
		t.Errorf("Dune = %+v", dune)
	}
	if dune.Publisher != catalog.NewPublisher(7, "Penguin", 1999) {
		t.Errorf("Dune publisher = %+v", dune.Publisher)
	}
	loans := lib.Loans(2)
	if len(loans) != 1 || loans[0].BookID != 1 {
		t.Fatalf("loans for reader 2 = %+v", loans)
	}
	if !loans[0].ReturnDate.Equal(issued.AddDate(0, 0, 14)) {
		t.Errorf("ReturnDate = %v", loans[0].ReturnDate)
	}
}

func TestBuild_DuplicateLoanFails(t *testing.T) {
	doc, err := seed.Parse([]byte("name: L\nloans:\n  - {reader: 1, book: 1, days: 3}\n  - {reader: 1, book: 1, days: 3}\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = doc.Build()
	if !errors.Is(err, ledger.ErrAlreadyBorrowed) {
		t.Errorf("Build error = %v, want ErrAlreadyBorrowed", err)
	}
	if err != nil && !strings.Contains(err.Error(), "loans[1]") {
		t.Errorf("error should name the loan index: %v", err)
	}
}

func TestDemo_MatchesSampleData(t *testing.T) {
	doc, err := seed.Demo()
	if err != nil {
		t.Fatal(err)
	}
	lib, err := doc.Build()
	if err != nil {
		t.Fatal(err)
	}
	one, ok := lib.Book("BookOne")
	if !ok || one.ID != 1 || one.Category != catalog.Thriller {
		t.Errorf("BookOne = %+v", one)
	}
	if got := lib.Loans(1); len(got) != 1 || got[0].BookID != 1 {
		t.Errorf("reader 1 loans = %+v", got)
	}
}
