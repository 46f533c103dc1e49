package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/blackwell-systems/libraryctl/internal/catalog"
)

// --- Category ---

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want catalog.Category
	}{
		{"science-fiction", catalog.ScienceFiction},
		{"ScienceFiction", catalog.ScienceFiction},
		{"science fiction", catalog.ScienceFiction},
		{"SCIENCE_FICTION", catalog.ScienceFiction},
		{"romance", catalog.Romance},
		{" Thriller ", catalog.Thriller},
		{"autobiography", catalog.Autobiography},
		{"Biography", catalog.Biography},
	}
	for _, c := range cases {
		got, err := catalog.ParseCategory(c.in)
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	for _, in := range []string{"", "poetry", "science"} {
		if _, err := catalog.ParseCategory(in); err == nil {
			t.Errorf("ParseCategory(%q): expected error", in)
		}
	}
}

func TestCategory_String(t *testing.T) {
	for _, c := range catalog.Categories() {
		back, err := catalog.ParseCategory(c.String())
		if err != nil || back != c {
			t.Errorf("String/Parse mismatch for %d: %q -> %v, %v", c, c.String(), back, err)
		}
	}
	if got := catalog.Category(42).String(); got != "category(42)" {
		t.Errorf("invalid category String() = %q", got)
	}
}

func TestCategory_MarshalTextInvalid(t *testing.T) {
	if _, err := catalog.Category(9).MarshalText(); err == nil {
		t.Error("expected error marshalling invalid category")
	}
}

// --- Book YAML ---

func TestBook_YAML(t *testing.T) {
	b := catalog.Book{
		ID:        1,
		Name:      "BookOne",
		Author:    "AuthorOne",
		Price:     decimal.RequireFromString("1320.50"),
		Category:  catalog.Thriller,
		ISBN:      "1234567890",
		Publisher: catalog.NewPublisher(1, "PublisherOne", 2024),
	}

	data, err := yaml.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got catalog.Book
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, data)
	}
	if got.Category != catalog.Thriller {
		t.Errorf("Category = %v, want thriller", got.Category)
	}
	if !got.Price.Equal(b.Price) {
		t.Errorf("Price = %s, want %s", got.Price, b.Price)
	}
	if got.Publisher != b.Publisher {
		t.Errorf("Publisher = %+v, want %+v", got.Publisher, b.Publisher)
	}
}

func TestBook_OwnsPublisherCopy(t *testing.T) {
	pub := catalog.NewPublisher(1, "PublisherOne", 2024)
	b := catalog.Book{Name: "BookOne", Publisher: pub}
	pub.Name = "Renamed"
	if b.Publisher.Name != "PublisherOne" {
		t.Errorf("book publisher changed with source: %q", b.Publisher.Name)
	}
}
