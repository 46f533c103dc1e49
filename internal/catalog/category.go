package catalog

import (
	"fmt"
	"strings"
)

// Category classifies a book.
type Category uint8

const (
	ScienceFiction Category = iota
	Romance
	Thriller
	Autobiography
	Biography
)

var categoryNames = [...]string{
	ScienceFiction: "science-fiction",
	Romance:        "romance",
	Thriller:       "thriller",
	Autobiography:  "autobiography",
	Biography:      "biography",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{ScienceFiction, Romance, Thriller, Autobiography, Biography}
}

func (c Category) IsValid() bool {
	return int(c) < len(categoryNames)
}

func (c Category) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// ParseCategory accepts the canonical name ("science-fiction") as well as
// spaced, underscored or run-together spellings, case-insensitively.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "", "-", "", " ", "").Replace(norm)
	for i, name := range categoryNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
