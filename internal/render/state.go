package render

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/blackwell-systems/libraryctl/internal/catalog"
	"github.com/blackwell-systems/libraryctl/internal/ledger"
	"github.com/blackwell-systems/libraryctl/internal/library"
)

const dateLayout = "2006-01-02 15:04"

// State writes st in the requested format.
func State(w io.Writer, st library.State, f Format) error {
	switch f {
	case FormatYAML:
		return YAML(w, st)
	case FormatJSON:
		return JSON(w, st)
	default:
		return Text(w, st, time.Now())
	}
}

// Text writes a human-readable dump of st. Loans due before now are
// highlighted.
func Text(w io.Writer, st library.State, now time.Time) error {
	fmt.Fprintln(w, color.CyanString("Library: %s", st.Name))
	fmt.Fprintf(w, "  %-10s %s\n", "instance:", st.Instance)
	fmt.Fprintf(w, "  %-10s %d staff, %d readers, %d books, %d loans\n",
		"totals:", len(st.Staff), len(st.Readers), len(st.Books), st.LoanCount())

	section(w, "Staff", staffTable(st.Staff))
	section(w, "Readers", readerTable(st.Readers))
	section(w, "Books", bookTable(st.Books))

	var reports []ledger.Report
	for _, id := range st.LoanReaders() {
		reports = append(reports, st.Loans[id]...)
	}
	section(w, "Loans", loanTable(reports, now))
	return nil
}

// Loans writes a table of reports.
func Loans(w io.Writer, reports []ledger.Report, now time.Time) {
	if t := loanTable(reports, now); t != nil {
		fmt.Fprintln(w, t)
		return
	}
	fmt.Fprintln(w, StyleEmpty.Render("  (none)"))
}

func section(w io.Writer, title string, t *table.Table) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, color.CyanString(title))
	if t == nil {
		fmt.Fprintln(w, StyleEmpty.Render("  (none)"))
		return
	}
	fmt.Fprintln(w, t)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return StyleHeader
			}
			return StyleCell
		})
}

func staffTable(staff []catalog.Staff) *table.Table {
	if len(staff) == 0 {
		return nil
	}
	t := newTable("ID", "NAME")
	for _, s := range staff {
		t.Row(id(s.ID), s.Name)
	}
	return t
}

func readerTable(readers []catalog.Reader) *table.Table {
	if len(readers) == 0 {
		return nil
	}
	t := newTable("ID", "NAME", "EMAIL", "PHONE")
	for _, r := range readers {
		t.Row(id(r.ID), r.Name, r.Email, r.PhoneNumber)
	}
	return t
}

func bookTable(books []catalog.Book) *table.Table {
	if len(books) == 0 {
		return nil
	}
	t := newTable("ID", "NAME", "AUTHOR", "PRICE", "CATEGORY", "ISBN", "PUBLISHER")
	for _, b := range books {
		pub := b.Publisher.Name
		if b.Publisher.YearOfPublication != 0 {
			pub = fmt.Sprintf("%s (%d)", pub, b.Publisher.YearOfPublication)
		}
		t.Row(id(b.ID), b.Name, b.Author, b.Price.StringFixed(2), b.Category.String(), b.ISBN, pub)
	}
	return t
}

func loanTable(reports []ledger.Report, now time.Time) *table.Table {
	if len(reports) == 0 {
		return nil
	}
	t := newTable("READER", "REPORT", "BOOK", "ISSUED", "DUE")
	for _, r := range reports {
		t.Row(id(r.ReaderID), id(r.ID), id(r.BookID),
			r.IssueDate.Format(dateLayout), r.ReturnDate.Format(dateLayout))
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return StyleHeader
		case col == 4 && row < len(reports) && reports[row].ReturnDate.Before(now):
			return StyleOverdue
		}
		return StyleCell
	})
	return t
}

func id(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
